package scene

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"campsite-renderer/core"
	"campsite-renderer/math"
)

// GLTFResult holds the nodes and textures loaded from a .glb / .gltf file.
// Before the first render, upload every texture in the Textures slice:
//
//	for _, tex := range result.Textures {
//	    renderEngine.UploadTexture(tex)
//	}
type GLTFResult struct {
	Roots    []*Node    // top-level nodes; add each with scene.AddNode(n)
	Textures []*Texture // textures that need GPU upload
}

// LoadGLTF opens a .glb or .gltf file and returns a ready-to-use scene graph.
// Mesh geometry, materials, base-colour textures, and the node hierarchy are
// all populated. PBR metallic-roughness is approximated to Phong since the
// campsite shader is a Phong pipeline.
func LoadGLTF(path string) (*GLTFResult, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	imp := &gltfImport{doc: doc, dir: filepath.Dir(path), result: &GLTFResult{}}
	imp.textures()
	imp.materials()
	imp.meshes()
	imp.nodes()
	imp.roots()
	return imp.result, nil
}

// gltfImport carries the per-document caches between import stages. Each
// stage indexes into the previous one the way the glTF document does.
type gltfImport struct {
	doc    *gltf.Document
	dir    string
	result *GLTFResult

	texCache  []*Texture
	matCache  []*Material
	meshCache [][]*Mesh // per glTF mesh, one entry per primitive
	nodeCache []*Node
}

// textures decodes every referenced image: embedded buffer views for .glb,
// relative URIs for .gltf. A broken image is skipped with a warning, not a
// fatal error, so a prop with one bad texture still loads.
func (imp *gltfImport) textures() {
	imp.texCache = make([]*Texture, len(imp.doc.Textures))
	for i, gt := range imp.doc.Textures {
		if gt.Source == nil {
			continue
		}
		img := imp.doc.Images[*gt.Source]

		var tex *Texture
		var err error
		switch {
		case img.BufferView != nil:
			var raw []byte
			raw, err = modeler.ReadBufferView(imp.doc, imp.doc.BufferViews[*img.BufferView])
			if err == nil {
				name := img.Name
				if name == "" {
					name = fmt.Sprintf("gltf_img_%d", *gt.Source)
				}
				tex, err = decodeImageBytes(name, raw)
			}
		case img.URI != "" && !img.IsEmbeddedResource():
			tex, err = LoadTexture(filepath.Join(imp.dir, img.URI))
		}
		if err != nil {
			fmt.Printf("gltf: image %d: %v\n", *gt.Source, err)
			continue
		}

		if tex != nil {
			imp.texCache[i] = tex
			imp.result.Textures = append(imp.result.Textures, tex)
		}
	}
}

// materials maps glTF PBR metallic-roughness onto the Phong material:
// roughness squares down into shininess, metallic scales the specular.
func (imp *gltfImport) materials() {
	imp.matCache = make([]*Material, len(imp.doc.Materials))
	for i, gm := range imp.doc.Materials {
		mat := DefaultMaterial()
		mat.Name = gm.Name

		pbr := gm.PBRMetallicRoughness
		if pbr == nil {
			imp.matCache[i] = mat
			continue
		}

		cf := pbr.BaseColorFactorOrDefault()
		mat.Albedo = core.Color{
			R: float32(cf[0]), G: float32(cf[1]),
			B: float32(cf[2]), A: float32(cf[3]),
		}
		if pbr.BaseColorTexture != nil {
			if idx := pbr.BaseColorTexture.Index; idx < len(imp.texCache) && imp.texCache[idx] != nil {
				mat.AlbedoTexture = imp.texCache[idx]
			}
		}

		roughness := float32(pbr.RoughnessFactorOrDefault())
		metallic := float32(pbr.MetallicFactorOrDefault())
		mat.Shininess = (1.0-roughness)*(1.0-roughness)*128.0 + 1.0
		s := metallic * 0.7
		mat.Specular = core.Color{R: s, G: s, B: s, A: 1}

		imp.matCache[i] = mat
	}
}

func (imp *gltfImport) meshes() {
	imp.meshCache = make([][]*Mesh, len(imp.doc.Meshes))
	for mi, gm := range imp.doc.Meshes {
		for pi, prim := range gm.Primitives {
			m, err := imp.primitive(gm.Name, pi, *prim)
			if err != nil {
				fmt.Printf("gltf: mesh %d prim %d: %v\n", mi, pi, err)
				continue
			}
			if prim.Material != nil && *prim.Material < len(imp.matCache) {
				m.Material = imp.matCache[*prim.Material]
			}
			imp.meshCache[mi] = append(imp.meshCache[mi], m)
		}
	}
}

// nodes builds a Node per glTF node with its TRS, attaching the mesh
// primitives. A multi-primitive mesh becomes one child node per primitive
// so each can carry its own material.
func (imp *gltfImport) nodes() {
	imp.nodeCache = make([]*Node, len(imp.doc.Nodes))
	for i, gn := range imp.doc.Nodes {
		name := gn.Name
		if name == "" {
			name = fmt.Sprintf("node_%d", i)
		}
		n := NewNode(name)

		t := gn.TranslationOrDefault()
		n.SetPosition(math.Vec3{X: float32(t[0]), Y: float32(t[1]), Z: float32(t[2])})

		sc := gn.ScaleOrDefault()
		n.SetScale(math.Vec3{X: float32(sc[0]), Y: float32(sc[1]), Z: float32(sc[2])})

		r := gn.RotationOrDefault() // [x, y, z, w]
		n.SetRotation(math.Quat{
			X: float32(r[0]), Y: float32(r[1]),
			Z: float32(r[2]), W: float32(r[3]),
		})

		if gn.Mesh != nil && *gn.Mesh < len(imp.meshCache) {
			prims := imp.meshCache[*gn.Mesh]
			switch len(prims) {
			case 0:
				// no geometry
			case 1:
				n.Mesh = prims[0]
			default:
				for pi, p := range prims {
					child := NewNode(fmt.Sprintf("%s_prim%d", name, pi))
					child.Mesh = p
					n.AddChild(child)
				}
			}
		}
		imp.nodeCache[i] = n
	}

	for i, gn := range imp.doc.Nodes {
		if imp.nodeCache[i] == nil {
			continue
		}
		for _, childIdx := range gn.Children {
			if childIdx < len(imp.nodeCache) && imp.nodeCache[childIdx] != nil {
				imp.nodeCache[i].AddChild(imp.nodeCache[childIdx])
			}
		}
	}
}

// roots collects the default scene's top-level nodes, or every parentless
// node when the document names no default scene.
func (imp *gltfImport) roots() {
	if imp.doc.Scene != nil && *imp.doc.Scene < len(imp.doc.Scenes) {
		for _, rootIdx := range imp.doc.Scenes[*imp.doc.Scene].Nodes {
			if rootIdx < len(imp.nodeCache) && imp.nodeCache[rootIdx] != nil {
				imp.result.Roots = append(imp.result.Roots, imp.nodeCache[rootIdx])
			}
		}
		return
	}

	hasParent := make([]bool, len(imp.nodeCache))
	for _, gn := range imp.doc.Nodes {
		for _, c := range gn.Children {
			if c < len(hasParent) {
				hasParent[c] = true
			}
		}
	}
	for i, n := range imp.nodeCache {
		if n != nil && !hasParent[i] {
			imp.result.Roots = append(imp.result.Roots, n)
		}
	}
}

// primitive converts one glTF mesh primitive into a scene.Mesh. POSITION
// is required; NORMAL and TEXCOORD_0 are optional with sane defaults.
func (imp *gltfImport) primitive(meshName string, primIdx int, prim gltf.Primitive) (*Mesh, error) {
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	if meshName == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(imp.doc, imp.doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(imp.doc, imp.doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(imp.doc, imp.doc.Accessors[idx], nil)
	}

	verts := make([]core.Vertex, len(positions))
	for i, p := range positions {
		v := core.Vertex{
			Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]},
			Normal:   math.Vec3Up,
			Color:    core.ColorWhite,
		}
		if i < len(normals) {
			n := normals[i]
			v.Normal = math.Vec3{X: n[0], Y: n[1], Z: n[2]}
		}
		if i < len(uvs) {
			v.UV = math.Vec2{X: uvs[i][0], Y: uvs[i][1]}
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(imp.doc, imp.doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	}

	return CreateMeshFromData(name, verts, indices), nil
}

// decodeImageBytes decodes a PNG or JPEG byte slice into an RGBA8 scene.Texture.
func decodeImageBytes(name string, data []byte) (*Texture, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}
	return &Texture{
		Name:   name,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: rgba.Pix,
	}, nil
}
