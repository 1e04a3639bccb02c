// Package campsite assembles the night campfire scene: the fire with its
// log ring, stones and flames, a tent with stakes and guy lines, a
// backpack, a pine tree and the moon. Each top-level object carries a
// stable ID used for mouse picking.
package campsite

import (
	"fmt"

	"campsite-renderer/core"
	"campsite-renderer/scene"
)

// Stable object identifiers, in build order.
const (
	ObjectCampfire = iota
	ObjectTent
	ObjectBackpack
	ObjectTree
	ObjectMoon
)

var objectNames = map[int]string{
	ObjectCampfire: "Campfire",
	ObjectTent:     "Tent",
	ObjectBackpack: "Backpack",
	ObjectTree:     "PineTree",
	ObjectMoon:     "Moon",
}

// ObjectName returns a human-readable name for an object ID.
func ObjectName(id int) string {
	if n, ok := objectNames[id]; ok {
		return n
	}
	return fmt.Sprintf("Object%d", id)
}

// PickObject ties an object ID to the root node of its subtree.
type PickObject struct {
	ID   int
	Name string
	Root *scene.Node
}

// Campsite owns the assembled scene plus the pickable object roster.
type Campsite struct {
	Scene     *scene.Scene
	Objects   []PickObject
	Fire      *FireRig
	Sparks    *scene.ParticleEmitter
	Moonlight *scene.Light
}

// texture tags with their solid-color fallbacks, used when the asset
// files are missing so the scene still renders.
var textureManifest = []struct {
	tag      string
	path     string
	fallback [4]uint8
}{
	{"grass", "textures/grass.jpg", [4]uint8{0x2e, 0x4a, 0x25, 0xff}},
	{"bark", "textures/tree-bark.jpg", [4]uint8{0x6b, 0x4a, 0x2d, 0xff}},
	{"granite", "textures/granite.jpeg", [4]uint8{0x8a, 0x8a, 0x8e, 0xff}},
	{"moon", "textures/moon.jpg", [4]uint8{0xe8, 0xe8, 0xdc, 0xff}},
	{"canvas", "textures/canvas.jpg", [4]uint8{0xd9, 0xd0, 0xbb, 0xff}},
	{"canvas2", "textures/canvas2.jpg", [4]uint8{0x3a, 0x5e, 0xb0, 0xff}},
	{"pebblestone", "textures/pebblestone.jpg", [4]uint8{0x77, 0x74, 0x70, 0xff}},
	{"rope", "textures/rope.png", [4]uint8{0xb8, 0xa8, 0x7a, 0xff}},
	{"pine-needle", "textures/pine-needle.jpg", [4]uint8{0x2d, 0x52, 0x2d, 0xff}},
	{"tan-leather", "textures/tan-leather.jpg", [4]uint8{0x8f, 0x6b, 0x42, 0xff}},
}

// LoadTextures loads and registers every scene texture, substituting
// solid-color fallbacks for files that cannot be read. Returned errors
// are informational; the scene is usable regardless.
func LoadTextures() []error {
	var errs []error
	for _, entry := range textureManifest {
		if _, err := scene.LoadAndRegisterTexture(entry.tag, entry.path, entry.fallback); err != nil {
			errs = append(errs, fmt.Errorf("texture %s: %w", entry.tag, err))
		}
	}
	return errs
}

// Build assembles the full campsite scene graph.
func Build() *Campsite {
	s := scene.NewScene()
	c := &Campsite{Scene: s}

	buildGround(s)

	fire, fireRoot := buildCampfire()
	s.AddNode(fireRoot)
	c.Fire = fire
	c.addObject(ObjectCampfire, fireRoot)

	tent := buildTent()
	s.AddNode(tent)
	c.addObject(ObjectTent, tent)

	pack := buildBackpack()
	s.AddNode(pack)
	c.addObject(ObjectBackpack, pack)

	tree := buildPineTree()
	s.AddNode(tree)
	c.addObject(ObjectTree, tree)

	moon := buildMoon()
	s.AddNode(moon)
	c.addObject(ObjectMoon, moon)

	// Campfire point light, flickered per frame by the Animator.
	s.AddLight(fire.Light)

	// Faint moonlight fill aimed from the moon at the fire.
	moonDir := fireLightPos.Sub(moonPosition).Normalize()
	c.Moonlight = scene.NewDirectionalLight(moonDir, core.Color{R: 0.22, G: 0.24, B: 0.30, A: 1}, 1.0)
	s.AddLight(c.Moonlight)

	// Ember sparks rising from the fire core.
	c.Sparks = scene.NewSparkEmitter(256)
	c.Sparks.Position = fireLightPos
	s.AddEmitter(c.Sparks)

	return c
}

func (c *Campsite) addObject(id int, root *scene.Node) {
	c.Objects = append(c.Objects, PickObject{ID: id, Name: ObjectName(id), Root: root})
}
