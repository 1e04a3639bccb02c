package campsite

import (
	"campsite-renderer/picking"
)

// ObjectBounds recomputes the world-space box of every pickable object
// from the live scene graph, so animated or edited objects stay pickable
// where they actually are. Objects whose subtree holds no visible mesh
// are skipped. Order follows the build roster, which fixes tie-breaks
// when two boxes overlap.
func (c *Campsite) ObjectBounds() []picking.TaggedBound {
	out := make([]picking.TaggedBound, 0, len(c.Objects))
	for _, obj := range c.Objects {
		box, ok := obj.Root.WorldAABB()
		if !ok {
			continue
		}
		out = append(out, picking.TaggedBound{
			ID:     obj.ID,
			Bounds: picking.AABB{Min: box.Min, Max: box.Max},
		})
	}
	return out
}

// BoundsFor returns the current world box of a single object.
func (c *Campsite) BoundsFor(id int) (picking.AABB, bool) {
	for _, obj := range c.Objects {
		if obj.ID != id {
			continue
		}
		box, ok := obj.Root.WorldAABB()
		if !ok {
			return picking.AABB{}, false
		}
		return picking.AABB{Min: box.Min, Max: box.Max}, true
	}
	return picking.AABB{}, false
}
