package campsite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campsite-renderer/math"
	"campsite-renderer/picking"
	"campsite-renderer/scene"
)

func TestBuildAssemblesAllObjects(t *testing.T) {
	c := Build()

	require.Len(t, c.Objects, 5)
	for i, obj := range c.Objects {
		assert.Equal(t, i, obj.ID, "object IDs follow build order")
		assert.NotNil(t, obj.Root)
	}
	assert.Equal(t, "Campfire", c.Objects[ObjectCampfire].Name)
	assert.Equal(t, "Moon", c.Objects[ObjectMoon].Name)

	require.NotNil(t, c.Fire)
	assert.NotEmpty(t, c.Fire.Flames)
	require.NotNil(t, c.Fire.Light)
	assert.NotNil(t, c.Sparks)
	assert.NotNil(t, c.Moonlight)

	// fire light plus moonlight
	assert.Len(t, c.Scene.Lights, 2)
}

func TestObjectBoundsCoverScene(t *testing.T) {
	c := Build()
	bounds := c.ObjectBounds()
	require.Len(t, bounds, 5)

	byID := map[int]picking.AABB{}
	for _, b := range bounds {
		assert.LessOrEqual(t, b.Bounds.Min.X, b.Bounds.Max.X)
		assert.LessOrEqual(t, b.Bounds.Min.Y, b.Bounds.Max.Y)
		assert.LessOrEqual(t, b.Bounds.Min.Z, b.Bounds.Max.Z)
		byID[b.ID] = b.Bounds
	}

	// the fire straddles the origin
	fire := byID[ObjectCampfire]
	assert.Negative(t, fire.Min.X)
	assert.Positive(t, fire.Max.X)
	assert.Negative(t, fire.Min.Z)
	assert.Positive(t, fire.Max.Z)

	// the moon hangs well above everything else
	moon := byID[ObjectMoon]
	assert.Greater(t, moon.Min.Y, float32(9))
	assert.True(t, moon.Contains(moonPosition))

	// the tent sits off to the back left
	tent := byID[ObjectTent]
	assert.Less(t, tent.Max.X, float32(0))
}

func TestPickFromLiveScene(t *testing.T) {
	c := Build()

	// straight into the fire from the default camera side
	toFire := picking.Ray{
		Origin: math.Vec3{X: 0, Y: 1, Z: 8},
		Dir:    math.Vec3{X: 0, Y: 0, Z: -1},
	}
	assert.Equal(t, ObjectCampfire, picking.PickFrom(toFire, c))

	// straight up under the moon
	toMoon := picking.Ray{
		Origin: math.Vec3{X: 0.5, Y: 0, Z: -6},
		Dir:    math.Vec3{X: 0, Y: 1, Z: 0},
	}
	assert.Equal(t, ObjectMoon, picking.PickFrom(toMoon, c))

	// off into the dark
	miss := picking.Ray{
		Origin: math.Vec3{X: 0, Y: 1, Z: 8},
		Dir:    math.Vec3{X: 0, Y: 1, Z: 0},
	}
	assert.Equal(t, picking.NoHit, picking.PickFrom(miss, c))
}

func TestBoundsFor(t *testing.T) {
	c := Build()

	box, ok := c.BoundsFor(ObjectTree)
	require.True(t, ok)
	assert.Greater(t, box.Max.Y, float32(10), "pine tree reaches above ten units")

	_, ok = c.BoundsFor(99)
	assert.False(t, ok)
}

func TestObjectName(t *testing.T) {
	assert.Equal(t, "PineTree", ObjectName(ObjectTree))
	assert.Equal(t, "Object42", ObjectName(42))
}

func TestLightFlickerStaysBounded(t *testing.T) {
	for i := 0; i < 1000; i++ {
		f := LightFlicker(float32(i) * 0.013)
		assert.GreaterOrEqual(t, f, float32(0.8))
		assert.LessOrEqual(t, f, float32(1.2))
	}
}

func TestFlameFlickerVariesPerSeed(t *testing.T) {
	var a, b float32
	for i := 0; i < 100; i++ {
		ti := float32(i) * 0.017
		fa := FlameFlicker(ti, 0.3)
		fb := FlameFlicker(ti, 4.1)
		assert.GreaterOrEqual(t, fa, float32(0.8))
		assert.LessOrEqual(t, fa, float32(1.2))
		a += fa
		b += fb
	}
	assert.NotEqual(t, a, b, "different seeds give different flicker tracks")
}

func TestAnimatorUpdate(t *testing.T) {
	c := Build()
	anim := NewAnimator(c.Fire)

	anim.Update(0.25)
	assert.InDelta(t, 0.25, anim.Time(), 1e-6)

	// the light wanders but stays near its rest position
	d := c.Fire.Light.Position.Sub(fireLightPos).Length()
	assert.Less(t, d, float32(0.1))
	assert.GreaterOrEqual(t, c.Fire.Light.Intensity, float32(0.8))
	assert.LessOrEqual(t, c.Fire.Light.Intensity, float32(1.2))

	// flames keep breathing rather than freezing
	first := c.Fire.Flames[0].Node.Transform.Scale.Y
	anim.Update(0.25)
	second := c.Fire.Flames[0].Node.Transform.Scale.Y
	assert.NotEqual(t, first, second)

	// the shared ember materials pulse with the light
	ember := scene.GetMaterial("ember_core")
	require.NotNil(t, ember)
	assert.InDelta(t, c.Fire.Light.Intensity, ember.Albedo.R, 1e-5)
}
