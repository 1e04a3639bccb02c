package campsite

import (
	"github.com/chewxy/math32"

	"campsite-renderer/core"
	"campsite-renderer/math"
	"campsite-renderer/scene"
)

// Animator drives the campfire each frame: the point light flickers and
// wanders slightly, and every flame column sways and breathes on its own
// phase so no two flames move in sync.
type Animator struct {
	rig  *FireRig
	time float32
}

func NewAnimator(rig *FireRig) *Animator {
	return &Animator{rig: rig}
}

// LightFlicker returns the brightness multiplier for the fire light at
// time t. Three out-of-phase sines blended by weight, remapped so the
// result stays within 0.80 to 1.20.
func LightFlicker(t float32) float32 {
	f1 := 0.5 + 0.5*math32.Sin(6.2*t+1.3)
	f2 := 0.5 + 0.5*math32.Sin(3.9*t+2.1)
	f3 := 0.5 + 0.5*math32.Sin(9.1*t+0.5)
	return 0.80 + 0.40*(0.55*f1+0.30*f2+0.15*f3)
}

// lightJitter is the small positional wander of the light source,
// suggesting the hottest point of the fire shifting around.
func lightJitter(t float32) math.Vec3 {
	return math.Vec3{
		X: 0.03 * math32.Sin(4.7*t),
		Y: 0.02 * math32.Sin(5.3*t+1.7),
		Z: 0.03 * math32.Cos(4.1*t),
	}
}

// FlameFlicker returns the per-flame turbulence multiplier at time t for
// a flame with the given phase seed. Faster frequencies than the light
// flicker, again bounded to 0.80 to 1.20.
func FlameFlicker(t, seed float32) float32 {
	f1 := 0.5 + 0.5*math32.Sin(8.5*t+seed)
	f2 := 0.5 + 0.5*math32.Sin(5.2*t+seed*1.7)
	f3 := 0.5 + 0.5*math32.Sin(12.1*t+seed*0.6)
	return 0.80 + 0.40*(0.4*f1+0.4*f2+0.2*f3)
}

// Update advances the animation clock by dt seconds and applies the new
// pose to the light and every flame.
func (a *Animator) Update(dt float32) {
	a.time += dt
	t := a.time

	flicker := LightFlicker(t)
	a.rig.Light.Position = fireLightPos.Add(lightJitter(t))
	a.rig.Light.Intensity = flicker

	// The ember bed brightens and dims with the light.
	for _, layer := range emberLayers {
		if mat := scene.GetMaterial(layer.name); mat != nil {
			mat.Albedo = core.Color{
				R: layer.color.R * flicker,
				G: layer.color.G * flicker,
				B: layer.color.B * flicker,
				A: layer.color.A,
			}
		}
	}

	for _, f := range a.rig.Flames {
		ff := FlameFlicker(t, f.Seed)

		sway := 3.0 * math32.Sin(2.3*t+f.Seed)
		sway2 := 2.0 * math32.Cos(1.9*t+f.Seed*1.3)

		f.Node.SetEuler(
			math.Radians(f.LeanX+sway),
			math.Radians(f.Yaw),
			math.Radians(f.Roll+sway2),
		)
		f.Node.SetScale(math.Vec3{
			X: 1 + 0.10*(ff-1),
			Y: ff,
			Z: 1 + 0.10*(ff-1),
		})
	}
}

// Time returns the accumulated animation clock, useful for tests and
// for anything else that wants to stay in phase with the fire.
func (a *Animator) Time() float32 {
	return a.time
}
