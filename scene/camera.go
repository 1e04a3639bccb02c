package scene

import (
	"github.com/chewxy/math32"

	"campsite-renderer/math"
)

// Movement directions for keyboard-driven camera motion.
type CameraMovement int

const (
	MoveForward CameraMovement = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

const (
	defaultYaw         = -90.0
	defaultPitch       = -15.0
	defaultSpeed       = 20.0
	defaultSensitivity = 0.1
	defaultZoom        = 80.0

	minSpeed = 1.0
	maxSpeed = 50.0
	maxPitch = 89.0
)

// Camera is a free-fly first person camera. Orientation is tracked as
// yaw and pitch in degrees; Front, Right and Up are derived from them.
type Camera struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3
	Right    math.Vec3
	WorldUp  math.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32

	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	// Perspective selects between perspective and orthographic projection.
	// OrthoHeight is the orthographic half-height in world units.
	Perspective bool
	OrthoHeight float32
}

func NewCamera(position math.Vec3, aspectRatio float32) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          math.Vec3Up,
		Yaw:              defaultYaw,
		Pitch:            defaultPitch,
		MovementSpeed:    defaultSpeed,
		MouseSensitivity: defaultSensitivity,
		Zoom:             defaultZoom,
		AspectRatio:      aspectRatio,
		NearPlane:        0.1,
		FarPlane:         100.0,
		Perspective:      true,
		OrthoHeight:      6.0,
	}
	c.updateVectors()
	return c
}

func (c *Camera) UpdateAspectRatio(width, height float32) {
	if height > 0 {
		c.AspectRatio = width / height
	}
}

func (c *Camera) GetViewMatrix() math.Mat4 {
	return math.Mat4LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) GetProjectionMatrix() math.Mat4 {
	if c.Perspective {
		return math.Mat4Perspective(math.Radians(c.Zoom), c.AspectRatio, c.NearPlane, c.FarPlane)
	}
	halfH := c.OrthoHeight
	halfW := halfH * c.AspectRatio
	return math.Mat4Orthographic(-halfW, halfW, -halfH, halfH, c.NearPlane, c.FarPlane)
}

// GetViewProjectionMatrix composes view then projection, the same order
// the renderer uses for its MVP chain.
func (c *Camera) GetViewProjectionMatrix() math.Mat4 {
	return c.GetViewMatrix().Mul(c.GetProjectionMatrix())
}

// ProcessKeyboard moves the camera along its basis vectors. Vertical
// movement uses the world up axis so Q/E stay level regardless of pitch.
func (c *Camera) ProcessKeyboard(direction CameraMovement, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime
	switch direction {
	case MoveForward:
		c.Position = c.Position.Add(c.Front.Scale(velocity))
	case MoveBackward:
		c.Position = c.Position.Sub(c.Front.Scale(velocity))
	case MoveLeft:
		c.Position = c.Position.Sub(c.Right.Scale(velocity))
	case MoveRight:
		c.Position = c.Position.Add(c.Right.Scale(velocity))
	case MoveUp:
		c.Position = c.Position.Add(c.WorldUp.Scale(velocity))
	case MoveDown:
		c.Position = c.Position.Sub(c.WorldUp.Scale(velocity))
	}
}

func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32) {
	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch += yOffset * c.MouseSensitivity
	c.Pitch = math.Clamp(c.Pitch, -maxPitch, maxPitch)
	c.updateVectors()
}

// ProcessMouseScroll adjusts movement speed, clamped so the camera never
// stalls or becomes uncontrollable.
func (c *Camera) ProcessMouseScroll(yOffset float32) {
	c.MovementSpeed = math.Clamp(c.MovementSpeed+yOffset, minSpeed, maxSpeed)
}

// SetPerspective switches projection modes. Entering orthographic snaps
// the view direction to the -Z axis for a head-on reading of the scene;
// returning to perspective restores the yaw/pitch orientation.
func (c *Camera) SetPerspective(perspective bool) {
	c.Perspective = perspective
	if !perspective {
		c.Front = math.Vec3{X: 0, Y: 0, Z: -1}
		c.Right = math.Vec3Right
		c.Up = c.WorldUp
	} else {
		c.updateVectors()
	}
}

func (c *Camera) updateVectors() {
	yaw := math.Radians(c.Yaw)
	pitch := math.Radians(c.Pitch)

	c.Front = math.Vec3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()

	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
