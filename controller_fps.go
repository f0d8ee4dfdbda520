package rendiation

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	defaultFpsSensitivity = 0.003
	defaultFpsSpeed       = 5.0
)

type Direction int

const (
	DirectionForward Direction = iota
	DirectionBackward
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
)

// FpsController is a first-person look/move controller. Orientation is always
// rebuilt from yaw and pitch.
type FpsController struct {
	position mgl32.Vec3
	yaw      float32
	pitch    float32

	sensitivity float32
	speed       float32
}

type FpsOption func(*FpsController)

func WithFpsSensitivity(s float32) FpsOption {
	return func(fc *FpsController) {
		fc.sensitivity = s
	}
}

// WithFpsSpeed sets the distance per second used by Advance.
func WithFpsSpeed(speed float32) FpsOption {
	return func(fc *FpsController) {
		fc.speed = speed
	}
}

func NewFpsController(position mgl32.Vec3, yaw, pitch float32, options ...FpsOption) (*FpsController, error) {
	fc := &FpsController{
		position:    position,
		sensitivity: defaultFpsSensitivity,
		speed:       defaultFpsSpeed,
	}
	for _, option := range options {
		option(fc)
	}
	if !isFinite(fc.sensitivity) || !isFinite(fc.speed) || fc.speed < 0 {
		return nil, fmt.Errorf("fps sensitivity %v speed %v: %w", fc.sensitivity, fc.speed, ErrInvalidController)
	}
	if !isFinite(position.X()) || !isFinite(position.Y()) || !isFinite(position.Z()) || !isFinite(yaw) || !isFinite(pitch) {
		return nil, fmt.Errorf("fps pose %v yaw %v pitch %v: %w", position, yaw, pitch, ErrInvalidController)
	}
	fc.yaw = wrapAngle(yaw)
	fc.pitch = clampPitch(pitch)
	return fc, nil
}

func (fc *FpsController) Position() mgl32.Vec3 { return fc.position }
func (fc *FpsController) Yaw() float32         { return fc.yaw }
func (fc *FpsController) Pitch() float32       { return fc.pitch }

func (fc *FpsController) Rotation() mgl32.Quat {
	return yawPitchRotation(fc.yaw, fc.pitch)
}

func (fc *FpsController) Forward() mgl32.Vec3 {
	return fc.Rotation().Rotate(mgl32.Vec3{0, 0, -1})
}

func (fc *FpsController) Right() mgl32.Vec3 {
	return fc.Rotation().Rotate(mgl32.Vec3{1, 0, 0})
}

func (fc *FpsController) Up() mgl32.Vec3 {
	return fc.Rotation().Rotate(mgl32.Vec3{0, 1, 0})
}

// Look turns the view. Positive delta.X turns right, positive delta.Y looks down,
// matching screen-space cursor motion.
func (fc *FpsController) Look(delta mgl32.Vec2) {
	dx, dy := delta.X()*fc.sensitivity, delta.Y()*fc.sensitivity
	if !isFinite(dx) || !isFinite(dy) {
		return
	}
	fc.yaw = wrapAngle(fc.yaw - dx)
	fc.pitch = clampPitch(fc.pitch - dy)
}

// Move translates along the current camera basis.
func (fc *FpsController) Move(direction Direction, distance float32) {
	if !isFinite(distance) {
		return
	}
	fc.position = fc.position.Add(fc.basis(direction).Mul(distance))
}

func (fc *FpsController) basis(direction Direction) mgl32.Vec3 {
	switch direction {
	case DirectionForward:
		return fc.Forward()
	case DirectionBackward:
		return fc.Forward().Mul(-1)
	case DirectionRight:
		return fc.Right()
	case DirectionLeft:
		return fc.Right().Mul(-1)
	case DirectionUp:
		return fc.Up()
	case DirectionDown:
		return fc.Up().Mul(-1)
	default:
		return mgl32.Vec3{}
	}
}

// Advance moves according to held WASD/Space/Control keys for dt seconds.
// Diagonal input is normalized so it is not faster than a single axis.
func (fc *FpsController) Advance(ws *WindowState, dt float32) {
	if !isFinite(dt) || dt <= 0 {
		return
	}

	var move mgl32.Vec3 // right, up, forward
	if ws.IsKeyDown(KeyW) {
		move[2] += 1
	}
	if ws.IsKeyDown(KeyS) {
		move[2] -= 1
	}
	if ws.IsKeyDown(KeyD) {
		move[0] += 1
	}
	if ws.IsKeyDown(KeyA) {
		move[0] -= 1
	}
	if ws.IsKeyDown(KeySpace) {
		move[1] += 1
	}
	if ws.IsKeyDown(KeyControl) {
		move[1] -= 1
	}
	if move.Len() == 0 {
		return
	}

	dir := fc.Right().Mul(move[0]).
		Add(fc.Up().Mul(move[1])).
		Add(fc.Forward().Mul(move[2]))
	fc.position = fc.position.Add(dir.Normalize().Mul(fc.speed * dt))
}

func (fc *FpsController) Update(target *Transform) {
	target.Position = fc.position
	target.Rotation = fc.Rotation()
}
