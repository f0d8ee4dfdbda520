package rendiation

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	defaultOrbitRotateSensitivity = 0.005
	defaultOrbitPanSensitivity    = 0.001
	defaultOrbitRadiusMin         = 0.01
	defaultOrbitRadiusMax         = 10000
)

// OrbitController keeps a camera on a sphere around a target point.
//
// The canonical state is (target, radius, yaw, pitch). Position and rotation are
// re-derived from it on every read and never accumulated, so two controllers that
// reach the same state by different paths produce identical poses.
type OrbitController struct {
	target mgl32.Vec3
	radius float32
	yaw    float32 // around world +Y, wrapped to [-π, π)
	pitch  float32 // elevation above the target's horizontal plane

	radiusMin float32
	radiusMax float32

	rotateSensitivity float32
	panSensitivity    float32
}

// OrbitOption configures an OrbitController.
type OrbitOption func(*OrbitController)

// WithOrbitRotateSensitivity sets the radians applied per unit of rotate delta.
func WithOrbitRotateSensitivity(s float32) OrbitOption {
	return func(oc *OrbitController) {
		oc.rotateSensitivity = s
	}
}

// WithOrbitPanSensitivity sets the pan distance per unit of delta, per unit of radius.
func WithOrbitPanSensitivity(s float32) OrbitOption {
	return func(oc *OrbitController) {
		oc.panSensitivity = s
	}
}

// WithOrbitRadiusBounds sets the zoom limits. min must be positive.
func WithOrbitRadiusBounds(min, max float32) OrbitOption {
	return func(oc *OrbitController) {
		oc.radiusMin = min
		oc.radiusMax = max
	}
}

func NewOrbitController(target mgl32.Vec3, radius, yaw, pitch float32, options ...OrbitOption) (*OrbitController, error) {
	oc := &OrbitController{
		target:            target,
		radiusMin:         defaultOrbitRadiusMin,
		radiusMax:         defaultOrbitRadiusMax,
		rotateSensitivity: defaultOrbitRotateSensitivity,
		panSensitivity:    defaultOrbitPanSensitivity,
	}
	for _, option := range options {
		option(oc)
	}

	switch {
	case !isFinite(oc.radiusMin) || !isFinite(oc.radiusMax) || oc.radiusMin <= 0 || oc.radiusMax < oc.radiusMin:
		return nil, fmt.Errorf("orbit radius bounds [%v, %v]: %w", oc.radiusMin, oc.radiusMax, ErrInvalidController)
	case !isFinite(oc.rotateSensitivity) || !isFinite(oc.panSensitivity):
		return nil, fmt.Errorf("orbit sensitivity: %w", ErrInvalidController)
	case !isFinite(target.X()) || !isFinite(target.Y()) || !isFinite(target.Z()):
		return nil, fmt.Errorf("orbit target %v: %w", target, ErrInvalidController)
	case !isFinite(radius) || !isFinite(yaw) || !isFinite(pitch):
		return nil, fmt.Errorf("orbit radius %v yaw %v pitch %v: %w", radius, yaw, pitch, ErrInvalidController)
	}

	oc.radius = mgl32.Clamp(radius, oc.radiusMin, oc.radiusMax)
	oc.yaw = wrapAngle(yaw)
	oc.pitch = clampPitch(pitch)
	return oc, nil
}

func (oc *OrbitController) Target() mgl32.Vec3 { return oc.target }
func (oc *OrbitController) Radius() float32    { return oc.radius }
func (oc *OrbitController) Yaw() float32       { return oc.yaw }
func (oc *OrbitController) Pitch() float32     { return oc.pitch }
func (oc *OrbitController) RadiusMin() float32 { return oc.radiusMin }
func (oc *OrbitController) RadiusMax() float32 { return oc.radiusMax }

// SetTarget moves the orbit pivot; radius and angles are kept.
func (oc *OrbitController) SetTarget(target mgl32.Vec3) {
	if !isFinite(target.X()) || !isFinite(target.Y()) || !isFinite(target.Z()) {
		return
	}
	oc.target = target
}

// Rotate turns the camera around the target. delta.X drives yaw, delta.Y drives pitch.
func (oc *OrbitController) Rotate(delta mgl32.Vec2) {
	dx, dy := delta.X()*oc.rotateSensitivity, delta.Y()*oc.rotateSensitivity
	if !isFinite(dx) || !isFinite(dy) {
		return
	}
	oc.yaw = wrapAngle(oc.yaw - dx)
	oc.pitch = clampPitch(oc.pitch - dy)
}

// Pan slides the target (and with it the camera) in the view plane. The step
// grows with radius so panning feels the same at any distance.
func (oc *OrbitController) Pan(delta mgl32.Vec2) {
	scale := oc.radius * oc.panSensitivity
	dx, dy := delta.X()*scale, delta.Y()*scale
	if !isFinite(dx) || !isFinite(dy) {
		return
	}
	rot := oc.Rotation()
	right := rot.Rotate(mgl32.Vec3{1, 0, 0})
	up := rot.Rotate(mgl32.Vec3{0, 1, 0})
	oc.target = oc.target.Add(right.Mul(dx)).Add(up.Mul(dy))
}

// Zoom scales the radius by factor, clamped to the radius bounds. Factors of zero
// or below land on the minimum radius; non-finite factors are ignored.
func (oc *OrbitController) Zoom(factor float32) {
	if !isFinite(factor) {
		return
	}
	oc.radius = mgl32.Clamp(oc.radius*factor, oc.radiusMin, oc.radiusMax)
}

// Position is the eye point: target + radius * (cos p sin y, sin p, cos p cos y).
func (oc *OrbitController) Position() mgl32.Vec3 {
	sinYaw, cosYaw := math32.Sincos(oc.yaw)
	sinPitch, cosPitch := math32.Sincos(oc.pitch)
	offset := mgl32.Vec3{
		cosPitch * sinYaw,
		sinPitch,
		cosPitch * cosYaw,
	}
	return oc.target.Add(offset.Mul(oc.radius))
}

// Rotation orients the camera so its -Z axis points at the target.
func (oc *OrbitController) Rotation() mgl32.Quat {
	return yawPitchRotation(oc.yaw, -oc.pitch)
}

func (oc *OrbitController) Pose() (mgl32.Vec3, mgl32.Quat) {
	return oc.Position(), oc.Rotation()
}

func (oc *OrbitController) Update(target *Transform) {
	target.Position, target.Rotation = oc.Pose()
}
