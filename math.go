package rendiation

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch keeps pitch strictly inside (-π/2, π/2) so the look direction never
// becomes parallel to world up.
const MaxPitch = math32.Pi/2 - 0.01

var worldUp = mgl32.Vec3{0, 1, 0}

func isFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

func clampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, -MaxPitch, MaxPitch)
}

// wrapAngle maps a into [-π, π).
func wrapAngle(a float32) float32 {
	const twoPi = 2 * math32.Pi
	a = math32.Mod(a+math32.Pi, twoPi)
	if a < 0 {
		a += twoPi
	}
	// a+twoPi can round up to twoPi itself
	if a >= twoPi {
		a = 0
	}
	return a - math32.Pi
}

// yawPitchRotation builds Ry(yaw) * Rx(pitch). Rebuilt from the angles on every call,
// so the result is always a unit quaternion.
func yawPitchRotation(yaw, pitch float32) mgl32.Quat {
	ry := mgl32.QuatRotate(yaw, worldUp)
	rx := mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0})
	return ry.Mul(rx).Normalize()
}
