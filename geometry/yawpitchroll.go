package geometry

// YawPitchRoll holds the Euler-angle parameterization of an orientation as
// successive intrinsic rotations Z(yaw), Y(pitch), X(roll). It is a transient
// parameterization with no invariant of its own; it must never be confused
// with a rotation vector, whose three components are an axis scaled by an
// angle.
type YawPitchRoll struct {
	Yaw   float64
	Pitch float64
	Roll  float64
}

// SetToZero resets the angles to the identity orientation.
func (ypr *YawPitchRoll) SetToZero() {
	ypr.Yaw, ypr.Pitch, ypr.Roll = 0, 0, 0
}

// SetToNaN marks every angle as NaN.
func (ypr *YawPitchRoll) SetToNaN() {
	ypr.Yaw, ypr.Pitch, ypr.Roll = nan, nan, nan
}

// ContainsNaN reports whether any angle is NaN.
func (ypr *YawPitchRoll) ContainsNaN() bool {
	return containsNaN3(ypr.Yaw, ypr.Pitch, ypr.Roll)
}
