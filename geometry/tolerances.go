package geometry

// Per-algorithm tolerances. These are deliberately distinct constants: the
// matrix-singularity guard, the proper-rotation check, and the slerp
// collinearity cutoff protect different formulas and drift independently.
const (
	// epsSingular guards the conversion formulas whose denominator vanishes
	// at the identity and at 180 degrees.
	epsSingular = 1.0e-12

	// epsRotation is the tolerance used when validating that a 3x3 matrix is
	// a proper rotation (orthonormal, determinant +1).
	epsRotation = 1.0e-7

	// epsSlerp is the dot-product cutoff below which slerp falls back to a
	// normalized linear interpolation.
	epsSlerp = 1.0e-9

	// epsPlane bounds the out-of-plane components tolerated by the opt-in
	// XY-plane checks on 2D transforms.
	epsPlane = 1.0e-12

	// epsZeroScale is the magnitude below which a diagonal scale component
	// counts as zero and is rejected as non-invertible.
	epsZeroScale = 1.0e-12
)
