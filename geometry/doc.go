// Package geometry provides allocation-free 3D rotation representations
// (quaternion, axis-angle, rotation matrix, rotation vector, yaw-pitch-roll)
// and the guarded conversions and transform operations between them.
//
// All representation types are mutable value objects initialized to the
// identity rotation. Operations write into caller-provided destinations and
// never allocate, so they are safe for tight real-time loops. Output
// parameters may alias inputs; every compose/transform buffers its
// intermediate products before writing.
//
// NaN is a valid degenerate state, not an error: any NaN input component
// makes every component of the result NaN. Logical violations (setting a
// non-rotation matrix, a zero scale, a wrong-sized buffer) return errors and
// leave the target unchanged.
package geometry
