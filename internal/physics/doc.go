// Package physics provides the pure math of the simulation: gravitational
// time dilation for a non-rotating (Schwarzschild) mass, coordinate
// conversions, and the disk's orbital rate. No state, no rendering.
//
// The dilation formula sqrt(1 - rs/r) is the weak-field textbook form and
// is knowingly wrong close to the horizon; it clamps to zero there instead
// of signaling, because the display wants a frozen clock, not an error.
package physics
