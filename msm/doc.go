// Package msm implements von Neumann's middle-square method.
//
// Each step squares the d-digit state, left-pads the square with zeros to at
// least 2d digits and keeps the middle d digits:
//
//	675248² = 455959861504  →  "455959861504"  →  959861
//
// The sample is state / 10ᵈ. The method is historically important and
// statistically poor: sequences fall into short cycles or collapse to zero
// (2500 with d=4 is a fixed point). It is included as a comparison baseline.
package msm
