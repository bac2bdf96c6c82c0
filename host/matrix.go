// Copyright 2026 The tiny-draw Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import "math"

// Matrix is a 2D affine transform in canvas setTransform order:
//
//	| A  C  E |
//	| B  D  F |
//
// which maps
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Scale returns a scaling transform.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, D: y}
}

// TransformPoint applies the transform to (x, y).
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Invert returns the inverse transform.
// Returns the identity if the matrix is singular.
func (m Matrix) Invert() Matrix {
	det := m.A*m.D - m.B*m.C
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	inv := 1.0 / det
	return Matrix{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
		E: (m.C*m.F - m.D*m.E) * inv,
		F: (m.B*m.E - m.A*m.F) * inv,
	}
}
