// Copyright 2026 The tiny-draw Authors
// SPDX-License-Identifier: BSD-3-Clause

package memhost

import (
	"strconv"

	"github.com/zeronehost/tiny-draw/host"
)

func sizeArg(w, h int) string {
	return strconv.Itoa(w) + "x" + strconv.Itoa(h)
}

func matrixArg(m host.Matrix) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return "matrix(" + f(m.A) + ", " + f(m.B) + ", " + f(m.C) + ", " +
		f(m.D) + ", " + f(m.E) + ", " + f(m.F) + ")"
}
