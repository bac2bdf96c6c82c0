// Copyright 2026 The tiny-draw Authors
// SPDX-License-Identifier: BSD-3-Clause

package memhost

import "github.com/zeronehost/tiny-draw/host"

func init() {
	host.Register("memory", 10, func() (host.Document, error) {
		return NewDocument(), nil
	}, nil)
}
