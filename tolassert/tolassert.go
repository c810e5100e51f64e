// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (in other words, approximate equality).
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Equal asserts that the two numbers are within a tolerance of
// each other. An optional different tolerance can be passed;
// the default tolerance is 0.001.
func Equal(t *testing.T, want, have float32, tols ...float32) bool {
	t.Helper()
	tol := float32(0.001)
	if len(tols) > 0 {
		tol = tols[0]
	}
	return assert.InDelta(t, want, have, float64(tol))
}
