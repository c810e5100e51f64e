// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"goki.dev/hsl/tolassert"
)

func TestHSL(t *testing.T) {
	assert.Equal(t, HSL{100, 0.87, 0.56, 1}, New(100, 0.87, 0.56))

	want := HSL{20.583939, 0.6372093, 0.5576132, 0.9529412}
	assert.Equal(t, want, Model.Convert(want))
	have := Model.Convert(color.RGBA{204, 114, 67, 243}).(HSL)
	tolassert.Equal(t, want.H, have.H)
	tolassert.Equal(t, want.S, have.S)
	tolassert.Equal(t, want.L, have.L)
	tolassert.Equal(t, want.A, have.A)

	r, g, b, a := want.RGBA()
	assert.Equal(t, uint32(0xcccc), r)
	assert.Equal(t, uint32(0x7272), g)
	assert.Equal(t, uint32(0x4343), b)
	assert.Equal(t, uint32(0xf3f3), a)

	assert.Equal(t, color.RGBA{204, 114, 67, 243}, want.AsRGBA())

	have = HSL{}
	have.SetUint32(r, g, b, a)
	tolassert.Equal(t, want.H, have.H)
	tolassert.Equal(t, want.S, have.S)
	tolassert.Equal(t, want.L, have.L)
	tolassert.Equal(t, want.A, have.A)

	have = HSL{}
	have.SetColor(want)
	tolassert.Equal(t, want.H, have.H)
	tolassert.Equal(t, want.S, have.S)
	tolassert.Equal(t, want.L, have.L)
	tolassert.Equal(t, want.A, have.A)

	assert.Equal(t, "hsl(86, 0.54, 0.97)", New(86, 0.54, 0.97).String())
}

func TestFromNPFloat32(t *testing.T) {
	have := FromNPFloat32(0.8, 0.447, 0.263, 0.9)
	tolassert.Equal(t, 20.558, have.H, 0.01)
	tolassert.Equal(t, 0.5731, have.S)
	tolassert.Equal(t, 0.5315, have.L)
	assert.Equal(t, float32(0.9), have.A)

	r, g, b, a := have.NPFloat32()
	tolassert.Equal(t, 0.8, r)
	tolassert.Equal(t, 0.447, g)
	tolassert.Equal(t, 0.263, b)
	assert.Equal(t, float32(0.9), a)
}
