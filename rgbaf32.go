// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import "image/color"

// RGBAf32 stores alpha-premultiplied RGBA values in float32 0..1
// normalized format -- more useful for converting to other spaces.
type RGBAf32 struct {
	R, G, B, A float32
}

// RGBA implements the color.Color interface.
func (c RGBAf32) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R*65535.0 + 0.5)
	g = uint32(c.G*65535.0 + 0.5)
	b = uint32(c.B*65535.0 + 0.5)
	a = uint32(c.A*65535.0 + 0.5)
	return
}

// NPFloat32 implements [NPColor], dividing the alpha back out
// of the components.
func (c RGBAf32) NPFloat32() (r, g, b, a float32) {
	r, g, b, a = c.R, c.G, c.B, c.A
	if a != 0 {
		r /= a
		g /= a
		b /= a
	}
	return
}

// NRGBAf32 stores non-alpha-premultiplied RGBA values in float32 0..1
// normalized format -- more useful for converting to other spaces.
type NRGBAf32 struct {
	R, G, B, A float32
}

// RGBA implements the color.Color interface.
func (c NRGBAf32) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R*c.A*65535.0 + 0.5)
	g = uint32(c.G*c.A*65535.0 + 0.5)
	b = uint32(c.B*c.A*65535.0 + 0.5)
	a = uint32(c.A*65535.0 + 0.5)
	return
}

// NPFloat32 implements [NPColor], returning the components directly.
func (c NRGBAf32) NPFloat32() (r, g, b, a float32) {
	return c.R, c.G, c.B, c.A
}

// Models for converting to the float32 RGBA types.
var (
	RGBAf32Model  color.Model = color.ModelFunc(rgbaf32Model)
	NRGBAf32Model color.Model = color.ModelFunc(nrgbaf32Model)
)

func rgbaf32Model(c color.Color) color.Color {
	if _, ok := c.(RGBAf32); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	return RGBAf32{float32(r) / 65535.0, float32(g) / 65535.0, float32(b) / 65535.0, float32(a) / 65535.0}
}

func nrgbaf32Model(c color.Color) color.Color {
	if _, ok := c.(NRGBAf32); ok {
		return c
	}
	if np, ok := c.(NPColor); ok {
		r, g, b, a := np.NPFloat32()
		return NRGBAf32{r, g, b, a}
	}
	r, g, b, a := c.RGBA()
	fr := float32(r) / 65535.0
	fg := float32(g) / 65535.0
	fb := float32(b) / 65535.0
	fa := float32(a) / 65535.0
	if fa != 0 {
		// Since color.Color is alpha pre-multiplied, we need to divide the
		// RGB values by alpha again in order to get back the original RGB.
		fr /= fa
		fg /= fa
		fb /= fa
	}
	return NRGBAf32{fr, fg, fb, fa}
}
