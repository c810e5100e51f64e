// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl provides the HSL (hue, saturation, lightness) color
// model, with conversion to and from RGBA values. The alpha channel
// passes through both conversion directions unchanged.
package hsl

import (
	"fmt"
	"image/color"
)

// HSL represents the Hue [0..360], Saturation [0..1], and Luminance
// (lightness) [0..1] of a color, along with its Alpha [0..1],
// using float32 values.
type HSL struct {
	H, S, L, A float32
}

// New returns a new HSL color with the given hue, saturation,
// and lightness, and a fully opaque alpha.
func New(hue, saturation, lightness float32) HSL {
	return HSL{hue, saturation, lightness, 1}
}

// FromColor returns an HSL color from the given [color.Color].
func FromColor(c color.Color) HSL {
	h := HSL{}
	h.SetColor(c)
	return h
}

// FromNPFloat32 returns an HSL color from the given
// non-alpha-premultiplied RGBA components.
func FromNPFloat32(r, g, b, a float32) HSL {
	h := HSL{}
	h.SetNPFloat32(r, g, b, a)
	return h
}

// NPColor is a color that can report its non-alpha-premultiplied RGBA
// components directly as float32 values in the 0..1 range. Conversions
// prefer this over the uint32 channels of [color.Color], which quantize
// the components to 16 bits.
type NPColor interface {
	NPFloat32() (r, g, b, a float32)
}

// Model is the standard [color.Model] that converts colors to HSL.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HSL); ok {
		return h
	}
	return FromColor(c)
}

// RGBA implements the color.Color interface.
// The returned values are alpha-premultiplied, per that interface.
func (h HSL) RGBA() (r, g, b, a uint32) {
	fr, fg, fb := HSLtoRGBf32(h.H, h.S, h.L)
	r = uint32(fr*h.A*65535 + 0.5)
	g = uint32(fg*h.A*65535 + 0.5)
	b = uint32(fb*h.A*65535 + 0.5)
	a = uint32(h.A*65535 + 0.5)
	return
}

// AsRGBA returns the color as a [color.RGBA].
func (h HSL) AsRGBA() color.RGBA {
	fr, fg, fb := HSLtoRGBf32(h.H, h.S, h.L)
	return color.RGBA{
		uint8(fr*h.A*255 + 0.5),
		uint8(fg*h.A*255 + 0.5),
		uint8(fb*h.A*255 + 0.5),
		uint8(h.A*255 + 0.5),
	}
}

// NPFloat32 returns the color as non-alpha-premultiplied RGBA
// float32 components, implementing [NPColor].
func (h HSL) NPFloat32() (r, g, b, a float32) {
	r, g, b = HSLtoRGBf32(h.H, h.S, h.L)
	a = h.A
	return
}

// SetUint32 sets the color from the given alpha-premultiplied 16-bit
// channel values, as returned by [color.Color.RGBA].
func (h *HSL) SetUint32(r, g, b, a uint32) {
	fr := float32(r) / 65535
	fg := float32(g) / 65535
	fb := float32(b) / 65535
	fa := float32(a) / 65535
	if fa != 0 {
		// channels are alpha-premultiplied, so we need to divide by
		// alpha to get back the original RGB
		fr /= fa
		fg /= fa
		fb /= fa
	}
	h.SetNPFloat32(fr, fg, fb, fa)
}

// SetNPFloat32 sets the color from the given non-alpha-premultiplied
// RGBA components.
func (h *HSL) SetNPFloat32(r, g, b, a float32) {
	h.H, h.S, h.L = RGBtoHSLf32(r, g, b)
	h.A = a
}

// SetColor sets the color from the given [color.Color], using the
// float32 components directly when the color implements [NPColor].
func (h *HSL) SetColor(c color.Color) {
	if np, ok := c.(NPColor); ok {
		h.SetNPFloat32(np.NPFloat32())
		return
	}
	h.SetUint32(c.RGBA())
}

// String implements the fmt.Stringer interface,
// returning the color in hsl(h, s, l) form.
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g)", h.H, h.S, h.L)
}
