// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import "goki.dev/mat32/v2"

// RGBtoHSLf32 converts RGB 0..1 values (non alpha-premultiplied) to HSL,
// with the hue in degrees [0..360) -- based on
// https://stackoverflow.com/questions/2353211/hsl-to-rgb-color-conversion,
// https://www.w3.org/TR/css-color-3/ and github.com/lucasb-eyer/go-colorful.
// Achromatic colors (max == min) have saturation 0 and, by convention,
// hue 0. No validation or clamping is performed: out-of-range inputs
// propagate through the arithmetic. A non-finite input panics.
func RGBtoHSLf32(r, g, b float32) (h, s, l float32) {
	min := mat32.Min(mat32.Min(r, g), b)
	max := mat32.Max(mat32.Max(r, g), b)

	l = (max + min) / 2

	if min == max {
		return 0, 0, l
	}

	d := max - min
	switch {
	case l == 0:
		s = 0
	case l <= 0.5:
		s = d / (max + min)
	default:
		s = d / (2 - max - min)
	}

	switch max {
	case r:
		h = 60 * (g - b) / d
		if g < b {
			h += 360
		}
	case g:
		h = 60*(b-r)/d + 120
	case b:
		h = 60*(r-g)/d + 240
	default:
		// only reachable with a NaN component
		panic("hsl: no maximum RGB channel -- non-finite input")
	}
	return
}

// HSLtoRGBf32 converts HSL values to RGB float32 0..1 values (non
// alpha-premultiplied) -- based on
// https://stackoverflow.com/questions/2353211/hsl-to-rgb-color-conversion,
// https://www.w3.org/TR/css-color-3/ and github.com/lucasb-eyer/go-colorful.
// Zero saturation short-circuits to the achromatic gray (l, l, l).
func HSLtoRGBf32(h, s, l float32) (r, g, b float32) {
	if s == 0 {
		r = l
		g = l
		b = l
		return
	}

	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hn := h / 360 // convert to normalized 0-1 h
	r = hueToRGBf32(p, q, hn+1.0/3.0)
	g = hueToRGBf32(p, q, hn)
	b = hueToRGBf32(p, q, hn-1.0/3.0)
	return
}

// RGBAtoHSLAf32 converts RGBA 0..1 values (non alpha-premultiplied)
// to HSLA. Alpha passes through unchanged.
func RGBAtoHSLAf32(r, g, b, a float32) (h, s, l, ha float32) {
	h, s, l = RGBtoHSLf32(r, g, b)
	ha = a
	return
}

// HSLAtoRGBAf32 converts HSLA values to RGBA float32 0..1 values (non
// alpha-premultiplied). Alpha passes through unchanged.
func HSLAtoRGBAf32(h, s, l, a float32) (r, g, b, ra float32) {
	r, g, b = HSLtoRGBf32(h, s, l)
	ra = a
	return
}

// hueToRGBf32 is the piecewise-linear basis function giving one RGB
// channel's value at hue phase t: rising edge below 1/6, plateau below
// 1/2, falling edge below 2/3, and baseline p above that. The one-step
// wrap uses strict comparisons, so a phase of exactly 1 lands on the
// baseline branch.
func hueToRGBf32(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6.0*t
	}
	if t < .5 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6.0
	}
	return p
}
