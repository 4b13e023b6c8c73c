// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements the planar transforms shared by wells, basins and grids
package geo

import "math"

// Point holds planar coordinates
type Point struct {
	X, Y float64
}

// Deg2Rad converts degrees to radians as deg・2π/360
func Deg2Rad(deg float64) float64 {
	return deg * 2 * math.Pi / 360
}

// RotatePoint rotates (x1,y1) about (x0,y0) by phi radians; positive phi is clockwise
//
//   x' = x0 + (x1-x0)・cos(-φ) - (y1-y0)・sin(-φ)
//   y' = y0 + (y1-y0)・cos(-φ) + (x1-x0)・sin(-φ)
//
func RotatePoint(x0, y0, x1, y1, phi float64) (xr, yr float64) {
	xr = x0 + (x1-x0)*math.Cos(-phi) - (y1-y0)*math.Sin(-phi)
	yr = y0 + (y1-y0)*math.Cos(-phi) + (x1-x0)*math.Sin(-phi)
	return
}

// RotatePoints rotates all points (x[i],y[i]) about (x0,y0)
func RotatePoints(x0, y0 float64, x, y []float64, phi float64) (xr, yr []float64) {
	n := len(x)
	xr = make([]float64, n)
	yr = make([]float64, n)
	for i := 0; i < n; i++ {
		xr[i], yr[i] = RotatePoint(x0, y0, x[i], y[i], phi)
	}
	return
}
