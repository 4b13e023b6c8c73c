// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grd implements square grids of evaluation points centred on wells and basins
//
//   local:  -gr ≤ x,y ≤ gr with grdim × grdim points (end points included)
//   world:  local (rotated by the basin rotation, if any) + centre
//
package grd

import (
	"math"

	"github.com/cpmech/gaf/geo"
	"github.com/cpmech/gaf/prm"
	"github.com/cpmech/gosl/utl"
)

// limits of grid density
const (
	MinDensity = 10 // minimum number of rows
	MaxDensity = 40 // maximum number of rows
)

// Centred is implemented by objects with a centre; e.g. wells and basins
type Centred interface {
	Centre() (x, y float64)
}

// Rotated is implemented by objects with a clockwise rotation angle in radians
type Rotated interface {
	Centred
	RotRad() float64
}

// Points holds the grid points, row by row; i.e. point k = i*grdim + j is at row i and column j
type Points struct {
	Locx, Locy     []float64 // local coordinates
	Worldx, Worldy []float64 // world coordinates
	Rad            []float64 // distance to centre (well grids)
	Dx, Dy         []float64 // unrotated offsets from centre (basin grids)
}

// Grid holds the size and density of a grid
type Grid struct {
	Gr float64 // radius: half-width of grid
	Gd int     // requested density; clamped to [MinDensity, MaxDensity]
}

// Grdim returns the number of rows (and columns) after clamping the density
func (o Grid) Grdim() int {
	if o.Gd < MinDensity {
		return MinDensity
	}
	if o.Gd > MaxDensity {
		return MaxDensity
	}
	return o.Gd
}

// Npts returns the number of points
func (o Grid) Npts() int {
	n := o.Grdim()
	return n * n
}

// Clamped tells whether the requested density was changed
func (o Grid) Clamped() bool {
	return o.Gd != o.Grdim()
}

// local computes the local coordinates
func (o Grid) local() (locx, locy []float64) {
	n := o.Grdim()
	line := utl.LinSpace(-o.Gr, o.Gr, n)
	locx = make([]float64, n*n)
	locy = make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			locx[i*n+j] = line[j]
			locy[i*n+j] = line[i]
		}
	}
	return
}

// WellGrid is a grid centred on a well
type WellGrid struct {
	Grid
	Well Centred // centre
}

// NewWellGrid returns a new grid with radius gr > 0 and requested density gd
func NewWellGrid(well Centred, gr float64, gd int) (*WellGrid, error) {
	if err := prm.Check("gr", gr, prm.Positive); err != nil {
		return nil, err
	}
	return &WellGrid{Grid{gr, gd}, well}, nil
}

// Points computes the grid points
func (o WellGrid) Points() (p *Points) {
	p = new(Points)
	p.Locx, p.Locy = o.local()
	cx, cy := o.Well.Centre()
	n := len(p.Locx)
	p.Worldx = make([]float64, n)
	p.Worldy = make([]float64, n)
	p.Rad = make([]float64, n)
	for k := 0; k < n; k++ {
		p.Worldx[k] = p.Locx[k] + cx
		p.Worldy[k] = p.Locy[k] + cy
		p.Rad[k] = math.Sqrt(p.Locx[k]*p.Locx[k] + p.Locy[k]*p.Locy[k])
	}
	return
}

// BasinGrid is a grid centred on a basin and aligned with its rotated axes
type BasinGrid struct {
	Grid
	Basin Rotated // centre and orientation
}

// NewBasinGrid returns a new grid with radius gr > 0 and requested density gd
func NewBasinGrid(basin Rotated, gr float64, gd int) (*BasinGrid, error) {
	if err := prm.Check("gr", gr, prm.Positive); err != nil {
		return nil, err
	}
	return &BasinGrid{Grid{gr, gd}, basin}, nil
}

// Points computes the grid points. Local coordinates are rotated about the origin
// before being translated to world coordinates; Dx and Dy keep the unrotated offsets
func (o BasinGrid) Points() (p *Points) {
	p = new(Points)
	p.Dx, p.Dy = o.local()
	p.Locx, p.Locy = geo.RotatePoints(0, 0, p.Dx, p.Dy, o.Basin.RotRad())
	cx, cy := o.Basin.Centre()
	n := len(p.Locx)
	p.Worldx = make([]float64, n)
	p.Worldy = make([]float64, n)
	for k := 0; k < n; k++ {
		p.Worldx[k] = p.Locx[k] + cx
		p.Worldy[k] = p.Locy[k] + cy
	}
	return
}
