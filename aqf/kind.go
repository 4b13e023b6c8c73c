// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aqf

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Kind discriminates aquifer categories
type Kind int

// kinds
const (
	Conf2d         Kind = iota // 2D confined, infinite lateral extent
	Unconf2d                   // 2D unconfined, infinite lateral extent
	FiniteConf1d               // 1D finite confined, 0 ≤ x ≤ L
	FiniteUnconf1d             // 1D finite unconfined, 0 ≤ x ≤ L
	SemiConf1d                 // 1D semi-infinite confined, x ≥ 0
	SemiUnconf1d               // 1D semi-infinite unconfined, x ≥ 0
	Leaky2d                    // 2D confined, leaking through an overlying aquitard
)

// Extent describes the lateral extent of an aquifer
type Extent int

// extents
const (
	Infinite Extent = iota
	SemiInfinite
	Finite
)

var kindNames = []string{"conf2d", "unconf2d", "finiteconf1d", "finiteunconf1d", "semiconf1d", "semiunconf1d", "leaky2d"}

var kindDescs = []string{
	"2D, confined homogeneous aquifer",
	"2D, unconfined homogeneous aquifer",
	"1D, finite, confined homogeneous aquifer",
	"1D, finite, unconfined homogeneous aquifer",
	"1D, semi-infinite, confined homogeneous aquifer",
	"1D, semi-infinite, unconfined homogeneous aquifer",
	"2D, leaky confined homogeneous aquifer",
}

// ParseKind returns the kind named s; e.g. "conf2d"
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if name == key {
			return Kind(i), nil
		}
	}
	return 0, chk.Err("aquifer kind %q is not available. options: %v", s, kindNames)
}

// String returns the key of kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Desc returns a description of kind
func (k Kind) Desc() string {
	if k < 0 || int(k) >= len(kindDescs) {
		return "unknown"
	}
	return kindDescs[k]
}

// Confined tells whether storage is confined (Ss) instead of specific yield (Sy)
func (k Kind) Confined() bool {
	switch k {
	case Conf2d, FiniteConf1d, SemiConf1d, Leaky2d:
		return true
	}
	return false
}

// Leaky tells whether the aquifer has an aquitard with leakage
func (k Kind) Leaky() bool {
	return k == Leaky2d
}

// Dim returns the space dimension of flow
func (k Kind) Dim() int {
	switch k {
	case Conf2d, Unconf2d, Leaky2d:
		return 2
	}
	return 1
}

// Extent returns the lateral extent
func (k Kind) Extent() Extent {
	switch k {
	case FiniteConf1d, FiniteUnconf1d:
		return Finite
	case SemiConf1d, SemiUnconf1d:
		return SemiInfinite
	}
	return Infinite
}
