// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gaf/prm"
)

// constants for the well function
const (
	euler   = 0.57721566490153286061 // Euler-Mascheroni constant
	wfEps   = 1e-15                  // relative tolerance
	wfMaxIt = 200                    // maximum number of terms
	wfTiny  = 1e-300                 // avoids division by zero in the continued fraction
)

// W computes the Theis well function (exponential integral E₁)
//
//              ∞
//   W(u) =  ⌠  exp(-y) / y dy
//           ⌡ u
//
//   u ≤ 1:  W = -γ - ln(u) - Σ (-u)ᵏ / (k・k!)
//   u > 1:  continued fraction (modified Lentz)
//
// W(u) = +Inf for u ≤ 0
func W(u float64) float64 {
	if u <= 0 {
		return math.Inf(1)
	}
	if u > 1 {
		b := u + 1
		c := 1 / wfTiny
		d := 1 / b
		h := d
		for i := 1; i <= wfMaxIt; i++ {
			an := -float64(i * i)
			b += 2
			d = 1 / (an*d + b)
			c = b + an/c
			del := c * d
			h *= del
			if math.Abs(del-1) < wfEps {
				break
			}
		}
		return h * math.Exp(-u)
	}
	sum, term := 0.0, 1.0
	for k := 1; k <= wfMaxIt; k++ {
		term *= -u / float64(k)
		del := -term / float64(k)
		sum += del
		if math.Abs(del) < math.Abs(sum)*wfEps {
			break
		}
	}
	return -euler - math.Log(u) + sum
}

// TheisU computes the argument of the well function u = r²・S / (4・T・t)
func TheisU(r, t, T, S float64) float64 {
	return r * r * S / (4 * T * t)
}

// TheisRinf computes the radius of influence: the radius enclosing the fraction qf of
// the well rate at time t
//
//   rinf = sqrt(-4・T・t・ln(1 - qf) / S)
//
// qf must be in [0,1); rinf(qf=0) = 0
func TheisRinf(T, S, t, qf float64) (float64, error) {
	if err := prm.Check("qf", qf, prm.Fraction); err != nil {
		return 0, err
	}
	if t <= 0 {
		return 0, inputErr("time must be greater than zero; %g is invalid", t)
	}
	return math.Sqrt(-4 * T * t * math.Log(1-qf) / S), nil
}
