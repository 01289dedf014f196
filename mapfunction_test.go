/* Copyright (C) 2020 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package goqtl

/* -------------------------------------------------------------------------- */

import "math"
import "testing"

/* -------------------------------------------------------------------------- */

func TestMapFunctions(t *testing.T) {

  for _, mapFunction := range []MapFunction{HaldaneMapFunction{}, KosambiMapFunction{}} {
    if mapFunction.RecombFrac(0.0) != 0.0 {
      t.Error("test failed")
    }
    for _, d := range []float64{1.0, 5.0, 10.0, 50.0} {
      r := mapFunction.RecombFrac(d)
      if r <= 0.0 || r >= 0.5 {
        t.Error("test failed")
      }
      if math.Abs(mapFunction.Distance(r) - d) > 1e-9 {
        t.Error("test failed")
      }
    }
  }
  // haldane at 10 cM
  if math.Abs(HaldaneMapFunction{}.RecombFrac(10.0) - 0.5*(1.0-math.Exp(-0.2))) > 1e-12 {
    t.Error("test failed")
  }
}

func TestRecombinationFractions(t *testing.T) {

  positions := []float64{0.0, 10.0, 20.0, 40.0}

  recombFracs, err := RecombinationFractions(positions, HaldaneMapFunction{})
  if err != nil {
    t.Error("test failed")
  }
  if len(recombFracs) != 3 {
    t.Error("test failed")
  }
  if math.Abs(recombFracs[0] - recombFracs[1]) > 1e-12 {
    t.Error("test failed")
  }
  if recombFracs[2] <= recombFracs[1] {
    t.Error("test failed")
  }
  if _, err := RecombinationFractions([]float64{10.0, 0.0}, HaldaneMapFunction{}); err == nil {
    t.Error("test failed")
  }
}
