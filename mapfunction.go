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

import "fmt"
import "math"

/* -------------------------------------------------------------------------- */

// A MapFunction converts genetic map distances in centiMorgan to
// recombination fractions and back.
type MapFunction interface {
  RecombFrac(distance float64) float64
  Distance  (recombFrac float64) float64
  String    ()                   string
}

/* -------------------------------------------------------------------------- */

type HaldaneMapFunction struct {
}

func (HaldaneMapFunction) RecombFrac(distance float64) float64 {
  return 0.5*(1.0 - math.Exp(-2.0*distance/100.0))
}

func (HaldaneMapFunction) Distance(recombFrac float64) float64 {
  return -50.0*math.Log(1.0 - 2.0*recombFrac)
}

func (HaldaneMapFunction) String() string {
  return "haldane"
}

/* -------------------------------------------------------------------------- */

type KosambiMapFunction struct {
}

func (KosambiMapFunction) RecombFrac(distance float64) float64 {
  return 0.5*math.Tanh(2.0*distance/100.0)
}

func (KosambiMapFunction) Distance(recombFrac float64) float64 {
  return 25.0*math.Log((1.0 + 2.0*recombFrac)/(1.0 - 2.0*recombFrac))
}

func (KosambiMapFunction) String() string {
  return "kosambi"
}

/* -------------------------------------------------------------------------- */

func ParseMapFunction(str string) (MapFunction, error) {
  switch str {
  case "haldane": return HaldaneMapFunction{}, nil
  case "kosambi": return KosambiMapFunction{}, nil
  default:
    return nil, fmt.Errorf("ParseMapFunction(): `%s' is not a valid map function", str)
  }
}

/* -------------------------------------------------------------------------- */

// Convert the distances between consecutive map positions into
// recombination fractions. Positions must be sorted in increasing order.
func RecombinationFractions(positions []float64, mapFunction MapFunction) ([]float64, error) {
  if len(positions) == 0 {
    return nil, nil
  }
  recombFracs := make([]float64, len(positions)-1)
  for i := 1; i < len(positions); i++ {
    if positions[i] < positions[i-1] {
      return nil, fmt.Errorf("RecombinationFractions(): positions are not sorted")
    }
    recombFracs[i-1] = mapFunction.RecombFrac(positions[i] - positions[i-1])
  }
  return recombFracs, nil
}
