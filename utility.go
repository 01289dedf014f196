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
import "os"

/* -------------------------------------------------------------------------- */

// Compute log(exp(a) + exp(b)) without leaving log space.
func logAdd(a, b float64) float64 {
  if math.IsInf(a, -1) {
    return b
  }
  if math.IsInf(b, -1) {
    return a
  }
  if a > b {
    return a + math.Log1p(math.Exp(b-a))
  }
  return b + math.Log1p(math.Exp(a-b))
}

func logSumExp(values []float64) float64 {
  r := math.Inf(-1)
  for _, v := range values {
    r = logAdd(r, v)
  }
  return r
}

/* -------------------------------------------------------------------------- */

func isGzip(filename string) bool {

  f, err := os.Open(filename)
  if err != nil {
    return false
  }
  defer f.Close()

  b := make([]byte, 2)
  n, err := f.Read(b)
  if err != nil {
    return false
  }

  if n == 2 && b[0] == 31 && b[1] == 139 {
    return true
  }
  return false
}
