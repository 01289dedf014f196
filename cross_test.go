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

func TestCrossInit(t *testing.T) {

  cross := NewCross(F2)

  result := map[bool]float64{
    true : math.Log(0.25),
    false: math.Log(0.5)}

  sum := 0.0
  for _, g := range cross.Genotypes() {
    p, err := cross.Init(g)
    if err != nil {
      t.Error("test failed")
    }
    if math.Abs(p - result[g.Homozygous()]) > 1e-12 {
      t.Error("test failed")
    }
    sum += math.Exp(p)
  }
  if math.Abs(sum - 1.0) > 1e-12 {
    t.Error("test failed")
  }
  for _, crossType := range []CrossType{BC, RISELF, RISIB} {
    cross := NewCross(crossType)
    for _, g := range cross.Genotypes() {
      if p, err := cross.Init(g); err != nil || math.Abs(p - math.Log(0.5)) > 1e-12 {
        t.Error("test failed")
      }
    }
  }
}

func TestCrossInitIncompatible(t *testing.T) {

  cross := NewCross(BC)

  if _, err := cross.Init(NewTrueGenotype(1, 1)); err == nil {
    t.Error("test failed")
  } else
  if _, ok := err.(IncompatibleCrossError); !ok {
    t.Error("test failed")
  }
}

func TestCrossEmit(t *testing.T) {

  cross     := NewCross(F2)
  registry  := DefaultGenotypeRegistry(cross)
  errorProb := 0.01

  aa := NewTrueGenotype(0, 0)
  ab := NewTrueGenotype(0, 1)
  bb := NewTrueGenotype(1, 1)

  symbol := func(name string) *GenotypeSymbolMapper {
    s, err := registry.Decode(name)
    if err != nil {
      t.Fatal(err)
    }
    return s
  }
  // missing observations have probability one
  if p, err := cross.Emit(registry.Missing(), aa, errorProb); err != nil || p != 0.0 {
    t.Error("test failed")
  }
  // exact match
  if p, err := cross.Emit(symbol("A"), aa, errorProb); err != nil ||
     math.Abs(p - math.Log(1.0-errorProb)) > 1e-12 {
    t.Error("test failed")
  }
  // mismatch against an unambiguous symbol splits the error mass among
  // the two alternative genotypes
  if p, err := cross.Emit(symbol("A"), ab, errorProb); err != nil ||
     math.Abs(p - math.Log(errorProb/2.0)) > 1e-12 {
    t.Error("test failed")
  }
  // the ambiguous symbol D (not B) is compatible with two genotypes
  if p, err := cross.Emit(symbol("D"), aa, errorProb); err != nil ||
     math.Abs(p - math.Log(1.0-errorProb/2.0)) > 1e-12 {
    t.Error("test failed")
  }
  if p, err := cross.Emit(symbol("D"), bb, errorProb); err != nil ||
     math.Abs(p - math.Log(errorProb)) > 1e-12 {
    t.Error("test failed")
  }
  // the heterozygote matches regardless of phase
  if p, err := cross.Emit(symbol("H"), ab, errorProb); err != nil ||
     math.Abs(p - math.Log(1.0-errorProb)) > 1e-12 {
    t.Error("test failed")
  }
}

func TestCrossStepF2(t *testing.T) {

  cross := NewCross(F2)
  r     := 0.1

  // each row of the transition kernel sums to one
  for _, g1 := range cross.Genotypes() {
    sum := 0.0
    for _, g2 := range cross.Genotypes() {
      p, err := cross.Step(g1, g2, r)
      if err != nil {
        t.Error("test failed")
      }
      sum += math.Exp(p)
    }
    if math.Abs(sum - 1.0) > 1e-12 {
      t.Error("test failed")
    }
  }
  aa := NewTrueGenotype(0, 0)
  ab := NewTrueGenotype(0, 1)
  bb := NewTrueGenotype(1, 1)

  if p, _ := cross.Step(aa, aa, r); math.Abs(p - 2.0*math.Log(1.0-r)) > 1e-12 {
    t.Error("test failed")
  }
  if p, _ := cross.Step(aa, bb, r); math.Abs(p - 2.0*math.Log(r)) > 1e-12 {
    t.Error("test failed")
  }
  if p, _ := cross.Step(aa, ab, r); math.Abs(p - (math.Log(2.0)+math.Log(1.0-r)+math.Log(r))) > 1e-12 {
    t.Error("test failed")
  }
  // leaving the heterozygote is half as likely as entering it
  if p, _ := cross.Step(ab, aa, r); math.Abs(p - (math.Log(1.0-r)+math.Log(r))) > 1e-12 {
    t.Error("test failed")
  }
  if p, _ := cross.Step(ab, ab, r); math.Abs(p - math.Log((1.0-r)*(1.0-r)+r*r)) > 1e-12 {
    t.Error("test failed")
  }
  // the kernel is symmetric under relabelling the founders
  p1, _ := cross.Step(aa, ab, r)
  p2, _ := cross.Step(bb, ab, r)
  if math.Abs(p1 - p2) > 1e-12 {
    t.Error("test failed")
  }
}

func TestCrossStepRI(t *testing.T) {

  r  := 0.1
  aa := NewTrueGenotype(0, 0)
  bb := NewTrueGenotype(1, 1)

  cross := NewCross(RISELF)
  R     := 2.0*r/(1.0 + 2.0*r)
  if p, _ := cross.Step(aa, bb, r); math.Abs(p - math.Log(R)) > 1e-12 {
    t.Error("test failed")
  }
  if p, _ := cross.Step(aa, aa, r); math.Abs(p - math.Log(1.0-R)) > 1e-12 {
    t.Error("test failed")
  }
  cross = NewCross(RISIB)
  R     = 4.0*r/(1.0 + 6.0*r)
  if p, _ := cross.Step(aa, bb, r); math.Abs(p - math.Log(R)) > 1e-12 {
    t.Error("test failed")
  }
  if p, _ := cross.Step(aa, aa, r); math.Abs(p - math.Log(1.0-R)) > 1e-12 {
    t.Error("test failed")
  }
}

func TestCrossStepZeroRecombination(t *testing.T) {

  for _, crossType := range []CrossType{F2, BC, RISELF, RISIB} {
    cross := NewCross(crossType)
    for _, g1 := range cross.Genotypes() {
      for _, g2 := range cross.Genotypes() {
        p, err := cross.Step(g1, g2, 0.0)
        if err != nil {
          t.Error("test failed")
        }
        if g1.Equals(g2) {
          if p != 0.0 {
            t.Error("test failed")
          }
        } else {
          if !math.IsInf(p, -1) {
            t.Error("test failed")
          }
        }
      }
    }
  }
}
