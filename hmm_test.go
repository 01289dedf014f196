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

func hmmTestPositions(n int, spacing float64) []*Marker {
  chromosome := NewChromosome("1")
  positions  := make([]*Marker, n)
  for i := 0; i < n; i++ {
    positions[i] = NewMarker("m", chromosome, float64(i)*spacing)
  }
  return positions
}

/* -------------------------------------------------------------------------- */

func TestGenotypeProbRows(t *testing.T) {

  for _, crossType := range []CrossType{F2, BC, RISELF, RISIB} {
    cross    := NewCross(crossType)
    registry := DefaultGenotypeRegistry(cross)

    a, err := registry.Decode("A")
    if err != nil {
      t.Fatal(err)
    }
    positions := hmmTestPositions(4, 10.0)
    values    := []float64{0.0, 10.0, 20.0, 30.0}

    recombFracs, err := RecombinationFractions(values, HaldaneMapFunction{})
    if err != nil {
      t.Fatal(err)
    }
    // two individuals, some observations missing
    observations := [][]*GenotypeSymbolMapper{
      {a, nil, registry.Missing(), a},
      {nil, a, nil, nil}}

    probs, err := CalcGenotypeProbs(cross, positions, observations, recombFracs, 0.002)
    if err != nil {
      t.Fatal(err)
    }
    for i := 0; i < probs.NumIndividuals(); i++ {
      for k := 0; k < probs.NumPositions(); k++ {
        sum := 0.0
        for j := 0; j < probs.NumGenotypes(); j++ {
          p := probs.Probs[i][k][j]
          if math.IsNaN(p) || p < 0.0 {
            t.Error("test failed")
          }
          sum += p
        }
        if math.Abs(sum - 1.0) > 1e-9 {
          t.Error("test failed")
        }
      }
    }
  }
}

func TestGenotypeProbPrior(t *testing.T) {

  cross := NewCross(F2)

  // without any observation the probabilities equal the marginal
  // probabilities of the cross
  positions    := hmmTestPositions(2, 10.0)
  observations := [][]*GenotypeSymbolMapper{{nil, nil}}

  recombFracs, err := RecombinationFractions([]float64{0.0, 10.0}, HaldaneMapFunction{})
  if err != nil {
    t.Fatal(err)
  }
  probs, err := CalcGenotypeProbs(cross, positions, observations, recombFracs, 0.002)
  if err != nil {
    t.Fatal(err)
  }
  result := []float64{0.25, 0.5, 0.25}
  for k := 0; k < 2; k++ {
    for j := 0; j < 3; j++ {
      if math.Abs(probs.Probs[0][k][j] - result[j]) > 1e-9 {
        t.Error("test failed")
      }
    }
  }
}

func TestGenotypeProbZeroRecombination(t *testing.T) {

  cross    := NewCross(F2)
  registry := DefaultGenotypeRegistry(cross)

  h, err := registry.Decode("H")
  if err != nil {
    t.Fatal(err)
  }
  // two positions at zero distance, the second one unobserved: the
  // genotype distribution must not change across the step
  chromosome := NewChromosome("1")
  positions  := []*Marker{
    NewMarker("m1", chromosome, 10.0),
    NewPseudomarker(chromosome, 10.0)}
  observations := [][]*GenotypeSymbolMapper{{h, nil}}

  probs, err := CalcGenotypeProbs(cross, positions, observations, []float64{0.0}, 0.002)
  if err != nil {
    t.Fatal(err)
  }
  for j := 0; j < 3; j++ {
    if math.Abs(probs.Probs[0][0][j] - probs.Probs[0][1][j]) > 1e-9 {
      t.Error("test failed")
    }
  }
}

func TestGenotypeProbDimensions(t *testing.T) {

  cross     := NewCross(F2)
  positions := hmmTestPositions(3, 10.0)

  observations := [][]*GenotypeSymbolMapper{{nil, nil, nil}}

  if _, err := CalcGenotypeProbs(cross, positions, observations, []float64{0.1}, 0.002); err == nil {
    t.Error("test failed")
  } else
  if _, ok := err.(DimensionMismatchError); !ok {
    t.Error("test failed")
  }
}
