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

/* -------------------------------------------------------------------------- */

// GenotypeProbs holds, for one chromosome, the probability of every true
// genotype at every marker and pseudomarker position, for every individual.
// Probabilities are on the linear scale and sum to one per individual and
// position. The tensor is created per chromosome scan and discarded once
// the scan of that chromosome is done.
type GenotypeProbs struct {
  Positions []*Marker
  Genotypes []TrueGenotype
  // [individual][position][genotype]
  Probs [][][]float64
}

func (probs *GenotypeProbs) NumIndividuals() int {
  return len(probs.Probs)
}

func (probs *GenotypeProbs) NumPositions() int {
  return len(probs.Positions)
}

func (probs *GenotypeProbs) NumGenotypes() int {
  return len(probs.Genotypes)
}

/* -------------------------------------------------------------------------- */

// Compute genotype probabilities on one chromosome with a forward recursion
// over positions. The observations grid carries one symbol per individual
// and position; pseudomarker positions carry nil. The recombination
// fractions refer to consecutive position pairs, so their number must be
// one less than the number of positions. All arithmetic is carried out in
// log space; each row of the result is normalized with log-sum-exp before
// it is exponentiated.
//
// The recursion is forward-only rather than a full forward-backward
// smoothing. Haley-Knott regression only requires marginal genotype
// probabilities given the data up to each position, and this matches the
// statistical method reproduced here.
func CalcGenotypeProbs(cross Cross, positions []*Marker, observations [][]*GenotypeSymbolMapper, recombFracs []float64, errorProb float64) (*GenotypeProbs, error) {
  if len(positions) == 0 {
    return &GenotypeProbs{positions, cross.Genotypes(), nil}, nil
  }
  if len(recombFracs) != len(positions)-1 {
    return nil, DimensionMismatchError{"recombination fractions", len(positions)-1, len(recombFracs)}
  }
  genotypes := cross.Genotypes()
  result    := make([][][]float64, len(observations))
  for i := 0; i < len(observations); i++ {
    if len(observations[i]) != len(positions) {
      return nil, DimensionMismatchError{"observation columns", len(positions), len(observations[i])}
    }
    p, err := forward(cross, genotypes, observations[i], recombFracs, errorProb)
    if err != nil {
      return nil, err
    }
    result[i] = p
  }
  return &GenotypeProbs{positions, genotypes, result}, nil
}

/* -------------------------------------------------------------------------- */

// Forward recursion for a single individual.
func forward(cross Cross, genotypes []TrueGenotype, observations []*GenotypeSymbolMapper, recombFracs []float64, errorProb float64) ([][]float64, error) {
  n     := len(observations)
  m     := len(genotypes)
  alpha := make([][]float64, n)
  for k := 0; k < n; k++ {
    alpha[k] = make([]float64, m)
  }
  for j := 0; j < m; j++ {
    pInit, err := cross.Init(genotypes[j])
    if err != nil {
      return nil, err
    }
    pEmit, err := cross.Emit(observations[0], genotypes[j], errorProb)
    if err != nil {
      return nil, err
    }
    alpha[0][j] = pInit + pEmit
  }
  tmp := make([]float64, m)
  for k := 1; k < n; k++ {
    for j := 0; j < m; j++ {
      for l := 0; l < m; l++ {
        pStep, err := cross.Step(genotypes[l], genotypes[j], recombFracs[k-1])
        if err != nil {
          return nil, err
        }
        tmp[l] = alpha[k-1][l] + pStep
      }
      pEmit, err := cross.Emit(observations[k], genotypes[j], errorProb)
      if err != nil {
        return nil, err
      }
      alpha[k][j] = pEmit + logSumExp(tmp)
    }
  }
  // normalize rows and leave log space
  for k := 0; k < n; k++ {
    z := logSumExp(alpha[k])
    for j := 0; j < m; j++ {
      alpha[k][j] = math.Exp(alpha[k][j] - z)
    }
  }
  return alpha, nil
}
