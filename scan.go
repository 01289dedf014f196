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

import "gonum.org/v1/gonum/mat"

/* least squares
 * -------------------------------------------------------------------------- */

// Residual sum of squares of an ordinary least squares fit, computed from
// the normal equations with a Cholesky factorization. The boolean result is
// false if the design matrix does not have full column rank.
func leastSquaresRSS(x *mat.Dense, y *mat.VecDense) (float64, bool) {
  xtx := new(mat.SymDense)
  xtx.SymOuterK(1.0, x.T())
  xty := new(mat.VecDense)
  xty.MulVec(x.T(), y)

  chol := new(mat.Cholesky)
  if ok := chol.Factorize(xtx); !ok {
    return math.NaN(), false
  }
  beta := new(mat.VecDense)
  if err := chol.SolveVecTo(beta, xty); err != nil {
    return math.NaN(), false
  }
  fitted := new(mat.VecDense)
  fitted.MulVec(x, beta)

  rss := 0.0
  for i := 0; i < y.Len(); i++ {
    d   := y.AtVec(i) - fitted.AtVec(i)
    rss += d*d
  }
  return rss, true
}

// Scale design rows and response by the square root of the weights, turning
// the subsequent ordinary least squares fit into a weighted fit. An empty
// weight vector leaves the fit unweighted.
func applyWeights(x *mat.Dense, y *mat.VecDense, weights []float64) {
  if len(weights) == 0 {
    return
  }
  n, m := x.Dims()
  for i := 0; i < n; i++ {
    w := math.Sqrt(weights[i])
    for j := 0; j < m; j++ {
      x.Set(i, j, w*x.At(i, j))
    }
    y.SetVec(i, w*y.AtVec(i))
  }
}

/* null model
 * -------------------------------------------------------------------------- */

// Fit each phenotype on the covariate design alone (intercept plus additive
// covariates) and return one residual sum of squares per phenotype. A rank
// deficient null design aborts the computation.
func ScanoneHKNull(pheno *PhenotypeMatrix, addCovar [][]float64, weights []float64) ([]float64, error) {
  n := pheno.NumIndividuals()
  if err := checkCovariates(n, addCovar, weights); err != nil {
    return nil, err
  }
  rss0 := make([]float64, pheno.NumPhenotypes())
  for j := 0; j < pheno.NumPhenotypes(); j++ {
    x := nullDesign(n, addCovar)
    y := phenotypeVector(pheno, j)
    applyWeights(x, y, weights)
    r, ok := leastSquaresRSS(x, y)
    if !ok {
      return nil, DegenerateDesignError{"", math.NaN(), j}
    }
    rss0[j] = r
  }
  return rss0, nil
}

/* genome scan
 * -------------------------------------------------------------------------- */

// Haley-Knott regression. At every scan position each phenotype is
// regressed on the intercept, the additive covariates, the per-individual
// probabilities of every non-reference true genotype, and, if interactive
// covariates are given, the products of those covariates with the genotype
// probability columns. One genotype category serves as baseline and is
// dropped; together with the intercept the dropped column would be
// collinear, and the residual sum of squares does not depend on which
// category is dropped. The result holds one residual sum of squares per
// position and phenotype. A rank deficient design at a position marks that
// position as NaN and the scan continues.
func ScanoneHK(probs *GenotypeProbs, pheno *PhenotypeMatrix, addCovar, intCovar [][]float64, weights []float64) ([][]float64, error) {
  n := pheno.NumIndividuals()
  if probs.NumIndividuals() != n {
    return nil, DimensionMismatchError{"individuals", probs.NumIndividuals(), n}
  }
  if err := checkCovariates(n, addCovar, weights); err != nil {
    return nil, err
  }
  if err := checkCovariates(n, intCovar, nil); err != nil {
    return nil, err
  }
  rss := make([][]float64, probs.NumPositions())
  for k := 0; k < probs.NumPositions(); k++ {
    rss[k] = make([]float64, pheno.NumPhenotypes())
    for j := 0; j < pheno.NumPhenotypes(); j++ {
      x := scanDesign(probs, k, 0, addCovar, intCovar)
      y := phenotypeVector(pheno, j)
      applyWeights(x, y, weights)
      if r, ok := leastSquaresRSS(x, y); ok {
        rss[k][j] = r
      } else {
        // partial failure: leave this position undefined
        rss[k][j] = math.NaN()
      }
    }
  }
  return rss, nil
}

/* -------------------------------------------------------------------------- */

func checkCovariates(n int, covar [][]float64, weights []float64) error {
  if len(covar) != 0 && len(covar) != n {
    return DimensionMismatchError{"covariate rows", n, len(covar)}
  }
  for i := 1; i < len(covar); i++ {
    if len(covar[i]) != len(covar[0]) {
      return DimensionMismatchError{"covariate columns", len(covar[0]), len(covar[i])}
    }
  }
  if len(weights) != 0 && len(weights) != n {
    return DimensionMismatchError{"weights", n, len(weights)}
  }
  return nil
}

func phenotypeVector(pheno *PhenotypeMatrix, phenotype int) *mat.VecDense {
  n := pheno.NumIndividuals()
  y := mat.NewVecDense(n, nil)
  for i := 0; i < n; i++ {
    y.SetVec(i, pheno.At(i, phenotype))
  }
  return y
}

func nullDesign(n int, addCovar [][]float64) *mat.Dense {
  nAdd := 0
  if len(addCovar) > 0 {
    nAdd = len(addCovar[0])
  }
  x := mat.NewDense(n, 1+nAdd, nil)
  for i := 0; i < n; i++ {
    x.Set(i, 0, 1.0)
    for j := 0; j < nAdd; j++ {
      x.Set(i, 1+j, addCovar[i][j])
    }
  }
  return x
}

// Design matrix at one scan position. The genotype category with index
// baseline is dropped.
func scanDesign(probs *GenotypeProbs, position, baseline int, addCovar, intCovar [][]float64) *mat.Dense {
  n    := probs.NumIndividuals()
  m    := probs.NumGenotypes()
  nAdd := 0
  nInt := 0
  if len(addCovar) > 0 {
    nAdd = len(addCovar[0])
  }
  if len(intCovar) > 0 {
    nInt = len(intCovar[0])
  }
  x := mat.NewDense(n, 1+nAdd+(m-1)+nInt*(m-1), nil)
  for i := 0; i < n; i++ {
    x.Set(i, 0, 1.0)
    for j := 0; j < nAdd; j++ {
      x.Set(i, 1+j, addCovar[i][j])
    }
    c := 1+nAdd
    for g := 0; g < m; g++ {
      if g == baseline {
        continue
      }
      p := probs.Probs[i][position][g]
      x.Set(i, c, p)
      for j := 0; j < nInt; j++ {
        x.Set(i, c+(j+1)*(m-1), p*intCovar[i][j])
      }
      c++
    }
  }
  return x
}

/* lod scores
 * -------------------------------------------------------------------------- */

// Convert residual sums of squares into LOD scores, assuming normal errors:
// lod = n/2 log10(rss0/rss).
func RssToLod(rss [][]float64, rss0 []float64, n int) [][]float64 {
  lod := make([][]float64, len(rss))
  for k := 0; k < len(rss); k++ {
    lod[k] = make([]float64, len(rss[k]))
    for j := 0; j < len(rss[k]); j++ {
      lod[k][j] = float64(n)/2.0*math.Log10(rss0[j]/rss[k][j])
    }
  }
  return lod
}

/* peaks
 * -------------------------------------------------------------------------- */

// A Peak is the position of maximal LOD score of one phenotype on one
// chromosome.
type Peak struct {
  Chromosome *Chromosome
  Phenotype  int
  Lod        float64
  Position   float64
}

// Extract the maximum of each phenotype's LOD curve. Ties are broken by the
// first position achieving the maximum; NaN entries are skipped.
func GetPeaks(lod [][]float64, positions []*Marker) []Peak {
  if len(lod) == 0 {
    return nil
  }
  peaks := make([]Peak, len(lod[0]))
  for j := 0; j < len(lod[0]); j++ {
    peaks[j] = Peak{positions[0].Chromosome, j, math.Inf(-1), math.NaN()}
    for k := 0; k < len(lod); k++ {
      if math.IsNaN(lod[k][j]) {
        continue
      }
      if lod[k][j] > peaks[j].Lod {
        peaks[j].Lod      = lod[k][j]
        peaks[j].Position = positions[k].Position
      }
    }
  }
  return peaks
}
