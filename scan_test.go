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
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestRssToLod(t *testing.T) {

  rss0 := []float64{1.2345, 10.0}
  rss  := [][]float64{{1.2345, 10.0}, {1.2345, 5.0}}

  for _, n := range []int{1, 10, 100} {
    lod := RssToLod(rss, rss0, n)
    // identical models carry zero evidence
    if lod[0][0] != 0.0 || lod[0][1] != 0.0 {
      t.Error("test failed")
    }
    if math.Abs(lod[1][1] - float64(n)/2.0*math.Log10(2.0)) > 1e-12 {
      t.Error("test failed")
    }
  }
}

func TestScanoneNull(t *testing.T) {

  pheno, err := NewPhenotypeMatrix([]string{"y"},
    [][]float64{{1.0}, {2.0}, {3.0}, {4.0}})
  if err != nil {
    t.Fatal(err)
  }
  rss0, err := ScanoneHKNull(pheno, nil, nil)
  if err != nil {
    t.Fatal(err)
  }
  // intercept-only fit: residual sum of squares around the mean
  if math.Abs(rss0[0] - 5.0) > 1e-9 {
    t.Error("test failed")
  }
}

func TestScanoneNullWeighted(t *testing.T) {

  pheno, err := NewPhenotypeMatrix([]string{"y"},
    [][]float64{{1.0}, {2.0}, {3.0}, {4.0}})
  if err != nil {
    t.Fatal(err)
  }
  r1, err := ScanoneHKNull(pheno, nil, nil)
  if err != nil {
    t.Fatal(err)
  }
  // constant weights scale the residual sum of squares
  r2, err := ScanoneHKNull(pheno, nil, []float64{2.0, 2.0, 2.0, 2.0})
  if err != nil {
    t.Fatal(err)
  }
  if math.Abs(r2[0] - 2.0*r1[0]) > 1e-9 {
    t.Error("test failed")
  }
}

func TestScanoneNullDegenerate(t *testing.T) {

  pheno, err := NewPhenotypeMatrix([]string{"y"},
    [][]float64{{1.0}, {2.0}, {3.0}, {4.0}})
  if err != nil {
    t.Fatal(err)
  }
  // a constant covariate is collinear with the intercept
  addCovar := [][]float64{{1.0}, {1.0}, {1.0}, {1.0}}

  _, err = ScanoneHKNull(pheno, addCovar, nil)
  if err == nil {
    t.Fatal("test failed")
  }
  if _, ok := err.(DegenerateDesignError); !ok {
    t.Error("test failed")
  }
  if !strings.Contains(err.Error(), "null model") {
    t.Error("test failed")
  }
}

/* -------------------------------------------------------------------------- */

func scanTestProbs() *GenotypeProbs {
  cross      := NewCross(F2)
  chromosome := NewChromosome("1")
  positions  := []*Marker{NewMarker("m1", chromosome, 0.0)}

  probs := [][][]float64{
    {{0.8, 0.1, 0.1}},
    {{0.1, 0.8, 0.1}},
    {{0.1, 0.1, 0.8}},
    {{0.6, 0.3, 0.1}},
    {{0.2, 0.3, 0.5}},
    {{0.3, 0.4, 0.3}},
    {{0.7, 0.2, 0.1}},
    {{0.1, 0.5, 0.4}}}
  return &GenotypeProbs{positions, cross.Genotypes(), probs}
}

// changing the genotype category that is dropped from the design matrix
// must not change the residual sum of squares
func TestScanoneBaselineInvariance(t *testing.T) {

  probs := scanTestProbs()
  y     := []float64{2.1, 0.4, -1.3, 1.5, -0.2, 0.3, 1.8, 0.1}

  pheno, err := NewPhenotypeMatrix([]string{"y"}, [][]float64{
    {y[0]}, {y[1]}, {y[2]}, {y[3]}, {y[4]}, {y[5]}, {y[6]}, {y[7]}})
  if err != nil {
    t.Fatal(err)
  }
  rss := []float64{}
  for baseline := 0; baseline < 3; baseline++ {
    x := scanDesign(probs, 0, baseline, nil, nil)
    r, ok := leastSquaresRSS(x, phenotypeVector(pheno, 0))
    if !ok {
      t.Error("test failed")
    }
    rss = append(rss, r)
  }
  if math.Abs(rss[0] - rss[1]) > 1e-9 || math.Abs(rss[0] - rss[2]) > 1e-9 {
    t.Error("test failed")
  }
}

func TestScanoneDegenerateDesign(t *testing.T) {

  cross      := NewCross(F2)
  chromosome := NewChromosome("1")
  positions  := []*Marker{
    NewMarker("m1", chromosome,  0.0),
    NewMarker("m2", chromosome, 10.0)}

  // at the second position all probability mass sits on one genotype
  // category, which makes the design matrix rank deficient
  probs := &GenotypeProbs{positions, cross.Genotypes(), [][][]float64{
    {{0.8, 0.1, 0.1}, {1.0, 0.0, 0.0}},
    {{0.1, 0.8, 0.1}, {1.0, 0.0, 0.0}},
    {{0.1, 0.1, 0.8}, {1.0, 0.0, 0.0}},
    {{0.2, 0.3, 0.5}, {1.0, 0.0, 0.0}}}}

  pheno, err := NewPhenotypeMatrix([]string{"y"},
    [][]float64{{1.0}, {2.0}, {3.0}, {4.0}})
  if err != nil {
    t.Fatal(err)
  }
  rss, err := ScanoneHK(probs, pheno, nil, nil, nil)
  if err != nil {
    t.Fatal(err)
  }
  // the degenerate position is undefined, the scan continues
  if math.IsNaN(rss[0][0]) {
    t.Error("test failed")
  }
  if !math.IsNaN(rss[1][0]) {
    t.Error("test failed")
  }
}

/* -------------------------------------------------------------------------- */

func TestGetPeaks(t *testing.T) {

  chromosome := NewChromosome("1")
  positions  := []*Marker{
    NewMarker("m1", chromosome,  0.0),
    NewMarker("m2", chromosome, 10.0),
    NewMarker("m3", chromosome, 20.0),
    NewMarker("m4", chromosome, 30.0)}

  lod := [][]float64{
    {1.0, math.NaN()},
    {3.0, 2.0},
    {3.0, 1.0},
    {2.0, 2.0}}

  peaks := GetPeaks(lod, positions)

  if len(peaks) != 2 {
    t.Error("test failed")
  }
  // ties are broken by the first position achieving the maximum
  if peaks[0].Lod != 3.0 || peaks[0].Position != 10.0 {
    t.Error("test failed")
  }
  if peaks[1].Lod != 2.0 || peaks[1].Position != 10.0 {
    t.Error("test failed")
  }
}
