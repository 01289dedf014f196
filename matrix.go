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

/* genotype matrix
 * -------------------------------------------------------------------------- */

// A GenotypeMatrix holds one decoded genotype symbol per individual and
// marker. Cells reference the shared symbols of the registry, they do not
// own copies.
type GenotypeMatrix struct {
  Markers []*Marker
  Cells [][]*GenotypeSymbolMapper
}

func NewGenotypeMatrix(markers []*Marker, cells [][]*GenotypeSymbolMapper) (*GenotypeMatrix, error) {
  for i := 0; i < len(cells); i++ {
    if len(cells[i]) != len(markers) {
      return nil, DimensionMismatchError{"genotype columns", len(markers), len(cells[i])}
    }
  }
  return &GenotypeMatrix{markers, cells}, nil
}

func (matrix *GenotypeMatrix) NumIndividuals() int {
  return len(matrix.Cells)
}

func (matrix *GenotypeMatrix) NumMarkers() int {
  return len(matrix.Markers)
}

func (matrix *GenotypeMatrix) At(individual, marker int) *GenotypeSymbolMapper {
  return matrix.Cells[individual][marker]
}

// Column indices of the given markers, -1 for pseudomarkers.
func (matrix *GenotypeMatrix) MarkerColumns(markers []*Marker) []int {
  index := map[*Marker]int{}
  for j, marker := range matrix.Markers {
    index[marker] = j
  }
  columns := make([]int, len(markers))
  for i, marker := range markers {
    if j, ok := index[marker]; ok {
      columns[i] = j
    } else {
      columns[i] = -1
    }
  }
  return columns
}

// A copy of the matrix restricted to the given individuals. Cells keep
// referencing the shared symbols.
func (matrix *GenotypeMatrix) SubsetIndividuals(individuals []int) *GenotypeMatrix {
  cells := make([][]*GenotypeSymbolMapper, len(individuals))
  for i, k := range individuals {
    cells[i] = matrix.Cells[k]
  }
  return &GenotypeMatrix{matrix.Markers, cells}
}

/* phenotype matrix
 * -------------------------------------------------------------------------- */

// Sentinel marking a missing phenotype value. Missingness is tested by
// equality; NaN is a valid (if unusual) observed value and does not mark a
// missing entry.
const MissingPhenotype = math.MaxFloat64

// A PhenotypeMatrix holds one numeric value per individual and phenotype.
type PhenotypeMatrix struct {
  Names  []string
  Values [][]float64
}

func NewPhenotypeMatrix(names []string, values [][]float64) (*PhenotypeMatrix, error) {
  for i := 0; i < len(values); i++ {
    if len(values[i]) != len(names) {
      return nil, DimensionMismatchError{"phenotype columns", len(names), len(values[i])}
    }
  }
  return &PhenotypeMatrix{names, values}, nil
}

func (matrix *PhenotypeMatrix) NumIndividuals() int {
  return len(matrix.Values)
}

func (matrix *PhenotypeMatrix) NumPhenotypes() int {
  return len(matrix.Names)
}

func (matrix *PhenotypeMatrix) At(individual, phenotype int) float64 {
  return matrix.Values[individual][phenotype]
}

func (matrix *PhenotypeMatrix) IsMissing(individual, phenotype int) bool {
  return matrix.Values[individual][phenotype] == MissingPhenotype
}

func (matrix *PhenotypeMatrix) SubsetIndividuals(individuals []int) *PhenotypeMatrix {
  values := make([][]float64, len(individuals))
  for i, k := range individuals {
    values[i] = matrix.Values[k]
  }
  return &PhenotypeMatrix{matrix.Names, values}
}

/* -------------------------------------------------------------------------- */

// Indices of the individuals without any missing phenotype value.
func completePhenotypeRows(pheno *PhenotypeMatrix) []int {
  keep := []int{}
  for i := 0; i < pheno.NumIndividuals(); i++ {
    complete := true
    for j := 0; j < pheno.NumPhenotypes(); j++ {
      if pheno.IsMissing(i, j) {
        complete = false
        break
      }
    }
    if complete {
      keep = append(keep, i)
    }
  }
  return keep
}

// Drop every individual with at least one missing phenotype value from both
// matrices, so that genotype and phenotype rows stay aligned. The inputs
// are left untouched.
func OmitMissingPhenotypes(geno *GenotypeMatrix, pheno *PhenotypeMatrix) (*GenotypeMatrix, *PhenotypeMatrix, error) {
  if geno.NumIndividuals() != pheno.NumIndividuals() {
    return nil, nil, DimensionMismatchError{"individuals", geno.NumIndividuals(), pheno.NumIndividuals()}
  }
  keep := completePhenotypeRows(pheno)
  return geno.SubsetIndividuals(keep), pheno.SubsetIndividuals(keep), nil
}
