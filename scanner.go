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

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

// A ChromosomeScan holds the LOD profile of one chromosome: the scanned
// positions (markers and pseudomarkers) and one LOD score per position and
// phenotype.
type ChromosomeScan struct {
  Chromosome *Chromosome
  Positions  []*Marker
  Lod      [][]float64
}

// A ScanResult holds the LOD profiles of all chromosomes, in the
// chromosome order of the marker list, together with the per-chromosome
// and per-phenotype LOD peaks.
type ScanResult struct {
  Phenotypes  []string
  Chromosomes []*ChromosomeScan
  Peaks       []Peak
}

/* -------------------------------------------------------------------------- */

// Run a Haley-Knott genome scan over all chromosomes. Individuals with
// missing phenotype values are removed from the genotype and phenotype
// matrices alike before any computation; covariate rows and weights are
// restricted to the same individuals. Chromosomes are scanned in
// parallel on the given number of threads; each chromosome job works on
// immutable shared inputs and writes only its own result slot, results are
// merged by chromosome index afterwards.
func Scanone(cross Cross, geno *GenotypeMatrix, pheno *PhenotypeMatrix, config ScanConfig) (*ScanResult, error) {
  return ScanoneCovar(cross, geno, pheno, nil, nil, nil, config)
}

func ScanoneCovar(cross Cross, geno *GenotypeMatrix, pheno *PhenotypeMatrix, addCovar, intCovar [][]float64, weights []float64, config ScanConfig) (*ScanResult, error) {
  mapFunction, err := config.mapFunction()
  if err != nil {
    return nil, err
  }
  policy, err := config.pseudomarkerPolicy()
  if err != nil {
    return nil, err
  }
  if geno.NumIndividuals() != pheno.NumIndividuals() {
    return nil, DimensionMismatchError{"individuals", geno.NumIndividuals(), pheno.NumIndividuals()}
  }
  // restrict every per-individual input to the individuals with complete
  // phenotypes, keeping all rows aligned
  keep  := completePhenotypeRows(pheno)
  n0    := pheno.NumIndividuals()
  geno   = geno.SubsetIndividuals(keep)
  pheno  = pheno.SubsetIndividuals(keep)
  if len(addCovar) == n0 {
    addCovar = subsetRows(addCovar, keep)
  }
  if len(intCovar) == n0 {
    intCovar = subsetRows(intCovar, keep)
  }
  if len(weights) == n0 {
    weights = subsetValues(weights, keep)
  }
  n := pheno.NumIndividuals()

  rss0, err := ScanoneHKNull(pheno, addCovar, weights)
  if err != nil {
    return nil, err
  }
  chromosomes, grouped := GroupMarkers(geno.Markers)

  scans  := make([]*ChromosomeScan, len(chromosomes))
  pool   := threadpool.New(config.threads(), 100*config.threads())
  if err := pool.RangeJob(0, len(chromosomes), func(i int, pool threadpool.ThreadPool, erf func() error) error {
    if erf() != nil {
      return nil
    }
    scan, err := scanChromosome(cross, geno, pheno, grouped[i], addCovar, intCovar, weights, rss0, n, mapFunction, policy, config)
    if err != nil {
      return fmt.Errorf("chromosome `%s': %v", chromosomes[i].Name, err)
    }
    scans[i] = scan
    return nil
  }); err != nil {
    return nil, err
  }
  result := &ScanResult{Phenotypes: pheno.Names, Chromosomes: scans}
  for _, scan := range scans {
    result.Peaks = append(result.Peaks, GetPeaks(scan.Lod, scan.Positions)...)
  }
  return result, nil
}

/* -------------------------------------------------------------------------- */

func subsetRows(rows [][]float64, keep []int) [][]float64 {
  result := make([][]float64, len(keep))
  for i, k := range keep {
    result[i] = rows[k]
  }
  return result
}

func subsetValues(values []float64, keep []int) []float64 {
  result := make([]float64, len(keep))
  for i, k := range keep {
    result[i] = values[k]
  }
  return result
}

/* -------------------------------------------------------------------------- */

// Scan a single chromosome. This is a pure function of its arguments; it
// shares no mutable state with the jobs of other chromosomes. The genotype
// probability tensor is local to this call and released when the call
// returns.
func scanChromosome(cross Cross, geno *GenotypeMatrix, pheno *PhenotypeMatrix, markers []*Marker, addCovar, intCovar [][]float64, weights []float64, rss0 []float64, n int, mapFunction MapFunction, policy PseudomarkerPolicy, config ScanConfig) (*ChromosomeScan, error) {
  positions := AddPseudomarkers(markers, config.Step, policy)

  values := make([]float64, len(positions))
  for k, marker := range positions {
    values[k] = marker.Position
  }
  recombFracs, err := RecombinationFractions(values, mapFunction)
  if err != nil {
    return nil, err
  }
  columns      := geno.MarkerColumns(positions)
  observations := make([][]*GenotypeSymbolMapper, geno.NumIndividuals())
  for i := 0; i < geno.NumIndividuals(); i++ {
    observations[i] = make([]*GenotypeSymbolMapper, len(positions))
    for k, column := range columns {
      if column != -1 {
        observations[i][k] = geno.At(i, column)
      }
    }
  }
  probs, err := CalcGenotypeProbs(cross, positions, observations, recombFracs, config.ErrorProb)
  if err != nil {
    return nil, err
  }
  rss, err := ScanoneHK(probs, pheno, addCovar, intCovar, weights)
  if err != nil {
    return nil, err
  }
  return &ChromosomeScan{
    Chromosome: markers[0].Chromosome,
    Positions : positions,
    Lod       : RssToLod(rss, rss0, n)}, nil
}
