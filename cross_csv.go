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

import "bufio"
import "compress/gzip"
import "fmt"
import "io"
import "os"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// CrossData bundles everything a genome scan needs from one data set: the
// cross model, the symbol registry the genotype calls were decoded with,
// and the genotype and phenotype matrices.
type CrossData struct {
  Cross    Cross
  Registry *ObservedGenotypeRegistry
  Geno     *GenotypeMatrix
  Pheno    *PhenotypeMatrix
}

/* default symbol registries
 * -------------------------------------------------------------------------- */

// The conventional genotype symbols of a cross type. The intercross carries
// the two homozygotes A and B, the heterozygote H, and the two ambiguous
// symbols D (not B) and C (not A); the backcross carries A and H; the
// recombinant inbred designs carry A and B.
func DefaultGenotypeRegistry(cross Cross) *ObservedGenotypeRegistry {
  registry := NewObservedGenotypeRegistry()
  switch cross.Type {
  case F2:
    a := NewGenotypeSymbolMapper("A", true,  "AA")
    h := NewGenotypeSymbolMapper("H", false, "AB")
    b := NewGenotypeSymbolMapper("B", true,  "BB")
    d := NewGenotypeSymbolMapper("D", false, "notB")
    c := NewGenotypeSymbolMapper("C", false, "notA")
    a.Add(NewTrueGenotype(0, 0))
    h.Add(NewTrueGenotype(0, 1))
    b.Add(NewTrueGenotype(1, 1))
    d.Add(NewTrueGenotype(0, 0))
    d.Add(NewTrueGenotype(0, 1))
    c.Add(NewTrueGenotype(0, 1))
    c.Add(NewTrueGenotype(1, 1))
    for _, mapper := range []*GenotypeSymbolMapper{a, h, b, d, c} {
      if err := registry.Register(mapper); err != nil {
        panic(err)
      }
    }
  case BC:
    a := NewGenotypeSymbolMapper("A", true,  "AA")
    h := NewGenotypeSymbolMapper("H", false, "AB")
    a.Add(NewTrueGenotype(0, 0))
    h.Add(NewTrueGenotype(0, 1))
    for _, mapper := range []*GenotypeSymbolMapper{a, h} {
      if err := registry.Register(mapper); err != nil {
        panic(err)
      }
    }
  case RISELF, RISIB:
    a := NewGenotypeSymbolMapper("A", true, "AA")
    b := NewGenotypeSymbolMapper("B", true, "BB")
    a.Add(NewTrueGenotype(0, 0))
    b.Add(NewTrueGenotype(1, 1))
    for _, mapper := range []*GenotypeSymbolMapper{a, b} {
      if err := registry.Register(mapper); err != nil {
        panic(err)
      }
    }
  default:
    panic("invalid cross type")
  }
  return registry
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read cross data in comma-separated format. The first row lists phenotype
// names followed by marker names; the second row assigns each marker column
// to a chromosome and is empty for phenotype columns; the third row gives
// the map position of each marker in centiMorgan. Every following row holds
// the phenotype values and genotype calls of one individual. Genotype calls
// are decoded through the default registry of the cross type; missing
// values are written as `NA' or `-'.
func ReadCross(reader io.Reader, crossType CrossType) (*CrossData, error) {
  cross    := NewCross(crossType)
  registry := DefaultGenotypeRegistry(cross)

  scanner := bufio.NewScanner(reader)
  header  := []string{}
  chrRow  := []string{}
  posRow  := []string{}
  rows    := [][]string{}
  for scanner.Scan() {
    line := strings.TrimRight(scanner.Text(), "\r\n")
    if strings.TrimSpace(line) == "" {
      continue
    }
    fields := strings.Split(line, ",")
    for i := range fields {
      fields[i] = strings.TrimSpace(fields[i])
    }
    switch {
    case len(header) == 0: header = fields
    case len(chrRow) == 0: chrRow = fields
    case len(posRow) == 0: posRow = fields
    default:
      rows = append(rows, fields)
    }
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  if len(header) == 0 || len(chrRow) == 0 || len(posRow) == 0 {
    return nil, fmt.Errorf("ReadCross(): file must have a name, a chromosome, and a position row")
  }
  if len(chrRow) != len(header) || len(posRow) != len(header) {
    return nil, DimensionMismatchError{"header columns", len(header), len(chrRow)}
  }
  // phenotype columns are the columns without chromosome assignment
  phenoColumns := []int{}
  genoColumns  := []int{}
  for j := 0; j < len(header); j++ {
    if chrRow[j] == "" {
      phenoColumns = append(phenoColumns, j)
    } else {
      genoColumns = append(genoColumns, j)
    }
  }
  if len(genoColumns) == 0 {
    return nil, fmt.Errorf("ReadCross(): file has no marker columns")
  }
  // construct markers, sharing one chromosome object per name
  chromosomes := map[string]*Chromosome{}
  markers     := make([]*Marker, len(genoColumns))
  for i, j := range genoColumns {
    chromosome, ok := chromosomes[chrRow[j]]
    if !ok {
      chromosome = NewChromosome(chrRow[j])
      chromosomes[chrRow[j]] = chromosome
    }
    position, err := strconv.ParseFloat(posRow[j], 64)
    if err != nil {
      return nil, fmt.Errorf("ReadCross(): marker `%s' has an invalid map position: %v", header[j], err)
    }
    markers[i] = NewMarker(header[j], chromosome, position)
  }
  phenoNames := make([]string, len(phenoColumns))
  for i, j := range phenoColumns {
    phenoNames[i] = header[j]
  }
  // parse individuals
  phenoValues := make([][]float64, len(rows))
  genoCells   := make([][]*GenotypeSymbolMapper, len(rows))
  for i, row := range rows {
    if len(row) != len(header) {
      return nil, DimensionMismatchError{"columns", len(header), len(row)}
    }
    phenoValues[i] = make([]float64, len(phenoColumns))
    for k, j := range phenoColumns {
      value, err := parsePhenotype(row[j])
      if err != nil {
        return nil, fmt.Errorf("ReadCross(): individual %d, phenotype `%s': %v", i+1, header[j], err)
      }
      phenoValues[i][k] = value
    }
    genoCells[i] = make([]*GenotypeSymbolMapper, len(genoColumns))
    for k, j := range genoColumns {
      symbol, err := registry.Decode(row[j])
      if err != nil {
        return nil, fmt.Errorf("ReadCross(): individual %d, marker `%s': %v", i+1, header[j], err)
      }
      genoCells[i][k] = symbol
    }
  }
  geno, err := NewGenotypeMatrix(markers, genoCells)
  if err != nil {
    return nil, err
  }
  pheno, err := NewPhenotypeMatrix(phenoNames, phenoValues)
  if err != nil {
    return nil, err
  }
  return &CrossData{cross, registry, geno, pheno}, nil
}

func parsePhenotype(str string) (float64, error) {
  if missingSymbols[str] {
    return MissingPhenotype, nil
  }
  return strconv.ParseFloat(str, 64)
}

// Import cross data from a file, which may be gzip compressed.
func ImportCross(filename string, crossType CrossType) (*CrossData, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()

  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return nil, err
    }
    defer g.Close()
    return ReadCross(g, crossType)
  }
  return ReadCross(f, crossType)
}
