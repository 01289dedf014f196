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
import "sort"

/* -------------------------------------------------------------------------- */

// A Chromosome has a name and a flag distinguishing sex chromosomes from
// autosomes. Chromosomes do not own their markers; markers reference them.
type Chromosome struct {
  Name string
  Sex  bool
}

func NewChromosome(name string) *Chromosome {
  return &Chromosome{name, name == "X" || name == "x"}
}

/* -------------------------------------------------------------------------- */

// A Marker is a position on a chromosome given in centiMorgan. A
// pseudomarker is a synthetic position without genotype observations,
// inserted to densify the scan grid.
type Marker struct {
  Name       string
  Chromosome *Chromosome
  Position   float64
  Pseudo     bool
}

func NewMarker(name string, chromosome *Chromosome, position float64) *Marker {
  if chromosome == nil {
    panic("NewMarker(): invalid parameters")
  }
  return &Marker{name, chromosome, position, false}
}

func NewPseudomarker(chromosome *Chromosome, position float64) *Marker {
  if chromosome == nil {
    panic("NewPseudomarker(): invalid parameters")
  }
  name := fmt.Sprintf("c%s.loc%g", chromosome.Name, position)
  return &Marker{name, chromosome, position, true}
}

func (marker *Marker) String() string {
  return fmt.Sprintf("%s (chromosome %s, %.2f cM)", marker.Name, marker.Chromosome.Name, marker.Position)
}

/* -------------------------------------------------------------------------- */

// Group markers by chromosome, preserving the chromosome order of first
// appearance and sorting markers by position within each chromosome.
func GroupMarkers(markers []*Marker) ([]*Chromosome, [][]*Marker) {
  chromosomes := []*Chromosome{}
  grouped     := [][]*Marker{}
  index       := map[*Chromosome]int{}
  for _, marker := range markers {
    i, ok := index[marker.Chromosome]
    if !ok {
      i = len(chromosomes)
      index[marker.Chromosome] = i
      chromosomes = append(chromosomes, marker.Chromosome)
      grouped     = append(grouped,     []*Marker{})
    }
    grouped[i] = append(grouped[i], marker)
  }
  for i := 0; i < len(grouped); i++ {
    sort.SliceStable(grouped[i], func(j, k int) bool {
      return grouped[i][j].Position < grouped[i][k].Position
    })
  }
  return chromosomes, grouped
}

/* pseudomarkers
 * -------------------------------------------------------------------------- */

// PseudomarkerPolicy selects how pseudomarkers are placed between the
// markers of a chromosome.
type PseudomarkerPolicy int

const (
  // insert a regular grid of positions regardless of marker density
  PseudomarkerStepped PseudomarkerPolicy = iota
  // only fill gaps wider than the requested spacing
  PseudomarkerMinimal
)

func (policy PseudomarkerPolicy) String() string {
  switch policy {
  case PseudomarkerStepped: return "stepped"
  case PseudomarkerMinimal: return "minimal"
  default:
    panic("invalid pseudomarker policy")
  }
}

func ParsePseudomarkerPolicy(str string) (PseudomarkerPolicy, error) {
  switch str {
  case "stepped": return PseudomarkerStepped, nil
  case "minimal": return PseudomarkerMinimal, nil
  default:
    return PseudomarkerStepped, fmt.Errorf("ParsePseudomarkerPolicy(): `%s' is not a valid pseudomarker policy", str)
  }
}

/* -------------------------------------------------------------------------- */

// Insert pseudomarkers into a sorted list of markers of a single
// chromosome. The result is sorted in strictly increasing position order
// and never duplicates an existing marker position. A spacing of zero
// returns the markers unchanged.
func AddPseudomarkers(markers []*Marker, spacing float64, policy PseudomarkerPolicy) []*Marker {
  if len(markers) == 0 || spacing <= 0.0 {
    return markers
  }
  chromosome := markers[0].Chromosome
  positions  := []float64{}
  switch policy {
  case PseudomarkerStepped:
    first := markers[0].Position
    last  := markers[len(markers)-1].Position
    for x := first; x < last; x += spacing {
      positions = append(positions, x)
    }
  case PseudomarkerMinimal:
    for i := 1; i < len(markers); i++ {
      gap := markers[i].Position - markers[i-1].Position
      if gap <= spacing {
        continue
      }
      // place points evenly so that no sub-gap exceeds the spacing
      n := int(gap/spacing)
      if float64(n)*spacing == gap {
        n -= 1
      }
      for j := 1; j <= n; j++ {
        positions = append(positions, markers[i-1].Position + float64(j)*gap/float64(n+1))
      }
    }
  default:
    panic("invalid pseudomarker policy")
  }
  result := make([]*Marker, len(markers))
  copy(result, markers)
  for _, x := range positions {
    if duplicatesPosition(markers, x) {
      continue
    }
    result = append(result, NewPseudomarker(chromosome, x))
  }
  sort.SliceStable(result, func(i, j int) bool {
    return result[i].Position < result[j].Position
  })
  return result
}

func duplicatesPosition(markers []*Marker, position float64) bool {
  for _, marker := range markers {
    if marker.Position == position {
      return true
    }
  }
  return false
}
