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
import "strconv"
import "strings"

/* true genotypes
 * -------------------------------------------------------------------------- */

// A TrueGenotype is an ordered pair of founder allele indices, representing
// one concrete diploid genotype of the cross. Values are immutable once
// constructed.
type TrueGenotype struct {
  founder1 int
  founder2 int
}

func NewTrueGenotype(founder1, founder2 int) TrueGenotype {
  if founder1 < 0 || founder2 < 0 {
    panic("NewTrueGenotype(): founder allele indices must be non-negative")
  }
  return TrueGenotype{founder1, founder2}
}

func (genotype TrueGenotype) Founder1() int {
  return genotype.founder1
}

func (genotype TrueGenotype) Founder2() int {
  return genotype.founder2
}

// Swap the allele pair. Used when phase is unknown and the allele order
// does not matter for a symbol.
func (genotype TrueGenotype) Reversed() TrueGenotype {
  return TrueGenotype{genotype.founder2, genotype.founder1}
}

func (genotype TrueGenotype) Homozygous() bool {
  return genotype.founder1 == genotype.founder2
}

func (genotype TrueGenotype) Equals(other TrueGenotype) bool {
  return genotype.founder1 == other.founder1 &&
         genotype.founder2 == other.founder2
}

// Total order over allele pairs, first index major.
func (genotype TrueGenotype) Less(other TrueGenotype) bool {
  if genotype.founder1 != other.founder1 {
    return genotype.founder1 < other.founder1
  }
  return genotype.founder2 < other.founder2
}

func (genotype TrueGenotype) String() string {
  return fmt.Sprintf("%d,%d", genotype.founder1, genotype.founder2)
}

// Parse a literal true genotype pair of the form "0,1".
func ParseTrueGenotype(str string) (TrueGenotype, error) {
  fields := strings.Split(str, ",")
  if len(fields) != 2 {
    return TrueGenotype{}, fmt.Errorf("ParseTrueGenotype(): `%s' is not a founder allele pair", str)
  }
  t1, e1 := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 32)
  if e1 != nil {
    return TrueGenotype{}, e1
  }
  t2, e2 := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 32)
  if e2 != nil {
    return TrueGenotype{}, e2
  }
  if t1 < 0 || t2 < 0 {
    return TrueGenotype{}, fmt.Errorf("ParseTrueGenotype(): `%s' has a negative allele index", str)
  }
  return TrueGenotype{int(t1), int(t2)}, nil
}

/* genotype symbols
 * -------------------------------------------------------------------------- */

// A GenotypeSymbolMapper maps one observed genotype call to the set of true
// genotypes it may stand for. An empty set denotes a missing observation.
// Mappers are created once per distinct symbol and shared by reference
// across all matrix cells that carry the symbol; cells never own copies.
type GenotypeSymbolMapper struct {
  Name       string
  Aliases  []string
  Genotypes []*TrueGenotype
  // if false, adding a genotype also adds its reversed pair
  PhaseKnown bool
}

func NewGenotypeSymbolMapper(name string, phaseKnown bool, aliases ...string) *GenotypeSymbolMapper {
  return &GenotypeSymbolMapper{
    Name      : name,
    Aliases   : aliases,
    PhaseKnown: phaseKnown}
}

// Add a true genotype to the symbol. If an equal pair is already present,
// the existing reference is returned unchanged, so that each distinct pair
// exists at most once per mapper. If phase is unknown, the reversed pair is
// added as well.
func (mapper *GenotypeSymbolMapper) Add(genotype TrueGenotype) *TrueGenotype {
  r := mapper.add(genotype)
  if !mapper.PhaseKnown {
    mapper.add(genotype.Reversed())
  }
  return r
}

func (mapper *GenotypeSymbolMapper) add(genotype TrueGenotype) *TrueGenotype {
  for _, g := range mapper.Genotypes {
    if g.Equals(genotype) {
      return g
    }
  }
  g := &genotype
  // keep the set sorted for deterministic listing
  i := 0
  for ; i < len(mapper.Genotypes); i++ {
    if genotype.Less(*mapper.Genotypes[i]) {
      break
    }
  }
  mapper.Genotypes = append(mapper.Genotypes, nil)
  copy(mapper.Genotypes[i+1:], mapper.Genotypes[i:])
  mapper.Genotypes[i] = g
  return g
}

func (mapper *GenotypeSymbolMapper) Contains(genotype TrueGenotype) bool {
  for _, g := range mapper.Genotypes {
    if g.Equals(genotype) {
      return true
    }
  }
  return false
}

// A mapper without any true genotype denotes a missing observation.
func (mapper *GenotypeSymbolMapper) IsMissing() bool {
  return len(mapper.Genotypes) == 0
}

func (mapper *GenotypeSymbolMapper) Len() int {
  return len(mapper.Genotypes)
}

func (mapper *GenotypeSymbolMapper) CanonicalAlias() string {
  return mapper.Name
}

func (mapper *GenotypeSymbolMapper) matchesAlias(str string) bool {
  if mapper.Name == str {
    return true
  }
  for _, alias := range mapper.Aliases {
    if alias == str {
      return true
    }
  }
  return false
}

func (mapper *GenotypeSymbolMapper) String() string {
  s := []string{}
  for _, g := range mapper.Genotypes {
    s = append(s, g.String())
  }
  return fmt.Sprintf("%s{%s}", mapper.Name, strings.Join(s, " "))
}

/* symbol registry
 * -------------------------------------------------------------------------- */

// Strings that always decode to the missing symbol.
var missingSymbols = map[string]bool{
  "": true, "-": true, "NA": true}

// An ObservedGenotypeRegistry holds all genotype symbols active for a data
// set. Symbols are accumulated, never removed; once the data set is loaded
// the registry is read-only.
type ObservedGenotypeRegistry struct {
  mappers []*GenotypeSymbolMapper
  missing  *GenotypeSymbolMapper
}

func NewObservedGenotypeRegistry() *ObservedGenotypeRegistry {
  return &ObservedGenotypeRegistry{
    missing: NewGenotypeSymbolMapper("NA", true, "-")}
}

// Register a new symbol. Registering a second symbol under an already
// registered alias is an error.
func (registry *ObservedGenotypeRegistry) Register(mapper *GenotypeSymbolMapper) error {
  names := append([]string{mapper.Name}, mapper.Aliases...)
  for _, name := range names {
    for _, m := range registry.mappers {
      if m.matchesAlias(name) {
        return fmt.Errorf("Register(): symbol alias `%s' is already registered", name)
      }
    }
  }
  registry.mappers = append(registry.mappers, mapper)
  return nil
}

// The shared symbol for missing observations.
func (registry *ObservedGenotypeRegistry) Missing() *GenotypeSymbolMapper {
  return registry.missing
}

func (registry *ObservedGenotypeRegistry) Symbols() []*GenotypeSymbolMapper {
  return registry.mappers
}

// Decode an observed genotype call. The missing value markers always decode
// to the shared missing symbol. Otherwise the string is matched against
// symbol names and aliases in registration order; if no alias matches, it is
// parsed as a literal true genotype pair and the first symbol containing
// that pair is returned.
func (registry *ObservedGenotypeRegistry) Decode(str string) (*GenotypeSymbolMapper, error) {
  str = strings.TrimSpace(str)
  if missingSymbols[str] {
    return registry.missing, nil
  }
  for _, mapper := range registry.mappers {
    if mapper.matchesAlias(str) {
      return mapper, nil
    }
  }
  if genotype, err := ParseTrueGenotype(str); err == nil {
    for _, mapper := range registry.mappers {
      if mapper.Contains(genotype) {
        return mapper, nil
      }
    }
  }
  return nil, UnresolvedSymbolError{str}
}
