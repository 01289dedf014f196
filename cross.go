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
import "math"

/* -------------------------------------------------------------------------- */

// CrossType enumerates the supported experimental cross designs. The set is
// closed; Init, Emit, and Step switch exhaustively over it.
type CrossType int

const (
  F2     CrossType = iota // intercross
  BC                      // backcross
  RISELF                  // recombinant inbred lines by selfing
  RISIB                   // recombinant inbred lines by sib-mating
)

func (crossType CrossType) String() string {
  switch crossType {
  case F2    : return "f2"
  case BC    : return "bc"
  case RISELF: return "riself"
  case RISIB : return "risib"
  default:
    panic("invalid cross type")
  }
}

func ParseCrossType(str string) (CrossType, error) {
  switch str {
  case "f2"    : return F2,     nil
  case "bc"    : return BC,     nil
  case "riself": return RISELF, nil
  case "risib" : return RISIB,  nil
  default:
    return F2, fmt.Errorf("ParseCrossType(): `%s' is not a valid cross type", str)
  }
}

/* -------------------------------------------------------------------------- */

// A Cross bundles the probability model of one cross design: the fixed list
// of possible true genotypes, their marginal probabilities, the emission
// probabilities of observed symbols, and the transition probabilities
// between adjacent loci. One immutable instance is shared for an entire
// analysis run. All probabilities are returned in log space.
type Cross struct {
  Type      CrossType
  genotypes []TrueGenotype
}

func NewCross(crossType CrossType) Cross {
  switch crossType {
  case F2:
    return Cross{crossType, []TrueGenotype{
      NewTrueGenotype(0, 0), NewTrueGenotype(0, 1), NewTrueGenotype(1, 1)}}
  case BC:
    return Cross{crossType, []TrueGenotype{
      NewTrueGenotype(0, 0), NewTrueGenotype(0, 1)}}
  case RISELF, RISIB:
    return Cross{crossType, []TrueGenotype{
      NewTrueGenotype(0, 0), NewTrueGenotype(1, 1)}}
  default:
    panic("invalid cross type")
  }
}

// The possible true genotypes of the cross, in canonical order. The
// heterozygote is listed as (0,1); its phase is not distinguished.
func (cross Cross) Genotypes() []TrueGenotype {
  return cross.genotypes
}

func (cross Cross) NumGenotypes() int {
  return len(cross.genotypes)
}

func (cross Cross) genotypeIndex(genotype TrueGenotype) int {
  for i, g := range cross.genotypes {
    if g.Equals(genotype) || g.Equals(genotype.Reversed()) {
      return i
    }
  }
  return -1
}

/* initial probabilities
 * -------------------------------------------------------------------------- */

// Marginal log probability of a true genotype at a single locus.
func (cross Cross) Init(genotype TrueGenotype) (float64, error) {
  i := cross.genotypeIndex(genotype)
  if i == -1 {
    return math.Inf(-1), IncompatibleCrossError{cross.Type,
      fmt.Sprintf("true genotype (%v) is not part of the cross", genotype)}
  }
  switch cross.Type {
  case F2:
    if cross.genotypes[i].Homozygous() {
      return math.Log(0.25), nil
    } else {
      return math.Log(0.5), nil
    }
  case BC, RISELF, RISIB:
    return math.Log(0.5), nil
  default:
    panic("invalid cross type")
  }
}

/* emission probabilities
 * -------------------------------------------------------------------------- */

// True genotypes of the cross that are compatible with an observed symbol.
func (cross Cross) compatible(observed *GenotypeSymbolMapper) int {
  k := 0
  for _, g := range cross.genotypes {
    if observed.Contains(g) || observed.Contains(g.Reversed()) {
      k++
    }
  }
  return k
}

// Log probability of an observed symbol given the true genotype and a
// genotyping error probability. A missing observation has probability one.
// An ambiguous symbol compatible with k true genotypes splits the error
// mass among them; an incompatible observation receives the error mass
// divided by the number of alternative true genotypes.
func (cross Cross) Emit(observed *GenotypeSymbolMapper, genotype TrueGenotype, errorProb float64) (float64, error) {
  if observed == nil || observed.IsMissing() {
    return 0.0, nil
  }
  i := cross.genotypeIndex(genotype)
  if i == -1 {
    return math.Inf(-1), IncompatibleCrossError{cross.Type,
      fmt.Sprintf("true genotype (%v) is not part of the cross", genotype)}
  }
  n := len(cross.genotypes)
  k := cross.compatible(observed)
  if k == 0 {
    return math.Inf(-1), IncompatibleCrossError{cross.Type,
      fmt.Sprintf("observed symbol `%s' is not compatible with any genotype of the cross", observed.Name)}
  }
  if k == n {
    // the symbol does not discriminate between any genotypes
    return 0.0, nil
  }
  g := cross.genotypes[i]
  if observed.Contains(g) || observed.Contains(g.Reversed()) {
    return math.Log(1.0 - errorProb/float64(k)), nil
  } else {
    return math.Log(errorProb) - math.Log(float64(n-k)), nil
  }
}

/* transition probabilities
 * -------------------------------------------------------------------------- */

// Log probability of the true genotype at the right locus given the true
// genotype at the left locus and the recombination fraction between them.
func (cross Cross) Step(left, right TrueGenotype, recombFrac float64) (float64, error) {
  i := cross.genotypeIndex(left)
  j := cross.genotypeIndex(right)
  if i == -1 || j == -1 {
    return math.Inf(-1), IncompatibleCrossError{cross.Type,
      fmt.Sprintf("true genotype pair (%v),(%v) is not part of the cross", left, right)}
  }
  g1 := cross.genotypes[i]
  g2 := cross.genotypes[j]
  r  := recombFrac
  switch cross.Type {
  case F2:
    return stepF2(cross, g1, g2, r)
  case BC:
    if g1.Equals(g2) {
      return math.Log(1.0 - r), nil
    } else {
      return math.Log(r), nil
    }
  case RISELF:
    // effective recombination fraction after repeated selfing
    R := 2.0*r/(1.0 + 2.0*r)
    if g1.Equals(g2) {
      return math.Log(1.0 - R), nil
    } else {
      return math.Log(R), nil
    }
  case RISIB:
    // effective recombination fraction after repeated sib-mating
    R := 4.0*r/(1.0 + 6.0*r)
    if g1.Equals(g2) {
      return math.Log(1.0 - R), nil
    } else {
      return math.Log(R), nil
    }
  default:
    panic("invalid cross type")
  }
}

// Two-locus transition kernel of the intercross, built from the
// no-recombination, single-recombination, and double-recombination events.
// The kernel is symmetric under relabelling the founders.
func stepF2(cross Cross, g1, g2 TrueGenotype, r float64) (float64, error) {
  switch {
  case g1.Homozygous() && g2.Homozygous():
    if g1.Equals(g2) {
      return 2.0*math.Log(1.0 - r), nil
    }
    if g1.Founder1() != g2.Founder1() {
      return 2.0*math.Log(r), nil
    }
    // homozygote pairs either share both founders or none; anything else
    // cannot occur for a biallelic intercross
    return math.Inf(-1), IncompatibleCrossError{cross.Type,
      fmt.Sprintf("unreachable homozygote transition (%v) -> (%v)", g1, g2)}
  case g1.Homozygous() && !g2.Homozygous():
    // either founder may recombine
    return math.Log(2.0) + math.Log(1.0 - r) + math.Log(r), nil
  case !g1.Homozygous() && g2.Homozygous():
    return math.Log(1.0 - r) + math.Log(r), nil
  default:
    return math.Log((1.0 - r)*(1.0 - r) + r*r), nil
  }
}
