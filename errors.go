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

/* -------------------------------------------------------------------------- */

// UnresolvedSymbolError is returned when a genotype call string matches
// neither a registered alias nor a literal true genotype pair.
type UnresolvedSymbolError struct {
  Symbol string
}

func (err UnresolvedSymbolError) Error() string {
  return fmt.Sprintf("unresolved genotype symbol `%s'", err.Symbol)
}

/* -------------------------------------------------------------------------- */

// IncompatibleCrossError indicates that an observed symbol or true genotype
// does not belong to the genotype alphabet of the declared cross type. This
// is a data or programming error, not a recoverable condition.
type IncompatibleCrossError struct {
  Cross  CrossType
  Reason string
}

func (err IncompatibleCrossError) Error() string {
  return fmt.Sprintf("incompatible %v cross: %s", err.Cross, err.Reason)
}

/* -------------------------------------------------------------------------- */

// DimensionMismatchError indicates that genotype, phenotype, covariate, or
// weight dimensions disagree.
type DimensionMismatchError struct {
  What     string
  Expected int
  Observed int
}

func (err DimensionMismatchError) Error() string {
  return fmt.Sprintf("dimension mismatch: expected %d %s but observed %d",
    err.Expected, err.What, err.Observed)
}

/* -------------------------------------------------------------------------- */

// DegenerateDesignError indicates a rank-deficient regression design
// matrix. An empty chromosome name refers to the null model fit, which has
// no position.
type DegenerateDesignError struct {
  Chromosome string
  Position   float64
  Phenotype  int
}

func (err DegenerateDesignError) Error() string {
  if err.Chromosome == "" {
    return fmt.Sprintf("degenerate design matrix in the null model fit (phenotype %d)", err.Phenotype)
  }
  return fmt.Sprintf("degenerate design matrix on chromosome `%s' at position %.2f (phenotype %d)",
    err.Chromosome, err.Position, err.Phenotype)
}
