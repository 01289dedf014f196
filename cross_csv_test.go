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

import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

const crossCSV = `weight,sex,m1,m2,m3
,,1,1,2
,,0,12.5,0
12.3,0,A,H,B
14.1,1,H,NA,D
-,0,B,C,A
`

func TestReadCross(t *testing.T) {

  data, err := ReadCross(strings.NewReader(crossCSV), F2)
  if err != nil {
    t.Fatal(err)
  }
  geno  := data.Geno
  pheno := data.Pheno

  if pheno.NumPhenotypes() != 2 || pheno.NumIndividuals() != 3 {
    t.Fatal("test failed")
  }
  if geno.NumMarkers() != 3 || geno.NumIndividuals() != 3 {
    t.Fatal("test failed")
  }
  if pheno.Names[0] != "weight" || pheno.Names[1] != "sex" {
    t.Error("test failed")
  }
  // the third individual has a missing weight
  if !pheno.IsMissing(2, 0) || pheno.IsMissing(0, 0) {
    t.Error("test failed")
  }
  if pheno.At(0, 0) != 12.3 {
    t.Error("test failed")
  }
  // markers and chromosomes
  if geno.Markers[0].Chromosome.Name != "1" || geno.Markers[2].Chromosome.Name != "2" {
    t.Error("test failed")
  }
  if geno.Markers[0].Chromosome != geno.Markers[1].Chromosome {
    t.Error("test failed")
  }
  if geno.Markers[1].Position != 12.5 {
    t.Error("test failed")
  }
  // cells share one symbol object per distinct call
  if geno.At(0, 1) != geno.At(1, 0) {
    t.Error("test failed")
  }
  if !geno.At(1, 1).IsMissing() {
    t.Error("test failed")
  }
  if geno.At(1, 2).Name != "D" || geno.At(2, 1).Name != "C" {
    t.Error("test failed")
  }
}

func TestReadCrossInvalidSymbol(t *testing.T) {

  csv := `weight,m1
,1
,0
1.0,Z
`
  if _, err := ReadCross(strings.NewReader(csv), F2); err == nil {
    t.Error("test failed")
  }
}

func TestReadCrossBC(t *testing.T) {

  csv := `weight,m1,m2
,1,1
,0,10
1.0,A,H
2.0,H,A
`
  data, err := ReadCross(strings.NewReader(csv), BC)
  if err != nil {
    t.Fatal(err)
  }
  // the backcross registry has no B symbol
  if _, err := data.Registry.Decode("B"); err == nil {
    t.Error("test failed")
  }
}
