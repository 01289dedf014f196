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

/* export lod tables
 * -------------------------------------------------------------------------- */

// Write the LOD profiles as a whitespace separated table with one row per
// scan position and the columns marker, chromosome, position, and one LOD
// column per phenotype.
func (result *ScanResult) WriteTable(writer io.Writer, header bool) error {
  if header {
    fmt.Fprintf(writer, "%20s %10s %10s", "marker", "chromosome", "position")
    for _, name := range result.Phenotypes {
      fmt.Fprintf(writer, " %12s", name)
    }
    fmt.Fprintf(writer, "\n")
  }
  for _, scan := range result.Chromosomes {
    for k, marker := range scan.Positions {
      fmt.Fprintf(writer, "%20s %10s %10.2f", marker.Name, scan.Chromosome.Name, marker.Position)
      for j := 0; j < len(result.Phenotypes); j++ {
        fmt.Fprintf(writer, " %12.6f", scan.Lod[k][j])
      }
      fmt.Fprintf(writer, "\n")
    }
  }
  return nil
}

func (result *ScanResult) ExportTable(filename string, header bool) error {
  f, err := os.Create(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  w := bufio.NewWriter(f)
  defer w.Flush()

  return result.WriteTable(w, header)
}

/* peak reports
 * -------------------------------------------------------------------------- */

// Write one line per peak exceeding the threshold.
func (result *ScanResult) WritePeaks(writer io.Writer, threshold float64) error {
  for _, peak := range result.Peaks {
    if peak.Lod < threshold {
      continue
    }
    fmt.Fprintf(writer, "peak for phenotype `%s' on chromosome `%s': max lod = %.4f at pos = %.2f\n",
      result.Phenotypes[peak.Phenotype], peak.Chromosome.Name, peak.Lod, peak.Position)
  }
  return nil
}

/* import lod tables
 * -------------------------------------------------------------------------- */

// A LodTable is the flat row form of a scan result, as written by
// WriteTable.
type LodTable struct {
  Phenotypes  []string
  Markers     []string
  Chromosomes []string
  Positions   []float64
  Lod       [][]float64
}

func ReadLodTable(reader io.Reader) (*LodTable, error) {
  table   := &LodTable{}
  scanner := bufio.NewScanner(reader)
  if !scanner.Scan() {
    return nil, fmt.Errorf("ReadLodTable(): table has no header")
  }
  fields := strings.Fields(scanner.Text())
  if len(fields) < 4 || fields[0] != "marker" || fields[1] != "chromosome" || fields[2] != "position" {
    return nil, fmt.Errorf("ReadLodTable(): invalid table header")
  }
  table.Phenotypes = fields[3:]

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) != 3+len(table.Phenotypes) {
      return nil, DimensionMismatchError{"table columns", 3+len(table.Phenotypes), len(fields)}
    }
    position, err := strconv.ParseFloat(fields[2], 64)
    if err != nil {
      return nil, err
    }
    lod := make([]float64, len(table.Phenotypes))
    for j := 0; j < len(lod); j++ {
      lod[j], err = strconv.ParseFloat(fields[3+j], 64)
      if err != nil {
        return nil, err
      }
    }
    table.Markers     = append(table.Markers,     fields[0])
    table.Chromosomes = append(table.Chromosomes, fields[1])
    table.Positions   = append(table.Positions,   position)
    table.Lod         = append(table.Lod,         lod)
  }
  return table, scanner.Err()
}

func ImportLodTable(filename string) (*LodTable, error) {
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
    return ReadLodTable(g)
  }
  return ReadLodTable(f)
}
