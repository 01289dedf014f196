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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "math"
import   "os"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/goqtl"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

type Config struct {
  Verbose int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

// Rows of the table that belong to one chromosome, in input order.
func chromosomeRows(table *LodTable, chromosome string) []int {
  rows := []int{}
  for i := 0; i < len(table.Chromosomes); i++ {
    if table.Chromosomes[i] == chromosome {
      rows = append(rows, i)
    }
  }
  return rows
}

func chromosomeNames(table *LodTable) []string {
  names := []string{}
  seen  := map[string]bool{}
  for _, name := range table.Chromosomes {
    if !seen[name] {
      seen[name] = true
      names = append(names, name)
    }
  }
  return names
}

func drawChromosome(config Config, table *LodTable, chromosome, basename string) {
  rows := chromosomeRows(table, chromosome)

  p := plot.New()
  p.Title.Text   = fmt.Sprintf("chromosome %s", chromosome)
  p.X.Label.Text = "map position [cM]"
  p.Y.Label.Text = "lod"

  args := []interface{}{}
  for j := 0; j < len(table.Phenotypes); j++ {
    xy := plotter.XYs{}
    for _, i := range rows {
      if math.IsNaN(table.Lod[i][j]) {
        continue
      }
      xy = append(xy, plotter.XY{X: table.Positions[i], Y: table.Lod[i][j]})
    }
    args = append(args, table.Phenotypes[j], xy)
  }
  if err := plotutil.AddLines(p, args...); err != nil {
    log.Fatal(err)
  }
  filename := fmt.Sprintf("%s.%s.pdf", basename, chromosome)
  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote lod curves to `%s'\n", filename)
}

/* -------------------------------------------------------------------------- */

func drawLodCurves(config Config, filenameIn, basename string) {
  PrintStderr(config, 1, "Reading lod table `%s'... ", filenameIn)
  table, err := ImportLodTable(filenameIn)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  for _, chromosome := range chromosomeNames(table) {
    drawChromosome(config, table, chromosome, basename)
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optVerbose := options.CounterLong("verbose", 'v', "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",    'h', "print help")

  options.SetParameters("<INPUT.table> <OUTPUT_BASENAME>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Verbose = *optVerbose

  drawLodCurves(config, options.Args()[0], options.Args()[1])
}
