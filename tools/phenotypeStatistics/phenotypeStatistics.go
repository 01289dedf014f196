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
import   "os"

import   "github.com/montanaflynn/stats"
import   "github.com/pborman/getopt"

import . "github.com/pbenner/goqtl"

/* -------------------------------------------------------------------------- */

type Config struct {
  CrossType string
  Verbose   int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func phenotypeStatistics(config Config, filenameIn string) {
  crossType, err := ParseCrossType(config.CrossType)
  if err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Reading cross file `%s'... ", filenameIn)
  data, err := ImportCross(filenameIn, crossType)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  pheno := data.Pheno

  fmt.Printf("%20s %8s %8s %12s %12s %12s %12s %12s %12s\n",
    "phenotype", "n", "missing", "mean", "sd", "min", "q25", "median", "q75")
  for j := 0; j < pheno.NumPhenotypes(); j++ {
    values  := []float64{}
    missing := 0
    for i := 0; i < pheno.NumIndividuals(); i++ {
      if pheno.IsMissing(i, j) {
        missing++
      } else {
        values = append(values, pheno.At(i, j))
      }
    }
    mean,   _ := stats.Mean(values)
    sd,     _ := stats.StandardDeviation(values)
    min,    _ := stats.Min(values)
    q25,    _ := stats.Percentile(values, 25)
    median, _ := stats.Median(values)
    q75,    _ := stats.Percentile(values, 75)

    fmt.Printf("%20s %8d %8d %12.4f %12.4f %12.4f %12.4f %12.4f %12.4f\n",
      pheno.Names[j], len(values), missing, mean, sd, min, q25, median, q75)
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optCrossType := options. StringLong("cross-type", 0 , "f2", "cross design: f2, bc, riself, or risib")
  optVerbose   := options.CounterLong("verbose",   'v',       "verbose level [-v or -vv]")
  optHelp      := options.   BoolLong("help",      'h',       "print help")

  options.SetParameters("<INPUT.csv>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.CrossType = *optCrossType
  config.Verbose   = *optVerbose

  phenotypeStatistics(config, options.Args()[0])
}
