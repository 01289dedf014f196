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

import   "bufio"
import   "fmt"
import   "log"
import   "os"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/goqtl"

/* -------------------------------------------------------------------------- */

type Config struct {
  Scan    ScanConfig
  Header  bool
  Verbose int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

func importCross(config Config, filename string, crossType CrossType) *CrossData {
  PrintStderr(config, 1, "Reading cross file `%s'... ", filename)
  data, err := ImportCross(filename, crossType)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return data
}

func writeResult(config Config, result *ScanResult, filenameOut string) {
  if filenameOut != "" {
    PrintStderr(config, 1, "Writing lod table to `%s'... ", filenameOut)
    if err := result.ExportTable(filenameOut, config.Header); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  } else {
    w := bufio.NewWriter(os.Stdout)
    defer w.Flush()
    if err := result.WriteTable(w, config.Header); err != nil {
      log.Fatal(err)
    }
  }
  if err := result.WritePeaks(os.Stdout, config.Scan.LodThreshold); err != nil {
    log.Fatal(err)
  }
}

/* -------------------------------------------------------------------------- */

func scanone(config Config, filenameIn, filenameOut string) {
  crossType, err := ParseCrossType(config.Scan.CrossType)
  if err != nil {
    log.Fatal(err)
  }
  data := importCross(config, filenameIn, crossType)

  PrintStderr(config, 1, "Scanning %d phenotypes on %d markers... ",
    data.Pheno.NumPhenotypes(), data.Geno.NumMarkers())
  result, err := Scanone(data.Cross, data.Geno, data.Pheno, config.Scan)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  writeResult(config, result, filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config := Config{Scan: DefaultScanConfig()}
  options := getopt.New()

  optConfig       := options. StringLong("config",        0 , "",          "toml scan configuration file")
  optCrossType    := options. StringLong("cross-type",    0 , "f2",        "cross design: f2, bc, riself, or risib")
  optErrorProb    := options. StringLong("error-prob",    0 , "0.0001",    "genotyping error probability")
  optMapFunction  := options. StringLong("map-function",  0 , "haldane",   "map function: haldane or kosambi")
  optStep         := options. StringLong("step",          0 , "0",         "pseudomarker spacing in cM (0 disables pseudomarkers)")
  optPolicy       := options. StringLong("step-policy",   0 , "stepped",   "pseudomarker policy: stepped or minimal")
  optThreshold    := options. StringLong("lod-threshold", 0 , "0",         "only report peaks with a lod score above this threshold")
  optThreads      := options.    IntLong("threads",       0 ,  1,          "number of threads [default: 1]")
  optHeader       := options.   BoolLong("header",        0 ,              "print table header")
  optVerbose      := options.CounterLong("verbose",      'v',              "verbose level [-v or -vv]")
  optHelp         := options.   BoolLong("help",         'h',              "print help")

  options.SetParameters("<INPUT.csv> [OUTPUT.table]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) < 1 || len(options.Args()) > 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if *optConfig != "" {
    if err := config.Scan.Import(*optConfig); err != nil {
      log.Fatal(err)
    }
  }
  // command line options override the configuration file
  if options.Lookup("cross-type").Seen() || config.Scan.CrossType == "" {
    config.Scan.CrossType = *optCrossType
  }
  if options.Lookup("map-function").Seen() || config.Scan.MapFunction == "" {
    config.Scan.MapFunction = *optMapFunction
  }
  if options.Lookup("step-policy").Seen() || config.Scan.PseudomarkerPolicy == "" {
    config.Scan.PseudomarkerPolicy = *optPolicy
  }
  if options.Lookup("error-prob").Seen() {
    config.Scan.ErrorProb = parseFloat(*optErrorProb)
  }
  if options.Lookup("step").Seen() {
    config.Scan.Step = parseFloat(*optStep)
  }
  if options.Lookup("lod-threshold").Seen() {
    config.Scan.LodThreshold = parseFloat(*optThreshold)
  }
  if options.Lookup("threads").Seen() || config.Scan.Threads == 0 {
    config.Scan.Threads = *optThreads
  }
  config.Header  = *optHeader
  config.Verbose = *optVerbose

  filenameIn  := options.Args()[0]
  filenameOut := ""
  if len(options.Args()) == 2 {
    filenameOut = options.Args()[1]
  }
  scanone(config, filenameIn, filenameOut)
}

func parseFloat(str string) float64 {
  var value float64
  if _, err := fmt.Sscanf(str, "%f", &value); err != nil {
    log.Fatalf("invalid numeric argument `%s'", str)
  }
  return value
}
