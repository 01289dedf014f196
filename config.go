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

import "github.com/BurntSushi/toml"

/* -------------------------------------------------------------------------- */

// ScanConfig collects the parameters of a genome scan. A config may be
// imported from a toml file; zero values fall back to the defaults.
type ScanConfig struct {
  CrossType          string  `toml:"cross_type"`
  ErrorProb          float64 `toml:"error_prob"`
  MapFunction        string  `toml:"map_function"`
  Step               float64 `toml:"step"`
  PseudomarkerPolicy string  `toml:"pseudomarker_policy"`
  LodThreshold       float64 `toml:"lod_threshold"`
  Threads            int     `toml:"threads"`
}

func DefaultScanConfig() ScanConfig {
  return ScanConfig{
    CrossType         : "f2",
    ErrorProb         : 0.0001,
    MapFunction       : "haldane",
    Step              : 0.0,
    PseudomarkerPolicy: "stepped",
    LodThreshold      : 0.0,
    Threads           : 1}
}

// Import a scan configuration from a toml file. Parameters missing from the
// file keep the values the config already has.
func (config *ScanConfig) Import(filename string) error {
  if _, err := toml.DecodeFile(filename, config); err != nil {
    return err
  }
  return nil
}

/* -------------------------------------------------------------------------- */

func (config ScanConfig) mapFunction() (MapFunction, error) {
  return ParseMapFunction(config.MapFunction)
}

func (config ScanConfig) pseudomarkerPolicy() (PseudomarkerPolicy, error) {
  return ParsePseudomarkerPolicy(config.PseudomarkerPolicy)
}

func (config ScanConfig) threads() int {
  if config.Threads < 1 {
    return 1
  }
  return config.Threads
}
