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

import "database/sql"
import "fmt"

import _ "github.com/go-sql-driver/mysql"

/* import marker maps from a database
 * -------------------------------------------------------------------------- */

// Import a genetic marker map from a MySQL database. The table must have
// the columns name, chromosome, and position, where position is the map
// position in centiMorgan. Markers are returned in chromosome and position
// order, with one shared chromosome object per chromosome name.
func ImportMarkersFromDB(datasource, table string) ([]*Marker, error) {
  /* variables for storing a single database row */
  var i_name, i_chromosome string
  var i_position float64

  markers := []*Marker{}

  /* open connection */
  db, err := sql.Open("mysql", datasource)
  if err != nil {
    return nil, err
  }
  defer db.Close()

  err = db.Ping()
  if err != nil {
    return nil, err
  }

  /* receive data */
  rows, err := db.Query(
    fmt.Sprintf("SELECT name, chromosome, position FROM %s ORDER BY chromosome, position", table))
  if err != nil {
    return nil, err
  }
  defer rows.Close()

  chromosomes := map[string]*Chromosome{}
  for rows.Next() {
    err := rows.Scan(&i_name, &i_chromosome, &i_position)
    if err != nil {
      return nil, err
    }
    chromosome, ok := chromosomes[i_chromosome]
    if !ok {
      chromosome = NewChromosome(i_chromosome)
      chromosomes[i_chromosome] = chromosome
    }
    markers = append(markers, NewMarker(i_name, chromosome, i_position))
  }
  return markers, rows.Err()
}
