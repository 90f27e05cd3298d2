// SPDX-License-Identifier: MIT

// Package report renders k-shortest results for people and spreadsheets.
//
// Every renderer consumes the engine's ordered []ksp.Path and keeps the field
// order (path, total cost, hop count) per entry:
//
//   - CSVSink writes one file per query with header "Path,Total Cost,Hops"
//     and path cells like "Path 1: A → B → D".
//   - TextSink prints the console listing, or a "no paths found" line when
//     the result is empty.
//   - MultiSink fans one result out to several sinks.
//
// DatedDir and FileName give the report files a stable home:
// <base>/<YYYY-MM-DD>/paths_<source>_<target>_<run>.csv.
package report
