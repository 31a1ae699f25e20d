// Package csvgen synthesizes large delimited text files that follow a declared
// multi-table schema and fit a byte budget.
//
// A schema is built bottom-up. A Column declares a semantic type and rendered width.
// A Table is an ordered list of Columns, a literal identifier written at the start of
// every row, a field delimiter, and the share of each file's bytes the table should occupy.
// An ExportFile combines Tables whose shares sum to 1 with a target file size.
//
// Sizes are budgets, not guarantees. Each Table precomputes a nominal row width
// from its declared column widths and emits floor(ceil(fileSize*share)/rowWidth) rows.
// Dates are counted as 10 bytes but are not zero-padded,
// and quoted strings carry two quote bytes that are not counted,
// so real rows drift from the nominal width by a few bytes.
//
// Generation is data-parallel. The rows of every table are cut into chunks,
// each chunk runs on a bounded pool of goroutines with its own random source,
// and finished chunks are gathered by index so that output order never depends on
// which worker finished first. The first failing chunk aborts the whole file;
// no partial output is returned.
//
// Output is not reproducible by default: every chunk draws a fresh source from
// the runtime's entropy. WithSeed makes output a pure function of the seed,
// the stream, the schema, the file size and the chunk size, independent of the
// number of workers. ExportFile.GenerateStream picks the stream; giving each
// file of a batch its own stream keeps seeded files distinct.
package csvgen
