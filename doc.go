// Package sparkline renders numeric series as compact terminal text: a
// single-line sparkline of block glyphs, or a multi-line labeled chart of
// filled cells with y-axis labels and interleaved x-axis labels.
//
// All functions are pure: they take a series and an options struct and
// return a complete string or an error. Nothing is shared between calls,
// so the package is safe for concurrent use.
package sparkline
