// Package export writes rendered grid artifacts to disk.
//
// [Write] is the single entry point: it renders the summary JSON, the text
// sheet, and the PDF reference sheet for a spec and writes them into a
// target directory under the spec's canonical file names. A failed PDF
// never blocks the JSON and text outputs; it is reported on the result for
// the caller to surface as a warning.
package export
