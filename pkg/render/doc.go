// Package render turns a resolved grid specification into output artifacts.
//
// Every renderer is a pure function of the spec: no shared state, no
// dependency on another renderer's output, identical input producing
// byte-identical output.
//
//   - [NewSummary] builds the canonical summary record; [JSON] and [Text]
//     are lossless projections of it.
//   - [ModuleGridSVG] and [BaselineGridSVG] produce vector drawings of the
//     module structure and the baseline rhythm.
//   - [PDF] produces the printable composite reference sheet via
//     github.com/signintech/gopdf.
//
// The PDF renderer needs a TTF font for its footer text. [FindFont] locates
// one on the host system; when no font is available the sheet still renders
// with the footer omitted, so geometry output never depends on the host's
// font installation.
package render
