package export

import (
	"os"
	"path/filepath"
	"time"

	"github.com/longplay45/swissgrid/pkg/errors"
	"github.com/longplay45/swissgrid/pkg/grid"
	"github.com/longplay45/swissgrid/pkg/observability"
	"github.com/longplay45/swissgrid/pkg/render"
)

// Result reports the files one [Write] call produced.
type Result struct {
	JSONPath string
	TXTPath  string
	PDFPath  string // empty when the PDF was skipped or failed
	SVGPaths []string

	// PDFErr carries the reason the PDF is missing. It is a warning, not
	// a failure: the JSON and text artifacts are written regardless.
	PDFErr error
}

// Option configures a [Write] call.
type Option func(*options)

type options struct {
	fontPath string
	skipPDF  bool
	withSVG  bool
}

// WithFontPath passes a TTF font to the PDF renderer for its footer text.
func WithFontPath(path string) Option {
	return func(o *options) { o.fontPath = path }
}

// SkipPDF suppresses the PDF artifact entirely.
func SkipPDF() Option {
	return func(o *options) { o.skipPDF = true }
}

// WithSVG additionally writes the module grid and baseline grid drawings
// as SVG files next to the other artifacts.
func WithSVG() Option {
	return func(o *options) { o.withSVG = true }
}

// Write renders all artifacts for a spec and writes them into dir, creating
// it if needed. File names follow the spec's canonical base name, so
// writing the same spec twice overwrites the previous run with
// byte-identical content.
func Write(dir string, s *grid.Spec, opts ...Option) (res *Result, err error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	observability.Export().OnExportStart(s.BaseName())
	defer func() {
		observability.Export().OnExportComplete(s.BaseName(), time.Since(start), err)
	}()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeWriteFailed, "creating output directory %s failed", dir)
	}

	sum := render.NewSummary(s)

	data, err := render.JSON(sum)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeWriteFailed, "encoding summary JSON failed")
	}
	res = &Result{JSONPath: filepath.Join(dir, s.Outputs.JSON)}
	if err := writeFile("json", res.JSONPath, data); err != nil {
		return nil, err
	}

	res.TXTPath = filepath.Join(dir, s.Outputs.TXT)
	if err := writeFile("txt", res.TXTPath, render.Text(sum)); err != nil {
		return nil, err
	}

	if o.withSVG {
		base := s.BaseName()
		modules := filepath.Join(dir, base+"_modules.svg")
		if err := writeFile("svg", modules, render.ModuleGridSVG(s)); err != nil {
			return nil, err
		}
		baselines := filepath.Join(dir, base+"_baselines.svg")
		if err := writeFile("svg", baselines, render.BaselineGridSVG(s)); err != nil {
			return nil, err
		}
		res.SVGPaths = []string{modules, baselines}
	}

	if !o.skipPDF {
		res.PDFPath, res.PDFErr = writePDF(dir, s, o.fontPath)
	}

	return res, nil
}

// writePDF renders and writes the PDF sheet. Failures come back as the
// warning error instead of aborting the run.
func writePDF(dir string, s *grid.Spec, fontPath string) (string, error) {
	var opts []render.PDFOption
	if fontPath != "" {
		opts = append(opts, render.WithFontPath(fontPath))
	}

	data, err := render.PDF(s, opts...)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, s.Outputs.PDF)
	if err := writeFile("pdf", path, data); err != nil {
		return "", err
	}
	return path, nil
}

func writeFile(kind, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, errors.ErrCodeWriteFailed, "writing %s failed", path)
	}
	observability.Export().OnArtifact(kind, path, len(data))
	return nil
}
