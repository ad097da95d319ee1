package render

import (
	"math"

	"github.com/flopp/go-findfont"
	"github.com/signintech/gopdf"

	"github.com/longplay45/swissgrid/pkg/errors"
	"github.com/longplay45/swissgrid/pkg/grid"
)

// fontCandidates are tried in order by [FindFont]. The list covers the
// common sans-serif installs on macOS and Linux.
var fontCandidates = []string{
	"Helvetica.ttf",
	"HelveticaNeue.ttf",
	"Arial.ttf",
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
	"FreeSans.ttf",
}

// FindFont locates a TTF font on the host system for the PDF footer.
// Callers should treat failure as a warning: [PDF] renders the full
// geometry without a font, only the footer text is skipped.
func FindFont() (string, error) {
	for _, name := range fontCandidates {
		if path, err := findfont.Find(name); err == nil {
			return path, nil
		}
	}
	return "", errors.New(errors.ErrCodeRenderFailed, "no usable TTF font found, PDF footer will be omitted")
}

// PDFOption configures the PDF renderer.
type PDFOption func(*pdfOptions)

type pdfOptions struct {
	fontPath string
}

// WithFontPath sets an explicit TTF font for the footer text. Without it
// the sheet is rendered footerless.
func WithFontPath(path string) PDFOption {
	return func(o *pdfOptions) {
		o.fontPath = path
	}
}

// PDF renders the printable composite reference sheet: checkerboard module
// fills, module outlines, the baseline rhythm spanning the full page with
// every fourth line emphasized, and a three-line footer when a font is
// available.
func PDF(s *grid.Spec, opts ...PDFOption) ([]byte, error) {
	var o pdfOptions
	for _, opt := range opts {
		opt(&o)
	}

	w, h := s.Page.Width, s.Page.Height
	m := s.Margins
	modW, modH := s.Module.Width, s.Module.Height
	gutH, gutV := s.Gutters.Horizontal, s.Gutters.Vertical
	unit := s.BaselineUnit

	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{
		PageSize: gopdf.Rect{W: w, H: h},
		Unit:     gopdf.UnitPT,
	})
	pdf.AddPage()

	// Checkerboard fills make the module rhythm readable at a glance.
	pdf.SetFillColor(245, 245, 245)
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Columns; c++ {
			if (r+c)%2 != 0 {
				continue
			}
			x := m.Left + float64(c)*(modW+gutH)
			y := m.Top + float64(r)*(modH+gutV)
			pdf.RectFromUpperLeftWithStyle(x, y, modW, modH, "F")
		}
	}

	pdf.SetLineWidth(0.25)
	pdf.SetStrokeColor(0, 128, 255)
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Columns; c++ {
			x := m.Left + float64(c)*(modW+gutH)
			y := m.Top + float64(r)*(modH+gutV)
			pdf.RectFromUpperLeftWithStyle(x, y, modW, modH, "D")
		}
	}

	// Baselines span the full page, margins included, so the sheet can be
	// overlaid on design work.
	for y := 0.0; y <= h+svgEpsilon; y += unit {
		lineNum := int(math.Round(y / unit))
		if lineNum%4 == 0 {
			pdf.SetLineWidth(0.25)
			pdf.SetStrokeColor(255, 0, 255)
		} else {
			pdf.SetLineWidth(0.15)
			pdf.SetStrokeColor(255, 128, 255)
		}
		pdf.Line(0, y, w, y)
	}

	if o.fontPath != "" {
		if err := drawFooter(pdf, s, o.fontPath); err != nil {
			return nil, err
		}
	}

	out, err := pdf.GetBytesPdfReturnErr()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeRenderFailed, "encoding PDF failed")
	}
	return out, nil
}

var footerLines = []string{
	"Based on Muller-Brockmann's Grid Systems in Graphic Design (1981).",
	"Copyleft & -right 2026 by https://lp45.net",
	"License MIT. Source Code: https://github.com/longplay45/swissgrid",
}

func drawFooter(pdf *gopdf.GoPdf, s *grid.Spec, fontPath string) error {
	if err := pdf.AddTTFFont("footer", fontPath); err != nil {
		return errors.Wrap(err, errors.ErrCodeRenderFailed, "loading footer font failed")
	}
	if err := pdf.SetFont("footer", "", 7); err != nil {
		return errors.Wrap(err, errors.ErrCodeRenderFailed, "selecting footer font failed")
	}
	pdf.SetTextColor(77, 77, 77)

	// The footer starts 25pt above the page bottom edge inside the bottom
	// margin, 10pt line height.
	y := s.Page.Height - s.Margins.Bottom + 25
	for _, line := range footerLines {
		pdf.SetXY(s.Margins.Left, y)
		if err := pdf.Cell(nil, line); err != nil {
			return errors.Wrap(err, errors.ErrCodeRenderFailed, "drawing footer text failed")
		}
		y += 10
	}
	return nil
}
