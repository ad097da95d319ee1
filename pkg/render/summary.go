package render

import (
	"encoding/json"
	"math"

	"github.com/longplay45/swissgrid/pkg/grid"
)

// Summary is the canonical machine-readable record of a grid specification.
// All numeric fields are rounded to three decimal places; the text rendering
// and the CLI's pretty-print view are both lossless projections of this
// record.
type Summary struct {
	Format      string     `json:"format"`
	Settings    Settings   `json:"settings"`
	PageSizePt  Dims       `json:"pageSizePt"`
	Grid        GridValues `json:"grid"`
	ContentArea Dims       `json:"contentArea"`
	Module      Module     `json:"module"`
	Typography  Typography `json:"typography"`
	Outputs     Outputs    `json:"outputs"`
	Principles  Principles `json:"principles"`
}

// Settings echoes the generation request.
type Settings struct {
	Orientation    string `json:"orientation"`
	MarginMethod   string `json:"marginMethod"`
	MarginMethodID int    `json:"marginMethodId"`
	GridCols       int    `json:"gridCols"`
	GridRows       int    `json:"gridRows"`
}

// Dims is a width/height pair in points.
type Dims struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// GridValues carries the resolved rhythm and margin geometry.
type GridValues struct {
	GridUnit             float64      `json:"gridUnit"`
	GridMarginHorizontal float64      `json:"gridMarginHorizontal"`
	GridMarginVertical   float64      `json:"gridMarginVertical"`
	Margins              MarginValues `json:"margins"`
	Gutter               float64      `json:"gutter"`
	ScaleFactor          float64      `json:"scaleFactor"`
	BaselineUnitsPerCell int          `json:"baselineUnitsPerCell"`
}

// MarginValues is the four resolved page margins.
type MarginValues struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// Module describes one grid cell plus the derived aspect ratio.
type Module struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	AspectRatio float64 `json:"aspectRatio"`
}

// Typography carries the scaled style table and its scaling context.
type Typography struct {
	Metadata TypographyMetadata      `json:"metadata"`
	Styles   map[string]StyleValues  `json:"styles"`
}

// TypographyMetadata records what the styles were scaled for.
type TypographyMetadata struct {
	Format            string  `json:"format"`
	Unit              string  `json:"unit"`
	BaselineGrid      float64 `json:"baselineGrid"`
	ReferenceBaseline float64 `json:"referenceBaseline"`
	ScaleFactor       float64 `json:"scaleFactor"`
}

// StyleValues is one scaled text style.
type StyleValues struct {
	Size      float64 `json:"size"`
	Leading   float64 `json:"leading"`
	Weight    string  `json:"weight"`
	Alignment string  `json:"alignment"`
}

// Outputs names the artifact files.
type Outputs struct {
	GridJSON        string `json:"gridJson"`
	GridTXT         string `json:"gridTxt"`
	BaselineGridPDF string `json:"baselineGridPdf"`
}

// Principles documents the methodology the layout follows.
type Principles struct {
	Reference          string `json:"reference"`
	BaselineAlignment  string `json:"baselineAlignment"`
	ModularConsistency string `json:"modularConsistency"`
	Scalability        string `json:"scalability"`
}

// round3 rounds to the record's fixed three-decimal precision.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// NewSummary projects a spec into its canonical summary record.
func NewSummary(s *grid.Spec) Summary {
	styles := make(map[string]StyleValues, len(s.Typography.Styles))
	for name, st := range s.Typography.Styles {
		styles[name] = StyleValues{
			Size:      round3(st.Size),
			Leading:   round3(st.Leading),
			Weight:    st.Weight,
			Alignment: st.Alignment,
		}
	}

	return Summary{
		Format: string(s.Format),
		Settings: Settings{
			Orientation:    string(s.Orientation),
			MarginMethod:   s.MarginMethod.Label(),
			MarginMethodID: int(s.MarginMethod),
			GridCols:       s.Columns,
			GridRows:       s.Rows,
		},
		PageSizePt: Dims{
			Width:  round3(s.Page.Width),
			Height: round3(s.Page.Height),
		},
		Grid: GridValues{
			GridUnit:             round3(s.BaselineUnit),
			GridMarginHorizontal: round3(s.Gutters.Horizontal),
			GridMarginVertical:   round3(s.Gutters.Vertical),
			Margins: MarginValues{
				Top:    round3(s.Margins.Top),
				Bottom: round3(s.Margins.Bottom),
				Left:   round3(s.Margins.Left),
				Right:  round3(s.Margins.Right),
			},
			Gutter:               round3(s.Gutters.Horizontal),
			ScaleFactor:          round3(s.ScaleFactor),
			BaselineUnitsPerCell: s.UnitsPerCell,
		},
		ContentArea: Dims{
			Width:  round3(s.ContentWidth()),
			Height: round3(s.ContentHeight()),
		},
		Module: Module{
			Width:       round3(s.Module.Width),
			Height:      round3(s.Module.Height),
			AspectRatio: round3(s.Module.Width / s.Module.Height),
		},
		Typography: Typography{
			Metadata: TypographyMetadata{
				Format:            string(s.Typography.Metadata.Format),
				Unit:              s.Typography.Metadata.Unit,
				BaselineGrid:      s.Typography.Metadata.BaselineGrid,
				ReferenceBaseline: s.Typography.Metadata.ReferenceBaseline,
				ScaleFactor:       s.Typography.Metadata.ScaleFactor,
			},
			Styles: styles,
		},
		Outputs: Outputs{
			GridJSON:        s.Outputs.JSON,
			GridTXT:         s.Outputs.TXT,
			BaselineGridPDF: s.Outputs.PDF,
		},
		Principles: Principles{
			Reference:          "Müller-Brockmann, Grid Systems in Graphic Design (1981)",
			BaselineAlignment:  "All typography aligns to baseline grid",
			ModularConsistency: "Grid modules maintain proportional relationships",
			Scalability:        "System scales across A-series formats",
		},
	}
}

// JSON encodes the summary record as indented JSON. Encoding is
// deterministic: map keys marshal in sorted order, so identical specs yield
// byte-identical documents.
func JSON(sum Summary) ([]byte, error) {
	return json.MarshalIndent(sum, "", "  ")
}
