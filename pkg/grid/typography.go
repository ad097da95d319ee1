package grid

// ReferenceBaseline is the baseline grid unit in points on the reference
// format. All leading values in the reference typography are multiples (or,
// for captions, a fixed fraction) of this unit.
const ReferenceBaseline = 12.0

// Style is one named text style of the reference typography system.
// Size and Leading are in points at the reference format.
type Style struct {
	Size             float64
	Leading          float64
	Weight           string
	BaselineMultiple float64
	BodyLines        float64
}

// StyleOrder lists the style names from smallest to largest. Renderers
// iterate in this order so tables read caption → display.
var StyleOrder = []string{
	"caption",
	"footnote",
	"body",
	"lead",
	"subhead_small",
	"subhead_medium",
	"headline_3",
	"headline_2",
	"headline_1",
	"display",
}

// referenceTypography is the A4 typography system. Every leading value lands
// on the 12 pt baseline grid.
var referenceTypography = map[string]Style{
	"caption":        {Size: 7, Leading: 8, Weight: "Regular", BaselineMultiple: 0.67, BodyLines: 0.67},
	"footnote":       {Size: 6, Leading: 12, Weight: "Regular", BaselineMultiple: 1, BodyLines: 1},
	"body":           {Size: 10, Leading: 12, Weight: "Regular", BaselineMultiple: 1, BodyLines: 1},
	"lead":           {Size: 12, Leading: 12, Weight: "Regular", BaselineMultiple: 1, BodyLines: 1},
	"subhead_small":  {Size: 14, Leading: 24, Weight: "Bold", BaselineMultiple: 2, BodyLines: 2},
	"subhead_medium": {Size: 18, Leading: 24, Weight: "Bold", BaselineMultiple: 2, BodyLines: 2},
	"headline_3":     {Size: 20, Leading: 24, Weight: "Bold", BaselineMultiple: 2, BodyLines: 2},
	"headline_2":     {Size: 28, Leading: 36, Weight: "Bold", BaselineMultiple: 3, BodyLines: 3},
	"headline_1":     {Size: 48, Leading: 48, Weight: "Bold", BaselineMultiple: 4, BodyLines: 4},
	"display":        {Size: 72, Leading: 72, Weight: "Bold", BaselineMultiple: 6, BodyLines: 6},
}

// ReferenceTypography returns a copy of the A4 reference style table.
func ReferenceTypography() map[string]Style {
	out := make(map[string]Style, len(referenceTypography))
	for name, s := range referenceTypography {
		out[name] = s
	}
	return out
}

// ScaledStyle is a text style resolved for a concrete format and baseline.
type ScaledStyle struct {
	Size             float64
	Leading          float64
	Weight           string
	Alignment        string
	BaselineMultiple float64
	BodyLines        float64
}

// TypographyMetadata records the context a typography system was scaled for.
type TypographyMetadata struct {
	Format            Format
	Unit              string
	BaselineGrid      float64
	ReferenceBaseline float64
	ScaleFactor       float64
}

// Typography is a complete scaled typography system.
type Typography struct {
	Metadata TypographyMetadata
	Styles   map[string]ScaledStyle
}

// ScaleTypography derives the typography system for a format.
//
// Point sizes are multiplied by the format scale factor; leading is
// multiplied by baselineUnit/ReferenceBaseline instead. Decoupling the two
// is intentional: leading must always land on a multiple of the current
// baseline grid regardless of how large the glyphs are drawn.
func ScaleTypography(scaleFactor, baselineUnit float64, f Format) Typography {
	styles := make(map[string]ScaledStyle, len(referenceTypography))
	for name, ref := range referenceTypography {
		styles[name] = ScaledStyle{
			Size:             round3(ref.Size * scaleFactor),
			Leading:          round3(ref.Leading * (baselineUnit / ReferenceBaseline)),
			Weight:           ref.Weight,
			Alignment:        "Left",
			BaselineMultiple: ref.BaselineMultiple,
			BodyLines:        ref.BodyLines,
		}
	}
	return Typography{
		Metadata: TypographyMetadata{
			Format:            f,
			Unit:              "pt",
			BaselineGrid:      round3(baselineUnit),
			ReferenceBaseline: ReferenceBaseline,
			ScaleFactor:       round3(scaleFactor),
		},
		Styles: styles,
	}
}
