package grid

import (
	"sort"
	"strings"

	"github.com/longplay45/swissgrid/pkg/errors"
)

// Format identifies a standardized ISO 216 A-series page size.
type Format string

// Supported A-series formats.
const (
	FormatA6 Format = "A6"
	FormatA5 Format = "A5"
	FormatA4 Format = "A4"
	FormatA3 Format = "A3"
	FormatA2 Format = "A2"
	FormatA1 Format = "A1"
	FormatA0 Format = "A0"
)

// Reference is the base format all typographic scaling relates to.
const Reference = FormatA4

// Size holds page dimensions in points.
type Size struct {
	Width  float64
	Height float64
}

// catalog maps each format to its portrait dimensions in points.
// The A-series is built on a √2 aspect ratio, so proportions stay constant
// when stepping between sizes (A0 → A1 → A2, ...).
var catalog = map[Format]Size{
	FormatA6: {297.638, 419.528},   // 105 × 148 mm
	FormatA5: {419.528, 595.276},   // 148 × 210 mm
	FormatA4: {595.276, 841.890},   // 210 × 297 mm
	FormatA3: {841.890, 1190.551},  // 297 × 420 mm
	FormatA2: {1190.551, 1683.780}, // 420 × 594 mm
	FormatA1: {1683.780, 2383.937}, // 594 × 841 mm
	FormatA0: {2383.937, 3370.394}, // 841 × 1189 mm
}

// Formats returns all supported formats sorted by name (A0 first).
func Formats() []Format {
	fs := make([]Format, 0, len(catalog))
	for f := range catalog {
		fs = append(fs, f)
	}
	sort.Slice(fs, func(i, j int) bool { return fs[i] < fs[j] })
	return fs
}

// FormatNames returns the supported format names for error messages and
// completion, sorted.
func FormatNames() []string {
	fs := Formats()
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = string(f)
	}
	return names
}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := catalog[f]; !ok {
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unsupported format: %s (use: %s)", s, strings.Join(FormatNames(), ", "))
	}
	return f, nil
}

// Valid reports whether the format exists in the catalog.
func (f Format) Valid() bool {
	_, ok := catalog[f]
	return ok
}

// Portrait returns the format's portrait dimensions in points.
func (f Format) Portrait() Size {
	return catalog[f]
}

// Size returns the format's dimensions in points with the orientation applied.
func (f Format) Size(o Orientation) Size {
	s := catalog[f]
	if o == Landscape {
		s.Width, s.Height = s.Height, s.Width
	}
	return s
}

// Orientation is the page orientation, applied by swapping width and height.
type Orientation string

// Supported orientations.
const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// ParseOrientation resolves a case-insensitive orientation name.
func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(strings.ToLower(strings.TrimSpace(s))) {
	case Portrait:
		return Portrait, nil
	case Landscape:
		return Landscape, nil
	}
	return "", errors.New(errors.ErrCodeInvalidOrientation,
		"unsupported orientation: %s (use: portrait or landscape)", s)
}

// Valid reports whether the orientation is one of the two supported values.
func (o Orientation) Valid() bool {
	return o == Portrait || o == Landscape
}
