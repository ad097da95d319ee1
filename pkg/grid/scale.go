package grid

// ScaleFactor computes the dimensionless typographic scale of a format and
// orientation relative to the reference format (A4).
//
// Both the requested and the reference dimensions start at portrait; the
// orientation swap is applied to the requested pair only, and the minimum of
// the two axis ratios is returned. Using the minimum keeps the grid from
// overflowing either axis and makes portrait/landscape scaling symmetric.
//
// The reference format at portrait yields exactly 1.0.
func ScaleFactor(f Format, o Orientation) float64 {
	ref := Reference.Portrait()
	s := f.Size(o)
	return min(s.Width/ref.Width, s.Height/ref.Height)
}
