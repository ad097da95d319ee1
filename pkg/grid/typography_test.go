package grid

import "testing"

func TestScaleTypographyIdentity(t *testing.T) {
	// At the reference format with the reference baseline the table comes
	// back unchanged.
	typo := ScaleTypography(1.0, ReferenceBaseline, FormatA4)

	if len(typo.Styles) != len(StyleOrder) {
		t.Fatalf("scaled %d styles, want %d", len(typo.Styles), len(StyleOrder))
	}
	for name, ref := range ReferenceTypography() {
		got, ok := typo.Styles[name]
		if !ok {
			t.Errorf("style %s missing from scaled set", name)
			continue
		}
		if got.Size != ref.Size {
			t.Errorf("%s size = %v, want %v", name, got.Size, ref.Size)
		}
		if got.Leading != ref.Leading {
			t.Errorf("%s leading = %v, want %v", name, got.Leading, ref.Leading)
		}
		if got.Weight != ref.Weight {
			t.Errorf("%s weight = %q, want %q", name, got.Weight, ref.Weight)
		}
		if got.Alignment != "Left" {
			t.Errorf("%s alignment = %q, want Left", name, got.Alignment)
		}
	}
}

func TestScaleTypographyDecoupling(t *testing.T) {
	// Font size follows the format scale; leading follows the baseline
	// ratio. A custom baseline on the reference format must leave sizes
	// untouched while doubling the leading.
	typo := ScaleTypography(1.0, 24.0, FormatA4)

	body := typo.Styles["body"]
	if body.Size != 10.0 {
		t.Errorf("body size = %v, want 10.0 (scale factor 1)", body.Size)
	}
	if body.Leading != 24.0 {
		t.Errorf("body leading = %v, want 24.0 (doubled baseline)", body.Leading)
	}

	display := typo.Styles["display"]
	if display.Leading != 144.0 {
		t.Errorf("display leading = %v, want 144.0 (6 units of 24)", display.Leading)
	}
}

func TestScaleTypographyFormatScaling(t *testing.T) {
	scale := ScaleFactor(FormatA3, Portrait)
	unit := ReferenceBaseline * scale
	typo := ScaleTypography(scale, unit, FormatA3)

	lead := typo.Styles["lead"]
	if want := round3(12 * scale); lead.Size != want {
		t.Errorf("lead size = %v, want %v", lead.Size, want)
	}
	// With the baseline scaled by the same factor, leading stays a clean
	// multiple of the scaled unit.
	if want := round3(12 * (unit / ReferenceBaseline)); lead.Leading != want {
		t.Errorf("lead leading = %v, want %v", lead.Leading, want)
	}

	if typo.Metadata.Format != FormatA3 {
		t.Errorf("metadata format = %v", typo.Metadata.Format)
	}
	if typo.Metadata.ReferenceBaseline != 12.0 {
		t.Errorf("metadata reference baseline = %v", typo.Metadata.ReferenceBaseline)
	}
}

func TestStyleOrderCoversTable(t *testing.T) {
	ref := ReferenceTypography()
	if len(StyleOrder) != len(ref) {
		t.Fatalf("StyleOrder has %d names, table has %d", len(StyleOrder), len(ref))
	}
	for _, name := range StyleOrder {
		if _, ok := ref[name]; !ok {
			t.Errorf("StyleOrder names unknown style %q", name)
		}
	}
}

func TestLeadingLandsOnBaseline(t *testing.T) {
	// Every reference style's leading is a multiple of the caption ratio
	// or a whole-unit multiple; all non-caption styles land exactly on the
	// 12pt grid.
	for name, s := range ReferenceTypography() {
		if name == "caption" {
			continue // 8pt leading, intentionally 2/3 of a unit
		}
		if rem := int(s.Leading) % int(ReferenceBaseline); rem != 0 {
			t.Errorf("%s leading %v not on the reference baseline grid", name, s.Leading)
		}
	}
}
