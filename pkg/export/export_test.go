package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/longplay45/swissgrid/pkg/grid"
)

func buildSpec(t *testing.T) *grid.Spec {
	t.Helper()
	s, err := grid.Build(grid.Params{
		Format:       grid.FormatA4,
		Orientation:  grid.Portrait,
		Columns:      9,
		Rows:         9,
		MarginMethod: grid.Progressive,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	s := buildSpec(t)

	res, err := Write(dir, s)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	wantJSON := filepath.Join(dir, "a4_portrait_9x9_method1_baseline12pt_grid.json")
	if res.JSONPath != wantJSON {
		t.Errorf("JSONPath = %q, want %q", res.JSONPath, wantJSON)
	}

	data, err := os.ReadFile(res.JSONPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("written JSON does not parse: %v", err)
	}
	if doc["format"] != "A4" {
		t.Errorf("written format = %v", doc["format"])
	}

	txt, err := os.ReadFile(res.TXTPath)
	if err != nil {
		t.Fatalf("ReadFile txt: %v", err)
	}
	if !bytes.Contains(txt, []byte("SWISS GRID SYSTEM - PARAMETERS")) {
		t.Error("text artifact missing header")
	}

	if res.PDFErr != nil {
		t.Fatalf("PDF warning without a font requirement: %v", res.PDFErr)
	}
	pdf, err := os.ReadFile(res.PDFPath)
	if err != nil {
		t.Fatalf("ReadFile pdf: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("PDF artifact missing header")
	}
}

func TestWriteSkipPDF(t *testing.T) {
	dir := t.TempDir()

	res, err := Write(dir, buildSpec(t), SkipPDF())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if res.PDFPath != "" || res.PDFErr != nil {
		t.Errorf("PDF should be skipped, got path %q err %v", res.PDFPath, res.PDFErr)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("expected JSON and TXT only, found %d files", len(entries))
	}
}

func TestWriteSVG(t *testing.T) {
	dir := t.TempDir()

	res, err := Write(dir, buildSpec(t), SkipPDF(), WithSVG())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(res.SVGPaths) != 2 {
		t.Fatalf("SVGPaths = %v, want two entries", res.SVGPaths)
	}
	for _, p := range res.SVGPaths {
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("ReadFile %s: %v", p, err)
		}
		if !bytes.Contains(data, []byte("<svg ")) {
			t.Errorf("%s is not an SVG document", p)
		}
	}
}

func TestWriteIdempotent(t *testing.T) {
	dir := t.TempDir()
	s := buildSpec(t)

	res, err := Write(dir, s, SkipPDF())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	first, err := os.ReadFile(res.JSONPath)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Write(dir, s, SkipPDF()); err != nil {
		t.Fatalf("second Write: %v", err)
	}
	second, err := os.ReadFile(res.JSONPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("rewriting the same spec changed the artifact")
	}
}

func TestWriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "grids")

	if _, err := Write(dir, buildSpec(t), SkipPDF()); err != nil {
		t.Fatalf("Write into missing directory: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output directory not created: %v", err)
	}
}
