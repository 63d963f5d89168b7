package ooxml

import (
	"archive/zip"
	"bytes"
	"testing"
)

func TestRelsPathFor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ppt/presentation.xml", "ppt/_rels/presentation.xml.rels"},
		{"ppt/slides/slide1.xml", "ppt/slides/_rels/slide1.xml.rels"},
		{"word/document.xml", "word/_rels/document.xml.rels"},
		{"content.xml", "_rels/content.xml.rels"},
	}
	for _, tt := range tests {
		if got := RelsPathFor(tt.in); got != tt.want {
			t.Errorf("RelsPathFor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		base   string
		target string
		want   string
	}{
		{"ppt/presentation.xml", "slides/slide1.xml", "ppt/slides/slide1.xml"},
		{"ppt/slides/slide1.xml", "../notesSlides/notesSlide1.xml", "ppt/notesSlides/notesSlide1.xml"},
		{"word/document.xml", "/word/header1.xml", "word/header1.xml"},
	}
	for _, tt := range tests {
		if got := ResolveTarget(tt.base, tt.target); got != tt.want {
			t.Errorf("ResolveTarget(%q, %q) = %q, want %q", tt.base, tt.target, got, tt.want)
		}
	}
}

func TestParseRelationships(t *testing.T) {
	const rels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide1.xml"/><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="theme/theme1.xml"/></Relationships>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("ppt/_rels/presentation.xml.rels")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(rels)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}

	got, err := ParseRelationships(zr, "ppt/_rels/presentation.xml.rels")
	if err != nil {
		t.Fatalf("ParseRelationships: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d relationships, want 2", len(got))
	}
	if got["rId1"].Target != "slides/slide1.xml" {
		t.Errorf("rId1 target = %q, want %q", got["rId1"].Target, "slides/slide1.xml")
	}

	missing, err := ParseRelationships(zr, "ppt/slides/_rels/slide1.xml.rels")
	if err != nil {
		t.Fatalf("ParseRelationships (missing): %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("missing rels file: got %d relationships, want 0", len(missing))
	}
}
