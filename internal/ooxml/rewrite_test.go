package ooxml

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

func upper(s string) string { return strings.ToUpper(s) }

func TestRewriteTextRuns(t *testing.T) {
	const in = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree><p:sp><p:txBody><a:p><a:r><a:rPr lang="en-US" dirty="0"/><a:t>jkpo;</a:t></a:r><a:r><a:t>2024</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld></p:sld>`
	const want = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree><p:sp><p:txBody><a:p><a:r><a:rPr lang="en-US" dirty="0"/><a:t>தமிழ்</a:t></a:r><a:r><a:t>2024</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld></p:sld>`

	transform := func(s string) string { return strings.ReplaceAll(s, "jkpo;", "தமிழ்") }
	out, runs, changed, err := RewriteTextRuns([]byte(in), transform)
	if err != nil {
		t.Fatalf("RewriteTextRuns: %v", err)
	}
	if string(out) != want {
		t.Errorf("output mismatch:\ngot:  %s\nwant: %s", out, want)
	}
	if runs != 2 || changed != 1 {
		t.Errorf("runs = %d, changed = %d, want 2, 1", runs, changed)
	}
}

// Bytes outside the rewritten runs must survive exactly: attribute quoting,
// stray spaces inside tags, namespace prefixes.
func TestRewriteTextRunsPreservesSurroundings(t *testing.T) {
	const in = `<w:p xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:r><w:t xml:space='preserve'  >a b</w:t  ></w:r></w:p>`
	const want = `<w:p xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:r><w:t xml:space='preserve'  >A B</w:t  ></w:r></w:p>`

	out, runs, changed, err := RewriteTextRuns([]byte(in), upper)
	if err != nil {
		t.Fatalf("RewriteTextRuns: %v", err)
	}
	if string(out) != want {
		t.Errorf("output mismatch:\ngot:  %s\nwant: %s", out, want)
	}
	if runs != 1 || changed != 1 {
		t.Errorf("runs = %d, changed = %d, want 1, 1", runs, changed)
	}
}

func TestRewriteTextRunsEscapes(t *testing.T) {
	const in = `<a:p xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"><a:t>f &amp; g &lt; h</a:t></a:p>`
	out, _, changed, err := RewriteTextRuns([]byte(in), upper)
	if err != nil {
		t.Fatalf("RewriteTextRuns: %v", err)
	}
	if changed != 1 {
		t.Fatalf("changed = %d, want 1", changed)
	}
	if !bytes.Contains(out, []byte("F &amp; G &lt; H")) {
		t.Errorf("entities not re-escaped: %s", out)
	}
}

func TestRewriteTextRunsSkipsMath(t *testing.T) {
	const in = `<w:p xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:m="http://schemas.openxmlformats.org/officeDocument/2006/math"><m:oMath><m:r><m:t>ab=c</m:t></m:r></m:oMath><w:r><w:t>ab</w:t></w:r></w:p>`
	out, runs, changed, err := RewriteTextRuns([]byte(in), upper)
	if err != nil {
		t.Fatalf("RewriteTextRuns: %v", err)
	}
	if runs != 1 || changed != 1 {
		t.Errorf("runs = %d, changed = %d, want 1, 1 (math runs must not count)", runs, changed)
	}
	if !bytes.Contains(out, []byte("<m:t>ab=c</m:t>")) {
		t.Errorf("math run was rewritten: %s", out)
	}
	if !bytes.Contains(out, []byte("<w:t>AB</w:t>")) {
		t.Errorf("text run was not rewritten: %s", out)
	}
}

func TestRewriteTextRunsForeignNamespace(t *testing.T) {
	const in = `<x:doc xmlns:x="urn:example"><x:t>zz</x:t></x:doc>`
	out, runs, changed, err := RewriteTextRuns([]byte(in), upper)
	if err != nil {
		t.Fatalf("RewriteTextRuns: %v", err)
	}
	if runs != 0 || changed != 0 {
		t.Errorf("runs = %d, changed = %d, want 0, 0", runs, changed)
	}
	if string(out) != in {
		t.Errorf("foreign-namespace document was modified: %s", out)
	}
}

func TestRewriteTextRunsNoChange(t *testing.T) {
	const in = `<a:p xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"><a:r><a:t>2024</a:t></a:r><a:r><a:t></a:t></a:r><a:r><a:t/></a:r></a:p>`
	out, runs, changed, err := RewriteTextRuns([]byte(in), upper)
	if err != nil {
		t.Fatalf("RewriteTextRuns: %v", err)
	}
	if changed != 0 {
		t.Errorf("changed = %d, want 0", changed)
	}
	if runs != 3 {
		t.Errorf("runs = %d, want 3", runs)
	}
	if string(out) != in {
		t.Errorf("unchanged document was modified: %s", out)
	}
}

func TestRewriteTextRunsAbandonsRunsWithMarkup(t *testing.T) {
	const in = `<a:p xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"><a:t>a<a:br/>c</a:t></a:p>`
	out, _, changed, err := RewriteTextRuns([]byte(in), upper)
	if err != nil {
		t.Fatalf("RewriteTextRuns: %v", err)
	}
	if changed != 0 {
		t.Errorf("changed = %d, want 0", changed)
	}
	if string(out) != in {
		t.Errorf("run with child markup was modified: %s", out)
	}
}

func TestRewriteTextRunsUTF16(t *testing.T) {
	const doc = `<?xml version="1.0" encoding="UTF-16"?><a:p xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"><a:t>hi</a:t></a:p>`
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	in, err := enc.Bytes([]byte(doc))
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	out, runs, changed, err := RewriteTextRuns(in, upper)
	if err != nil {
		t.Fatalf("RewriteTextRuns: %v", err)
	}
	if runs != 1 || changed != 1 {
		t.Errorf("runs = %d, changed = %d, want 1, 1", runs, changed)
	}
	if !bytes.Contains(out, []byte(`<a:t>HI</a:t>`)) {
		t.Errorf("text not rewritten: %s", out)
	}
	if !bytes.Contains(out, []byte(`encoding="UTF-8"`)) {
		t.Errorf("encoding label not patched: %s", out)
	}
}

func TestRewriteTextRunsLegacyCharset(t *testing.T) {
	in := []byte(`<?xml version="1.0" encoding="windows-1252"?><a:p xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"><a:t>caf`)
	in = append(in, 0xE9) // é in cp1252
	in = append(in, []byte(`</a:t></a:p>`)...)

	out, _, changed, err := RewriteTextRuns(in, upper)
	if err != nil {
		t.Fatalf("RewriteTextRuns: %v", err)
	}
	if changed != 1 {
		t.Fatalf("changed = %d, want 1", changed)
	}
	if !bytes.Contains(out, []byte("CAFÉ")) {
		t.Errorf("cp1252 text not transcoded and rewritten: %s", out)
	}
	if !bytes.Contains(out, []byte(`encoding="UTF-8"`)) {
		t.Errorf("encoding label not patched: %s", out)
	}
}

func TestRewriteTextRunsMalformed(t *testing.T) {
	if _, _, _, err := RewriteTextRuns([]byte(`<a:p xmlns:a="x"><a:t>unclosed`), upper); err == nil {
		t.Error("want error for malformed XML, got nil")
	}
}

func TestRewriteArchive(t *testing.T) {
	var orig bytes.Buffer
	zw := zip.NewWriter(&orig)
	media := []byte{0x89, 0x50, 0x4E, 0x47, 0x00, 0x01, 0x02, 0x03}
	entries := []struct {
		name   string
		data   []byte
		method uint16
	}{
		{"ppt/slides/slide1.xml", []byte("<old/>"), zip.Deflate},
		{"docProps/app.xml", []byte("<app/>"), zip.Deflate},
		{"ppt/media/image1.png", media, zip.Store},
	}
	for _, e := range entries {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: e.name, Method: e.method})
		if err != nil {
			t.Fatalf("create %s: %v", e.name, err)
		}
		if _, err := w.Write(e.data); err != nil {
			t.Fatalf("write %s: %v", e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close fixture: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(orig.Bytes()), int64(orig.Len()))
	if err != nil {
		t.Fatalf("reopen fixture: %v", err)
	}

	var out bytes.Buffer
	replaced := map[string][]byte{"ppt/slides/slide1.xml": []byte("<new/>")}
	if err := RewriteArchive(&out, zr, replaced); err != nil {
		t.Fatalf("RewriteArchive: %v", err)
	}

	got, err := zip.NewReader(bytes.NewReader(out.Bytes()), int64(out.Len()))
	if err != nil {
		t.Fatalf("reopen output: %v", err)
	}
	if len(got.File) != len(entries) {
		t.Fatalf("output has %d entries, want %d", len(got.File), len(entries))
	}
	wantData := map[string][]byte{
		"ppt/slides/slide1.xml": []byte("<new/>"),
		"docProps/app.xml":      []byte("<app/>"),
		"ppt/media/image1.png":  media,
	}
	for i, f := range got.File {
		if f.Name != entries[i].name {
			t.Errorf("entry %d = %q, want %q (order must be preserved)", i, f.Name, entries[i].name)
		}
		if f.Method != entries[i].method {
			t.Errorf("%s: method = %d, want %d", f.Name, f.Method, entries[i].method)
		}
		data, err := ReadFileFromZip(got, f.Name)
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		if !bytes.Equal(data, wantData[f.Name]) {
			t.Errorf("%s: content = %q, want %q", f.Name, data, wantData[f.Name])
		}
	}
}
