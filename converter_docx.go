package baminiconv

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Anto-Nobel/ConvertBaminiToUnicodePPTX/internal/ooxml"
)

// DocxConverter rewrites the text runs of DOCX documents: the main body plus
// headers, footers, footnotes, endnotes and comments. OMML math runs inside
// any of them are left untouched by the run rewriter.
type DocxConverter struct {
	engine *Converter
}

// NewDocxConverter creates a new DocxConverter.
func NewDocxConverter(c *Converter) *DocxConverter {
	return &DocxConverter{engine: c}
}

func (c *DocxConverter) Accepts(info StreamInfo) bool {
	if info.Extension == ".docx" {
		return true
	}
	mime := strings.ToLower(info.MIMEType)
	return strings.HasPrefix(mime, "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
}

func (c *DocxConverter) Convert(reader io.ReadSeeker, info StreamInfo) (*DocumentConverterResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read DOCX: %w", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open DOCX ZIP: %w", err)
	}
	if !ooxml.HasFile(zr, "word/document.xml") {
		return nil, fmt.Errorf("missing word/document.xml")
	}

	var stats ConversionStats
	replaced := make(map[string][]byte)
	if err := c.engine.rewriteParts(zr, docxTextParts(zr), &stats, replaced); err != nil {
		return nil, err
	}

	if len(replaced) == 0 {
		return &DocumentConverterResult{Data: data, Stats: stats}, nil
	}

	var buf bytes.Buffer
	if err := ooxml.RewriteArchive(&buf, zr, replaced); err != nil {
		return nil, fmt.Errorf("write DOCX: %w", err)
	}
	return &DocumentConverterResult{Data: buf.Bytes(), Stats: stats}, nil
}

// docxTextParts lists the XML parts of a DOCX that carry authored text, the
// main body first. Styles, themes and settings are configuration, not text.
func docxTextParts(zr *zip.Reader) []string {
	parts := []string{"word/document.xml"}
	var extra []string
	for _, f := range zr.File {
		name := f.Name
		if !strings.HasPrefix(name, "word/") || !strings.HasSuffix(name, ".xml") {
			continue
		}
		base := strings.TrimPrefix(name, "word/")
		switch {
		case strings.HasPrefix(base, "header"), strings.HasPrefix(base, "footer"):
			extra = append(extra, name)
		case base == "footnotes.xml", base == "endnotes.xml", base == "comments.xml":
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(parts, extra...)
}
