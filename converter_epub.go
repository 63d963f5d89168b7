package baminiconv

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/Anto-Nobel/ConvertBaminiToUnicodePPTX/internal/ooxml"
)

// EpubConverter rewrites the content documents of EPUB books in place. The
// container structure, OPF package, images and styles pass through untouched.
type EpubConverter struct {
	engine *Converter
}

// NewEpubConverter creates a new EpubConverter.
func NewEpubConverter(c *Converter) *EpubConverter {
	return &EpubConverter{engine: c}
}

func (c *EpubConverter) Accepts(info StreamInfo) bool {
	if info.Extension == ".epub" {
		return true
	}
	mime := strings.ToLower(info.MIMEType)
	return strings.HasPrefix(mime, "application/epub") ||
		strings.HasPrefix(mime, "application/x-epub+zip")
}

func (c *EpubConverter) Convert(reader io.ReadSeeker, info StreamInfo) (*DocumentConverterResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read EPUB: %w", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open EPUB ZIP: %w", err)
	}

	var stats ConversionStats
	replaced := make(map[string][]byte)
	for _, name := range c.contentDocuments(zr) {
		part, err := ooxml.ReadFileFromZip(zr, name)
		if err != nil {
			continue
		}
		out, runs, changed, err := rewriteHTML(part, c.engine.transformText)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		stats.Runs += runs
		stats.Converted += changed
		if changed > 0 {
			replaced[name] = out
		}
	}

	if len(replaced) == 0 {
		return &DocumentConverterResult{Data: data, Stats: stats}, nil
	}
	var buf bytes.Buffer
	if err := ooxml.RewriteArchive(&buf, zr, replaced); err != nil {
		return nil, fmt.Errorf("write EPUB ZIP: %w", err)
	}
	return &DocumentConverterResult{Data: buf.Bytes(), Stats: stats}, nil
}

// contentDocuments returns the archive paths of the book's XHTML content,
// preferring the OPF manifest and falling back to an extension scan when the
// package metadata is missing or malformed.
func (c *EpubConverter) contentDocuments(zr *zip.Reader) []string {
	if opfPath, err := c.findOPFPath(zr); err == nil {
		if docs := c.manifestDocuments(zr, opfPath); len(docs) > 0 {
			return docs
		}
	}

	var docs []string
	for _, f := range zr.File {
		switch strings.ToLower(path.Ext(f.Name)) {
		case ".xhtml", ".html", ".htm":
			docs = append(docs, f.Name)
		}
	}
	sort.Strings(docs)
	return docs
}

// findOPFPath finds the OPF file path from META-INF/container.xml.
func (c *EpubConverter) findOPFPath(zr *zip.Reader) (string, error) {
	data, err := ooxml.ReadFileFromZip(zr, "META-INF/container.xml")
	if err != nil {
		return "", err
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := tok.(xml.StartElement); ok {
			if se.Name.Local == "rootfile" {
				for _, attr := range se.Attr {
					if attr.Name.Local == "full-path" {
						return attr.Value, nil
					}
				}
			}
		}
	}

	return "", fmt.Errorf("rootfile not found in container.xml")
}

// manifestDocuments parses the OPF manifest and resolves the hrefs of its
// HTML items against the OPF's directory.
func (c *EpubConverter) manifestDocuments(zr *zip.Reader, opfPath string) []string {
	data, err := ooxml.ReadFileFromZip(zr, opfPath)
	if err != nil {
		return nil
	}

	opfDir := path.Dir(opfPath)
	var docs []string

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "item" {
			continue
		}
		var href, mediaType string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "href":
				href = attr.Value
			case "media-type":
				mediaType = attr.Value
			}
		}
		ext := strings.ToLower(path.Ext(href))
		isHTML := ext == ".html" || ext == ".htm" || ext == ".xhtml" ||
			strings.Contains(mediaType, "html")
		if href == "" || !isHTML {
			continue
		}
		if opfDir != "." && !strings.HasPrefix(href, "/") {
			href = path.Join(opfDir, href)
		}
		docs = append(docs, href)
	}

	return docs
}
