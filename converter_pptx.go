// Copyright 2026 The ConvertBaminiToUnicodePPTX Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package baminiconv

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Anto-Nobel/ConvertBaminiToUnicodePPTX/internal/ooxml"
)

// PptxConverter rewrites the text runs of PPTX presentations. Slides are
// visited in presentation order, each slide's notes page right after it.
// Layouts, masters and themes hold template text, not authored content, so
// they are left alone.
type PptxConverter struct {
	engine *Converter
}

// NewPptxConverter creates a new PptxConverter.
func NewPptxConverter(c *Converter) *PptxConverter {
	return &PptxConverter{engine: c}
}

func (c *PptxConverter) Accepts(info StreamInfo) bool {
	if info.Extension == ".pptx" {
		return true
	}
	mime := strings.ToLower(info.MIMEType)
	return strings.HasPrefix(mime, "application/vnd.openxmlformats-officedocument.presentationml")
}

func (c *PptxConverter) Convert(reader io.ReadSeeker, info StreamInfo) (*DocumentConverterResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read PPTX: %w", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open PPTX ZIP: %w", err)
	}

	slideOrder, err := c.getSlideOrder(zr)
	if err != nil {
		return nil, fmt.Errorf("get slide order: %w", err)
	}

	var stats ConversionStats
	replaced := make(map[string][]byte)

	for _, slidePath := range slideOrder {
		parts := []string{slidePath}
		if c.engine.convertNotes {
			if notesPath := c.getNotesPath(slidePath, zr); notesPath != "" {
				parts = append(parts, notesPath)
			}
		}
		if err := c.engine.rewriteParts(zr, parts, &stats, replaced); err != nil {
			return nil, err
		}
		stats.Slides++
	}

	if len(replaced) == 0 {
		return &DocumentConverterResult{Data: data, Stats: stats}, nil
	}

	var buf bytes.Buffer
	if err := ooxml.RewriteArchive(&buf, zr, replaced); err != nil {
		return nil, fmt.Errorf("write PPTX: %w", err)
	}
	return &DocumentConverterResult{Data: buf.Bytes(), Stats: stats}, nil
}

// getSlideOrder returns slide file paths in presentation order.
func (c *PptxConverter) getSlideOrder(zr *zip.Reader) ([]string, error) {
	presData, err := ooxml.ReadFileFromZip(zr, "ppt/presentation.xml")
	if err != nil {
		return nil, err
	}

	rels, _ := ooxml.ParseRelationships(zr, "ppt/_rels/presentation.xml.rels")

	decoder := xml.NewDecoder(bytes.NewReader(presData))
	var slideRIDs []string

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := tok.(xml.StartElement); ok {
			if se.Name.Local == "sldId" {
				for _, attr := range se.Attr {
					if attr.Name.Local == "id" && strings.Contains(attr.Name.Space, "relationships") {
						slideRIDs = append(slideRIDs, attr.Value)
					}
				}
			}
		}
	}

	var slidePaths []string
	for _, rid := range slideRIDs {
		if rel, ok := rels[rid]; ok {
			slidePaths = append(slidePaths, ooxml.ResolveTarget("ppt/presentation.xml", rel.Target))
		}
	}

	if len(slidePaths) == 0 {
		for _, f := range zr.File {
			if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
				slidePaths = append(slidePaths, f.Name)
			}
		}
		sort.Strings(slidePaths)
	}

	return slidePaths, nil
}

// getNotesPath returns the notes slide path for a given slide.
func (c *PptxConverter) getNotesPath(slidePath string, zr *zip.Reader) string {
	relsPath := ooxml.RelsPathFor(slidePath)
	rels, err := ooxml.ParseRelationships(zr, relsPath)
	if err != nil {
		return ""
	}

	for _, rel := range rels {
		if strings.Contains(rel.Type, "notesSlide") {
			return ooxml.ResolveTarget(slidePath, rel.Target)
		}
	}
	return ""
}
