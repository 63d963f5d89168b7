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

package ooxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// textRunSpaces lists the namespaces whose <t> element carries document
// text. OMML <m:t> is deliberately absent: math runs are operator soup where
// rewriting would destroy formulas.
var textRunSpaces = map[string]bool{
	NSDrawingML:              true,
	NSDrawingMLStrict:        true,
	NSWordprocessingML:       true,
	NSWordprocessingMLStrict: true,
}

// RewriteTextRuns applies transform to the character data of every text run
// (DrawingML <a:t>, WordprocessingML <w:t>) in an XML part and returns the
// rewritten part. Everything outside the changed runs keeps its original
// bytes: attribute order, namespace prefixes, whitespace and self-closing
// forms all survive, because the new text is spliced into the source rather
// than re-serialized. It reports the number of runs visited and the number
// whose text actually changed.
func RewriteTextRuns(part []byte, transform func(string) string) (out []byte, runs, changed int, err error) {
	// Offsets recorded below index into the exact bytes the decoder scans,
	// so any transcoding has to happen up front. A CharsetReader would
	// leave InputOffset pointing into a stream we no longer have.
	src, err := ensureUTF8(part)
	if err != nil {
		return nil, 0, 0, err
	}

	type span struct {
		start, end int64
		text       string
	}

	dec := xml.NewDecoder(bytes.NewReader(src))
	var spans []span
	var cur *span
	var text strings.Builder

	for {
		pos := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, 0, fmt.Errorf("parse part: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if cur != nil {
				// Child markup inside a text run is not valid OOXML.
				// Leave the whole run untouched rather than guess.
				cur = nil
				continue
			}
			if t.Name.Local == "t" && textRunSpaces[t.Name.Space] {
				runs++
				text.Reset()
				cur = &span{start: dec.InputOffset()}
			}
		case xml.EndElement:
			if cur != nil {
				cur.end = pos
				cur.text = text.String()
				spans = append(spans, *cur)
				cur = nil
			}
		case xml.CharData:
			if cur != nil {
				text.Write(t)
			}
		case xml.Comment, xml.ProcInst, xml.Directive:
			// Splicing would erase these; skip any run that contains one.
			cur = nil
		}
	}

	var buf bytes.Buffer
	last := 0
	for _, sp := range spans {
		if sp.text == "" {
			continue
		}
		converted := transform(sp.text)
		if converted == sp.text {
			continue
		}
		if changed == 0 {
			buf.Grow(len(src) + len(src)/4)
		}
		changed++
		buf.Write(src[last:sp.start])
		if err := xml.EscapeText(&buf, []byte(converted)); err != nil {
			return nil, 0, 0, err
		}
		last = int(sp.end)
	}
	if changed == 0 {
		return part, runs, 0, nil
	}
	buf.Write(src[last:])
	return buf.Bytes(), runs, changed, nil
}

var xmlEncodingRE = regexp.MustCompile(`(?i)(<\?xml[^>]*\bencoding=["'])([^"']+)(["'])`)

// ensureUTF8 transcodes an XML part to UTF-8 when a byte order mark or the
// XML declaration says it is something else, patching the declaration's
// encoding label to match. Parts already in UTF-8 come back unchanged.
func ensureUTF8(part []byte) ([]byte, error) {
	var dec *encoding.Decoder
	if len(part) >= 2 {
		switch {
		case part[0] == 0xFE && part[1] == 0xFF, part[0] == 0xFF && part[1] == 0xFE:
			dec = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		case part[0] == '<' && part[1] == 0x00:
			dec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		case part[0] == 0x00 && part[1] == '<':
			dec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		}
	}
	if dec != nil {
		out, err := dec.Bytes(part)
		if err != nil {
			return nil, fmt.Errorf("transcode utf-16 part: %w", err)
		}
		return patchEncodingLabel(out), nil
	}

	m := xmlEncodingRE.FindSubmatch(part)
	if m == nil {
		return part, nil
	}
	label := strings.ToLower(string(m[2]))
	if label == "utf-8" || label == "utf8" {
		return part, nil
	}
	r, err := charset.NewReaderLabel(label, bytes.NewReader(part))
	if err != nil {
		// Unknown label; let the decoder try the bytes as they are.
		return part, nil
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("transcode %s part: %w", label, err)
	}
	return patchEncodingLabel(out), nil
}

func patchEncodingLabel(part []byte) []byte {
	return xmlEncodingRE.ReplaceAll(part, []byte("${1}UTF-8${3}"))
}

// RewriteArchive writes a copy of the archive to w with the named entries
// replaced. Untouched entries are copied raw, compressed bytes included, so
// images, embedded fonts and media never go through a recompression cycle.
func RewriteArchive(w io.Writer, zr *zip.Reader, replaced map[string][]byte) error {
	zw := zip.NewWriter(w)
	for _, f := range zr.File {
		data, ok := replaced[f.Name]
		if !ok {
			if err := zw.Copy(f); err != nil {
				return fmt.Errorf("copy %s: %w", f.Name, err)
			}
			continue
		}
		hdr := f.FileHeader
		hdr.CRC32 = 0
		hdr.CompressedSize = 0
		hdr.CompressedSize64 = 0
		hdr.UncompressedSize = 0
		hdr.UncompressedSize64 = 0
		fw, err := zw.CreateHeader(&hdr)
		if err != nil {
			return fmt.Errorf("rewrite %s: %w", f.Name, err)
		}
		if _, err := fw.Write(data); err != nil {
			return fmt.Errorf("rewrite %s: %w", f.Name, err)
		}
	}
	return zw.Close()
}
