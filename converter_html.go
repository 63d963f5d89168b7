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
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// HTMLConverter rewrites the text nodes of HTML documents. Markup passes
// through byte for byte: the document is tokenized, not parsed into a tree,
// so no missing tags are synthesized and attribute quoting is untouched.
// Script and style contents are never rewritten.
type HTMLConverter struct {
	engine *Converter
}

// NewHTMLConverter creates a new HTMLConverter.
func NewHTMLConverter(c *Converter) *HTMLConverter {
	return &HTMLConverter{engine: c}
}

func (c *HTMLConverter) Accepts(info StreamInfo) bool {
	switch info.Extension {
	case ".html", ".htm":
		return true
	}
	mime := strings.ToLower(info.MIMEType)
	return strings.HasPrefix(mime, "text/html") || strings.HasPrefix(mime, "application/xhtml")
}

func (c *HTMLConverter) Convert(reader io.ReadSeeker, info StreamInfo) (*DocumentConverterResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	contentType := info.MIMEType
	if info.Charset != "" {
		contentType += "; charset=" + info.Charset
	}
	decoded, err := decodeHTMLCharset(data, contentType)
	if err != nil {
		return nil, fmt.Errorf("decode HTML: %w", err)
	}

	out, runs, changed, err := rewriteHTML(decoded, c.engine.transformText)
	if err != nil {
		return nil, err
	}

	stats := ConversionStats{Runs: runs, Converted: changed}
	if changed == 0 {
		return &DocumentConverterResult{Data: data, Stats: stats}, nil
	}
	if !bytes.Equal(decoded, data) {
		// The output is UTF-8 now; stop the old label from lying about it.
		out = patchMetaCharset(out)
	}
	return &DocumentConverterResult{Data: out, Stats: stats}, nil
}

// decodeHTMLCharset transcodes an HTML document to UTF-8, honoring the
// content-type hint, a byte order mark, or a meta tag, in that order.
func decodeHTMLCharset(data []byte, contentType string) ([]byte, error) {
	r, err := charset.NewReader(bytes.NewReader(data), contentType)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

var reMetaCharset = regexp.MustCompile(`(?i)(<meta[^>]+charset\s*=\s*["']?)([A-Za-z0-9_.:+-]+)`)

func patchMetaCharset(doc []byte) []byte {
	return reMetaCharset.ReplaceAll(doc, []byte("${1}utf-8"))
}

// rawTextTags lists elements whose contents are code, not prose.
var rawTextTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
}

// rewriteHTML applies transform to every text node of an HTML document and
// returns the rewritten bytes. Tokens other than changed text are emitted
// exactly as they appeared in the input. It reports the number of non-blank
// text nodes visited and the number that changed.
func rewriteHTML(src []byte, transform func(string) string) (out []byte, runs, changed int, err error) {
	z := html.NewTokenizer(bytes.NewReader(src))
	var buf bytes.Buffer
	buf.Grow(len(src) + len(src)/4)
	var skip string // open raw-text element, if any

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() == io.EOF {
				break
			}
			return nil, 0, 0, fmt.Errorf("parse HTML: %w", z.Err())
		}
		// Text and TagName mutate the tokenizer's buffer in place, so the
		// raw bytes have to be copied out first.
		raw := append([]byte(nil), z.Raw()...)

		switch tt {
		case html.TextToken:
			if skip != "" {
				buf.Write(raw)
				continue
			}
			text := string(z.Text())
			if strings.TrimSpace(text) == "" {
				buf.Write(raw)
				continue
			}
			runs++
			conv := transform(text)
			if conv == text {
				buf.Write(raw)
				continue
			}
			changed++
			buf.WriteString(html.EscapeString(conv))
		case html.StartTagToken:
			name, _ := z.TagName()
			if rawTextTags[string(name)] {
				skip = string(name)
			}
			buf.Write(raw)
		case html.EndTagToken:
			name, _ := z.TagName()
			if skip == string(name) {
				skip = ""
			}
			buf.Write(raw)
		default:
			buf.Write(raw)
		}
	}
	return buf.Bytes(), runs, changed, nil
}
