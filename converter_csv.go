package baminiconv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CsvConverter rewrites the fields of CSV files in place. Only fields whose
// text changes are re-encoded; delimiters, line endings, the quoting of
// untouched fields and every other byte survive as written.
type CsvConverter struct {
	engine *Converter
}

// NewCsvConverter creates a new CsvConverter.
func NewCsvConverter(c *Converter) *CsvConverter {
	return &CsvConverter{engine: c}
}

func (c *CsvConverter) Accepts(info StreamInfo) bool {
	if info.Extension == ".csv" {
		return true
	}
	mime := strings.ToLower(info.MIMEType)
	return strings.HasPrefix(mime, "text/csv") || strings.HasPrefix(mime, "application/csv")
}

func (c *CsvConverter) Convert(reader io.ReadSeeker, info StreamInfo) (*DocumentConverterResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	// Decode to UTF-8 using charset hint or detection
	var text string
	if info.Charset != "" {
		enc := lookupEncoding(info.Charset)
		if enc != nil {
			decoded, err := enc.NewDecoder().Bytes(data)
			if err == nil {
				text = string(decoded)
			}
		}
	}
	if text == "" {
		text = decodeWithDetection(data)
	}

	out, stats, err := rewriteCSV(text, c.engine.transformText)
	if err != nil {
		return nil, fmt.Errorf("parse CSV: %w", err)
	}
	if stats.Converted == 0 {
		return &DocumentConverterResult{Data: data, Stats: stats}, nil
	}
	return &DocumentConverterResult{Data: []byte(out), Stats: stats}, nil
}

// rewriteCSV applies transform to every field of a CSV document and splices
// the converted fields back into the original text, the way the XML and HTML
// rewriters do. A changed field keeps its quoted form when it had one, and
// gains quotes when the converted text needs them.
func rewriteCSV(text string, transform func(string) string) (string, ConversionStats, error) {
	var stats ConversionStats

	// Physical line starts, for resolving FieldPos to byte offsets.
	lineStarts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1 // allow variable fields

	var b strings.Builder
	last := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", ConversionStats{}, err
		}
		for i, field := range record {
			if field == "" {
				continue
			}
			stats.Runs++
			conv := transform(field)
			if conv == field {
				continue
			}
			stats.Converted++

			line, col := r.FieldPos(i)
			start := lineStarts[line-1] + col - 1
			end := csvFieldEnd(text, start)
			b.WriteString(text[last:start])
			writeCSVField(&b, conv, text[start] == '"')
			last = end
		}
	}
	if stats.Converted == 0 {
		return text, stats, nil
	}
	b.WriteString(text[last:])
	return b.String(), stats, nil
}

// csvFieldEnd returns the offset just past the encoded field starting at
// start: past the closing quote of a quoted field, or at the next comma or
// line break of a bare one.
func csvFieldEnd(text string, start int) int {
	if text[start] == '"' {
		i := start + 1
		for i < len(text) {
			j := strings.IndexByte(text[i:], '"')
			if j < 0 {
				break
			}
			i += j + 1
			if i < len(text) && text[i] == '"' {
				i++ // escaped quote
				continue
			}
			return i
		}
		return len(text)
	}
	i := start
	for i < len(text) {
		switch text[i] {
		case ',', '\n':
			return i
		case '\r':
			// Part of a terminator only before \n or EOF; a lone \r
			// mid-field is field data.
			if i+1 == len(text) || text[i+1] == '\n' {
				return i
			}
		}
		i++
	}
	return i
}

func writeCSVField(b *strings.Builder, field string, wasQuoted bool) {
	if !wasQuoted && !strings.ContainsAny(field, "\",\r\n") {
		b.WriteString(field)
		return
	}
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(field, `"`, `""`))
	b.WriteByte('"')
}
