package baminiconv

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// PlainTextConverter rewrites .txt files line by line. It only claims inputs
// that are clearly plain text; Bamini substitution has no way to tell markup
// from prose, so structured text formats must not fall through to it.
type PlainTextConverter struct {
	engine *Converter
}

// NewPlainTextConverter creates a new PlainTextConverter.
func NewPlainTextConverter(c *Converter) *PlainTextConverter {
	return &PlainTextConverter{engine: c}
}

func (c *PlainTextConverter) Accepts(info StreamInfo) bool {
	switch info.Extension {
	case ".txt", ".text":
		return true
	}
	if info.Extension != "" {
		return false
	}
	return strings.HasPrefix(strings.ToLower(info.MIMEType), "text/plain")
}

func (c *PlainTextConverter) Convert(reader io.ReadSeeker, info StreamInfo) (*DocumentConverterResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var text string

	// If charset is provided, use it
	if info.Charset != "" {
		enc := lookupEncoding(info.Charset)
		if enc != nil {
			decoded, err := enc.NewDecoder().Bytes(data)
			if err == nil {
				text = string(decoded)
			}
		}
	}

	// If no charset or decoding failed, try detection
	if text == "" {
		text = decodeWithDetection(data)
	}

	var stats ConversionStats
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		stats.Runs++
		conv := c.engine.transformText(line)
		if conv != line {
			lines[i] = conv
			stats.Converted++
		}
	}

	return &DocumentConverterResult{
		Data:  []byte(strings.Join(lines, "\n")),
		Stats: stats,
	}, nil
}

// decodeWithDetection decodes data to UTF-8, sniffing the charset when the
// bytes are not already valid UTF-8. Legacy Bamini text files are usually
// ASCII or a Windows codepage.
func decodeWithDetection(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err == nil && result != nil {
		if enc := lookupEncoding(result.Charset); enc != nil {
			decoded, err := enc.NewDecoder().Bytes(data)
			if err == nil {
				return string(decoded)
			}
		}
	}

	// Fallback: treat as UTF-8
	return string(data)
}

// lookupEncoding maps charset names to Go encoding implementations.
func lookupEncoding(charset string) encoding.Encoding {
	switch strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(charset, "-", ""), "_", "")) {
	case "utf8", "utf8bom":
		return unicode.UTF8
	case "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "iso88591", "latin1":
		return charmap.ISO8859_1
	case "iso88592":
		return charmap.ISO8859_2
	case "iso88595":
		return charmap.ISO8859_5
	case "iso88596":
		return charmap.ISO8859_6
	case "iso88597":
		return charmap.ISO8859_7
	case "iso88598":
		return charmap.ISO8859_8
	case "iso88599":
		return charmap.ISO8859_9
	case "iso885915":
		return charmap.ISO8859_15
	case "windows1250", "cp1250":
		return charmap.Windows1250
	case "windows1251", "cp1251":
		return charmap.Windows1251
	case "windows1252", "cp1252":
		return charmap.Windows1252
	case "windows1253", "cp1253":
		return charmap.Windows1253
	case "windows1254", "cp1254":
		return charmap.Windows1254
	case "windows1255", "cp1255":
		return charmap.Windows1255
	case "windows1256", "cp1256":
		return charmap.Windows1256
	case "koi8r":
		return charmap.KOI8R
	case "shiftjis", "shiftjis2004", "sjis", "cp932", "windows31j":
		return japanese.ShiftJIS
	case "eucjp":
		return japanese.EUCJP
	case "iso2022jp":
		return japanese.ISO2022JP
	case "euckr", "cp949":
		return korean.EUCKR
	case "gb2312", "gbk", "cp936", "gb18030":
		return simplifiedchinese.GBK
	case "big5", "cp950":
		return traditionalchinese.Big5
	case "ascii", "usascii":
		// ASCII is a subset of UTF-8
		return unicode.UTF8
	}
	return nil
}
