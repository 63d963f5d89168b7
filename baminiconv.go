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

// Package baminiconv rewrites documents typed in the legacy Bamini Tamil
// font encoding into Unicode Tamil, keeping everything else about the
// document intact: layout, styling, images, media and untouched text survive
// byte for byte where the format allows it.
//
// The conversion itself lives in the bamini subpackage; this package routes
// a document to the right format converter, runs every text element through
// the substitution table and writes the result back in the same format.
package baminiconv

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/Anto-Nobel/ConvertBaminiToUnicodePPTX/bamini"
	"github.com/Anto-Nobel/ConvertBaminiToUnicodePPTX/internal/ooxml"
)

const (
	// PrioritySpecific is for format-specific converters (PPTX, DOCX, etc.).
	PrioritySpecific = 0.0
	// PriorityGeneric is for fallback converters (HTML, ZIP, PlainText).
	PriorityGeneric = 10.0
)

type registeredConverter struct {
	converter DocumentConverter
	priority  float64
	name      string
}

// Converter is the document conversion engine. It dispatches an input to the
// first registered format converter that accepts it.
type Converter struct {
	converters    []registeredConverter
	table         *bamini.Table
	extraMappings []bamini.Entry
	convertNotes  bool
	normalize     bool
}

// New creates a new Converter with the given options.
func New(opts ...Option) *Converter {
	c := &Converter{
		convertNotes: true,
		normalize:    true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if len(c.extraMappings) == 0 {
		c.table = bamini.Default
	} else {
		c.table = bamini.NewTable(c.extraMappings...)
	}
	c.enableBuiltins()
	return c
}

// RegisterConverter adds a custom converter with the given priority.
// Lower priority values are tried first.
func (c *Converter) RegisterConverter(name string, conv DocumentConverter, priority float64) {
	c.converters = append(c.converters, registeredConverter{
		converter: conv,
		priority:  priority,
		name:      name,
	})
	sort.SliceStable(c.converters, func(i, j int) bool {
		return c.converters[i].priority < c.converters[j].priority
	})
}

// ConvertFile converts inputPath and writes the result to outputPath. The
// output lands through a temp file in the destination directory followed by a
// rename, so an interrupted run never leaves a truncated document; the input
// file is never modified.
func (c *Converter) ConvertFile(inputPath, outputPath string) (*DocumentConverterResult, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, &NotFoundError{Path: inputPath, Err: err}
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(inputPath))
	info := StreamInfo{
		Extension: ext,
		Filename:  filepath.Base(inputPath),
		LocalPath: inputPath,
	}

	info.MIMEType = detectMIMEType(f, ext)

	// Reset after MIME detection
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek: %w", err)
	}

	result, err := c.convert(f, info)
	if err != nil {
		return nil, err
	}

	if err := writeFileAtomic(outputPath, result.Data); err != nil {
		return nil, &WriteError{Path: outputPath, Err: err}
	}
	return result, nil
}

// ConvertReader converts a stream using the provided StreamInfo and returns
// the rewritten document without writing it anywhere.
func (c *Converter) ConvertReader(r io.ReadSeeker, info StreamInfo) (*DocumentConverterResult, error) {
	return c.convert(r, info)
}

// convert is the internal dispatch method.
func (c *Converter) convert(r io.ReadSeeker, info StreamInfo) (*DocumentConverterResult, error) {
	var failedAttempts []FailedConversionAttempt

	for _, rc := range c.converters {
		if !rc.converter.Accepts(info) {
			continue
		}

		// Reset reader position before conversion
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("seek: %w", err)
		}

		result, err := rc.converter.Convert(r, info)
		if err != nil {
			failedAttempts = append(failedAttempts, FailedConversionAttempt{
				Converter: rc.name,
				Err:       err,
			})
			continue
		}
		return result, nil
	}

	if len(failedAttempts) > 0 {
		return nil, &ConversionError{Attempts: failedAttempts}
	}

	return nil, &UnsupportedFormatError{
		Extension: info.Extension,
		MIMEType:  info.MIMEType,
	}
}

// rewriteParts runs the text pipeline over the named XML parts of an
// archive, staging changed parts into replaced and accumulating counters
// into stats.
func (c *Converter) rewriteParts(zr *zip.Reader, names []string, stats *ConversionStats, replaced map[string][]byte) error {
	for _, name := range names {
		partData, err := ooxml.ReadFileFromZip(zr, name)
		if err != nil {
			return err
		}
		out, runs, changed, err := ooxml.RewriteTextRuns(partData, c.transformText)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		stats.Runs += runs
		stats.Converted += changed
		if changed > 0 {
			replaced[name] = out
		}
	}
	return nil
}

// enableBuiltins registers all built-in converters.
func (c *Converter) enableBuiltins() {
	// Specific format converters (priority 0.0 - tried first)
	c.RegisterConverter("pptx", NewPptxConverter(c), PrioritySpecific)
	c.RegisterConverter("docx", NewDocxConverter(c), PrioritySpecific)
	c.RegisterConverter("xlsx", NewXlsxConverter(c), PrioritySpecific)
	c.RegisterConverter("csv", NewCsvConverter(c), PrioritySpecific)
	c.RegisterConverter("epub", NewEpubConverter(c), PrioritySpecific)

	// Generic format converters (priority 10.0 - tried last as fallbacks)
	c.RegisterConverter("html", NewHTMLConverter(c), PriorityGeneric)
	c.RegisterConverter("zip", NewZipConverter(c), PriorityGeneric)
	c.RegisterConverter("plaintext", NewPlainTextConverter(c), PriorityGeneric)
}

// writeFileAtomic writes data to path via a temp file in the same directory
// and a rename.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".baminiconv-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmpName)
		if werr != nil {
			return werr
		}
		return cerr
	}
	// CreateTemp opens 0600; converted documents should be plain files.
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// detectMIMEType detects the MIME type from content and extension.
func detectMIMEType(r io.ReadSeeker, ext string) string {
	// Try content-based detection first
	mtype, err := mimetype.DetectReader(r)
	if err == nil && mtype.String() != "application/octet-stream" {
		return mtype.String()
	}

	// Fall back to extension-based detection
	return mimeFromExtension(ext)
}

// mimeFromExtension returns a MIME type for common extensions.
func mimeFromExtension(ext string) string {
	extMap := map[string]string{
		".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
		".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		".html": "text/html",
		".htm":  "text/html",
		".csv":  "text/csv",
		".txt":  "text/plain",
		".text": "text/plain",
		".xml":  "text/xml",
		".epub": "application/epub+zip",
		".zip":  "application/zip",
	}
	if m, ok := extMap[ext]; ok {
		return m
	}
	return "application/octet-stream"
}
