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
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Anto-Nobel/ConvertBaminiToUnicodePPTX/internal/ooxml"
)

// ZipConverter handles ZIP archives by recursively converting each entry it
// recognizes and rebuilding the archive around the results. Entries of
// unsupported formats are copied through unchanged.
type ZipConverter struct {
	engine *Converter
}

// NewZipConverter creates a new ZipConverter.
func NewZipConverter(c *Converter) *ZipConverter {
	return &ZipConverter{engine: c}
}

func (c *ZipConverter) Accepts(info StreamInfo) bool {
	if info.Extension == ".zip" {
		return true
	}
	return strings.HasPrefix(strings.ToLower(info.MIMEType), "application/zip")
}

func (c *ZipConverter) Convert(reader io.ReadSeeker, info StreamInfo) (*DocumentConverterResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read ZIP: %w", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open ZIP: %w", err)
	}

	var stats ConversionStats
	replaced := make(map[string][]byte)

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			continue
		}
		fileData, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			continue
		}

		ext := strings.ToLower(filepath.Ext(f.Name))
		fileInfo := StreamInfo{
			Extension: ext,
			Filename:  filepath.Base(f.Name),
		}
		fileReader := bytes.NewReader(fileData)
		fileInfo.MIMEType = detectMIMEType(fileReader, ext)
		fileReader.Seek(0, io.SeekStart)

		result, err := c.engine.ConvertReader(fileReader, fileInfo)
		if err != nil {
			// Entries that cannot be converted keep their original bytes.
			continue
		}

		stats.Add(result.Stats)
		if result.Stats.Converted > 0 {
			replaced[f.Name] = result.Data
		}
	}

	if len(replaced) == 0 {
		return &DocumentConverterResult{Data: data, Stats: stats}, nil
	}
	var buf bytes.Buffer
	if err := ooxml.RewriteArchive(&buf, zr, replaced); err != nil {
		return nil, fmt.Errorf("write ZIP: %w", err)
	}
	return &DocumentConverterResult{Data: buf.Bytes(), Stats: stats}, nil
}
