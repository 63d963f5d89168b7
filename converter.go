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

import "io"

// StreamInfo holds metadata about the input being converted.
type StreamInfo struct {
	MIMEType  string
	Extension string
	Charset   string
	Filename  string
	LocalPath string
}

// ConversionStats counts what a conversion touched.
type ConversionStats struct {
	// Slides is the number of presentation slides processed. Runs found on
	// a slide's notes page count toward Runs, not here.
	Slides int
	// Sheets is the number of worksheets processed.
	Sheets int
	// Runs is the number of text elements examined.
	Runs int
	// Converted is the number of text elements that actually changed.
	Converted int
}

// Add accumulates counters from another conversion.
func (s *ConversionStats) Add(o ConversionStats) {
	s.Slides += o.Slides
	s.Sheets += o.Sheets
	s.Runs += o.Runs
	s.Converted += o.Converted
}

// DocumentConverterResult holds the rewritten document and its counters.
type DocumentConverterResult struct {
	Data  []byte
	Stats ConversionStats
}

// DocumentConverter is the interface all format converters implement.
type DocumentConverter interface {
	// Accepts reports whether this converter can handle the given input.
	Accepts(info StreamInfo) bool

	// Convert rewrites the document's text in place, preserving every
	// other byte of the format it can.
	Convert(reader io.ReadSeeker, info StreamInfo) (*DocumentConverterResult, error)
}
