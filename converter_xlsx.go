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
	"strings"

	"github.com/xuri/excelize/v2"
)

// XlsxConverter rewrites the string cells of XLSX workbooks. Only shared and
// inline string cells are touched; numbers, dates, booleans and formula
// results pass through so recalculation and number formatting keep working.
// Sheet names are also left alone, since formulas refer to them by name.
type XlsxConverter struct {
	engine *Converter
}

// NewXlsxConverter creates a new XlsxConverter.
func NewXlsxConverter(c *Converter) *XlsxConverter {
	return &XlsxConverter{engine: c}
}

func (c *XlsxConverter) Accepts(info StreamInfo) bool {
	if info.Extension == ".xlsx" {
		return true
	}
	mime := strings.ToLower(info.MIMEType)
	return strings.HasPrefix(mime, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

func (c *XlsxConverter) Convert(reader io.ReadSeeker, info StreamInfo) (*DocumentConverterResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read XLSX: %w", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open XLSX: %w", err)
	}
	defer f.Close()

	var stats ConversionStats
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		stats.Sheets++

		for ri, row := range rows {
			for ci, val := range row {
				if val == "" {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(ci+1, ri+1)
				if err != nil {
					continue
				}
				ctype, err := f.GetCellType(sheet, cell)
				if err != nil {
					continue
				}
				if ctype != excelize.CellTypeSharedString && ctype != excelize.CellTypeInlineString {
					continue
				}
				stats.Runs++
				changed, err := c.convertCell(f, sheet, cell)
				if err != nil {
					return nil, fmt.Errorf("%s!%s: %w", sheet, cell, err)
				}
				if changed {
					stats.Converted++
				}
			}
		}
	}

	if stats.Converted == 0 {
		return &DocumentConverterResult{Data: data, Stats: stats}, nil
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write XLSX: %w", err)
	}
	return &DocumentConverterResult{Data: buf.Bytes(), Stats: stats}, nil
}

// convertCell rewrites one string cell, keeping per-run formatting when the
// cell holds rich text.
func (c *XlsxConverter) convertCell(f *excelize.File, sheet, cell string) (bool, error) {
	rt, err := f.GetCellRichText(sheet, cell)
	if err == nil && len(rt) > 1 {
		changed := false
		for i := range rt {
			conv := c.engine.transformText(rt[i].Text)
			if conv != rt[i].Text {
				rt[i].Text = conv
				changed = true
			}
		}
		if changed {
			if err := f.SetCellRichText(sheet, cell, rt); err != nil {
				return false, err
			}
		}
		return changed, nil
	}

	val, err := f.GetCellValue(sheet, cell)
	if err != nil || val == "" {
		return false, nil
	}
	conv := c.engine.transformText(val)
	if conv == val {
		return false, nil
	}
	if err := f.SetCellStr(sheet, cell, conv); err != nil {
		return false, err
	}
	return true, nil
}
