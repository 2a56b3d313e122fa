// utils/spreadsheet.go
package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseSpreadsheet reads word/translation/category rows from an .xlsx or
// .csv upload (columns A-C, header row skipped when it looks like one).
// Rows without a word or translation are skipped.
func ParseSpreadsheet(r io.Reader, filename string) (entries []WordbookEntry, skipped int, err error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return parseExcel(r)
	case ".csv":
		return parseCSV(r)
	default:
		return nil, 0, fmt.Errorf("unsupported spreadsheet type %q", ext)
	}
}

func parseExcel(r io.Reader) (entries []WordbookEntry, skipped int, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	for i, row := range rows {
		if i == 0 && looksLikeHeader(row) {
			continue
		}
		entry, ok := rowToEntry(row)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, entry)
	}
	return entries, skipped, nil
}

func parseCSV(r io.Reader) (entries []WordbookEntry, skipped int, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read CSV: %w", err)
		}
		if first {
			first = false
			if looksLikeHeader(row) {
				continue
			}
		}
		entry, ok := rowToEntry(row)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, entry)
	}
	return entries, skipped, nil
}

func rowToEntry(row []string) (WordbookEntry, bool) {
	get := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	entry := WordbookEntry{
		Word:        get(0),
		Translation: get(1),
		Category:    get(2),
	}
	if entry.Category == "" {
		entry.Category = "Imported"
	}
	if entry.Word == "" || entry.Translation == "" {
		return WordbookEntry{}, false
	}
	return entry, true
}

func looksLikeHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(row[0]))
	return first == "word" || first == "english" || first == "term"
}
