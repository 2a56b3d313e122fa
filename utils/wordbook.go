// utils/wordbook.go
package utils

import (
	"encoding/xml"
	"errors"
	"io"
	"regexp"
	"strings"
)

// WordbookEntry is one importable word parsed from an upload.
type WordbookEntry struct {
	Word        string
	Translation string
	Category    string
}

type wordbookXML struct {
	XMLName xml.Name       `xml:"wordbook"`
	Items   []wordbookItem `xml:"item"`
}

type wordbookItem struct {
	Word  string `xml:"word"`
	Trans string `xml:"trans"`
	Tags  string `xml:"tags"`
}

var (
	// ErrInvalidWordbook rejects files whose root element is wrong or that
	// contain no items at all.
	ErrInvalidWordbook = errors.New("invalid wordbook XML")

	spacesRe       = regexp.MustCompile(`[ \t]+`)
	indentedLineRe = regexp.MustCompile(`\n\s+`)
)

// ParseWordbook reads a <wordbook> XML export. Items missing the word,
// translation or tag are skipped without aborting the rest; skipped returns
// how many were dropped that way.
func ParseWordbook(r io.Reader) (entries []WordbookEntry, skipped int, err error) {
	var doc wordbookXML
	decoder := xml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, 0, ErrInvalidWordbook
	}
	if len(doc.Items) == 0 {
		return nil, 0, ErrInvalidWordbook
	}

	for _, item := range doc.Items {
		word := strings.TrimSpace(item.Word)
		translation := cleanTranslation(item.Trans)
		category := strings.TrimSpace(item.Tags)

		if word == "" || translation == "" || category == "" {
			skipped++
			continue
		}
		entries = append(entries, WordbookEntry{
			Word:        word,
			Translation: translation,
			Category:    category,
		})
	}
	return entries, skipped, nil
}

// cleanTranslation normalizes CDATA content: runs of spaces and tabs
// collapse to one space, indented continuation lines lose their leading
// whitespace, line breaks survive.
func cleanTranslation(s string) string {
	s = strings.TrimSpace(s)
	s = spacesRe.ReplaceAllString(s, " ")
	s = indentedLineRe.ReplaceAllString(s, "\n")
	return s
}
