package linkcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a link CSV from r.
//
// The first record is the header. A row is legitimate when its is_legit field
// equals "true" ignoring case and surrounding spaces; any other value means
// phishing. A header without data rows yields an empty, non-nil slice.
func Parse(r io.Reader) ([]Link, error) {
	reader := csv.NewReader(r)
	// 行的字段数允许与表头不同，缺列的行在下面单独报错
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("linkcsv: read header: %w", err)
	}

	linkCol, legitCol := -1, -1
	for i, name := range header {
		// 去掉 UTF-8 BOM（Excel 导出的 CSV 常带）
		name = strings.TrimPrefix(name, "\ufeff")
		switch strings.TrimSpace(name) {
		case ColumnLink:
			linkCol = i
		case ColumnIsLegit:
			legitCol = i
		}
	}
	if linkCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnLink)
	}
	if legitCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnIsLegit)
	}

	links := make([]Link, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("linkcsv: read row: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if linkCol >= len(record) || legitCol >= len(record) {
			return nil, fmt.Errorf("linkcsv: line %d: expected at least %d fields, got %d",
				line, max(linkCol, legitCol)+1, len(record))
		}

		links = append(links, Link{
			Text:    record[linkCol],
			IsLegit: strings.EqualFold(strings.TrimSpace(record[legitCol]), "true"),
		})
	}

	return links, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]Link, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open link file %s: %w", path, err)
	}
	defer file.Close()

	links, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse link file %s: %w", path, err)
	}
	return links, nil
}

// Require returns ErrNoLinks when links is empty.
// The falling-links level cannot spawn anything from an empty list.
func Require(links []Link) error {
	if len(links) == 0 {
		return ErrNoLinks
	}
	return nil
}
