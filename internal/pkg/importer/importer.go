package importer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/stats"
	"github.com/xuri/excelize/v2"
)

// Row is one vocabulary line read from a spreadsheet.
type Row struct {
	Line      int
	English   string
	Arabic    string
	CreatedAt *time.Time
}

type Result struct {
	Rows    []Row
	Skipped int
	Errors  []string
}

type columns struct {
	english, arabic, createdAt int
}

var defaultColumns = columns{english: 0, arabic: 1, createdAt: 2}

// ReadWords reads the first sheet. A header row naming english/arabic/created_at
// selects the columns, otherwise columns A, B and C are used. Bad rows are
// reported in Result.Errors and never abort the import.
func ReadWords(r io.Reader, loc *time.Location) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	result := &Result{Rows: make([]Row, 0, len(rows)), Errors: make([]string, 0)}
	cols := defaultColumns
	for i, row := range rows {
		line := i + 1
		if i == 0 {
			if header, ok := detectHeader(row); ok {
				cols = header
				continue
			}
		}

		english := strings.TrimSpace(cell(row, cols.english))
		arabic := strings.TrimSpace(cell(row, cols.arabic))
		rawCreated := strings.TrimSpace(cell(row, cols.createdAt))

		if english == "" && arabic == "" {
			result.Skipped++
			continue
		}
		if english == "" || arabic == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: english and arabic are both required", line))
			continue
		}

		out := Row{Line: line, English: english, Arabic: arabic}
		if rawCreated != "" {
			t, err := stats.ParseTimestamp(rawCreated, loc)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", line, err))
				continue
			}
			out.CreatedAt = &t
		}
		result.Rows = append(result.Rows, out)
	}

	return result, nil
}

func detectHeader(row []string) (columns, bool) {
	cols := columns{english: -1, arabic: -1, createdAt: -1}
	for i, name := range row {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "english", "word":
			cols.english = i
		case "arabic", "translation":
			cols.arabic = i
		case "created_at", "created at", "date":
			cols.createdAt = i
		}
	}
	if cols.english < 0 || cols.arabic < 0 {
		return defaultColumns, false
	}
	return cols, true
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
