// Package tidyio reads tidy (document, term, count) tables and document
// attribute files for the textnet command.
//
// A count table has a header row naming at least a document column, a term
// column and a count column. Accepted header spellings (case-insensitive):
//
//	document: doc, document, document_id, label
//	term:     term, word, token, lemma
//	count:    n, count, freq, frequency
//
// Other columns are ignored. Blank rows are skipped.
package tidyio

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/textnet/tfidf"
)

var (
	ErrMissingColumn     = errors.New("tidyio: missing column")
	ErrBadCount          = errors.New("tidyio: bad count")
	ErrUnsupportedFormat = errors.New("tidyio: unsupported format")
	ErrNoSheet           = errors.New("tidyio: no such sheet")
	ErrNonScalarAttr     = errors.New("tidyio: attribute value is not a scalar")
)

var (
	docHeaders   = []string{"doc", "document", "document_id", "label"}
	termHeaders  = []string{"term", "word", "token", "lemma"}
	countHeaders = []string{"n", "count", "freq", "frequency"}
)

// ReadCounts dispatches on the file extension: .csv, .tsv/.tab or .xlsx.
// Spreadsheets are read from their first sheet.
func ReadCounts(path string) ([]tfidf.Count, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readDelimited(path, ',')
	case ".tsv", ".tab":
		return readDelimited(path, '\t')
	case ".xlsx":
		return ReadXLSX(path, "")
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
}

func readDelimited(path string, comma rune) ([]tfidf.Count, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "error opening count table")
	}
	defer f.Close()

	return ReadCSV(f, comma)
}

// ReadCSV parses a delimited count table.
func ReadCSV(r io.Reader, comma rune) ([]tfidf.Count, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "error reading delimited table")
	}

	return parseRecords(records)
}

// ReadXLSX parses a count table from the named sheet, or from the first sheet
// when sheet is empty.
func ReadXLSX(path, sheet string) ([]tfidf.Count, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error opening Excel file")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheet == "" {
		if len(sheets) == 0 {
			return nil, errors.Wrapf(ErrNoSheet, "%s", path)
		}
		sheet = sheets[0]
	}
	found := false
	for _, s := range sheets {
		if s == sheet {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.Wrapf(ErrNoSheet, "%s: %q", path, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading sheet %s", sheet)
	}

	return parseRecords(rows)
}

// parseRecords turns a header row plus data rows into counts, in row order.
func parseRecords(records [][]string) ([]tfidf.Count, error) {
	if len(records) == 0 {
		return nil, errors.Wrap(ErrMissingColumn, "empty table")
	}
	header := records[0]
	docCol, err := column(header, docHeaders)
	if err != nil {
		return nil, err
	}
	termCol, err := column(header, termHeaders)
	if err != nil {
		return nil, err
	}
	countCol, err := column(header, countHeaders)
	if err != nil {
		return nil, err
	}

	counts := make([]tfidf.Count, 0, len(records)-1)
	for line, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		doc, term, raw := cell(rec, docCol), cell(rec, termCol), cell(rec, countCol)
		n, err := strconv.Atoi(raw)
		if err != nil {
			// spreadsheets often store integers as "3.0"
			f, ferr := strconv.ParseFloat(raw, 64)
			if ferr != nil || f != float64(int(f)) {
				return nil, errors.Wrapf(ErrBadCount, "row %d: %q", line+2, raw)
			}
			n = int(f)
		}
		counts = append(counts, tfidf.Count{Doc: doc, Term: term, N: n})
	}

	return counts, nil
}

func column(header []string, names []string) (int, error) {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, name := range names {
			if h == name {
				return i, nil
			}
		}
	}

	return -1, errors.Wrapf(ErrMissingColumn, "want one of %v", names)
}

func cell(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ReadDocAttrs loads a YAML mapping of attribute name to document label to
// value, e.g.
//
//	year:
//	  d1: 1990
//	  d2: 2001
//
// Values must be scalars; nested mappings or sequences yield ErrNonScalarAttr.
func ReadDocAttrs(path string) (map[string]map[string]interface{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error reading attributes")
	}
	attrs := map[string]map[string]interface{}{}
	if err := yaml.Unmarshal(content, &attrs); err != nil {
		return nil, errors.Wrapf(err, "error parsing attributes %s", path)
	}
	for name, byDoc := range attrs {
		for doc, v := range byDoc {
			switch v.(type) {
			case map[interface{}]interface{}, []interface{}:
				return nil, errors.Wrapf(ErrNonScalarAttr, "%s[%s] in %s", name, doc, path)
			}
		}
	}

	return attrs, nil
}
