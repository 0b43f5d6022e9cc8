// Package csvio reads and writes the tabular account and transaction
// formats.
//
// Inputs are treated the way spreadsheet exports require: a UTF-8 BOM is
// stripped, the delimiter is sniffed from the header line, header names are
// matched after trimming and lowercasing, and fully blank rows are skipped.
// Outputs are always comma-separated UTF-8 without a BOM.
package csvio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoHeader reports an input with no header row at all.
var ErrNoHeader = errors.New("input is empty or has no header row")

// Column names of the account and transaction schemas.
const (
	colOwner   = "owner"
	colOpening = "opening_balance"
	colBalance = "balance"
	colEvent   = "event"
	colAmount  = "amount"
	colOther   = "other"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// delimiter candidates, in tie-break order
var delimiters = []rune{',', ';', '\t', '|'}

const sniffWindow = 2048

// table is one parsed input: normalized header names mapped to column
// positions, plus the data rows with cells trimmed and blank rows dropped.
type table struct {
	header  []string
	columns map[string]int
	rows    [][]string
}

// readTable parses one whole input. A zero comma means sniff the delimiter
// from the header line.
func readTable(src io.Reader, comma rune) (*table, error) {
	br := bufio.NewReader(src)
	stripBOM(br)

	if comma == 0 {
		comma = sniffDelimiter(br)
	}

	cr := csv.NewReader(br)
	cr.Comma = comma
	// Short rows read as empty cells rather than failing the whole file.
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	t := &table{columns: make(map[string]int)}
	for i, name := range records[0] {
		name = strings.ToLower(strings.TrimSpace(name))
		t.header = append(t.header, name)
		if _, ok := t.columns[name]; !ok {
			t.columns[name] = i
		}
	}

	for _, row := range records[1:] {
		blank := true
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
			if row[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}

// cell returns the named column of row, or "" when the row is short.
func (t *table) cell(row []string, name string) string {
	idx, ok := t.columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// requireColumns fails unless every name appears in the header.
func (t *table) requireColumns(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := t.columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required headers %v (found %v)", missing, t.header)
	}
	return nil
}

func stripBOM(br *bufio.Reader) {
	if head, _ := br.Peek(len(utf8BOM)); bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
}

// sniffDelimiter picks the candidate occurring most often in the header
// line. Nothing found means comma.
func sniffDelimiter(br *bufio.Reader) rune {
	head, _ := br.Peek(sniffWindow)
	line := string(head)
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}

	best, bestCount := ',', 0
	for _, candidate := range delimiters {
		if n := strings.Count(line, string(candidate)); n > bestCount {
			best, bestCount = candidate, n
		}
	}
	return best
}

// writeFile creates path and runs write against it, keeping the close error
// when the write itself succeeded.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
