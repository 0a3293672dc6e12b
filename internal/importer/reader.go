package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
)

var ErrUnsupportedFormat = errors.New("format file tidak didukung, gunakan .xlsx atau .csv")

// Row adalah satu baris data dengan nilai yang dikunci oleh header ternormalisasi.
// Number adalah nomor baris di spreadsheet (header = baris 1).
type Row struct {
	Number int
	Values map[string]string
}

func (r Row) Get(key string) string {
	return strings.TrimSpace(r.Values[key])
}

// First mengembalikan nilai pertama yang tidak kosong dari beberapa alias kolom.
func (r Row) First(keys ...string) string {
	for _, k := range keys {
		if v := r.Get(k); v != "" {
			return v
		}
	}
	return ""
}

func (r Row) empty() bool {
	for _, v := range r.Values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// NormalizeHeader: trim, case-fold, spasi dan tanda hubung menjadi "_".
func NormalizeHeader(h string) string {
	h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	h = cases.Fold().String(h)
	h = strings.NewReplacer("-", " ", ".", " ").Replace(h)
	return strings.Join(strings.Fields(h), "_")
}

func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ReadXLSX(f)
	case ".csv":
		return ReadCSV(f)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// ReadXLSX membaca sheet pertama. Nilai sel diambil mentah agar tanggal
// tetap berupa nomor seri Excel dan tidak bergantung format tampilan.
func ReadXLSX(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("gagal membaca file excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("file excel tidak memiliki sheet")
	}
	records, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("gagal membaca sheet %s: %w", sheets[0], err)
	}
	return toRows(records)
}

// ReadCSV menerima pemisah koma atau titik koma dan mengabaikan BOM UTF-8.
func ReadCSV(r io.Reader) ([]Row, error) {
	br := SkipBOM(r)
	delim := ','
	first, _ := br.Peek(4096)
	line := string(first)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if strings.Count(line, ";") > strings.Count(line, ",") {
		delim = ';'
	}

	reader := csv.NewReader(br)
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("gagal membaca file csv: %w", err)
	}
	return toRows(records)
}

// SkipBOM melewati BOM UTF-8 di awal stream.
func SkipBOM(r io.Reader) *bufio.Reader {
	br := bufio.NewReader(r)
	peeked, err := br.Peek(3)
	if err == nil && peeked[0] == 0xEF && peeked[1] == 0xBB && peeked[2] == 0xBF {
		_, _ = br.Discard(3)
	}
	return br
}

func toRows(records [][]string) ([]Row, error) {
	if len(records) == 0 {
		return nil, errors.New("file kosong, header tidak ditemukan")
	}
	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = NormalizeHeader(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		row := Row{Number: i + 2, Values: make(map[string]string, len(headers))}
		for j, h := range headers {
			if h == "" || j >= len(rec) {
				continue
			}
			if _, dup := row.Values[h]; dup {
				continue
			}
			row.Values[h] = rec[j]
		}
		if row.empty() {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
