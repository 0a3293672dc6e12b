package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"simitra-backend/internal/model"

	"github.com/xuri/excelize/v2"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate menerima tanggal teks atau nomor seri Excel.
func ParseDate(s string) (model.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.Date{}, nil
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return model.Date{}, fmt.Errorf("tanggal tidak valid: %s", s)
		}
		return model.DateOf(t), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return model.DateOf(t), nil
		}
	}
	return model.Date{}, fmt.Errorf("format tanggal tidak dikenali: %s", s)
}

// ParseAmount membaca angka seperti "Rp 1.500.000" atau "1500000".
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && isRawNumber(s) {
		return int64(math.Round(f)), nil
	}
	cleaned := strings.NewReplacer("Rp", "", "rp", "", ".", "", ",", "", " ", "").Replace(s)
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("angka tidak valid: %s", s)
	}
	return n, nil
}

// isRawNumber membedakan nilai mentah Excel ("1500000", "1.5E6", "1500.5")
// dari penulisan ribuan gaya Indonesia ("1.500").
func isRawNumber(s string) bool {
	if strings.ContainsAny(s, "eE") {
		return true
	}
	dot := strings.IndexByte(s, '.')
	return dot < 0 || len(s)-dot-1 != 3
}

// DigitText merapikan kolom identitas numerik (NIK, sobat_id, no_hp) yang
// bisa tersimpan sebagai angka ilmiah atau berakhiran ".0" di Excel.
func DigitText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if strings.ContainsAny(s, "eE") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return strconv.FormatFloat(f, 'f', 0, 64)
		}
	}
	return strings.TrimSuffix(s, ".0")
}
