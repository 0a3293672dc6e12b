package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "nama_lengkap", NormalizeHeader("  Nama Lengkap "))
	assert.Equal(t, "nik", NormalizeHeader("\ufeffNIK"))
	assert.Equal(t, "sobat_id", NormalizeHeader("Sobat-ID"))
	assert.Equal(t, "no_hp", NormalizeHeader("No. HP"))
}

func TestReadCSVWithBOMAndMessyHeaders(t *testing.T) {
	data := "\xEF\xBB\xBF NIK ;Nama  Lengkap;Alamat\n" +
		"3201;Budi;Bogor\n" +
		";;\n" +
		"3202;Sari;\n"

	rows, err := ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Number)
	assert.Equal(t, "3201", rows[0].Get("nik"))
	assert.Equal(t, "Budi", rows[0].Get("nama_lengkap"))
	assert.Equal(t, 4, rows[1].Number)
	assert.Equal(t, "", rows[1].Get("alamat"))
	assert.Equal(t, "Sari", rows[1].First("nama", "nama_lengkap"))
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"NIK", "Nama Lengkap", "Tanggal Mulai"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"3201000000000001", "Budi", "2025-01-15"}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]interface{}{"3201000000000002", "Sari", "15/02/2025"}))

	dir := t.TempDir()
	path := filepath.Join(dir, "mitra.xlsx")
	require.NoError(t, f.SaveAs(path))

	rows, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Budi", rows[0].Get("nama_lengkap"))
	assert.Equal(t, 4, rows[1].Number)

	d, err := ParseDate(rows[1].Get("tanggal_mulai"))
	require.NoError(t, err)
	assert.Equal(t, "2025-02-15", d.String())
}

func TestReadFileRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o600))
	_, err := ReadFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestSummaryCapsErrors(t *testing.T) {
	s := NewSummary(80)
	for i := 0; i < 60; i++ {
		s.Fail(i+2, "NIK wajib diisi")
	}
	s.Success()
	s.Skip()

	assert.Equal(t, 60, s.FailCount)
	assert.Len(t, s.Errors, MaxErrors)
	assert.Equal(t, "Baris 2: NIK wajib diisi", s.Errors[0])
	assert.Equal(t, 1, s.SuccessCount)
	assert.Equal(t, 1, s.SkipCount)
}

func TestParseDate(t *testing.T) {
	cases := map[string]string{
		"2025-01-15": "2025-01-15",
		"15/01/2025": "2025-01-15",
		"5/1/2025":   "2025-01-05",
		"45658":      "2025-01-01",
		"":           "",
	}
	for in, want := range cases {
		d, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, d.String(), in)
	}
	_, err := ParseDate("besok")
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	cases := map[string]int64{
		"1500000":      1500000,
		"Rp 1.500.000": 1500000,
		"1.500":        1500,
		"1500.00":      1500,
		"1.5E6":        1500000,
		"":             0,
	}
	for in, want := range cases {
		got, err := ParseAmount(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, fmt.Sprintf("input %q", in))
	}
	_, err := ParseAmount("abc")
	assert.Error(t, err)
}

func TestDigitText(t *testing.T) {
	assert.Equal(t, "3201000000000001", DigitText("3.201000000000001E15"))
	assert.Equal(t, "12345", DigitText("12345.0"))
	assert.Equal(t, "0812", DigitText(" 0812 "))
}
