package rupiah

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// Format menulis nominal dengan pemisah ribuan, contoh "Rp 1.250.000".
func Format(amount int64) string {
	if amount < 0 {
		return "-Rp " + printer.Sprintf("%d", abs(amount))
	}
	return "Rp " + printer.Sprintf("%d", amount)
}

var satuan = []string{
	"", "satu", "dua", "tiga", "empat", "lima",
	"enam", "tujuh", "delapan", "sembilan", "sepuluh", "sebelas",
}

// Terbilang mengeja bilangan bulat dalam bahasa Indonesia.
func Terbilang(n int64) string {
	if n == 0 {
		return "nol"
	}
	if n < 0 {
		return "minus " + strings.Join(strings.Fields(spell(abs(n))), " ")
	}
	return strings.Join(strings.Fields(spell(uint64(n))), " ")
}

// TerbilangRupiah menambahkan kata "rupiah", contoh 170000 menjadi
// "seratus tujuh puluh ribu rupiah".
func TerbilangRupiah(n int64) string {
	return Terbilang(n) + " rupiah"
}

func spell(n uint64) string {
	switch {
	case n < 12:
		return satuan[n]
	case n < 20:
		return spell(n-10) + " belas"
	case n < 100:
		return spell(n/10) + " puluh " + spell(n%10)
	case n < 200:
		return "seratus " + spell(n-100)
	case n < 1000:
		return spell(n/100) + " ratus " + spell(n%100)
	case n < 2000:
		return "seribu " + spell(n-1000)
	case n < 1_000_000:
		return spell(n/1000) + " ribu " + spell(n%1000)
	case n < 1_000_000_000:
		return spell(n/1_000_000) + " juta " + spell(n%1_000_000)
	case n < 1_000_000_000_000:
		return spell(n/1_000_000_000) + " miliar " + spell(n%1_000_000_000)
	default:
		return spell(n/1_000_000_000_000) + " triliun " + spell(n%1_000_000_000_000)
	}
}

// abs aman untuk math.MinInt64.
func abs(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

// ErrOverflow menandai perhitungan honor yang melewati batas int64.
var ErrOverflow = errors.New("nilai honor melebihi batas perhitungan")

// Kali menghitung tarif x volume dengan pengecekan overflow.
func Kali(tarif int64, volume int) (int64, error) {
	v := int64(volume)
	if tarif == 0 || v == 0 {
		return 0, nil
	}
	p := tarif * v
	if p/v != tarif || (tarif == -1 && v == minInt64) || (v == -1 && tarif == minInt64) {
		return 0, ErrOverflow
	}
	return p, nil
}

// Tambah menjumlahkan dua nominal dengan pengecekan overflow.
func Tambah(a, b int64) (int64, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, ErrOverflow
	}
	return s, nil
}

const minInt64 = -1 << 63
