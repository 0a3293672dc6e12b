package importer

import "fmt"

// MaxErrors membatasi jumlah pesan error yang dikembalikan ke klien.
const MaxErrors = 50

type Summary struct {
	TotalRows    int      `json:"totalRows"`
	SuccessCount int      `json:"successCount"`
	FailCount    int      `json:"failCount"`
	SkipCount    int      `json:"skipCount"`
	Errors       []string `json:"errors"`
}

func NewSummary(total int) *Summary {
	return &Summary{TotalRows: total, Errors: []string{}}
}

func (s *Summary) Success() { s.SuccessCount++ }

func (s *Summary) Skip() { s.SkipCount++ }

func (s *Summary) Fail(row int, format string, args ...interface{}) {
	s.FailCount++
	if len(s.Errors) < MaxErrors {
		s.Errors = append(s.Errors, fmt.Sprintf("Baris %d: ", row)+fmt.Sprintf(format, args...))
	}
}
