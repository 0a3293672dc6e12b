package mailer

import (
	"fmt"
	"html"

	"simitra-backend/internal/model"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Notifier mengirim pemberitahuan hasil review pengajuan mitra.
type Notifier interface {
	PengajuanApproved(p model.PengajuanMitra) error
	PengajuanRejected(p model.PengajuanMitra) error
}

type gomailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// New mengembalikan notifier SMTP. Tanpa kredensial, email hanya dicatat di log.
func New(host string, port int, user, password string) Notifier {
	if user == "" || password == "" {
		return logNotifier{}
	}
	return &gomailNotifier{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   user,
	}
}

func (n *gomailNotifier) PengajuanApproved(p model.PengajuanMitra) error {
	return n.send(p.Email, "Pengajuan Mitra Disetujui", approvedBody(p))
}

func (n *gomailNotifier) PengajuanRejected(p model.PengajuanMitra) error {
	return n.send(p.Email, "Pengajuan Mitra Ditolak", rejectedBody(p))
}

// Isian dari pengguna selalu di-escape sebelum masuk ke badan email HTML.
func approvedBody(p model.PengajuanMitra) string {
	return fmt.Sprintf(`<p>Halo %s,</p>
<p>Pengajuan Anda sebagai mitra statistik telah <b>disetujui</b>. Data Anda sekarang terdaftar sebagai mitra dan dapat ditugaskan pada kegiatan berikutnya.</p>
<p>Terima kasih.</p>`, html.EscapeString(p.NamaLengkap))
}

func rejectedBody(p model.PengajuanMitra) string {
	catatan := p.Catatan
	if catatan == "" {
		catatan = "-"
	}
	return fmt.Sprintf(`<p>Halo %s,</p>
<p>Mohon maaf, pengajuan Anda sebagai mitra statistik <b>belum dapat disetujui</b>.</p>
<p>Catatan: %s</p>`, html.EscapeString(p.NamaLengkap), html.EscapeString(catatan))
}

func (n *gomailNotifier) send(to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("alamat email penerima kosong")
	}
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return n.dialer.DialAndSend(m)
}

type logNotifier struct{}

func (logNotifier) PengajuanApproved(p model.PengajuanMitra) error {
	zap.L().Info("email dinonaktifkan, notifikasi persetujuan tidak dikirim", zap.Uint("pengajuan_id", p.ID))
	return nil
}

func (logNotifier) PengajuanRejected(p model.PengajuanMitra) error {
	zap.L().Info("email dinonaktifkan, notifikasi penolakan tidak dikirim", zap.Uint("pengajuan_id", p.ID))
	return nil
}
