package mailer

import (
	"testing"

	"simitra-backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestBodiesEscapeUserInput(t *testing.T) {
	p := model.PengajuanMitra{
		NamaLengkap: `Budi <script>alert(1)</script>`,
		Catatan:     `NIK tidak sesuai & <b>KTP</b> buram`,
	}

	approved := approvedBody(p)
	assert.NotContains(t, approved, "<script>")
	assert.Contains(t, approved, "Budi &lt;script&gt;alert(1)&lt;/script&gt;")

	rejected := rejectedBody(p)
	assert.NotContains(t, rejected, "<b>KTP</b>")
	assert.Contains(t, rejected, "NIK tidak sesuai &amp; &lt;b&gt;KTP&lt;/b&gt; buram")

	assert.Contains(t, rejectedBody(model.PengajuanMitra{NamaLengkap: "Ani"}), "Catatan: -")
}

func TestNewWithoutCredentialsOnlyLogs(t *testing.T) {
	n := New("smtp.gmail.com", 587, "", "")
	_, ok := n.(logNotifier)
	assert.True(t, ok)

	p := model.PengajuanMitra{ID: 7, Email: "ani@example.com"}
	assert.NoError(t, n.PengajuanApproved(p))
	assert.NoError(t, n.PengajuanRejected(p))
}

func TestSendRequiresRecipient(t *testing.T) {
	n := New("127.0.0.1", 2525, "admin@bps.go.id", "rahasia")
	err := n.PengajuanApproved(model.PengajuanMitra{NamaLengkap: "Ani"})
	assert.Error(t, err)
}
