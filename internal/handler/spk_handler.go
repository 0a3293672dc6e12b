package handler

import (
	"bytes"
	"embed"
	"html/template"

	"simitra-backend/internal/repository"
	"simitra-backend/internal/rupiah"
	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/spk.html
var templateFS embed.FS

var spkTemplate = template.Must(template.New("spk.html").Funcs(template.FuncMap{
	"inc":     func(i int) int { return i + 1 },
	"rupiah":  rupiah.Format,
	"tanggal": usecase.FormatTanggal,
}).ParseFS(templateFS, "templates/spk.html"))

type SpkHandler struct {
	repo repository.SpkRepository
	uc   *usecase.SpkUsecase
}

func NewSpkHandler(repo repository.SpkRepository, uc *usecase.SpkUsecase) *SpkHandler {
	return &SpkHandler{repo: repo, uc: uc}
}

func (h *SpkHandler) GetSetting(c *fiber.Ctx) error {
	s, err := h.uc.GetSetting(c.UserContext(), c.Params("periode"))
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil pengaturan SPK", s)
}

func (h *SpkHandler) SaveSetting(c *fiber.Ctx) error {
	var req SpkSettingRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	s := req.toModel(c.Params("periode"))
	saved, err := h.uc.SaveSetting(c.UserContext(), &s)
	if err != nil {
		return err
	}
	return respond(c, "Pengaturan SPK berhasil disimpan", saved)
}

// GetMitra mendaftar mitra yang memiliki tugas pada periode untuk dicetak SPK-nya.
func (h *SpkHandler) GetMitra(c *fiber.Ctx) error {
	list, err := h.uc.MitraForPeriode(c.UserContext(), c.Query("periode"))
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil daftar mitra SPK", list)
}

func (h *SpkHandler) Print(c *fiber.Ctx) error {
	idMitra, err := paramUint(c, "id_mitra")
	if err != nil {
		return err
	}
	doc, err := h.uc.Build(c.UserContext(), c.Params("periode"), idMitra)
	if err != nil {
		return err
	}
	return respond(c, "Berhasil menyusun SPK", doc)
}

// PrintHTML merender SPK sebagai halaman siap cetak.
func (h *SpkHandler) PrintHTML(c *fiber.Ctx) error {
	idMitra, err := paramUint(c, "id_mitra")
	if err != nil {
		return err
	}
	doc, err := h.uc.Build(c.UserContext(), c.Params("periode"), idMitra)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := spkTemplate.Execute(&buf, doc); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// ===== Template SPK =====

func (h *SpkHandler) GetTemplates(c *fiber.Ctx) error {
	list, err := h.repo.GetTemplates()
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil template SPK", list)
}

func (h *SpkHandler) GetTemplate(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	t, err := h.repo.FindTemplate(id)
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil template SPK", t)
}

func (h *SpkHandler) CreateTemplate(c *fiber.Ctx) error {
	var req SpkTemplateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	t := req.toModel()
	if err := h.repo.CreateTemplate(&t); err != nil {
		return err
	}
	return respondCreated(c, "Template SPK berhasil dibuat", t)
}

func (h *SpkHandler) UpdateTemplate(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	var req SpkTemplateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	t := req.toModel()
	t.ID = id
	if err := h.uc.UpdateTemplate(c.UserContext(), &t); err != nil {
		return err
	}
	return respond(c, "Template SPK berhasil diperbarui", t)
}

func (h *SpkHandler) DeleteTemplate(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteTemplate(c.UserContext(), id); err != nil {
		return err
	}
	return respond(c, "Template SPK berhasil dihapus", nil)
}
