package handler

import (
	"strings"

	"simitra-backend/config"
	"simitra-backend/internal/apperror"
	"simitra-backend/internal/middleware"
	"simitra-backend/internal/repository"
	"simitra-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	repo     repository.UserRepository
	auth     *usecase.AuthUsecase
	importer *usecase.ImportUsecase
	upload   config.UploadConfig
}

func NewUserHandler(repo repository.UserRepository, auth *usecase.AuthUsecase, importer *usecase.ImportUsecase, upload config.UploadConfig) *UserHandler {
	return &UserHandler{repo: repo, auth: auth, importer: importer, upload: upload}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	// Registrasi publik selalu menjadi user biasa
	user, err := h.auth.Register(usecase.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		NamaLengkap: req.NamaLengkap,
	})
	if err != nil {
		return err
	}
	return respondCreated(c, "Registrasi berhasil", user)
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	token, user, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"data":    user,
	})
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	return respond(c, "Berhasil mengambil profil", middleware.CurrentUser(c))
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	user := *middleware.CurrentUser(c)

	// Update field yang diizinkan
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		exists, err := h.repo.ExistsUsernameOrEmail("", email, user.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperror.Conflict("Email sudah dipakai user lain")
		}
		user.Email = email
	}
	if req.NamaLengkap != "" {
		user.NamaLengkap = req.NamaLengkap
	}

	if err := h.repo.Update(&user); err != nil {
		return err
	}
	return respond(c, "Profil berhasil diperbarui", user)
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.auth.ChangePassword(currentUserID(c), req.PasswordLama, req.PasswordBaru); err != nil {
		return err
	}
	return respond(c, "Password berhasil diubah", nil)
}

// ===== Admin =====

func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	users, err := h.repo.GetAll(c.Query("search"))
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data user", users)
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	user, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}
	return respond(c, "Berhasil mengambil data user", user)
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req UserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Password == "" {
		return apperror.Validation("Data tidak valid").WithDetails(map[string]interface{}{"password": "required"})
	}
	user, err := h.auth.Register(usecase.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		NamaLengkap: req.NamaLengkap,
		Role:        req.Role,
	})
	if err != nil {
		return err
	}
	return respondCreated(c, "User berhasil dibuat", user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	var req UserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	user, err := h.repo.FindByID(id)
	if err != nil {
		return err
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := h.repo.ExistsUsernameOrEmail(username, email, id)
	if err != nil {
		return err
	}
	if exists {
		return apperror.Conflict("Username atau email sudah terdaftar")
	}

	user.Username = username
	user.Email = email
	user.NamaLengkap = req.NamaLengkap
	user.Role = req.Role
	if err := h.repo.Update(user); err != nil {
		return err
	}

	// Password hanya diganti jika diisi
	if req.Password != "" {
		hashed, err := usecase.HashPassword(req.Password)
		if err != nil {
			return err
		}
		if err := h.repo.UpdatePassword(id, hashed); err != nil {
			return err
		}
	}
	return respond(c, "User berhasil diperbarui", user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return err
	}
	if id == currentUserID(c) {
		return apperror.Validation("Tidak dapat menghapus akun sendiri")
	}
	if err := h.repo.Delete(id); err != nil {
		return err
	}
	return respond(c, "User berhasil dihapus", nil)
}

func (h *UserHandler) Import(c *fiber.Ctx) error {
	rows, err := readUpload(c, h.upload)
	if err != nil {
		return err
	}
	summary := h.importer.Users(c.UserContext(), rows)
	return respond(c, "Import user selesai", summary)
}
