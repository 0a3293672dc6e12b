package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"simitra-backend/internal/apperror"
	"simitra-backend/internal/model"
	"simitra-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthUsecase struct {
	repo   repository.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthUsecase(repo repository.UserRepository, secret string, ttl time.Duration) *AuthUsecase {
	return &AuthUsecase{repo: repo, secret: []byte(secret), ttl: ttl}
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	NamaLengkap string
	Role        string
}

// Register membuat user baru. Role kosong berarti user biasa.
func (u *AuthUsecase) Register(in RegisterInput) (*model.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	exists, err := u.repo.ExistsUsernameOrEmail(in.Username, in.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("Username atau email sudah terdaftar")
	}

	// 1. Hashing Password
	hashed, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = model.RoleUser
	}

	// 2. Simpan ke Database
	user := &model.User{
		Username:    in.Username,
		Email:       in.Email,
		Password:    hashed,
		NamaLengkap: in.NamaLengkap,
		Role:        role,
	}
	if err := u.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login memeriksa username/email dan password lalu menerbitkan token JWT.
func (u *AuthUsecase) Login(identifier, password string) (string, *model.User, error) {
	// 1. Cari user berdasarkan username atau email
	user, err := u.repo.FindByLogin(strings.TrimSpace(identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperror.Unauthorized("Username atau password salah")
		}
		return "", nil, err
	}

	// 2. Bandingkan Password (Input vs Hash di DB)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperror.Unauthorized("Username atau password salah")
	}

	// 3. Jika benar, buat Token JWT
	token, err := u.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (u *AuthUsecase) IssueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
}

// ParseToken memvalidasi token dan mengembalikan klaimnya.
func (u *AuthUsecase) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("metode signing tidak dikenal: %v", token.Header["alg"])
		}
		return u.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.Unauthorized("Token tidak valid atau kadaluwarsa")
	}
	return claims, nil
}

func (u *AuthUsecase) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := u.repo.FindByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return apperror.Validation("Password lama salah")
	}
	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return u.repo.UpdatePassword(userID, hashed)
}
