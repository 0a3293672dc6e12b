package repository

import (
	"simitra-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByLogin(identifier string) (*model.User, error)
	ExistsUsernameOrEmail(username, email string, excludeID uint) (bool, error)
	GetAll(search string) ([]model.User, error)
	Create(user *model.User) error
	Update(user *model.User) error
	UpdatePassword(id uint, hash string) error
	Delete(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Where("username = ?", username).First(&user).Error
	return &user, err
}

// FindByLogin mencari user berdasarkan username atau email.
func (r *userRepository) FindByLogin(identifier string) (*model.User, error) {
	var user model.User
	err := r.db.Where("username = ? OR email = ?", identifier, identifier).First(&user).Error
	return &user, err
}

func (r *userRepository) ExistsUsernameOrEmail(username, email string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&model.User{}).Where("(username = ? OR email = ?)", username, email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *userRepository) GetAll(search string) ([]model.User, error) {
	var users []model.User
	query := r.db.Order("id ASC")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("username LIKE ? OR email LIKE ? OR nama_lengkap LIKE ?", pattern, pattern, pattern)
	}
	err := query.Find(&users).Error
	return users, err
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) UpdatePassword(id uint, hash string) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).Update("password", hash).Error
}

func (r *userRepository) Delete(id uint) error {
	return deleteResult(r.db.Delete(&model.User{}, id))
}
