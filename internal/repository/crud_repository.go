package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CrudRepository dipakai untuk tabel master yang hanya butuh operasi dasar.
type CrudRepository[T any] interface {
	FindAll(order string) ([]T, error)
	FindByID(id interface{}) (*T, error)
	Create(entity *T) error
	Update(entity *T) error
	Delete(id interface{}) error
}

type crudRepository[T any] struct {
	db *gorm.DB
	pk string
}

func NewCrudRepository[T any](db *gorm.DB, pk string) CrudRepository[T] {
	return &crudRepository[T]{db: db, pk: pk}
}

func (r *crudRepository[T]) FindAll(order string) ([]T, error) {
	var items []T
	query := r.db
	if order != "" {
		query = query.Order(order)
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *crudRepository[T]) FindByID(id interface{}) (*T, error) {
	var item T
	err := r.db.Where(r.pk+" = ?", id).First(&item).Error
	return &item, err
}

func (r *crudRepository[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

func (r *crudRepository[T]) Update(entity *T) error {
	return r.db.Save(entity).Error
}

func (r *crudRepository[T]) Delete(id interface{}) error {
	return deleteResult(r.db.Where(r.pk+" = ?", id).Delete(new(T)))
}

// forUpdate mengunci baris yang dibaca sampai transaksi selesai (SELECT ... FOR UPDATE).
func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

func deleteResult(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
