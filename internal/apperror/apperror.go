package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Kind string

const (
	KindValidation       Kind = "validation"
	KindUnauthorized     Kind = "unauthorized"
	KindForbidden        Kind = "forbidden"
	KindNotFound         Kind = "not_found"
	KindConflict         Kind = "conflict"
	KindCapacityExceeded Kind = "capacity_exceeded"
	KindBudgetExceeded   Kind = "budget_exceeded"
	KindInternal         Kind = "internal"
)

// Status mengembalikan kode HTTP untuk jenis error.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindBudgetExceeded:
		return fiber.StatusBadRequest
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict, KindCapacityExceeded:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Details map[string]interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) WithDetails(details map[string]interface{}) *Error {
	e.Details = details
	return e
}

func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) *Error {
	return New(KindValidation, format, args...)
}

func Unauthorized(msg string) *Error { return New(KindUnauthorized, "%s", msg) }

func Forbidden(msg string) *Error { return New(KindForbidden, "%s", msg) }

func NotFound(format string, args ...interface{}) *Error {
	return New(KindNotFound, format, args...)
}

func Conflict(format string, args ...interface{}) *Error {
	return New(KindConflict, format, args...)
}

func CapacityExceeded(format string, args ...interface{}) *Error {
	return New(KindCapacityExceeded, format, args...)
}

func BudgetExceeded(format string, args ...interface{}) *Error {
	return New(KindBudgetExceeded, format, args...)
}

// Internal membungkus error tak terduga. Pesan ke klien selalu generik.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Terjadi kesalahan pada server", Err: err}
}

// From menerjemahkan error apa pun menjadi *Error.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return &Error{Kind: kindFromStatus(fiberErr.Code), Message: fiberErr.Message, Err: err}
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Kind: KindNotFound, Message: "Data tidak ditemukan", Err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &Error{Kind: KindConflict, Message: "Data sudah ada", Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &Error{Kind: KindConflict, Message: "Data masih direferensikan atau referensi tidak valid", Err: err}
	}
	return Internal(err)
}

func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

func kindFromStatus(status int) Kind {
	switch status {
	case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge, fiber.StatusUnprocessableEntity, fiber.StatusUnsupportedMediaType:
		return KindValidation
	case fiber.StatusUnauthorized:
		return KindUnauthorized
	case fiber.StatusForbidden:
		return KindForbidden
	case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
		return KindNotFound
	case fiber.StatusConflict:
		return KindConflict
	default:
		return KindInternal
	}
}
