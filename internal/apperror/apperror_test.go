package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestKindStatus(t *testing.T) {
	assert.Equal(t, 400, KindValidation.Status())
	assert.Equal(t, 400, KindBudgetExceeded.Status())
	assert.Equal(t, 401, KindUnauthorized.Status())
	assert.Equal(t, 403, KindForbidden.Status())
	assert.Equal(t, 404, KindNotFound.Status())
	assert.Equal(t, 409, KindConflict.Status())
	assert.Equal(t, 409, KindCapacityExceeded.Status())
	assert.Equal(t, 500, KindInternal.Status())
}

func TestFrom(t *testing.T) {
	assert.Nil(t, From(nil))

	nf := From(fmt.Errorf("cari mitra: %w", gorm.ErrRecordNotFound))
	require.NotNil(t, nf)
	assert.Equal(t, KindNotFound, nf.Kind)

	dup := From(gorm.ErrDuplicatedKey)
	assert.Equal(t, KindConflict, dup.Kind)

	fe := From(fiber.NewError(fiber.StatusRequestEntityTooLarge, "terlalu besar"))
	assert.Equal(t, KindValidation, fe.Kind)
	assert.Equal(t, "terlalu besar", fe.Message)

	raw := From(errors.New("Error 1146: Table 'x' doesn't exist"))
	assert.Equal(t, KindInternal, raw.Kind)
	assert.NotContains(t, raw.Message, "1146")
}

func TestFromKeepsWrappedAppError(t *testing.T) {
	orig := CapacityExceeded("Tim sudah penuh (%d/%d)", 3, 3)
	wrapped := fmt.Errorf("tx: %w", orig)

	got := From(wrapped)
	assert.Same(t, orig, got)
	assert.True(t, Is(wrapped, KindCapacityExceeded))
	assert.False(t, Is(wrapped, KindConflict))
}
