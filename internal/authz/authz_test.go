package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicies(t *testing.T) {
	a, err := NewDefaultAuthorizer()
	require.NoError(t, err)

	cases := []struct {
		role, obj, act string
		want           bool
	}{
		{"admin", ObjMitra, ActWrite, true},
		{"admin", ObjSpk, ActRead, true},
		{"user", ObjKegiatan, ActRead, true},
		{"user", ObjKegiatan, ActWrite, false},
		{"user", ObjMitra, ActRead, false},
		{"user", ObjPengajuan, ActSubmit, true},
		{"user", ObjPengajuan, ActWrite, false},
		{"user", ObjTransaksi, ActRead, false},
		{"user", ObjDashboard, ActRead, false},
		{"guest", ObjKegiatan, ActRead, false},
		{"", ObjKegiatan, ActRead, false},
	}
	for _, c := range cases {
		got, err := a.Authorize(c.role, c.obj, c.act)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%s %s %s", c.role, c.obj, c.act)
	}
}

func TestCustomPolicies(t *testing.T) {
	a, err := NewAuthorizer([][]string{{"viewer", "*", ActRead}})
	require.NoError(t, err)

	ok, err := a.Authorize("viewer", ObjTransaksi, ActRead)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.Authorize("viewer", ObjTransaksi, ActWrite)
	require.NoError(t, err)
	assert.False(t, ok)
}
