package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateValueIsZoneIndependent(t *testing.T) {
	v, err := NewDate(2025, time.January, 1).Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", v)

	// zona koneksi di barat UTC tidak boleh mengubah tanggal yang dikirim
	west := time.FixedZone("UTC-5", -5*60*60)
	d := DateOf(time.Date(2025, time.January, 1, 20, 0, 0, 0, west))
	v, err = d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDateScanRoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2025-03-09"))
	assert.Equal(t, "2025-03-09", d.String())

	require.NoError(t, d.Scan([]byte("2025-03-10 00:00:00")))
	assert.Equal(t, "2025-03-10", d.String())

	require.NoError(t, d.Scan(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-03-11", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}

func TestDateMarshalNull(t *testing.T) {
	b, err := json.Marshal(struct {
		Tanggal Date `json:"tanggal"`
		Kosong  Date `json:"kosong"`
	}{Tanggal: NewDate(2025, time.June, 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tanggal":"2025-06-02","kosong":null}`, string(b))
}
