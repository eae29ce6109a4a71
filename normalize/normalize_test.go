package normalize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberToleratesAnyShape(t *testing.T) {
	var v struct {
		N Number `json:"n"`
	}

	cases := map[string]float64{
		`{"n": 149.5}`:   149.5,
		`{"n": "149.5"}`: 149.5,
		`{"n": "12"}`:    12,
		`{"n": null}`:    0,
		`{"n": "junk"}`:  0,
		`{"n": ""}`:      0,
	}
	for in, want := range cases {
		v.N = -1
		require.NoError(t, json.Unmarshal([]byte(in), &v), in)
		assert.Equal(t, want, float64(v.N), in)
	}
}

func TestTimeFallsBackToEpoch(t *testing.T) {
	assert.Equal(t, Epoch, Time(""))
	assert.Equal(t, Epoch, Time("not-a-date"))

	got := Time("2024-03-01T10:00:00Z")
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), got)
}

func TestAssocForms(t *testing.T) {
	var v struct {
		A Assoc `json:"a"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"a": "abc123"}`), &v))
	id, ok := v.A.StringID()
	assert.True(t, ok)
	assert.Equal(t, "abc123", id)
	assert.Equal(t, "abc123", v.A.EntityID())

	require.NoError(t, json.Unmarshal([]byte(`{"a": {"_id": "xyz", "name": "n"}}`), &v))
	_, ok = v.A.StringID()
	assert.False(t, ok)
	assert.Equal(t, "xyz", v.A.EntityID())

	require.NoError(t, json.Unmarshal([]byte(`{"a": null}`), &v))
	assert.False(t, v.A.Present())
	assert.Equal(t, "", v.A.EntityID())
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "electronique", Slug("Électronique"))
	assert.Equal(t, "maison-jardin", Slug("Maison & Jardin"))
	assert.Equal(t, "vetements-2", Slug("  Vêtements 2  "))
	assert.Equal(t, "", Slug("!!!"))
}

func TestTokens(t *testing.T) {
	got, err := Tokens(TokensPayload{AccessSnake: "a", RefreshSnake: "r"})
	require.NoError(t, err)
	assert.Equal(t, "a", got.AccessToken)
	assert.Equal(t, "r", got.RefreshToken)

	got, err = Tokens(TokensPayload{AccessCamel: "a2", RefreshCamel: "r2"})
	require.NoError(t, err)
	assert.Equal(t, "a2", got.AccessToken)
	assert.Equal(t, "r2", got.RefreshToken)

	_, err = Tokens(TokensPayload{AccessSnake: "a"})
	assert.ErrorIs(t, err, ErrInvalidTokenResponse)

	_, err = Tokens(TokensPayload{})
	assert.ErrorIs(t, err, ErrInvalidTokenResponse)
}
