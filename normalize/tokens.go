package normalize

import (
	"errors"

	"utyadmin/models"
)

// TokensPayload accepts both spellings the backend uses for the token pair.
type TokensPayload struct {
	AccessSnake  string `json:"access_token"`
	RefreshSnake string `json:"refresh_token"`
	AccessCamel  string `json:"accessToken"`
	RefreshCamel string `json:"refreshToken"`
}

var ErrInvalidTokenResponse = errors.New("invalid authentication response")

// Tokens extracts the access/refresh pair from an auth response. Unlike the
// entity normalizers this one can fail: a token response missing either
// token is unusable and must not be absorbed into placeholders.
func Tokens(p TokensPayload) (models.AuthTokens, error) {
	access := p.AccessSnake
	if access == "" {
		access = p.AccessCamel
	}
	refresh := p.RefreshSnake
	if refresh == "" {
		refresh = p.RefreshCamel
	}
	if access == "" || refresh == "" {
		return models.AuthTokens{}, ErrInvalidTokenResponse
	}
	return models.AuthTokens{AccessToken: access, RefreshToken: refresh}, nil
}
