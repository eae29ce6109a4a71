package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"utyadmin/models"
)

func TestUserPlaceholders(t *testing.T) {
	u := User(UserPayload{}, 0)
	assert.Equal(t, "unknown-user", u.ID)
	assert.Equal(t, "Utilisateur", u.FirstName)
	assert.Equal(t, "unknown-user@uty.local", u.Email)
	assert.Equal(t, models.RoleClient, u.Role)
	assert.Equal(t, models.UserActive, u.Status)
	assert.Equal(t, Epoch, u.CreatedAt)
	assert.True(t, u.LastLogin.IsZero())
}

func TestUserDerivedEmail(t *testing.T) {
	// phone beats id as the synthesized email local part
	u := User(UserPayload{MongoID: "u1", Phone: "0601020304"}, 0)
	assert.Equal(t, "0601020304@uty.local", u.Email)

	// verified phone beats unverified
	u = User(UserPayload{MongoID: "u1", Phone: "x", VerifiedPhone: "0699999999"}, 0)
	assert.Equal(t, "0699999999", u.Phone)

	// a real email is never replaced
	u = User(UserPayload{MongoID: "u1", Email: "real@example.com"}, 0)
	assert.Equal(t, "real@example.com", u.Email)
}

func TestUserNameFallsBackToUsername(t *testing.T) {
	u := User(UserPayload{MongoID: "u1", Username: "jdoe"}, 0)
	assert.Equal(t, "jdoe", u.FirstName)
}

func TestUserKycOptional(t *testing.T) {
	u := User(UserPayload{MongoID: "u1"}, 0)
	assert.Equal(t, models.KycStatus(""), u.KycStatus)

	u = User(UserPayload{MongoID: "u1", KycStatus: "approved"}, 0)
	assert.Equal(t, models.KycApproved, u.KycStatus)
}
