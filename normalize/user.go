package normalize

import (
	"fmt"

	"utyadmin/models"
)

// UserPayload is the backend's user shape. Field names vary per endpoint
// (profile vs. listing owner vs. order party), so everything is optional.
type UserPayload struct {
	MongoID       string   `json:"_id"`
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	VerifiedPhone string   `json:"verified_phone"`
	Roles         []string `json:"roles"`
	Role          string   `json:"role"`
	IsAdmin       bool     `json:"isAdmin"`
	Image         string   `json:"image"`
	Status        string   `json:"status"`
	KycStatus     string   `json:"kycStatus"`
	CreatedAt     string   `json:"createdAt"`
	LastLogin     string   `json:"lastLogin"`
}

// User maps a backend user payload to the canonical User.
func User(p UserPayload, index int) models.User {
	id := pickID(p.MongoID, p.ID)
	if id == "" {
		id = "unknown-user"
	}

	firstName := text(p.FirstName)
	if firstName == "" {
		firstName = text(p.Username)
	}
	if firstName == "" {
		firstName = "Utilisateur"
	}

	phone := text(p.VerifiedPhone)
	if phone == "" {
		phone = text(p.Phone)
	}

	email := text(p.Email)
	if email == "" {
		contact := phone
		if contact == "" {
			contact = id
		}
		email = fmt.Sprintf("%s@uty.local", contact)
	}

	return models.User{
		ID:        id,
		Email:     email,
		FirstName: firstName,
		LastName:  text(p.LastName),
		Role:      Role(p.Roles, p.Role, p.IsAdmin),
		Status:    UserStatus(p.Status),
		Avatar:    text(p.Image),
		Phone:     phone,
		CreatedAt: Time(p.CreatedAt),
		LastLogin: timeOrZero(p.LastLogin),
		KycStatus: KycStatus(p.KycStatus),
	}
}

// UserFromAssoc resolves a user association. A bare id string yields a
// placeholder user carrying that id; an absent association yields the
// unknown-user placeholder.
func UserFromAssoc(a Assoc, index int) models.User {
	if id, ok := a.StringID(); ok {
		return models.User{
			ID:        id,
			Email:     fmt.Sprintf("%s@uty.local", id),
			FirstName: "Utilisateur",
			Role:      models.RoleClient,
			Status:    models.UserActive,
			CreatedAt: Epoch,
		}
	}
	var p UserPayload
	a.Object(&p)
	return User(p, index)
}
