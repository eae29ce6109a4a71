package normalize

import (
	"fmt"
	"strings"

	"utyadmin/models"
)

type ModerationFlagPayload struct {
	MongoID      string `json:"_id"`
	ID           string `json:"id"`
	ListingID    Assoc  `json:"listingId"`
	Reason       string `json:"reason"`
	Type         string `json:"type"`
	Severity     string `json:"severity"`
	AiConfidence Number `json:"aiConfidence"`
	CreatedAt    string `json:"createdAt"`
	ResolvedAt   string `json:"resolvedAt"`
	ResolvedBy   Assoc  `json:"resolvedBy"`
}

func ModerationFlag(p ModerationFlagPayload, index int) models.ModerationFlag {
	id := pickID(p.MongoID, p.ID)
	if id == "" {
		id = fmt.Sprintf("flag-%d", index+1)
	}
	return models.ModerationFlag{
		ID:           id,
		ListingID:    p.ListingID.EntityID(),
		Reason:       text(p.Reason),
		Type:         FlagType(p.Type),
		Severity:     FlagSeverity(p.Severity),
		AiConfidence: float64(p.AiConfidence),
		CreatedAt:    Time(p.CreatedAt),
		ResolvedAt:   timeOrZero(p.ResolvedAt),
		ResolvedBy:   p.ResolvedBy.EntityID(),
	}
}

type CurrencyPayload struct {
	MongoID      string `json:"_id"`
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	IsActive     *bool  `json:"isActive"`
	ExchangeRate Number `json:"exchangeRate"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

func Currency(p CurrencyPayload, index int) models.Currency {
	id := pickID(p.MongoID, p.ID)
	if id == "" {
		id = fmt.Sprintf("currency-%d", index+1)
	}

	code := strings.ToUpper(text(p.Code))
	if code == "" {
		code = "UNK"
	}
	name := text(p.Name)
	if name == "" {
		name = "Unknown"
	}
	symbol := text(p.Symbol)
	if symbol == "" {
		symbol = "-"
	}
	rate := float64(p.ExchangeRate)
	if rate == 0 {
		rate = 1
	}
	isActive := true
	if p.IsActive != nil {
		isActive = *p.IsActive
	}

	return models.Currency{
		ID:           id,
		Code:         code,
		Name:         name,
		Symbol:       symbol,
		IsActive:     isActive,
		ExchangeRate: rate,
		CreatedAt:    Time(p.CreatedAt),
		UpdatedAt:    Time(p.UpdatedAt),
	}
}

type ShopPayload struct {
	MongoID     string `json:"_id"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	OwnerIDCard string `json:"ownerIdCard"`
	IsActive    *bool  `json:"isActive"`
	User        Assoc  `json:"user"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func Shop(p ShopPayload, index int) models.Shop {
	id := pickID(p.MongoID, p.ID)
	if id == "" {
		id = fmt.Sprintf("shop-%d", index+1)
	}
	name := text(p.Name)
	if name == "" {
		name = fmt.Sprintf("Boutique %d", index+1)
	}
	isActive := true
	if p.IsActive != nil {
		isActive = *p.IsActive
	}

	return models.Shop{
		ID:          id,
		Name:        name,
		Description: text(p.Description),
		Logo:        text(p.Logo),
		OwnerIDCard: text(p.OwnerIDCard),
		IsActive:    isActive,
		User:        UserFromAssoc(p.User, index),
		CreatedAt:   Time(p.CreatedAt),
		UpdatedAt:   Time(p.UpdatedAt),
	}
}
