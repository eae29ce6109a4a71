package normalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"utyadmin/models"
)

type ListingPayload struct {
	MongoID     string          `json:"_id"`
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       Number          `json:"price"`
	Images      []string        `json:"images"`
	Category    Assoc           `json:"category"`
	User        Assoc           `json:"user"`
	IsSold      bool            `json:"isSold"`
	Status      string          `json:"status"`
	Type        string          `json:"type"`
	Attributes  map[string]any  `json:"attributes"`
	Views       Number          `json:"views"`
	Likes       json.RawMessage `json:"likes"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// Listing maps a backend announcement to the canonical Listing. Category and
// vendor associations may arrive embedded or as bare ids; a bare id gets a
// synthesized fallback entity instead of a failure.
func Listing(p ListingPayload, index int) models.Listing {
	id := pickID(p.MongoID, p.ID)
	if id == "" {
		id = fmt.Sprintf("listing-%d", index+1)
	}

	title := text(p.Name)
	if title == "" {
		title = fmt.Sprintf("Annonce %d", index+1)
	}

	var category models.Category
	if catID, ok := p.Category.StringID(); ok {
		category = FallbackCategory(catID)
	} else {
		var cp CategoryPayload
		if p.Category.Object(&cp) {
			category = Category(cp, 0)
		} else {
			category = FallbackCategory("")
		}
	}

	vendor := UserFromAssoc(p.User, index)

	images := p.Images
	if images == nil {
		images = []string{}
	}
	dynamicData := p.Attributes
	if dynamicData == nil {
		dynamicData = map[string]any{}
	}

	return models.Listing{
		ID:          id,
		Title:       title,
		Description: text(p.Description),
		Price:       float64(p.Price),
		Images:      images,
		CategoryID:  category.ID,
		Category:    category,
		VendorID:    vendor.ID,
		Vendor:      vendor,
		Status:      listingStatus(p),
		Type:        listingType(p.Type),
		DynamicData: dynamicData,
		Views:       int(p.Views),
		Likes:       countLikes(p.Likes),
		CreatedAt:   Time(p.CreatedAt),
		UpdatedAt:   Time(p.UpdatedAt),
	}
}

// Older backend versions only expose an isSold flag; newer ones send a
// lifecycle status string. The flag wins only when no status is present.
func listingStatus(p ListingPayload) models.ListingStatus {
	if text(p.Status) != "" {
		return ListingStatus(p.Status)
	}
	if p.IsSold {
		return models.ListingSold
	}
	return models.ListingApproved
}

func listingType(s string) models.ListingType {
	if strings.ToLower(text(s)) == "auction" {
		return models.ListingAuction
	}
	return models.ListingSale
}

// likes is an array of likers on some endpoints and a plain count on others.
func countLikes(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	if raw[0] == '[' {
		var entries []json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			return 0
		}
		return len(entries)
	}
	var n Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	return int(n)
}
