package normalize

import (
	"fmt"

	"utyadmin/models"
)

type CategoryAttribute struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Options  []string `json:"options"`
	Required bool     `json:"required"`
}

type CategoryPayload struct {
	MongoID     string              `json:"_id"`
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	ParentID    Assoc               `json:"parentId"`
	IsActive    *bool               `json:"isActive"`
	Attributes  []CategoryAttribute `json:"attributes"`
	CreatedAt   string              `json:"createdAt"`
	UpdatedAt   string              `json:"updatedAt"`
}

// Category maps a backend category. index is the category's position in the
// collection response; it seeds deterministic placeholder ids and names and
// the category's order.
func Category(p CategoryPayload, index int) models.Category {
	id := pickID(p.MongoID, p.ID)
	if id == "" {
		id = fmt.Sprintf("category-%d", index+1)
	}
	name := text(p.Name)
	if name == "" {
		name = fmt.Sprintf("Catégorie %d", index+1)
	}

	// Field order is reassigned sequentially from 1 on every pass; whatever
	// ordering the backend stored is discarded.
	fields := make([]models.DynamicField, 0, len(p.Attributes))
	for i, attr := range p.Attributes {
		fieldName := text(attr.Name)
		if fieldName == "" {
			fieldName = fmt.Sprintf("Champ %d", i+1)
		}
		options := attr.Options
		if options == nil {
			options = []string{}
		}
		fields = append(fields, models.DynamicField{
			ID:       fmt.Sprintf("%s-attr-%d", id, i+1),
			Name:     fieldName,
			Type:     FieldType(attr.Type),
			Required: attr.Required,
			Options:  options,
			Order:    i + 1,
		})
	}

	slug := Slug(name)
	if slug == "" {
		slug = fmt.Sprintf("category-%d", index+1)
	}

	isActive := true
	if p.IsActive != nil {
		isActive = *p.IsActive
	}

	return models.Category{
		ID:            id,
		Name:          name,
		Slug:          slug,
		Icon:          text(p.Icon),
		Description:   text(p.Description),
		ParentID:      p.ParentID.EntityID(),
		Order:         index + 1,
		DynamicFields: fields,
		IsActive:      isActive,
		CreatedAt:     Time(p.CreatedAt),
		UpdatedAt:     Time(p.UpdatedAt),
	}
}

// FallbackCategory synthesizes a minimal category around a bare id so that
// listings referencing an unexpanded category still render.
func FallbackCategory(id string) models.Category {
	if id == "" {
		id = "unknown-category"
	}
	return models.Category{
		ID:            id,
		Name:          "Catégorie",
		Slug:          "categorie",
		Order:         1,
		DynamicFields: []models.DynamicField{},
		IsActive:      true,
		CreatedAt:     Epoch,
		UpdatedAt:     Epoch,
	}
}

// CategoryInput is what the dashboard submits on category create/update.
type CategoryInput struct {
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Icon          string                `json:"icon"`
	ParentID      string                `json:"parentId"`
	IsActive      *bool                 `json:"isActive"`
	DynamicFields []models.DynamicField `json:"dynamicFields"`
}

// CategoryBody denormalizes a category edit into the backend's wire shape.
// Attribute order is implied by slice position, so prior order values are
// dropped rather than forwarded.
func CategoryBody(in CategoryInput) map[string]any {
	attributes := make([]map[string]any, 0, len(in.DynamicFields))
	for _, f := range in.DynamicFields {
		options := f.Options
		if options == nil {
			options = []string{}
		}
		attributes = append(attributes, map[string]any{
			"name":     f.Name,
			"type":     apiFieldType(f.Type),
			"options":  options,
			"required": f.Required,
		})
	}

	body := map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"icon":        in.Icon,
		"attributes":  attributes,
	}
	if in.ParentID != "" {
		body["parentId"] = in.ParentID
	}
	if in.IsActive != nil {
		body["isActive"] = *in.IsActive
	}
	return body
}

func apiFieldType(t models.FieldType) string {
	switch t {
	case models.FieldNumber:
		return "number"
	case models.FieldBoolean:
		return "boolean"
	case models.FieldList:
		return "list"
	case models.FieldTags:
		return "tags"
	default:
		return "text"
	}
}
