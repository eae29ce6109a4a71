package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utyadmin/models"
)

func TestCategoryFieldOrderIsReassigned(t *testing.T) {
	p := CategoryPayload{
		MongoID: "c1",
		Name:    "Électronique",
		Attributes: []CategoryAttribute{
			{Name: "Marque", Type: "text", Required: true},
			{Name: "État", Type: "select", Options: []string{"neuf", "occasion"}},
			{Name: ""},
		},
	}
	c := Category(p, 0)

	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, "electronique", c.Slug)
	require.Len(t, c.DynamicFields, 3)
	for i, f := range c.DynamicFields {
		assert.Equal(t, i+1, f.Order)
	}
	assert.Equal(t, "c1-attr-1", c.DynamicFields[0].ID)
	assert.Equal(t, models.FieldList, c.DynamicFields[1].Type)
	assert.NotNil(t, c.DynamicFields[0].Options)
	// nameless attribute gets a positional placeholder
	assert.Equal(t, "Champ 3", c.DynamicFields[2].Name)
}

func TestCategoryPlaceholders(t *testing.T) {
	c := Category(CategoryPayload{}, 1)
	assert.Equal(t, "category-2", c.ID)
	assert.Equal(t, "Catégorie 2", c.Name)
	assert.Equal(t, 2, c.Order)
	assert.True(t, c.IsActive)
	assert.Equal(t, Epoch, c.CreatedAt)
}

func TestCategoryInactiveFlag(t *testing.T) {
	inactive := false
	c := Category(CategoryPayload{MongoID: "c2", Name: "X", IsActive: &inactive}, 0)
	assert.False(t, c.IsActive)
}

func TestFallbackCategory(t *testing.T) {
	c := FallbackCategory("cat-9")
	assert.Equal(t, "cat-9", c.ID)
	assert.Equal(t, "Catégorie", c.Name)
	assert.Equal(t, "categorie", c.Slug)

	assert.Equal(t, "unknown-category", FallbackCategory("").ID)
}

func TestCategoryBody(t *testing.T) {
	active := true
	body := CategoryBody(CategoryInput{
		Name:     "Maison",
		ParentID: "root",
		IsActive: &active,
		DynamicFields: []models.DynamicField{
			{Name: "Surface", Type: models.FieldNumber, Order: 99},
		},
	})

	assert.Equal(t, "Maison", body["name"])
	assert.Equal(t, "root", body["parentId"])
	assert.Equal(t, true, body["isActive"])

	attrs := body["attributes"].([]map[string]any)
	require.Len(t, attrs, 1)
	assert.Equal(t, "number", attrs[0]["type"])
	// order is positional on the wire, the stored value is not forwarded
	_, hasOrder := attrs[0]["order"]
	assert.False(t, hasOrder)

	body = CategoryBody(CategoryInput{Name: "Sans parent"})
	_, hasParent := body["parentId"]
	assert.False(t, hasParent)
	_, hasActive := body["isActive"]
	assert.False(t, hasActive)
}
