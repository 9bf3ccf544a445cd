package dtos

// UpdateCategory encapsulates the category fields that can be updated.
type UpdateCategory struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=3,alphanumspace"`
	Slug *string `json:"slug,omitempty" validate:"omitempty,noforwardslash"`
}
