package dtos

// CreateCategory encapsulates the data required to create a category.
type CreateCategory struct {
	Name string  `json:"name" validate:"required,min=3,alphanumspace"`
	Slug *string `json:"slug,omitempty" validate:"omitempty,noforwardslash"`
}
