package category

import (
	"errors"

	"github.com/jinzhu/gorm"
)

// Category is a label used to group portfolios together, such as
// "web", "mobile" or "data-science". Categories are a flat registry; a
// portfolio references a single category by name.
//
// swagger:model
type Category struct {
	gorm.Model

	// Name is the name of the category
	Name *string `gorm:"not null;unique" json:"name"`

	// Slug is the human-friendly URL path to the category
	Slug *string `gorm:"not null;unique" json:"slug"`
}

// ByName returns a category by the given name.
func ByName(tx *gorm.DB, name string) (*Category, error) {
	var cat Category
	q := tx.Model(&Category{}).Where("name = ?", name)

	if err := q.First(&cat).Error; err != nil {
		return nil, err
	}

	return &cat, nil
}

// BySlug returns a category by the given slug.
func BySlug(tx *gorm.DB, slug string) (*Category, error) {
	var cat Category

	q := tx.Model(&Category{}).Where("slug = ?", slug)

	if err := q.First(&cat).Error; err != nil {
		return nil, err
	}

	return &cat, nil
}

// ByNames returns a slice of Categories from the given slice of names.
func ByNames(tx *gorm.DB, names []string) (*Categories, error) {
	var cats Categories
	q := tx.Model(&Category{}).Where("name IN (?)", names)
	if err := q.Find(&cats).Error; err != nil {
		return nil, err
	}
	if len(cats) != len(names) {
		return nil, errors.New("resource does not exist")
	}
	return &cats, nil
}

// Categories is an array of Category
//
// swagger:model
type Categories []Category

// StrSliceToCategories returns a slice of Categories from the given slice of
// category names. All names must refer to existing categories.
func StrSliceToCategories(tx *gorm.DB, names []string) (*Categories, error) {
	if len(names) == 0 {
		return nil, nil
	}
	cats, err := ByNames(tx, names)
	if err != nil {
		return nil, err
	}
	return cats, nil
}

// CategoriesToStrSlice returns a slice of category names by the given categories slice
func CategoriesToStrSlice(categories Categories) []string {
	var sl []string
	for _, c := range categories {
		sl = append(sl, *c.Name)
	}
	return sl
}
