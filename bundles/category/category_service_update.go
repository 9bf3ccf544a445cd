package category

import (
	"context"
	"fmt"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	dtos "github.com/showcase-web/portfolio-server/bundles/category/dtos"
)

// Update modifies an existing category identified by the given slug.
func (cs *Service) Update(ctx context.Context, tx *gorm.DB, categorySlug string,
	updated dtos.UpdateCategory) (*Category, *gz.ErrMsg) {

	// Sanity check: Make sure that the category exists.
	cat, err := BySlug(tx, categorySlug)
	if err != nil {
		return nil, gz.NewErrorMessage(gz.ErrorNonExistentResource)
	}

	if updated.Name == nil && updated.Slug == nil {
		return nil, gz.NewErrorMessage(gz.ErrorFormInvalidValue)
	}

	if updated.Name != nil {
		cat.Name = updated.Name
	}
	if updated.Slug != nil {
		cat.Slug = updated.Slug
	}

	if err := tx.Save(cat).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("Category [%s] %s has been updated.", *cat.Slug, *cat.Name))
	return cat, nil
}
