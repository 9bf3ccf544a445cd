package category

import (
	"context"
	"fmt"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
)

// Delete deletes a category by the given slug.
func (cs *Service) Delete(ctx context.Context, tx *gorm.DB, categorySlug string) (*Category, *gz.ErrMsg) {
	// Sanity check: Make sure that the category exists.
	cat, err := BySlug(tx, categorySlug)
	if err != nil {
		return nil, gz.NewErrorMessage(gz.ErrorNonExistentResource)
	}

	if err := tx.Delete(&Category{}, "slug = ?", cat.Slug).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("Category [%s] %s has been removed.", *cat.Slug, *cat.Name))
	return cat, nil
}
