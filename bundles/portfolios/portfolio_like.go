package portfolios

import (
	"time"
)

// PortfolioLike represents a like of a portfolio.
type PortfolioLike struct {
	// Override default GORM Model fields
	ID        uint      `gorm:"primary_key"`
	CreatedAt time.Time `gorm:"type:timestamp(3) NULL"`
	UpdatedAt time.Time
	// DeletedAt is not included in order to disable the soft delete feature.

	// The ID of the user that made the like
	UserID *uint `gorm:"unique_index:idx_user_portfolio_like"`

	// The ID of the portfolio that was liked
	PortfolioID *uint `gorm:"unique_index:idx_user_portfolio_like"`
}
