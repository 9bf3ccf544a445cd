package portfolios

import (
	"github.com/jinzhu/gorm"
)

// PortfolioView represents a single view of a portfolio.
type PortfolioView struct {
	gorm.Model

	// The ID of the user that viewed the portfolio (optional)
	UserID *uint
	// The ID of the portfolio that was viewed
	PortfolioID *uint
	// User-Agent sent in the http request (optional)
	UserAgent string
}
