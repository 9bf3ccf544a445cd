package migrate

import (
	"context"
	"log"
	"strconv"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/showcase-web/portfolio-server/bundles/portfolios"
	"github.com/showcase-web/portfolio-server/globals"
	"github.com/showcase-web/portfolio-server/permissions"
)

// RecomputeLikesAndViews is a migrate script used to reset the portfolios'
// 'Likes' and 'Views' count fields, based on the result of counting how many
// records exist in the portfolio_likes and portfolio_views tables.
// NOTE: This script is expected to be run just once on each server.
func RecomputeLikesAndViews(ctx context.Context, db *gorm.DB) {
	migrate, _ := gz.ReadEnvVar("GZ_PORTFOLIO_MIGRATE_RESET_LIKES_AND_VIEWS")
	if value, err := strconv.ParseBool(migrate); err != nil || !value {
		if err != nil {
			log.Printf("Error parsing GZ_PORTFOLIO_MIGRATE_RESET_LIKES_AND_VIEWS. Got value: %s. Error: %s", migrate, err)
		}
		return
	}
	log.Println("[MIGRATION] Running 'Recompute Likes And Views' migration script")
	tx := db.Begin()

	if em := (&portfolios.Service{}).ComputeAllCounters(tx); em != nil {
		tx.Rollback()
		log.Fatal("[MIGRATION] Error while recomputing likes and views", em.BaseError)
	}

	if err := tx.Commit().Error; err != nil {
		log.Fatal("[MIGRATION] Error while recomputing likes and views", err)
	}
	log.Println("[MIGRATION] Successfully finished 'Recompute Likes And Views' migration script")
}

// CasbinPermissions adds read/write permissions to owners of existent
// portfolios.
// NOTE: This script is expected to be run just once on each server.
func CasbinPermissions(ctx context.Context, db *gorm.DB) {
	migrate, _ := gz.ReadEnvVar("GZ_PORTFOLIO_MIGRATE_CASBIN")
	if value, err := strconv.ParseBool(migrate); err != nil || !value {
		if err != nil {
			log.Printf("Error parsing GZ_PORTFOLIO_MIGRATE_CASBIN. Got value: %s. Error: %s", migrate, err)
		}
		return
	}
	log.Println("[MIGRATION] Running Casbin Permissions migration script")
	q := db

	var portfolioList portfolios.Portfolios
	if err := q.Model(&portfolios.Portfolio{}).Unscoped().Find(&portfolioList).Error; err != nil {
		log.Fatal("[MIGRATION] Error finding portfolios to add permissions", err)
	}
	for _, p := range portfolioList {
		// add read and write permissions
		globals.Permissions.AddPermission(*p.Owner, *p.UUID, permissions.Read)
		globals.Permissions.AddPermission(*p.Owner, *p.UUID, permissions.Write)
	}
}
