package main

// Import this file's dependencies
import (
	"context"
	"log"

	"github.com/gazebo-web/gz-go/v7"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gosimple/slug"
	"github.com/jinzhu/gorm"
	"github.com/showcase-web/portfolio-server/bundles/category"
	"github.com/showcase-web/portfolio-server/bundles/portfolios"
	"github.com/showcase-web/portfolio-server/bundles/users"
	"github.com/showcase-web/portfolio-server/globals"
)

// DBMigrate auto migrates database tables
func DBMigrate(ctx context.Context, db *gorm.DB) {
	// Note about Migration from GORM doc: http://jinzhu.me/gorm/database.html#migration
	//
	// WARNING: AutoMigrate will ONLY create tables, missing columns and missing indexes,
	// and WON'T change existing column's type or delete unused columns to protect your data.
	//

	if db != nil {
		db.AutoMigrate(
			&category.Category{},
			&portfolios.Tag{},
			&gz.AccessToken{},
			&users.User{},
			&portfolios.Portfolio{},
			&portfolios.PortfolioLike{},
			&portfolios.PortfolioView{},
			&ElasticSearchConfig{},
			globals.Permissions.DBTable(),
		)
	}
}

// DBDropModels drops all tables from DB. Used by tests.
func DBDropModels(ctx context.Context, db *gorm.DB) {
	if db != nil {
		// First remove added FKs
		db.Model(&portfolios.Portfolio{}).RemoveForeignKey("owner", "users(username)")
		db.Model(&portfolios.Portfolio{}).RemoveForeignKey("creator", "users(username)")
		db.Model(&portfolios.PortfolioLike{}).RemoveForeignKey("portfolio_id", "portfolios(id)")
		db.Model(&portfolios.PortfolioView{}).RemoveForeignKey("portfolio_id", "portfolios(id)")

		// IMPORTANT NOTE: DROP TABLE order is important, due to FKs
		db.DropTableIfExists(
			&portfolios.PortfolioLike{},
			&portfolios.PortfolioView{},
			&portfolios.Portfolio{},
			&users.User{},
			&portfolios.Tag{},
			&category.Category{},
			&ElasticSearchConfig{},
			&gz.AccessToken{},
			globals.Permissions.DBTable(),
		)
		// Now also remove many_to_many tables, because they are not automatically removed.
		db.DropTableIfExists("portfolio_tags", "portfolio_categories")
	}
}

// CategoryDesc is used by DBAddDefaultData.
type CategoryDesc struct {
	name string
}

// DBAddDefaultData adds default data. Eg. Categories.
func DBAddDefaultData(ctx context.Context, db *gorm.DB) {

	if db != nil {
		defaultCategories := []CategoryDesc{
			{"Data Science"},
			{"DevOps"},
			{"Embedded"},
			{"Game Development"},
			{"Graphics"},
			{"Machine Learning"},
			{"Mobile"},
			{"Networking"},
			{"Robotics"},
			{"Security"},
			{"Tools"},
			{"Web"},
		}
		createCategories(db, defaultCategories)
	}
}

func createCategories(db *gorm.DB, categories []CategoryDesc) {
	for _, c := range categories {
		newSlug := slug.Make(c.name)
		cat := category.Category{Name: &c.name, Slug: &newSlug}
		// This Create will return error if the value already exists.
		db.Create(&cat)
	}
}

// DBAddCustomIndexes allows application to add custom indexes that cannot be added automatically
// by GORM.
func DBAddCustomIndexes(ctx context.Context, db *gorm.DB) {
	// TIP: command to check for existing foreign keys in db:
	// SELECT TABLE_NAME, COLUMN_NAME, CONSTRAINT_NAME, REFERENCED_TABLE_NAME, REFERENCED_COLUMN_NAME FROM INFORMATION_SCHEMA.KEY_COLUMN_USAGE WHERE REFERENCED_TABLE_SCHEMA = 'portfolios';
	db.Model(&portfolios.Portfolio{}).AddForeignKey("owner", "users(username)", "RESTRICT", "RESTRICT")
	db.Model(&portfolios.Portfolio{}).AddForeignKey("creator", "users(username)", "RESTRICT", "RESTRICT")

	db.Model(&portfolios.PortfolioLike{}).AddForeignKey("portfolio_id", "portfolios(id)", "RESTRICT", "RESTRICT")
	db.Model(&portfolios.PortfolioView{}).AddForeignKey("portfolio_id", "portfolios(id)", "RESTRICT", "RESTRICT")

	// Add fulltext indexes for portfolios. They back the 'q' search parameter
	// when Elastic Search is not available.
	found, err := indexIsPresent(db, "portfolios", "portfolios_fulltext")
	if err != nil {
		gz.LoggerFromContext(ctx).Critical("Error with DB while checking index", err)
		log.Fatal("Error with DB while checking index", err)
		return
	}
	if !found {
		db.Exec("ALTER TABLE portfolios ADD FULLTEXT portfolios_fulltext (name, description);")
		db.Exec("ALTER TABLE tags ADD FULLTEXT tags_fulltext (name);")
	}
	// TIP: You can check created indexes by executing in mysql: `show index from portfolios;`
}

// indexIsPresent returns true if the index with name idxName already exists in the given table
func indexIsPresent(db *gorm.DB, table string, idxName string) (bool, error) {
	// Raw SQL
	rows, err := db.Raw("select * from information_schema.statistics where table_schema=database() and table_name=? and index_name=?;",
		table, idxName).Rows() //(*sql.Rows, error)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	return rows.Next(), nil
}
