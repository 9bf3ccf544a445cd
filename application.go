// Package main Showcase Portfolio Server REST API
//
// This package provides a REST API to the portfolio showcase server.
//
// Schemes: https
// BasePath: /1.0
// Version: 0.1.0
// License: Apache 2.0
//
// swagger:meta
// go:generate swagger generate spec
package main

// Import this file's dependencies
import (
	"context"
	"flag"
	"strconv"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/go-playground/form"
	"github.com/showcase-web/portfolio-server/bundles/portfolios"
	"github.com/showcase-web/portfolio-server/globals"
	"github.com/showcase-web/portfolio-server/migrate"
	"github.com/showcase-web/portfolio-server/permissions"
	"gopkg.in/go-playground/validator.v9"
)

// Impl note: we move this as a constant as it is used by tests.
const sysAdminForTest = "rootfortests"

/////////////////////////////////////////////////
/// Initialize this package
///
/// Environment variables:
///    IGN_DB_USERNAME  : Mysql username
///    IGN_DB_PASSWORD  : Mysql password
///    IGN_DB_ADDRESS   : Mysql address (host:port)
///    IGN_DB_NAME      : Mysql database name (such as "portfolios")
///    AUTH0_RSA256_PUBLIC_KEY : Auth0 public RSA 256 key
func init() {
	var err error
	var isGoTest bool
	var auth0RsaPublickey string

	verbosity := gz.VerbosityWarning
	if verbStr, verr := gz.ReadEnvVar("GZ_PORTFOLIO_VERBOSITY"); verr == nil {
		verbosity, _ = strconv.Atoi(verbStr)
	}

	logStd := gz.ReadStdLogEnvVar()
	logger := gz.NewLogger("init", logStd, verbosity)
	logCtx := gz.NewContextWithLogger(context.Background(), logger)

	isGoTest = flag.Lookup("test.v") != nil

	// Get the auth0 credentials.
	if auth0RsaPublickey, err = gz.ReadEnvVar("AUTH0_RSA256_PUBLIC_KEY"); err != nil {
		logger.Info("Missing AUTH0_RSA256_PUBLIC_KEY env variable. Authentication will not work.")
	}

	globals.Server, err = gz.Init(auth0RsaPublickey, "", nil)
	// Create the main Router and set it to the server.
	// Note: here it is the place to define multiple APIs
	s := globals.Server
	mainRouter := gz.NewRouter()
	apiPrefix := "/" + globals.APIVersion
	r := mainRouter.PathPrefix(apiPrefix).Subrouter()
	s.ConfigureRouterWithRoutes(apiPrefix, r, routes)

	globals.Server.SetRouter(mainRouter)

	globals.Validate = initValidator()
	globals.FormDecoder = form.NewDecoder()

	// initialize permissions
	// override sys admin for tests
	var sysAdmin string
	if isGoTest {
		sysAdmin = sysAdminForTest
	} else {
		sysAdmin, _ = gz.ReadEnvVar("GZ_PORTFOLIO_SYSTEM_ADMIN")
	}
	if sysAdmin == "" {
		logger.Info("No GZ_PORTFOLIO_SYSTEM_ADMIN environment variable set. " +
			"No system administrator role will be created")
	}
	globals.Permissions = &permissions.Permissions{}
	globals.Permissions.Init(globals.Server.Db, sysAdmin)

	if err != nil {
		logger.Error(err)
	} else {
		logger.Info("[application.go] Started using database: ",
			globals.Server.DbConfig.Name)

		// Migrate database tables
		DBMigrate(logCtx, globals.Server.Db)

		DBAddDefaultData(logCtx, globals.Server.Db)

		// After loading initial data, apply custom indexes. Eg: fulltext indexes
		DBAddCustomIndexes(logCtx, globals.Server.Db)
	}

	// Recompute portfolio Likes and Views counters, if needed.
	migrate.RecomputeLikesAndViews(logCtx, globals.Server.Db)
	// Set casbin permissions for existing data
	migrate.CasbinPermissions(logCtx, globals.Server.Db)

	// Connect to the primary Elastic Search server, if one is configured.
	// Searches fall back to the database while the connection is down.
	if !isGoTest {
		if err := connectToElasticSearch(logCtx); err != nil {
			logger.Error("Unable to connect to Elastic Search. Search will use the database.", err)
		} else {
			portfolios.ElasticSearchUpdateAll(logCtx, globals.Server.Db)
		}
	}
}

func initValidator() *validator.Validate {
	validate := validator.New()
	InstallCustomValidators(validate)
	return validate
}

/////////////////////////////////////////////////
// Run the router and server
func main() {
	globals.Server.Run()
}
