package globals

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gazebo-web/gz-go/v7"
	"github.com/go-playground/form"
	"github.com/showcase-web/portfolio-server/permissions"
	"gopkg.in/go-playground/validator.v9"
)

/////////////////////////////////////////////////
/// Define global variables here

// Server encapsulates database, router, and auth0
var Server *gz.Server

// APIVersion is route api version.
// See also routes and routers
var APIVersion = "1.0"

// Validate references the global structs validator.
// See https://github.com/go-playground/validator.
// We use a single instance of validator, as it caches struct info
var Validate *validator.Validate

// FormDecoder holds a reference to the global Form Decoder.
// See https://github.com/go-playground/form.
// We use a single instance of Decoder, as it caches struct info
var FormDecoder *form.Decoder

// Permissions manages permissions for users, roles and resources.
var Permissions *permissions.Permissions

// ElasticSearch is a pointer to the Elastic Search client used by the
// portfolio discovery routes. A nil value means full-text search is
// unavailable and queries are served by the SQL fallback.
var ElasticSearch *elasticsearch.Client

// MaxTagsPerPortfolio defines the maximum amount of tags that can be
// assigned to a portfolio.
var MaxTagsPerPortfolio = 10

// MaxCategoriesPerPortfolio defines the maximum amount of categories that
// can be assigned to a portfolio.
var MaxCategoriesPerPortfolio = 3
