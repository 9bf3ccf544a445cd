package main

import (
	"github.com/gazebo-web/gz-go/v7"
)

// ///////////////////////////////////////////////
// / Declare the routes. See also router.go
var routes = gz.Routes{

	////////////////
	// Portfolios //
	////////////////

	// Route for all portfolios
	gz.Route{
		Name:        "Portfolios",
		Description: "Information about all portfolios",
		URI:         "/portfolios",
		Headers:     gz.AuthHeadersOptional,
		Methods: gz.Methods{
			// swagger:route GET /portfolios portfolios listPortfolios
			//
			// Get list of portfolios.
			//
			// Get a list of portfolios. Portfolios will be returned paginated,
			// with pages of 20 portfolios by default. The user can request a
			// different page with query parameter 'page', and the page size
			// can be defined with query parameter 'per_page'.
			// The route supports the 'order' parameter, with values 'asc' and
			// 'desc' (default: desc).
			// It also supports the 'q' parameter to perform a fulltext search on
			// portfolios name, description and tags.
			// The 'category' parameter can be used (multiple times) to filter
			// results by category slug. The 'status' parameter limits results to
			// 'draft' or 'published' portfolios.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: jsonPortfolios
			gz.Method{
				Type:        "GET",
				Description: "Get all portfolios",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: ".json", Handler: gz.JSONListResult("Portfolios", SearchHandler(PortfolioList))},
					gz.FormatHandler{Extension: "", Handler: gz.JSONListResult("Portfolios", SearchHandler(PortfolioList))},
				},
			},
		},
		SecureMethods: gz.SecureMethods{
			// swagger:route POST /portfolios portfolios createPortfolio
			//
			// Create portfolio
			//
			// Creates a new portfolio. The request body should contain the
			// following fields: 'name', 'description', 'status' and optional
			// 'tags' (a comma separated list), 'categories', 'thumbnail_url',
			// 'demo_url', 'repo_url' and 'private'.
			// The portfolio owner will be retrieved from the passed JWT.
			//
			//   Consumes:
			//   - application/json
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: dbPortfolio
			gz.Method{
				Type:        "POST",
				Description: "Create a new portfolio",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(PortfolioCreate)},
				},
			},
		},
	},

	// Route that returns a list of portfolios from a user (ie. an 'owner')
	gz.Route{
		Name:        "OwnerPortfolios",
		Description: "Information about portfolios belonging to an owner. The {username} URI option will limit the scope to the specified user. Otherwise all portfolios are considered.",
		URI:         "/{username}/portfolios",
		Headers:     gz.AuthHeadersOptional,
		Methods: gz.Methods{
			// swagger:route GET /{username}/portfolios portfolios listOwnerPortfolios
			//
			// Get owner's portfolios
			//
			// Get a list of portfolios for the specified owner.
			// Portfolios will be returned paginated,
			// with pages of 20 portfolios by default. The user can request a
			// different page with query parameter 'page' (first page is value 1).
			// The page size can be controlled with query parameter 'per_page',
			// with a maximum of 100 items per page.
			// The route supports the 'order' parameter, with values 'asc' and
			// 'desc' (default: desc).
			// It also supports the 'q' parameter to perform a fulltext search on
			// portfolios name, description and tags.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: jsonPortfolios
			gz.Method{
				Type:        "GET",
				Description: "Get all portfolios of the specified user",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: ".json", Handler: gz.JSONListResult("Portfolios", SearchHandler(PortfolioList))},
					gz.FormatHandler{Extension: "", Handler: gz.JSONListResult("Portfolios", SearchHandler(PortfolioList))},
				},
			},
		},
		SecureMethods: gz.SecureMethods{},
	},

	// Route that handles likes to a portfolio from an owner
	gz.Route{
		Name:        "PortfolioLikes",
		Description: "Handles the likes of a portfolio.",
		URI:         "/{username}/portfolios/{portfolio}/likes",
		Headers:     gz.AuthHeadersOptional,
		Methods: gz.Methods{
			// swagger:route GET /{username}/portfolios/{portfolio}/likes portfolios portfolioLikeCheck
			//
			// Check if the requesting user likes a portfolio
			//
			// A JWT is optional. Anonymous callers get liked=false.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: Portfolio
			gz.Method{
				Type:        "GET",
				Description: "Check if the user likes a portfolio",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(NameOwnerHandler("portfolio", false, PortfolioLikeCheck))},
				},
			},
		},
		SecureMethods: gz.SecureMethods{
			// swagger:route POST /{username}/portfolios/{portfolio}/likes portfolios portfolioLikeToggle
			//
			// Toggle the like of a portfolio
			//
			// A first request records the like of the requesting user; a second
			// request removes it. The response contains the resulting like state
			// and the portfolio's like count.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: Portfolio
			gz.Method{
				Type:        "POST",
				Description: "Toggle the like of a portfolio",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.Handler(NoResult(NameOwnerHandler("portfolio", true, PortfolioLikeToggle)))},
				},
			},
		},
	},

	// Route that handles the views of a portfolio
	gz.Route{
		Name:        "PortfolioViews",
		Description: "Handles the views of a portfolio.",
		URI:         "/{username}/portfolios/{portfolio}/views",
		Headers:     gz.AuthHeadersOptional,
		Methods: gz.Methods{
			// swagger:route POST /{username}/portfolios/{portfolio}/views portfolios portfolioViewCreate
			//
			// Register a view of a portfolio
			//
			// Registers a view and returns the resulting view count. A JWT is
			// not required; anonymous views are counted too.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: Portfolio
			gz.Method{
				Type:        "POST",
				Description: "Register a view of a portfolio",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.Handler(NoResult(NameOwnerHandler("portfolio", false, PortfolioViewCreate)))},
				},
			},
		},
		SecureMethods: gz.SecureMethods{},
	},

	// Route that returns a list of portfolios liked by a user.
	gz.Route{
		Name:        "PortfolioLikeList",
		Description: "Portfolios liked by a user.",
		URI:         "/{username}/likes/portfolios",
		Headers:     gz.AuthHeadersOptional,
		Methods: gz.Methods{
			// swagger:route GET /{username}/likes/portfolios portfolios portfolioLikeList
			//
			// Get portfolios liked by a user.
			//
			// Get a list of portfolios liked by the specified user.
			// Portfolios will be returned paginated, with pages of 20 portfolios
			// by default. The user can request a different page with query
			// parameter 'page' (first page is value 1). The page size can be
			// controlled with query parameter 'per_page', with a maximum of
			// 100 items per page.
			// The route supports the 'order' parameter, with values 'asc' and 'desc' (default: desc).
			// It also supports the 'q' parameter to perform a fulltext search on
			// portfolios name, description and tags.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: jsonPortfolios
			gz.Method{
				Type:        "GET",
				Description: "Get all portfolios liked by the specified user",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: ".json", Handler: gz.JSONListResult("Portfolios", SearchHandler(PortfolioLikeList))},
					gz.FormatHandler{Extension: "", Handler: gz.JSONListResult("Portfolios", SearchHandler(PortfolioLikeList))},
				},
			},
		},
		SecureMethods: gz.SecureMethods{},
	},

	// Route that returns a portfolio, by name, from a user
	gz.Route{
		Name:        "OwnerPortfolioIndex",
		Description: "Information about a portfolio belonging to an owner.",
		URI:         "/{username}/portfolios/{portfolio}",
		Headers:     gz.AuthHeadersOptional,
		Methods: gz.Methods{
			// swagger:route GET /{username}/portfolios/{portfolio} portfolios singleOwnerPortfolio
			//
			// Get a single portfolio from an owner
			//
			// Return a portfolio given its owner and name.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: Portfolio
			gz.Method{
				Type:        "GET",
				Description: "Get a portfolio belonging to the specified user",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: ".json", Handler: gz.JSONResult(NameOwnerHandler("portfolio", false, PortfolioOwnerIndex))},
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(NameOwnerHandler("portfolio", false, PortfolioOwnerIndex))},
				},
			},
		},
		SecureMethods: gz.SecureMethods{
			// swagger:route PATCH /{username}/portfolios/{portfolio} portfolios portfolioUpdate
			//
			// Update a portfolio
			//
			// Update a portfolio
			//
			//   Consumes:
			//   - application/json
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: Portfolio
			gz.Method{
				Type:        "PATCH",
				Description: "Edit a portfolio",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(NameOwnerHandler("portfolio", true, PortfolioUpdate))},
				},
			},
			// swagger:route DELETE /{username}/portfolios/{portfolio} portfolios deletePortfolio
			//
			// Delete a portfolio
			//
			// Deletes a portfolio given its owner and name.
			//
			//   Produces:
			//   - application/json
			//
			gz.Method{
				Type:        "DELETE",
				Description: "Deletes a single portfolio",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.Handler(NoResult(NameOwnerHandler("portfolio", true, PortfolioOwnerRemove)))},
				},
			},
		},
	},

	///////////
	// Users //
	///////////

	// Route that returns login information for a given JWT
	gz.Route{
		Name:        "Login",
		Description: "Login a user",
		URI:         "/login",
		Headers:     gz.AuthHeadersRequired,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			// swagger:route GET /login users loginUser
			//
			// Login user
			//
			// Returns information about the user associated with the given JWT.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: UserResponse
			gz.Method{
				Type:        "GET",
				Description: "Login a user",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(Login)},
				},
			},
		},
	},

	// Route that returns information about all users
	gz.Route{
		Name:        "Users",
		Description: "Route for all users",
		URI:         "/users",
		Headers:     gz.AuthHeadersOptional,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			// swagger:route GET /users users listUsers
			//
			// Get a list of users. Access limited to administrators.
			//
			// Returns a paginated list of users,
			// with pages of 20 users by default. Only system administrators can
			// access this route. The administrator can request a
			// different page with query parameter 'page' (first page is value 1).
			// The page size can be controlled with query parameter 'per_page',
			// with a maximum of 100 items per page.
			//
			//   Parameters:
			//   + name: Private-Token
			//     description: A personal access token.
			//     in: header
			//     required: true
			//     type: string
			//   + name: page
			//     description: Request a specific page of users.
			//     in: query
			//     required: false
			//     type: integer
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: UserResponses
			gz.Method{
				Type:        "GET",
				Description: "Get all users information",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: ".json", Handler: gz.JSONResult(PaginationHandler(UserList))},
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(PaginationHandler(UserList))},
				},
			},
			// swagger:route POST /users users createUser
			//
			// Create user
			//
			// Creates a new user. Note: the user identity will be retrieved from the passed JWT.
			//
			//   Consumes:
			//   - application/json
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: UserResponse
			gz.Method{
				Type:        "POST",
				Description: "Create a new user",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(UserCreate)},
				},
			},
		},
	},

	// Route that returns information about a user
	gz.Route{
		Name:        "UserIndex",
		Description: "Access information about a single user.",
		URI:         "/users/{username}",
		Headers:     gz.AuthHeadersOptional,
		Methods: gz.Methods{
			// swagger:route GET /users/{username} users singleUser
			//
			// Get a user
			//
			// Return a user given its username and a valid JWT.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: UserResponse
			gz.Method{
				Type:        "GET",
				Description: "Get user information",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: ".json", Handler: gz.JSONResult(NameHandler("username", false, UserIndex))},
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(NameHandler("username", false, UserIndex))},
				},
			},
		},

		SecureMethods: gz.SecureMethods{
			// swagger:route DELETE /users/{username} users deleteUser
			//
			// Delete a user
			//
			// Deletes a user given its username and a valid JWT.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			gz.Method{
				Type:        "DELETE",
				Description: "Remove a user",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(NameHandler("username", true, UserRemove))},
				},
			},

			// swagger:route PATCH /users/{username} users updateUser
			//
			// Update a user
			//
			// Updates a user given its username and a valid JWT.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: UserResponse
			gz.Method{
				Type:        "PATCH",
				Description: "Update a user",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(NameHandler("username", true, UserUpdate))},
				},
			},
		},
	},

	// Routes to get and create access tokens.
	gz.Route{
		Name:        "AccessTokens",
		Description: "Routes to get and create access tokens.",
		URI:         "/users/{username}/access-tokens",
		Headers:     gz.AuthHeadersRequired,
		Methods:     gz.Methods{},

		SecureMethods: gz.SecureMethods{
			// swagger:route GET /users/{username}/access-tokens users getAccessToken
			//
			// Get the acccess tokens for a user.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			gz.Method{
				Type:        "GET",
				Description: "Get a user's access tokens",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(PaginationHandlerWithUser(AccessTokenList, true))},
				},
			},

			// swagger:route POST /users/{username}/access-tokens users createAccessToken
			//
			// Creates an access token.
			//
			// Creates an access token for a user.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			gz.Method{
				Type:        "POST",
				Description: "Create an access token",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(NameHandler("username", true, AccessTokenCreate))},
				},
			},
		},
	},

	// Routes to revoke access tokens
	gz.Route{
		Name:        "AccessTokens",
		Description: "Route to revoke access tokens.",
		URI:         "/users/{username}/access-tokens/revoke",
		Headers:     gz.AuthHeadersRequired,
		Methods:     gz.Methods{},

		SecureMethods: gz.SecureMethods{
			// swagger:route POST /users/{username}/access-tokens/revoke users revokeAccessToken
			//
			// Delete an acccess token that belongs to a user.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			gz.Method{
				Type:        "POST",
				Description: "Delete a user's access token",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(NameHandler("username", true, AccessTokenDelete))},
				},
			},
		},
	},

	////////////////
	// Categories //
	////////////////

	// Categories route with slug
	gz.Route{
		Name:        "Categories",
		Description: "Routes for categories with slug",
		URI:         "/categories/{slug}",
		Headers:     gz.AuthHeadersOptional,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			gz.Method{
				Type:        "PATCH",
				Description: "Update a category",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{
						Extension: "",
						Handler:   gz.JSONResult(CategoryUpdate),
					},
				},
			},
			gz.Method{
				Type:        "DELETE",
				Description: "Delete a category",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{
						Extension: "",
						Handler:   gz.JSONResult(CategoryDelete),
					},
				},
			},
		},
	},

	// Categories route
	// GET: Get the list of categories
	// POST: Create a new category
	gz.Route{
		Name:        "Categories",
		Description: "Route for categories",
		URI:         "/categories",
		Headers:     gz.AuthHeadersOptional,
		Methods: gz.Methods{
			gz.Method{
				Type:        "GET",
				Description: "Get all categories",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{
						Extension: ".json",
						Handler:   gz.JSONResult(CategoryList),
					},
					gz.FormatHandler{
						Extension: "",
						Handler:   gz.JSONResult(CategoryList),
					},
				},
			},
		},
		SecureMethods: gz.SecureMethods{
			gz.Method{
				Type:        "POST",
				Description: "Create a new category",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{
						Extension: "",
						Handler:   gz.JSONResult(CategoryCreate),
					},
				},
			},
		},
	},

	// Route to create an elastic search config
	gz.Route{
		Name:        "ElasticSearch",
		Description: "Route to create an ElasticSearch config",
		URI:         "/admin/search",
		Headers:     gz.AuthHeadersOptional,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			// swagger:route GET /admin/search search elasticSearchUpdate
			//
			// Get a list of the available ElasticSearch configurations.
			//
			// Zero or more ElasticSearch configurations may be specified. The
			// configuration marked as `primary` is the active ElasticSearch server.
			//
			//   Parameters:
			//   + name: Private-Token
			//     description: A personal access token.
			//     in: header
			//     required: true
			//     type: string
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: ElasticSearchConfigs
			gz.Method{
				Type:        "GET",
				Description: "Gets a list of the ElasticSearch configs",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(ListElasticSearchHandler)},
				},
			},

			// swagger:route POST /admin/search search elasticSearchUpdate
			//
			// Creates an ElasticSearch server configuration.
			//
			// Use this route to register a new ElasticSearch server.
			//
			//   Parameters:
			//   + name: Private-Token
			//     description: A personal access token.
			//     in: header
			//     required: true
			//     type: string
			//   + name: address
			//     description: URL address of an Elastic Search server.
			//     in: body
			//     required: true
			//     type: string
			//   + name: primary
			//     description: "true" to make this configuration the primary config.
			//     in: body
			//     required: false
			//     type: string
			//     default: false
			//   + name: username
			//     description: Username for ElasticSearch authentication
			//     in: body
			//     required: false
			//     type: string
			//   + name: password
			//     description: Password for ElasticSearch authentication
			//     in: body
			//     required: false
			//     type: string
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: ElasticSearchConfig
			gz.Method{
				Type:        "POST",
				Description: "Creates an ElasticSearch config",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(CreateElasticSearchHandler)},
				},
			},
		},
	},
	// Route to reconnect to the primary elastic search config
	gz.Route{
		Name:        "ElasticSearch",
		Description: "Route to reconnect to the primary elastic search config",
		URI:         "/admin/search/reconnect",
		Headers:     gz.AuthHeadersOptional,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			// swagger:route GET /admin/search/reconnect search elasticSearchUpdate
			//
			// Reconnects to the primary ElasticSearch server.
			//
			//   Parameters:
			//   + name: Private-Token
			//     description: A personal access token.
			//     in: header
			//     required: true
			//     type: string
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: AdminSearchResponse
			gz.Method{
				Type:        "GET",
				Description: "Reconnect to the primary ElasticSearch config",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(ReconnectElasticSearchHandler)},
				},
			},
		},
	},
	// Route to rebuild to the primary elastic search indices
	gz.Route{
		Name:        "ElasticSearch",
		Description: "Route to rebuild to the primary elastic search indices",
		URI:         "/admin/search/rebuild",
		Headers:     gz.AuthHeadersOptional,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			// swagger:route GET /admin/search/rebuild search elasticSearchUpdate
			//
			// Rebuilds the primary ElasticSearch indices.
			//
			// Rebuilding the indices may take several minutes. Use this route when
			// or if the ElasticSearch indices have become out of date.
			//
			//   Parameters:
			//   + name: Private-Token
			//     description: A personal access token.
			//     in: header
			//     required: true
			//     type: string
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: AdminSearchResponse
			gz.Method{
				Type:        "GET",
				Description: "Rebuild the primary ElasticSearch indices",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(RebuildElasticSearchHandler)},
				},
			},
		},
	},
	// Route to update to the primary elastic search indices
	gz.Route{
		Name:        "ElasticSearch",
		Description: "Route to update to the primary elastic search indices",
		URI:         "/admin/search/update",
		Headers:     gz.AuthHeadersOptional,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			// swagger:route GET /admin/search/update search elasticSearchUpdate
			//
			// Updates the primary ElasticSearch servers indices.
			//
			// This route will populate the primary ElasticSearch server with new
			// data contained in the database. This route may take several
			// minutes to complete.
			//
			//   Parameters:
			//   + name: Private-Token
			//     description: A personal access token.
			//     in: header
			//     required: true
			//     type: string
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: AdminSearchResponse
			gz.Method{
				Type:        "GET",
				Description: "Update the primary ElasticSearch indices",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(UpdateElasticSearchHandler)},
				},
			},
		},
	},
	// Route to manage an elastic search config
	gz.Route{
		Name:        "ElasticSearch",
		Description: "Route to manage an ElasticSearch config",
		URI:         "/admin/search/{config_id}",
		Headers:     gz.AuthHeadersOptional,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			// swagger:route DELETE /admin/search/{config_id} search elasticSearchUpdate
			//
			// Deletes an ElasticSearch server configuration.
			//
			// Use this route to remove an ElasticSearch configuration.
			//
			//   Parameters:
			//   + name: Private-Token
			//     description: A personal access token.
			//     in: header
			//     required: true
			//     type: string
			//   + name: config_id
			//     description: ID of the ElasticSearch configuration.
			//     in: path
			//     required: true
			//     type: integer
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: ElasticSearchConfig
			gz.Method{
				Type:        "DELETE",
				Description: "Deletes an ElasticSearch config",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(DeleteElasticSearchHandler)},
				},
			},
			// swagger:route PATCH /admin/search/{config_id} search elasticSearchUpdate
			//
			// Updates an ElasticSearch server configuration.
			//
			// Set the username, password, address, and primary status of an
			// ElasticSearch server configuration.
			//
			//   Parameters:
			//   + name: Private-Token
			//     description: A personal access token.
			//     in: header
			//     required: true
			//     type: string
			//   + name: config_id
			//     description: ID of the ElasticSearch configuration.
			//     in: path
			//     required: true
			//     type: integer
			//   + name: address
			//     description: URL address of an Elastic Search server.
			//     in: body
			//     required: true
			//     type: string
			//   + name: primary
			//     description: "true" to make this configuration the primary config.
			//     in: body
			//     required: false
			//     type: string
			//     default: false
			//   + name: username
			//     description: Username for ElasticSearch authentication
			//     in: body
			//     required: false
			//     type: string
			//   + name: password
			//     description: Password for ElasticSearch authentication
			//     in: body
			//     required: false
			//     type: string
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: backendError
			//     200: ElasticSearchConfig
			gz.Method{
				Type:        "PATCH",
				Description: "Modify an ElasticSearch config",
				// Format handlers
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(ModifyElasticSearchHandler)},
				},
			},
		},
	},
} // routes
