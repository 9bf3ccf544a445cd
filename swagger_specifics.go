package main

import (
	"github.com/gazebo-web/gz-go/v7"
	"github.com/showcase-web/portfolio-server/bundles/portfolios"
)

// This module contains swagger specifics related to doc generation.
// The are defined as private to avoid issues with linter and swagger
// requesting conflicting comments on types.

/////////////////////////////////////////////////
///////  swagger responses
/////////////////////////////////////////////////

// Array of Portfolios
// swagger:response jsonPortfolios
type jsonPortfolios struct {
	// In: body
	Portfolios portfolios.PortfolioResponses
}

/////////////////////////////////////////////////
///////  swagger Parameters
/////////////////////////////////////////////////

// swagger:parameters listOwnerPortfolios singleOwnerPortfolio singleUser deleteUser
type userInPath struct {
	// in: path
	Username string `json:"username"`
}

// swagger:parameters singleOwnerPortfolio
type portfolioInPath struct {
	// Portfolio name
	// in: path
	Portfolio string `json:"portfolio"`
}

// swagger:parameters listPortfolios listOwnerPortfolios
type listPortfoliosParams struct {
	// Search query
	// in: query
	SearchQuery string `json:"q"`

	// in: query
	// enum: asc, desc
	// default: desc
	Order string `json:"order"`

	// Category slug to filter by
	// in: query
	Category string `json:"category"`

	// enum: draft, published
	// in: query
	Status string `json:"status"`
}

// swagger:parameters listUsers listPortfolios listOwnerPortfolios
type paginationParams struct {
	// The page to return
	// Minimum: 1
	// default: 1
	// in: query
	Page int `json:"page"`

	// Size of the pages
	// Minimum: 1
	// Maximum: 100
	// default: 20
	// in: query
	PageSize int `json:"per_page"`
}

// CreateUser is used to represent user input in swagger documentation.
type createUserPayload struct {
	// Username
	//
	// Required: true
	Username *string `json:"username,omitempty"`

	// email
	// Required: true
	Email *string `json:"email,omitempty"`

	// Name
	Name *string `json:"name,omitempty"`

	// Bio
	Bio *string `json:"bio,omitempty"`
}

// swagger:parameters createUser
// See: https://goswagger.io/generate/spec/params.html
type createUserParam struct {
	// The user data
	//
	// required: true
	// in:body
	User createUserPayload `json:"user"`
}

// swagger:parameters createPortfolio
type createPortfolioParam struct {
	// Portfolio data
	//
	// required: true
	// in:body
	Portfolio portfolios.CreatePortfolio `json:"portfolio"`
}

/////////////////////////////////////////////////
///////  swagger Errors
/////////////////////////////////////////////////

// Backend error serialized as JSON
// swagger:response backendError
type backendError struct {
	// In: body
	ErrMsg gz.ErrMsg
}
