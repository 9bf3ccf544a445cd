package main

import (
	"encoding/json"
	"net/http"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/showcase-web/portfolio-server/bundles/category"
	"github.com/showcase-web/portfolio-server/bundles/portfolios"
	"github.com/showcase-web/portfolio-server/bundles/users"
)

// PortfolioList returns the list of portfolios from a user. The returned
// value will be of type "portfolios.PortfolioResponses".
// It follows the func signature defined by type "searchFnHandler".
// You can request this method with the following curl request:
//
//	curl -k -X GET --url https://localhost:4430/1.0/portfolios
//
// or  curl -k -X GET --url https://localhost:4430/1.0/{username}/portfolios
func PortfolioList(p *gz.PaginationRequest, owner *string, order, search string,
	user *users.User, tx *gorm.DB, w http.ResponseWriter,
	r *http.Request) (interface{}, *gz.PaginationResult, *gz.ErrMsg) {

	ps := &portfolios.Service{}

	var categories category.Categories

	if categoryFilters, ok := r.URL.Query()["category"]; ok {
		for _, f := range categoryFilters {
			categories = portfolioListCategoryHelper(tx, f, categories)
		}
	}

	status := readStatusParam(r)

	return ps.PortfolioList(p, tx, owner, order, search, status, nil, user, &categories)
}

// portfolioListCategoryHelper appends a category to filter in portfolio list
func portfolioListCategoryHelper(tx *gorm.DB, filter string, categories category.Categories) category.Categories {
	if cat, err := category.BySlug(tx, filter); err == nil {
		categories = append(categories, *cat)
	}
	return categories
}

// PortfolioLikeList returns the list of portfolios liked by a certain user.
// The returned value will be of type "portfolios.PortfolioResponses".
// It follows the func signature defined by type "searchFnHandler".
// You can request this method with the following curl request:
//
//	curl -k -X GET --url https://localhost:4430/1.0/{username}/likes/portfolios
func PortfolioLikeList(p *gz.PaginationRequest, owner *string, order, search string,
	user *users.User, tx *gorm.DB, w http.ResponseWriter,
	r *http.Request) (interface{}, *gz.PaginationResult, *gz.ErrMsg) {

	likedBy, em := users.ByUsername(tx, *owner, true)
	if em != nil {
		return nil, nil, em
	}
	ps := &portfolios.Service{}
	return ps.PortfolioList(p, tx, owner, order, search, "", likedBy, user, nil)
}

// PortfolioOwnerIndex returns a single portfolio. The returned value will be of
// type "portfolios.PortfolioResponse".
// You can request this method with the following curl request:
//
//	curl -k -H "Content-Type: application/json" -X GET https://localhost:4430/1.0/{username}/portfolios/{portfolio_name}
func PortfolioOwnerIndex(owner, portfolioName string, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	ps := &portfolios.Service{}
	response, em := ps.GetPortfolioResponse(r.Context(), tx, owner, portfolioName, user)
	if em != nil {
		return nil, em
	}

	return response, nil
}

// PortfolioOwnerRemove removes a portfolio based on owner and name
// You can request this method with the following curl request:
//
//	curl -k -X DELETE --url https://localhost:4430/1.0/{username}/portfolios/{portfolio_name}
func PortfolioOwnerRemove(owner, portfolioName string, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	if em := (&portfolios.Service{}).RemovePortfolio(r.Context(), tx, owner, portfolioName, user); em != nil {
		return nil, em
	}

	// commit the DB transaction
	// Note: we commit the TX here on purpose, to be able to detect DB errors
	// before writing "data" to ResponseWriter. Once you write data (not headers)
	// into it the status code is set to 200 (OK).
	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return nil, nil
}

// PortfolioLikeToggle flips the like state of a portfolio for the requesting
// user. The same route serves like and unlike; the response reports the
// resulting state.
// You can request this method with the following cURL request:
//
//	curl -k -X POST https://localhost:4430/1.0/{username}/portfolios/{portfolio_name}/likes
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func PortfolioLikeToggle(owner, name string, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	response, em := (&portfolios.Service{}).TogglePortfolioLike(tx, owner, name, user)
	if em != nil {
		return nil, em
	}

	// commit the DB transaction
	// Note: we commit the TX here on purpose, to be able to detect DB errors
	// before writing "data" to ResponseWriter. Once you write data (not headers)
	// into it the status code is set to 200 (OK).
	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorUnexpected, err)
	}
	return nil, nil
}

// PortfolioLikeCheck reports whether the requesting user has an active like
// on the portfolio.
// You can request this method with the following cURL request:
//
//	curl -k -X GET https://localhost:4430/1.0/{username}/portfolios/{portfolio_name}/likes
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func PortfolioLikeCheck(owner, name string, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	liked, em := (&portfolios.Service{}).IsLiked(tx, owner, name, user)
	if em != nil {
		return nil, em
	}

	return struct {
		Liked bool `json:"liked"`
	}{Liked: liked}, nil
}

// PortfolioViewCreate registers a view of a portfolio and returns the
// resulting view count. Views are anonymous; a JWT is not required.
// You can request this method with the following cURL request:
//
//	curl -k -X POST https://localhost:4430/1.0/{username}/portfolios/{portfolio_name}/views
func PortfolioViewCreate(owner, name string, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	response, em := (&portfolios.Service{}).CreatePortfolioView(tx, owner, name,
		user, r.UserAgent())
	if em != nil {
		return nil, em
	}

	// commit the DB transaction
	// Note: we commit the TX here on purpose, to be able to detect DB errors
	// before writing "data" to ResponseWriter. Once you write data (not headers)
	// into it the status code is set to 200 (OK).
	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorUnexpected, err)
	}
	return nil, nil
}

// PortfolioCreate creates a new portfolio based on a json body. It returns a
// PortfolioResponse or an error.
// You can request this method with the following cURL request:
//
//	curl -k -H "Content-Type: application/json" -X POST
//	  -d '{"name":"my portfolio", "description":"a showcase"}'
//	  https://localhost:4430/1.0/portfolios --header 'authorization: Bearer <your-jwt-token-here>'
func PortfolioCreate(tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	// Extract the creator of the new portfolio from the request.
	jwtUser, ok, errMsg := getUserFromJWT(tx, r)
	if !ok {
		return nil, &errMsg
	}

	// portfolios.CreatePortfolio is the input form
	var cp portfolios.CreatePortfolio
	if em := ParseStruct(&cp, r, false); em != nil {
		return nil, em
	}

	ps := &portfolios.Service{}
	portfolio, em := ps.CreatePortfolio(r.Context(), tx, cp, jwtUser)
	if em != nil {
		return nil, em
	}

	// commit the DB transaction
	// Note: we commit the TX here on purpose, to be able to detect DB errors
	// before writing "data" to ResponseWriter. Once you write data (not headers)
	// into it the status code is set to 200 (OK).
	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}

	infoStr := "A new portfolio has been created:" +
		"\n\t name: " + *portfolio.Name +
		"\n\t owner: " + *portfolio.Owner +
		"\n\t creator: " + *portfolio.Creator +
		"\n\t uuid: " + *portfolio.UUID +
		"\n\t status: " + *portfolio.Status +
		"\n\t Tags:"
	for _, t := range portfolio.Tags {
		infoStr += *t.Name
	}
	gz.LoggerFromRequest(r).Info(infoStr)

	return ps.PortfolioToResponse(portfolio), nil
}

// PortfolioUpdate modifies an existing portfolio.
// You can request this method with the following cURL request:
//
//	curl -k -X PATCH -d '{"description":"New Description", "tags":"tag1,tag2"}'
//	  https://localhost:4430/1.0/{username}/portfolios/{portfolio_name} -H "Content-Type: application/json"
//	  -H 'Authorization: Bearer <A_VALID_AUTH0_JWT_TOKEN>'
func PortfolioUpdate(owner, portfolioName string, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	// portfolios.UpdatePortfolio is the input form
	var up portfolios.UpdatePortfolio
	if errMsg := ParseStruct(&up, r, false); errMsg != nil {
		return nil, errMsg
	}
	if up.IsEmpty() {
		return nil, gz.NewErrorMessage(gz.ErrorFormInvalidValue)
	}

	ps := &portfolios.Service{}
	portfolio, em := ps.UpdatePortfolio(r.Context(), tx, owner, portfolioName, up, user)
	if em != nil {
		return nil, em
	}

	infoStr := "Portfolio has been updated:" +
		"\n\t name: " + *portfolio.Name +
		"\n\t owner: " + *portfolio.Owner +
		"\n\t uuid: " + *portfolio.UUID
	gz.LoggerFromRequest(r).Info(infoStr)

	return ps.PortfolioToResponse(portfolio), nil
}
