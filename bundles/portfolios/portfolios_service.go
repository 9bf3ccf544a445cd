package portfolios

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/showcase-web/portfolio-server/bundles/category"
	"github.com/showcase-web/portfolio-server/bundles/users"
	"github.com/showcase-web/portfolio-server/globals"
	"github.com/showcase-web/portfolio-server/permissions"
)

// Service is the main struct exported by this Portfolios Service.
// It was meant as a way to structure code and help future extensions.
type Service struct{}

// PortfolioResponse stores portfolio information used in REST responses.
//
// swagger:model
type PortfolioResponse struct {
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
	Name            string   `json:"name"`
	Owner           string   `json:"owner"`
	Description     string   `json:"description,omitempty"`
	URLName         string   `json:"url_name,omitempty"`
	Likes           int      `json:"likes"`
	Views           int      `json:"views"`
	Status          string   `json:"status"`
	PublicationDate string   `json:"publication_date,omitempty"`
	ModifyDate      string   `json:"modify_date,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Categories      []string `json:"categories,omitempty"`
	ThumbnailURL    string   `json:"thumbnail_url,omitempty"`
	DemoURL         string   `json:"demo_url,omitempty"`
	RepoURL         string   `json:"repo_url,omitempty"`
	Private         bool     `json:"private"`
	IsLiked         bool     `json:"is_liked,omitempty"`
}

// PortfolioResponses is a slice of PortfolioResponse
//
// swagger:model
type PortfolioResponses []PortfolioResponse

// LikeResponse stores the result of a like toggle.
//
// swagger:model
type LikeResponse struct {
	// Liked is true if the portfolio is liked by the user after the toggle.
	Liked bool `json:"liked"`
	// Likes is the resulting like count of the portfolio.
	Likes int `json:"likes"`
}

// ViewResponse stores the view count of a portfolio.
//
// swagger:model
type ViewResponse struct {
	Views int `json:"views"`
}

// GetPortfolio returns a portfolio by its name and owner's name.
func (ps *Service) GetPortfolio(tx *gorm.DB, owner, name string,
	user *users.User) (*Portfolio, *gz.ErrMsg) {

	// Get the portfolio
	portfolio, err := GetPortfolioByName(tx, name, owner)
	if err != nil {
		em := gz.NewErrorMessageWithArgs(gz.ErrorNameNotFound, err, []string{name})
		return nil, em
	}

	// Drafts are only visible to users that can write to the resource.
	restricted := portfolio.IsDraft() || (portfolio.Private != nil && *portfolio.Private)

	// make sure the user has the correct permissions
	if ok, em := users.CheckPermissions(tx, *portfolio.UUID, user, restricted, permissions.Read); !ok {
		return nil, em
	}

	return portfolio, nil
}

// GetPortfolioResponse returns a PortfolioResponse, given a portfolio name and
// owner. The user argument is the user requesting the operation.
func (ps *Service) GetPortfolioResponse(ctx context.Context, tx *gorm.DB, owner,
	name string, user *users.User) (*PortfolioResponse, *gz.ErrMsg) {

	portfolio, em := ps.GetPortfolio(tx, owner, name, user)
	if em != nil {
		return nil, em
	}

	response := ps.PortfolioToResponse(portfolio)

	if user != nil {
		if pl, _ := ps.getPortfolioLike(tx, portfolio, user); pl != nil {
			response.IsLiked = true
		}
	}

	return response, nil
}

// PortfolioList returns a paginated list of portfolios.
// If the likedBy argument is set, it will return the list of portfolios liked by a user.
// This function returns a list of PortfolioResponse that can then be marshalled into json.
func (ps *Service) PortfolioList(p *gz.PaginationRequest, tx *gorm.DB, owner *string,
	order, search, status string, likedBy *users.User, user *users.User,
	categories *category.Categories) (*PortfolioResponses, *gz.PaginationResult, *gz.ErrMsg) {

	var portfolioList Portfolios
	// Create query
	q := QueryForPortfolios(tx)

	if categories != nil && len(*categories) > 0 {
		var categoryIds []uint
		for _, c := range *categories {
			categoryIds = append(categoryIds, c.ID)
		}
		subquery := tx.Table("portfolio_categories").Select("DISTINCT(portfolio_id)").Where("category_id IN (?)", categoryIds).QueryExpr()
		q = q.Where("id IN (?)", subquery)
	}

	// Override default Order BY, unless the user explicitly requested ASC order
	if !(order != "" && strings.ToLower(order) == "asc") {
		// Important: you need to reassign 'q' to keep the updated query
		q = q.Order("created_at desc, id", true)
	}

	// Check if we should return the list of liked portfolios instead.
	if likedBy != nil {
		q = q.Joins("JOIN portfolio_likes ON portfolios.id = portfolio_likes.portfolio_id").Where("user_id = ?", &likedBy.ID)
		q = QueryForPortfolioVisibility(q, nil, user)
	} else {

		// filter resources based on privacy and publication status
		q = QueryForPortfolioVisibility(q, owner, user)

		// Apply the explicit status filter, if requested. Drafts can only be
		// listed by their owner.
		if status != "" {
			if status == StatusDraft {
				isOwner := user != nil && owner != nil && *user.Username == *owner
				sysAdmin := user != nil && globals.Permissions.IsSystemAdmin(*user.Username)
				if !isOwner && !sysAdmin {
					return nil, nil, gz.NewErrorMessage(gz.ErrorUnauthorized)
				}
			}
			q = q.Where("status = ?", status)
		}

		// If a search criteria was defined, then also apply a fulltext search
		// on "portfolios + tags"
		if search != "" {
			// Trim leading and trailing whitespaces
			searchStr := strings.TrimSpace(search)
			if len(searchStr) > 0 {
				// Note: this is a fulltext search IN NATURAL LANGUAGE MODE.
				// See https://dev.mysql.com/doc/refman/5.7/en/fulltext-search.html for other
				// modes, eg BOOLEAN and WITH QUERY EXPANSION modes.

				// To avoid fighting against making GORM with complex queries work we
				// first execute a raw query to get the matching portfolio IDs, and
				// then ask GORM to retrieve those portfolios.
				sq := "(SELECT portfolio_id FROM (SELECT * FROM tags WHERE MATCH (name) AGAINST (?)) AS a " +
					"INNER JOIN portfolio_tags ON tag_id = id) UNION " +
					"(SELECT id FROM portfolios WHERE MATCH (name, description) AGAINST (?));"
				var ids []int
				if err := tx.Raw(sq, searchStr, searchStr).Pluck("portfolio_id", &ids).Error; err != nil {
					em := gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
					return nil, nil, em
				}
				// Now that we got the IDs, use them in the main query
				q = q.Where("id IN (?)", ids)
			}
		}
	}

	// Use pagination
	paginationResult, err := gz.PaginateQuery(q, &portfolioList, *p)
	if err != nil {
		em := gz.NewErrorMessageWithBase(gz.ErrorInvalidPaginationRequest, err)
		return nil, nil, em
	}
	if !paginationResult.PageFound {
		em := gz.NewErrorMessage(gz.ErrorPaginationPageNotFound)
		return nil, nil, em
	}

	var responses PortfolioResponses
	for _, portfolio := range portfolioList {
		response := ps.PortfolioToResponse(&portfolio)
		responses = append(responses, *response)
	}

	return &responses, paginationResult, nil
}

// QueryForPortfolioVisibility modifies a query to only return portfolios
// visible to the given user. Anonymous users and users other than the owner
// only see public published portfolios.
func QueryForPortfolioVisibility(q *gorm.DB, owner *string, user *users.User) *gorm.DB {
	if owner != nil {
		isOwner := user != nil && *user.Username == *owner
		sysAdmin := user != nil && globals.Permissions.IsSystemAdmin(*user.Username)
		if isOwner || sysAdmin {
			q = q.Where("owner = ?", *owner)
		} else {
			q = q.Where("owner = ? AND private = ? AND status = ?", *owner, 0, StatusPublished)
		}
	} else {
		if user == nil {
			q = q.Where("private = ? AND status = ?", 0, StatusPublished)
		} else if globals.Permissions.IsSystemAdmin(*user.Username) {
			// no extra filter. Admins see everything.
		} else {
			q = q.Where("(private = ? AND status = ?) OR owner = ?", 0, StatusPublished, *user.Username)
		}
	}
	return q
}

// RemovePortfolio removes a portfolio. The user argument is the requesting
// user. It is used to check if the user can perform the operation.
// Likes of the removed portfolio are removed as well. View records are kept.
func (ps *Service) RemovePortfolio(ctx context.Context, tx *gorm.DB, owner,
	name string, user *users.User) *gz.ErrMsg {

	portfolio, em := ps.GetPortfolio(tx, owner, name, user)
	if em != nil {
		return em
	}

	// make sure the user requesting removal has the correct permissions
	ok, err := globals.Permissions.IsAuthorized(*user.Username, *portfolio.UUID, permissions.Write)
	if !ok {
		return err
	}

	// Remove the likes of this portfolio. Like rows are hard deleted, so they
	// must go before the portfolio does.
	if err := tx.Where("portfolio_id = ?", portfolio.ID).Delete(&PortfolioLike{}).Error; err != nil {
		return gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	if err := tx.Delete(portfolio).Error; err != nil {
		return gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	// remove resource from permission db
	ok, em = globals.Permissions.RemoveResource(*portfolio.UUID)
	if !ok {
		return em
	}

	// Remove the portfolio from ElasticSearch
	ElasticSearchRemovePortfolio(ctx, portfolio)

	return nil
}

// PortfolioToResponse creates a new PortfolioResponse from the given portfolio.
func (ps *Service) PortfolioToResponse(portfolio *Portfolio) *PortfolioResponse {
	response := PortfolioResponse{
		// Note: time.RFC3339 is the format expected by Go's JSON unmarshal
		CreatedAt: portfolio.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: portfolio.UpdatedAt.UTC().Format(time.RFC3339),
		Name:      *portfolio.Name,
		Owner:     *portfolio.Owner,
		Likes:     portfolio.Likes,
		Views:     portfolio.Views,
	}

	// Optional fields
	if portfolio.Status != nil {
		response.Status = *portfolio.Status
	} else {
		response.Status = StatusDraft
	}
	if portfolio.PublicationDate != nil {
		response.PublicationDate = portfolio.PublicationDate.UTC().Format(time.RFC3339)
	}
	if portfolio.ModifyDate != nil {
		response.ModifyDate = portfolio.ModifyDate.UTC().Format(time.RFC3339)
	}
	if portfolio.Description != nil {
		response.Description = *portfolio.Description
	}
	if portfolio.URLName != nil {
		response.URLName = *portfolio.URLName
	}
	if portfolio.DemoURL != nil {
		response.DemoURL = *portfolio.DemoURL
	}
	if portfolio.RepoURL != nil {
		response.RepoURL = *portfolio.RepoURL
	}
	if portfolio.Private != nil {
		response.Private = *portfolio.Private
	}

	if portfolio.ThumbnailURL != nil {
		response.ThumbnailURL = *portfolio.ThumbnailURL
	} else {
		// Fall back to the route that serves the portfolio itself.
		response.ThumbnailURL = fmt.Sprintf("/%s/portfolios/%s", *portfolio.Owner,
			url.PathEscape(*portfolio.Name))
	}

	if len(portfolio.Tags) > 0 {
		response.Tags = TagsToStrSlice(portfolio.Tags)
	}

	if len(portfolio.Categories) > 0 {
		response.Categories = category.CategoriesToStrSlice(portfolio.Categories)
	}

	return &response
}

// getPortfolioLike returns a portfolio like.
func (ps *Service) getPortfolioLike(tx *gorm.DB, portfolio *Portfolio, user *users.User) (*PortfolioLike, *gz.ErrMsg) {
	var portfolioLike PortfolioLike
	if err := tx.Where("user_id = ? AND portfolio_id = ?", user.ID, portfolio.ID).First(&portfolioLike).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorIDNotFound, err)
	}
	return &portfolioLike, nil
}

// IsLiked returns true if the given user has an active like on the portfolio.
func (ps *Service) IsLiked(tx *gorm.DB, owner, name string, user *users.User) (bool, *gz.ErrMsg) {
	// Anonymous callers simply have no like. Not an error.
	if user == nil {
		return false, nil
	}

	portfolio, em := ps.GetPortfolio(tx, owner, name, user)
	if em != nil {
		return false, em
	}

	pl, _ := ps.getPortfolioLike(tx, portfolio, user)
	return pl != nil, nil
}

// TogglePortfolioLike flips the like state of a portfolio for the given user.
// A user that has not liked the portfolio gets a like registered; a user with
// an active like gets it removed. Repeated requests alternate between the two
// states and never change the counter by more than one.
// Returns the resulting like state and like count, or a gz.errMsg.
func (ps *Service) TogglePortfolioLike(tx *gorm.DB, owner, name string,
	user *users.User) (*LikeResponse, *gz.ErrMsg) {

	if user == nil {
		return nil, gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}

	portfolio, em := ps.GetPortfolio(tx, owner, name, user)
	if em != nil {
		return nil, em
	}

	// Unlike first. If a like row was removed this request was an unlike.
	q := tx.Where("user_id = ? AND portfolio_id = ?", &user.ID, &portfolio.ID).Delete(&PortfolioLike{})
	if q.Error != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, q.Error)
	}
	if q.RowsAffected > 0 {
		// Decrease the number of likes by the number of removed rows. The
		// unique index on (user_id, portfolio_id) guarantees this is 1.
		if em := ps.decreaseLikeCounter(tx, portfolio, uint(q.RowsAffected)); em != nil {
			return nil, em
		}
		likes, em := ps.readLikeCounter(tx, portfolio)
		if em != nil {
			return nil, em
		}
		return &LikeResponse{Liked: false, Likes: likes}, nil
	}

	// No active like. Register one.
	portfolioLike := PortfolioLike{UserID: &user.ID, PortfolioID: &portfolio.ID}
	if err := tx.Create(&portfolioLike).Error; err != nil {
		// A concurrent request got its like in first and tripped the unique
		// index. Resolve the race by taking the unlike branch.
		q := tx.Where("user_id = ? AND portfolio_id = ?", &user.ID, &portfolio.ID).Delete(&PortfolioLike{})
		if q.Error != nil || q.RowsAffected == 0 {
			return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
		}
		if em := ps.decreaseLikeCounter(tx, portfolio, uint(q.RowsAffected)); em != nil {
			return nil, em
		}
		likes, em := ps.readLikeCounter(tx, portfolio)
		if em != nil {
			return nil, em
		}
		return &LikeResponse{Liked: false, Likes: likes}, nil
	}

	// Update the number of likes of the portfolio.
	if em := ps.increaseLikeCounter(tx, portfolio, 1); em != nil {
		return nil, em
	}
	likes, em := ps.readLikeCounter(tx, portfolio)
	if em != nil {
		return nil, em
	}
	return &LikeResponse{Liked: true, Likes: likes}, nil
}

// CreatePortfolioView registers a single view of a portfolio and increments
// its view counter. The user argument is optional; anonymous views are
// recorded without a user.
// Returns the resulting view count, or a gz.errMsg.
func (ps *Service) CreatePortfolioView(tx *gorm.DB, owner, name string,
	user *users.User, agent string) (*ViewResponse, *gz.ErrMsg) {

	portfolio, em := ps.GetPortfolio(tx, owner, name, user)
	if em != nil {
		return nil, em
	}

	portfolioView := PortfolioView{PortfolioID: &portfolio.ID, UserAgent: agent}
	if user != nil {
		portfolioView.UserID = &user.ID
	}
	if err := tx.Create(&portfolioView).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	// Update the number of views of the portfolio.
	if em := ps.increaseViewCounter(tx, portfolio, 1); em != nil {
		return nil, em
	}

	views, em := ps.readViewCounter(tx, portfolio)
	if em != nil {
		return nil, em
	}
	return &ViewResponse{Views: views}, nil
}

// readLikeCounter returns the current like count of a portfolio from DB.
func (ps *Service) readLikeCounter(tx *gorm.DB, portfolio *Portfolio) (int, *gz.ErrMsg) {
	var fresh Portfolio
	if err := tx.Model(&Portfolio{}).Where("id = ?", portfolio.ID).First(&fresh).Error; err != nil {
		return 0, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}
	return fresh.Likes, nil
}

// readViewCounter returns the current view count of a portfolio from DB.
func (ps *Service) readViewCounter(tx *gorm.DB, portfolio *Portfolio) (int, *gz.ErrMsg) {
	var fresh Portfolio
	if err := tx.Model(&Portfolio{}).Where("id = ?", portfolio.ID).First(&fresh).Error; err != nil {
		return 0, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}
	return fresh.Views, nil
}

// applyExpression updates a portfolio using a SQL expression that can perform
// operations on referred values.
func (ps *Service) applyExpression(tx *gorm.DB, portfolio *Portfolio, field string, expr *gorm.SqlExpr) *gz.ErrMsg {
	if err := tx.Model(portfolio).Update(field, expr).Error; err != nil {
		return gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}
	return nil
}

// ComputeAllCounters is an initialization function that iterates
// all portfolios and updates their likes and views counter, based on the
// number of records in corresponding tables portfolio_likes and
// portfolio_views.
func (ps *Service) ComputeAllCounters(tx *gorm.DB) *gz.ErrMsg {
	var portfolioList Portfolios
	if err := tx.Model(&Portfolio{}).Unscoped().Find(&portfolioList).Error; err != nil {
		return gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}
	for _, portfolio := range portfolioList {
		if _, em := ps.computeLikeCounter(tx, &portfolio); em != nil {
			return em
		}
		if _, em := ps.computeViewCounter(tx, &portfolio); em != nil {
			return em
		}
	}
	return nil
}

// computeLikeCounter counts the number of likes and updates the portfolio accordingly.
// This query is VERY EXPENSIVE. Only use to set the state if it doesn't exist.
// For all other purposes, the use of increase/decreaseLikeCounter is recommended.
func (ps *Service) computeLikeCounter(tx *gorm.DB, portfolio *Portfolio) (int, *gz.ErrMsg) {
	var counter int
	// Count the number of likes of the portfolio.
	if err := tx.Model(&PortfolioLike{}).Where("portfolio_id = ?", portfolio.ID).Count(&counter).Error; err != nil {
		return 0, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}
	// Update the number of likes of the portfolio.
	if err := tx.Model(portfolio).Update("likes", counter).Error; err != nil {
		return 0, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}
	return counter, nil
}

// increaseLikeCounter increases the current like count of a portfolio.
func (ps *Service) increaseLikeCounter(tx *gorm.DB, portfolio *Portfolio, delta uint) *gz.ErrMsg {
	return ps.applyExpression(tx, portfolio, "likes", gorm.Expr("likes + ?", delta))
}

// decreaseLikeCounter decreases the current like count of a portfolio.
func (ps *Service) decreaseLikeCounter(tx *gorm.DB, portfolio *Portfolio, delta uint) *gz.ErrMsg {
	return ps.applyExpression(tx, portfolio, "likes", gorm.Expr("likes - ?", delta))
}

// computeViewCounter counts the number of views and updates the portfolio accordingly.
// This query is VERY EXPENSIVE. Only use to set the state if it doesn't exist.
// For all other purposes, the use of increaseViewCounter is recommended.
func (ps *Service) computeViewCounter(tx *gorm.DB, portfolio *Portfolio) (int, *gz.ErrMsg) {
	// Count the number of views of the portfolio.
	var count int
	if err := tx.Model(&PortfolioView{}).Where("portfolio_id = ?", portfolio.ID).Count(&count).Error; err != nil {
		return 0, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}
	if err := tx.Model(portfolio).Update("Views", count).Error; err != nil {
		return 0, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}
	return count, nil
}

// increaseViewCounter increases the current view count of a portfolio.
func (ps *Service) increaseViewCounter(tx *gorm.DB, portfolio *Portfolio, delta uint) *gz.ErrMsg {
	return ps.applyExpression(tx, portfolio, "views", gorm.Expr("views + ?", delta))
}

// UpdatePortfolio updates a portfolio. The user argument is the requesting
// user. It is used to check if the user can perform the operation.
// Returns the updated portfolio.
func (ps *Service) UpdatePortfolio(ctx context.Context, tx *gorm.DB, owner,
	name string, up UpdatePortfolio, user *users.User) (*Portfolio, *gz.ErrMsg) {

	portfolio, em := ps.GetPortfolio(tx, owner, name, user)
	if em != nil {
		return nil, em
	}
	// Check user permissions
	ok, err := globals.Permissions.IsAuthorized(*user.Username, *portfolio.UUID, permissions.Write)
	if !ok {
		return nil, err
	}

	// Edit the portfolio description, if present.
	if up.Description != nil {
		tx.Model(&portfolio).Update("Description", *up.Description)
	}
	// Edit the portfolio tags, if present.
	if up.Tags != nil {
		tags, err := StrToTags(tx, *up.Tags)
		if err != nil {
			return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
		}
		if len(*tags) > globals.MaxTagsPerPortfolio {
			return nil, gz.NewErrorMessage(gz.ErrorFormInvalidValue)
		}
		tx.Model(&portfolio).Association("Tags").Replace(*tags)
	}

	if up.Categories != nil {

		sl := gz.StrToSlice(*up.Categories)

		cats, err := category.StrSliceToCategories(tx, sl)
		if err != nil {
			return nil, gz.NewErrorMessageWithBase(gz.ErrorFormInvalidValue, err)
		}

		if cats != nil {
			length := len(*cats)

			if length > globals.MaxCategoriesPerPortfolio {
				return nil, gz.NewErrorMessage(gz.ErrorFormInvalidValue)
			}

			if length == 0 {
				tx.Model(&portfolio).Association("Categories").Clear()
			} else {
				tx.Model(&portfolio).Association("Categories").Replace(cats)
			}
		}
	}

	if up.ThumbnailURL != nil {
		tx.Model(&portfolio).Update("ThumbnailURL", *up.ThumbnailURL)
	}
	if up.DemoURL != nil {
		tx.Model(&portfolio).Update("DemoURL", *up.DemoURL)
	}
	if up.RepoURL != nil {
		tx.Model(&portfolio).Update("RepoURL", *up.RepoURL)
	}

	// Update the publication status, if present. The publication date is set
	// the first time a portfolio goes from draft to published.
	if up.Status != nil {
		tx.Model(&portfolio).Update("Status", *up.Status)
		if *up.Status == StatusPublished && portfolio.PublicationDate == nil {
			tx.Model(&portfolio).Update("PublicationDate", time.Now())
		}
	}

	// Update the modification date.
	tx.Model(&portfolio).Update("ModifyDate", time.Now())

	// update portfolio privacy if present
	if up.Private != nil {
		// check if JWT user has permission to update the privacy setting.
		// Only the owner can do that.
		if ok, em := users.VerifyOwner(tx, *portfolio.Owner, *user.Username, permissions.Write); !ok {
			return nil, em
		}
		tx.Model(&portfolio).Update("Private", *up.Private)
	}

	ElasticSearchUpdatePortfolio(ctx, tx, *portfolio)

	return portfolio, nil
}

// CreatePortfolio creates a new portfolio.
// creator argument is the active user requesting the operation.
func (ps *Service) CreatePortfolio(ctx context.Context, tx *gorm.DB, cp CreatePortfolio,
	creator *users.User) (*Portfolio, *gz.ErrMsg) {

	// Set categories
	var categories *category.Categories
	if len(cp.Categories) > 0 {

		sl := gz.StrToSlice(cp.Categories)
		length := len(sl)

		if length > globals.MaxCategoriesPerPortfolio || length == 0 {
			return nil, gz.NewErrorMessage(gz.ErrorFormInvalidValue)
		}

		var err error
		categories, err = category.StrSliceToCategories(tx, sl)
		if err != nil {
			return nil, gz.NewErrorMessageWithBase(gz.ErrorFormInvalidValue, err)
		}
	}

	// Set the owner
	owner := cp.Owner
	if owner == "" {
		owner = *creator.Username
	} else {
		ok, em := users.VerifyOwner(tx, owner, *creator.Username, permissions.Read)
		if !ok {
			return nil, em
		}
	}

	// Sanity check: portfolio name should be unique for an owner
	if _, err := GetPortfolioByName(tx, cp.Name, owner); err == nil {
		return nil, gz.NewErrorMessageWithArgs(gz.ErrorResourceExists, nil, []string{cp.Name})
	}

	// Process the optional tags
	pTags, err := StrToTags(tx, cp.Tags)
	if err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}
	if len(*pTags) > globals.MaxTagsPerPortfolio {
		return nil, gz.NewErrorMessage(gz.ErrorFormInvalidValue)
	}

	private := false
	if cp.Private != nil {
		private = *cp.Private
	}

	status := cp.Status
	if status == "" {
		status = StatusDraft
	}

	// Create the Portfolio struct
	portfolio, err := NewPortfolioAndUUID(&cp.Name, &cp.URLName, &cp.Description,
		&owner, creator.Username, status, *pTags, private, categories)
	if err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorUnexpected, err)
	}

	if cp.ThumbnailURL != "" {
		portfolio.ThumbnailURL = &cp.ThumbnailURL
	}
	if cp.DemoURL != "" {
		portfolio.DemoURL = &cp.DemoURL
	}
	if cp.RepoURL != "" {
		portfolio.RepoURL = &cp.RepoURL
	}

	// If everything went OK then create the portfolio in DB.
	if err := tx.Create(&portfolio).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	// add read and write permissions
	if _, em := globals.Permissions.AddPermission(owner, *portfolio.UUID, permissions.Read); em != nil {
		return nil, em
	}
	if _, em := globals.Permissions.AddPermission(owner, *portfolio.UUID, permissions.Write); em != nil {
		return nil, em
	}

	ElasticSearchUpdatePortfolio(ctx, tx, portfolio)

	return &portfolio, nil
}
