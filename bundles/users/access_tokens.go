package users

import (
	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
)

// GetUserByIdentity returns a UserResponse for the user with the given
// identity.
func GetUserByIdentity(tx *gorm.DB, identity string) (*UserResponse, *gz.ErrMsg) {
	user, em := ByIdentity(tx, identity, false)
	if em != nil {
		return nil, em
	}

	ur := CreateUserResponse(tx, user, user)
	return &ur, nil
}

// AccessTokenList returns a paginated list with the user's access tokens.
func AccessTokenList(p *gz.PaginationRequest, tx *gorm.DB,
	reqUser *User) (*gz.AccessTokens, *gz.PaginationResult, *gz.ErrMsg) {

	var accessTokens gz.AccessTokens

	q := tx.Model(&gz.AccessToken{}).Where("user_id = ?", reqUser.ID)

	pagination, err := gz.PaginateQuery(q, &accessTokens, *p)
	if err != nil {
		return nil, nil, gz.NewErrorMessageWithBase(gz.ErrorInvalidPaginationRequest, err)
	}
	if !pagination.PageFound {
		return nil, nil, gz.NewErrorMessage(gz.ErrorPaginationPageNotFound)
	}

	// Strip out the keys
	for i := range accessTokens {
		accessTokens[i].Key = ""
	}

	return &accessTokens, pagination, nil
}

// AccessTokenDelete removes a personal access token. This function requires the user's JWT, which
// means that a personal access token cannot be used to remove access token.
func AccessTokenDelete(jwtUser *User, tx *gorm.DB, accessToken gz.AccessToken) (interface{}, *gz.ErrMsg) {

	// Get the token.
	var token gz.AccessToken
	if err := tx.Model(jwtUser).Related(&jwtUser.AccessTokens).Where(
		"prefix = ? AND name = ?", accessToken.Prefix, accessToken.Name).First(&token).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	// Permanently delete the token
	tx.Unscoped().Delete(&token)
	return nil, nil
}

// AccessTokenCreate creates a new access token for a user.
func AccessTokenCreate(jwtUser *User, tx *gorm.DB, accessTokenCreateRequest gz.AccessTokenCreateRequest) (interface{}, *gz.ErrMsg) {

	newToken, saltedToken, err := accessTokenCreateRequest.Create(tx)

	if err != nil {
		return nil, err
	}

	tx.Model(jwtUser).Association("AccessTokens").Append(saltedToken)
	return newToken, nil
}
