package users

import (
	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
)

// User information
//
// swagger:model
type User struct {
	gorm.Model

	// Identity is the JWT subject ('sub' claim) associated to this user.
	Identity *string `json:"identity,omitempty"`

	// Person name
	Name *string `json:"name,omitempty"`

	// Username is unique in the showcase community
	Username *string `gorm:"not null;unique" json:"username,omitempty" validate:"required,min=3,alphanum"`

	Email *string `json:"email,omitempty" validate:"required,email"`

	// URL of the user's avatar image. Managed by the external media service.
	AvatarURL *string `json:"avatar_url,omitempty"`

	// University the user belongs to.
	University *string `json:"university,omitempty"`

	// Free form biography.
	Bio *string `gorm:"type:text" json:"bio,omitempty"`

	// PortfolioCount is the number of portfolios created by the user.
	PortfolioCount *uint `json:"portfolio_count,omitempty"`

	// LikedPortfolios is the number of portfolios the user has liked.
	LikedPortfolios *uint `json:"liked_portfolios,omitempty"`

	// AccessTokens are personal access tokens granted to a user by a user.
	AccessTokens gz.AccessTokens
}

// Users is an slice of User
type Users []User

// UserResponse stores the user display fields used in REST responses.
// It is the shape consumed by search/engagement result enrichment.
//
// swagger:model
type UserResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Email      string `json:"email,omitempty"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	University string `json:"university,omitempty"`
	Bio        string `json:"bio,omitempty"`
	SysAdmin   bool   `json:"sysadmin,omitempty"`
}

// UserResponses is a slice of UserResponse
//
// swagger:model
type UserResponses []UserResponse

// CreateUserInput encapsulates the data required to register a user.
type CreateUserInput struct {
	Name       string `json:"name" validate:"omitempty" form:"name"`
	Username   string `json:"username" validate:"required,min=3,alphanum,noforwardslash" form:"username"`
	Email      string `json:"email" validate:"required,email" form:"email"`
	AvatarURL  string `json:"avatar_url" validate:"omitempty" form:"avatarUrl"`
	University string `json:"university" validate:"omitempty,max=100" form:"university"`
	Bio        string `json:"bio" validate:"omitempty" form:"bio"`
}

// UpdateUserInput encapsulates the user fields that can be updated.
type UpdateUserInput struct {
	Name       *string `json:"name" validate:"omitempty" form:"name"`
	Email      *string `json:"email" validate:"omitempty,email" form:"email"`
	AvatarURL  *string `json:"avatar_url" validate:"omitempty" form:"avatarUrl"`
	University *string `json:"university" validate:"omitempty,max=100" form:"university"`
	Bio        *string `json:"bio" validate:"omitempty" form:"bio"`
}

// IsEmpty returns true is the struct is empty.
func (uu UpdateUserInput) IsEmpty() bool {
	return uu.Name == nil && uu.Email == nil && uu.AvatarURL == nil &&
		uu.University == nil && uu.Bio == nil
}

// ByUsername queries a user by username.
func ByUsername(tx *gorm.DB, username string, deleted bool) (*User, *gz.ErrMsg) {
	q := tx
	if deleted {
		// Allow to search in already deleted users
		q = q.Unscoped()
	}
	var user User
	if q.Where("username = ?", username).First(&user); q.Error != nil && !q.RecordNotFound() {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, q.Error)
	}
	if user.Username == nil {
		return nil, gz.NewErrorMessage(gz.ErrorUserUnknown)
	}
	return &user, nil
}

// ByIdentity queries a user by identity.
func ByIdentity(tx *gorm.DB, identity string, deleted bool) (*User, *gz.ErrMsg) {
	q := tx
	if deleted {
		// Allow to search in already deleted users
		q = q.Unscoped()
	}
	var aUser User
	if q.Where("identity = ?", identity).First(&aUser); q.Error != nil && !q.RecordNotFound() {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, q.Error)
	}
	if aUser.Identity == nil || *aUser.Identity != identity {
		return nil, gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}
	return &aUser, nil
}
