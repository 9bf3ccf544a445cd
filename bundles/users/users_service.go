package users

import (
	"context"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/showcase-web/portfolio-server/globals"
	"github.com/showcase-web/portfolio-server/permissions"
)

// CreateUser creates a new user in the directory. The identity argument is
// the JWT subject of the requesting user, and becomes the user's identity.
// Returns a UserResponse with the created user.
func CreateUser(ctx context.Context, tx *gorm.DB, input *CreateUserInput,
	identity string) (*UserResponse, *gz.ErrMsg) {

	// Sanity check: the identity must not already have a user.
	if existing, em := ByIdentity(tx, identity, false); em == nil && existing != nil {
		return nil, gz.NewErrorMessage(gz.ErrorResourceExists)
	}

	// Sanity check: the username must be free.
	if _, em := ByUsername(tx, input.Username, true); em == nil {
		return nil, gz.NewErrorMessage(gz.ErrorResourceExists)
	}

	user := User{
		Identity: &identity,
		Name:     &input.Name,
		Username: &input.Username,
		Email:    &input.Email,
	}
	if input.AvatarURL != "" {
		user.AvatarURL = &input.AvatarURL
	}
	if input.University != "" {
		user.University = &input.University
	}
	if input.Bio != "" {
		user.Bio = &input.Bio
	}

	if err := tx.Create(&user).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	gz.LoggerFromContext(ctx).Info("User created. Username=", *user.Username)

	response := CreateUserResponse(tx, &user, &user)
	return &response, nil
}

// RemoveUser removes the given user. Returns a UserResponse with the removed
// user. The reqUser argument is the requesting user. It is used to check if
// the reqUser can perform the operation.
func RemoveUser(ctx context.Context, tx *gorm.DB, username string,
	reqUser *User) (*UserResponse, *gz.ErrMsg) {

	user, em := ByUsername(tx, username, false)
	if em != nil {
		return nil, em
	}

	// Make sure the JWT user is the same user to be removed
	if *user.Identity != *reqUser.Identity {
		return nil, gz.NewErrorMessage(gz.ErrorUnauthorized)
	}

	// Remove the user from the database (soft-delete).
	if err := tx.Delete(user).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	if ok, em := globals.Permissions.RemoveUser(*user.Username); !ok {
		return nil, em
	}

	gz.LoggerFromContext(ctx).Info("User removed. Username=", *user.Username)

	response := CreateUserResponse(tx, user, reqUser)
	return &response, nil
}

// UpdateUser updates a user's directory profile.
// The reqUser argument is the requesting user. It is used to check if the
// reqUser can perform the operation.
func UpdateUser(ctx context.Context, tx *gorm.DB, username string,
	uu *UpdateUserInput, reqUser *User) (*UserResponse, *gz.ErrMsg) {

	user, em := ByUsername(tx, username, false)
	if em != nil {
		return nil, em
	}

	if *user.Identity != *reqUser.Identity {
		return nil, gz.NewErrorMessage(gz.ErrorUnauthorized)
	}

	if uu.IsEmpty() {
		return nil, gz.NewErrorMessage(gz.ErrorFormInvalidValue)
	}

	if uu.Name != nil {
		user.Name = uu.Name
	}
	if uu.Email != nil {
		user.Email = uu.Email
	}
	if uu.AvatarURL != nil {
		user.AvatarURL = uu.AvatarURL
	}
	if uu.University != nil {
		user.University = uu.University
	}
	if uu.Bio != nil {
		user.Bio = uu.Bio
	}

	if err := tx.Save(&user).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	response := CreateUserResponse(tx, user, reqUser)
	return &response, nil
}

// UserList returns a paginated list of users in the directory.
func UserList(p *gz.PaginationRequest, tx *gorm.DB,
	reqUser *User) (*UserResponses, *gz.PaginationResult, *gz.ErrMsg) {

	var userList Users
	q := tx.Model(&User{}).Order("username")

	pagination, err := gz.PaginateQuery(q, &userList, *p)
	if err != nil {
		return nil, nil, gz.NewErrorMessageWithBase(gz.ErrorInvalidPaginationRequest, err)
	}
	if !pagination.PageFound {
		return nil, nil, gz.NewErrorMessage(gz.ErrorPaginationPageNotFound)
	}

	responses := UserResponses{}
	for i := range userList {
		responses = append(responses, CreateUserResponse(tx, &userList[i], reqUser))
	}
	return &responses, pagination, nil
}

// CreateUserResponse builds the display fields for a user. Private fields
// (email) are only included when the requester is the user itself or a
// system admin.
func CreateUserResponse(tx *gorm.DB, user *User, reqUser *User) UserResponse {
	var response UserResponse
	response.ID = user.ID
	response.Username = *user.Username
	if user.Name != nil {
		response.Name = *user.Name
	}
	if user.AvatarURL != nil {
		response.AvatarURL = *user.AvatarURL
	}
	if user.University != nil {
		response.University = *user.University
	}
	if user.Bio != nil {
		response.Bio = *user.Bio
	}

	sameUser := reqUser != nil && reqUser.Username != nil &&
		*reqUser.Username == *user.Username
	sysAdmin := reqUser != nil && reqUser.Username != nil &&
		globals.Permissions.IsSystemAdmin(*reqUser.Username)
	if sameUser || sysAdmin {
		if user.Email != nil {
			response.Email = *user.Email
		}
		response.SysAdmin = globals.Permissions.IsSystemAdmin(*user.Username)
	}
	return response
}

// VerifyOwner verifies that the given 'user' arg is the same as the owner.
func VerifyOwner(tx *gorm.DB, owner, user string,
	per permissions.Action) (bool, *gz.ErrMsg) {
	if owner != user {
		// jwt user is different from owner field!
		return false, gz.NewErrorMessage(gz.ErrorUnauthorized)
	}
	return true, nil
}

// CheckPermissions validates if the given user has the requested permission
// on the resource. The resource can be public or private, and that is
// extracted from the argument isPrivate.
func CheckPermissions(tx *gorm.DB, resource string, user *User, isPrivate bool,
	per permissions.Action) (bool, *gz.ErrMsg) {

	if !isPrivate && per == permissions.Read {
		return true, nil
	}

	if user == nil {
		if isPrivate || per != permissions.Read {
			return false, gz.NewErrorMessage(gz.ErrorUnauthorized)
		}
		// otherwise it should be public and with Read permission.
		return true, nil
	}
	// user is not nil
	// make sure the requesting user has the correct permissions
	if globals.Permissions.IsSystemAdmin(*user.Username) {
		return true, nil
	}
	if ok, em := globals.Permissions.IsAuthorized(*user.Username, resource, per); !ok {
		return false, em
	}
	return true, nil
}
