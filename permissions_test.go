package main

import (
	"testing"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/showcase-web/portfolio-server/globals"
	"github.com/showcase-web/portfolio-server/permissions"
	"github.com/stretchr/testify/assert"
)

type userResourcePermissionsTest struct {
	// description of the test
	testDesc string

	// username
	user string

	// resource name
	resource string

	// type of action
	action permissions.Action

	// expected permission result
	expAuthorized bool

	// expected error message
	expErrMsg *gz.ErrMsg
}

// testUserResourcePermissions checks a list of permission expectations
// against the global casbin enforcer.
func testUserResourcePermissions(t *testing.T, testData []userResourcePermissionsTest) {
	for _, test := range testData {
		t.Run(test.testDesc, func(t *testing.T) {
			authorized, em := globals.Permissions.IsAuthorized(test.user,
				test.resource, test.action)
			assert.Equal(t, test.expAuthorized, authorized)
			if test.expErrMsg != nil {
				assert.NotNil(t, em)
				assert.Equal(t, test.expErrMsg.ErrCode, em.ErrCode)
			} else {
				assert.Nil(t, em)
			}
		})
	}
}

// TestUserPermissions tests granting and revoking user permissions on
// resources.
func TestUserPermissions(t *testing.T) {
	setup()

	unauth := gz.NewErrorMessage(gz.ErrorUnauthorized)

	// create permission for user1 on resource1
	ok, em := globals.Permissions.AddPermission("user1", "resource1", permissions.Read)
	assert.True(t, ok)
	assert.Nil(t, em)
	ok, em = globals.Permissions.AddPermission("user1", "resource1", permissions.Write)
	assert.True(t, ok)
	assert.Nil(t, em)
	ok, em = globals.Permissions.AddPermission("user2", "resource1", permissions.Read)
	assert.True(t, ok)
	assert.Nil(t, em)

	permissionsTestsData := []userResourcePermissionsTest{
		{"user1 can read resource1", "user1", "resource1", permissions.Read, true, nil},
		{"user1 can write resource1", "user1", "resource1", permissions.Write, true, nil},
		{"user2 can read resource1", "user2", "resource1", permissions.Read, true, nil},
		{"user2 cannot write resource1", "user2", "resource1", permissions.Write, false, unauth},
		{"user3 cannot read resource1", "user3", "resource1", permissions.Read, false, unauth},
	}
	testUserResourcePermissions(t, permissionsTestsData)

	// revoke user1's write permission
	ok, em = globals.Permissions.RemovePermission("user1", "resource1", permissions.Write)
	assert.True(t, ok)
	assert.Nil(t, em)

	revokedTestsData := []userResourcePermissionsTest{
		{"user1 can still read resource1", "user1", "resource1", permissions.Read, true, nil},
		{"user1 cannot write resource1 anymore", "user1", "resource1", permissions.Write, false, unauth},
	}
	testUserResourcePermissions(t, revokedTestsData)
}

// TestRemoveResourcePermissions tests removing all permissions of a resource.
func TestRemoveResourcePermissions(t *testing.T) {
	setup()

	unauth := gz.NewErrorMessage(gz.ErrorUnauthorized)

	globals.Permissions.AddPermission("user1", "resource1", permissions.Read)
	globals.Permissions.AddPermission("user2", "resource1", permissions.Read)
	globals.Permissions.AddPermission("user1", "resource2", permissions.Read)

	ok, em := globals.Permissions.RemoveResource("resource1")
	assert.True(t, ok)
	assert.Nil(t, em)

	testUserResourcePermissions(t, []userResourcePermissionsTest{
		{"user1 cannot read removed resource", "user1", "resource1", permissions.Read, false, unauth},
		{"user2 cannot read removed resource", "user2", "resource1", permissions.Read, false, unauth},
		{"other resources are not affected", "user1", "resource2", permissions.Read, true, nil},
	})
}

// TestRemoveUserPermissions tests removing all permissions of a user.
func TestRemoveUserPermissions(t *testing.T) {
	setup()

	unauth := gz.NewErrorMessage(gz.ErrorUnauthorized)

	globals.Permissions.AddPermission("user1", "resource1", permissions.Read)
	globals.Permissions.AddPermission("user1", "resource2", permissions.Write)
	globals.Permissions.AddPermission("user2", "resource1", permissions.Read)

	ok, em := globals.Permissions.RemoveUser("user1")
	assert.True(t, ok)
	assert.Nil(t, em)

	testUserResourcePermissions(t, []userResourcePermissionsTest{
		{"user1 cannot read resource1 anymore", "user1", "resource1", permissions.Read, false, unauth},
		{"user1 cannot write resource2 anymore", "user1", "resource2", permissions.Write, false, unauth},
		{"user2 is not affected", "user2", "resource1", permissions.Read, true, nil},
	})
}

// TestPermissionsSetSystemAdmin test configuring system admins
func TestPermissionsSetSystemAdmin(t *testing.T) {
	setup()

	unauth := gz.NewErrorMessage(gz.ErrorUnauthorized)

	// create a test resource owned by someone else
	_, em := globals.Permissions.AddPermission("owner3", "resource3", permissions.Read)
	assert.Nil(t, em)

	// system admin should have full permission
	sysAdminPermissionsTestsData := []userResourcePermissionsTest{
		{"sys admin can read resource", sysAdminForTest, "resource3", permissions.Read, true, nil},
		{"sys admin can write resource", sysAdminForTest, "resource3", permissions.Write, true, nil},
	}
	testUserResourcePermissions(t, sysAdminPermissionsTestsData)

	// first check user2 does not have access
	user2DoesntHavePermissionsTestsData := []userResourcePermissionsTest{
		{"user2 cannot read resource", "user2", "resource3", permissions.Read, false, unauth},
		{"user2 cannot write resource", "user2", "resource3", permissions.Write, false, unauth},
	}
	testUserResourcePermissions(t, user2DoesntHavePermissionsTestsData)

	// now make user2 the system admin
	assert.NoError(t, globals.Permissions.Reload("user2"))

	oldSysAdminPermissionsTestsData := []userResourcePermissionsTest{
		{"old sys admin cannot read resource", sysAdminForTest, "resource3", permissions.Read, false, unauth},
		{"old sys admin cannot write resource", sysAdminForTest, "resource3", permissions.Write, false, unauth},
	}
	testUserResourcePermissions(t, oldSysAdminPermissionsTestsData)

	newSysAdminPermissionsTestsData := []userResourcePermissionsTest{
		{"new sys admin can read resource", "user2", "resource3", permissions.Read, true, nil},
		{"new sys admin can write resource", "user2", "resource3", permissions.Write, true, nil},
	}
	testUserResourcePermissions(t, newSysAdminPermissionsTestsData)

	assert.True(t, globals.Permissions.IsSystemAdmin("user2"))
	assert.False(t, globals.Permissions.IsSystemAdmin(sysAdminForTest))

	// restore the original sysadmin for the remaining tests
	assert.NoError(t, globals.Permissions.Reload(sysAdminForTest))
}
