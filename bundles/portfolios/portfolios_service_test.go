package portfolios

import (
	"testing"

	mocket "github.com/Selvatico/go-mocket"
	"github.com/jinzhu/gorm"
	"github.com/showcase-web/portfolio-server/bundles/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMockDb registers the mocket fake driver and returns a gorm DB
// backed by it.
func setupMockDb(t *testing.T) *gorm.DB {
	mocket.Catcher.Register()
	mocket.Catcher.Logging = false
	db, err := gorm.Open(mocket.DRIVER_NAME, "any_string")
	require.NoError(t, err)
	return db
}

// setupPortfolioMockResponses initializes mock responses to common queries.
func setupPortfolioMockResponses(likes, views int) {
	commonPortfolioReply := []map[string]interface{}{{"id": 100, "uuid": "uuid-string",
		"name": "portfolio-name", "owner": "test-user", "private": false,
		"status": StatusPublished, "likes": likes, "views": views}}

	mocket.Catcher.Reset()
	mocket.Catcher.Attach([]*mocket.FakeResponse{
		{
			Pattern:  "SELECT * FROM \"portfolios\"",
			Response: commonPortfolioReply,
			Once:     false,
		},
	})
}

func testUser() *users.User {
	username := "test-user"
	u := users.User{Username: &username}
	u.ID = 101
	return &u
}

func TestTogglePortfolioLikeNoUser(t *testing.T) {
	db := setupMockDb(t)
	setupPortfolioMockResponses(0, 0)

	ps := &Service{}
	res, em := ps.TogglePortfolioLike(db, "test-user", "portfolio-name", nil)
	assert.Nil(t, res)
	require.NotNil(t, em)
}

func TestTogglePortfolioLikeRegistersLike(t *testing.T) {
	db := setupMockDb(t)
	// The portfolio row already reflects the incremented counter when it is
	// read back after the toggle.
	setupPortfolioMockResponses(1, 0)

	ps := &Service{}
	res, em := ps.TogglePortfolioLike(db, "test-user", "portfolio-name", testUser())
	require.Nil(t, em)
	require.NotNil(t, res)
	assert.True(t, res.Liked)
	assert.Equal(t, 1, res.Likes)
}

func TestTogglePortfolioLikeRemovesLike(t *testing.T) {
	db := setupMockDb(t)
	setupPortfolioMockResponses(0, 0)
	// An active like exists. The delete removes one row.
	mocket.Catcher.NewMock().WithQuery("DELETE FROM \"portfolio_likes\"").WithRowsNum(1)

	ps := &Service{}
	res, em := ps.TogglePortfolioLike(db, "test-user", "portfolio-name", testUser())
	require.Nil(t, em)
	require.NotNil(t, res)
	assert.False(t, res.Liked)
	assert.Equal(t, 0, res.Likes)
}

func TestCreatePortfolioView(t *testing.T) {
	db := setupMockDb(t)
	setupPortfolioMockResponses(0, 5)

	ps := &Service{}
	res, em := ps.CreatePortfolioView(db, "test-user", "portfolio-name", testUser(), "test-agent")
	require.Nil(t, em)
	require.NotNil(t, res)
	assert.Equal(t, 5, res.Views)
}

func TestCreatePortfolioViewAnonymous(t *testing.T) {
	db := setupMockDb(t)
	setupPortfolioMockResponses(0, 1)

	ps := &Service{}
	res, em := ps.CreatePortfolioView(db, "test-user", "portfolio-name", nil, "")
	require.Nil(t, em)
	require.NotNil(t, res)
	assert.Equal(t, 1, res.Views)
}

func TestIsLikedNoUser(t *testing.T) {
	db := setupMockDb(t)
	setupPortfolioMockResponses(0, 0)

	// Anonymous callers are not an error case. They just have no like.
	ps := &Service{}
	liked, em := ps.IsLiked(db, "test-user", "portfolio-name", nil)
	require.Nil(t, em)
	assert.False(t, liked)
}

func TestIsLiked(t *testing.T) {
	db := setupMockDb(t)
	setupPortfolioMockResponses(0, 0)
	mocket.Catcher.NewMock().WithQuery("SELECT * FROM \"portfolio_likes\"").
		WithReply([]map[string]interface{}{{"id": 2, "user_id": 101, "portfolio_id": 100}})

	ps := &Service{}
	liked, em := ps.IsLiked(db, "test-user", "portfolio-name", testUser())
	require.Nil(t, em)
	assert.True(t, liked)
}
