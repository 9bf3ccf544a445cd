package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gazebo-web/gz-go/v7"
	gztest "github.com/gazebo-web/gz-go/v7/testhelpers"
	"github.com/showcase-web/portfolio-server/bundles/portfolios"
	"github.com/showcase-web/portfolio-server/globals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests for portfolio related routes

type uriTest struct {
	// description of the test
	testDesc string
	// a url (eg. /1.0/portfolios?q=aDescription)
	URL string
	// an optional JWT definition (can contain a plain jwt or a claims map)
	jwtGen *testJWT
	// optional expected gz.ErrMsg response. If set, the test case represents an error case
	// and content type text/plain will be used
	expErrMsg *gz.ErrMsg
	// in case of error response, whether to parse the response body to get an gz.ErrMsg struct
	ignoreErrorBody bool
}

// creates an URL to get a portfolio
func portfolioURL(owner, name string) string {
	encodedName := url.PathEscape(name)
	return fmt.Sprintf("/%s/%s/portfolios/%s", apiVersion, owner, encodedName)
}

// createTestPortfolioWithOwner is a helper function to create a portfolio
// given an optional jwt, a portfolio name and extra fields.
func createTestPortfolioWithOwner(t *testing.T, jwt *string, name string,
	private bool, status string) {

	cp := portfolios.CreatePortfolio{
		Name:        name,
		Description: "description",
		Tags:        "test_tag_1, test_tag2",
		Status:      status,
		Private:     &private,
	}
	postPortfolio(t, jwt, cp)
}

// createThreeTestPortfolios is a helper function to create 3 public published
// portfolios using the given jwt. Descriptions and tags vary so search tests
// can tell them apart.
func createThreeTestPortfolios(t *testing.T, jwt *string) {
	private := false
	cp := portfolios.CreatePortfolio{
		Name:        "portfolio1",
		Description: "description",
		Tags:        "test_tag_1, test_tag2",
		Status:      "published",
		Private:     &private,
	}
	postPortfolio(t, jwt, cp)
	cp.Name = "portfolio2"
	cp.Description = "silly desc"
	postPortfolio(t, jwt, cp)
	cp.Name = "portfolio3"
	cp.Tags = "new one"
	postPortfolio(t, jwt, cp)
}

// postPortfolio POSTs a portfolio creation request and asserts success.
func postPortfolio(t *testing.T, jwt *string, cp portfolios.CreatePortfolio) {
	b := new(bytes.Buffer)
	json.NewEncoder(b).Encode(cp)
	bslice, _ := gztest.AssertRouteMultipleArgs("POST", "/1.0/portfolios", b,
		http.StatusOK, jwt, ctJSON, t)
	var pr portfolios.PortfolioResponse
	require.NoError(t, json.Unmarshal(*bslice, &pr))
	assert.Equal(t, cp.Name, pr.Name)
}

// resourceSearchTest defines a list or search test case.
type resourceSearchTest struct {
	uriTest
	// expected portfolio count in response
	expCount int
	// expected name of the first returned portfolio
	expFirstName string
}

func runSubtestWithPortfolioSearchTestData(t *testing.T, test resourceSearchTest) {
	jwt := getJWTToken(t, test.jwtGen)
	expEm, expCt := errMsgAndContentType(test.expErrMsg, ctJSON)
	expStatus := expEm.StatusCode
	reqArgs := gztest.RequestArgs{Method: "GET", Route: test.URL, Body: nil, SignedToken: jwt}
	resp := gztest.AssertRouteMultipleArgsStruct(reqArgs, expStatus, expCt, t)
	bslice := resp.BodyAsBytes
	if expStatus != http.StatusOK && !test.ignoreErrorBody {
		gztest.AssertBackendErrorCode(t.Name(), bslice, expEm.ErrCode, t)
	} else if expStatus == http.StatusOK {
		var list portfolios.PortfolioResponses
		require.NoError(t, json.Unmarshal(*bslice, &list), "Unable to unmarshal response: %s", string(*bslice))
		require.Equal(t, test.expCount, len(list), "Expected %d portfolios but got %d. URL: %s", test.expCount, len(list), test.URL)
		if test.expCount > 0 && test.expFirstName != "" {
			assert.Equal(t, test.expFirstName, list[0].Name)
		}
	}
}

func TestGetPortfolios(t *testing.T) {
	// General test setup
	setup()

	// Create a user and portfolios
	jwt := os.Getenv("IGN_TEST_JWT")
	testUser := createUser(t)
	defer removeUser(testUser, t)
	createThreeTestPortfolios(t, &jwt)

	uri := "/1.0/portfolios"
	ownerURI := "/1.0/" + testUser + "/portfolios"
	likedURI := "/1.0/" + testUser + "/likes/portfolios"

	searchTestsData := []resourceSearchTest{
		{uriTest{"all portfolios", uri, nil, nil, false}, 3, "portfolio3"},
		{uriTest{"all portfolios ascending", uri + "?order=asc", nil, nil, false}, 3, "portfolio1"},
		{uriTest{"match a tag", uri + "?q=new", nil, nil, false}, 1, "portfolio3"},
		{uriTest{"match a name", uri + "?q=portfolio2", nil, nil, false}, 1, "portfolio2"},
		{uriTest{"match a tag and portfolio name", uri + "?q=one portfolio2&order=asc", nil, nil, false}, 2, "portfolio2"},
		{uriTest{"match description", uri + "?q=description", nil, nil, false}, 1, "portfolio1"},
		{uriTest{"no match", uri + "?q=nomatchhere", nil, nil, false}, 0, ""},
		// PORTFOLIOS FROM OWNER
		{uriTest{"owner's portfolios", ownerURI + "?order=asc", nil, nil, false}, 3, "portfolio1"},
		// PAGINATION
		{uriTest{"get page #1", uri + "?order=asc&per_page=1&page=1", nil, nil, false}, 1, "portfolio1"},
		{uriTest{"get page #2", uri + "?order=asc&per_page=1&page=2", nil, nil, false}, 1, "portfolio2"},
		{uriTest{"invalid page", uri + "?per_page=1&page=7", nil, gz.NewErrorMessage(gz.ErrorPaginationPageNotFound), false}, 0, ""},
		// LIKED PORTFOLIOS
		{uriTest{"liked portfolios with non-existent user", "/1.0/invaliduser/likes/portfolios", nil, gz.NewErrorMessage(gz.ErrorUserUnknown), false}, 0, ""},
		{uriTest{"liked portfolios OK but empty", likedURI, nil, nil, false}, 0, ""},
	}

	defaultJWT := newJWT(jwt)
	for _, test := range searchTestsData {
		t.Run(test.testDesc, func(t *testing.T) {
			runSubtestWithPortfolioSearchTestData(t, test)
		})
		// Now run the same test case but adding a JWT, if needed
		if test.jwtGen == nil {
			test.jwtGen = defaultJWT
			test.testDesc += "[with JWT]"
			t.Run(test.testDesc, func(t *testing.T) {
				runSubtestWithPortfolioSearchTestData(t, test)
			})
		}
	}
}

func TestGetPrivateAndDraftPortfolios(t *testing.T) {
	// General test setup
	setup()

	// create user 1
	jwt1 := createValidJWTForIdentity("user1", t)
	testUser1 := createUserWithJWT(jwt1, t)
	defer removeUserWithJWT(testUser1, jwt1, t)

	// create user 2
	jwt2 := createValidJWTForIdentity("user2", t)
	testUser2 := createUserWithJWT(jwt2, t)
	defer removeUserWithJWT(testUser2, jwt2, t)

	// create a private portfolio for user1
	createTestPortfolioWithOwner(t, &jwt1, "private_portfolio1", true, "published")
	// create a draft portfolio for user1
	createTestPortfolioWithOwner(t, &jwt1, "draft_portfolio1", false, "draft")

	// create public portfolios for user2
	createTestPortfolioWithOwner(t, &jwt2, "public_portfolio2", false, "published")
	createTestPortfolioWithOwner(t, &jwt2, "public_portfolio2a", false, "published")

	visibilityTestsData := []resourceSearchTest{
		{uriTest{"anonymous user can see only public published portfolios", "/1.0/portfolios", nil, nil, false}, 2, "public_portfolio2a"},
		{uriTest{"user1 also sees own private and draft portfolios", "/1.0/portfolios", newJWT(jwt1), nil, false}, 4, ""},
		{uriTest{"user2 sees public portfolios only", "/1.0/portfolios", newJWT(jwt2), nil, false}, 2, "public_portfolio2a"},
		{uriTest{"anonymous can not see user1 portfolios", "/1.0/" + testUser1 + "/portfolios", nil, nil, false}, 0, ""},
		{uriTest{"user1 can see own private and draft portfolios", "/1.0/" + testUser1 + "/portfolios", newJWT(jwt1), nil, false}, 2, ""},
		{uriTest{"user2 can not see user1 portfolios", "/1.0/" + testUser1 + "/portfolios", newJWT(jwt2), nil, false}, 0, ""},
		{uriTest{"drafts of user1 for owner", "/1.0/" + testUser1 + "/portfolios?status=draft", newJWT(jwt1), nil, false}, 1, "draft_portfolio1"},
		{uriTest{"drafts are unauthorized for other users", "/1.0/" + testUser1 + "/portfolios?status=draft", newJWT(jwt2), gz.NewErrorMessage(gz.ErrorUnauthorized), false}, 0, ""},
	}

	for _, test := range visibilityTestsData {
		t.Run(test.testDesc, func(t *testing.T) {
			runSubtestWithPortfolioSearchTestData(t, test)
		})
	}

	// Single portfolio GETs
	privateURI := portfolioURL(testUser1, "private_portfolio1")
	draftURI := portfolioURL(testUser1, "draft_portfolio1")

	singleTestsData := []uriTest{
		{"owner can get own private portfolio", privateURI, newJWT(jwt1), nil, false},
		{"owner can get own draft portfolio", draftURI, newJWT(jwt1), nil, false},
		{"other user can not get private portfolio", privateURI, newJWT(jwt2), gz.NewErrorMessage(gz.ErrorUnauthorized), false},
		{"other user can not get draft portfolio", draftURI, newJWT(jwt2), gz.NewErrorMessage(gz.ErrorUnauthorized), false},
		{"anonymous can not get private portfolio", privateURI, nil, gz.NewErrorMessage(gz.ErrorUnauthorized), false},
		{"non-existent portfolio", portfolioURL(testUser1, "no-such-portfolio"), newJWT(jwt1), gz.NewErrorMessage(gz.ErrorNameNotFound), false},
	}

	for _, test := range singleTestsData {
		t.Run(test.testDesc, func(t *testing.T) {
			jwt := getJWTToken(t, test.jwtGen)
			expEm, expCt := errMsgAndContentType(test.expErrMsg, ctJSON)
			reqArgs := gztest.RequestArgs{Method: "GET", Route: test.URL, Body: nil, SignedToken: jwt}
			resp := gztest.AssertRouteMultipleArgsStruct(reqArgs, expEm.StatusCode, expCt, t)
			if expEm.StatusCode != http.StatusOK {
				gztest.AssertBackendErrorCode(t.Name(), resp.BodyAsBytes, expEm.ErrCode, t)
			}
		})
	}
}

func TestPortfolioCreateDuplicateName(t *testing.T) {
	setup()

	jwt := os.Getenv("IGN_TEST_JWT")
	testUser := createUser(t)
	defer removeUser(testUser, t)

	createTestPortfolioWithOwner(t, &jwt, "portfolio1", false, "published")

	// Creating a second portfolio with the same name for the same owner
	// must fail.
	cp := portfolios.CreatePortfolio{
		Name:   "portfolio1",
		Status: "published",
	}
	b := new(bytes.Buffer)
	json.NewEncoder(b).Encode(cp)
	bslice, _ := gztest.AssertRouteMultipleArgs("POST", "/1.0/portfolios", b,
		http.StatusConflict, &jwt, ctTextPlain, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, gz.ErrorResourceExists, t)
}

func TestPortfolioUpdate(t *testing.T) {
	setup()

	jwt := os.Getenv("IGN_TEST_JWT")
	testUser := createUser(t)
	defer removeUser(testUser, t)

	jwt2 := createValidJWTForIdentity("another-user", t)
	testUser2 := createUserWithJWT(jwt2, t)
	defer removeUserWithJWT(testUser2, jwt2, t)

	createTestPortfolioWithOwner(t, &jwt, "portfolio1", false, "draft")
	uri := portfolioURL(testUser, "portfolio1")

	t.Run("update with no fields should fail", func(t *testing.T) {
		up := portfolios.UpdatePortfolio{}
		b := new(bytes.Buffer)
		json.NewEncoder(b).Encode(up)
		bslice, _ := gztest.AssertRouteMultipleArgs("PATCH", uri, b,
			http.StatusBadRequest, &jwt, ctTextPlain, t)
		gztest.AssertBackendErrorCode(t.Name(), bslice, gz.ErrorFormInvalidValue, t)
	})

	t.Run("update from another user should fail", func(t *testing.T) {
		up := portfolios.UpdatePortfolio{Description: sptr("new description")}
		b := new(bytes.Buffer)
		json.NewEncoder(b).Encode(up)
		gztest.AssertRouteMultipleArgs("PATCH", uri, b, http.StatusUnauthorized,
			&jwt2, ctTextPlain, t)
	})

	t.Run("owner can update description, tags and status", func(t *testing.T) {
		up := portfolios.UpdatePortfolio{
			Description: sptr("new description"),
			Tags:        sptr("new_tag1,new_tag2"),
			Status:      sptr("published"),
		}
		b := new(bytes.Buffer)
		json.NewEncoder(b).Encode(up)
		bslice, _ := gztest.AssertRouteMultipleArgs("PATCH", uri, b,
			http.StatusOK, &jwt, ctJSON, t)
		var pr portfolios.PortfolioResponse
		require.NoError(t, json.Unmarshal(*bslice, &pr))
		assert.Equal(t, "new description", pr.Description)
		assert.Equal(t, portfolios.StatusPublished, pr.Status)
		assert.True(t, strings.Contains(strings.Join(pr.Tags, ","), "new_tag1"))
		// Publishing must set the publication date
		assert.NotEmpty(t, pr.PublicationDate)
	})
}

func TestPortfolioRemove(t *testing.T) {
	setup()

	jwt := os.Getenv("IGN_TEST_JWT")
	testUser := createUser(t)
	defer removeUser(testUser, t)

	jwt2 := createValidJWTForIdentity("another-user", t)
	testUser2 := createUserWithJWT(jwt2, t)
	defer removeUserWithJWT(testUser2, jwt2, t)

	createTestPortfolioWithOwner(t, &jwt, "portfolio1", false, "published")
	uri := portfolioURL(testUser, "portfolio1")

	t.Run("cannot delete portfolio with another jwt", func(t *testing.T) {
		bslice, _ := gztest.AssertRouteMultipleArgs("DELETE", uri, nil,
			http.StatusUnauthorized, &jwt2, ctTextPlain, t)
		gztest.AssertBackendErrorCode(t.Name(), bslice, gz.ErrorUnauthorized, t)
	})

	t.Run("cannot delete portfolio with no jwt", func(t *testing.T) {
		gztest.AssertRouteMultipleArgs("DELETE", uri, nil,
			http.StatusUnauthorized, nil, ctTextPlain, t)
	})

	t.Run("a valid portfolio delete from owner", func(t *testing.T) {
		gztest.AssertRouteMultipleArgs("DELETE", uri, nil, http.StatusOK, &jwt, ctJSON, t)
		db := globals.Server.Db.Where("owner = ? AND name = ?", testUser,
			"portfolio1").Find(&portfolios.Portfolio{})
		assert.Error(t, db.Error)
		assert.True(t, db.RecordNotFound())
	})
}

func TestPortfolioListByCategory(t *testing.T) {
	setup()

	jwt := os.Getenv("IGN_TEST_JWT")
	testUser := createUser(t)
	defer removeUser(testUser, t)

	// Create a portfolio within the default "Robotics" category.
	private := false
	cp := portfolios.CreatePortfolio{
		Name:       "robot-showcase",
		Status:     "published",
		Categories: "Robotics",
		Private:    &private,
	}
	b := new(bytes.Buffer)
	json.NewEncoder(b).Encode(cp)
	gztest.AssertRouteMultipleArgs("POST", "/1.0/portfolios", b, http.StatusOK, &jwt, ctJSON, t)

	createTestPortfolioWithOwner(t, &jwt, "uncategorized", false, "published")

	categoryTestsData := []resourceSearchTest{
		{uriTest{"filter by category slug", "/1.0/portfolios?category=robotics", nil, nil, false}, 1, "robot-showcase"},
		// unknown slugs are skipped when building the filter
		{uriTest{"unknown category slug is ignored", "/1.0/portfolios?category=unknown", nil, nil, false}, 2, ""},
		{uriTest{"no category filter returns all", "/1.0/portfolios", nil, nil, false}, 2, ""},
	}

	for _, test := range categoryTestsData {
		t.Run(test.testDesc, func(t *testing.T) {
			runSubtestWithPortfolioSearchTestData(t, test)
		})
	}
}
