package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"

	elasticsearch "github.com/elastic/go-elasticsearch/v8"
	"github.com/gazebo-web/gz-go/v7"
	gztest "github.com/gazebo-web/gz-go/v7/testhelpers"
	"github.com/showcase-web/portfolio-server/bundles/portfolios"
	"github.com/showcase-web/portfolio-server/globals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests for the ElasticSearch query path and its SQL fallback.

// downTransport fails every request, simulating an unreachable search
// cluster.
type downTransport struct{}

func (downTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

// staticTransport answers every request with a fixed 2xx body.
type staticTransport struct {
	body string
}

func (tr staticTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     "200 OK",
		Body:       io.NopCloser(strings.NewReader(tr.body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}, nil
}

func newTestESClient(t *testing.T, tr http.RoundTripper) *elasticsearch.Client {
	es, err := elasticsearch.NewClient(elasticsearch.Config{Transport: tr})
	require.NoError(t, err)
	return es
}

func TestReadSearchHitsMalformedBody(t *testing.T) {
	malformed := []map[string]interface{}{
		{},
		{"hits": "unexpected"},
		{"hits": map[string]interface{}{}},
		{"hits": map[string]interface{}{"hits": "unexpected"}},
	}
	for _, body := range malformed {
		_, em := readSearchHits(body)
		require.NotNil(t, em)
		assert.Equal(t, gz.ErrorUnexpected, em.ErrCode)
	}

	hits, em := readSearchHits(map[string]interface{}{
		"hits": map[string]interface{}{"hits": []interface{}{}},
	})
	require.Nil(t, em)
	assert.Empty(t, hits)
}

func TestReadTotalHitsMalformedBody(t *testing.T) {
	malformed := []map[string]interface{}{
		{},
		{"hits": map[string]interface{}{}},
		{"hits": map[string]interface{}{"total": []interface{}{}}},
		{"hits": map[string]interface{}{"total": map[string]interface{}{"value": "3"}}},
	}
	for _, body := range malformed {
		_, em := readTotalHits(body)
		require.NotNil(t, em)
		assert.Equal(t, gz.ErrorUnexpected, em.ErrCode)
	}

	total, em := readTotalHits(map[string]interface{}{
		"hits": map[string]interface{}{"total": map[string]interface{}{"value": float64(3)}},
	})
	require.Nil(t, em)
	assert.Equal(t, int64(3), total)
}

func TestSearchHitOrderIsPreserved(t *testing.T) {
	// General test setup
	setup()

	jwt := os.Getenv("IGN_TEST_JWT")
	testUser := createUser(t)
	defer removeUser(testUser, t)
	createThreeTestPortfolios(t, &jwt)

	// The search index returns hits by relevance, not by primary key. The
	// resolved responses must keep the hit order.
	hitOrder := []string{"portfolio3", "portfolio1", "portfolio2"}
	var hits []interface{}
	for _, name := range hitOrder {
		var p portfolios.Portfolio
		require.NoError(t, globals.Server.Db.Where("owner = ? AND name = ?",
			testUser, name).First(&p).Error)
		hits = append(hits, map[string]interface{}{
			"_id": strconv.FormatUint(uint64(p.ID), 10),
		})
	}
	elasticResult := map[string]interface{}{
		"hits": map[string]interface{}{"hits": hits},
	}

	ctx := gz.NewContextWithLogger(context.Background(),
		gz.NewLoggerNoRollbar("test", gz.VerbosityDebug))
	result, count, em := createPortfolioResults(ctx, nil, globals.Server.Db, elasticResult)
	require.Nil(t, em)
	require.Equal(t, int64(len(hitOrder)), count)

	responses, ok := result.(*portfolios.PortfolioResponses)
	require.True(t, ok)
	require.Len(t, *responses, len(hitOrder))
	for i, name := range hitOrder {
		assert.Equal(t, name, (*responses)[i].Name)
	}
}

func TestSearchFallsBackWhenIndexIsDegraded(t *testing.T) {
	// General test setup
	setup()

	jwt := os.Getenv("IGN_TEST_JWT")
	testUser := createUser(t)
	defer removeUser(testUser, t)
	createThreeTestPortfolios(t, &jwt)

	searchNames := func(t *testing.T) []string {
		uri := fmt.Sprintf("/%s/portfolios?q=portfolio2", apiVersion)
		bslice, _ := gztest.AssertRouteMultipleArgs("GET", uri, nil,
			http.StatusOK, &jwt, ctJSON, t)
		var list portfolios.PortfolioResponses
		require.NoError(t, json.Unmarshal(*bslice, &list))
		var names []string
		for _, pr := range list {
			names = append(names, pr.Name)
		}
		return names
	}

	origES := globals.ElasticSearch
	defer func() { globals.ElasticSearch = origES }()

	// Baseline: no search cluster configured, the SQL path serves the query.
	globals.ElasticSearch = nil
	baseline := searchNames(t)
	require.NotEmpty(t, baseline)

	t.Run("unreachable cluster", func(t *testing.T) {
		globals.ElasticSearch = newTestESClient(t, downTransport{})
		assert.Equal(t, baseline, searchNames(t))
	})

	t.Run("malformed 2xx response body", func(t *testing.T) {
		globals.ElasticSearch = newTestESClient(t, staticTransport{body: "{}"})
		assert.Equal(t, baseline, searchNames(t))
	})
}
