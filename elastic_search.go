package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/gazebo-web/gz-go/v7"
	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	"github.com/showcase-web/portfolio-server/bundles/portfolios"
	"github.com/showcase-web/portfolio-server/bundles/users"
	"github.com/showcase-web/portfolio-server/globals"
	"github.com/showcase-web/portfolio-server/permissions"
)

// ElasticSearch indices
var showcaseIndices = []string{"showcase_portfolios"}

// ElasticSearchConfig is a configuration for an ElasticSearch server.
// swagger:model
type ElasticSearchConfig struct {
	// ID is the primary key
	ID uint `gorm:"primary_key" json:"id"`
	// CreatedAt is the time the entry was created.
	CreatedAt time.Time `gorm:"type:timestamp(3) NULL"`
	// UpdatedAt is the time the entry was updated.
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"type:timestamp(2) NULL" sql:"index"`

	// Address of the server. This must contain either "http" or "https".
	Address string `json:"address"`

	// Username for basic authentication. Optional.
	Username string `json:"username"`

	// Password for basic authentication. Optional.
	Password string `json:"password"`

	// True if this is the server to use by default.
	IsPrimary bool `json:"primary"`
}

// ElasticSearchConfigs is a list of ElasticSearchConfig
// swagger:model
type ElasticSearchConfigs []ElasticSearchConfig

// AdminSearchRequest is a request to alter the ElasticSearchConfig
// swagger:model
type AdminSearchRequest struct {
	// Address of the server. This must contain either "http" or "https".
	Address string `json:"address"`

	// Username for basic authentication. Optional.
	Username string `json:"username"`

	// Password for basic authentication. Optional.
	Password string `json:"password"`

	// True if this is the server to use by default.
	Primary bool `json:"primary"`
}

// AdminSearchResponse contains a response to an AdminSearchRequest.
// swagger:model
type AdminSearchResponse struct {
	Message string `json:"status"`
}

// DeleteElasticSearchHandler deletes an elasticsearch config
//
// curl -k -X DELETE http://localhost:8000/1.0/admin/search/{config_id} --header "Private-token: YOUR_TOKEN"
func DeleteElasticSearchHandler(tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	user, ok, errMsg := getUserFromJWT(tx, r)

	if !ok && (errMsg.ErrCode != gz.ErrorAuthJWTInvalid &&
		errMsg.ErrCode != gz.ErrorAuthNoUser) {
		return nil, &errMsg
	}

	if !globals.Permissions.IsSystemAdmin(*user.Username) {
		return nil, gz.NewErrorMessage(gz.ErrorUnauthorized)
	}

	// Get the config id
	configID, valid := mux.Vars(r)["config_id"]
	if !valid {
		return nil, gz.NewErrorMessage(gz.ErrorIDNotInRequest)
	}

	var config ElasticSearchConfig

	// Find the config
	if err := tx.First(&config, configID).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorIDNotFound, err)
	}

	// Try to delete the config.
	if err := tx.Delete(&config).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	// Return the config that was deleted.
	return config, nil
}

// ModifyElasticSearchHandler modifies an existing config
//
// curl -k -H "Content-Type: application/json" -X PATCH http://localhost:8000/1.0/admin/search/{config_id} -d '{"address":"http://localhost:9200", "primary":true, "username":"my_username", "password":"my_password"}' --header "Private-token: YOUR_TOKEN"
func ModifyElasticSearchHandler(tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	user, ok, errMsg := getUserFromJWT(tx, r)

	if !ok && (errMsg.ErrCode != gz.ErrorAuthJWTInvalid &&
		errMsg.ErrCode != gz.ErrorAuthNoUser) {
		return nil, &errMsg
	}

	if !globals.Permissions.IsSystemAdmin(*user.Username) {
		return nil, gz.NewErrorMessage(gz.ErrorUnauthorized)
	}

	// Get the config id
	configID, valid := mux.Vars(r)["config_id"]
	if !valid {
		return nil, gz.NewErrorMessage(gz.ErrorIDNotInRequest)
	}

	// Parse the request
	var request AdminSearchRequest
	if em := ParseStruct(&request, r, false); em != nil {
		return nil, em
	}

	var dbConfig ElasticSearchConfig

	// Find the config
	if err := tx.First(&dbConfig, configID).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorIDNotFound, err)
	}

	dbConfig.Address = request.Address
	dbConfig.Username = request.Username
	dbConfig.Password = request.Password
	dbConfig.IsPrimary = request.Primary

	if err := tx.Save(&dbConfig).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	// If new primary, then make other entries not be primary.
	if request.Primary {
		tx.Model(ElasticSearchConfig{}).Where("is_primary = 1 and address != ?", request.Address).Select("is_primary").Updates(map[string]interface{}{"is_primary": "0"})
	}

	return dbConfig, nil
}

// CreateElasticSearchHandler creates a new elastic search config
//
// curl -k -H "Content-Type: application/json" -X POST http://localhost:8000/1.0/admin/search -d '{"address":"http://localhost:9200", "primary":true}' --header "Private-token: YOUR_TOKEN"
func CreateElasticSearchHandler(tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	user, ok, errMsg := getUserFromJWT(tx, r)

	if !ok && (errMsg.ErrCode != gz.ErrorAuthJWTInvalid &&
		errMsg.ErrCode != gz.ErrorAuthNoUser) {
		return nil, &errMsg
	}

	if !globals.Permissions.IsSystemAdmin(*user.Username) {
		return nil, gz.NewErrorMessage(gz.ErrorUnauthorized)
	}

	// Parse the request
	var request AdminSearchRequest
	if em := ParseStruct(&request, r, false); em != nil {
		return nil, em
	}

	dbConfig := ElasticSearchConfig{
		Address:   request.Address,
		Username:  request.Username,
		Password:  request.Password,
		IsPrimary: request.Primary,
	}

	if err := tx.Create(&dbConfig).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	// If new primary, then make other not primary.
	if request.Primary {
		tx.Model(ElasticSearchConfig{}).Where("is_primary = 1 and address != ?", request.Address).Select("is_primary").Updates(map[string]interface{}{"is_primary": "0"})
	}

	return dbConfig, nil
}

// ListElasticSearchHandler returns a list of the elastic search configs
//
// curl -k -X GET http://localhost:8000/1.0/admin/search --header "Private-token: YOUR_TOKEN"
func ListElasticSearchHandler(tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	user, ok, errMsg := getUserFromJWT(tx, r)

	if !ok && (errMsg.ErrCode != gz.ErrorAuthJWTInvalid &&
		errMsg.ErrCode != gz.ErrorAuthNoUser) {
		return nil, &errMsg
	}

	if !globals.Permissions.IsSystemAdmin(*user.Username) {
		return nil, gz.NewErrorMessage(gz.ErrorUnauthorized)
	}

	var dbConfigs ElasticSearchConfigs

	tx.Find(&dbConfigs)

	return dbConfigs, nil
}

// ReconnectElasticSearchHandler reconnects to the primary ElasticSearch config
//
// curl -k -X GET http://localhost:8000/1.0/admin/search/reconnect --header "Private-token: YOUR_TOKEN"
func ReconnectElasticSearchHandler(tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	user, ok, errMsg := getUserFromJWT(tx, r)

	if !ok && (errMsg.ErrCode != gz.ErrorAuthJWTInvalid &&
		errMsg.ErrCode != gz.ErrorAuthNoUser) {
		return nil, &errMsg
	}

	if !globals.Permissions.IsSystemAdmin(*user.Username) {
		return nil, gz.NewErrorMessage(gz.ErrorUnauthorized)
	}

	if err := connectToElasticSearch(r.Context()); err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorUnexpected, err)
	}

	response := AdminSearchResponse{Message: "Reconnected"}
	return response, nil
}

// RebuildElasticSearchHandler rebuilds the indices for the primary config
//
// curl -k -X GET http://localhost:8000/1.0/admin/search/rebuild --header "Private-token: YOUR_TOKEN"
func RebuildElasticSearchHandler(tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	user, ok, errMsg := getUserFromJWT(tx, r)

	if !ok && (errMsg.ErrCode != gz.ErrorAuthJWTInvalid &&
		errMsg.ErrCode != gz.ErrorAuthNoUser) {
		return nil, &errMsg
	}

	if !globals.Permissions.IsSystemAdmin(*user.Username) {
		return nil, gz.NewErrorMessage(gz.ErrorUnauthorized)
	}

	deleteIndices(r.Context())
	createIndices(r.Context())
	portfolios.ElasticSearchUpdateAll(r.Context(), tx)

	response := AdminSearchResponse{Message: "Rebuilt indices"}

	return response, nil
}

// UpdateElasticSearchHandler updates the primary ElasticSearch.
//
// curl -k -X GET http://localhost:8000/1.0/admin/search/update --header "Private-token: YOUR_TOKEN"
func UpdateElasticSearchHandler(tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	user, ok, errMsg := getUserFromJWT(tx, r)

	if !ok && (errMsg.ErrCode != gz.ErrorAuthJWTInvalid &&
		errMsg.ErrCode != gz.ErrorAuthNoUser) {
		return nil, &errMsg
	}

	if !globals.Permissions.IsSystemAdmin(*user.Username) {
		return nil, gz.NewErrorMessage(gz.ErrorUnauthorized)
	}

	portfolios.ElasticSearchUpdateAll(r.Context(), tx)

	response := AdminSearchResponse{Message: "Updated indices"}

	return response, nil
}

// connectToElasticSearch establishes a connection to elastic search
func connectToElasticSearch(ctx context.Context) error {
	var err error
	var response map[string]interface{}

	var dbConfig ElasticSearchConfig

	// Get the first primary configuration
	if err = globals.Server.Db.Where("is_primary = 1").First(&dbConfig).Error; err != nil {
		gz.LoggerFromContext(ctx).Debug("No ElasticSearch configuration, skipping")
		return err
	}

	cfg := elasticsearch.Config{
		Addresses: []string{dbConfig.Address},
		Username:  dbConfig.Username,
		Password:  dbConfig.Password,
	}

	// Create a new elastic search client.
	globals.ElasticSearch, err = elasticsearch.NewClient(cfg)
	if err != nil {
		gz.LoggerFromContext(ctx).Error("Elastic search error creating new elasticsearch client:", err)
		return err
	}

	// Get cluster info
	res, err := globals.ElasticSearch.Info()
	if err != nil {
		gz.LoggerFromContext(ctx).Error("Elastic search error getting response:", err)
		return err
	}
	defer res.Body.Close()

	// Check response status
	if res.IsError() {
		gz.LoggerFromContext(ctx).Error("Elastic search error:", res.String())
	}

	// Deserialize the response into a map.
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		gz.LoggerFromContext(ctx).Error("Error parsing the response body:", err)
	}

	// Print client and server version numbers.
	gz.LoggerFromContext(ctx).Info("Elastic Search Client:", elasticsearch.Version)
	gz.LoggerFromContext(ctx).Info("Elastic Search Server:",
		response["version"].(map[string]interface{})["number"])

	return nil
}

// deleteIndices deletes the elasticsearch indices.
func deleteIndices(ctx context.Context) {
	// Set up the request object.
	deleteReq := esapi.IndicesDeleteRequest{
		Index: showcaseIndices,
	}

	// Perform the request with the client.
	_, err := deleteReq.Do(context.Background(), globals.ElasticSearch)
	if err != nil {
		gz.LoggerFromContext(ctx).Error("Error delete indices with response:", err)
	}
}

// createIndex creates an index and appropriate mappings.
func createIndex(ctx context.Context, indexName string) {

	if globals.ElasticSearch == nil {
		return
	}

	// The set of mappings for the portfolios index
	var mappings = `{
    "mappings": {
      "properties": {
        "categories": {
          "type": "text",
          "fields": {
            "keyword": {
              "type": "keyword",
              "ignore_above": 256
            }
          }
        },
        "creator": {
          "type": "text",
          "fields": {
            "keyword": {
              "type": "keyword",
              "ignore_above": 256
            }
          }
        },
        "description": {
          "type": "text",
          "fields": {
            "keyword": {
              "type": "keyword",
              "ignore_above": 256
            }
          }
        },
        "name": {
          "type": "text",
          "fields": {
            "keyword": {
              "type": "keyword",
              "ignore_above": 256
            }
          }
        },
        "owner": {
          "type": "text",
          "fields": {
            "keyword": {
              "type": "keyword",
              "ignore_above": 256
            }
          }
        },
        "tags": {
          "type": "text",
          "fields": {
            "keyword": {
              "type": "keyword",
              "ignore_above": 256
            }
          }
        },
        "status": {
          "type": "keyword"
        },
        "private": {
          "type": "boolean"
        }
      }
    }
  }`

	// Set up the request object.
	mappingReq := esapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(mappings),
	}

	// Perform the request with the client.
	res, err := mappingReq.Do(context.Background(), globals.ElasticSearch)
	if err != nil {
		gz.LoggerFromContext(ctx).Error("Error creating the index with response:", err)
		return
	}
	defer res.Body.Close()

	// Deserialize the response into a map.
	var response map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		gz.LoggerFromContext(ctx).Error("Error parsing the response body:", err)
	}

	gz.LoggerFromContext(ctx).Info("Created portfolios elastic search index and mappings.")
}

// createIndices will create the showcase indices and mappings.
func createIndices(ctx context.Context) {
	for _, index := range showcaseIndices {
		// Check if the index exists.
		indexExistsReq := esapi.IndicesExistsRequest{
			Index: []string{index},
		}

		// Perform the request with the client.
		res, err := indexExistsReq.Do(context.Background(), globals.ElasticSearch)
		if err != nil {
			gz.LoggerFromContext(ctx).Error("Error getting the indices with response:", err)
			continue
		}

		// If the status code is not 200, then we need to create the index and
		// mappings.
		if res.StatusCode != 200 {
			createIndex(ctx, index)
		}
	}
}

// elasticSearch performs a search.
// It's recommended that we don't use ElasticSearch for empty searches.
// Instead, use a direct SQL select.
func elasticSearch(index string, pr *gz.PaginationRequest, owner *string, order, search string, user *users.User, tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.PaginationResult, *gz.ErrMsg) {

	// Build search request body.
	var buf bytes.Buffer
	var query map[string]interface{}

	ctx := r.Context()

	// Did the user specify a search, or is it empty (`?q=`)?
	if len(search) > 0 {

		// The "must" variable will hold each portion of the boolean query.
		// See: https://www.elastic.co/guide/en/elasticsearch/reference/current/query-dsl-bool-query.html
		var must []interface{}

		// Split the search string into its component terms.
		// A search string may contain one or more search terms separated
		// by ampersands.
		terms := strings.Split(search, "&")
		for _, term := range terms {
			// Get each part of the search term.
			// A search term may have two parts separated by a colon.
			//
			// If a colon is present, then the first part is a field name and
			// the second part is the search to perform on the field.
			//
			// If a colon is *not* present then the part is the search to
			// perform.
			parts := strings.Split(term, ":")

			// This will hold the "match" portion of an Elastic Search query.
			var match map[string]interface{}

			if len(parts) > 1 {
				// We are ignoring parts beyond the first two. A user could request
				// ?q=p1:p2:p3:p4. Instead of returning an error, we will just pick
				// out p1 and p2.

				// Create the match based on the first two parts.
				match = map[string]interface{}{
					// Use "query_string" because the "query" parameter supports
					// regular expressions.
					"query_string": map[string]interface{}{
						// The second part (`parts[1]`) contains the search string.
						"query": parts[1],
						// The first part (`parts[0]`) contains the search field.
						"fields": []string{strings.ToLower(parts[0])},
					},
				}
			} else {
				// Create the search based on a single part.
				match = map[string]interface{}{
					// Use "query_string" because the "query" parameter supports
					// regular expressions
					"query_string": map[string]interface{}{
						"query": parts[0],
					},
				}
			}

			// Add the match to the boolean query.
			if len(match) > 0 {
				must = append(must, match)
			}
		}

		// Restrict the results to the requested owner, if any.
		if owner != nil {
			must = append(must, map[string]interface{}{
				"term": map[string]interface{}{
					"owner.keyword": *owner,
				},
			})
		}

		// Restrict the results to the requested status, if any.
		if status := readStatusParam(r); status != "" {
			must = append(must, map[string]interface{}{
				"term": map[string]interface{}{
					"status": status,
				},
			})
		}

		// Construct the whole query
		query = map[string]interface{}{
			"query": map[string]interface{}{
				"bool": map[string]interface{}{
					"must": must,
				},
			},
		}

	} else {
		// We will get here if the search is empty (`?q=`). In this case,
		// use `match_all`.
		query = map[string]interface{}{
			"query": map[string]interface{}{
				"match_all": map[string]interface{}{},
			},
		}
	}

	// Encode the search request.
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, nil, gz.NewErrorMessageWithArgs(gz.ErrorUnexpected, err,
			[]string{"Error encoding search query"})
	}

	// Send the search request to ElasticSearch, and get a response.
	res, err := globals.ElasticSearch.Search(
		globals.ElasticSearch.Search.WithContext(ctx),
		globals.ElasticSearch.Search.WithIndex(index),
		globals.ElasticSearch.Search.WithBody(&buf),
		globals.ElasticSearch.Search.WithTrackTotalHits(true),
		globals.ElasticSearch.Search.WithPretty(),
		globals.ElasticSearch.Search.WithFrom(
			int((gz.Max(pr.Page, 1)-1)*pr.PerPage)),
		globals.ElasticSearch.Search.WithSize(int(pr.PerPage)),
	)

	// Check to see if ElasticSearch returned an error.
	if err != nil {
		return nil, nil, gz.NewErrorMessageWithArgs(gz.ErrorUnexpected, err,
			[]string{"Error getting search response"})
	}

	defer res.Body.Close()

	// Check for error
	if res.IsError() {
		var errResult map[string]interface{}

		if err := json.NewDecoder(res.Body).Decode(&errResult); err != nil {
			return nil, nil, gz.NewErrorMessageWithArgs(gz.ErrorUnexpected, err,
				[]string{"Error parsing the search response error body"})
		}
		return nil, nil, gz.NewErrorMessageWithArgs(gz.ErrorUnexpected, err,
			[]string{"Search error ", res.Status()})
	}

	var elasticResult map[string]interface{}

	// Decode the search response
	if err := json.NewDecoder(res.Body).Decode(&elasticResult); err != nil {
		return nil, nil, gz.NewErrorMessageWithArgs(gz.ErrorUnexpected, err,
			[]string{"Error parsing the search response body"})
	}

	result, count, em := createPortfolioResults(ctx, user, tx, elasticResult)
	if em != nil {
		return nil, nil, em
	}

	// Get the total number of results.
	totalCount, em := readTotalHits(elasticResult)
	if em != nil {
		return nil, nil, em
	}

	// Construct the pagination result
	page := gz.PaginationResult{}
	page.Page = pr.Page
	page.PerPage = pr.PerPage
	page.URL = pr.URL
	page.QueryCount = totalCount
	page.PageFound = count > 0 || (page.Page == 1 && count == 0)

	// Write the pagination headers
	gz.WritePaginationHeaders(page, w, r)

	return result, &page, nil
}

// readSearchHits extracts the hit list from a search response body. A 2xx
// response with an unexpected shape is reported as an error, so callers can
// treat it as a search failure.
func readSearchHits(elasticResult map[string]interface{}) ([]interface{}, *gz.ErrMsg) {
	hitsObj, ok := elasticResult["hits"].(map[string]interface{})
	if !ok {
		return nil, gz.NewErrorMessageWithArgs(gz.ErrorUnexpected, nil,
			[]string{"Malformed search response: missing hits object"})
	}
	hits, ok := hitsObj["hits"].([]interface{})
	if !ok {
		return nil, gz.NewErrorMessageWithArgs(gz.ErrorUnexpected, nil,
			[]string{"Malformed search response: missing hits list"})
	}
	return hits, nil
}

// readTotalHits extracts the total number of matching documents from a search
// response body.
func readTotalHits(elasticResult map[string]interface{}) (int64, *gz.ErrMsg) {
	hitsObj, ok := elasticResult["hits"].(map[string]interface{})
	if !ok {
		return 0, gz.NewErrorMessageWithArgs(gz.ErrorUnexpected, nil,
			[]string{"Malformed search response: missing hits object"})
	}
	totalObj, ok := hitsObj["total"].(map[string]interface{})
	if !ok {
		return 0, gz.NewErrorMessageWithArgs(gz.ErrorUnexpected, nil,
			[]string{"Malformed search response: missing total object"})
	}
	value, ok := totalObj["value"].(float64)
	if !ok {
		return 0, gz.NewErrorMessageWithArgs(gz.ErrorUnexpected, nil,
			[]string{"Malformed search response: missing total value"})
	}
	return int64(value), nil
}

// createPortfolioResults resolves the document IDs returned by ElasticSearch
// back to DB rows, filtering out portfolios the user cannot read. The
// relevance order of the hits is preserved in the returned responses.
func createPortfolioResults(ctx context.Context, user *users.User, tx *gorm.DB, elasticResult map[string]interface{}) (interface{}, int64, *gz.ErrMsg) {
	var responses portfolios.PortfolioResponses
	var resourceIDs []int64

	hits, em := readSearchHits(elasticResult)
	if em != nil {
		return nil, 0, em
	}

	// Build a list of resource ids
	for _, hit := range hits {
		hitMap, ok := hit.(map[string]interface{})
		if !ok {
			gz.LoggerFromContext(ctx).Error("Unable to read search hit.")
			continue
		}
		idString, ok := hitMap["_id"].(string)
		if ok && len(idString) > 0 {
			resourceID, err := strconv.ParseInt(idString, 10, 64)
			if err != nil {
				gz.LoggerFromContext(ctx).Error("Unable to convert ID to int64.", idString)
			}
			resourceIDs = append(resourceIDs, resourceID)
		} else {
			gz.LoggerFromContext(ctx).Error("Unable to convert ID to string.")
		}
	}

	// Get all the portfolios from the DB and add them to the result
	var foundPortfolios []*portfolios.Portfolio
	count := int64(0)
	if err := tx.Where(resourceIDs).Preload("Tags").Preload("Categories").Find(&foundPortfolios).Error; err == nil {
		// The DB returns rows in primary key order. Restore the relevance
		// order of the search hits before building the responses.
		positions := make(map[int64]int, len(resourceIDs))
		for i, id := range resourceIDs {
			positions[id] = i
		}
		sort.Slice(foundPortfolios, func(i, j int) bool {
			return positions[int64(foundPortfolios[i].ID)] < positions[int64(foundPortfolios[j].ID)]
		})

		ps := &portfolios.Service{}
		for _, portfolio := range foundPortfolios {
			restricted := portfolio.IsDraft() || (portfolio.Private != nil && *portfolio.Private)
			if ok, _ := users.CheckPermissions(tx, *portfolio.UUID, user, restricted, permissions.Read); ok {
				count++
				responses = append(responses, *ps.PortfolioToResponse(portfolio))
			}
		}
	}

	return &responses, count, nil
}
