package portfolios

// Import this file's dependencies
import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/showcase-web/portfolio-server/bundles/category"
	"github.com/showcase-web/portfolio-server/globals"
)

// This is the structure of the data that will be stored in the portfolios index.
type portfolioElastic struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
	Tags        string `json:"tags,omitempty"`
	Categories  string `json:"categories"`
	Creator     string `json:"creator"`
	Status      string `json:"status"`
	Private     bool   `json:"private"`
}

// ElasticSearchRemovePortfolio removes a portfolio from elastic search
func ElasticSearchRemovePortfolio(ctx context.Context, portfolio *Portfolio) {
	if globals.ElasticSearch == nil {
		return
	}

	// Set up the request object.
	req := esapi.DeleteRequest{
		Index:      "showcase_portfolios",
		DocumentID: strconv.FormatUint(uint64(portfolio.ID), 10),
		Refresh:    "true",
	}

	// Perform the request with the client.
	_, err := req.Do(context.Background(), globals.ElasticSearch)
	if err != nil {
		gz.LoggerFromContext(ctx).Critical("Error getting response:", err)
	}
}

// ElasticSearchUpdatePortfolio will update ElasticSearch with a single portfolio.
func ElasticSearchUpdatePortfolio(ctx context.Context, tx *gorm.DB, portfolio Portfolio) {
	if globals.ElasticSearch == nil {
		return
	}

	// Reload the associations. The caller may have just replaced them.
	tx.Model(&portfolio).Related(&portfolio.Tags, "Tags")
	tx.Model(&portfolio).Related(&portfolio.Categories, "Categories")

	// Construct the tag information
	tags := strings.Join(TagsToStrSlice(portfolio.Tags), " ")

	// Construct the category information
	categories := strings.Join(category.CategoriesToStrSlice(portfolio.Categories), " ")

	status := StatusDraft
	if portfolio.Status != nil {
		status = *portfolio.Status
	}

	private := false
	if portfolio.Private != nil {
		private = *portfolio.Private
	}

	// Build the ElasticSearch struct.
	p := portfolioElastic{
		Name:       *portfolio.Name,
		Owner:      *portfolio.Owner,
		Creator:    *portfolio.Creator,
		Tags:       tags,
		Categories: categories,
		Status:     status,
		Private:    private,
	}
	if portfolio.Description != nil {
		p.Description = *portfolio.Description
	}

	// Create the json representation
	jsonPortfolio, _ := json.Marshal(&p)

	// Set up the request object.
	req := esapi.IndexRequest{
		Index:      "showcase_portfolios",
		DocumentID: strconv.FormatUint(uint64(portfolio.ID), 10),
		Body:       strings.NewReader(string(jsonPortfolio)),
		Refresh:    "true",
	}

	// Perform the request with the client.
	add, err := req.Do(context.Background(), globals.ElasticSearch)
	if err != nil {
		gz.LoggerFromContext(ctx).Critical("Error getting response:", err)
		return
	}
	defer add.Body.Close()

	if add.IsError() {
		gz.LoggerFromContext(ctx).Error("[", add.Status(), "] Error indexing document ID:", portfolio.ID)
	} else {
		// Deserialize the response into a map.
		var r map[string]interface{}
		if err := json.NewDecoder(add.Body).Decode(&r); err != nil {
			gz.LoggerFromContext(ctx).Error("Error parsing the response body:", err)
		} else {
			// Print the response status and indexed document version.
			gz.LoggerFromContext(ctx).Debug("[", add.Status(), "] ", r["result"], "; version=", int(r["_version"].(float64)))
		}
	}
}

// ElasticSearchUpdateAll will update ElasticSearch with all the portfolios in
// the SQL database.
func ElasticSearchUpdateAll(ctx context.Context, tx *gorm.DB) {
	if globals.ElasticSearch == nil {
		return
	}

	// Make sure that we have a Portfolio table.
	if hasTable := tx.HasTable(&Portfolio{}); hasTable {
		var portfolios Portfolios

		// Get all the portfolios
		tx.Preload("Tags").Preload("Categories").Find(&portfolios)

		// TODO: Use the Bulk ElasticSearch API.

		// Add each portfolio to ElasticSearch.
		for _, portfolio := range portfolios {
			ElasticSearchUpdatePortfolio(ctx, tx, portfolio)
		}
	}
}
