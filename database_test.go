package main

import (
	"testing"

	mocket "github.com/Selvatico/go-mocket"
	"github.com/stretchr/testify/assert"
)

func TestIndexIsPresentQueryError(t *testing.T) {
	mockDb := SetupDbMockCatcher()
	mocket.Catcher.Reset()
	mocket.Catcher.NewMock().WithQuery("information_schema.statistics").WithQueryException()

	// A failing lookup reports the error instead of panicking on a nil
	// result set.
	found, err := indexIsPresent(mockDb, "portfolios", "portfolios_fulltext")
	assert.Error(t, err)
	assert.False(t, found)
}
