package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoriesToStrSlice(t *testing.T) {
	name := "Web"
	slug := "web"

	sl := []string{name, name, name}

	c := Category{
		Name: &name,
		Slug: &slug,
	}

	cts := Categories{c, c, c}

	result := CategoriesToStrSlice(cts)
	assert.Equal(t, sl, result)
}
