package httpx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `validate:"required,max=5"`
	Count int    `validate:"gte=0"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, ValidateStruct(sample{Name: "ok"}))
	})

	t.Run("collects every field", func(t *testing.T) {
		details := ValidateStruct(sample{Name: strings.Repeat("x", 6), Count: -1})

		assert.Equal(t, []ErrorDetail{
			{Field: "name", Message: "Name must be at most 5 characters"},
			{Field: "count", Message: "Count must be greater than or equal to 0"},
		}, details)
	})

	t.Run("required", func(t *testing.T) {
		details := ValidateStruct(sample{})

		assert.Equal(t, []ErrorDetail{{Field: "name", Message: "Name is required"}}, details)
	})
}

type tagged struct {
	ID    int    `json:"id" validate:"gte=0"`
	Title string `json:"title,omitempty" validate:"max=3"`
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	details := ValidateStruct(tagged{ID: -1, Title: "long"})

	assert.Equal(t, []ErrorDetail{
		{Field: "id", Message: "id must be greater than or equal to 0"},
		{Field: "title", Message: "title must be at most 3 characters"},
	}, details)
}
