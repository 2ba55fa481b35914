package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortFunctionName(t *testing.T) {
	tests := map[string]string{
		"github.com/narender/product-console/console/src/controllers.(*Dashboard).Fetch":       "Dashboard.Fetch",
		"github.com/narender/product-console/console/src/validation.ValidateProduct":           "ValidateProduct",
		"github.com/narender/product-console/common/db.(*FileDatabase).Read.func1":            "FileDatabase.Read",
		"main.main":                                                                            "main",
		"github.com/narender/product-console/mock-backend/src/services.productService.Create": "productService.Create",
		"": unknownFunction,
	}
	for in, want := range tests {
		assert.Equal(t, want, ShortFunctionName(in), in)
	}
}

func namedCaller() string {
	return GetCallerFunctionName(2)
}

func TestGetCallerFunctionName(t *testing.T) {
	assert.Equal(t, "namedCaller", namedCaller())
}
