package http

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func loadContract(t *testing.T) *openapi3.T {
	t.Helper()

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(filepath.Join("..", "..", "..", "..", "api", "openapi.yml"))
	require.NoError(t, err)

	return doc
}

func TestOpenAPIContract_IsValid(t *testing.T) {
	doc := loadContract(t)

	require.NoError(t, doc.Validate(context.Background()))
}

func TestOpenAPIContract_CoversEveryRegisteredRoute(t *testing.T) {
	doc := loadContract(t)

	e := echo.New()
	NewServer(Handlers{}).RegisterRoutes(e)

	for _, route := range e.Routes() {
		contractPath := strings.TrimPrefix(route.Path, "/api/v1")
		contractPath = strings.ReplaceAll(contractPath, ":id", "{id}")

		item := doc.Paths.Find(contractPath)
		require.NotNilf(t, item, "no contract path for %s %s", route.Method, route.Path)
		require.NotNilf(t, item.GetOperation(route.Method),
			"no contract operation for %s %s", route.Method, route.Path)
	}
}

func TestOpenAPIContract_DeclaresNoUnroutedOperations(t *testing.T) {
	doc := loadContract(t)

	e := echo.New()
	NewServer(Handlers{}).RegisterRoutes(e)

	routed := make(map[string]bool)
	for _, route := range e.Routes() {
		path := strings.ReplaceAll(strings.TrimPrefix(route.Path, "/api/v1"), ":id", "{id}")
		routed[route.Method+" "+path] = true
	}

	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			require.Truef(t, routed[method+" "+path],
				"contract declares %s %s but no route serves it", method, path)
		}
	}
}
