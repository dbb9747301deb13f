// Package apidocs embeds the OpenAPI document of the JSON API. The document is
// served as-is, registered with swag for the Swagger UI and used to validate
// incoming API requests.
package apidocs

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var document []byte

// Document returns the raw OpenAPI document.
func Document() []byte {
	return document
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	return string(document)
}

var registerOnce sync.Once

// Register makes the document available to echo-swagger under the default
// instance name. It is safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{})
	})
}
