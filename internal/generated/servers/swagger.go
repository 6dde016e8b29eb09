package servers

import (
	"fmt"

	"parcels/api"

	"github.com/getkin/kin-openapi/openapi3"
)

// GetSwagger parses the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = swagger.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return swagger, nil
}
