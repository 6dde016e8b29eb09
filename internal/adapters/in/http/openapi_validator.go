package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

// OpenAPIValidator rejects requests that do not match the OpenAPI document.
// Authentication is left to the handlers; paths the document does not
// describe (health, metrics, docs) pass through untouched.
func OpenAPIValidator(swagger *openapi3.T, logger *slog.Logger) (echo.MiddlewareFunc, error) {
	swagger.Servers = nil
	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				logger.DebugContext(req.Context(), "request rejected by openapi validation",
					"method", req.Method, "path", req.URL.Path, "error", validateErr)
				return echo.NewHTTPError(http.StatusBadRequest, invalidRequestMessage(validateErr))
			}
			return next(ctx)
		}
	}, nil
}

// invalidRequestMessage names the offending parameter or body field without
// the schema dump kin-openapi attaches to its errors.
func invalidRequestMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) && reqErr.Parameter != nil {
		return "Invalid request: " + reqErr.Parameter.Name
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		if path := schemaErr.JSONPointer(); len(path) > 0 {
			return "Invalid request: " + strings.Join(path, ".")
		}
	}

	if reqErr != nil && reqErr.RequestBody != nil {
		return "Invalid request body"
	}
	return "Invalid request"
}
