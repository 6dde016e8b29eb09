// Package api embeds the OpenAPI document the HTTP server is generated from.
package api

import _ "embed"

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -generate types,server -package servers -o ../internal/generated/servers/servers.gen.go openapi.yml

//go:embed openapi.yml
var OpenAPI []byte
