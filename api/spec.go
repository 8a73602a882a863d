// Package api holds the embedded OpenAPI document for the service.
package api

import _ "embed"

// OpenAPISpec is the raw OpenAPI YAML served at /openapi.json.
//
//go:embed openapi.yaml
var OpenAPISpec []byte
