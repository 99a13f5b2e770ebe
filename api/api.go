// Package api embeds the OpenAPI document of the HTTP interface.
package api

import _ "embed"

// Spec is the raw openapi.yaml.
//
//go:embed openapi.yaml
var Spec []byte
