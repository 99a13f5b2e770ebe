package http

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"shiprates/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// openAPIDoc serves the validated OpenAPI document through the swag registry.
type openAPIDoc struct {
	doc string
}

func (d openAPIDoc) ReadDoc() string {
	return d.doc
}

var (
	swaggerOnce sync.Once
	swaggerErr  error
)

// registerSwagger loads and validates the embedded OpenAPI document, then mounts
// the Swagger UI at /swagger/*.
func registerSwagger(e *echo.Echo) error {
	swaggerOnce.Do(func() {
		spec, err := servers.GetSwagger()
		if err != nil {
			swaggerErr = fmt.Errorf("load openapi document: %w", err)
			return
		}
		if err = spec.Validate(context.Background()); err != nil {
			swaggerErr = fmt.Errorf("validate openapi document: %w", err)
			return
		}

		raw, err := json.Marshal(spec)
		if err != nil {
			swaggerErr = fmt.Errorf("encode openapi document: %w", err)
			return
		}
		swag.Register(swag.Name, openAPIDoc{doc: string(raw)})
	})
	if swaggerErr != nil {
		return swaggerErr
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
