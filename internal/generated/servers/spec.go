package servers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// GetSwagger returns the parsed OpenAPI document of the POS API.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}
	return swagger, nil
}

// swaggerDoc serves the document to echo-swagger as JSON.
type swaggerDoc struct {
	once sync.Once
	doc  string
}

func (s *swaggerDoc) ReadDoc() string {
	s.once.Do(func() {
		swagger, err := GetSwagger()
		if err != nil {
			return
		}
		raw, err := json.Marshal(swagger)
		if err != nil {
			return
		}
		s.doc = string(raw)
	})
	return s.doc
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
