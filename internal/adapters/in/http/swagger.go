package http

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

var swaggerOnce sync.Once

// openAPIDoc serves the OpenAPI document as JSON to the Swagger UI.
type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

// RegisterSwagger publishes spec under swag's default instance name, where the
// echo-swagger handler reads doc.json from. Only the first call registers.
func RegisterSwagger(spec *openapi3.T) error {
	doc, err := spec.MarshalJSON()
	if err != nil {
		return err
	}

	swaggerOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{json: string(doc)})
	})
	return nil
}
