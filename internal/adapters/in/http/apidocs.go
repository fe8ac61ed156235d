package http

import (
	"encoding/json"
	"sync"

	"qrave/internal/generated/servers"

	"github.com/swaggo/swag"
)

// apiDoc serves the embedded OpenAPI document to the swagger UI.
type apiDoc struct {
	once sync.Once
	doc  string
}

func (d *apiDoc) ReadDoc() string {
	d.once.Do(func() {
		swagger, err := servers.GetSwagger()
		if err != nil {
			return
		}
		b, err := json.Marshal(swagger)
		if err != nil {
			return
		}
		d.doc = string(b)
	})
	return d.doc
}

func init() {
	swag.Register(swag.Name, &apiDoc{})
}
