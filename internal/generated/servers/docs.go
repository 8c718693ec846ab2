package servers

import (
	"encoding/json"
	"sync"

	"github.com/swaggo/swag"
)

// openAPIDoc serves the embedded document to swag consumers such as the
// swagger UI handler. The YAML source is rendered to JSON once.
type openAPIDoc struct {
	once sync.Once
	doc  string
}

func (d *openAPIDoc) ReadDoc() string {
	d.once.Do(func() {
		swagger, err := GetSwagger()
		if err != nil {
			return
		}
		raw, err := json.Marshal(swagger)
		if err != nil {
			return
		}
		d.doc = string(raw)
	})
	return d.doc
}

func init() {
	swag.Register(swag.Name, &openAPIDoc{})
}
