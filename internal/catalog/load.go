package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed catalog.json
var embeddedCatalog []byte

//go:embed catalog.schema.json
var embeddedSchema []byte

const schemaURL = "schema://catalog.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func init() {
	c, err := Parse(embeddedCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	def = c
}

// document is the on-disk shape of a catalog.
type document struct {
	Version    string     `json:"version"`
	Categories []Category `json:"categories"`
}

// Parse validates raw JSON against the catalog schema, decodes it, and
// builds a catalog from it.
func Parse(data []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := catalogSchema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Version, doc.Categories)
}

// catalogSchema compiles the embedded schema once.
func catalogSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var schemaDoc any
		if err := json.Unmarshal(embeddedSchema, &schemaDoc); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, schemaDoc); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}
