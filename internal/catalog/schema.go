package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// ErrSchema is returned when a document does not match its schema.
var ErrSchema = errors.New("schema validation failed")

//go:embed schemas/*.json
var schemaFS embed.FS

const (
	itemsSchema     = "schemas/items.schema.json"
	materialsSchema = "schemas/materials.schema.json"
	schemaBaseURL   = "https://github.com/Yalort/lootgen/"
)

var (
	schemaOnce sync.Once
	schemas    map[string]*jsonschema.Schema
	schemaErr  error
)

// compiledSchema returns the compiled schema for an embedded schema file.
func compiledSchema(name string) (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schemas, schemaErr = compileSchemas(itemsSchema, materialsSchema)
	})
	if schemaErr != nil {
		return nil, schemaErr
	}
	s, ok := schemas[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %s", name)
	}
	return s, nil
}

func compileSchemas(names ...string) (map[string]*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	for _, name := range names {
		raw, err := schemaFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", name, err)
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parse schema %s: %w", name, err)
		}
		if err := c.AddResource(schemaBaseURL+name, doc); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", name, err)
		}
	}
	out := make(map[string]*jsonschema.Schema, len(names))
	for _, name := range names {
		s, err := c.Compile(schemaBaseURL + name)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		out[name] = s
	}
	return out, nil
}

// validateDocument checks a YAML or JSON document against an embedded schema.
// The document is round-tripped through encoding/json so the validator sees
// the same value types for both input formats.
func validateDocument(data []byte, schemaName string) error {
	s, err := compiledSchema(schemaName)
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	js, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert document: %w", err)
	}
	var inst any
	if err := json.Unmarshal(js, &inst); err != nil {
		return fmt.Errorf("convert document: %w", err)
	}

	if err := s.Validate(inst); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			var msgs []string
			collectSchemaErrors(verr, &msgs)
			return fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return nil
}

// collectSchemaErrors flattens the cause tree, keeping leaf failures only.
func collectSchemaErrors(err *jsonschema.ValidationError, out *[]string) {
	if len(err.Causes) == 0 {
		loc := "/" + strings.Join(err.InstanceLocation, "/")
		kw := ""
		if err.ErrorKind != nil {
			kw = strings.Join(err.ErrorKind.KeywordPath(), ".")
		}
		if kw == "" {
			*out = append(*out, fmt.Sprintf("at %s", loc))
		} else {
			*out = append(*out, fmt.Sprintf("at %s: %s", loc, kw))
		}
		return
	}
	for _, c := range err.Causes {
		collectSchemaErrors(c, out)
	}
}
