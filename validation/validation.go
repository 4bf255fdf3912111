package validation

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// ErrInternal marks failures of the gate itself, as opposed to bad input.
var ErrInternal = errors.New("internal validation error")

type Source string

const (
	SourceBody  Source = "body"
	SourceQuery Source = "query"
	SourcePath  Source = "path"
)

const (
	rootContext    = "(root)"
	requiredErrTyp = "required"
)

type Schema struct {
	Name   string
	schema *gojsonschema.Schema
	root   *node
}

// node is the subset of a schema document used to normalize input before
// it is validated.
type node struct {
	Type       string           `json:"type"`
	Trim       bool             `json:"x-trim"`
	Default    any              `json:"default"`
	Properties map[string]*node `json:"properties"`
	Items      *node            `json:"items"`
}

type Schemas struct {
	schemas map[string]*Schema
}

// LoadSchemas compiles every embedded schema document.
func LoadSchemas() (*Schemas, error) {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("%w: reading schemas: %w", ErrInternal, err)
	}
	s := &Schemas{schemas: make(map[string]*Schema, len(entries))}
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		raw, err := schemaFS.ReadFile("schemas/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("%w: reading schema %s: %w", ErrInternal, name, err)
		}
		schema, err := NewSchema(name, raw)
		if err != nil {
			return nil, err
		}
		s.schemas[name] = schema
	}
	return s, nil
}

func (s *Schemas) Get(name string) (*Schema, error) {
	schema, ok := s.schemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown schema %q", ErrInternal, name)
	}
	return schema, nil
}

func NewSchema(name string, document []byte) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return nil, fmt.Errorf("%w: compiling schema %s: %w", ErrInternal, name, err)
	}
	root := &node{}
	if err := json.Unmarshal(document, root); err != nil {
		return nil, fmt.Errorf("%w: parsing schema %s: %w", ErrInternal, name, err)
	}
	return &Schema{Name: name, schema: compiled, root: root}, nil
}

// Validate normalizes raw and checks it against the schema. Query and path
// input arrives as strings and is coerced to the declared types first.
// Field errors describe bad input; a non-nil error wraps ErrInternal.
func (s *Schema) Validate(raw any, source Source) (map[string]any, []models.FieldError, error) {
	normalized := s.root.normalize(raw, source != SourceBody)

	result, err := s.schema.Validate(gojsonschema.NewGoLoader(normalized))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: validating against %s: %w", ErrInternal, s.Name, err)
	}
	if !result.Valid() {
		return nil, fieldErrors(source, result.Errors()), nil
	}

	data, ok := normalized.(map[string]any)
	if !ok {
		return nil, nil, fmt.Errorf("%w: schema %s accepted a non-object value", ErrInternal, s.Name)
	}
	return data, nil, nil
}

func (n *node) normalize(value any, coerce bool) any {
	if n == nil {
		return value
	}
	switch v := value.(type) {
	case map[string]any:
		if len(n.Properties) == 0 {
			return v
		}
		out := make(map[string]any, len(n.Properties))
		for name, prop := range n.Properties {
			child, ok := v[name]
			if !ok {
				if prop.Default != nil {
					out[name] = prop.Default
				}
				continue
			}
			out[name] = prop.normalize(child, coerce)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = n.Items.normalize(v[i], coerce)
		}
		return out
	case string:
		if n.Trim {
			v = strings.TrimSpace(v)
		}
		if coerce {
			return n.coerce(v)
		}
		return v
	}
	return value
}

// coerce converts a string to the declared scalar type. Unparseable values
// are returned unchanged so the schema reports the type mismatch.
func (n *node) coerce(v string) any {
	switch n.Type {
	case "integer":
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	case "number":
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	case "boolean":
		switch v {
		case "true":
			return true
		case "false":
			return false
		}
	}
	return v
}

func fieldErrors(source Source, errs []gojsonschema.ResultError) []models.FieldError {
	details := make([]models.FieldError, 0, len(errs))
	for _, e := range errs {
		field := strings.TrimPrefix(strings.TrimPrefix(e.Context().String(), rootContext), ".")
		if e.Type() == requiredErrTyp {
			if property, ok := e.Details()["property"].(string); ok {
				switch {
				case field == "":
					field = property
				case !strings.HasSuffix("."+field, "."+property):
					field = field + "." + property
				}
			}
		}
		if field == "" {
			field = string(source)
		}
		details = append(details, models.FieldError{Field: field, Message: e.Description()})
	}
	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Field < details[j].Field
	})
	return details
}
