package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled caches schemas by Schema.Name. Definitions never change at
// runtime, so the cache is append-only.
var compiled = struct {
	sync.RWMutex
	byName map[string]*jsonschema.Schema
}{byName: make(map[string]*jsonschema.Schema)}

// validateResponse checks raw model output against the requested schema.
// A nil schema accepts anything; every failure mode is reported as
// *ErrInvalidResponse carrying the offending output.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("not JSON: %w", err)}
	}

	s, err := compiledSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	if err := s.Validate(doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	return nil
}

func compiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	compiled.RLock()
	s, ok := compiled.byName[schema.Name]
	compiled.RUnlock()
	if ok {
		return s, nil
	}

	s, err := compileDefinition(schema)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	compiled.Lock()
	compiled.byName[schema.Name] = s
	compiled.Unlock()
	return s, nil
}

func compileDefinition(schema *Schema) (*jsonschema.Schema, error) {
	// The compiler wants a decoded JSON value; round-trip the definition
	// map so nested types come out as plain any values.
	buf, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	url := "schema://" + schema.Name + ".json"
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	return c.Compile(url)
}
