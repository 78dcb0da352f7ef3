package lesson

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidationError reports a card that failed schema validation.
type ValidationError struct {
	Path string // file path, empty for in-memory parses
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid lesson card %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid lesson card: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compiledCardSchema compiles cardSchema once per process.
func compiledCardSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The compiler wants a parsed JSON value, so round-trip the
		// definition through encoding/json.
		raw, err := json.Marshal(cardSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal card schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			schemaErr = fmt.Errorf("parse card schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://lesson-card.json"
		if err := c.AddResource(url, parsed); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}

// Parse validates and decodes a lesson card, then runs the one-time
// normalization pass. The returned document is ready for the engine
// and must be treated as immutable for the session.
func Parse(data []byte) (*Lesson, error) {
	schema, err := compiledCardSchema()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ValidationError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := schema.Validate(doc); err != nil {
		return nil, &ValidationError{Err: err}
	}

	var l Lesson
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, &ValidationError{Err: fmt.Errorf("decode: %w", err)}
	}

	Normalize(&l)
	return &l, nil
}

// LoadFile parses the lesson card at path.
func LoadFile(path string) (*Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lesson card: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Path = path
		}
		return nil, err
	}
	return l, nil
}
