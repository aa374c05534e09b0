package dashsmart

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrInvalidPayload marks payloads that fail the structural envelope check.
// Use errors.Is to classify failures from DecodePayload.
var ErrInvalidPayload = errors.New("dashsmart: invalid payload")

var payloadValidator = &schemaValidator{}

// schemaValidator compiles the payload envelope schema once and reuses it.
type schemaValidator struct {
	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

func (v *schemaValidator) validate(doc any) error {
	v.once.Do(func() {
		data, err := json.Marshal(payloadSchema())
		if err != nil {
			v.err = fmt.Errorf("dashsmart: marshal payload schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		const name = "payload.json"
		if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
			v.err = fmt.Errorf("dashsmart: load payload schema: %w", err)
			return
		}
		v.compiled, v.err = compiler.Compile(name)
	})
	if v.err != nil {
		return v.err
	}
	if err := v.compiled.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}
