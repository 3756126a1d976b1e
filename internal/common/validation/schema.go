// Package validation checks API response payloads against JSON schemas
// before any field is trusted at a call site.
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"ats-client/internal/common/errors"
)

// ValidateJSON validates a raw JSON document against a schema. A schema
// violation or undecodable document comes back as a PARSE_ERROR so the
// caller rejects the payload instead of rendering partial state.
func ValidateJSON(document []byte, schema string) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.NewParseError(fmt.Sprintf("validation error: %v", err))
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return errors.NewParseError(strings.Join(errs, "; "))
	}

	return nil
}
