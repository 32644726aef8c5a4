package analysis

import (
	"fmt"

	"github.com/woozymasta/checkcoord/internal/geo"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// BatchEntry is the report of one batch element.
type BatchEntry struct {
	Input  any    `json:"input" yaml:"input"`
	Result Result `json:"result" yaml:"result"`
	Index  int    `json:"index" yaml:"index"`
}

// ValidateBatch validates every element independently. Failures, including
// elements that are not strings, are reported per element.
func ValidateBatch(inputs []any) []BatchEntry {
	entries := make([]BatchEntry, 0, len(inputs))
	invalid := 0

	for i, in := range inputs {
		res := FromOutcome(geo.ValidateValue(in))
		if !res.Valid {
			invalid++
		}
		entries = append(entries, BatchEntry{Index: i, Input: in, Result: res})
	}

	log.Debug().
		Int("total", len(entries)).
		Int("invalid", invalid).
		Msg("Batch validated")

	return entries
}

// ValidateStrings is ValidateBatch for already typed input.
func ValidateStrings(inputs []string) []BatchEntry {
	values := make([]any, len(inputs))
	for i, s := range inputs {
		values[i] = s
	}
	return ValidateBatch(values)
}

// DecodeBatch decodes a JSON or YAML payload that must hold a sequence.
// Any other shape is a caller error and fails with InvalidArgumentShape.
func DecodeBatch(data []byte) ([]any, error) {
	var payload any
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode batch payload: %w", err)
	}

	items, ok := payload.([]any)
	if !ok {
		return nil, &geo.Error{
			Kind:    geo.KindInvalidArgumentShape,
			Message: fmt.Sprintf("batch input must be an array, got %T", payload),
		}
	}

	return items, nil
}
