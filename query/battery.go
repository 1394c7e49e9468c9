// SPDX-License-Identifier: MIT

package query

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Battery is the YAML document holding a list of queries.
type Battery struct {
	Queries []Query `yaml:"queries"`
}

// LoadBattery reads and validates a YAML battery file.
func LoadBattery(path string) ([]Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read battery %s: %w", path, err)
	}
	defer f.Close()

	qs, err := DecodeBattery(f)
	if err != nil {
		return nil, fmt.Errorf("battery %s: %w", path, err)
	}

	return qs, nil
}

// DecodeBattery parses a YAML battery from r. Unknown fields are rejected,
// and every query must pass Validate.
func DecodeBattery(r io.Reader) ([]Query, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var b Battery
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty battery", ErrInvalidQuery)
		}
		return nil, fmt.Errorf("parse battery: %w", err)
	}
	if len(b.Queries) == 0 {
		return nil, fmt.Errorf("%w: battery has no queries", ErrInvalidQuery)
	}

	for i, q := range b.Queries {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
	}

	return b.Queries, nil
}
