package description

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/transmission/pkg/types"
)

// yamlDocument is the top level of a YAML description.
type yamlDocument struct {
	Transmissions []types.TransmissionInfo `yaml:"transmissions"`
}

// ParseYAML parses a YAML description. Unknown keys are rejected so a
// misspelled field does not silently fall back to a default. An empty
// document yields no records.
func ParseYAML(data []byte) ([]types.TransmissionInfo, error) {
	var doc yamlDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	return doc.Transmissions, nil
}
