// Package description reads mechanism descriptions and produces the
// transmission configuration records the loaders consume.
//
// Two formats are understood: a YAML document with a top-level
// transmissions list, and URDF robot descriptions in which transmissions
// appear directly under <robot> or inside <ros2_control> blocks. Neither
// parser interprets numbers; raw values are handed to the loaders as found.
package description

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/transmission/pkg/types"
)

// Description errors.
var (
	ErrUnknownFormat = errors.New("unknown description format")
	ErrNotFound      = errors.New("transmission not found")
)

// ParseFile reads path and parses it according to its extension.
func ParseFile(path string) ([]types.TransmissionInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading description: %w", err)
	}

	var infos []types.TransmissionInfo
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		infos, err = ParseYAML(data)
	case ".urdf", ".xml":
		infos, err = ParseURDF(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return infos, nil
}

// Find returns the record called name.
func Find(infos []types.TransmissionInfo, name string) (types.TransmissionInfo, error) {
	for _, info := range infos {
		if info.Name == name {
			return info, nil
		}
	}
	return types.TransmissionInfo{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}
