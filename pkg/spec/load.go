package spec

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quantforge-lab/freqgen/pkg/errors"
)

// Parse decodes a YAML generation spec. The result is not validated;
// callers run Validate before generating.
func Parse(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSpecParseFailed, "failed to parse spec YAML", err)
	}

	return &s, nil
}

// Load reads and decodes a YAML generation spec from disk.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeSpecParseFailed, err, "failed to read spec file %s", path)
	}

	return Parse(data)
}
