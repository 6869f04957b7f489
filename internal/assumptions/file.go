package assumptions

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/Simplici0/savings/internal/savings"
)

// LoadFile reads a YAML or JSON assumptions file. Keys the file omits keep
// their compiled-in default.
func LoadFile(path string) (savings.Assumptions, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return savings.Assumptions{}, fmt.Errorf("read assumptions file: %w", err)
	}
	return Parse(content)
}

// Parse decodes YAML or JSON assumptions on top of the defaults.
func Parse(content []byte) (savings.Assumptions, error) {
	a := savings.DefaultAssumptions()
	if err := yaml.UnmarshalStrict(content, &a); err != nil {
		return savings.Assumptions{}, fmt.Errorf("decode assumptions: %w", err)
	}
	if err := a.Validate(); err != nil {
		return savings.Assumptions{}, fmt.Errorf("validate assumptions: %w", err)
	}
	return a, nil
}

// Marshal encodes assumptions as YAML.
func Marshal(a savings.Assumptions) ([]byte, error) {
	out, err := yaml.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode assumptions: %w", err)
	}
	return out, nil
}
