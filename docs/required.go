package docs

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/masnyjimmy/reqdoc/requiredness"
)

// RequiredDetails is the `requiredDetails` entry of a param or field:
// a boolean, or a mapping keyed by method, `request`, `response` and `default`.
type RequiredDetails struct {
	requiredness.Override
}

func (r *RequiredDetails) UnmarshalYAML(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	override, err := requiredness.ParseOverride(raw)
	if err != nil {
		return fmt.Errorf("requiredDetails: %w", err)
	}

	r.Override = override
	return nil
}
