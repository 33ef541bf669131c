package fsm

import (
	"gopkg.in/yaml.v3"
)

// Parse attempts to parse JSON or YAML into a validated Definition.
func Parse(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		// yaml can handle JSON too, so a single attempt is fine
		return def, cloneError(ErrInvalidDefinition, "failed to parse machine definition", err, nil)
	}
	return def, def.Validate()
}
