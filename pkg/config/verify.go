package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema checks the config against the embedded JSON schema.
// Every config section and key must be known to the schema and numeric values must respect
// the schema's minimum and maximum.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema schemaDoc
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root, ok := schema.Defs["Config"]
	if !ok {
		return fmt.Errorf("schema has no Config definition")
	}

	for section, values := range configMap {
		ref, ok := root.Properties[section]
		if !ok {
			return fmt.Errorf("section %q not in schema", section)
		}
		def, ok := schema.resolve(ref.Ref)
		if !ok {
			return fmt.Errorf("section %q has unresolved schema ref %q", section, ref.Ref)
		}
		for key, val := range values {
			prop, ok := def.Properties[key]
			if !ok {
				return fmt.Errorf("%s.%s not in schema", section, key)
			}
			if err := prop.check(val); err != nil {
				return fmt.Errorf("%s.%s: %w", section, key, err)
			}
		}
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}

type schemaDoc struct {
	Defs map[string]schemaDef `json:"$defs"`
}

type schemaDef struct {
	Properties map[string]schemaProp `json:"properties"`
}

type schemaProp struct {
	Ref     string   `json:"$ref"`
	Type    string   `json:"type"`
	Minimum *float64 `json:"minimum"`
	Maximum *float64 `json:"maximum"`
}

func (d schemaDoc) resolve(ref string) (schemaDef, bool) {
	const prefix = "#/$defs/"
	if len(ref) <= len(prefix) || ref[:len(prefix)] != prefix {
		return schemaDef{}, false
	}
	def, ok := d.Defs[ref[len(prefix):]]
	return def, ok
}

func (p schemaProp) check(val any) error {
	num, ok := val.(float64)
	if !ok {
		return nil
	}
	if p.Minimum != nil && num < *p.Minimum {
		return fmt.Errorf("%v is less than minimum %v", num, *p.Minimum)
	}
	if p.Maximum != nil && num > *p.Maximum {
		return fmt.Errorf("%v is greater than maximum %v", num, *p.Maximum)
	}
	return nil
}
