// Package config loads the runtime options host programs can set
// around a KLambda Context — debug output and the trampoline's
// iteration bound — from a YAML file, validated against a JSON Schema
// before it is trusted, the way core/types.Validator validates
// decorator parameters in the teacher.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// RuntimeConfig are the options internal/runtime.Context accepts.
type RuntimeConfig struct {
	Debug                   bool `yaml:"debug"`
	MaxTrampolineIterations int  `yaml:"max_trampoline_iterations"`
}

// Default returns the zero-value-equivalent runtime configuration:
// debug off, trampoline unbounded.
func Default() *RuntimeConfig {
	return &RuntimeConfig{Debug: false, MaxTrampolineIterations: 0}
}

// schemaJSON constrains a config file to the two known keys and their
// expected shapes, catching typos (a misspelled key) and type errors
// (a string where an integer is expected) before they reach YAML
// struct decoding, which would otherwise silently ignore the former.
const schemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"debug": { "type": "boolean" },
		"max_trampoline_iterations": { "type": "integer", "minimum": 0 }
	}
}`

var validator = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("config.json", strings.NewReader(schemaJSON)); err != nil {
		panic(fmt.Sprintf("config: invalid embedded schema: %s", err))
	}
	return compiler.MustCompile("config.json")
}

// Load reads and validates the YAML config file at path, falling
// back to Default() for any key it omits.
func Load(path string) (*RuntimeConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var generic interface{}
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if generic == nil {
		return Default(), nil
	}
	if err := validator.Validate(generic); err != nil {
		return nil, fmt.Errorf("config: %s failed validation: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return cfg, nil
}
