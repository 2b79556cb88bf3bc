/*
File    : susumu/config/config.go

Package config defines host-level knobs for running Susumu programs
(SPEC_FULL.md §6.3), loadable from YAML via gopkg.in/yaml.v3 — the
serialization format akashmaji946-go-mix's go.mod already carries as an
indirect dependency of its test tooling, promoted here to a direct one.
*/
package config

import "gopkg.in/yaml.v3"

// Config controls evaluation limits and which optional domain builtin
// modules (SPEC_FULL.md §5) are available to a running program.
type Config struct {
	// StepBudget caps the number of evaluator steps before a host program
	// aborts execution (spec.md §5: "host programs embedding Susumu may
	// impose a step budget"). Zero means unlimited.
	StepBudget int `yaml:"step_budget"`

	// Modules toggles optional domain builtin groups by name (see
	// builtin.ModuleNames): json, format, identity, text, inspect. A name
	// absent from the map is treated as enabled; only explicit `false`
	// entries disable a module.
	Modules map[string]bool `yaml:"modules"`
}

// Default returns a Config with no step budget and every domain module
// enabled.
func Default() Config {
	return Config{StepBudget: 0, Modules: nil}
}

// Parse decodes a YAML document into a Config.
func Parse(doc []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(doc, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
