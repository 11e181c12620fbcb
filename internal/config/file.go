package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileValues maps environment variable names to values, e.g.
//
//	WIKI_BACKEND_URL: https://wiki.example.com
//	LOG_LEVEL: debug
type FileValues map[string]string

// ApplyFile reads a YAML file of FileValues and exports every entry whose
// variable is not already set in the environment.
func ApplyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config.ApplyFile: %w", err)
	}

	var values FileValues
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return fmt.Errorf("config.ApplyFile %s: %w", path, err)
	}

	for name, value := range values {
		if _, set := os.LookupEnv(name); set {
			continue
		}
		if err := os.Setenv(name, value); err != nil {
			return fmt.Errorf("config.ApplyFile %s: %w", name, err)
		}
	}
	return nil
}
