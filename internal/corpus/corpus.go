// Package corpus loads YAML golden-fixture files used by the package
// reflow's end-to-end regression tests.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Case is one golden fixture: an input message, the widths it should
// be reflowed with, and the expected output.
type Case struct {
	Name          string `yaml:"name"`
	Input         string `yaml:"input"`
	Width         int    `yaml:"width"`
	HeadlineWidth int    `yaml:"headline_width"`
	Expect        string `yaml:"expect"`
}

// Load reads every *.yaml file in dir and returns their Cases, in
// directory-listing order.
func Load(dir string) ([]Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("corpus: read %s: %w", dir, err)
	}

	var cases []Case
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("corpus: read %s: %w", path, err)
		}
		var c Case
		if err := yaml.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("corpus: parse %s: %w", path, err)
		}
		if c.Name == "" {
			c.Name = e.Name()
		}
		cases = append(cases, c)
	}
	return cases, nil
}
