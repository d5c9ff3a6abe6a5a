package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadedTest pairs a TestCase with the suite and file it came from, so a
// failure message can cite its origin.
type LoadedTest struct {
	File  string
	Suite string
	Test  TestCase
}

// LoadDir walks dir for *.yaml fixture files and returns every test case
// they contain, in file-then-declaration order.
func LoadDir(dir string) ([]LoadedTest, error) {
	var loaded []LoadedTest

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		var suite TestSuite
		if err := yaml.Unmarshal(data, &suite); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		for _, tc := range suite.Tests {
			loaded = append(loaded, LoadedTest{File: entry.Name(), Suite: suite.Name, Test: tc})
		}
	}

	return loaded, nil
}
