// Package conformance runs YAML-described language test fixtures against
// the full lex -> parse -> resolve -> interpret pipeline, the same shape
// the template repository uses for its cross-implementation conformance
// suite: one YAML file per TestSuite, one Go subtest per TestCase.
package conformance

// TestSuite is one YAML fixture file: a named group of test cases sharing
// a description.
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase is one program to run and the output it is expected to
// produce.
type TestCase struct {
	Name   string      `yaml:"name"`
	Code   string      `yaml:"code"`
	Expect Expectation `yaml:"expect"`
}

// Expectation describes the two ways a TestCase can be checked: the exact
// sequence of stdout lines printed, and/or a substring that must appear in
// the reported error (compile-time or runtime). A case naming both
// requires both to hold.
type Expectation struct {
	Stdout []string `yaml:"stdout,omitempty"`
	Error  string   `yaml:"error,omitempty"`
}
