package document

import (
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
)

// ErrParse is wrapped by every parse failure reported in a ParseResult.
var ErrParse = errors.New("document parse failed")

// Parser turns raw document bytes into a top-level mapping.
// koanf parsers satisfy it directly.
type Parser interface {
	Unmarshal([]byte) (map[string]interface{}, error)
}

// YAMLParser returns the default structured-data parser.
func YAMLParser() Parser {
	return yaml.Parser()
}

// ParseResult is either a parsed tree or a parse failure, never both.
type ParseResult struct {
	tree Node
	err  error
}

// Tree returns the parsed tree. It reports false for a failed parse.
func (r ParseResult) Tree() (Node, bool) {
	if r.err != nil {
		return Node{}, false
	}
	return r.tree, true
}

// Err returns the parse failure, or nil on success.
func (r ParseResult) Err() error { return r.err }

// OK reports whether parsing succeeded.
func (r ParseResult) OK() bool { return r.err == nil }

// Parse runs p over raw. Parser errors and panics are captured in the
// returned result. An empty document parses to an empty mapping.
func Parse(p Parser, raw []byte) (res ParseResult) {
	defer func() {
		if rec := recover(); rec != nil {
			res = ParseResult{err: fmt.Errorf("%w: parser panic: %v", ErrParse, rec)}
		}
	}()

	m, err := p.Unmarshal(raw)
	if err != nil {
		return ParseResult{err: fmt.Errorf("%w: %v", ErrParse, err)}
	}
	if m == nil {
		m = map[string]interface{}{}
	}
	return ParseResult{tree: NewNode(m)}
}
