// Package webhooks extracts the update webhook URLs declared in a service
// definition document.
//
// Extraction runs three stages in a single pass:
//   - load: read the raw document (read failures are returned to the caller)
//   - extract: parse it and collect the entries of the x-update-webhooks list
//   - validate: keep only entries that are absolute URLs
//
// Malformed documents, a missing field or a field of the wrong shape all
// produce an empty list rather than an error.
package webhooks

import (
	"github.com/tjfontaine/update-webhooks/internal/document"
)

// Option configures an Extractor.
type Option func(*Extractor)

// WithReader replaces the file-system reader used to load documents.
func WithReader(read document.ReadFunc) Option {
	return func(e *Extractor) {
		if read != nil {
			e.read = read
		}
	}
}

// WithParser replaces the structured-data parser (YAML by default).
func WithParser(p document.Parser) Option {
	return func(e *Extractor) {
		if p != nil {
			e.parser = p
		}
	}
}

// Extractor runs the load, extract and validate pipeline. It holds no
// per-call state and is safe for concurrent use.
type Extractor struct {
	read   document.ReadFunc
	parser document.Parser
}

// New creates an Extractor reading from disk and parsing YAML unless
// overridden by opts.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		read:   document.FileReader,
		parser: document.YAMLParser(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Report describes one extraction in more detail than Extract.
type Report struct {
	Path string
	// Webhooks holds the valid URLs in declaration order.
	Webhooks []string
	// Rejected holds the entries that were dropped by validation.
	Rejected []Candidate
	// ParseErr is set when the document could not be parsed.
	ParseErr error
	// FieldFound is true when the document declares FieldName as a sequence.
	FieldFound bool
}

// Extract returns the valid webhook URLs declared in the document at path.
// The only error it returns is a failure to read the document.
func (e *Extractor) Extract(path string) ([]string, error) {
	report, err := e.Inspect(path)
	if err != nil {
		return nil, err
	}
	return report.Webhooks, nil
}

// ExtractBytes runs the pipeline over an already loaded document.
func (e *Extractor) ExtractBytes(raw []byte) []string {
	return e.inspect(raw).Webhooks
}

// Inspect runs the pipeline like Extract and also reports why entries or
// the whole document were discarded.
func (e *Extractor) Inspect(path string) (Report, error) {
	raw, err := document.Load(e.read, path)
	if err != nil {
		return Report{Path: path}, err
	}
	report := e.inspect(raw)
	report.Path = path
	return report, nil
}

func (e *Extractor) inspect(raw []byte) Report {
	res := document.Parse(e.parser, raw)
	candidates := Candidates(res)
	valid, rejected := partition(candidates)

	return Report{
		Webhooks:   valid,
		Rejected:   rejected,
		ParseErr:   res.Err(),
		FieldFound: hasSequenceField(res),
	}
}

func hasSequenceField(res document.ParseResult) bool {
	tree, ok := res.Tree()
	if !ok {
		return false
	}
	field, ok := tree.Lookup(FieldName)
	return ok && field.Kind() == document.KindSequence
}

// Extract reads the document at path from disk and returns its valid
// webhook URLs using the default YAML parser.
func Extract(path string) ([]string, error) {
	return New().Extract(path)
}
