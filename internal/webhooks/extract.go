package webhooks

import (
	"github.com/tjfontaine/update-webhooks/internal/document"
)

// FieldName is the top-level key that declares the webhooks to notify on update.
const FieldName = "x-update-webhooks"

// Candidate is one raw entry of the webhook field, before validation.
type Candidate struct {
	// Value is the string form of a scalar entry. Empty for non-scalars.
	Value string
	// Scalar is false for entries that are mappings, sequences or null.
	Scalar bool
	// Kind is the shape of the entry as it appeared in the document.
	Kind document.Kind
}

// Candidates collects the entries of FieldName from a parse result.
// Failed parses, a missing key and non-sequence values all yield no candidates.
func Candidates(res document.ParseResult) []Candidate {
	tree, ok := res.Tree()
	if !ok {
		return nil
	}

	field, ok := tree.Lookup(FieldName)
	if !ok {
		return nil
	}

	items, ok := field.Items()
	if !ok {
		return nil
	}

	out := make([]Candidate, 0, len(items))
	for _, item := range items {
		value, scalar := item.Scalar()
		out = append(out, Candidate{
			Value:  value,
			Scalar: scalar,
			Kind:   item.Kind(),
		})
	}
	return out
}
