package document

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant a Node holds.
type Kind int

const (
	KindNull Kind = iota
	KindScalar
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Node is a generic parsed value. Only the field matching Kind is populated.
// The zero Node is null.
type Node struct {
	kind   Kind
	scalar string
	items  []Node
	fields map[string]Node
}

// NewNode converts a decoded value (as produced by YAML or JSON decoders) into
// a Node. Unknown types become scalars via their fmt representation.
func NewNode(v interface{}) Node {
	switch val := v.(type) {
	case nil:
		return Node{}
	case Node:
		return val
	case string:
		return Node{kind: KindScalar, scalar: val}
	case bool:
		return Node{kind: KindScalar, scalar: strconv.FormatBool(val)}
	case int:
		return Node{kind: KindScalar, scalar: strconv.Itoa(val)}
	case int64:
		return Node{kind: KindScalar, scalar: strconv.FormatInt(val, 10)}
	case uint64:
		return Node{kind: KindScalar, scalar: strconv.FormatUint(val, 10)}
	case float64:
		return Node{kind: KindScalar, scalar: strconv.FormatFloat(val, 'g', -1, 64)}
	case []interface{}:
		items := make([]Node, 0, len(val))
		for _, item := range val {
			items = append(items, NewNode(item))
		}
		return Node{kind: KindSequence, items: items}
	case map[string]interface{}:
		fields := make(map[string]Node, len(val))
		for k, item := range val {
			fields[k] = NewNode(item)
		}
		return Node{kind: KindMapping, fields: fields}
	case map[interface{}]interface{}:
		// YAML allows non-string keys; normalize them to their string form.
		fields := make(map[string]Node, len(val))
		for k, item := range val {
			fields[fmt.Sprint(k)] = NewNode(item)
		}
		return Node{kind: KindMapping, fields: fields}
	default:
		return Node{kind: KindScalar, scalar: fmt.Sprint(val)}
	}
}

// Kind returns the variant held by n.
func (n Node) Kind() Kind { return n.kind }

// IsNull reports whether n is the null variant.
func (n Node) IsNull() bool { return n.kind == KindNull }

// Scalar returns the string form of a scalar node.
func (n Node) Scalar() (string, bool) {
	if n.kind != KindScalar {
		return "", false
	}
	return n.scalar, true
}

// Items returns the elements of a sequence node in document order.
func (n Node) Items() ([]Node, bool) {
	if n.kind != KindSequence {
		return nil, false
	}
	return n.items, true
}

// Lookup returns the value stored under key in a mapping node.
// It reports false when n is not a mapping or the key is absent.
func (n Node) Lookup(key string) (Node, bool) {
	if n.kind != KindMapping {
		return Node{}, false
	}
	v, ok := n.fields[key]
	return v, ok
}

// Len returns the number of elements in a sequence or mapping, 0 otherwise.
func (n Node) Len() int {
	switch n.kind {
	case KindSequence:
		return len(n.items)
	case KindMapping:
		return len(n.fields)
	default:
		return 0
	}
}
