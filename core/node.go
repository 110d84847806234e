package core

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NodeKind discriminates the variants of a knowledge-tree Node.
type NodeKind int

const (
	// NodeString is a string scalar.
	NodeString NodeKind = iota + 1
	// NodeNumber is a numeric scalar. The literal text is preserved.
	NodeNumber
	// NodeBool is a boolean scalar. Booleans carry no searchable text.
	NodeBool
	// NodeNull is a JSON null.
	NodeNull
	// NodeList is an ordered sequence of child nodes.
	NodeList
	// NodeRecord is an object with fields in document order.
	NodeRecord
)

// Field is one key/value pair of a record node.
type Field struct {
	Key   string
	Value *Node
}

// Node is a tagged union over the loosely-typed knowledge-tree documents:
// scalar, list, or record. Record fields retain their document order, which
// the corpus extraction relies on for deterministic output.
type Node struct {
	Kind   NodeKind
	Str    string // value for NodeString, literal text for NodeNumber
	Bool   bool   // value for NodeBool
	List   []*Node
	Fields []Field
}

// UnmarshalJSON decodes arbitrary JSON into a Node via the token stream so
// that object keys keep their document order.
func (n *Node) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	parsed, err := decodeNode(dec)
	if err != nil {
		return err
	}
	*n = *parsed
	return nil
}

func decodeNode(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			node := &Node{Kind: NodeRecord}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key token %v", keyTok)
				}
				value, err := decodeNode(dec)
				if err != nil {
					return nil, err
				}
				node.Fields = append(node.Fields, Field{Key: key, Value: value})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return node, nil
		case '[':
			node := &Node{Kind: NodeList}
			for dec.More() {
				elem, err := decodeNode(dec)
				if err != nil {
					return nil, err
				}
				node.List = append(node.List, elem)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return node, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", v)
		}
	case string:
		return &Node{Kind: NodeString, Str: v}, nil
	case json.Number:
		return &Node{Kind: NodeNumber, Str: v.String()}, nil
	case bool:
		return &Node{Kind: NodeBool, Bool: v}, nil
	case nil:
		return &Node{Kind: NodeNull}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// ScalarText returns the searchable text of a scalar node. Only strings and
// numbers carry text; booleans and nulls report false.
func (n *Node) ScalarText() (string, bool) {
	switch n.Kind {
	case NodeString, NodeNumber:
		return n.Str, true
	default:
		return "", false
	}
}

// Field returns the value of the named record field, or nil if the node is
// not a record or the field is absent.
func (n *Node) Field(key string) *Node {
	if n.Kind != NodeRecord {
		return nil
	}
	for _, f := range n.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}
