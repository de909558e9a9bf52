package ir

import (
	"fmt"
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Number  string
	Float64 *float64
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

// FromNumber creates a number node whose text is fixed to text.  Encoders
// write text verbatim, f is kept for consumers wanting the value.
func FromNumber(text string, f float64) *Node {
	return &Node{
		Type:    NumberType,
		Number:  text,
		Float64: &f,
	}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals creates an object with fields in the order of kvs.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	for i := range kvs {
		res.append(kvs[i].Key, kvs[i].Val)
	}
	return res
}

// Set appends field key with value val to the object y.  Keys are not
// required to be unique; Set reports ErrDuplicate after appending when key
// was already present.
func (y *Node) Set(key string, val *Node) error {
	if y.Type != ObjectType {
		return fmt.Errorf("%w: cannot set field %q on %s at %s", ErrType, key, y.Type, y.Path())
	}
	dup := y.Get(key) != nil
	y.append(key, val)
	if dup {
		return fmt.Errorf("%w: %q at %s", ErrDuplicate, key, y.Path())
	}
	return nil
}

func (y *Node) append(key string, val *Node) {
	val.Parent = y
	val.ParentField = key
	y.Fields = append(y.Fields, &Node{
		Type:        StringType,
		Parent:      y,
		ParentField: key,
		String:      key,
	})
	y.Values = append(y.Values, val)
}

// Get returns the value of the first field named key, or nil.
func (y *Node) Get(key string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for i, f := range y.Fields {
		if f.String == key {
			return y.Values[i]
		}
	}
	return nil
}

// Keys returns the field names of an object in order.
func (y *Node) Keys() []string {
	if y.Type != ObjectType {
		return nil
	}
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

// NumberText returns the text an encoder writes for a number node.
func (y *Node) NumberText() string {
	switch {
	case y.Number != "":
		return y.Number
	case y.Float64 != nil:
		return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
	default:
		return "0"
	}
}
