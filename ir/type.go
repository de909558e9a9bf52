package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	ObjectType
)

var typeNames = [...]string{
	NullType:   "Null",
	NumberType: "Number",
	StringType: "String",
	ObjectType: "Object",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for _, tt := range Types() {
		if typeNames[tt] == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("%w: unrecognized type %q", ErrType, d)
}

// Types returns every node type in declaration order.
func Types() []Type {
	res := make([]Type, len(typeNames))
	for i := range typeNames {
		res[i] = Type(i)
	}
	return res
}

// IsLeaf reports whether nodes of type t hold no other nodes.
func (t Type) IsLeaf() bool {
	return t != ObjectType
}
