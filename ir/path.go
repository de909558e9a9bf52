package ir

import (
	"fmt"
	"strings"
)

// Path locates a node by the fields leading to it from the top of its
// document.  It is written "$.Kerbin.orbit.primary"; fields with special
// characters are quoted, as in "$.'Kerbin.b'".
type Path []string

func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, field := range p {
		b.WriteString("." + quoteField(field))
	}
	return b.String()
}

// Path returns the location of y within its document.
func (y *Node) Path() string {
	return y.Location().String()
}

// Location returns the fields leading from the top of the document to y.
func (y *Node) Location() Path {
	var rev Path
	for x := y; x.Parent != nil; x = x.Parent {
		rev = append(rev, x.ParentField)
	}
	res := make(Path, len(rev))
	for i, field := range rev {
		res[len(rev)-1-i] = field
	}
	return res
}

func ParsePath(s string) (Path, error) {
	if s == "" || s[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", s)
	}
	var res Path
	rest := s[1:]
	for rest != "" {
		if rest[0] != '.' {
			return nil, fmt.Errorf("path %q: expected '.' at %q", s, rest)
		}
		var (
			field string
			err   error
		)
		field, rest, err = scanField(rest[1:])
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", s, err)
		}
		res = append(res, field)
	}
	return res, nil
}

func scanField(s string) (string, string, error) {
	if s == "" {
		return "", "", fmt.Errorf("missing field name")
	}
	if s[0] != '\'' {
		end := strings.IndexByte(s, '.')
		if end == -1 {
			return s, "", nil
		}
		if end == 0 {
			return "", "", fmt.Errorf("missing field name")
		}
		return s[:end], s[end:], nil
	}
	var field []byte
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) {
				i++
				field = append(field, s[i])
			}
		case '\'':
			return string(field), s[i+1:], nil
		default:
			field = append(field, s[i])
		}
	}
	return "", "", fmt.Errorf("unterminated quoted field")
}

// GetPath returns the node at path below y, or nil if there is none.
// Stepping into a node that is not an object is an error.
func (y *Node) GetPath(path string) (*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	at := y
	for _, field := range p {
		if at.Type != ObjectType {
			return nil, fmt.Errorf("%w: expected object at %s, got %s", ErrType, at.Path(), at.Type)
		}
		if at = at.Get(field); at == nil {
			return nil, nil
		}
	}
	return at, nil
}

func quoteField(f string) string {
	if f != "" && !strings.ContainsAny(f, `'.$ \`) {
		return f
	}
	f = strings.ReplaceAll(f, `\`, `\\`)
	return "'" + strings.ReplaceAll(f, "'", `\'`) + "'"
}
