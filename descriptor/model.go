// Package descriptor models the host API as read-only structural records:
// classes, their members, and a recursive type representation. It is the
// boundary between the raw classfile substrate and the extraction engine.
package descriptor

import "strings"

type TypeKind uint8

const (
	KindClass TypeKind = iota
	KindPrimitive
	KindArray
	KindVariable
	KindWildcard
)

// Type is a declared type reference. Class names are in source form
// (dots between packages) with the '$' qualifier of nested classes kept.
type Type struct {
	Kind   TypeKind
	Name   string  // class name, primitive keyword, or variable name
	Elem   *Type   // array element
	Args   []*Type // type arguments of a parameterized reference
	Bounds []*Type // upper bounds of a type variable

	// TypeParams is the number of type parameters the referenced class
	// declares. Filled by the snapshot link pass for classes it knows.
	TypeParams int
}

// String renders the canonical name used for member signatures.
func (t *Type) String() string {
	switch t.Kind {
	case KindArray:
		return t.Elem.String() + "[]"
	case KindWildcard:
		return "?"
	case KindClass:
		if len(t.Args) == 0 {
			return t.Name
		}
		var sb strings.Builder
		sb.WriteString(t.Name)
		sb.WriteByte('<')
		for i, a := range t.Args {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(a.String())
		}
		sb.WriteByte('>')
		return sb.String()
	default:
		return t.Name
	}
}

func (t *Type) IsVoid() bool {
	return t.Kind == KindPrimitive && t.Name == "void"
}

func (t *Type) IsBoolean() bool {
	return t.Kind == KindPrimitive && t.Name == "boolean"
}

// Method is a declared method or constructor.
type Method struct {
	Name     string
	Return   *Type
	Params   []*Type
	Abstract bool
	Static   bool
	Final    bool
}

// Property is a bean-style accessor pairing derived from method naming
// conventions.
type Property struct {
	Name    string
	Type    *Type
	Getter  *Method
	Setter  *Method
	Indexed bool
}

// Class describes one class or interface of the host API.
type Class struct {
	Name           string // qualified source name; '$' kept for nested classes
	SuperName      string // "" for java.lang.Object
	InterfaceNames []string

	Super      *Class   // linked by the snapshot when known
	Interfaces []*Class // linked by the snapshot when known

	IsInterface bool
	Abstract    bool
	Final       bool

	TypeParams   []*Type  // KindVariable entries, declaration order
	Methods      []Method // declared public methods
	Constructors []Method // declared public constructors
}
