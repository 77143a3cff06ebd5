// Package extract walks class descriptors and produces the normalized model
// a wrapper generator consumes: type shapes, bean properties with overloaded
// setters, and listener registrations expanded into per-callback entries.
package extract

import "strings"

// TypeShape is the normalized recursive type representation. For a type
// variable, Args holds its upper bounds rather than generic arguments.
type TypeShape struct {
	Name     string
	Args     []TypeShape
	Variable bool
}

func (s TypeShape) String() string {
	if len(s.Args) == 0 {
		return s.Name
	}
	var sb strings.Builder
	sb.WriteString(s.Name)
	sb.WriteByte('[')
	for i, a := range s.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

type MethodModel struct {
	Name       string
	Return     TypeShape
	Args       []TypeShape
	TypeParams []TypeShape // distinct type variables appearing in Return or Args
	Abstract   bool
	Override   bool // getter shadows an ancestor getter of the same name
}

type PropertyModel struct {
	Name        string
	Type        TypeShape // getter return type, or first setter argument type
	Getter      *MethodModel
	Setters     []MethodModel // sorted by first-argument type name
	SwitchAlias string        // "" when the name has no trailing "Enabled"
	NameClash   bool          // a zero-argument method already uses the property name
}

type ListenerCallbackModel struct {
	Name   string
	Return TypeShape
	Args   []TypeShape
	Target bool // the callback this ListenerModel represents
}

type ListenerModel struct {
	Name               string // the represented callback's name
	Return             TypeShape
	Args               []TypeShape
	HasArgs            bool
	RegistrationMethod string // the original add/set method
	Interface          string // listener interface name
	Callbacks          []ListenerCallbackModel
}

type ClassModel struct {
	Name         string // simple name
	Package      string
	Type         TypeShape
	Parent       *TypeShape // nil when the superclass is outside the API namespace
	Constructors [][]TypeShape
	Properties   []PropertyModel // sorted by name
	Listeners    []ListenerModel // sorted by name
	Ancestors    []string        // simple names, root first, the class itself last
	Abstract     bool
	Final        bool
}

// QualifiedName returns the package-qualified class name used to key the
// extraction result.
func (m *ClassModel) QualifiedName() string {
	if m.Package == "" {
		return m.Name
	}
	return m.Package + "." + m.Name
}
