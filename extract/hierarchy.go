package extract

import (
	"strings"

	"github.com/brandhill/scaloid/descriptor"
)

// AncestorInfo holds the member signatures a class's superclass already
// exposes. Members matching one of these are excluded from the class's own
// model so wrappers never redeclare inherited surface.
type AncestorInfo struct {
	PropertySignatures map[string]bool
	MethodSignatures   map[string]bool
	GetterNames        map[string]bool
}

// AncestorSignatures derives the exclusion sets from the immediate
// superclass's complete introspection view. No transitive walk happens here:
// the superclass's own method view already folds in everything above it.
func AncestorSignatures(c *descriptor.Class) AncestorInfo {
	info := AncestorInfo{
		PropertySignatures: make(map[string]bool),
		MethodSignatures:   make(map[string]bool),
		GetterNames:        make(map[string]bool),
	}
	super := c.Super
	if super == nil {
		return info
	}

	for _, p := range super.Properties() {
		info.PropertySignatures[propertySignature(p)] = true
		if p.Getter != nil {
			info.GetterNames[p.Getter.Name] = true
		}
	}
	for _, m := range super.AllMethods() {
		info.MethodSignatures[methodSignature(m)] = true
	}
	return info
}

// AncestorNames returns the simple names of the inheritance chain, root
// first, the class itself last.
func AncestorNames(c *descriptor.Class) []string {
	var names []string
	for cur := c; cur != nil; cur = cur.Super {
		names = append(names, strings.ReplaceAll(cur.SimpleName(), "$", "."))
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}

// methodSignature is the sole identity criterion for "already declared by an
// ancestor": name, return type name, argument type names.
func methodSignature(m descriptor.Method) string {
	var sb strings.Builder
	sb.WriteString(m.Name)
	sb.WriteByte(':')
	sb.WriteString(typeName(m.Return))
	sb.WriteString(":[")
	for i, p := range m.Params {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(typeName(p))
	}
	sb.WriteByte(']')
	return sb.String()
}

func propertySignature(p descriptor.Property) string {
	return p.Name + ":" + typeName(p.Type)
}

func typeName(t *descriptor.Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}
