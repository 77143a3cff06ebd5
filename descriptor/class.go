package descriptor

import "strings"

// SimpleName returns the last package component, nesting qualifier included:
// "android.view.View$OnClickListener" yields "View$OnClickListener".
func (c *Class) SimpleName() string {
	name := c.Name
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}
	return name
}

func (c *Class) Package() string {
	name := c.Name
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i]
		}
	}
	return ""
}

// IsNested reports whether the class is a nested or inner class.
func (c *Class) IsNested() bool {
	return strings.ContainsRune(c.SimpleName(), '$')
}

// AllMethods returns the class's complete public method view: declared
// methods first, then inherited ones from superclasses and superinterfaces.
// An inherited method shadowed by an identical name and parameter list is
// dropped, so overrides appear once with the most-derived declaration.
func (c *Class) AllMethods() []Method {
	var out []Method
	seen := make(map[string]bool)
	visited := make(map[string]bool)
	c.collectMethods(&out, seen, visited)
	return out
}

func (c *Class) collectMethods(out *[]Method, seen, visited map[string]bool) {
	if visited[c.Name] {
		return
	}
	visited[c.Name] = true

	for i := range c.Methods {
		m := &c.Methods[i]
		key := m.Name + paramKey(m.Params)
		if seen[key] {
			continue
		}
		seen[key] = true
		*out = append(*out, *m)
	}
	if c.Super != nil {
		c.Super.collectMethods(out, seen, visited)
	}
	for _, iface := range c.Interfaces {
		iface.collectMethods(out, seen, visited)
	}
}

func paramKey(params []*Type) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// AssignableTo reports whether the class is the named type or inherits from
// it, directly or transitively.
func (c *Class) AssignableTo(base string) bool {
	if c.Name == base {
		return true
	}
	if c.SuperName == base {
		return true
	}
	for _, name := range c.InterfaceNames {
		if name == base {
			return true
		}
	}
	if c.Super != nil && c.Super.AssignableTo(base) {
		return true
	}
	for _, iface := range c.Interfaces {
		if iface.AssignableTo(base) {
			return true
		}
	}
	return false
}
