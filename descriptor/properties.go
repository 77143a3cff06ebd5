package descriptor

import (
	"sort"
	"strings"
	"unicode"
)

// Properties derives the class's bean-style properties from its complete
// public method view. Accessors follow the java.beans conventions: getX/isX
// with no arguments and setX with one argument, isX only for boolean.
// Indexed accessor forms (getX(int), setX(int, T)) flag the property as
// indexed. The result is sorted by property name.
func (c *Class) Properties() []Property {
	props := make(map[string]*Property)
	at := func(name string) *Property {
		p, ok := props[name]
		if !ok {
			p = &Property{Name: name}
			props[name] = p
		}
		return p
	}

	for _, m := range c.AllMethods() {
		if m.Static {
			continue
		}
		m := m
		switch {
		case strings.HasPrefix(m.Name, "get") && len(m.Name) > 3 && !m.Return.IsVoid():
			name := Decapitalize(m.Name[3:])
			switch len(m.Params) {
			case 0:
				p := at(name)
				if p.Getter == nil {
					p.Getter = &m
				}
			case 1:
				if m.Params[0].Name == "int" && m.Params[0].Kind == KindPrimitive {
					at(name).Indexed = true
				}
			}
		case strings.HasPrefix(m.Name, "is") && len(m.Name) > 2 && m.Return.IsBoolean():
			if len(m.Params) == 0 {
				name := Decapitalize(m.Name[2:])
				p := at(name)
				if p.Getter == nil {
					p.Getter = &m
				}
			}
		case strings.HasPrefix(m.Name, "set") && len(m.Name) > 3:
			name := Decapitalize(m.Name[3:])
			switch len(m.Params) {
			case 1:
				p := at(name)
				if p.Setter == nil {
					p.Setter = &m
				}
			case 2:
				if m.Params[0].Name == "int" && m.Params[0].Kind == KindPrimitive {
					at(name).Indexed = true
				}
			}
		}
	}

	out := make([]Property, 0, len(props))
	for _, p := range props {
		if p.Getter == nil && p.Setter == nil && !p.Indexed {
			continue
		}
		if p.Getter != nil {
			p.Type = p.Getter.Return
		} else if p.Setter != nil {
			p.Type = p.Setter.Params[0]
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Decapitalize lowers the first rune of an accessor suffix, except when the
// first two characters are both upper case ("URL" stays "URL"), matching
// java.beans.Introspector.decapitalize.
func Decapitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if len(r) > 1 && unicode.IsUpper(r[0]) && unicode.IsUpper(r[1]) {
		return s
	}
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
