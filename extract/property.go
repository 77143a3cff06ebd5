package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brandhill/scaloid/descriptor"
)

// ExtractProperties derives the class's property models. Candidates are the
// class's bean properties; a candidate survives when it is not indexed, its
// name starts with an ASCII letter, and its signature is not already exposed
// by an ancestor. Setters are recovered by re-scanning the method view for
// compile-time overloads the single-valued bean binding hides.
func ExtractProperties(c *descriptor.Class, anc AncestorInfo) ([]PropertyModel, error) {
	methods := c.AllMethods()

	var out []PropertyModel
	for _, p := range c.Properties() {
		if p.Indexed || !startsWithASCIILetter(p.Name) {
			continue
		}
		if anc.PropertySignatures[propertySignature(p)] {
			continue
		}

		var getter *MethodModel
		if p.Getter != nil && !anc.MethodSignatures[methodSignature(*p.Getter)] {
			g, err := methodModel(*p.Getter)
			if err != nil {
				return nil, fmt.Errorf("property %s.%s getter: %w", c.Name, p.Name, err)
			}
			// A same-named ancestor getter with a narrower return type is
			// still an override for the generator.
			g.Override = anc.GetterNames[p.Getter.Name]
			getter = &g
		}

		setterName := "set" + capitalize(p.Name)
		var setters []MethodModel
		for _, m := range methods {
			if m.Name != setterName || m.Static || m.Abstract || len(m.Params) != 1 {
				continue
			}
			if anc.MethodSignatures[methodSignature(m)] {
				continue
			}
			sm, err := methodModel(m)
			if err != nil {
				return nil, fmt.Errorf("property %s.%s setter: %w", c.Name, p.Name, err)
			}
			setters = append(setters, sm)
		}
		sort.SliceStable(setters, func(i, j int) bool {
			return setters[i].Args[0].Name < setters[j].Args[0].Name
		})

		if getter == nil && len(setters) == 0 {
			continue
		}

		var propType TypeShape
		if getter != nil {
			propType = getter.Return
		} else {
			propType = setters[0].Args[0]
		}

		out = append(out, PropertyModel{
			Name:        p.Name,
			Type:        propType,
			Getter:      getter,
			Setters:     setters,
			SwitchAlias: switchAlias(p.Name),
			NameClash:   hasZeroArgMethod(methods, p.Name),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// switchAlias turns a trailing-"Enabled" property name into its toggle
// alias: soundEffectsEnabled yields SoundEffects.
func switchAlias(name string) string {
	trimmed := strings.TrimSuffix(name, "Enabled")
	if trimmed == name || trimmed == "" {
		return ""
	}
	return capitalize(trimmed)
}

// hasZeroArgMethod reports whether any zero-argument method uses the exact
// property name, anywhere on the class or its ancestors.
func hasZeroArgMethod(methods []descriptor.Method, name string) bool {
	for _, m := range methods {
		if m.Name == name && len(m.Params) == 0 && !m.Static {
			return true
		}
	}
	return false
}

func startsWithASCIILetter(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// methodModel resolves one descriptor method into its model, collecting the
// distinct type variables its shapes mention.
func methodModel(m descriptor.Method) (MethodModel, error) {
	ret, err := ResolveType(m.Return)
	if err != nil {
		return MethodModel{}, err
	}
	model := MethodModel{
		Name:     m.Name,
		Return:   ret,
		Abstract: m.Abstract,
	}
	for _, p := range m.Params {
		arg, err := ResolveType(p)
		if err != nil {
			return MethodModel{}, err
		}
		model.Args = append(model.Args, arg)
	}

	seen := make(map[string]bool)
	collectTypeVars(model.Return, seen, &model.TypeParams)
	for _, a := range model.Args {
		collectTypeVars(a, seen, &model.TypeParams)
	}
	return model, nil
}

func collectTypeVars(s TypeShape, seen map[string]bool, out *[]TypeShape) {
	if s.Variable {
		if !seen[s.Name] {
			seen[s.Name] = true
			*out = append(*out, s)
		}
		return
	}
	for _, a := range s.Args {
		collectTypeVars(a, seen, out)
	}
}
