package extract

import (
	"errors"
	"strings"

	"github.com/brandhill/scaloid/descriptor"
)

// Placeholder is the shape name standing in for an unknown type argument:
// wildcards, and the single represented parameter slot of a raw generic
// reference.
const Placeholder = "_"

var errAbsentType = errors.New("cannot resolve absent type")

// ResolveType converts a declared type reference into its normalized shape.
// Every declared member type must resolve; an absent reference is an error
// that aborts extraction of the enclosing class.
//
// A raw reference to a generic class is rendered with one placeholder
// argument regardless of how many parameters the class declares; only the
// first slot is represented.
func ResolveType(t *descriptor.Type) (TypeShape, error) {
	return resolveType(t, nil)
}

func resolveType(t *descriptor.Type, visiting map[string]bool) (TypeShape, error) {
	if t == nil {
		return TypeShape{}, errAbsentType
	}

	switch t.Kind {
	case descriptor.KindArray:
		elem, err := resolveType(t.Elem, visiting)
		if err != nil {
			return TypeShape{}, err
		}
		return TypeShape{Name: "Array", Args: []TypeShape{elem}}, nil

	case descriptor.KindVariable:
		shape := TypeShape{Name: t.Name, Variable: true}
		// A bound may refer back to its own variable; render such inner
		// references bare to keep the shape finite.
		if visiting[t.Name] {
			return shape, nil
		}
		if visiting == nil {
			visiting = make(map[string]bool)
		}
		visiting[t.Name] = true
		for _, b := range t.Bounds {
			bound, err := resolveType(b, visiting)
			if err != nil {
				return TypeShape{}, err
			}
			shape.Args = append(shape.Args, bound)
		}
		delete(visiting, t.Name)
		return shape, nil

	case descriptor.KindWildcard:
		return TypeShape{Name: Placeholder}, nil

	case descriptor.KindPrimitive:
		return TypeShape{Name: primitiveShapeName(t.Name)}, nil

	default: // KindClass
		shape := TypeShape{Name: strings.ReplaceAll(t.Name, "$", ".")}
		if len(t.Args) > 0 {
			for _, a := range t.Args {
				arg, err := resolveType(a, visiting)
				if err != nil {
					return TypeShape{}, err
				}
				shape.Args = append(shape.Args, arg)
			}
		} else if t.TypeParams > 0 {
			shape.Args = []TypeShape{{Name: Placeholder}}
		}
		return shape, nil
	}
}

// primitiveShapeName maps void to the unit type and capitalizes the rest:
// int becomes Int, boolean becomes Boolean.
func primitiveShapeName(name string) string {
	if name == "void" {
		return "Unit"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
