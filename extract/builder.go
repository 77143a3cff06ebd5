package extract

import (
	"fmt"
	"strings"

	"github.com/brandhill/scaloid/descriptor"
)

// Builder assembles one ClassModel per class. A type that fails to resolve
// makes the whole class's surface ill-defined, so Build fails for that class
// rather than emitting a partial model; every filtering step below it is a
// silent exclusion, not an error.
type Builder struct {
	provider descriptor.Provider
	rootNS   string // namespace prefix of the extracted API, e.g. "android"
}

func NewBuilder(provider descriptor.Provider, rootNS string) *Builder {
	return &Builder{provider: provider, rootNS: rootNS}
}

func (b *Builder) Build(c *descriptor.Class) (*ClassModel, error) {
	shape, err := b.classShape(c)
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", c.Name, err)
	}

	model := &ClassModel{
		Name:      strings.ReplaceAll(c.SimpleName(), "$", "."),
		Package:   c.Package(),
		Type:      shape,
		Ancestors: AncestorNames(c),
		Abstract:  c.Abstract,
		Final:     c.Final,
	}

	// Wrap the parent only when it belongs to the extracted API; foreign
	// roots like java.lang.Object get no wrapper parent.
	if c.SuperName != "" && b.inNamespace(c.SuperName) {
		var paramCount int
		if c.Super != nil {
			paramCount = len(c.Super.TypeParams)
		}
		parent, err := ResolveType(&descriptor.Type{
			Kind:       descriptor.KindClass,
			Name:       c.SuperName,
			TypeParams: paramCount,
		})
		if err != nil {
			return nil, fmt.Errorf("class %s parent: %w", c.Name, err)
		}
		model.Parent = &parent
	}

	for _, ctor := range c.Constructors {
		params := make([]TypeShape, len(ctor.Params))
		for i, p := range ctor.Params {
			if params[i], err = ResolveType(p); err != nil {
				return nil, fmt.Errorf("class %s constructor: %w", c.Name, err)
			}
		}
		model.Constructors = append(model.Constructors, params)
	}

	anc := AncestorSignatures(c)
	if model.Properties, err = ExtractProperties(c, anc); err != nil {
		return nil, err
	}
	if model.Listeners, err = ExtractListeners(c, anc, b.provider); err != nil {
		return nil, err
	}
	return model, nil
}

// classShape renders the class's own declaration: its name with its declared
// type variables as arguments.
func (b *Builder) classShape(c *descriptor.Class) (TypeShape, error) {
	shape := TypeShape{Name: strings.ReplaceAll(c.Name, "$", ".")}
	for _, tp := range c.TypeParams {
		arg, err := ResolveType(tp)
		if err != nil {
			return TypeShape{}, err
		}
		shape.Args = append(shape.Args, arg)
	}
	return shape, nil
}

func (b *Builder) inNamespace(name string) bool {
	return name == b.rootNS || strings.HasPrefix(name, b.rootNS+".")
}
