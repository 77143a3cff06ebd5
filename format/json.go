// Package format renders extraction results for consumers. The JSON layout
// is stable: classes are emitted sorted by qualified name so repeated runs
// over the same input produce identical bytes.
package format

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/brandhill/scaloid/extract"
)

type JSONEncoder struct {
	w       io.Writer
	classes map[string]*extract.ClassModel
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(classes map[string]*extract.ClassModel) error {
	e.classes = classes
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err = e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	names := make([]string, 0, len(e.classes))
	for name := range e.classes {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]jsonClass, len(names))
	for i, name := range names {
		out[i] = buildClass(e.classes[name])
	}
	return json.MarshalIndent(out, "", "  ")
}

type jsonClass struct {
	Name         string         `json:"name"`
	Package      string         `json:"package"`
	Type         jsonType       `json:"type"`
	Parent       *jsonType      `json:"parent,omitempty"`
	Constructors [][]jsonType   `json:"constructors,omitempty"`
	Properties   []jsonProperty `json:"properties,omitempty"`
	Listeners    []jsonListener `json:"listeners,omitempty"`
	Ancestors    []string       `json:"ancestors"`
	Abstract     bool           `json:"abstract,omitempty"`
	Final        bool           `json:"final,omitempty"`
}

type jsonType struct {
	Name     string     `json:"name"`
	Args     []jsonType `json:"args,omitempty"`
	Variable bool       `json:"variable,omitempty"`
}

type jsonMethod struct {
	Name       string     `json:"name"`
	ReturnType jsonType   `json:"returnType"`
	Args       []jsonType `json:"args,omitempty"`
	TypeParams []jsonType `json:"typeParams,omitempty"`
	Abstract   bool       `json:"abstract,omitempty"`
	Override   bool       `json:"override,omitempty"`
}

type jsonProperty struct {
	Name        string       `json:"name"`
	Type        jsonType     `json:"type"`
	Getter      *jsonMethod  `json:"getter,omitempty"`
	Setters     []jsonMethod `json:"setters,omitempty"`
	SwitchAlias string       `json:"switchAlias,omitempty"`
	NameClash   bool         `json:"nameClash,omitempty"`
}

type jsonCallback struct {
	Name       string     `json:"name"`
	ReturnType jsonType   `json:"returnType"`
	Args       []jsonType `json:"args,omitempty"`
	Target     bool       `json:"target,omitempty"`
}

type jsonListener struct {
	Name               string         `json:"name"`
	ReturnType         jsonType       `json:"returnType"`
	Args               []jsonType     `json:"args,omitempty"`
	HasArgs            bool           `json:"hasArgs,omitempty"`
	RegistrationMethod string         `json:"registrationMethod"`
	Interface          string         `json:"interface"`
	Callbacks          []jsonCallback `json:"callbacks"`
}

func buildClass(m *extract.ClassModel) jsonClass {
	out := jsonClass{
		Name:       m.Name,
		Package:    m.Package,
		Type:       buildType(m.Type),
		Ancestors:  m.Ancestors,
		Abstract:   m.Abstract,
		Final:      m.Final,
		Properties: buildProperties(m.Properties),
		Listeners:  buildListeners(m.Listeners),
	}
	if m.Parent != nil {
		parent := buildType(*m.Parent)
		out.Parent = &parent
	}
	for _, ctor := range m.Constructors {
		out.Constructors = append(out.Constructors, buildTypes(ctor))
	}
	return out
}

func buildType(s extract.TypeShape) jsonType {
	return jsonType{
		Name:     s.Name,
		Args:     buildTypes(s.Args),
		Variable: s.Variable,
	}
}

func buildTypes(shapes []extract.TypeShape) []jsonType {
	if len(shapes) == 0 {
		return nil
	}
	out := make([]jsonType, len(shapes))
	for i, s := range shapes {
		out[i] = buildType(s)
	}
	return out
}

func buildMethod(m extract.MethodModel) jsonMethod {
	return jsonMethod{
		Name:       m.Name,
		ReturnType: buildType(m.Return),
		Args:       buildTypes(m.Args),
		TypeParams: buildTypes(m.TypeParams),
		Abstract:   m.Abstract,
		Override:   m.Override,
	}
}

func buildProperties(props []extract.PropertyModel) []jsonProperty {
	if len(props) == 0 {
		return nil
	}
	out := make([]jsonProperty, len(props))
	for i, p := range props {
		jp := jsonProperty{
			Name:        p.Name,
			Type:        buildType(p.Type),
			SwitchAlias: p.SwitchAlias,
			NameClash:   p.NameClash,
		}
		if p.Getter != nil {
			getter := buildMethod(*p.Getter)
			jp.Getter = &getter
		}
		for _, s := range p.Setters {
			jp.Setters = append(jp.Setters, buildMethod(s))
		}
		out[i] = jp
	}
	return out
}

func buildListeners(listeners []extract.ListenerModel) []jsonListener {
	if len(listeners) == 0 {
		return nil
	}
	out := make([]jsonListener, len(listeners))
	for i, l := range listeners {
		jl := jsonListener{
			Name:               l.Name,
			ReturnType:         buildType(l.Return),
			Args:               buildTypes(l.Args),
			HasArgs:            l.HasArgs,
			RegistrationMethod: l.RegistrationMethod,
			Interface:          l.Interface,
		}
		for _, cb := range l.Callbacks {
			jl.Callbacks = append(jl.Callbacks, jsonCallback{
				Name:       cb.Name,
				ReturnType: buildType(cb.Return),
				Args:       buildTypes(cb.Args),
				Target:     cb.Target,
			})
		}
		out[i] = jl
	}
	return out
}
