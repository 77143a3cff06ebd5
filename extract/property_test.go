package extract

import (
	"testing"

	"github.com/brandhill/scaloid/descriptor"
)

func noAncestors() AncestorInfo {
	return AncestorSignatures(&descriptor.Class{Name: "java.lang.Object"})
}

func TestExtractPropertiesBasic(t *testing.T) {
	c := &descriptor.Class{
		Name: "android.widget.TextView",
		Methods: []descriptor.Method{
			method("getText", cls("java.lang.CharSequence")),
			method("setText", prim("void"), cls("java.lang.CharSequence")),
		},
	}

	props, err := ExtractProperties(c, noAncestors())
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 1 {
		t.Fatalf("got %d properties, want 1", len(props))
	}
	p := props[0]
	if p.Name != "text" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.Type.Name != "java.lang.CharSequence" {
		t.Errorf("Type = %v", p.Type)
	}
	if p.Getter == nil || len(p.Setters) != 1 {
		t.Errorf("accessors: getter=%v setters=%v", p.Getter, p.Setters)
	}
}

func TestExtractPropertiesAncestorExclusion(t *testing.T) {
	base := &descriptor.Class{
		Name: "pkg.Base",
		Methods: []descriptor.Method{
			method("getValue", prim("int")),
			method("setValue", prim("void"), prim("int")),
		},
	}
	derived := &descriptor.Class{
		Name:      "pkg.Derived",
		SuperName: "pkg.Base",
		Super:     base,
		Methods: []descriptor.Method{
			method("getValue", prim("int")),
			method("setValue", prim("void"), prim("int")),
		},
	}

	props, err := ExtractProperties(derived, AncestorSignatures(derived))
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 0 {
		t.Errorf("inherited property must be excluded, got %+v", props)
	}

	baseProps, err := ExtractProperties(base, AncestorSignatures(base))
	if err != nil {
		t.Fatal(err)
	}
	if len(baseProps) != 1 || baseProps[0].Name != "value" {
		t.Errorf("base must keep the property, got %+v", baseProps)
	}
}

func TestExtractPropertiesCovariantOverride(t *testing.T) {
	base := &descriptor.Class{
		Name:    "pkg.Container",
		Methods: []descriptor.Method{method("getChild", cls("pkg.View"))},
	}
	derived := &descriptor.Class{
		Name:      "pkg.Frame",
		SuperName: "pkg.Container",
		Super:     base,
		Methods:   []descriptor.Method{method("getChild", cls("pkg.Button"))},
	}

	props, err := ExtractProperties(derived, AncestorSignatures(derived))
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 1 {
		t.Fatalf("got %d properties, want 1", len(props))
	}
	if props[0].Getter == nil || !props[0].Getter.Override {
		t.Errorf("covariant getter must carry the override flag: %+v", props[0].Getter)
	}
}

func TestExtractPropertiesOverloadedSetters(t *testing.T) {
	c := &descriptor.Class{
		Name: "android.widget.ImageView",
		Methods: []descriptor.Method{
			method("getImage", cls("View")),
			method("setImage", prim("void"), cls("View")),
			method("setImage", prim("void"), prim("int")),
			method("setImage", prim("void"), cls("String")),
		},
	}

	props, err := ExtractProperties(c, noAncestors())
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 1 {
		t.Fatalf("got %d properties, want 1", len(props))
	}
	setters := props[0].Setters
	if len(setters) != 3 {
		t.Fatalf("got %d setters, want 3", len(setters))
	}
	want := []string{"Int", "String", "View"}
	for i, s := range setters {
		if s.Args[0].Name != want[i] {
			t.Errorf("setters[%d] takes %q, want %q", i, s.Args[0].Name, want[i])
		}
	}
}

func TestExtractPropertiesSkipsAbstractSetters(t *testing.T) {
	c := &descriptor.Class{
		Name: "pkg.Widget",
		Methods: []descriptor.Method{
			{Name: "setShape", Return: prim("void"), Params: []*descriptor.Type{cls("pkg.Shape")}, Abstract: true},
		},
	}
	props, err := ExtractProperties(c, noAncestors())
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 0 {
		t.Errorf("abstract-only property must be dropped, got %+v", props)
	}
}

func TestExtractPropertiesIndexedExcluded(t *testing.T) {
	c := &descriptor.Class{
		Name: "pkg.Menu",
		Methods: []descriptor.Method{
			method("getItem", cls("pkg.MenuItem"), prim("int")),
		},
	}
	props, err := ExtractProperties(c, noAncestors())
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 0 {
		t.Errorf("indexed property must be excluded, got %+v", props)
	}
}

func TestSwitchAlias(t *testing.T) {
	tests := []struct{ name, want string }{
		{"soundEffectsEnabled", "SoundEffects"},
		{"visible", ""},
		{"enabled", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := switchAlias(tt.name); got != tt.want {
				t.Errorf("switchAlias(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestExtractPropertiesSwitchAlias(t *testing.T) {
	c := &descriptor.Class{
		Name: "android.webkit.WebSettings",
		Methods: []descriptor.Method{
			method("getSoundEffectsEnabled", prim("boolean")),
			method("setSoundEffectsEnabled", prim("void"), prim("boolean")),
		},
	}
	props, err := ExtractProperties(c, noAncestors())
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 1 || props[0].SwitchAlias != "SoundEffects" {
		t.Fatalf("props = %+v", props)
	}
}

func TestExtractPropertiesNameClash(t *testing.T) {
	c := &descriptor.Class{
		Name: "pkg.Chronometer",
		Methods: []descriptor.Method{
			method("getBase", prim("long")),
			method("setBase", prim("void"), prim("long")),
			method("base", prim("long")), // occupies the property name
		},
	}
	props, err := ExtractProperties(c, noAncestors())
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 1 || !props[0].NameClash {
		t.Fatalf("expected a flagged name clash: %+v", props)
	}
}

func TestMethodModelTypeParams(t *testing.T) {
	v := &descriptor.Type{Kind: descriptor.KindVariable, Name: "T",
		Bounds: []*descriptor.Type{cls("android.view.View")}}
	m, err := methodModel(method("findViewById", v, prim("int")))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.TypeParams) != 1 || m.TypeParams[0].Name != "T" {
		t.Errorf("TypeParams = %+v", m.TypeParams)
	}
}
