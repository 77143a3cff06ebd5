package extract

import (
	"reflect"
	"testing"

	"github.com/brandhill/scaloid/descriptor"
)

func prim(name string) *descriptor.Type {
	return &descriptor.Type{Kind: descriptor.KindPrimitive, Name: name}
}

func cls(name string, args ...*descriptor.Type) *descriptor.Type {
	return &descriptor.Type{Kind: descriptor.KindClass, Name: name, Args: args}
}

func arr(elem *descriptor.Type) *descriptor.Type {
	return &descriptor.Type{Kind: descriptor.KindArray, Elem: elem}
}

func shape(name string, args ...TypeShape) TypeShape {
	return TypeShape{Name: name, Args: args}
}

func TestResolveType(t *testing.T) {
	tests := []struct {
		name string
		in   *descriptor.Type
		want TypeShape
	}{
		{"void", prim("void"), shape("Unit")},
		{"int", prim("int"), shape("Int")},
		{"boolean", prim("boolean"), shape("Boolean")},
		{"class", cls("java.lang.String"), shape("java.lang.String")},
		{"array", arr(prim("int")), shape("Array", shape("Int"))},
		{"array of arrays", arr(arr(cls("java.lang.Object"))),
			shape("Array", shape("Array", shape("java.lang.Object")))},
		{"wildcard", &descriptor.Type{Kind: descriptor.KindWildcard}, shape(Placeholder)},
		{"parameterized", cls("java.util.List", cls("android.view.View")),
			shape("java.util.List", shape("android.view.View"))},
		{"nested name normalized", cls("android.view.View$OnClickListener"),
			shape("android.view.View.OnClickListener")},
		{"raw generic gets one placeholder",
			&descriptor.Type{Kind: descriptor.KindClass, Name: "java.util.Map", TypeParams: 2},
			shape("java.util.Map", shape(Placeholder))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveType(tt.in)
			if err != nil {
				t.Fatalf("ResolveType error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveType = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveTypeVariable(t *testing.T) {
	v := &descriptor.Type{
		Kind:   descriptor.KindVariable,
		Name:   "T",
		Bounds: []*descriptor.Type{cls("android.view.View")},
	}
	got, err := ResolveType(v)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Variable {
		t.Error("expected a type-variable shape")
	}
	if got.Name != "T" || len(got.Args) != 1 || got.Args[0].Name != "android.view.View" {
		t.Errorf("shape = %+v", got)
	}
}

func TestResolveTypeVariableSelfBound(t *testing.T) {
	// T extends Comparable<T> must not recurse forever.
	v := &descriptor.Type{Kind: descriptor.KindVariable, Name: "T"}
	v.Bounds = []*descriptor.Type{cls("java.lang.Comparable", v)}

	got, err := ResolveType(v)
	if err != nil {
		t.Fatal(err)
	}
	inner := got.Args[0].Args[0]
	if !inner.Variable || inner.Name != "T" || len(inner.Args) != 0 {
		t.Errorf("inner reference = %+v, want bare T", inner)
	}
}

func TestResolveTypeAbsent(t *testing.T) {
	if _, err := ResolveType(nil); err == nil {
		t.Fatal("expected error for absent type")
	}
}

func TestResolveTypeDeterministic(t *testing.T) {
	in := cls("java.util.Map", cls("java.lang.String"), arr(prim("long")))
	first, err := ResolveType(in)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		again, err := ResolveType(in)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("call %d differs: %+v vs %+v", i, again, first)
		}
	}
}

func TestTypeShapeString(t *testing.T) {
	s := shape("java.util.Map", shape("java.lang.String"), shape("Array", shape("Int")))
	if got := s.String(); got != "java.util.Map[java.lang.String, Array[Int]]" {
		t.Errorf("String() = %q", got)
	}
}
