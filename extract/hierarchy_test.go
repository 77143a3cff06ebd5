package extract

import (
	"reflect"
	"testing"

	"github.com/brandhill/scaloid/descriptor"
)

func method(name string, ret *descriptor.Type, params ...*descriptor.Type) descriptor.Method {
	return descriptor.Method{Name: name, Return: ret, Params: params}
}

func TestAncestorSignatures(t *testing.T) {
	base := &descriptor.Class{
		Name: "android.view.View",
		Methods: []descriptor.Method{
			method("getAlpha", prim("float")),
			method("setAlpha", prim("void"), prim("float")),
		},
	}
	derived := &descriptor.Class{
		Name:      "android.widget.Button",
		SuperName: "android.view.View",
		Super:     base,
	}

	info := AncestorSignatures(derived)
	if !info.MethodSignatures["getAlpha:float:[]"] {
		t.Errorf("missing getter signature, got %v", info.MethodSignatures)
	}
	if !info.MethodSignatures["setAlpha:void:[float]"] {
		t.Errorf("missing setter signature, got %v", info.MethodSignatures)
	}
	if !info.PropertySignatures["alpha:float"] {
		t.Errorf("missing property signature, got %v", info.PropertySignatures)
	}
	if !info.GetterNames["getAlpha"] {
		t.Errorf("missing getter name, got %v", info.GetterNames)
	}
}

func TestAncestorSignaturesAtRoot(t *testing.T) {
	root := &descriptor.Class{Name: "java.lang.Object"}
	info := AncestorSignatures(root)
	if len(info.MethodSignatures) != 0 || len(info.PropertySignatures) != 0 {
		t.Errorf("root class should have empty ancestor info: %+v", info)
	}
}

func TestAncestorNames(t *testing.T) {
	object := &descriptor.Class{Name: "java.lang.Object"}
	view := &descriptor.Class{Name: "android.view.View", Super: object}
	button := &descriptor.Class{Name: "android.widget.Button", Super: view}

	got := AncestorNames(button)
	want := []string{"Object", "View", "Button"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AncestorNames = %v, want %v", got, want)
	}
}

func TestAncestorNamesNestedClass(t *testing.T) {
	params := &descriptor.Class{Name: "android.view.ViewGroup$LayoutParams"}
	margin := &descriptor.Class{
		Name:  "android.view.ViewGroup$MarginLayoutParams",
		Super: params,
	}

	got := AncestorNames(margin)
	want := []string{"ViewGroup.LayoutParams", "ViewGroup.MarginLayoutParams"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AncestorNames = %v, want %v", got, want)
	}
}
