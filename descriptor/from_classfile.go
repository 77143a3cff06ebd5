package descriptor

import (
	"fmt"

	"github.com/brandhill/scaloid/classfile"
)

// FromClassFile builds a class descriptor from a parsed class file, keeping
// the public surface only. The generic Signature attribute is preferred over
// the plain descriptor wherever it is present.
func FromClassFile(cf *classfile.ClassFile) (*Class, error) {
	c := &Class{
		Name:        classfile.InternalToSourceName(cf.ClassName()),
		IsInterface: cf.IsInterface(),
		Abstract:    cf.AccessFlags.IsAbstract(),
		Final:       cf.AccessFlags.IsFinal(),
	}

	env := make(map[string]*Type)
	if sig := cf.Signature(); sig != "" {
		cs, err := classfile.ParseClassSignature(sig)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", c.Name, err)
		}
		c.TypeParams = typeParamsFromSig(cs.TypeParams, env)
		c.SuperName = classfile.InternalToSourceName(cs.Super.Name)
		for _, iface := range cs.Interfaces {
			c.InterfaceNames = append(c.InterfaceNames, classfile.InternalToSourceName(iface.Name))
		}
	} else {
		if super := cf.SuperClassName(); super != "" {
			c.SuperName = classfile.InternalToSourceName(super)
		}
		for _, iface := range cf.InterfaceNames() {
			c.InterfaceNames = append(c.InterfaceNames, classfile.InternalToSourceName(iface))
		}
	}

	for i := range cf.Methods {
		info := &cf.Methods[i]
		if !info.AccessFlags.IsPublic() || info.AccessFlags.IsSynthetic() || info.AccessFlags.IsBridge() {
			continue
		}
		name := info.Name(cf.ConstantPool)
		if name == "<clinit>" {
			continue
		}

		m, err := methodFromInfo(info, cf.ConstantPool, env)
		if err != nil {
			return nil, fmt.Errorf("class %s, method %s: %w", c.Name, name, err)
		}
		if info.IsConstructor(cf.ConstantPool) {
			c.Constructors = append(c.Constructors, *m)
		} else {
			c.Methods = append(c.Methods, *m)
		}
	}

	return c, nil
}

func methodFromInfo(info *classfile.MemberInfo, cp classfile.ConstantPool, classEnv map[string]*Type) (*Method, error) {
	raw := info.Signature(cp)
	if raw == "" {
		raw = info.Descriptor(cp)
	}
	ms, err := classfile.ParseMethodSignature(raw)
	if err != nil {
		return nil, err
	}

	env := classEnv
	if len(ms.TypeParams) > 0 {
		env = make(map[string]*Type, len(classEnv)+len(ms.TypeParams))
		for k, v := range classEnv {
			env[k] = v
		}
		typeParamsFromSig(ms.TypeParams, env)
	}

	m := &Method{
		Name:     info.Name(cp),
		Abstract: info.AccessFlags.IsAbstract(),
		Static:   info.AccessFlags.IsStatic(),
		Final:    info.AccessFlags.IsFinal(),
		Return:   typeFromSig(ms.Return, env),
	}
	for _, p := range ms.Params {
		m.Params = append(m.Params, typeFromSig(p, env))
	}
	return m, nil
}

// typeParamsFromSig builds the type-variable types of one declaration scope
// into env. Variables are registered before their bounds are converted so
// self-referential bounds resolve.
func typeParamsFromSig(params []classfile.TypeParam, env map[string]*Type) []*Type {
	vars := make([]*Type, len(params))
	for i, tp := range params {
		vars[i] = &Type{Kind: KindVariable, Name: tp.Name}
		env[tp.Name] = vars[i]
	}
	for i, tp := range params {
		for _, b := range tp.Bounds {
			vars[i].Bounds = append(vars[i].Bounds, typeFromSig(b, env))
		}
	}
	return vars
}

func typeFromSig(sig classfile.TypeSig, env map[string]*Type) *Type {
	switch sig.Kind {
	case classfile.SigBase:
		return &Type{Kind: KindPrimitive, Name: sig.Name}
	case classfile.SigArray:
		return &Type{Kind: KindArray, Elem: typeFromSig(*sig.Elem, env)}
	case classfile.SigVar:
		if v, ok := env[sig.Name]; ok {
			return v
		}
		return &Type{Kind: KindVariable, Name: sig.Name}
	case classfile.SigWildcard:
		return &Type{Kind: KindWildcard}
	default:
		t := &Type{Kind: KindClass, Name: classfile.InternalToSourceName(sig.Name)}
		for _, a := range sig.Args {
			t.Args = append(t.Args, typeFromSig(a, env))
		}
		return t
	}
}
