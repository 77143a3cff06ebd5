// Package classfile reads the subset of the JVM class file format needed to
// describe an API surface: class-level metadata, member declarations, and the
// generic Signature attribute. Method bodies and annotation attributes are
// skipped.
package classfile

import "strings"

type ClassFile struct {
	MinorVersion uint16
	MajorVersion uint16
	ConstantPool ConstantPool
	AccessFlags  AccessFlags
	ThisClass    uint16
	SuperClass   uint16
	Interfaces   []uint16
	Fields       []MemberInfo
	Methods      []MemberInfo
	Attributes   []Attribute
}

func (cf *ClassFile) ClassName() string {
	return cf.ConstantPool.ClassName(cf.ThisClass)
}

// SuperClassName returns the internal name of the superclass, or "" for
// java/lang/Object itself.
func (cf *ClassFile) SuperClassName() string {
	if cf.SuperClass == 0 {
		return ""
	}
	return cf.ConstantPool.ClassName(cf.SuperClass)
}

func (cf *ClassFile) InterfaceNames() []string {
	names := make([]string, len(cf.Interfaces))
	for i, idx := range cf.Interfaces {
		names[i] = cf.ConstantPool.ClassName(idx)
	}
	return names
}

func (cf *ClassFile) IsInterface() bool {
	return cf.AccessFlags.IsInterface()
}

// Signature returns the class's generic signature, or "" when the class
// carries no Signature attribute.
func (cf *ClassFile) Signature() string {
	return signatureOf(cf.Attributes, cf.ConstantPool)
}

// MemberInfo is a field or method declaration. Which one it is follows from
// the slice it came from.
type MemberInfo struct {
	AccessFlags     AccessFlags
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []Attribute
}

func (m *MemberInfo) Name(cp ConstantPool) string {
	return cp.Utf8(m.NameIndex)
}

func (m *MemberInfo) Descriptor(cp ConstantPool) string {
	return cp.Utf8(m.DescriptorIndex)
}

func (m *MemberInfo) Signature(cp ConstantPool) string {
	return signatureOf(m.Attributes, cp)
}

func (m *MemberInfo) IsConstructor(cp ConstantPool) bool {
	return m.Name(cp) == "<init>"
}

// Attribute is an undecoded attribute. The one attribute this package
// interprets, Signature, is a two-byte constant pool index into Data.
type Attribute struct {
	NameIndex uint16
	Data      []byte
}

func signatureOf(attrs []Attribute, cp ConstantPool) string {
	for _, a := range attrs {
		if cp.Utf8(a.NameIndex) != "Signature" {
			continue
		}
		if len(a.Data) < 2 {
			return ""
		}
		return cp.Utf8(uint16(a.Data[0])<<8 | uint16(a.Data[1]))
	}
	return ""
}

// InternalToSourceName converts an internal class name (java/lang/String) to
// its source form (java.lang.String). The '$' qualifier of nested classes is
// kept so callers can still tell nested classes apart.
func InternalToSourceName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}
