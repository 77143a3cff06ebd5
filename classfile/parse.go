package classfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

type reader struct {
	r   io.Reader
	err error
}

func (r *reader) readU1() uint8 {
	if r.err != nil {
		return 0
	}
	var buf [1]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return buf[0]
}

func (r *reader) readU2() uint16 {
	if r.err != nil {
		return 0
	}
	var buf [2]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return binary.BigEndian.Uint16(buf[:])
}

func (r *reader) readU4() uint32 {
	if r.err != nil {
		return 0
	}
	var buf [4]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return binary.BigEndian.Uint32(buf[:])
}

func (r *reader) readBytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	buf := make([]byte, n)
	_, r.err = io.ReadFull(r.r, buf)
	return buf
}

func ParseFile(path string) (*ClassFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open class file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(rd io.Reader) (*ClassFile, error) {
	r := &reader{r: rd}

	magic := r.readU4()
	if r.err != nil {
		return nil, fmt.Errorf("read magic: %w", r.err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("invalid magic number: 0x%X (expected 0xCAFEBABE)", magic)
	}

	cf := &ClassFile{
		MinorVersion: r.readU2(),
		MajorVersion: r.readU2(),
	}

	cp, err := readConstantPool(r)
	if err != nil {
		return nil, err
	}
	cf.ConstantPool = cp

	cf.AccessFlags = AccessFlags(r.readU2())
	cf.ThisClass = r.readU2()
	cf.SuperClass = r.readU2()

	interfacesCount := r.readU2()
	if r.err != nil {
		return nil, fmt.Errorf("read class info: %w", r.err)
	}
	cf.Interfaces = make([]uint16, interfacesCount)
	for i := range cf.Interfaces {
		cf.Interfaces[i] = r.readU2()
	}

	if cf.Fields, err = readMembers(r, "field"); err != nil {
		return nil, err
	}
	if cf.Methods, err = readMembers(r, "method"); err != nil {
		return nil, err
	}
	if cf.Attributes, err = readAttributes(r); err != nil {
		return nil, err
	}

	return cf, nil
}

func readConstantPool(r *reader) (ConstantPool, error) {
	count := r.readU2()
	if r.err != nil {
		return ConstantPool{}, fmt.Errorf("read constant pool count: %w", r.err)
	}

	cp := ConstantPool{
		utf8:    make(map[uint16]string),
		classes: make(map[uint16]uint16),
	}

	// Entry indices start at 1; Long and Double entries occupy two slots.
	for i := uint16(1); i < count; i++ {
		tag := r.readU1()
		switch tag {
		case 1: // Utf8
			length := r.readU2()
			cp.utf8[i] = decodeModifiedUtf8(r.readBytes(int(length)))
		case 7: // Class
			cp.classes[i] = r.readU2()
		case 3, 4: // Integer, Float
			r.readU4()
		case 5, 6: // Long, Double
			r.readU4()
			r.readU4()
			i++
		case 8, 16, 19, 20: // String, MethodType, Module, Package
			r.readU2()
		case 9, 10, 11, 12, 17, 18: // refs, NameAndType, (Invoke)Dynamic
			r.readU2()
			r.readU2()
		case 15: // MethodHandle
			r.readU1()
			r.readU2()
		default:
			return ConstantPool{}, fmt.Errorf("constant pool entry %d: unknown tag %d", i, tag)
		}
		if r.err != nil {
			return ConstantPool{}, fmt.Errorf("read constant pool entry %d: %w", i, r.err)
		}
	}
	return cp, nil
}

func readMembers(r *reader, kind string) ([]MemberInfo, error) {
	count := r.readU2()
	if r.err != nil {
		return nil, fmt.Errorf("read %s count: %w", kind, r.err)
	}

	members := make([]MemberInfo, count)
	for i := range members {
		members[i] = MemberInfo{
			AccessFlags:     AccessFlags(r.readU2()),
			NameIndex:       r.readU2(),
			DescriptorIndex: r.readU2(),
		}
		attrs, err := readAttributes(r)
		if err != nil {
			return nil, fmt.Errorf("read %s %d: %w", kind, i, err)
		}
		members[i].Attributes = attrs
	}
	return members, nil
}

func readAttributes(r *reader) ([]Attribute, error) {
	count := r.readU2()
	if r.err != nil {
		return nil, fmt.Errorf("read attributes count: %w", r.err)
	}

	attrs := make([]Attribute, count)
	for i := range attrs {
		nameIndex := r.readU2()
		length := r.readU4()
		data := r.readBytes(int(length))
		if r.err != nil {
			return nil, fmt.Errorf("read attribute %d: %w", i, r.err)
		}
		attrs[i] = Attribute{NameIndex: nameIndex, Data: data}
	}
	return attrs, nil
}
