package classfile

import "fmt"

// The grammar here is JVMS §4.7.9.1. Plain field and method descriptors are a
// subset of it, so one parser covers both the Descriptor and Signature
// attribute values.

type SigKind uint8

const (
	SigBase SigKind = iota // primitive or void
	SigClass
	SigArray
	SigVar
	SigWildcard
)

// TypeSig is one node of a parsed type signature.
type TypeSig struct {
	Kind SigKind
	Name string    // primitive keyword, internal class name, or variable name
	Elem *TypeSig  // array element; bound of a non-star wildcard
	Args []TypeSig // class type arguments
}

// TypeParam is a declared type parameter with its upper bounds.
type TypeParam struct {
	Name   string
	Bounds []TypeSig
}

type ClassSig struct {
	TypeParams []TypeParam
	Super      TypeSig
	Interfaces []TypeSig
}

type MethodSig struct {
	TypeParams []TypeParam
	Params     []TypeSig
	Return     TypeSig
}

var baseTypes = map[byte]string{
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'Z': "boolean",
}

// ParseTypeSignature parses a field descriptor or field type signature.
func ParseTypeSignature(s string) (TypeSig, error) {
	p := &sigParser{s: s}
	sig, err := p.typeSig()
	if err != nil {
		return TypeSig{}, err
	}
	if p.pos != len(s) {
		return TypeSig{}, p.errorf("trailing input")
	}
	return sig, nil
}

// ParseClassSignature parses a class's Signature attribute value.
func ParseClassSignature(s string) (*ClassSig, error) {
	p := &sigParser{s: s}
	cs := &ClassSig{}

	var err error
	if cs.TypeParams, err = p.typeParams(); err != nil {
		return nil, err
	}
	if cs.Super, err = p.typeSig(); err != nil {
		return nil, err
	}
	for p.pos < len(s) {
		iface, err := p.typeSig()
		if err != nil {
			return nil, err
		}
		cs.Interfaces = append(cs.Interfaces, iface)
	}
	return cs, nil
}

// ParseMethodSignature parses a method descriptor or method type signature.
// Thrown-exception signatures after the return type are ignored.
func ParseMethodSignature(s string) (*MethodSig, error) {
	p := &sigParser{s: s}
	ms := &MethodSig{}

	var err error
	if ms.TypeParams, err = p.typeParams(); err != nil {
		return nil, err
	}
	if err := p.expect('('); err != nil {
		return nil, err
	}
	for p.peek() != ')' {
		param, err := p.typeSig()
		if err != nil {
			return nil, err
		}
		ms.Params = append(ms.Params, param)
	}
	p.pos++ // ')'

	if p.peek() == 'V' {
		p.pos++
		ms.Return = TypeSig{Kind: SigBase, Name: "void"}
	} else if ms.Return, err = p.typeSig(); err != nil {
		return nil, err
	}
	return ms, nil
}

type sigParser struct {
	s   string
	pos int
}

func (p *sigParser) errorf(format string, args ...any) error {
	return fmt.Errorf("signature %q at %d: %s", p.s, p.pos, fmt.Sprintf(format, args...))
}

func (p *sigParser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *sigParser) expect(c byte) error {
	if p.peek() != c {
		return p.errorf("expected %q", string(c))
	}
	p.pos++
	return nil
}

// identifier reads up to any of the delimiters used by the grammar.
func (p *sigParser) identifier() (string, error) {
	start := p.pos
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ';', ':', '<', '>', '.':
			if p.pos == start {
				return "", p.errorf("empty identifier")
			}
			return p.s[start:p.pos], nil
		}
		p.pos++
	}
	return "", p.errorf("unterminated identifier")
}

func (p *sigParser) typeSig() (TypeSig, error) {
	c := p.peek()
	switch {
	case c == 0:
		return TypeSig{}, p.errorf("unexpected end of input")
	case c == '[':
		p.pos++
		elem, err := p.typeSig()
		if err != nil {
			return TypeSig{}, err
		}
		return TypeSig{Kind: SigArray, Elem: &elem}, nil
	case c == 'L':
		return p.classTypeSig()
	case c == 'T':
		p.pos++
		name, err := p.identifier()
		if err != nil {
			return TypeSig{}, err
		}
		if err := p.expect(';'); err != nil {
			return TypeSig{}, err
		}
		return TypeSig{Kind: SigVar, Name: name}, nil
	default:
		if name, ok := baseTypes[c]; ok {
			p.pos++
			return TypeSig{Kind: SigBase, Name: name}, nil
		}
		return TypeSig{}, p.errorf("unexpected character %q", string(c))
	}
}

func (p *sigParser) classTypeSig() (TypeSig, error) {
	p.pos++ // 'L'

	name, err := p.classIdentifier()
	if err != nil {
		return TypeSig{}, err
	}
	sig := TypeSig{Kind: SigClass, Name: name}

	if p.peek() == '<' {
		if sig.Args, err = p.typeArgs(); err != nil {
			return TypeSig{}, err
		}
	}

	// Nested-class suffixes fold into the name; the innermost type
	// arguments win.
	for p.peek() == '.' {
		p.pos++
		inner, err := p.classIdentifier()
		if err != nil {
			return TypeSig{}, err
		}
		sig.Name += "$" + inner
		if p.peek() == '<' {
			if sig.Args, err = p.typeArgs(); err != nil {
				return TypeSig{}, err
			}
		}
	}

	if err := p.expect(';'); err != nil {
		return TypeSig{}, err
	}
	return sig, nil
}

// classIdentifier reads an internal class name, which may contain '/'.
func (p *sigParser) classIdentifier() (string, error) {
	start := p.pos
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ';', '<', '.', ':', '>':
			if p.pos == start {
				return "", p.errorf("empty class name")
			}
			return p.s[start:p.pos], nil
		}
		p.pos++
	}
	return "", p.errorf("unterminated class name")
}

func (p *sigParser) typeArgs() ([]TypeSig, error) {
	p.pos++ // '<'
	var args []TypeSig
	for p.peek() != '>' {
		arg, err := p.typeArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	p.pos++ // '>'
	return args, nil
}

func (p *sigParser) typeArg() (TypeSig, error) {
	switch p.peek() {
	case '*':
		p.pos++
		return TypeSig{Kind: SigWildcard}, nil
	case '+', '-':
		p.pos++
		bound, err := p.typeSig()
		if err != nil {
			return TypeSig{}, err
		}
		return TypeSig{Kind: SigWildcard, Elem: &bound}, nil
	default:
		return p.typeSig()
	}
}

func (p *sigParser) typeParams() ([]TypeParam, error) {
	if p.peek() != '<' {
		return nil, nil
	}
	p.pos++

	var params []TypeParam
	for p.peek() != '>' {
		name, err := p.identifier()
		if err != nil {
			return nil, err
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}

		tp := TypeParam{Name: name}
		// The class bound may be absent when only interface bounds exist.
		if c := p.peek(); c != ':' && c != '>' {
			bound, err := p.typeSig()
			if err != nil {
				return nil, err
			}
			tp.Bounds = append(tp.Bounds, bound)
		}
		for p.peek() == ':' {
			p.pos++
			bound, err := p.typeSig()
			if err != nil {
				return nil, err
			}
			tp.Bounds = append(tp.Bounds, bound)
		}
		params = append(params, tp)
	}
	p.pos++ // '>'
	return params, nil
}
