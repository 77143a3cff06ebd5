package descriptor

import "sort"

// Provider supplies the class descriptors of one host API snapshot.
type Provider interface {
	// Class looks a class up by its qualified source name.
	Class(name string) (*Class, bool)
	// ClassesUnder returns every known class in the named package or one of
	// its subpackages, sorted by name.
	ClassesUnder(root string) []*Class
}

// Snapshot is an immutable, map-backed Provider. NewSnapshot links the
// classes it is given; the snapshot must not be mutated afterwards.
type Snapshot struct {
	classes map[string]*Class
	names   []string
}

func NewSnapshot(classes []*Class) *Snapshot {
	s := &Snapshot{classes: make(map[string]*Class, len(classes))}
	for _, c := range classes {
		if _, dup := s.classes[c.Name]; dup {
			continue
		}
		s.classes[c.Name] = c
		s.names = append(s.names, c.Name)
	}
	sort.Strings(s.names)

	for _, c := range s.classes {
		s.link(c)
	}
	return s
}

func (s *Snapshot) link(c *Class) {
	if c.Super == nil && c.SuperName != "" {
		c.Super = s.classes[c.SuperName]
	}
	if c.Interfaces == nil {
		for _, name := range c.InterfaceNames {
			if iface, ok := s.classes[name]; ok {
				c.Interfaces = append(c.Interfaces, iface)
			}
		}
	}

	for i := range c.Methods {
		s.annotateMethod(&c.Methods[i])
	}
	for i := range c.Constructors {
		s.annotateMethod(&c.Constructors[i])
	}
	for _, tp := range c.TypeParams {
		s.annotateType(tp, make(map[*Type]bool))
	}
}

func (s *Snapshot) annotateMethod(m *Method) {
	seen := make(map[*Type]bool)
	s.annotateType(m.Return, seen)
	for _, p := range m.Params {
		s.annotateType(p, seen)
	}
}

// annotateType records the declared type-parameter count on class references
// the snapshot can resolve. A nil reference is left for resolution to reject
// later. seen breaks the pointer cycles of self-referential bounds.
func (s *Snapshot) annotateType(t *Type, seen map[*Type]bool) {
	if t == nil || seen[t] {
		return
	}
	seen[t] = true
	switch t.Kind {
	case KindClass:
		if ref, ok := s.classes[t.Name]; ok {
			t.TypeParams = len(ref.TypeParams)
		}
		for _, a := range t.Args {
			s.annotateType(a, seen)
		}
	case KindArray:
		s.annotateType(t.Elem, seen)
	case KindVariable:
		for _, b := range t.Bounds {
			s.annotateType(b, seen)
		}
	}
}

func (s *Snapshot) Class(name string) (*Class, bool) {
	c, ok := s.classes[name]
	return c, ok
}

func (s *Snapshot) ClassesUnder(root string) []*Class {
	prefix := root + "."
	var out []*Class
	for _, name := range s.names {
		c := s.classes[name]
		if c.Package() == root || len(c.Package()) > len(root) && c.Package()[:len(prefix)] == prefix {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of classes in the snapshot.
func (s *Snapshot) Len() int { return len(s.names) }
