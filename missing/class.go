package missing

import (
	"sort"
	"strings"
)

// Signature is the ordered list of argument types of a constructor or
// method, as textually given by the linker.
type Signature []string

func (s Signature) key() string {
	return strings.Join(s, ", ")
}

// String renders the signature the way it appears between parentheses.
func (s Signature) String() string {
	return s.key()
}

// Class is a class, possibly nested, that is only partially available at
// link time. Members are accumulated as sets; nothing is ever removed.
type Class struct {
	// Name is the fully-qualified dotted name. Nested classes keep their
	// '$'-qualified form, e.g. com.example.Foo$Bar.
	Name string

	// Archive is the runtime library archive the real class lives in.
	// It is carried for stub synthesis and never read here.
	Archive string

	// ClassSymbol is set when the class object itself was referenced.
	ClassSymbol bool

	constructors     []Signature
	constructorIndex map[string]bool

	methodNames []string
	methods     map[string][]Signature
	methodIndex map[string]bool

	fields     []string
	fieldIndex map[string]bool

	innerNames []string
	inner      map[string]*Class
}

func newClass(name, archive string) *Class {
	return &Class{
		Name:             name,
		Archive:          archive,
		constructorIndex: make(map[string]bool),
		methods:          make(map[string][]Signature),
		methodIndex:      make(map[string]bool),
		fieldIndex:       make(map[string]bool),
		inner:            make(map[string]*Class),
	}
}

// SimpleName is the part of the name after the last '$', or after the
// last '.' for top-level classes.
func (c *Class) SimpleName() string {
	if parent, ok := enclosingName(c.Name); ok {
		return c.Name[len(parent)+1:]
	}
	if i := strings.LastIndexByte(c.Name, '.'); i >= 0 {
		return c.Name[i+1:]
	}
	return c.Name
}

// Package returns the dotted package of the class, or "" for the default package.
func (c *Class) Package() string {
	name := c.Name
	if i := strings.IndexByte(name, '$'); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return ""
}

// AddConstructor records a missing constructor. Duplicates collapse.
func (c *Class) AddConstructor(args Signature) {
	k := args.key()
	if c.constructorIndex[k] {
		return
	}
	c.constructorIndex[k] = true
	c.constructors = append(c.constructors, copySignature(args))
}

// AddMethod records a missing method overload. Overloads with the same
// argument types collapse.
func (c *Class) AddMethod(name string, args Signature) {
	k := name + "(" + args.key() + ")"
	if c.methodIndex[k] {
		return
	}
	c.methodIndex[k] = true
	if _, ok := c.methods[name]; !ok {
		c.methodNames = append(c.methodNames, name)
	}
	c.methods[name] = append(c.methods[name], copySignature(args))
}

// AddField records a missing field.
func (c *Class) AddField(name string) {
	if c.fieldIndex[name] {
		return
	}
	c.fieldIndex[name] = true
	c.fields = append(c.fields, name)
}

// Constructors returns the missing constructors in the order first seen.
func (c *Class) Constructors() []Signature {
	return append([]Signature(nil), c.constructors...)
}

// MethodNames returns the names of missing methods in the order first seen.
func (c *Class) MethodNames() []string {
	return append([]string(nil), c.methodNames...)
}

// Methods returns the missing overloads of the named method.
func (c *Class) Methods(name string) []Signature {
	return append([]Signature(nil), c.methods[name]...)
}

// HasMethod reports whether the overload name(args) is recorded.
func (c *Class) HasMethod(name string, args Signature) bool {
	return c.methodIndex[name+"("+args.key()+")"]
}

// HasConstructor reports whether a constructor with args is recorded.
func (c *Class) HasConstructor(args Signature) bool {
	return c.constructorIndex[args.key()]
}

// Fields returns the missing field names in the order first seen.
func (c *Class) Fields() []string {
	return append([]string(nil), c.fields...)
}

// HasField reports whether the field is recorded.
func (c *Class) HasField(name string) bool {
	return c.fieldIndex[name]
}

// InnerClass returns the directly nested class with the given
// '$'-qualified name, or nil.
func (c *Class) InnerClass(name string) *Class {
	return c.inner[name]
}

// InnerClasses returns the directly nested classes sorted by name.
func (c *Class) InnerClasses() []*Class {
	names := append([]string(nil), c.innerNames...)
	sort.Strings(names)
	result := make([]*Class, len(names))
	for i, name := range names {
		result[i] = c.inner[name]
	}
	return result
}

func (c *Class) innerClass(name string) *Class {
	if ic, ok := c.inner[name]; ok {
		return ic
	}
	ic := newClass(name, c.Archive)
	c.inner[name] = ic
	c.innerNames = append(c.innerNames, name)
	return ic
}

func copySignature(args Signature) Signature {
	if len(args) == 0 {
		return Signature{}
	}
	return append(Signature(nil), args...)
}

// enclosingName splits a nested class name at its last '$'. A '$' that
// starts a simple name, as in gcj's $Proxy0, does not nest.
func enclosingName(name string) (string, bool) {
	i := strings.LastIndexByte(name, '$')
	if i <= 0 || name[i-1] == '.' {
		return "", false
	}
	return name[:i], true
}
