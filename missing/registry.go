// Package missing models the classes and members a native link still needs
// from a library that was left out of compilation.
package missing

import (
	"sort"
)

// Registry holds the top-level missing classes. Nested classes live only
// in their parent's inner class map.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	archive string
	classes map[string]*Class
}

// NewRegistry creates an empty registry. Every class it creates carries
// archive as its runtime library archive.
func NewRegistry(archive string) *Registry {
	return &Registry{
		archive: archive,
		classes: make(map[string]*Class),
	}
}

// Resolve returns the class for the fully-qualified name, creating it and
// any enclosing classes on first use. Names containing '$' resolve their
// enclosing class first: a$b$c resolves a, then a$b, then a$b$c inside a$b.
// A leading '$' is part of the simple name, so $Proxy0 is top-level.
func (r *Registry) Resolve(name string) *Class {
	if parent, ok := enclosingName(name); ok {
		return r.Resolve(parent).innerClass(name)
	}

	if c, ok := r.classes[name]; ok {
		return c
	}
	c := newClass(name, r.archive)
	r.classes[name] = c
	return c
}

// Lookup returns the class for name without creating it.
func (r *Registry) Lookup(name string) *Class {
	if enclosing, ok := enclosingName(name); ok {
		parent := r.Lookup(enclosing)
		if parent == nil {
			return nil
		}
		return parent.InnerClass(name)
	}
	return r.classes[name]
}

// Len returns the number of top-level classes.
func (r *Registry) Len() int {
	return len(r.classes)
}

// Classes returns the top-level classes sorted by name. Callers must not
// depend on the order for anything but presentation.
func (r *Registry) Classes() []*Class {
	result := make([]*Class, 0, len(r.classes))
	for _, c := range r.classes {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Stats summarises the contents of a registry.
type Stats struct {
	Classes      int
	InnerClasses int
	Constructors int
	Methods      int
	Fields       int
}

// Stats counts classes and members, descending into nested classes.
func (r *Registry) Stats() Stats {
	var s Stats
	var walk func(c *Class)
	walk = func(c *Class) {
		s.Constructors += len(c.constructors)
		for _, overloads := range c.methods {
			s.Methods += len(overloads)
		}
		s.Fields += len(c.fields)
		for _, ic := range c.inner {
			s.InnerClasses++
			walk(ic)
		}
	}
	for _, c := range r.classes {
		s.Classes++
		walk(c)
	}
	return s
}
