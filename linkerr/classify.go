package linkerr

import (
	"regexp"
	"strings"

	"github.com/dhamidi/stubber/missing"
)

const classMarkerSuffix = ".class$"

var (
	// The return type may contain spaces ("long long"), so everything up
	// to the last space-terminated run before owner.name(args) belongs to it.
	methodPattern      = regexp.MustCompile(`((?:.*? )+)(.*?)\((.*?)\)`)
	constructorPattern = regexp.MustCompile(`(\S*?)\((.*?)\)`)
	identifierPattern  = regexp.MustCompile(`^[\p{L}_$][\p{L}\p{N}_$]*$`)
)

// Kind tells what a reference denotes.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindClass
	KindMethod
	KindConstructor
	KindDefaultConstructor
	KindField
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindMethod:
		return "method"
	case KindConstructor:
		return "constructor"
	case KindDefaultConstructor:
		return "default constructor"
	case KindField:
		return "field"
	default:
		return "unrecognized"
	}
}

// ClassSet is a membership test over fully-qualified class names.
type ClassSet interface {
	Contains(name string) bool
}

// Symbol is the classification of one reference.
type Symbol struct {
	Kind Kind
	// Owner is the fully-qualified name of the class the symbol belongs to.
	Owner string
	// Name is the method or field name.
	Name string
	// Args are the argument types of a method or constructor.
	Args missing.Signature
	// Reason is set when Kind is KindUnrecognized.
	Reason DiagnosticKind
}

// Apply records the symbol in r. Unrecognized symbols and default
// constructors leave r untouched.
func (s Symbol) Apply(r *missing.Registry) {
	switch s.Kind {
	case KindClass:
		r.Resolve(s.Owner).ClassSymbol = true
	case KindMethod:
		r.Resolve(s.Owner).AddMethod(s.Name, s.Args)
	case KindConstructor:
		r.Resolve(s.Owner).AddConstructor(s.Args)
	case KindField:
		r.Resolve(s.Owner).AddField(s.Name)
	}
}

// Classify decides what a demangled reference denotes. The forms are tried
// in order: class marker, method, constructor, field. excluded may be nil,
// in which case no reference is accepted as a field.
func Classify(reference string, excluded ClassSet) Symbol {
	if sym, ok := matchClassMarker(reference); ok {
		return sym
	}
	if sym, ok := matchMethod(reference); ok {
		return sym
	}
	if sym, ok := matchConstructor(reference); ok {
		return sym
	}
	if sym, ok := matchField(reference, excluded); ok {
		return sym
	}
	return Symbol{Kind: KindUnrecognized, Reason: UnrecognizedFallback}
}

func matchClassMarker(reference string) (Symbol, bool) {
	name, ok := strings.CutSuffix(reference, classMarkerSuffix)
	if !ok || name == "" {
		return Symbol{}, false
	}
	return Symbol{Kind: KindClass, Owner: name}, true
}

func matchMethod(reference string) (Symbol, bool) {
	m := methodPattern.FindStringSubmatch(reference)
	if m == nil {
		return Symbol{}, false
	}
	owner, name, ok := splitLast(m[2], '.')
	if !ok || owner == "" || name == "" {
		return Symbol{}, false
	}
	return Symbol{Kind: KindMethod, Owner: owner, Name: name, Args: splitArgs(m[3])}, true
}

// matchConstructor reports a match for every owner(args) shape. Shapes
// whose last segment does not repeat the owner's simple name come back as
// unrecognized so that they are not retried as fields.
func matchConstructor(reference string) (Symbol, bool) {
	m := constructorPattern.FindStringSubmatch(reference)
	if m == nil {
		return Symbol{}, false
	}
	mismatch := Symbol{Kind: KindUnrecognized, Reason: UnrecognizedOwnerMismatch}

	owner, name, ok := splitLast(m[1], '.')
	if !ok || owner == "" {
		return mismatch, true
	}
	if !isSimpleName(owner, name) {
		return mismatch, true
	}
	if m[2] == "" {
		return Symbol{Kind: KindDefaultConstructor, Owner: owner}, true
	}
	return Symbol{Kind: KindConstructor, Owner: owner, Args: splitArgs(m[2])}, true
}

func matchField(reference string, excluded ClassSet) (Symbol, bool) {
	owner, name, ok := splitLast(reference, '.')
	if !ok || excluded == nil || !excluded.Contains(owner) {
		return Symbol{}, false
	}
	if !identifierPattern.MatchString(name) {
		return Symbol{}, false
	}
	return Symbol{Kind: KindField, Owner: owner, Name: name}, true
}

func splitLast(s string, sep byte) (before, after string, found bool) {
	i := strings.LastIndexByte(s, sep)
	if i < 0 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

// isSimpleName reports whether name is owner's simple name. For inner
// classes gcj may spell it with or without the enclosing classes, so both
// a.Outer$Inner.Outer$Inner and a.Outer$Inner.Inner name the constructor.
func isSimpleName(owner, name string) bool {
	if name == owner[strings.LastIndexByte(owner, '.')+1:] {
		return true
	}
	i := strings.LastIndexByte(owner, '$')
	return i >= 0 && name == owner[i+1:]
}

func splitArgs(text string) missing.Signature {
	if text == "" {
		return missing.Signature{}
	}
	return strings.Split(text, ", ")
}
