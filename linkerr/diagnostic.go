package linkerr

import (
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("stubber.linkerr")

// DiagnosticKind tags why a reference was not recognized.
type DiagnosticKind int

const (
	// UnrecognizedOwnerMismatch is an owner(args) shape whose last segment
	// is not the owner's simple name, so it is neither method nor constructor.
	UnrecognizedOwnerMismatch DiagnosticKind = iota + 1
	// UnrecognizedFallback is a reference that matched no form at all.
	UnrecognizedFallback
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnrecognizedOwnerMismatch:
		return "unrecognized constructor/method-shape owner mismatch"
	case UnrecognizedFallback:
		return "unrecognized fallback"
	default:
		return "unknown"
	}
}

// Diagnostic describes a reference that was skipped.
type Diagnostic struct {
	Kind      DiagnosticKind
	Raw       string
	Reference string
}

func (d Diagnostic) String() string {
	return d.Kind.String() + ": " + d.Raw
}

// Listener observes a parse. Listeners never influence the result.
type Listener interface {
	// Handled is called for every distinct undefined symbol.
	Handled(raw, reference string)
	// Recognized is called after reference was classified.
	Recognized(reference string, sym Symbol)
	// Unrecognized is called for every skipped reference.
	Unrecognized(d Diagnostic)
}

// Listeners fans out to several listeners.
type Listeners []Listener

func (ls Listeners) Handled(raw, reference string) {
	for _, l := range ls {
		l.Handled(raw, reference)
	}
}

func (ls Listeners) Recognized(reference string, sym Symbol) {
	for _, l := range ls {
		l.Recognized(reference, sym)
	}
}

func (ls Listeners) Unrecognized(d Diagnostic) {
	for _, l := range ls {
		l.Unrecognized(d)
	}
}

// LogListener reports to the package logger: skipped references as
// warnings, everything else at debug level.
type LogListener struct{}

func (LogListener) Handled(raw, reference string) {
	log.Debugf("handling [%s] -> [%s]", raw, reference)
}

func (LogListener) Recognized(reference string, sym Symbol) {
	log.Debugf("recognized %s as %s of %s", reference, sym.Kind, sym.Owner)
}

func (LogListener) Unrecognized(d Diagnostic) {
	log.Warningf("%s", d)
}

// Collector records diagnostics and counts outcomes per kind.
type Collector struct {
	Diagnostics []Diagnostic
	Counts      map[Kind]int
}

func (c *Collector) Handled(raw, reference string) {}

func (c *Collector) Recognized(reference string, sym Symbol) {
	if c.Counts == nil {
		c.Counts = make(map[Kind]int)
	}
	c.Counts[sym.Kind]++
}

func (c *Collector) Unrecognized(d Diagnostic) {
	if c.Counts == nil {
		c.Counts = make(map[Kind]int)
	}
	c.Counts[KindUnrecognized]++
	c.Diagnostics = append(c.Diagnostics, d)
}
