// Package linkerr reconstructs the classes and members a native-compiled
// program still needs from the "undefined reference" errors of a failed
// gcj link.
package linkerr

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/dhamidi/stubber/missing"
)

// ErrInvalidInput is returned for input the parser cannot treat as text.
var ErrInvalidInput = errors.New("invalid linker output")

const maxLineLength = 1 << 20

// Parser turns linker output into a missing.Registry.
type Parser struct {
	// Excluded holds the classes left out of compilation. It decides
	// whether owner.name is accepted as a field.
	Excluded ClassSet
	// Archive is stored on every class created.
	Archive string
	// Listener is notified about every reference. Defaults to LogListener.
	Listener Listener
	// Workers > 1 extracts symbols from chunks of lines concurrently.
	Workers int
}

// Parse classifies every distinct undefined reference in lines. Unrecognized
// references are reported to the listener and skipped.
func (p *Parser) Parse(ctx context.Context, lines []string) (*missing.Registry, error) {
	var tokens []Token
	if p.Workers > 1 {
		var err error
		tokens, err = tokensParallel(ctx, lines, p.Workers)
		if err != nil {
			return nil, fmt.Errorf("extract references: %w", err)
		}
	} else {
		for tok := range Tokens(lines) {
			tokens = append(tokens, tok)
		}
	}

	listener := p.Listener
	if listener == nil {
		listener = LogListener{}
	}

	registry := missing.NewRegistry(p.Archive)
	for _, tok := range tokens {
		if !utf8.ValidString(tok.Raw) {
			return nil, fmt.Errorf("%w: reference %q is not valid UTF-8", ErrInvalidInput, tok.Raw)
		}
		listener.Handled(tok.Raw, tok.Reference)

		sym := Classify(tok.Reference, p.Excluded)
		if sym.Kind == KindUnrecognized {
			listener.Unrecognized(Diagnostic{Kind: sym.Reason, Raw: tok.Raw, Reference: tok.Reference})
			continue
		}
		sym.Apply(registry)
		listener.Recognized(tok.Reference, sym)
	}
	return registry, nil
}

// ParseReader reads linker output line by line and parses it.
func (p *Parser) ParseReader(ctx context.Context, r io.Reader) (*missing.Registry, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return p.Parse(ctx, lines)
}

// ReadLines splits r into lines.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineLength)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read linker output: %w", err)
	}
	return lines, nil
}

// Parse is a shorthand for a sequential Parser without listener output
// beyond logging. It returns the top-level missing classes.
func Parse(lines []string, excluded ClassSet, archive string) ([]*missing.Class, error) {
	p := &Parser{Excluded: excluded, Archive: archive}
	registry, err := p.Parse(context.Background(), lines)
	if err != nil {
		return nil, err
	}
	return registry.Classes(), nil
}
