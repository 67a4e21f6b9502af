package linkerr

import (
	"context"
	"iter"
	"regexp"

	"golang.org/x/sync/errgroup"
)

// GNU ld has quoted symbols as `sym', 'sym' and ‘sym’ over the years.
var undefinedReferencePattern = regexp.MustCompile("undefined reference to [`'‘](.*?)['’]")

// Token is one undefined symbol found in linker output.
type Token struct {
	// Raw is the symbol as printed by the linker.
	Raw string
	// Reference is Raw after Demangle.
	Reference string
}

// RawTokens returns every undefined symbol on line, in order.
func RawTokens(line string) []string {
	matches := undefinedReferencePattern.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]string, len(matches))
	for i, m := range matches {
		tokens[i] = m[1]
	}
	return tokens
}

// Tokens yields the undefined symbols of lines in first-seen order. A raw
// symbol is yielded only once no matter how often the linker repeats it.
func Tokens(lines []string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		seen := make(map[string]bool)
		for _, line := range lines {
			for _, raw := range RawTokens(line) {
				if seen[raw] {
					continue
				}
				seen[raw] = true
				if !yield(Token{Raw: raw, Reference: Demangle(raw)}) {
					return
				}
			}
		}
	}
}

// References yields the demangled, deduplicated references of lines.
func References(lines []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for tok := range Tokens(lines) {
			if !yield(tok.Reference) {
				return
			}
		}
	}
}

// tokensParallel extracts raw symbols from contiguous chunks of lines
// concurrently and then deduplicates them in chunk order, so the result
// is the same as Tokens.
func tokensParallel(ctx context.Context, lines []string, workers int) ([]Token, error) {
	if workers < 1 {
		workers = 1
	}
	chunkSize := (len(lines) + workers - 1) / workers
	if chunkSize == 0 {
		return nil, nil
	}

	var chunks [][]string
	for start := 0; start < len(lines); start += chunkSize {
		end := min(start+chunkSize, len(lines))
		chunks = append(chunks, lines[start:end])
	}

	results := make([][]string, len(chunks))
	g, ctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		g.Go(func() error {
			var raws []string
			for _, line := range chunk {
				if err := ctx.Err(); err != nil {
					return err
				}
				raws = append(raws, RawTokens(line)...)
			}
			results[i] = raws
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var tokens []Token
	for _, raws := range results {
		for _, raw := range raws {
			if seen[raw] {
				continue
			}
			seen[raw] = true
			tokens = append(tokens, Token{Raw: raw, Reference: Demangle(raw)})
		}
	}
	return tokens, nil
}
