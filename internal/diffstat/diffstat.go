// Package diffstat attributes tokens to the added and removed sides of a
// unified diff.
package diffstat

import (
	"iter"
	"math/big"
	"strings"

	"github.com/codefionn/ttok/internal/tokenizer"
)

// Kind classifies a single diff line.
type Kind int

const (
	// Other covers hunk markers, extended headers and anything unrecognized
	Other Kind = iota
	// FileHeader is a "---" or "+++" line
	FileHeader
	// Added is a "+" line
	Added
	// Removed is a "-" line
	Removed
)

func (k Kind) String() string {
	switch k {
	case FileHeader:
		return "file-header"
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "other"
	}
}

// Line is a classified diff line. Payload is set for Added and Removed lines
// only and may be empty.
type Line struct {
	Kind    Kind
	Payload string
}

// Classify maps a line (without its terminator) to its Kind. File headers are
// checked first so "+++ b/x" never counts as an added line.
func Classify(line string) Line {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return Line{Kind: FileHeader}
	case strings.HasPrefix(line, "+"):
		return Line{Kind: Added, Payload: line[1:]}
	case strings.HasPrefix(line, "-"):
		return Line{Kind: Removed, Payload: line[1:]}
	default:
		return Line{Kind: Other}
	}
}

// Lines yields the lines of text without their "\n" or "\r\n" terminators.
// A trailing newline does not produce a final empty line.
func Lines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(text) {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}
			if !yield(line) {
				return
			}
		}
	}
}

// Tally holds the token totals of each side of a diff.
type Tally struct {
	Added   uint64
	Removed uint64
}

// Observe tokenizes the payload of added and removed lines and adds the count
// to the matching side. Empty payloads go through the encoder like any other.
func (t *Tally) Observe(enc tokenizer.Encoder, line Line) {
	switch line.Kind {
	case Added:
		t.Added += tokenizer.Count(enc, line.Payload)
	case Removed:
		t.Removed += tokenizer.Count(enc, line.Payload)
	}
}

// Merge adds other's totals to t.
func (t *Tally) Merge(other Tally) {
	t.Added += other.Added
	t.Removed += other.Removed
}

// Net returns Added - Removed. The result is arbitrary precision, so it is
// exact for any pair of uint64 totals.
func (t Tally) Net() *big.Int {
	added := new(big.Int).SetUint64(t.Added)
	return added.Sub(added, new(big.Int).SetUint64(t.Removed))
}

// Accumulate classifies every line of diff text and returns the final tally.
func Accumulate(enc tokenizer.Encoder, text string) Tally {
	var tally Tally
	for line := range Lines(text) {
		tally.Observe(enc, Classify(line))
	}
	return tally
}
