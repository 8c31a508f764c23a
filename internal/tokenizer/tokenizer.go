// Package tokenizer wraps the BPE encodings ttok can count with.
// Callers depend on the Loader and Encoder interfaces so the accounting code
// can be tested without real vocabularies.
package tokenizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Encoder maps text to token identifiers.
type Encoder interface {
	Encode(text string) []int
}

// Loader resolves an encoding name to an Encoder.
type Loader interface {
	Load(name string) (Encoder, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(name string) (Encoder, error)

// Load calls f(name).
func (f LoaderFunc) Load(name string) (Encoder, error) {
	return f(name)
}

// supported lists the names accepted by Canonical, in display order.
var supported = []string{
	tiktoken.MODEL_O200K_BASE,
	tiktoken.MODEL_CL100K_BASE,
	tiktoken.MODEL_P50K_BASE,
	tiktoken.MODEL_P50K_EDIT,
	tiktoken.MODEL_R50K_BASE,
	"gpt2",
}

var aliases = map[string]string{
	"gpt2": tiktoken.MODEL_R50K_BASE,
}

// Supported returns every accepted encoding name, aliases included.
func Supported() []string {
	return append([]string(nil), supported...)
}

// Canonical resolves aliases and validates name.
func Canonical(name string) (string, error) {
	if target, ok := aliases[name]; ok {
		return target, nil
	}
	for _, s := range supported {
		if s == name {
			return name, nil
		}
	}
	return "", &EncodingError{Name: name}
}

// EncodingForModel returns the encoding name used by a model, matching exact
// names first and then the longest known prefix.
func EncodingForModel(model string) (string, error) {
	if enc, ok := tiktoken.MODEL_TO_ENCODING[model]; ok {
		return enc, nil
	}

	prefixes := make([]string, 0, len(tiktoken.MODEL_PREFIX_TO_ENCODING))
	for prefix := range tiktoken.MODEL_PREFIX_TO_ENCODING {
		prefixes = append(prefixes, prefix)
	}
	sort.Slice(prefixes, func(i, j int) bool { return len(prefixes[i]) > len(prefixes[j]) })

	for _, prefix := range prefixes {
		if strings.HasPrefix(model, prefix) {
			return tiktoken.MODEL_PREFIX_TO_ENCODING[prefix], nil
		}
	}
	return "", &EncodingError{Name: model, Model: true}
}

// EncodingError reports an unknown encoding or model, or a vocabulary that
// could not be loaded.
type EncodingError struct {
	Name  string
	Model bool
	Err   error
}

func (e *EncodingError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("failed to load encoding '%s': %v", e.Name, e.Err)
	case e.Model:
		return fmt.Sprintf("unknown model '%s'", e.Name)
	default:
		return fmt.Sprintf("unsupported encoding '%s'", e.Name)
	}
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Count returns the number of tokens enc produces for text.
func Count(enc Encoder, text string) uint64 {
	return uint64(len(enc.Encode(text)))
}
