package tst

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Option configures how a Trie treats its keys.
type Option func(*options)

type options struct {
	fold bool
	norm *norm.Form
}

// Normalize makes the trie pass every key through the Unicode normalization
// form f, so that e.g. composed and decomposed spellings name the same key.
func Normalize(f norm.Form) Option {
	return func(o *options) {
		o.norm = &f
	}
}

// FoldCase makes the trie case-insensitive by case-folding every key.
func FoldCase() Option {
	return func(o *options) {
		o.fold = true
	}
}

func newOptions(opts []Option) *options {
	var o = &options{}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// canonicalizer returns nil when keys are used as is.
func (o *options) canonicalizer() func(string) string {
	if !o.fold && o.norm == nil {
		return nil
	}

	var (
		fold = o.fold
		form = o.norm
	)

	return func(key string) string {
		if fold {
			// a Caser keeps state, so it is not shared between calls
			key = cases.Fold().String(key)
		}
		if form != nil {
			key = form.String(key)
		}
		return key
	}
}
