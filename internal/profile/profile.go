package profile

import (
	"strings"
)

// Kind distinguishes the directive variants. Only KindParam directives are
// ever rewritten; everything else is opaque passthrough.
type Kind int

const (
	// KindParam is a "name arg arg..." configuration line.
	KindParam Kind = iota
	// KindComment is a line starting with '#' or ';'.
	KindComment
	// KindBlank is an empty (or whitespace-only) line.
	KindBlank
	// KindInline is a multi-line <tag>...</tag> block (certificates, keys).
	KindInline
)

// Directive is one statement in an OpenVPN profile.
//
// Raw holds the original text span, including line terminators. A directive
// with a non-empty Raw serializes back byte-for-byte; rewritten directives
// have Raw == "" and serialize canonically from Name and Args.
type Directive struct {
	Kind Kind
	Name string   // parameter name, or inline tag name without the <>s
	Args []string // parameter arguments, nil for opaque variants
	Raw  string
}

// Param returns a canonical parameter directive, as produced by the rewriter.
func Param(name string, args ...string) Directive {
	return Directive{Kind: KindParam, Name: name, Args: args}
}

// IsParam reports whether d is a parameter directive with the given name.
func (d Directive) IsParam(name string) bool {
	return d.Kind == KindParam && d.Name == name
}

// Arg returns the i-th argument, or "" if there is none.
func (d Directive) Arg(i int) string {
	if i < 0 || i >= len(d.Args) {
		return ""
	}
	return d.Args[i]
}

// LastIndex returns the index of the last parameter directive named name,
// or -1 if absent. Later occurrences override earlier ones in OpenVPN, so
// the last one is the effective one.
func LastIndex(ds []Directive, name string) int {
	for i := len(ds) - 1; i >= 0; i-- {
		if ds[i].IsParam(name) {
			return i
		}
	}
	return -1
}

// Serialize renders the directive sequence back to profile text. Untouched
// directives reproduce their original bytes; rewritten ones are emitted as
// "name arg arg...\n".
func Serialize(ds []Directive) string {
	var b strings.Builder
	for i, d := range ds {
		if d.Raw != "" {
			b.WriteString(d.Raw)
			// Only the final line of the input may lack a terminator; if
			// directives were appended after it, one is needed so the lines
			// do not merge.
			if i < len(ds)-1 && !strings.HasSuffix(d.Raw, "\n") {
				b.WriteByte('\n')
			}
			continue
		}
		b.WriteString(d.Name)
		for _, arg := range d.Args {
			b.WriteByte(' ')
			b.WriteString(arg)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
