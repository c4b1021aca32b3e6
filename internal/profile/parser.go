package profile

import (
	"fmt"
	"regexp"
	"strings"
)

// MalformedProfileError is a structural parse failure: an inline block whose
// opening tag is never closed before the input ends, or a tag-like line that
// is not a valid block opener.
type MalformedProfileError struct {
	Tag  string // unterminated inline tag
	Line string // offending line when no block was opened
}

func (e *MalformedProfileError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("inline block <%s> is never closed", e.Tag)
	}
	return fmt.Sprintf("malformed line %q", e.Line)
}

// Matches the opening tag of an inline block, e.g. <ca> or <tls-auth>.
var inlineOpen = regexp.MustCompile(`^<([a-z0-9][a-z0-9_\-]*[a-z0-9])>`)

// Parse converts raw profile text into an ordered directive sequence.
//
// The parser is line-oriented: blank lines and comments become opaque
// directives, an inline block is consumed whole (its contents are never
// interpreted), and everything else is a "name arg arg..." parameter.
// Serialize reproduces the input byte-for-byte for directives the rewriter
// does not touch.
func Parse(text string) ([]Directive, error) {
	lines := strings.SplitAfter(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var ds []Directive
	for i := 0; i < len(lines); i++ {
		raw := lines[i]
		trimmed := strings.TrimSpace(raw)

		switch {
		case trimmed == "":
			ds = append(ds, Directive{Kind: KindBlank, Raw: raw})

		case strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";"):
			ds = append(ds, Directive{Kind: KindComment, Raw: raw})

		case strings.HasPrefix(trimmed, "<"):
			m := inlineOpen.FindStringSubmatch(trimmed)
			if m == nil {
				// Not a valid opening tag (stray close tag, bad tag name).
				return nil, &MalformedProfileError{Line: trimmed}
			}
			tag := m[1]
			closing := "</" + tag + ">"
			var block strings.Builder
			block.WriteString(raw)
			closed := false
			for i++; i < len(lines); i++ {
				block.WriteString(lines[i])
				if strings.HasPrefix(strings.TrimSpace(lines[i]), closing) {
					closed = true
					break
				}
			}
			if !closed {
				return nil, &MalformedProfileError{Tag: tag}
			}
			ds = append(ds, Directive{Kind: KindInline, Name: tag, Raw: block.String()})

		default:
			fields := strings.Fields(trimmed)
			ds = append(ds, Directive{
				Kind: KindParam,
				Name: fields[0],
				Args: fields[1:],
				Raw:  raw,
			})
		}
	}
	return ds, nil
}
