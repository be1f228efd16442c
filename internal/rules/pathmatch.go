package rules

import (
	"regexp"
	"strings"

	"profile-forge/internal/report"
)

// matchPath matches filepath patterns as a pure string match over the
// whole slash-normalized path: `*` and `?` match any characters,
// including path separators, so "*filament*" selects files anywhere
// under a filament directory. Filename patterns use doublestar instead;
// for bare filenames the two semantics coincide.
func matchPath(pattern, name string, rep *report.Reporter) (matched, ok bool) {
	re, err := regexp.Compile(translatePattern(pattern))
	if err != nil {
		rep.Warnf("invalid path pattern %q: %v", pattern, err)
		return false, false
	}

	return re.MatchString(name), true
}

// translatePattern converts a shell wildcard pattern into an anchored
// regular expression: `*` becomes `.*`, `?` becomes `.`, `[seq]` and
// `[!seq]` become character classes, and an unterminated `[` is a
// literal bracket.
func translatePattern(pattern string) string {
	var b strings.Builder

	b.WriteString(`(?s)^`)

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteByte('.')
		case '[':
			j := i + 1
			if j < len(pattern) && pattern[j] == '!' {
				j++
			}
			// A ']' directly after the opening bracket (or the '!') is
			// part of the set, not its terminator.
			if j < len(pattern) && pattern[j] == ']' {
				j++
			}
			for j < len(pattern) && pattern[j] != ']' {
				j++
			}

			if j >= len(pattern) {
				b.WriteString(`\[`)
				continue
			}

			set := pattern[i+1 : j]
			set = strings.ReplaceAll(set, `\`, `\\`)
			set = strings.ReplaceAll(set, `]`, `\]`)

			b.WriteByte('[')

			switch {
			case strings.HasPrefix(set, "!"):
				b.WriteByte('^')
				b.WriteString(set[1:])
			case strings.HasPrefix(set, "^"):
				b.WriteByte('\\')
				b.WriteString(set)
			default:
				b.WriteString(set)
			}

			b.WriteByte(']')

			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	b.WriteByte('$')

	return b.String()
}
