package spellkit

import (
	"regexp"
	"strings"
)

// PatternSpec is one protected-pattern source paired with the regex flags it
// should be compiled with. The flags are kept per-pattern rather than
// globally, which is a compatibility contract with callers (§9).
type PatternSpec struct {
	Source           string
	CaseInsensitive  bool
	MultiLine        bool
	IgnoreWhitespace bool
}

// guards holds the compiled protection policy: an exact-match set (carrying
// the literal, lowercase, and normalized form of every loaded term) and an
// ordered list of compiled regular expressions. It is built once at load and
// read-only thereafter.
type guards struct {
	protectedSet      map[string]struct{}
	protectedPatterns []*regexp.Regexp
}

func newGuards() *guards {
	return &guards{protectedSet: make(map[string]struct{})}
}

// loadProtectedTerms adds the literal, lowercase, and normalized form of each
// non-empty, non-comment line to the protected set (§4.5 loader semantics).
// Lines are expected to already be split and otherwise-untrimmed; each line
// is trimmed before use.
func (g *guards) loadProtectedTerms(lines []string) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		g.protectedSet[trimmed] = struct{}{}
		g.protectedSet[strings.ToLower(trimmed)] = struct{}{}
		g.protectedSet[Normalize(trimmed)] = struct{}{}
	}
}

// addPattern compiles spec and appends it to the protected patterns. Go's
// regexp package expresses case-insensitivity and multi-line mode with the
// inline flags (?i) and (?m); ignore-whitespace (Perl/PCRE's extended mode,
// "(?x)") has no Go equivalent, so it is emulated by stripping unescaped
// whitespace and "#"-to-end-of-line comments from the source before
// compilation.
func (g *guards) addPattern(spec PatternSpec) error {
	source := spec.Source
	if spec.IgnoreWhitespace {
		source = stripExtendedSyntax(source)
	}

	var flags string
	if spec.CaseInsensitive {
		flags += "i"
	}
	if spec.MultiLine {
		flags += "m"
	}
	if flags != "" {
		source = "(?" + flags + ")" + source
	}

	re, err := regexp.Compile(source)
	if err != nil {
		return newInvalidPatternError(spec.Source, err.Error(), err)
	}

	g.protectedPatterns = append(g.protectedPatterns, re)
	return nil
}

// stripExtendedSyntax removes unescaped whitespace and "#" end-of-line
// comments from a pattern source, approximating PCRE's extended ("x") flag.
func stripExtendedSyntax(source string) string {
	var b strings.Builder
	b.Grow(len(source))

	escaped := false
	inClass := false

	for i := 0; i < len(source); i++ {
		c := source[i]

		switch {
		case escaped:
			b.WriteByte(c)
			escaped = false
		case c == '\\':
			b.WriteByte(c)
			escaped = true
		case c == '[':
			inClass = true
			b.WriteByte(c)
		case c == ']':
			inClass = false
			b.WriteByte(c)
		case inClass:
			b.WriteByte(c)
		case c == '#':
			for i < len(source) && source[i] != '\n' {
				i++
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			continue
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// isProtected reports whether word, or its lowercase form, is in the exact
// protected set, or matches any protected pattern, in that order (§4.5).
func (g *guards) isProtected(word string) bool {
	if _, ok := g.protectedSet[word]; ok {
		return true
	}
	if _, ok := g.protectedSet[strings.ToLower(word)]; ok {
		return true
	}
	for _, re := range g.protectedPatterns {
		if re.MatchString(word) {
			return true
		}
	}
	return false
}

// isProtectedNormalized reports whether either the raw word or its
// normalized form is protected, so a caller does not have to test both
// itself.
func (g *guards) isProtectedNormalized(word, normalized string) bool {
	return g.isProtected(word) || g.isProtected(normalized)
}
