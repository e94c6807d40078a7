package spellkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardsLoadProtectedTermsExactSet(t *testing.T) {
	g := newGuards()
	g.loadProtectedTerms([]string{"CDK10", "# a comment", "", "   ", "NASA"})

	assert.True(t, g.isProtected("CDK10"))
	assert.True(t, g.isProtected("cdk10"))
	assert.True(t, g.isProtected(Normalize("CDK10")))
	assert.True(t, g.isProtected("NASA"))
	assert.False(t, g.isProtected("# a comment"))
	assert.False(t, g.isProtected(""))
}

// TestGuardsExactSetIsWholeToken checks the whole-token/substring asymmetry
// resolved in §9's open questions: the exact set only protects whole-token
// matches, unlike regex patterns which protect substrings.
func TestGuardsExactSetIsWholeToken(t *testing.T) {
	g := newGuards()
	g.loadProtectedTerms([]string{"NASA"})

	assert.True(t, g.isProtected("NASA"))
	assert.False(t, g.isProtected("NASAwide"), "exact set must not match as a substring")
}

func TestGuardsPatternSubstringMatch(t *testing.T) {
	g := newGuards()
	require.NoError(t, g.addPattern(PatternSpec{Source: `\bNASA\w*`}))

	assert.True(t, g.isProtected("NASAwide"), "regex patterns protect substrings")
	assert.True(t, g.isProtected("NASA"))
	assert.False(t, g.isProtected("xNASA"))
}

func TestGuardsCaseInsensitiveFlag(t *testing.T) {
	g := newGuards()
	require.NoError(t, g.addPattern(PatternSpec{Source: "^acme$", CaseInsensitive: true}))

	assert.True(t, g.isProtected("acme"))
	assert.True(t, g.isProtected("ACME"))
	assert.False(t, g.isProtected("acme-inc"))
}

func TestGuardsMultiLineFlag(t *testing.T) {
	g := newGuards()
	require.NoError(t, g.addPattern(PatternSpec{Source: "^secret$", MultiLine: true}))

	assert.True(t, g.isProtected("line1\nsecret\nline3"))
}

func TestGuardsIgnoreWhitespaceFlag(t *testing.T) {
	g := newGuards()
	err := g.addPattern(PatternSpec{
		Source: `\d{3}  -  \d{4}  # phone suffix`,
		IgnoreWhitespace: true,
	})
	require.NoError(t, err)

	assert.True(t, g.isProtected("555-1234"))
	assert.False(t, g.isProtected("555 1234"))
}

func TestGuardsIgnoreWhitespacePreservesCharacterClass(t *testing.T) {
	got := stripExtendedSyntax(`[a b]\ c # comment
d`)
	assert.Equal(t, "[a b]\\ cd", got)
}

func TestGuardsInvalidPatternReturnsLoadError(t *testing.T) {
	g := newGuards()
	err := g.addPattern(PatternSpec{Source: "("})
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, KindInvalidPattern, loadErr.Kind)
}

func TestGuardsIsProtectedNormalized(t *testing.T) {
	g := newGuards()
	g.loadProtectedTerms([]string{"CDK10"})

	assert.True(t, g.isProtectedNormalized("CDK10", Normalize("CDK10")))
	assert.True(t, g.isProtectedNormalized("cdk10", Normalize("cdk10")))
	assert.False(t, g.isProtectedNormalized("unrelated", Normalize("unrelated")))
}
