package spellkit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineQueriesBeforeLoadReturnErrNotLoaded(t *testing.T) {
	e := New()

	_, err := e.Suggest("hello", 5)
	assert.ErrorIs(t, err, ErrNotLoaded)

	_, err = e.IsKnown("hello")
	assert.ErrorIs(t, err, ErrNotLoaded)

	_, err = e.CorrectIfUnknown("hello", false)
	assert.ErrorIs(t, err, ErrNotLoaded)

	_, err = e.CorrectTokens([]string{"hello"}, false)
	assert.ErrorIs(t, err, ErrNotLoaded)

	assert.ErrorIs(t, e.Healthcheck(), ErrNotLoaded)

	stats := e.Stats()
	assert.False(t, stats.Loaded)
}

func TestEngineLoadThenQuery(t *testing.T) {
	e := New()
	entries := []DictionaryEntry{
		{Term: "hello", Frequency: 1000},
		{Term: "world", Frequency: 500},
	}

	require.NoError(t, e.Load(entries, EditDistance(2), FrequencyThreshold(1)))

	suggestions, err := e.Suggest("helo", 5)
	require.NoError(t, err)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "hello", suggestions[0].Term)

	known, err := e.IsKnown("world")
	require.NoError(t, err)
	assert.True(t, known)

	require.NoError(t, e.Healthcheck())

	stats := e.Stats()
	assert.True(t, stats.Loaded)
	assert.Equal(t, 2, stats.DictionarySize)
	assert.Equal(t, 2, stats.EditDistance)
	assert.NotEmpty(t, stats.LoadID)
}

func TestEngineReloadReplacesSnapshotAtomically(t *testing.T) {
	e := New()
	require.NoError(t, e.Load([]DictionaryEntry{{Term: "hello", Frequency: 1}}))

	firstStats := e.Stats()

	require.NoError(t, e.Load([]DictionaryEntry{
		{Term: "goodbye", Frequency: 1},
		{Term: "farewell", Frequency: 1},
	}))

	secondStats := e.Stats()
	assert.NotEqual(t, firstStats.LoadID, secondStats.LoadID)
	assert.Equal(t, 2, secondStats.DictionarySize)

	known, err := e.IsKnown("hello")
	require.NoError(t, err)
	assert.False(t, known, "the first snapshot's dictionary must no longer be visible")

	known, err = e.IsKnown("goodbye")
	require.NoError(t, err)
	assert.True(t, known)
}

func TestEngineLoadRejectsInvalidEditDistance(t *testing.T) {
	e := New()
	err := e.Load([]DictionaryEntry{{Term: "hello", Frequency: 1}}, EditDistance(3))
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, KindInvalidArg, loadErr.Kind)

	// a failed Load publishes no snapshot, so the engine stays Unloaded
	assert.ErrorIs(t, e.Healthcheck(), ErrNotLoaded)
}

func TestEngineFailedLoadLeavesPriorSnapshotIntact(t *testing.T) {
	e := New()
	require.NoError(t, e.Load([]DictionaryEntry{{Term: "hello", Frequency: 1}}))

	err := e.Load([]DictionaryEntry{{Term: "goodbye", Frequency: 1}}, EditDistance(99))
	require.Error(t, err)

	known, err := e.IsKnown("hello")
	require.NoError(t, err)
	assert.True(t, known, "prior snapshot must survive a rejected reload")
}

func TestEngineLoadRejectsInvalidPattern(t *testing.T) {
	e := New()
	err := e.Load([]DictionaryEntry{{Term: "hello", Frequency: 1}},
		ProtectedPatterns([]PatternSpec{{Source: "("}}))
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, KindInvalidPattern, loadErr.Kind)
}

func TestEngineCorrectIfUnknownRespectsGuard(t *testing.T) {
	e := New()
	require.NoError(t, e.Load(
		[]DictionaryEntry{{Term: "hello", Frequency: 1000}},
		EditDistance(1),
		FrequencyThreshold(1),
		ProtectedTerms([]string{"helo"}),
	))

	guarded, err := e.CorrectIfUnknown("helo", true)
	require.NoError(t, err)
	assert.Equal(t, "helo", guarded)

	unguarded, err := e.CorrectIfUnknown("helo", false)
	require.NoError(t, err)
	assert.Equal(t, "hello", unguarded)
}

func TestEngineCorrectTokensBatch(t *testing.T) {
	e := New()
	require.NoError(t, e.Load(
		[]DictionaryEntry{
			{Term: "hello", Frequency: 1000},
			{Term: "world", Frequency: 1000},
		},
		EditDistance(2),
		FrequencyThreshold(1),
	))

	got, err := e.CorrectTokens([]string{"helo", "wrld"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, got)
}

func TestEngineManifestVersionSurfacedInStats(t *testing.T) {
	e := New()
	require.NoError(t, e.Load(
		[]DictionaryEntry{{Term: "hello", Frequency: 1}},
		Manifest([]byte(`{"version":"2024.07"}`)),
	))

	assert.Equal(t, "2024.07", e.Stats().ManifestVersion)
}
