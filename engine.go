package spellkit

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine is the loaded, read-only façade over an SD-Index and Guards. The
// zero value is a valid Unloaded engine; New additionally wires an optional
// logger. Engine is safe for concurrent use: queries never block each other,
// and a Load publishes a new snapshot with a single atomic pointer swap
// rather than a sync.RWMutex guarding mutable fields — the "lock-free swap of
// an immutable snapshot pointer" alternative §5 calls out as equivalent and
// preferred.
type Engine struct {
	snap   atomic.Pointer[snapshot]
	logger *zap.Logger
}

// EngineOption configures an Engine at construction time.
type EngineOption func(*Engine)

// WithLogger attaches a structured logger to the engine. A nil logger (or
// omitting this option) leaves the engine silent.
func WithLogger(l *zap.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Unloaded Engine.
func New(opts ...EngineOption) *Engine {
	e := &Engine{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type loadParams struct {
	editDistance       int
	frequencyThreshold float64
	protectedTerms     []string
	protectedPatterns  []PatternSpec
	manifest           []byte
}

func defaultLoadParams() *loadParams {
	return &loadParams{
		editDistance:       defaultEditDistance,
		frequencyThreshold: defaultFrequencyThreshold,
	}
}

const (
	defaultEditDistance       = 1
	defaultFrequencyThreshold = 10.0
)

// LoadOption configures a Load call. An error from an invalid option aborts
// the load before any snapshot is touched, leaving the previously-loaded
// snapshot (if any) intact.
type LoadOption func(*loadParams) error

// EditDistance sets the max edit distance the SD-Index is built with. Must
// be 1 or 2.
func EditDistance(d int) LoadOption {
	return func(lp *loadParams) error {
		if d != 1 && d != 2 {
			return &LoadError{Kind: KindInvalidArg, Source: "edit_distance"}
		}
		lp.editDistance = d
		return nil
	}
}

// FrequencyThreshold sets the multiplier (or floor, when the original token
// is unknown) the frequency gate in §4.6 requires a candidate correction to
// clear.
func FrequencyThreshold(t float64) LoadOption {
	return func(lp *loadParams) error {
		lp.frequencyThreshold = t
		return nil
	}
}

// ProtectedTerms supplies already-parsed protected-term lines (see
// LoadProtectedTermsFile for the file-format glue that produces these).
func ProtectedTerms(lines []string) LoadOption {
	return func(lp *loadParams) error {
		lp.protectedTerms = lines
		return nil
	}
}

// ProtectedPatterns supplies protected regular-expression specs. An invalid
// pattern fails the Load with KindInvalidPattern.
func ProtectedPatterns(specs []PatternSpec) LoadOption {
	return func(lp *loadParams) error {
		lp.protectedPatterns = specs
		return nil
	}
}

// Manifest supplies the raw bytes of an optional JSON manifest; if it parses
// and contains a "version" field, that value is surfaced via Stats (§11,
// grounded on the original_source Rust implementation's manifest_version).
func Manifest(data []byte) LoadOption {
	return func(lp *loadParams) error {
		lp.manifest = data
		return nil
	}
}

// Load builds a fresh SD-Index and Guards from entries and opts, and
// publishes them as the engine's new snapshot. A failed Load returns a
// *LoadError and leaves any previously-published snapshot untouched (§4.7,
// §7).
func (e *Engine) Load(entries []DictionaryEntry, opts ...LoadOption) error {
	logger := e.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	lp := defaultLoadParams()
	for _, opt := range opts {
		if err := opt(lp); err != nil {
			logger.Debug("spellkit: rejected load option", zap.Error(err))
			return err
		}
	}

	g := newGuards()
	g.loadProtectedTerms(lp.protectedTerms)

	for _, spec := range lp.protectedPatterns {
		if err := g.addPattern(spec); err != nil {
			logger.Debug("spellkit: rejected protected pattern",
				zap.String("source", spec.Source), zap.Error(err))
			return err
		}
	}

	idx := newSDIndex(entries, lp.editDistance)

	manifestVersion := ""
	if len(lp.manifest) > 0 {
		manifestVersion = parseManifestVersion(lp.manifest)
	}

	snap := &snapshot{
		index:              idx,
		guards:             g,
		frequencyThreshold: lp.frequencyThreshold,
		editDistance:       lp.editDistance,
		dictionarySize:     len(idx.words),
		loadedAt:           time.Now(),
		loadID:             uuid.NewString(),
		manifestVersion:    manifestVersion,
	}

	e.snap.Store(snap)

	logger.Debug("spellkit: loaded snapshot",
		zap.String("load_id", snap.loadID),
		zap.Int("dictionary_size", snap.dictionarySize),
		zap.Int("edit_distance", snap.editDistance))

	return nil
}

func (e *Engine) current() (*snapshot, error) {
	s := e.snap.Load()
	if s == nil {
		return nil, ErrNotLoaded
	}
	return s, nil
}

// Suggest returns a ranked list of suggestions for word, probing the current
// snapshot. max <= 0 returns an empty list. Returns ErrNotLoaded if no
// successful Load has occurred.
func (e *Engine) Suggest(word string, max int) (SuggestionList, error) {
	s, err := e.current()
	if err != nil {
		return nil, err
	}
	return suggest(s.index, word, max), nil
}

// IsKnown reports whether normalize(word) is a dictionary key in the current
// snapshot.
func (e *Engine) IsKnown(word string) (bool, error) {
	s, err := e.current()
	if err != nil {
		return false, err
	}
	return isKnown(s.index, word), nil
}

// CorrectIfUnknown applies the §4.6 correction policy to word against the
// current snapshot.
func (e *Engine) CorrectIfUnknown(word string, useGuard bool) (string, error) {
	s, err := e.current()
	if err != nil {
		return "", err
	}
	return correctIfUnknown(s.index, s.guards, s.frequencyThreshold, word, useGuard), nil
}

// CorrectTokens applies CorrectIfUnknown to every element of words against a
// single snapshot read, preserving order and length (§4.6 batch contract:
// the shared read is acquired once for the whole batch, not per token).
func (e *Engine) CorrectTokens(words []string, useGuard bool) ([]string, error) {
	s, err := e.current()
	if err != nil {
		return nil, err
	}
	return correctTokens(s.index, s.guards, s.frequencyThreshold, words, useGuard), nil
}

// Stats describes the engine's current state. It is safe to call whether or
// not the engine is loaded.
type Stats struct {
	Loaded          bool
	DictionarySize  int
	EditDistance    int
	LoadedAt        time.Time
	LoadID          string
	ManifestVersion string
}

// Stats reports the current engine state; safe in both Unloaded and Loaded
// states (§4.7).
func (e *Engine) Stats() Stats {
	s := e.snap.Load()
	if s == nil {
		return Stats{Loaded: false}
	}
	return Stats{
		Loaded:          true,
		DictionarySize:  s.dictionarySize,
		EditDistance:    s.editDistance,
		LoadedAt:        s.loadedAt,
		LoadID:          s.loadID,
		ManifestVersion: s.manifestVersion,
	}
}

// Healthcheck returns nil if the engine is loaded, or ErrNotLoaded
// otherwise.
func (e *Engine) Healthcheck() error {
	if e.snap.Load() == nil {
		return ErrNotLoaded
	}
	return nil
}
