package spellkit

import "time"

// snapshot is the immutable tuple (SD-Index, Guards, config) observed by
// readers between successful loads (§3 "Snapshot"). Engine publishes a new
// snapshot atomically on every successful Load; a failed Load never touches
// the currently-published snapshot.
type snapshot struct {
	index              *sdIndex
	guards             *guards
	frequencyThreshold float64
	editDistance       int
	dictionarySize     int
	loadedAt           time.Time
	loadID             string
	manifestVersion    string
}
