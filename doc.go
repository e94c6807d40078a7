// Copyright (c) 2019 Hayden Eskriett. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

// Package spellkit provides an in-memory spelling correction engine for short
// tokens drawn from a pre-built frequency dictionary. It is built around a
// symmetric-delete index (SD-Index) for sublinear candidate generation, an
// edit-distance verification/ranking pass, and a correction policy that
// respects a configurable set of protected terms and patterns.
//
// A typical host loads a dictionary once, keeps the resulting *Engine for the
// life of the process, and calls Suggest or CorrectIfUnknown per token from
// its own tokenizer. Reloading is a fresh Load that atomically swaps in a new
// snapshot; readers mid-call continue to observe the snapshot they started
// with.
package spellkit
