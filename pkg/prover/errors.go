package prover

import "errors"

// ErrAlreadyRunning's text is the Message of the result returned when
// Complete or Prove (or a sibling entry point) is invoked on an engine
// instance that is already processing another call; a single instance is
// not reentrant.
var ErrAlreadyRunning = errors.New("prover: completion or proof already in progress on this instance")

// ErrNilOrdering is returned by NewKnuthBendixCompletion when constructed
// without a term ordering.
var ErrNilOrdering = errors.New("prover: knuth-bendix completion requires a non-nil ordering")
