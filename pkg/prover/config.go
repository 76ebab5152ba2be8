package prover

import (
	"time"

	"github.com/hashicorp/go-hclog"
)

// KBConfig configures a KnuthBendixCompletion run.
type KBConfig struct {
	MaxIterations        int
	MaxRules             int
	MaxEquations         int
	MaxTime              time.Duration
	EnableSimplification bool
	EnableSubsumption    bool
	FairProcessing       bool
	Verbose              bool
	Logger                hclog.Logger
}

// DefaultKBConfig mirrors the defaults of the completion engine this
// package is modeled on: generous iteration and rule caps, a five-minute
// wall-clock ceiling, simplification, subsumption, and fair (FIFO)
// processing all enabled.
func DefaultKBConfig() KBConfig {
	return KBConfig{
		MaxIterations:         10000,
		MaxRules:              1000,
		MaxEquations:          5000,
		MaxTime:               300 * time.Second,
		EnableSimplification:  true,
		EnableSubsumption:     true,
		FairProcessing:        true,
		Verbose:               false,
	}
}

func (c KBConfig) logger() hclog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return hclog.NewNullLogger()
}

// SelectionStrategy selects which clause the resolution saturation loop
// works on next.
type SelectionStrategy int

const (
	// SelectFIFO processes clauses in the order they were added.
	SelectFIFO SelectionStrategy = iota
	// SelectSmallestFirst always picks the clause with the fewest
	// literals.
	SelectSmallestFirst
	// SelectUnitPreference prefers any available unit clause, falling
	// back to FIFO order.
	SelectUnitPreference
	// SelectNegativeSelection is reserved for a negative-literal
	// preference strategy; the current engine falls back to FIFO,
	// matching the engine this package is modeled on.
	SelectNegativeSelection
)

// ResolutionConfig configures a ResolutionProver run.
type ResolutionConfig struct {
	MaxIterations       int
	MaxTime             time.Duration
	MaxClauses          int
	UseSubsumption      bool
	UseTautologyDeletion bool
	UseFactoring        bool
	UseParamodulation   bool

	UseKBPreprocessing    bool
	KBPreprocessingTimeout time.Duration
	KBMaxRules            int
	KBMaxEquations        int
	KBConfig              KBConfig

	SelectionStrategy SelectionStrategy

	Verbose bool
	Logger  hclog.Logger
}

// DefaultResolutionConfig mirrors the defaults of the resolution engine
// this package is modeled on.
func DefaultResolutionConfig() ResolutionConfig {
	return ResolutionConfig{
		MaxIterations:          10000,
		MaxTime:                30 * time.Second,
		MaxClauses:             100000,
		UseSubsumption:         true,
		UseTautologyDeletion:   true,
		UseFactoring:           true,
		UseParamodulation:      false,
		UseKBPreprocessing:     false,
		KBPreprocessingTimeout: 5 * time.Second,
		KBMaxRules:             50,
		KBMaxEquations:         20,
		KBConfig:               DefaultKBConfig(),
		SelectionStrategy:      SelectUnitPreference,
	}
}

func (c ResolutionConfig) logger() hclog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return hclog.NewNullLogger()
}
