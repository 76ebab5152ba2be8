package prover

import "fmt"

// SkolemManager hands out fresh Skolem function/constant terms outside of
// a full ToCNF run, for callers that Skolemize formulas incrementally
// (e.g. while building a clause set one formula at a time) rather than
// through the batch CNF pipeline, which keeps its own counter.
type SkolemManager struct {
	counter int
}

// NewSkolemManager returns a manager with its counter at zero.
func NewSkolemManager() *SkolemManager {
	return &SkolemManager{}
}

// NextSkolemName returns the next Skolem symbol without constructing a
// term, advancing the counter.
func (m *SkolemManager) NextSkolemName() string {
	name := generateSkolemName(m.counter)
	m.counter++
	return name
}

// CreateSkolemFunction returns a constant (if universalVars is empty) or
// a function application of a fresh Skolem symbol to the given universal
// De-Bruijn indices, advancing the counter.
func (m *SkolemManager) CreateSkolemFunction(universalVars []int) *Term {
	name := m.NextSkolemName()
	if len(universalVars) == 0 {
		return MakeConst(name)
	}
	args := make([]*Term, len(universalVars))
	for i, idx := range universalVars {
		args[i] = MakeVar(idx)
	}
	return MakeApp(name, args)
}

func generateSkolemName(counter int) string {
	return fmt.Sprintf("sk%d", counter)
}
