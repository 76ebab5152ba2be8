// Command example demonstrates the prover package's engines: Knuth-Bendix
// completion (built on the term rewriting core), and refutation proving
// via resolution.
package main

import (
	"fmt"

	"github.com/gitrdm/gokanprove/pkg/prover"
)

func main() {
	fmt.Println("=== gokanprove examples ===")
	fmt.Println()

	modusPonens()
	fmt.Println()
	disjunctiveSyllogism()
	fmt.Println()
	knuthBendixGroupTheory()
}

// modusPonens proves Q from P and P -> Q using resolution refutation.
func modusPonens() {
	fmt.Println("1. Modus ponens:")

	p := prover.MakeConst("p")
	q := prover.MakeConst("q")
	pImpliesQ := prover.MakeImplies(p, q)

	proverEngine := prover.NewResolutionProver(prover.DefaultResolutionConfig())
	result := proverEngine.Prove([]*prover.Term{p, pImpliesQ}, q)

	fmt.Printf("   status=%s message=%q\n", result.Status, result.Message)
}

// disjunctiveSyllogism proves Q from (P or Q) and not(P).
func disjunctiveSyllogism() {
	fmt.Println("2. Disjunctive syllogism:")

	p := prover.MakeConst("p")
	q := prover.MakeConst("q")
	pOrQ := prover.MakeOr(p, q)
	notP := prover.MakeNot(p)

	proverEngine := prover.NewResolutionProver(prover.DefaultResolutionConfig())
	result := proverEngine.Prove([]*prover.Term{pOrQ, notP}, q)

	fmt.Printf("   status=%s message=%q\n", result.Status, result.Message)
}

// knuthBendixGroupTheory completes a tiny group-theory-flavored equation
// set: e is a left identity, and every element has a left inverse.
func knuthBendixGroupTheory() {
	fmt.Println("3. Knuth-Bendix completion (left identity + left inverse):")

	e := prover.MakeConst("e")
	x := prover.MakeVar(0)
	inv := func(t *prover.Term) *prover.Term { return prover.MakeApp("inv", []*prover.Term{t}) }
	mul := func(a, b *prover.Term) *prover.Term { return prover.MakeApp("*", []*prover.Term{a, b}) }

	leftIdentity := prover.NewEquation(mul(e, x), x, "left-identity")
	leftInverse := prover.NewEquation(mul(inv(x), x), e, "left-inverse")

	config := prover.DefaultKBConfig()
	result := prover.KnuthBendixComplete([]prover.Equation{leftIdentity, leftInverse}, prover.NewLPO(), config)

	fmt.Printf("   status=%s rules=%d iterations=%d\n", result.Status, len(result.FinalRules), result.Iterations)
	for _, r := range result.FinalRules {
		fmt.Printf("     %s\n", r.String())
	}
}
