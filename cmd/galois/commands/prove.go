package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/galois/display"
	"github.com/teranos/galois/horn"
)

var (
	proveQueries  []string
	proveBackward bool
	proveShowKB   bool
)

// ProveCmd runs the Horn-clause reasoner over a rules file.
var ProveCmd = &cobra.Command{
	Use:   "prove <rules.yaml>",
	Short: "Run forward or backward chaining over a rules file",
	Long: `Prove queries against a Horn program of initial facts and
implications:

  facts: [croaks, eats flies]
  clauses:
    - if: [croaks, eats flies]
      then: frog
    - if: [frog]
      then: green

Queries are atoms, or conjunctions written "a & b". Forward chaining
fires clauses until the query holds or no clause can fire; backward
chaining searches goal-directed without growing the knowledge base.`,
	Args: cobra.ExactArgs(1),
	RunE: runProve,
}

// proveResult is the JSON form of a single query outcome.
type proveResult struct {
	Query  string   `json:"query"`
	Proved bool     `json:"proved"`
	Method string   `json:"method"`
	Facts  []string `json:"facts,omitempty"`
}

func init() {
	ProveCmd.Flags().StringArrayVarP(&proveQueries, "query", "q", nil, "Goal to prove (repeatable; \"a & b\" for conjunctions)")
	ProveCmd.Flags().BoolVarP(&proveBackward, "backward", "b", false, "Use backward chaining instead of forward chaining")
	ProveCmd.Flags().BoolVar(&proveShowKB, "kb", false, "Print the knowledge base after each proof")
	_ = ProveCmd.MarkFlagRequired("query")
}

func runProve(cmd *cobra.Command, args []string) error {
	rf, err := LoadRulesFile(args[0])
	if err != nil {
		return err
	}
	clauses, facts, err := rf.Program()
	if err != nil {
		return err
	}

	method := "forward"
	if proveBackward {
		method = "backward"
	}

	reasoner := horn.NewReasoner(clauses, facts)
	results := make([]proveResult, 0, len(proveQueries))

	for _, q := range proveQueries {
		goal, err := ParseGoal(q)
		if err != nil {
			return err
		}

		var proved bool
		if proveBackward {
			proved = reasoner.BackwardChain(goal)
		} else {
			reasoner.Reset()
			proved = reasoner.ForwardChain(goal)
		}

		res := proveResult{Query: goal.String(), Proved: proved, Method: method}
		if proveShowKB {
			for _, f := range reasoner.Facts() {
				res.Facts = append(res.Facts, f.Text)
			}
		}
		results = append(results, res)
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(results)
	}

	for _, res := range results {
		if res.Proved {
			pterm.Success.Printf("%s (%s chaining)\n", res.Query, res.Method)
		} else {
			pterm.Error.Printf("%s not provable (%s chaining)\n", res.Query, res.Method)
		}
		if proveShowKB {
			for _, f := range res.Facts {
				fmt.Printf("  %s\n", f)
			}
		}
	}
	return nil
}
