// Package recommendations turns computed metrics and target parameters into
// a ranked, deduplicated list of suggestions. The engine is a pure evaluator
// over an explicit ordered rule table so every rule can be enumerated and
// tested on its own.
package recommendations

import "sort"

// Engine evaluates the fixed rule set against an Input.
type Engine struct {
	thresholds Thresholds
	rules      []Rule
}

// Rule is one entry of the ordered rule table.
type Rule struct {
	Type     string
	Priority string
	// When returns whether the rule fires plus the emitted recommendation
	// values. Message text may embed the magnitude; the priority never does.
	When func(in Input, t Thresholds) (bool, Recommendation)
}

// NewEngine builds an engine with the given thresholds; zero-value
// thresholds fall back to the defaults.
func NewEngine(t Thresholds) *Engine {
	if t == (Thresholds{}) {
		t = DefaultThresholds()
	}
	return &Engine{thresholds: t, rules: ruleTable()}
}

// Generate evaluates every rule in table order, keeps at most one
// recommendation per type (highest priority wins), and sorts the result
// high → medium → low, preserving table order within a tier.
func (e *Engine) Generate(in Input) []Recommendation {
	var out []Recommendation
	byType := make(map[string]int)

	for _, rule := range e.rules {
		fired, rec := rule.When(in, e.thresholds)
		if !fired {
			continue
		}
		rec.Type = rule.Type
		rec.Priority = rule.Priority

		if idx, seen := byType[rule.Type]; seen {
			if priorityRank(rec.Priority) > priorityRank(out[idx].Priority) {
				out[idx] = rec
			}
			continue
		}
		byType[rule.Type] = len(out)
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return priorityRank(out[i].Priority) > priorityRank(out[j].Priority)
	})
	return out
}

// Rules exposes the table for enumeration in tests.
func (e *Engine) Rules() []Rule {
	return e.rules
}

func priorityRank(p string) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}
