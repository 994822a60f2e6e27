package merge

import (
	"fmt"
	"log"

	"github.com/agenthands/ontomerge/internal/core/match"
	"github.com/agenthands/ontomerge/internal/core/model"
)

// Strategy selects the canonical-node scoring rule.
type Strategy int

const (
	// StrategyRichest favors the node with the fullest definition:
	// outgoing statements plus bonuses for carrying a label and a comment,
	// summed across all source graphs.
	StrategyRichest Strategy = iota

	// StrategyFirst keeps the first-seen node of the group.
	StrategyFirst

	// StrategyMostConnected favors the node with the highest combined
	// incoming and outgoing statement count.
	StrategyMostConnected

	// StrategyMostProperties favors the node with the highest outgoing
	// statement count only.
	StrategyMostProperties
)

func (s Strategy) String() string {
	switch s {
	case StrategyFirst:
		return "first"
	case StrategyMostConnected:
		return "most_connected"
	case StrategyMostProperties:
		return "most_properties"
	default:
		return "richest"
	}
}

// ParseStrategy maps a configuration string to a Strategy. The empty string
// selects the default richness score.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "richest":
		return StrategyRichest, nil
	case "first":
		return StrategyFirst, nil
	case "most_connected":
		return StrategyMostConnected, nil
	case "most_properties":
		return StrategyMostProperties, nil
	default:
		return StrategyRichest, fmt.Errorf("unknown merge strategy: %s", s)
	}
}

// selectCanonical returns exactly one member of the group to survive the
// merge. A matching preference wins outright; otherwise the strategy's score
// decides, with ties broken by first-seen order.
func selectCanonical(group match.Group, sources []*model.Graph, opts Options) model.Node {
	if want, ok := opts.Preferences[group.Key]; ok {
		for _, n := range group.Members {
			if n.ID == want {
				return n
			}
		}
		log.Printf("Warning: preferred identity %s for group %q not among duplicates, falling back to %s strategy", want, group.Key, opts.Strategy)
	}

	if opts.Strategy == StrategyFirst {
		return group.Members[0]
	}

	best := group.Members[0]
	bestScore := score(best, sources, opts.Strategy)
	for _, n := range group.Members[1:] {
		if s := score(n, sources, opts.Strategy); s > bestScore {
			best, bestScore = n, s
		}
	}
	return best
}

func score(n model.Node, sources []*model.Graph, strategy Strategy) int {
	total := 0
	for _, g := range sources {
		switch strategy {
		case StrategyMostConnected:
			total += g.SubjectCount(n) + g.ObjectCount(n)
		case StrategyMostProperties:
			total += g.SubjectCount(n)
		default:
			total += g.SubjectCount(n)
			if _, ok := g.Label(n); ok {
				total += 2
			}
			if _, ok := g.Comment(n); ok {
				total += 2
			}
		}
	}
	return total
}
