package router

import (
	"Integration_Pool_Manager/internal/pool-manager/model"
	"math/rand/v2"
	"sort"
	"sync/atomic"
)

type candidate struct {
	server   model.ServerConfig
	score    float64
	inFlight int64
}

// rankCandidates orders the eligible servers of a pool. The head is tried first, the rest are failover order.
func rankCandidates(strategy model.LoadBalancingStrategy, candidates []candidate, cursor *atomic.Uint64) []candidate {
	ranked := append([]candidate(nil), candidates...)
	if len(ranked) < 2 {
		return ranked
	}

	switch strategy {
	case model.StrategyLeastConnections:
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].inFlight < ranked[j].inFlight })
	case model.StrategyWeighted:
		ranked = rankWeighted(ranked)
	case model.StrategyPriority:
		sort.SliceStable(ranked, func(i, j int) bool {
			ri, rj := ranked[i].server.Priority.Rank(), ranked[j].server.Priority.Rank()
			if ri != rj {
				return ri < rj
			}
			return ranked[i].score > ranked[j].score
		})
	case model.StrategyRandom:
		rand.Shuffle(len(ranked), func(i, j int) { ranked[i], ranked[j] = ranked[j], ranked[i] })
	default:
		if cursor != nil {
			start := int((cursor.Add(1) - 1) % uint64(len(ranked)))
			ranked = append(ranked[start:], ranked[:start]...)
		}
	}
	return ranked
}

// rankWeighted draws the head with probability proportional to the health score, then orders the rest by score.
func rankWeighted(ranked []candidate) []candidate {
	var total float64
	for _, c := range ranked {
		total += weightOf(c)
	}
	pick := rand.Float64() * total
	head := len(ranked) - 1
	for i, c := range ranked {
		pick -= weightOf(c)
		if pick < 0 {
			head = i
			break
		}
	}

	ordered := make([]candidate, 0, len(ranked))
	ordered = append(ordered, ranked[head])
	rest := append(append([]candidate(nil), ranked[:head]...), ranked[head+1:]...)
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].score > rest[j].score })
	return append(ordered, rest...)
}

// weightOf keeps servers without samples selectable.
func weightOf(c candidate) float64 {
	if c.score < 1 {
		return 1
	}
	return c.score
}
