package router

import (
	"Integration_Pool_Manager/internal/pool-manager/model"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidates(ids ...string) []candidate {
	cs := make([]candidate, 0, len(ids))
	for _, id := range ids {
		cs = append(cs, candidate{server: model.ServerConfig{ID: id, Priority: model.PriorityNormal}})
	}
	return cs
}

func ids(cs []candidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.server.ID)
	}
	return out
}

func TestRankCandidates_RoundRobin(t *testing.T) {
	var cursor atomic.Uint64
	cs := candidates("A", "B", "C")

	var heads []string
	for i := 0; i < 5; i++ {
		ranked := rankCandidates(model.StrategyRoundRobin, cs, &cursor)
		heads = append(heads, ranked[0].server.ID)
	}

	assert.Equal(t, []string{"A", "B", "C", "A", "B"}, heads)
	assert.Equal(t, []string{"A", "B", "C"}, ids(cs), "input must not be reordered")
}

func TestRankCandidates_RoundRobinFailoverOrder(t *testing.T) {
	var cursor atomic.Uint64
	cs := candidates("A", "B", "C")

	rankCandidates(model.StrategyRoundRobin, cs, &cursor)
	ranked := rankCandidates(model.StrategyRoundRobin, cs, &cursor)

	assert.Equal(t, []string{"B", "C", "A"}, ids(ranked))
}

func TestRankCandidates_LeastConnections(t *testing.T) {
	cs := candidates("A", "B", "C")
	cs[0].inFlight = 2
	cs[1].inFlight = 0
	cs[2].inFlight = 1

	ranked := rankCandidates(model.StrategyLeastConnections, cs, nil)

	assert.Equal(t, []string{"B", "C", "A"}, ids(ranked))
}

func TestRankCandidates_LeastConnectionsTiesKeepPoolOrder(t *testing.T) {
	cs := candidates("A", "B", "C")
	cs[0].inFlight = 1

	ranked := rankCandidates(model.StrategyLeastConnections, cs, nil)

	assert.Equal(t, []string{"B", "C", "A"}, ids(ranked))
}

func TestRankCandidates_Priority(t *testing.T) {
	cs := candidates("low", "normal-slow", "critical", "normal-fast", "medium")
	cs[0].server.Priority = model.PriorityLow
	cs[1].server.Priority = model.PriorityNormal
	cs[1].score = 60
	cs[2].server.Priority = model.PriorityCritical
	cs[3].server.Priority = model.PriorityNormal
	cs[3].score = 95
	cs[4].server.Priority = model.PriorityMedium
	cs[4].score = 80

	ranked := rankCandidates(model.StrategyPriority, cs, nil)

	assert.Equal(t, []string{"critical", "normal-fast", "medium", "normal-slow", "low"}, ids(ranked))
}

func TestRankCandidates_Weighted(t *testing.T) {
	cs := candidates("A", "B", "C")
	cs[0].score = 10
	cs[1].score = 90
	cs[2].score = 50

	counts := map[string]int{}
	for i := 0; i < 2000; i++ {
		ranked := rankCandidates(model.StrategyWeighted, cs, nil)
		require.Len(t, ranked, 3)
		counts[ranked[0].server.ID]++
		assert.GreaterOrEqual(t, ranked[1].score, ranked[2].score)
	}

	assert.Greater(t, counts["B"], counts["C"])
	assert.Greater(t, counts["C"], counts["A"])
}

func TestRankCandidates_WeightedWithoutScores(t *testing.T) {
	cs := candidates("A", "B")

	ranked := rankCandidates(model.StrategyWeighted, cs, nil)

	assert.ElementsMatch(t, []string{"A", "B"}, ids(ranked))
}

func TestRankCandidates_Random(t *testing.T) {
	cs := candidates("A", "B", "C", "D")

	ranked := rankCandidates(model.StrategyRandom, cs, nil)

	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, ids(ranked))
}

func TestRankCandidates_SingleCandidate(t *testing.T) {
	var cursor atomic.Uint64
	for _, strategy := range []model.LoadBalancingStrategy{
		model.StrategyRoundRobin, model.StrategyLeastConnections, model.StrategyWeighted, model.StrategyPriority, model.StrategyRandom,
	} {
		ranked := rankCandidates(strategy, candidates("only"), &cursor)
		assert.Equal(t, []string{"only"}, ids(ranked), strategy)
	}
}
