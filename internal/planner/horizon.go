package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// Horizon planning defaults: three years of 200 study hours each, at most
// three recommended skills, lookahead two levels deep with two picks per
// level.
const (
	DefaultHorizonYears   = 3
	DefaultHoursPerYear   = 200
	DefaultMaxRecommend   = 3
	DefaultLookaheadDepth = 2
	DefaultMaxPerLevel    = 2
)

// State table bounds for the horizon walk. When a year accumulates more
// than maxHorizonStates acquired-set states, only the most valuable
// keptHorizonStates survive.
const (
	maxHorizonStates  = 1000
	keptHorizonStates = 500
)

// HorizonInput configures the finite-horizon walk. Zero fields take the
// package defaults.
type HorizonInput struct {
	Catalog      domain.Catalog
	Scenarios    []domain.Scenario
	Acquired     []string
	Years        int
	HoursPerYear float64
	MaxRecommend int
}

// LookaheadInput configures the bounded lookahead search.
type LookaheadInput struct {
	Catalog      domain.Catalog
	Scenarios    []domain.Scenario
	Acquired     []string
	Depth        int
	HoursPerYear float64
	MaxRecommend int
	MaxPerLevel  int
}

// HorizonResult is the outcome of either planning method: what to learn
// next and what it is expected to be worth.
type HorizonResult struct {
	Method         domain.RecommendMethod
	Recommended    []string
	FullPath       []string
	ExpectedValue  float64
	HoursUsed      float64
	HoursLeft      float64
	Years          int
	Depth          int
	StatesExplored int
}

// RecommendInput drives the full recommendation: planning plus the
// strategic view over market scenarios and skill areas. Years bounds the
// horizon walk; the lookahead method ignores it and uses its depth default.
type RecommendInput struct {
	Catalog   domain.Catalog
	Scenarios []domain.Scenario
	Areas     []domain.Area
	Acquired  []string
	Method    domain.RecommendMethod
	Years     int
}

// Recommendation is a planning result enriched with market alignment,
// return on invested time, and the gaps the recommendation covers.
type Recommendation struct {
	HorizonResult
	MeanAlignment     float64
	ExpectedROI       float64
	GapsCovered       []string
	FavorableScenario string
	Gaps              []AreaGap
	Trends            []ScenarioTrend
}

type horizonState struct {
	skills []string
	value  float64
	path   []string
	hours  float64
}

// PlanHorizon walks year by year over acquired-set states: each year a
// state either stays put or learns one unlocked skill, paying its time
// from the shared hour pool and earning that year's expected value. The
// best state ever reached wins. Ties on value prefer more remaining
// hours; the walk visits states in sorted key order, so results are
// deterministic.
func PlanHorizon(in HorizonInput) (HorizonResult, error) {
	if _, err := NewGraph(in.Catalog); err != nil {
		return HorizonResult{}, err
	}
	if err := checkAcquired(in.Catalog, in.Acquired); err != nil {
		return HorizonResult{}, err
	}

	years := in.Years
	if years <= 0 {
		years = DefaultHorizonYears
	}
	hoursPerYear := in.HoursPerYear
	if hoursPerYear <= 0 {
		hoursPerYear = DefaultHoursPerYear
	}
	maxRecommend := in.MaxRecommend
	if maxRecommend <= 0 {
		maxRecommend = DefaultMaxRecommend
	}

	initial := horizonState{
		skills: sortedCopy(in.Acquired),
		hours:  hoursPerYear * float64(years),
	}
	prev := map[string]horizonState{stateKey(initial.skills): initial}
	global := initial
	explored := len(prev)

	for year := 1; year <= years; year++ {
		next := make(map[string]horizonState, len(prev))

		for _, key := range sortedKeys(prev) {
			state := prev[key]

			// Staying put keeps the state alive for later years.
			if cur, ok := next[key]; !ok || state.value > cur.value {
				next[key] = state
			}

			for _, skill := range Unlocked(in.Catalog, state.skills) {
				need := skill.TimeCost()
				if state.hours < need {
					continue
				}
				grown := horizonState{
					skills: sortedWith(state.skills, skill.ID),
					value:  state.value + ExpectedValue(skill, in.Scenarios, year),
					path:   appendPath(state.path, skill.ID),
					hours:  state.hours - need,
				}
				grownKey := stateKey(grown.skills)
				cur, ok := next[grownKey]
				if !ok || grown.value > cur.value ||
					(grown.value == cur.value && grown.hours > cur.hours) {
					next[grownKey] = grown
					if grown.value > global.value {
						global = grown
					}
				}
			}

			if len(next) > maxHorizonStates {
				next = pruneStates(next)
			}
		}

		prev = next
		explored += len(next)
	}

	recommended := global.path
	if len(recommended) > maxRecommend {
		recommended = recommended[:maxRecommend]
	}
	total := hoursPerYear * float64(years)
	return HorizonResult{
		Method:         domain.MethodHorizon,
		Recommended:    recommended,
		FullPath:       global.path,
		ExpectedValue:  global.value,
		HoursUsed:      total - global.hours,
		HoursLeft:      global.hours,
		Years:          years,
		StatesExplored: explored,
	}, nil
}

// PlanLookahead enumerates short skill sequences instead of walking the
// full state space: at each level it picks up to MaxPerLevel newly
// available skills, recursing Depth levels, and keeps the sequence with
// the highest expected value. Cheaper than PlanHorizon on rich profiles.
func PlanLookahead(in LookaheadInput) (HorizonResult, error) {
	if _, err := NewGraph(in.Catalog); err != nil {
		return HorizonResult{}, err
	}
	if err := checkAcquired(in.Catalog, in.Acquired); err != nil {
		return HorizonResult{}, err
	}

	depth := in.Depth
	if depth <= 0 {
		depth = DefaultLookaheadDepth
	}
	hoursPerYear := in.HoursPerYear
	if hoursPerYear <= 0 {
		hoursPerYear = DefaultHoursPerYear
	}
	maxRecommend := in.MaxRecommend
	if maxRecommend <= 0 {
		maxRecommend = DefaultMaxRecommend
	}
	maxPerLevel := in.MaxPerLevel
	if maxPerLevel <= 0 {
		maxPerLevel = DefaultMaxPerLevel
	}

	have := idSet(in.Acquired)
	candidates := unlockedIDs(in.Catalog, have)

	bestValue := -1.0
	var bestSeq []string
	var bestHours float64
	for _, seq := range levelSequences(in.Catalog, have, candidates, depth, maxPerLevel) {
		value, hours := evaluateSequence(in.Catalog, in.Scenarios, have, seq, depth, hoursPerYear)
		if value > bestValue {
			bestValue = value
			bestSeq = seq
			bestHours = hours
		}
	}
	if bestValue < 0 {
		bestValue = 0
	}

	recommended := bestSeq
	if len(recommended) > maxRecommend {
		recommended = recommended[:maxRecommend]
	}
	return HorizonResult{
		Method:        domain.MethodLookahead,
		Recommended:   recommended,
		FullPath:      bestSeq,
		ExpectedValue: bestValue,
		HoursUsed:     bestHours,
		HoursLeft:     hoursPerYear*float64(depth) - bestHours,
		Depth:         depth,
	}, nil
}

// Recommend plans the next skills for a profile and wraps the result in
// the strategic view: market trends, area gaps, alignment and return on
// time. Method auto picks the horizon walk for profiles of up to three
// skills and the lookahead search beyond that.
func Recommend(in RecommendInput) (Recommendation, error) {
	method := in.Method
	if method == "" || method == domain.MethodAuto {
		if len(in.Acquired) <= 3 {
			method = domain.MethodHorizon
		} else {
			method = domain.MethodLookahead
		}
	}

	var core HorizonResult
	var err error
	switch method {
	case domain.MethodHorizon:
		core, err = PlanHorizon(HorizonInput{
			Catalog:   in.Catalog,
			Scenarios: in.Scenarios,
			Acquired:  in.Acquired,
			Years:     in.Years,
		})
	case domain.MethodLookahead:
		core, err = PlanLookahead(LookaheadInput{
			Catalog:   in.Catalog,
			Scenarios: in.Scenarios,
			Acquired:  in.Acquired,
		})
	default:
		return Recommendation{}, fmt.Errorf("unsupported recommendation method %q", method)
	}
	if err != nil {
		return Recommendation{}, err
	}

	rec := Recommendation{
		HorizonResult: core,
		MeanAlignment: MeanAlignment(core.Recommended, in.Scenarios),
		ExpectedROI:   ExpectedROI(in.Catalog, in.Scenarios, core.Recommended),
		Gaps:          GapAnalysis(in.Areas, in.Acquired),
		Trends:        MarketTrends(in.Catalog, in.Scenarios),
	}
	for _, gap := range rec.Gaps {
		for _, id := range core.Recommended {
			if containsString(gap.Missing, id) {
				rec.GapsCovered = append(rec.GapsCovered, gap.Area.Name)
				break
			}
		}
	}
	bestImpact := 0.0
	for _, trend := range rec.Trends {
		if rec.FavorableScenario == "" || trend.Impact > bestImpact {
			bestImpact = trend.Impact
			rec.FavorableScenario = trend.Scenario.Name
		}
	}
	return rec, nil
}

// levelSequences builds the candidate sequences for PlanLookahead: every
// combination of up to maxPerLevel currently available skills, extended
// recursively by the skills that become available after them.
func levelSequences(catalog domain.Catalog, have map[string]bool, candidates []string, depth, maxPerLevel int) [][]string {
	if depth == 0 || len(candidates) == 0 {
		return [][]string{nil}
	}

	var sequences [][]string
	limit := maxPerLevel
	if limit > len(candidates) {
		limit = len(candidates)
	}
	for size := 1; size <= limit; size++ {
		combinations(candidates, size, func(combo []string) {
			nextHave := make(map[string]bool, len(have)+len(combo))
			for id := range have {
				nextHave[id] = true
			}
			for _, id := range combo {
				nextHave[id] = true
			}
			next := unlockedIDs(catalog, nextHave)
			for _, sub := range levelSequences(catalog, nextHave, next, depth-1, maxPerLevel) {
				seq := make([]string, 0, len(combo)+len(sub))
				seq = append(seq, combo...)
				seq = append(seq, sub...)
				sequences = append(sequences, seq)
			}
		})
	}
	if len(sequences) == 0 {
		return [][]string{nil}
	}
	return sequences
}

// evaluateSequence prices a sequence: each learnable skill earns the
// expected value of the year it is reached, until the hour budget for
// the whole lookahead window runs out.
func evaluateSequence(catalog domain.Catalog, scenarios []domain.Scenario, acquired map[string]bool, seq []string, depth int, hoursPerYear float64) (float64, float64) {
	have := make(map[string]bool, len(acquired)+len(seq))
	for id := range acquired {
		have[id] = true
	}

	value, hours := 0.0, 0.0
	budget := hoursPerYear * float64(depth)
	for i, id := range seq {
		if hours > budget {
			break
		}
		skill, ok := catalog.ByID(id)
		if !ok {
			continue
		}
		ready := true
		for _, prereq := range skill.Prereqs {
			if !have[prereq] {
				ready = false
				break
			}
		}
		if !ready {
			continue
		}
		year := i + 1
		if year > depth {
			year = depth
		}
		value += ExpectedValue(skill, scenarios, year)
		hours += skill.TimeCost()
		have[id] = true
	}
	return value, hours
}

func combinations(ids []string, size int, emit func([]string)) {
	combo := make([]string, 0, size)
	var walk func(start int)
	walk = func(start int) {
		if len(combo) == size {
			out := make([]string, size)
			copy(out, combo)
			emit(out)
			return
		}
		for i := start; i <= len(ids)-(size-len(combo)); i++ {
			combo = append(combo, ids[i])
			walk(i + 1)
			combo = combo[:len(combo)-1]
		}
	}
	walk(0)
}

// pruneStates keeps the most valuable states, ties resolved toward more
// remaining hours and then the smaller key.
func pruneStates(states map[string]horizonState) map[string]horizonState {
	keys := sortedKeys(states)
	sort.SliceStable(keys, func(i, j int) bool {
		a, b := states[keys[i]], states[keys[j]]
		if a.value != b.value {
			return a.value > b.value
		}
		return a.hours > b.hours
	})
	if len(keys) > keptHorizonStates {
		keys = keys[:keptHorizonStates]
	}
	kept := make(map[string]horizonState, len(keys))
	for _, k := range keys {
		kept[k] = states[k]
	}
	return kept
}

func checkAcquired(catalog domain.Catalog, acquired []string) error {
	for _, id := range acquired {
		if _, ok := catalog.ByID(id); !ok {
			return fmt.Errorf("acquired skill %q is not in the catalog", id)
		}
	}
	return nil
}

func unlockedIDs(catalog domain.Catalog, have map[string]bool) []string {
	acquired := make([]string, 0, len(have))
	for id := range have {
		acquired = append(acquired, id)
	}
	skills := Unlocked(catalog, acquired)
	ids := make([]string, len(skills))
	for i, s := range skills {
		ids[i] = s.ID
	}
	return ids
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func sortedCopy(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.Strings(out)
	return out
}

func sortedWith(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids...)
	out = append(out, id)
	sort.Strings(out)
	return out
}

func appendPath(path []string, id string) []string {
	out := make([]string, 0, len(path)+1)
	out = append(out, path...)
	out = append(out, id)
	return out
}

func sortedKeys(states map[string]horizonState) []string {
	keys := make([]string, 0, len(states))
	for k := range states {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func stateKey(skills []string) string {
	return strings.Join(skills, ",")
}
