package coverage

import (
	"math"
	"sort"
	"strconv"
)

// Metric names in the order Summarize reports them
const (
	MetricLines      = "lines"
	MetricStatements = "statements"
	MetricFunctions  = "functions"
	MetricBranches   = "branches"
)

// Totals counts the tracked, covered and skipped items of one metric
type Totals struct {
	Total   int     `json:"total"`
	Covered int     `json:"covered"`
	Skipped int     `json:"skipped"`
	Pct     float64 `json:"pct"`
}

// Metric is one named row of a Summary
type Metric struct {
	Name string `json:"name"`
	Totals
}

// Summary is an ordered mapping from metric name to its totals
type Summary []Metric

// Get returns the totals for the named metric
func (s Summary) Get(name string) (Totals, bool) {
	for _, m := range s {
		if m.Name == name {
			return m.Totals, true
		}
	}
	return Totals{}, false
}

// Names returns the metric names in order
func (s Summary) Names() []string {
	names := make([]string, 0, len(s))
	for _, m := range s {
		names = append(names, m.Name)
	}
	return names
}

// Summarize reduces raw file coverage to lines, statements, functions and branches totals
func Summarize(fc *FileCoverage) Summary {
	return Summary{
		{Name: MetricLines, Totals: lineTotals(fc)},
		{Name: MetricStatements, Totals: simpleTotals(fc.S, func(k string) bool { return fc.StatementMap[k].Skip })},
		{Name: MetricFunctions, Totals: simpleTotals(fc.F, func(k string) bool { return fc.FnMap[k].Skip })},
		{Name: MetricBranches, Totals: branchTotals(fc)},
	}
}

// LineHits returns per-line hit counts, derived from statement start lines when fc.L is unset
func LineHits(fc *FileCoverage) map[int]int {
	if fc.L != nil {
		return fc.L
	}
	lines := make(map[int]int)
	for _, key := range sortedKeys(fc.StatementMap) {
		loc := fc.StatementMap[key]
		count := fc.S[key]
		if count == 0 && loc.Skip {
			count = 1
		}
		if prev, ok := lines[loc.Start.Line]; !ok || prev < count {
			lines[loc.Start.Line] = count
		}
	}
	return lines
}

func lineTotals(fc *FileCoverage) Totals {
	var t Totals
	for _, hits := range LineHits(fc) {
		t.Total++
		if hits > 0 {
			t.Covered++
		}
	}
	t.Pct = percent(t.Covered, t.Total)
	return t
}

func simpleTotals(hits map[string]int, skipped func(key string) bool) Totals {
	var t Totals
	for key, count := range hits {
		covered := count > 0
		skip := skipped(key)
		t.Total++
		if covered || skip {
			t.Covered++
		}
		if !covered && skip {
			t.Skipped++
		}
	}
	t.Pct = percent(t.Covered, t.Total)
	return t
}

func branchTotals(fc *FileCoverage) Totals {
	var t Totals
	for key, arms := range fc.B {
		locations := fc.BranchMap[key].Locations
		for i, count := range arms {
			covered := count > 0
			skip := i < len(locations) && locations[i].Skip
			if covered || skip {
				t.Covered++
			}
			if !covered && skip {
				t.Skipped++
			}
		}
		t.Total += len(arms)
	}
	t.Pct = percent(t.Covered, t.Total)
	return t
}

// percent rounds covered/total to two decimals. An empty metric is fully covered.
func percent(covered, total int) float64 {
	if total <= 0 {
		return 100
	}
	tmp := 1000*100*float64(covered)/float64(total) + 5
	return math.Floor(tmp/10) / 100
}

// sortedKeys orders istanbul's numeric string keys numerically, falling back to string order
func sortedKeys(m map[string]Range) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		ai, aErr := strconv.Atoi(keys[a])
		bi, bErr := strconv.Atoi(keys[b])
		if aErr == nil && bErr == nil {
			return ai < bi
		}
		return keys[a] < keys[b]
	})
	return keys
}
