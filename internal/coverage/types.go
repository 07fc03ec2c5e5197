// Package coverage holds the raw per-file coverage model, the collector that
// tracks it, and the summarizer that reduces it to named metrics.
//
// FileCoverage follows the istanbul coverage-final.json layout so JSON
// coverage can be decoded directly; other formats are converted into it.
package coverage

// Position is a 1-based line and 0-based column in a source file
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Range is a span of source code. Skip marks code excluded from coverage.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
	Skip  bool     `json:"skip,omitempty"`
}

// FunctionMeta describes a function tracked by FnMap
type FunctionMeta struct {
	Name string `json:"name"`
	Line int    `json:"line"`
	Loc  Range  `json:"loc"`
	Skip bool   `json:"skip,omitempty"`
}

// BranchMeta describes a branch point tracked by BranchMap.
// Each location is one arm of the branch.
type BranchMeta struct {
	Line      int     `json:"line"`
	Type      string  `json:"type"`
	Locations []Range `json:"locations"`
}

// FileCoverage is the raw coverage data recorded for one file
type FileCoverage struct {
	Path         string                  `json:"path"`
	StatementMap map[string]Range        `json:"statementMap"`
	FnMap        map[string]FunctionMeta `json:"fnMap"`
	BranchMap    map[string]BranchMeta   `json:"branchMap"`
	S            map[string]int          `json:"s"`
	F            map[string]int          `json:"f"`
	B            map[string][]int        `json:"b"`
	// L holds line hit counts. When nil it is derived from statements.
	L map[int]int `json:"l,omitempty"`
}

// NewFileCoverage returns an empty FileCoverage for path
func NewFileCoverage(path string) *FileCoverage {
	return &FileCoverage{
		Path:         path,
		StatementMap: make(map[string]Range),
		FnMap:        make(map[string]FunctionMeta),
		BranchMap:    make(map[string]BranchMeta),
		S:            make(map[string]int),
		F:            make(map[string]int),
		B:            make(map[string][]int),
	}
}

// Clone returns a deep copy of fc
func (fc *FileCoverage) Clone() *FileCoverage {
	out := NewFileCoverage(fc.Path)
	for k, v := range fc.StatementMap {
		out.StatementMap[k] = v
	}
	for k, v := range fc.FnMap {
		out.FnMap[k] = v
	}
	for k, v := range fc.BranchMap {
		out.BranchMap[k] = BranchMeta{
			Line:      v.Line,
			Type:      v.Type,
			Locations: append([]Range(nil), v.Locations...),
		}
	}
	for k, v := range fc.S {
		out.S[k] = v
	}
	for k, v := range fc.F {
		out.F[k] = v
	}
	for k, v := range fc.B {
		out.B[k] = append([]int(nil), v...)
	}
	if fc.L != nil {
		out.L = make(map[int]int, len(fc.L))
		for k, v := range fc.L {
			out.L[k] = v
		}
	}
	return out
}

// Merge adds the hit counts of other into fc.
// Entries only present in other are copied over.
func (fc *FileCoverage) Merge(other *FileCoverage) {
	fc.ensureMaps()
	for k, v := range other.StatementMap {
		if _, ok := fc.StatementMap[k]; !ok {
			fc.StatementMap[k] = v
		}
	}
	for k, v := range other.FnMap {
		if _, ok := fc.FnMap[k]; !ok {
			fc.FnMap[k] = v
		}
	}
	for k, v := range other.BranchMap {
		if _, ok := fc.BranchMap[k]; !ok {
			fc.BranchMap[k] = v
		}
	}
	for k, v := range other.S {
		fc.S[k] += v
	}
	for k, v := range other.F {
		fc.F[k] += v
	}
	for k, arms := range other.B {
		mine := fc.B[k]
		if len(mine) < len(arms) {
			grown := make([]int, len(arms))
			copy(grown, mine)
			mine = grown
		}
		for i, v := range arms {
			mine[i] += v
		}
		fc.B[k] = mine
	}
	if fc.L != nil && other.L != nil {
		for k, v := range other.L {
			fc.L[k] += v
		}
		return
	}
	// line counts are derived from statements unless both sides carry them
	fc.L = nil
}

func (fc *FileCoverage) ensureMaps() {
	if fc.StatementMap == nil {
		fc.StatementMap = make(map[string]Range)
	}
	if fc.FnMap == nil {
		fc.FnMap = make(map[string]FunctionMeta)
	}
	if fc.BranchMap == nil {
		fc.BranchMap = make(map[string]BranchMeta)
	}
	if fc.S == nil {
		fc.S = make(map[string]int)
	}
	if fc.F == nil {
		fc.F = make(map[string]int)
	}
	if fc.B == nil {
		fc.B = make(map[string][]int)
	}
}
