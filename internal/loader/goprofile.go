package loader

import (
	"fmt"
	"io"

	"github.com/bethropolis/filecov/internal/coverage"
	"golang.org/x/tools/cover"
)

// ParseGoProfile converts a Go cover profile.
// Each block contributes NumStmt statements spanning the block and marks its lines with the block count.
func ParseGoProfile(r io.Reader) ([]*coverage.FileCoverage, error) {
	profiles, err := cover.ParseProfilesFromReader(r)
	if err != nil {
		return nil, err
	}
	files := make([]*coverage.FileCoverage, 0, len(profiles))
	for _, profile := range profiles {
		fc := coverage.NewFileCoverage(profile.FileName)
		fc.L = make(map[int]int)
		for _, block := range profile.Blocks {
			if block.NumStmt == 0 {
				continue
			}
			loc := coverage.Range{
				Start: coverage.Position{Line: block.StartLine, Column: block.StartCol - 1},
				End:   coverage.Position{Line: block.EndLine, Column: block.EndCol - 1},
			}
			for i := 0; i < block.NumStmt; i++ {
				key := fmt.Sprintf("%d.%d-%d.%d#%d", block.StartLine, block.StartCol, block.EndLine, block.EndCol, i)
				fc.StatementMap[key] = loc
				fc.S[key] += block.Count
			}
			for line := block.StartLine; line <= block.EndLine; line++ {
				if prev, ok := fc.L[line]; !ok || prev < block.Count {
					fc.L[line] = block.Count
				}
			}
		}
		files = append(files, fc)
	}
	return files, nil
}
