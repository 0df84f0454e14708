// Package history implements pure filtering and grouping over a user's
// generation records. It never touches storage: callers pass the full
// record slice as returned by the store (ordered newest first) and
// re-invoke Query whenever records or filters change.
package history

import (
	"strings"

	"contentforge/pkg/domain"
)

// FilterAll is the sentinel tool filter matching every tool type.
const FilterAll = "all"

// Group holds the records of one tool type, newest first.
type Group struct {
	ToolType domain.ToolType     `json:"toolType"`
	Records  []domain.Generation `json:"records"`
}

// Result is the grouped outcome of one query.
type Result struct {
	Groups []Group `json:"groups"`
	Total  int     `json:"total"`
}

// Query filters records by search term and tool type, then partitions the
// survivors into per-tool groups. Both filters compose conjunctively.
//
// The search term matches case-insensitively against the output text or
// any input field value; a blank term matches everything. Relative order
// inside each group follows the input slice, and groups appear in order
// of their first surviving record, so the result is fully determined by
// the three arguments.
func Query(records []domain.Generation, searchTerm, toolFilter string) Result {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	filter := strings.TrimSpace(toolFilter)

	index := make(map[domain.ToolType]int)
	result := Result{Groups: []Group{}}
	for _, rec := range records {
		if filter != "" && filter != FilterAll && string(rec.ToolType) != filter {
			continue
		}
		if term != "" && !matches(rec, term) {
			continue
		}
		pos, ok := index[rec.ToolType]
		if !ok {
			pos = len(result.Groups)
			index[rec.ToolType] = pos
			result.Groups = append(result.Groups, Group{ToolType: rec.ToolType})
		}
		result.Groups[pos].Records = append(result.Groups[pos].Records, rec)
		result.Total++
	}
	return result
}

func matches(rec domain.Generation, term string) bool {
	if strings.Contains(strings.ToLower(rec.Output), term) {
		return true
	}
	for _, value := range rec.Input {
		if strings.Contains(strings.ToLower(value), term) {
			return true
		}
	}
	return false
}
