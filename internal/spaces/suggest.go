package spaces

import (
	"slices"

	"freezestore/pkg/model"
)

// Suggest picks count ids from available, preferring the lowest run of consecutive ids
// and falling back to the lowest count ids. An empty result means the request cannot be met.
func Suggest(available []model.Space, count int) []int {
	if count <= 0 || count > len(available) {
		return []int{}
	}

	ids := make([]int, len(available))
	for i, s := range available {
		ids[i] = s.ID
	}
	slices.Sort(ids)

	for start := 0; start+count <= len(ids); start++ {
		if consecutive(ids[start : start+count]) {
			return slices.Clone(ids[start : start+count])
		}
	}
	return slices.Clone(ids[:count])
}

func consecutive(ids []int) bool {
	for i := 1; i < len(ids); i++ {
		if ids[i] != ids[i-1]+1 {
			return false
		}
	}
	return true
}
