package blog

import "slices"

// Change is the difference between the current and requested members of a
// collection relation. Both slices are sorted ascending and free of duplicates.
type Change struct {
	Remove []int64
	Add    []int64
}

func (c Change) Empty() bool {
	return len(c.Remove) == 0 && len(c.Add) == 0
}

// Reconcile computes the Change that turns current into requested. Applying
// the removals first and then the additions yields exactly requested.
func Reconcile(current, requested []int64) Change {
	cur := uniqueSorted(current)
	req := uniqueSorted(requested)

	var c Change
	i, j := 0, 0
	for i < len(cur) || j < len(req) {
		switch {
		case j == len(req) || (i < len(cur) && cur[i] < req[j]):
			c.Remove = append(c.Remove, cur[i])
			i++
		case i == len(cur) || req[j] < cur[i]:
			c.Add = append(c.Add, req[j])
			j++
		default:
			i++
			j++
		}
	}
	return c
}

func uniqueSorted(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
