package catalog

import "slices"

// buildGroups indexes items by group id. The result is sorted by ascending
// id; members keep input order. Callers depend on this order for row
// numbering, so it must not come from map iteration.
func buildGroups(items []Item) []Group {
	members := make(map[int][]int)
	ids := make([]int, 0)
	for i, it := range items {
		if _, ok := members[it.Group]; !ok {
			ids = append(ids, it.Group)
		}
		members[it.Group] = append(members[it.Group], i)
	}
	slices.Sort(ids)

	groups := make([]Group, len(ids))
	for g, id := range ids {
		groups[g] = Group{ID: id, Members: members[id]}
	}

	return groups
}
