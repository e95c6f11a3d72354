package projection

// Expansion is an immutable set of expanded entry ids
type Expansion struct {
	ids map[string]struct{}
}

// NewExpansion returns an empty set
func NewExpansion() Expansion {
	return Expansion{}
}

// Toggle returns a new set with id added if absent or removed if present
func (x Expansion) Toggle(id string) Expansion {
	ids := make(map[string]struct{}, len(x.ids)+1)
	for k := range x.ids {
		ids[k] = struct{}{}
	}

	if _, ok := ids[id]; ok {
		delete(ids, id)
	} else {
		ids[id] = struct{}{}
	}

	return Expansion{ids: ids}
}

// Has reports whether id is expanded
func (x Expansion) Has(id string) bool {
	_, ok := x.ids[id]
	return ok
}

// Len returns the number of ids in the set, stale ones included
func (x Expansion) Len() int {
	return len(x.ids)
}

// Prune returns a new set keeping only ids for which present returns true
func (x Expansion) Prune(present func(id string) bool) Expansion {
	ids := make(map[string]struct{}, len(x.ids))

	for id := range x.ids {
		if present(id) {
			ids[id] = struct{}{}
		}
	}

	return Expansion{ids: ids}
}
