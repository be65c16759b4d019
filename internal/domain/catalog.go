package domain

import "sort"

// FacilityCatalog resolves facility ids to the names stored on locations. It is built
// once at startup and never changes afterwards, so it is safe to share between requests.
type FacilityCatalog struct {
	entries []Facility
	byID    map[int]string
}

func NewFacilityCatalog(facilities []Facility) *FacilityCatalog {
	entries := append([]Facility(nil), facilities...)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	byID := make(map[int]string, len(entries))
	for _, f := range entries {
		byID[f.ID] = f.Name
	}

	return &FacilityCatalog{entries: entries, byID: byID}
}

// ResolveNames maps ids to facility names. Unknown ids are dropped; duplicates are
// collapsed. The result keeps the order of first appearance.
func (c *FacilityCatalog) ResolveNames(ids []int) []string {
	if c == nil {
		return nil
	}

	names := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		name, ok := c.byID[id]
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// Entries returns the catalog ordered by id.
func (c *FacilityCatalog) Entries() []Facility {
	if c == nil {
		return nil
	}
	return append([]Facility(nil), c.entries...)
}

func (c *FacilityCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
