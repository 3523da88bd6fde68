package domain

// TimeZoneEntry is one city clock. ID is assigned when the entry joins a
// tracked list and is only unique within that list; catalog entries carry no
// stable ID across lists.
type TimeZoneEntry struct {
	ID           string `json:"id"`
	City         string `json:"city"`
	Country      string `json:"country"`
	TimeZone     string `json:"time_zone"`
	Abbreviation string `json:"abbreviation"`
}

// TrackedList is the ordered set of clocks on display. Uniqueness is enforced
// on (city, time zone) at insertion, not on ID; order is display order.
type TrackedList []TimeZoneEntry

// Add appends entry with the given fresh ID. It reports false (and leaves the
// list untouched) when an entry for the same city and zone already exists.
func (l *TrackedList) Add(id string, entry TimeZoneEntry) bool {
	for _, e := range *l {
		if e.City == entry.City && e.TimeZone == entry.TimeZone {
			return false
		}
	}
	entry.ID = id
	*l = append(*l, entry)
	return true
}

// Remove deletes the entry with the given ID. Absent IDs are a no-op.
func (l *TrackedList) Remove(id string) bool {
	for i, e := range *l {
		if e.ID == id {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return true
		}
	}
	return false
}

// Reorder moves the entry at from to position to, shifting the entries in
// between. Out-of-range indices leave the list unchanged.
func (l *TrackedList) Reorder(from, to int) error {
	n := len(*l)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrIndexOutOfRange
	}
	if from == to {
		return nil
	}
	moved := (*l)[from]
	*l = append((*l)[:from], (*l)[from+1:]...)
	*l = append(*l, TimeZoneEntry{})
	copy((*l)[to+1:], (*l)[to:])
	(*l)[to] = moved
	return nil
}

// Clone returns an independent copy of the list.
func (l TrackedList) Clone() TrackedList {
	out := make(TrackedList, len(l))
	copy(out, l)
	return out
}
