package cart

// MaxCompare is how many products can be compared side by side.
const MaxCompare = 3

// Wishlist is an ordered set of saved product ids.
type Wishlist []string

// Toggle adds id when absent and removes it when present. It reports
// whether id is in the list afterwards.
func (w *Wishlist) Toggle(id string) bool {
	if i := indexOf(*w, id); i >= 0 {
		*w = append((*w)[:i], (*w)[i+1:]...)
		return false
	}
	*w = append(*w, id)
	return true
}

// Contains reports membership.
func (w Wishlist) Contains(id string) bool { return indexOf(w, id) >= 0 }

// Compare is an ordered set of at most MaxCompare product ids.
type Compare []string

// Toggle adds or removes id. Adding to a full list evicts the oldest entry.
func (c *Compare) Toggle(id string) bool {
	if i := indexOf(*c, id); i >= 0 {
		*c = append((*c)[:i], (*c)[i+1:]...)
		return false
	}
	if len(*c) >= MaxCompare {
		*c = (*c)[len(*c)-MaxCompare+1:]
	}
	*c = append(*c, id)
	return true
}

// Contains reports membership.
func (c Compare) Contains(id string) bool { return indexOf(c, id) >= 0 }

func indexOf(list []string, id string) int {
	for i, v := range list {
		if v == id {
			return i
		}
	}
	return -1
}
