package cart

// SlotState is the state of a cart's single discount slot.
type SlotState string

const (
	SlotNone    SlotState = "none"
	SlotApplied SlotState = "applied"
)

// Slot holds at most one applied discount code. The amount is never stored;
// it is recomputed from the current cart on every read.
type Slot struct {
	Code string `json:"code,omitempty"`
}

// State reports whether a code is applied.
func (s Slot) State() SlotState {
	if s.Code == "" {
		return SlotNone
	}
	return SlotApplied
}

// Apply fills the slot, replacing any previous code.
func (s *Slot) Apply(code string) { s.Code = code }

// Remove empties the slot.
func (s *Slot) Remove() { s.Code = "" }

// Consume empties the slot after an order completes and returns the code
// that was applied.
func (s *Slot) Consume() string {
	code := s.Code
	s.Code = ""
	return code
}
