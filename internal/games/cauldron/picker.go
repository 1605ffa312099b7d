package cauldron

// Picker is the ordered list of ingredient kinds with a cursor on the one
// the player is looking for. Ingredients of that kind are highlighted.
type Picker struct {
	kinds []int
	index int
}

// NewPicker creates a picker over kinds 0..n-1. n below one yields a
// picker with a single kind.
func NewPicker(n int) Picker {
	n = max(n, 1)
	kinds := make([]int, n)
	for i := range kinds {
		kinds[i] = i
	}
	return Picker{kinds: kinds}
}

// Current returns the selected kind.
func (p *Picker) Current() int {
	if len(p.kinds) == 0 {
		return 0
	}
	return p.kinds[p.index]
}

// Next advances to the following kind, wrapping at the end.
func (p *Picker) Next() {
	if len(p.kinds) == 0 {
		return
	}
	p.index = (p.index + 1) % len(p.kinds)
}

// Len returns the number of kinds.
func (p *Picker) Len() int {
	return len(p.kinds)
}

// At returns the kind at position i.
func (p *Picker) At(i int) int {
	return p.kinds[i]
}
