package selection

// Pin holds at most one pinned player. The zero value has nothing pinned.
// A pin that no longer matches a record is tolerated; rendering simply finds
// no row to lift.
type Pin struct {
	name string
}

// Toggle clears the pin when name is already pinned, otherwise pins name,
// replacing any previous pin.
func (p *Pin) Toggle(name string) {
	if p.name == name {
		p.name = ""
		return
	}
	p.name = name
}

// Pinned returns the pinned name and whether one is set.
func (p Pin) Pinned() (string, bool) {
	return p.name, p.name != ""
}

// Name returns the pinned name or "".
func (p Pin) Name() string { return p.name }
