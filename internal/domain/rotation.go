package domain

// Rotation tracks whose turn it is. Player i (1-based) is shown with tints[i-1].
type Rotation struct {
	tints  []Tint
	active int
}

func NewRotation(tints []Tint) (*Rotation, error) {
	if len(tints) == 0 {
		return nil, ErrEmptyRotation
	}
	owned := make([]Tint, len(tints))
	copy(owned, tints)
	return &Rotation{tints: owned}, nil
}

func (r *Rotation) ActivePlayer() PlayerID {
	return PlayerID(r.active + 1)
}

func (r *Rotation) DisplayTint(player PlayerID) (Tint, bool) {
	idx := int(player) - 1
	if idx < 0 || idx >= len(r.tints) {
		return 0, false
	}
	return r.tints[idx], true
}

// Advance wraps to the first player after the last. Game calls it from
// exactly one place, after a move that neither wins nor fills the board.
func (r *Rotation) Advance() {
	r.active = (r.active + 1) % len(r.tints)
}

func (r *Rotation) Players() []PlayerID {
	players := make([]PlayerID, len(r.tints))
	for i := range r.tints {
		players[i] = PlayerID(i + 1)
	}
	return players
}
