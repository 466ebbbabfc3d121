package engine

// Intent is the player input gathered for one simulation tick. Movement
// is a raw direction; discrete actions are edge-triggered and cleared by
// the player system once consumed.
type Intent struct {
	MoveX, MoveY float64

	Attack  bool
	Dodge   bool
	Restart bool
}

// Moving reports whether any movement direction is held
func (in Intent) Moving() bool {
	return in.MoveX != 0 || in.MoveY != 0
}
