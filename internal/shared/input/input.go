package input

// State is the held part of the player's intent for one frame.
// Discrete actions (reload, shop, buy, restart) travel as separate messages.
type State struct {
	// Movement intent, normalized by the host. Zero means standing still.
	MoveX float32 `json:"move_x"`
	MoveY float32 `json:"move_y"`

	// Aim target in world coordinates.
	AimX float32 `json:"aim_x"`
	AimY float32 `json:"aim_y"`

	Fire bool `json:"fire"`
}

// Moving reports whether any movement direction is held.
func (s State) Moving() bool {
	return s.MoveX != 0 || s.MoveY != 0
}
