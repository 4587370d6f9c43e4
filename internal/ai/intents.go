package ai

import "math"

type EnemyRole int

const (
	EnemyRoleWalker EnemyRole = iota
	EnemyRoleRunner
)

type EnemySnapshot struct {
	EnemyID int
	Role    EnemyRole
	X       float32
	Y       float32
}

// Tuning holds the speed modifiers applied on top of each enemy's base speed.
type Tuning struct {
	RunnerScale   float32 // runners move this much faster
	SafeZoneScale float32 // anyone inside the safe zone moves this much slower
}

type IntentRequest struct {
	PlayerX float32
	PlayerY float32

	SafeX float32
	SafeY float32
	SafeR float32

	Tuning  Tuning
	Enemies []EnemySnapshot
}

// EnemyIntent is where an enemy wants to go this tick and how fast,
// relative to its own base speed.
type EnemyIntent struct {
	EnemyID    int
	MoveX      float32
	MoveY      float32
	SpeedScale float32
}

type IntentResult struct {
	Intents []EnemyIntent
}

// ComputeIntents is pure: the same request always yields the same result.
func ComputeIntents(req IntentRequest) IntentResult {
	out := IntentResult{
		Intents: make([]EnemyIntent, len(req.Enemies)),
	}

	r2 := req.SafeR * req.SafeR
	for i, e := range req.Enemies {
		dirX, dirY := normalize(req.PlayerX-e.X, req.PlayerY-e.Y)

		scale := float32(1)
		if e.Role == EnemyRoleRunner {
			scale *= req.Tuning.RunnerScale
		}

		// slowed, not blocked
		sx, sy := e.X-req.SafeX, e.Y-req.SafeY
		if sx*sx+sy*sy < r2 {
			scale *= req.Tuning.SafeZoneScale
		}

		out.Intents[i] = EnemyIntent{
			EnemyID:    e.EnemyID,
			MoveX:      dirX,
			MoveY:      dirY,
			SpeedScale: scale,
		}
	}

	return out
}

func normalize(x, y float32) (float32, float32) {
	m2 := x*x + y*y
	if m2 == 0 {
		return 0, 0
	}

	inv := float32(1.0 / math.Sqrt(float64(m2)))
	return x * inv, y * inv
}
