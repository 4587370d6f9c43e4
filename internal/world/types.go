package world

import "math"

type Vec2 struct{ X, Y float32 }

func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

func (v Vec2) Norm() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Circle is a static circular region (the safe zone).
type Circle struct {
	Pos Vec2
	R   float32
}

// Contains reports whether p lies inside or on the edge of c.
func (c Circle) Contains(p Vec2) bool {
	return dist2(c.Pos, p) <= c.R*c.R
}

// Mode is the game-mode state machine's current state.
type Mode int

const (
	ModeStart Mode = iota
	ModePlaying
	ModeShop
	ModeDead
)

func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModePlaying:
		return "playing"
	case ModeShop:
		return "shop"
	case ModeDead:
		return "dead"
	default:
		return "unknown"
	}
}

type EnemyKind int

const (
	EnemyWalker EnemyKind = iota
	EnemyRunner
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyRunner:
		return "runner"
	default:
		return "walker"
	}
}
