package world

import (
	"math/rand"

	"horde-shop/internal/shared/input"
)

type Projectile struct {
	Pos    Vec2
	Vel    Vec2
	R      float32
	Damage float32 // fixed at fire time
	Life   float32
}

type LootDrop struct {
	Pos    Vec2
	R      float32
	Amount int
	TTL    float32
}

type World struct {
	W, H float32

	inbox []Msg

	Cfg         Config
	SafeZone    Circle
	Player      Player
	Enemies     []Enemy
	Projectiles []Projectile
	Drops       []LootDrop

	// latest held input; discrete actions arrive as their own messages
	input input.State

	// viewport (set by the host) and camera top-left in world space
	ViewW, ViewH float32
	Camera       Vec2

	// spawning
	spawnTimer float32
	rng        *rand.Rand
	rngSeed    int64
	rngCalls   uint64

	// run state
	Mode         Mode
	Wave         int
	TimeSurvived float32
	Clock        float32 // monotonic, advances in every mode
	Hint         Hint

	// stats
	Stats Stats

	nextEnemyID int
}

type Player struct {
	Pos   Vec2
	Speed float32
	R     float32

	HP    float32
	MaxHP float32

	Cash      int
	DamageMul float32

	Weapon Weapon
}

type Weapon struct {
	MagSize    int
	AmmoInMag  int
	Reserve    int
	FireRate   float32 // shots per second
	ShotSpeed  float32
	BaseDamage float32
	ReloadTime float32
	ReloadT    float32
	Reloading  bool
	LastShot   float32 // world clock of the last shot
}

type Enemy struct {
	ID int

	Pos   Vec2
	Speed float32
	R     float32

	HP    float32
	MaxHP float32

	Damage float32 // contact damage
	HitCD  float32 // contact cooldown, counts down to 0

	Kind EnemyKind
}

type Stats struct {
	EnemiesSpawned int
	SpawnsAborted  int
	EnemiesKilled  int
	ShotsFired     int
	DamageTaken    float32
	CashCollected  int
	CashSpent      int
	Purchases      int
}
