package world

import (
	"errors"
	"fmt"
)

type Config struct {
	// World
	WorldW, WorldH float32
	SafeZoneX      float32
	SafeZoneY      float32
	SafeZoneR      float32
	SafeZoneSpeed  float32 // player speed multiplier inside the safe zone
	MaxFrameDt     float32
	WaveDuration   float32 // seconds per wave step: wave advances once time > wave*WaveDuration
	DefaultViewW   float32
	DefaultViewH   float32
	SpawnMargin    float32 // how far beyond the viewport edge enemies appear
	SpawnSafeExtra float32 // extra buffer around the safe zone where spawns abort

	// Spawning
	SpawnBaseCount     int
	SpawnCountPerWave  int
	SpawnBaseInterval  float32
	SpawnIntervalDecay float32
	SpawnMinInterval   float32

	// Player
	PlayerRadius float32
	PlayerSpeed  float32
	PlayerMaxHP  float32

	// Weapon
	MagSize          int
	StartReserve     int
	FireRate         float32 // shots per second
	ProjectileSpeed  float32
	ProjectileDamage float32
	ProjectileRadius float32
	ProjectileLife   float32
	ReloadTime       float32

	// Enemy
	EnemyBaseHP          float32
	EnemyHPPerWave       float32
	EnemyBaseSpeed       float32
	EnemySpeedPerWave    float32
	EnemySpeedJitterMin  float32
	EnemySpeedJitterMax  float32
	EnemyBaseDamage      float32
	EnemyDamagePerWave   float32
	EnemyRadiusMin       float32
	EnemyRadiusMax       float32
	EnemyHitCooldown     float32
	RunnerChance         float32
	RunnerSpeedScale     float32
	SafeZoneEnemySlowing float32

	// Loot
	DropRadius      float32
	DropTTL         float32
	DropPickupExtra float32
	DropMinCash     float32
	DropMaxCash     float32
	DropCashPerWave float32

	// Shop
	AmmoPrice     int
	AmmoAmount    int
	MedkitPrice   int
	MedkitHeal    float32
	DamagePrice   int
	DamageUpgrade float32
}

func DefaultConfig() Config {
	return Config{
		WorldW:         3200,
		WorldH:         3200,
		SafeZoneX:      1400,
		SafeZoneY:      1400,
		SafeZoneR:      220,
		SafeZoneSpeed:  1.05,
		MaxFrameDt:     0.033,
		WaveDuration:   25,
		DefaultViewW:   1280,
		DefaultViewH:   720,
		SpawnMargin:    520,
		SpawnSafeExtra: 220,

		SpawnBaseCount:     8,
		SpawnCountPerWave:  3,
		SpawnBaseInterval:  0.55,
		SpawnIntervalDecay: 0.02,
		SpawnMinInterval:   0.12,

		PlayerRadius: 16,
		PlayerSpeed:  220,
		PlayerMaxHP:  100,

		MagSize:          12,
		StartReserve:     48,
		FireRate:         9,
		ProjectileSpeed:  820,
		ProjectileDamage: 18,
		ProjectileRadius: 4,
		ProjectileLife:   0.9,
		ReloadTime:       0.95,

		EnemyBaseHP:          55,
		EnemyHPPerWave:       8,
		EnemyBaseSpeed:       80,
		EnemySpeedPerWave:    2.5,
		EnemySpeedJitterMin:  0.85,
		EnemySpeedJitterMax:  1.12,
		EnemyBaseDamage:      10,
		EnemyDamagePerWave:   1.5,
		EnemyRadiusMin:       16,
		EnemyRadiusMax:       22,
		EnemyHitCooldown:     0.55,
		RunnerChance:         0.18,
		RunnerSpeedScale:     1.25,
		SafeZoneEnemySlowing: 0.25,

		DropRadius:      10,
		DropTTL:         14,
		DropPickupExtra: 6,
		DropMinCash:     6,
		DropMaxCash:     14,
		DropCashPerWave: 0.5,

		AmmoPrice:     15,
		AmmoAmount:    24,
		MedkitPrice:   20,
		MedkitHeal:    35,
		DamagePrice:   40,
		DamageUpgrade: 1.2,
	}
}

var errBadConfig = errors.New("invalid config")

// Validate rejects values that would stall or break the simulation.
func (c Config) Validate() error {
	switch {
	case c.WorldW <= 0 || c.WorldH <= 0:
		return fmt.Errorf("%w: world size %.0fx%.0f", errBadConfig, c.WorldW, c.WorldH)
	case c.SafeZoneR <= 0:
		return fmt.Errorf("%w: safe zone radius %.1f", errBadConfig, c.SafeZoneR)
	case c.MaxFrameDt <= 0:
		return fmt.Errorf("%w: max frame dt %.3f", errBadConfig, c.MaxFrameDt)
	case c.FireRate <= 0:
		return fmt.Errorf("%w: fire rate %.2f", errBadConfig, c.FireRate)
	case c.MagSize <= 0:
		return fmt.Errorf("%w: magazine size %d", errBadConfig, c.MagSize)
	case c.ReloadTime < 0:
		return fmt.Errorf("%w: reload time %.2f", errBadConfig, c.ReloadTime)
	case c.EnemyRadiusMax < c.EnemyRadiusMin:
		return fmt.Errorf("%w: enemy radius range [%.1f, %.1f]", errBadConfig, c.EnemyRadiusMin, c.EnemyRadiusMax)
	case c.DropMaxCash < c.DropMinCash:
		return fmt.Errorf("%w: drop cash range [%.1f, %.1f]", errBadConfig, c.DropMinCash, c.DropMaxCash)
	}
	return nil
}

// WaveTargetCount is how many enemies the spawner keeps alive at wave w.
func (c Config) WaveTargetCount(wave int) int {
	return c.SpawnBaseCount + wave*c.SpawnCountPerWave
}

// SpawnInterval is the countdown reset after each spawn attempt at wave w.
func (c Config) SpawnInterval(wave int) float32 {
	return maxf(c.SpawnMinInterval, c.SpawnBaseInterval-float32(wave)*c.SpawnIntervalDecay)
}

func (c Config) EnemyHP(wave int) float32 {
	return c.EnemyBaseHP + float32(wave)*c.EnemyHPPerWave
}

func (c Config) EnemyDamage(wave int) float32 {
	return c.EnemyBaseDamage + float32(wave)*c.EnemyDamagePerWave
}

// EnemySpeed is the pre-jitter speed at wave w.
func (c Config) EnemySpeed(wave int) float32 {
	return c.EnemyBaseSpeed + float32(wave)*c.EnemySpeedPerWave
}
