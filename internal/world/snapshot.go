package world

// Snapshot is the render-facing copy of the world after a tick. It shares
// no memory with the world, so a renderer may hold on to it freely.
type Snapshot struct {
	Mode         Mode    `json:"mode"`
	Wave         int     `json:"wave"`
	TimeSurvived float32 `json:"time_survived"`

	W        float32 `json:"w"`
	H        float32 `json:"h"`
	Camera   Vec2    `json:"camera"`
	ViewW    float32 `json:"view_w"`
	ViewH    float32 `json:"view_h"`
	SafeZone Circle  `json:"safe_zone"`

	Player      PlayerView   `json:"player"`
	Enemies     []EnemyView  `json:"enemies"`
	Projectiles []Projectile `json:"projectiles"`
	Drops       []LootDrop   `json:"drops"`

	Hint       Hint  `json:"hint"`
	InSafeZone bool  `json:"in_safe_zone"`
	Stats      Stats `json:"stats"`
}

type PlayerView struct {
	Pos       Vec2    `json:"pos"`
	R         float32 `json:"r"`
	HP        float32 `json:"hp"`
	MaxHP     float32 `json:"max_hp"`
	HPFrac    float32 `json:"hp_frac"`
	Cash      int     `json:"cash"`
	DamageMul float32 `json:"damage_mul"`

	Ammo       int     `json:"ammo"`
	MagSize    int     `json:"mag_size"`
	Reserve    int     `json:"reserve"`
	Reloading  bool    `json:"reloading"`
	ReloadFrac float32 `json:"reload_frac"`
}

type EnemyView struct {
	ID     int       `json:"id"`
	Pos    Vec2      `json:"pos"`
	R      float32   `json:"r"`
	HPFrac float32   `json:"hp_frac"`
	Kind   EnemyKind `json:"kind"`
}

func (w *World) BuildSnapshot() Snapshot {
	enemies := make([]EnemyView, len(w.Enemies))
	for i, e := range w.Enemies {
		enemies[i] = EnemyView{
			ID:     e.ID,
			Pos:    e.Pos,
			R:      e.R,
			HPFrac: frac(e.HP, e.MaxHP),
			Kind:   e.Kind,
		}
	}

	shots := make([]Projectile, len(w.Projectiles))
	copy(shots, w.Projectiles)

	drops := make([]LootDrop, len(w.Drops))
	copy(drops, w.Drops)

	p := w.Player
	g := p.Weapon

	return Snapshot{
		Mode:         w.Mode,
		Wave:         w.Wave,
		TimeSurvived: w.TimeSurvived,

		W:        w.W,
		H:        w.H,
		Camera:   w.Camera,
		ViewW:    w.ViewW,
		ViewH:    w.ViewH,
		SafeZone: w.SafeZone,

		Player: PlayerView{
			Pos:       p.Pos,
			R:         p.R,
			HP:        p.HP,
			MaxHP:     p.MaxHP,
			HPFrac:    frac(p.HP, p.MaxHP),
			Cash:      p.Cash,
			DamageMul: p.DamageMul,

			Ammo:       g.AmmoInMag,
			MagSize:    g.MagSize,
			Reserve:    g.Reserve,
			Reloading:  g.Reloading,
			ReloadFrac: g.ReloadProgress(),
		},
		Enemies:     enemies,
		Projectiles: shots,
		Drops:       drops,

		Hint:       w.Hint,
		InSafeZone: w.InSafeZone(),
		Stats:      w.Stats,
	}
}

// WorldToScreen maps a world point into the snapshot's viewport.
func (s Snapshot) WorldToScreen(p Vec2) Vec2 {
	return p.Sub(s.Camera)
}

func frac(v, limit float32) float32 {
	if limit <= 0 {
		return 0
	}
	return clamp(v/limit, 0, 1)
}
