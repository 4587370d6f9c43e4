package headless

import (
	"fmt"
	"sync"

	"horde-shop/internal/commons/logger_config"
	"horde-shop/internal/world"
)

// Report summarises one autopiloted run.
type Report struct {
	Seed         int64
	Ticks        int
	Died         bool
	DeathTick    int
	Wave         int
	TimeSurvived float32
	FinalHP      float32
	Cash         int
	DamageMul    float32
	Stats        world.Stats
}

func (r Report) String() string {
	end := "alive"
	if r.Died {
		end = fmt.Sprintf("died@%d", r.DeathTick)
	}
	return fmt.Sprintf("seed=%d %s wave=%d time=%.1fs kills=%d shots=%d cash=%d/%d spent=%d buys=%d dmgTaken=%.0f mul=%.2f",
		r.Seed, end, r.Wave, r.TimeSurvived, r.Stats.EnemiesKilled, r.Stats.ShotsFired,
		r.Cash, r.Stats.CashCollected, r.Stats.CashSpent, r.Stats.Purchases, r.Stats.DamageTaken, r.DamageMul)
}

type options struct {
	cfg          world.Config
	seed         int64
	ticks        int
	step         float32
	viewW, viewH float32
	pilot        Autopilot
}

type Option func(*options)

func WithConfig(cfg world.Config) Option { return func(o *options) { o.cfg = cfg } }
func WithSeed(seed int64) Option         { return func(o *options) { o.seed = seed } }
func WithTicks(n int) Option             { return func(o *options) { o.ticks = n } }
func WithStep(dt float32) Option         { return func(o *options) { o.step = dt } }
func WithAutopilot(a Autopilot) Option   { return func(o *options) { o.pilot = a } }

// WithViewport sets the pretend screen size; spawns appear just outside it.
func WithViewport(w, h float32) Option {
	return func(o *options) { o.viewW, o.viewH = w, h }
}

func defaultOptions() options {
	cfg := world.DefaultConfig()
	return options{
		cfg:   cfg,
		seed:  1,
		ticks: 60 * 180,
		step:  1.0 / 60,
		viewW: cfg.DefaultViewW,
		viewH: cfg.DefaultViewH,
		pilot: DefaultAutopilot(),
	}
}

// Run plays one game with the autopilot at a fixed step until the player
// dies or the tick budget runs out.
func Run(opts ...Option) (Report, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		return Report{}, fmt.Errorf("headless run: %w", err)
	}
	if o.ticks <= 0 || o.step <= 0 {
		return Report{}, fmt.Errorf("headless run: ticks=%d step=%.4f must be positive", o.ticks, o.step)
	}

	w := world.NewWorld(o.cfg, o.seed)
	w.SetViewport(o.viewW, o.viewH)

	rep := Report{Seed: o.seed}
	for i := range o.ticks {
		for _, m := range o.pilot.Decide(w) {
			w.Enqueue(m)
		}
		w.Tick(o.step)
		rep.Ticks = i + 1

		if w.Mode == world.ModeDead {
			rep.Died = true
			rep.DeathTick = i
			break
		}
	}

	rep.Wave = w.Wave
	rep.TimeSurvived = w.TimeSurvived
	rep.FinalHP = w.Player.HP
	rep.Cash = w.Player.Cash
	rep.DamageMul = w.Player.DamageMul
	rep.Stats = w.Stats

	logger_config.Debugf("[headless] %s", rep)
	return rep, nil
}

// RunMany plays one independent run per seed in parallel. Reports come back
// in seed order.
func RunMany(seeds []int64, opts ...Option) ([]Report, error) {
	reports := make([]Report, len(seeds))
	errs := make([]error, len(seeds))

	var wg sync.WaitGroup
	for i, seed := range seeds {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runOpts := append(append([]Option{}, opts...), WithSeed(seed))
			reports[i], errs[i] = Run(runOpts...)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return reports, nil
}

// Summary aggregates several reports.
type Summary struct {
	Runs      int
	Deaths    int
	MeanTime  float32
	MeanKills float32
	MaxWave   int
	Purchases int
}

func Summarize(reports []Report) Summary {
	var s Summary
	if len(reports) == 0 {
		return s
	}
	for _, r := range reports {
		s.Runs++
		if r.Died {
			s.Deaths++
		}
		s.MeanTime += r.TimeSurvived
		s.MeanKills += float32(r.Stats.EnemiesKilled)
		s.MaxWave = max(s.MaxWave, r.Wave)
		s.Purchases += r.Stats.Purchases
	}
	s.MeanTime /= float32(s.Runs)
	s.MeanKills /= float32(s.Runs)
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("runs=%d deaths=%d meanTime=%.1fs meanKills=%.1f maxWave=%d purchases=%d",
		s.Runs, s.Deaths, s.MeanTime, s.MeanKills, s.MaxWave, s.Purchases)
}
