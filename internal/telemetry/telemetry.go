package telemetry

import (
	"sync"
	"time"

	"horde-shop/internal/commons/logger_config"
)

type Event struct {
	Kind string
	I    int
	F    float32
	At   time.Time
}

const (
	KindFrame  = "frame"
	KindKill   = "kill"
	KindDamage = "damage"
	KindCash   = "cash"
	KindSpend  = "spend"
)

// Batch is one flush window of aggregated events.
type Batch struct {
	Kills  int
	Dmg    float32
	Cash   int
	Spent  int
	Frames int
	AvgDt  float32
}

func (b Batch) empty() bool {
	return b.Kills == 0 && b.Dmg == 0 && b.Cash == 0 && b.Spent == 0 && b.Frames == 0
}

type Sink struct {
	In   chan Event
	quit chan struct{}
	done chan struct{}
	once sync.Once

	interval time.Duration
	flush    func(Batch)
}

// NewSink starts a sink that logs a batch every two seconds.
func NewSink() *Sink {
	return newSink(2*time.Second, logBatch)
}

func newSink(interval time.Duration, flush func(Batch)) *Sink {
	if flush == nil {
		flush = func(Batch) {}
	}
	s := &Sink{
		In:       make(chan Event, 256),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
		interval: interval,
		flush:    flush,
	}
	go s.loop()

	return s
}

// Emit queues an event without blocking; it is dropped if the buffer is full
// or the sink is closed.
func (s *Sink) Emit(ev Event) {
	select {
	case <-s.quit:
		return
	default:
	}

	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	select {
	case s.In <- ev:
	default:
	}
}

// Close stops the loop and waits for it. Safe to call more than once.
func (s *Sink) Close() {
	s.once.Do(func() {
		close(s.quit)
	})
	<-s.done
}

func (s *Sink) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var b Batch
	var dtSum float32

	for {
		select {
		case <-s.quit:
			return

		case ev := <-s.In:
			switch ev.Kind {
			case KindKill:
				b.Kills += ev.I
			case KindDamage:
				b.Dmg += ev.F
			case KindCash:
				b.Cash += ev.I
			case KindSpend:
				b.Spent += ev.I
			case KindFrame:
				b.Frames++
				dtSum += ev.F
			}

		case <-ticker.C:
			if b.Frames > 0 {
				b.AvgDt = dtSum / float32(b.Frames)
			}
			s.flush(b)
			// reset batch
			b = Batch{}
			dtSum = 0
		}
	}
}

func logBatch(b Batch) {
	if b.empty() {
		return
	}
	logger_config.Logger.Info("[telemetry]",
		"kills", b.Kills,
		"dmg", b.Dmg,
		"cash", b.Cash,
		"spent", b.Spent,
		"frames", b.Frames,
		"avgDt", b.AvgDt,
	)
}
