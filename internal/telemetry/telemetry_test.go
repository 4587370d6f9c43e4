package telemetry

import (
	"testing"
	"time"
)

func TestSinkBatchesEvents(t *testing.T) {
	out := make(chan Batch, 64)
	s := newSink(10*time.Millisecond, func(b Batch) {
		if b.empty() {
			return
		}
		select {
		case out <- b:
		default:
		}
	})
	defer s.Close()

	s.Emit(Event{Kind: KindKill, I: 2})
	s.Emit(Event{Kind: KindDamage, F: 3.5})
	s.Emit(Event{Kind: KindCash, I: 9})
	s.Emit(Event{Kind: KindFrame, F: 0.016})
	s.Emit(Event{Kind: KindFrame, F: 0.018})

	// a flush may land between emits, so fold batches until all five arrive
	var total Batch
	var dtSum float32
	deadline := time.After(700 * time.Millisecond)
	for total.Frames < 2 || total.Kills < 2 || total.Cash < 9 || total.Dmg < 3.5 {
		select {
		case b := <-out:
			total.Kills += b.Kills
			total.Dmg += b.Dmg
			total.Cash += b.Cash
			total.Frames += b.Frames
			dtSum += b.AvgDt * float32(b.Frames)

		case <-deadline:
			t.Fatalf("timed out waiting for telemetry batches, have %+v", total)
		}
	}

	if total.Kills != 2 {
		t.Fatalf("kills mismatch: got %d want %d", total.Kills, 2)
	}
	if !approxEqual(total.Dmg, 3.5) {
		t.Fatalf("damage mismatch: got %.6f want %.6f", total.Dmg, 3.5)
	}
	if total.Cash != 9 {
		t.Fatalf("cash mismatch: got %d want %d", total.Cash, 9)
	}
	if total.Frames != 2 {
		t.Fatalf("frames mismatch: got %d want %d", total.Frames, 2)
	}
	if avg := dtSum / 2; !approxEqual(avg, 0.017) {
		t.Fatalf("avg dt mismatch: got %.6f want %.6f", avg, 0.017)
	}
}

func TestSinkCloseIsIdempotent(t *testing.T) {
	s := newSink(10*time.Millisecond, nil)

	done := make(chan struct{})
	go func() {
		s.Close()
		s.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("sink close blocked")
	}
}

func TestEmitAfterCloseDoesNotBlock(t *testing.T) {
	s := newSink(time.Hour, nil)
	s.Close()

	done := make(chan struct{})
	go func() {
		for range 1000 {
			s.Emit(Event{Kind: KindFrame, F: 0.016})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("emit blocked on a closed sink")
	}
}

func approxEqual(a, b float32) bool {
	const eps = 1e-4
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
