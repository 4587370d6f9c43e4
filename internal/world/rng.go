package world

import "math/rand"

func (w *World) ensureRNG() {
	if w.rng != nil {
		return
	}
	if w.rngSeed == 0 {
		w.rngSeed = 1
	}
	w.rng = rand.New(rand.NewSource(w.rngSeed))
}

// Seed restarts the random stream. Two worlds with the same seed and the
// same message sequence evolve identically.
func (w *World) Seed(seed int64) {
	w.rngSeed = seed
	w.rng = nil
	w.rngCalls = 0
	w.ensureRNG()
}

func (w *World) randFloat32() float32 {
	w.ensureRNG()
	w.rngCalls++
	return w.rng.Float32()
}

func (w *World) randIntn(n int) int {
	w.ensureRNG()
	w.rngCalls++
	return w.rng.Intn(n)
}

// randRange returns a uniform value in [a, b).
func (w *World) randRange(a, b float32) float32 {
	return a + w.randFloat32()*(b-a)
}
