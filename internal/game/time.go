package game

import "math"

// frameSmoothingAlpha weights the exponential moving average of observed
// frame duration; small enough to damp a single frame-time spike.
const frameSmoothingAlpha = 0.1

// TimeSystem tracks wall-clock pacing for the tick loop: a frame counter,
// the smoothed (EMA) frame duration used to report FPS, and a hard cap on
// the per-frame delta handed to Step so a stall (e.g. window drag) never
// produces an explosive integration step (§5 Concurrency & Resource Model).
type TimeSystem struct {
	frame          uint64
	smoothedDt     float64
	desiredDt      float64
	maxDt          float64
	pausedLastTick bool
}

func NewTimeSystem(desiredDt, maxDt float64) *TimeSystem {
	return &TimeSystem{desiredDt: desiredDt, maxDt: maxDt, smoothedDt: desiredDt}
}

// Advance folds a raw measured frame duration into the smoothed estimate and
// returns the clamped delta to feed into World.Step.
func (t *TimeSystem) Advance(rawDt float64) float64 {
	if rawDt < 0 {
		rawDt = 0
	}
	clamped := math.Min(rawDt, t.maxDt)
	if t.pausedLastTick {
		// A pause (e.g. the window lost focus) makes the raw delta
		// meaningless for smoothing purposes; resume as if at the desired
		// rate instead of folding in the stall.
		t.pausedLastTick = false
		clamped = t.desiredDt
	}
	t.smoothedDt += (clamped - t.smoothedDt) * frameSmoothingAlpha
	t.frame++
	return clamped
}

// MarkPauseEnd tells the next Advance call to discard the raw delta it's
// given instead of folding a long stall into the smoothed average.
func (t *TimeSystem) MarkPauseEnd() {
	t.pausedLastTick = true
}

func (t *TimeSystem) Frame() uint64          { return t.frame }
func (t *TimeSystem) SmoothedDt() float64    { return t.smoothedDt }
func (t *TimeSystem) FPS() float64 {
	if t.smoothedDt <= 0 {
		return 0
	}
	return 1.0 / t.smoothedDt
}

// AITimeBudget tracks a per-tick time allowance for AI scanning work, so a
// single tick's unit-AI passes can be capped without a goroutine per agent
// (§5: AI runs synchronously within the tick, bounded by a budget rather
// than preemption).
type AITimeBudget struct {
	limit   float64
	elapsed float64
}

func NewAITimeBudget(limit float64) *AITimeBudget {
	return &AITimeBudget{limit: limit}
}

func (b *AITimeBudget) Spend(amount float64) {
	b.elapsed += amount
}

func (b *AITimeBudget) Reset() {
	b.elapsed = 0
}

func (b *AITimeBudget) Elapsed() float64 { return b.elapsed }

func (b *AITimeBudget) Remaining() float64 {
	r := b.limit - b.elapsed
	if r < 0 {
		return 0
	}
	return r
}

func (b *AITimeBudget) Overshot() bool {
	return b.elapsed > b.limit
}
