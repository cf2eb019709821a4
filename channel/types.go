package channel

import "fmt"

// Interpolation selects how Sample blends between two surrounding
// keyframes. Step and Linear are the only two the spec defines;
// per-kind Slerp/round-lerp happens inside Linear for the kinds that
// need it (Interpolator, §4.4) rather than being a third mode.
type Interpolation int

const (
	Linear Interpolation = iota
	Step
)

func (i Interpolation) String() string {

	if i == Step {
		return "Step"
	}
	return "Linear"
}

// TimeFrame maps world time to a channel's local time (spec §3): shift by
// startOffset, clamp to duration (if non-negative), then scale.
type TimeFrame struct {
	StartOffset float32
	Scale       float32
	Duration    float32 // < 0 means unbounded
}

// defaultTimeFrame is the zero value with Scale normalized to 1 (the zero
// Go float32 would otherwise collapse every sample to local time 0).
func defaultTimeFrame() TimeFrame {

	return TimeFrame{Scale: 1, Duration: -1}
}

// ToLocal applies the spec §3 time-frame mapping to t.
func (tf TimeFrame) ToLocal(t float32) float32 {

	t -= tf.StartOffset
	if tf.Duration >= 0 {
		if t > tf.Duration {
			t = tf.Duration
		}
	}
	return t * tf.Scale
}

func (tf TimeFrame) String() string {

	return fmt.Sprintf("TimeFrame[StartOffset:%g][Scale:%g][Duration:%g]", tf.StartOffset, tf.Scale, tf.Duration)
}

// InsertFlags controls InsertValues (spec §4.5).
type InsertFlags uint8

const (
	// ClearExistingDataInRange skips the old-data/incoming-data merge
	// pass and clears the target range outright before writing.
	ClearExistingDataInRange InsertFlags = 1 << iota
	// DecimateInsertedData runs Decimate over the freshly inserted
	// range once the insertion completes.
	DecimateInsertedData
)

func (f InsertFlags) has(flag InsertFlags) bool { return f&flag != 0 }
