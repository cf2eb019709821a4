package channel

// Epsilons and defaults from spec §6. They're package-level constants
// rather than Channel fields: every Channel in a process shares the same
// notion of "too close" so that two channels produced by different
// editors stay comparable.
const (
	// TimeEpsilon is the minimum gap enforced between consecutive
	// timestamps (modulo rounding at half of it in Validate).
	TimeEpsilon float32 = 0.001

	// ValueEpsilon is how close a requested insertion time has to be to
	// an existing keyframe before AddValue overwrites it instead of
	// inserting a new one.
	ValueEpsilon float32 = 0.001

	// OptimizeEpsilon is the per-component tolerance Optimize uses to
	// decide a keyframe lies on the line between its neighbors.
	OptimizeEpsilon float32 = 0.001

	// DefaultDecimateError is the error bound InsertValues passes to
	// Decimate for DecimateInsertedData (a maximum deviation, as
	// BezierReducer measures it).
	DefaultDecimateError float32 = 0.03
)
