package s2tc

import "errors"

// Configuration errors (spec §7, class 1): invalid mode strings or
// incompatible option combinations, surfaced before encoding begins.
var (
	ErrUnknownDxtMode       = errors.New("s2tc: unknown dxt mode")
	ErrUnknownMetric        = errors.New("s2tc: unknown color metric")
	ErrUnknownCandidateMode = errors.New("s2tc: unknown candidate mode")
	ErrUnknownRefineMode    = errors.New("s2tc: unknown refine mode")
	ErrNormalMapFast        = errors.New("s2tc: NORMALMAP metric is incompatible with fast candidate mode")
	ErrRandomNeedsPRNG      = errors.New("s2tc: random candidate mode requires a non-zero PRNG seed")
)

// Input-shape errors (spec §7, class 2): detected at the API boundary,
// refused before any tile is touched.
var (
	ErrZeroSize       = errors.New("s2tc: width and height must be positive")
	ErrInputStride    = errors.New("s2tc: input row stride is narrower than the image width")
	ErrOutputTooSmall = errors.New("s2tc: output buffer is smaller than the encoded payload")
	ErrOutputStride   = errors.New("s2tc: output row stride is narrower than one block row")
)
