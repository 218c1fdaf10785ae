package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum
// for the requested topology.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error such as a nil Constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
