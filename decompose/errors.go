package decompose

import "errors"

// ErrPointTooSmall indicates AlexanderDual was given a point that does
// not dominate the ideal's own lcm on some variable a component uses,
// making the dual generator's exponent negative.
var ErrPointTooSmall = errors.New("decompose: point does not dominate ideal on a component's support")
