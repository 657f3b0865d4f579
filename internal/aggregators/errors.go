package aggregators

import "errors"

var (
	ErrInvalidTopN      = errors.New("top n must be positive")
	ErrInvalidThreshold = errors.New("others threshold must be within (0, 1)")
)
