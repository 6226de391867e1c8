package core

import "errors"

var (
	ErrEmptyProcessSet   = errors.New("empty process set")
	ErrInvalidBurst      = errors.New("invalid burst")
	ErrNegativeArrival   = errors.New("negative arrival")
	ErrDuplicateProcess  = errors.New("duplicate process id")
	ErrInvalidQuantum    = errors.New("invalid time quantum")
	ErrInvalidLevels     = errors.New("invalid feedback queue levels")
	ErrIncompleteProcess = errors.New("process did not complete")
	ErrInvalidExecution  = errors.New("invalid execution slice")
)
