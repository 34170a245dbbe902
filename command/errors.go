package command

import (
	"errors"

	"github.com/iw2rmb/markcmd/buffer"
)

var (
	// ErrEmptyCommand reports an unrecognized command tag. The host should
	// treat it as a no-op.
	ErrEmptyCommand = errors.New("unrecognized command")

	// ErrInvalidRange is buffer.ErrInvalidRange, re-exported for hosts that
	// only import this package.
	ErrInvalidRange = buffer.ErrInvalidRange
)
