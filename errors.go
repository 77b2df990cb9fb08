package mdconfig

import "github.com/pkg/errors"

// Errors returned by the stage.
var (
	ErrInvalidConfig  = errors.New("mdconfig: invalid configuration")
	ErrInvalidPicture = errors.New("mdconfig: invalid picture")
)
