package core

import (
	"errors"
)

var (
	ErrPipelineUnavailable = errors.New("shader pipeline unavailable")
	ErrInvalidInputLayout  = errors.New("invalid input layout")
	ErrContextNotCurrent   = errors.New("rendering context could not be made current")
	ErrUnsupportedBackend  = errors.New("unsupported renderer backend")
	ErrShaderCompile       = errors.New("shader compilation failed")
	ErrDriver              = errors.New("driver reported an error")
	ErrUnknown             = errors.New("unknown")
)
