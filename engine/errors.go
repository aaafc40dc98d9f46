package engine

import "errors"

var (
	ErrUnknownEngine = errors.New("engine.unknown")
	ErrSetupFailed   = errors.New("engine.setup_failed")
	ErrAlreadyBuilt  = errors.New("engine.registry_already_built")
	ErrInvalidOption = errors.New("engine.invalid_option")
)
