package source

import "errors"

// Sentinel kinds for source errors. ErrLoad and ErrDecode are fatal for the
// standings file; the rest only affect config metadata.
var (
	ErrLoad           = errors.New("load standings")
	ErrDecode         = errors.New("decode standings")
	ErrIndex          = errors.New("load config index")
	ErrConfigDecode   = errors.New("decode player config")
	ErrConfigNotFound = errors.New("no config file for player")
)
