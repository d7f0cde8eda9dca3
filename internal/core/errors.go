package core

import "errors"

// Error taxonomy. Packages wrap these with context; callers classify with errors.Is.
var (
	// ErrInit means the window or terminal could not be set up.
	ErrInit = errors.New("init failed")

	// ErrLoad means an asset was missing or could not be decoded.
	ErrLoad = errors.New("load failed")

	// ErrParse means a level description was malformed.
	ErrParse = errors.New("parse failed")

	// ErrRender means a blit could not be performed.
	ErrRender = errors.New("render failed")
)
