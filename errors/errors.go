package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrUnknownRoom        = fmt.Errorf("unknown chat room")
	ErrTemplateMissingKey = fmt.Errorf("template references an unknown placeholder")
	ErrTemplateMalformed  = fmt.Errorf("malformed template")
	ErrUnexpectedStatus   = fmt.Errorf("unexpected lichess response status")
	ErrEmptyCommandName   = fmt.Errorf("command name is empty")
	ErrStreamEnded        = fmt.Errorf("lichess stream ended")
)
