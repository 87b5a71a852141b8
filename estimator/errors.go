package estimator

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned when a calculation runs before the estimator
// is initialized.
var ErrNotInitialized = errors.New("require initialization first")

// StageError reports the stage of an estimator that could not run.
type StageError struct {
	Component string
	Stage     Stage
	Err       error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Component, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
