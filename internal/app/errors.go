package app

import "fmt"

// ItemError describes a failure while processing the item at Index. It is
// isolated into that item's record and never aborts the run.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf(MsgItemFailed, e.Index+1, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }
