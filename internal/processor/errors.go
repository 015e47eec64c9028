package processor

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/MKhiriev/go-mini-actor/models"
)

// PanicError is a panic recovered while processing an item.
type PanicError struct {
	Value any
	stack []byte
}

func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Stack returns the goroutine stack captured at recovery time.
func (e *PanicError) Stack() []byte {
	return e.stack
}

// SafeProcess calls p.Process and returns a panic raised inside it as a
// *PanicError.
func SafeProcess(ctx context.Context, p Processor, item models.Item, index int) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{}
			err = &PanicError{Value: r, stack: debug.Stack()}
		}
	}()

	return p.Process(ctx, item, index)
}
