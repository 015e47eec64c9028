package processor

//go:generate mockgen -source=interfaces.go -destination=../mock/processor_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-mini-actor/models"
)

// Processor transforms one item. index is the zero-based position of item
// in the input sequence.
type Processor interface {
	Process(ctx context.Context, item models.Item, index int) (Result, error)
}
