package events

import (
	"context"

	"github.com/avGenie/flexihire/internal/app/entity"
)

// Nop drops every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(ctx context.Context, event entity.StatusEvent) error {
	return nil
}

func (Nop) Close() {}
