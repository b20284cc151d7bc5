package timing

import (
	"log"
	"reflect"

	"github.com/sarchlab/counterreg/hooking"
)

// EventLogger is an hook that prints the event information.
type EventLogger struct {
	logger *log.Logger
}

// NewEventLogger returns a new EventLogger which will write in to the logger.
func NewEventLogger(logger *log.Logger) *EventLogger {
	h := new(EventLogger)

	h.logger = logger

	return h
}

type named interface {
	Name() string
}

// Func writes the event information into the logger.
func (h *EventLogger) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosBeforeEvent {
		return
	}

	evt, ok := ctx.Item.(*ScheduledEvent)
	if !ok {
		return
	}

	if n, ok := evt.Handler.(named); ok {
		h.logger.Printf("%d, %s -> %s",
			evt.Time, reflect.TypeOf(evt.Event), n.Name())
		return
	}

	h.logger.Printf("%d, %s", evt.Time, reflect.TypeOf(evt.Event))
}
