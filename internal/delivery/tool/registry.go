package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HandlerFunc executes one tool call. The returned value must be
// JSON-serializable; anything the conversation should see as a failure is
// part of the value, never a raised fault.
type HandlerFunc func(ctx context.Context, args json.RawMessage) interface{}

// Registry maps tool names to handlers for the agent runtime to invoke.
type Registry struct {
	log      *logrus.Logger
	handlers map[string]HandlerFunc
}

func NewRegistry(log *logrus.Logger) *Registry {
	return &Registry{
		log:      log,
		handlers: make(map[string]HandlerFunc),
	}
}

func (r *Registry) Register(name string, handler HandlerFunc) {
	r.handlers[name] = handler
}

// Dispatch runs the named tool and always produces a value the runtime can
// forward into a conversation; an unknown tool comes back as a plain error
// string. Each call gets a correlation id carried in the log fields.
func (r *Registry) Dispatch(ctx context.Context, name string, args json.RawMessage) interface{} {
	log := r.log.WithFields(logrus.Fields{
		"tool":    name,
		"call_id": uuid.NewString(),
	})

	handler, ok := r.handlers[name]
	if !ok {
		log.Warn("Unknown tool requested")
		return fmt.Sprintf("Error: Unknown tool '%s'.", name)
	}

	result := handler(ctx, args)
	log.Info("Tool call completed")
	return result
}
