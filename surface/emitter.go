package surface

// Emitter is an independent, per-owner event channel.
// The zero value is ready to use. It is not safe for concurrent use.
type Emitter[T any] struct {
	handlers []func(T)
}

// On appends a handler. Nil handlers are ignored.
func (e *Emitter[T]) On(handler func(T)) {
	if handler != nil {
		e.handlers = append(e.handlers, handler)
	}
}

// Emit calls every handler in registration order.
func (e *Emitter[T]) Emit(event T) {
	for _, h := range e.handlers {
		h(event)
	}
}

// Off removes every handler.
func (e *Emitter[T]) Off() {
	e.handlers = nil
}

// Len reports the number of registered handlers.
func (e *Emitter[T]) Len() int {
	return len(e.handlers)
}
