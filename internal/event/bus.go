package event

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/pip-overlay/internal/model"
)

// Signal identifies an environment change the layout engine reacts to
type Signal string

const (
	// SignalOrientationChanged fires when the device orientation flips
	SignalOrientationChanged Signal = "orientation.changed"

	// SignalKeyboardShown fires when the software keyboard appears
	SignalKeyboardShown Signal = "keyboard.shown"

	// SignalKeyboardHidden fires when the software keyboard disappears
	SignalKeyboardHidden Signal = "keyboard.hidden"

	// SignalContainerChanged fires when the container is resized or its
	// direct children change
	SignalContainerChanged Signal = "container.changed"
)

// KeyboardInfo carries the keyboard frame and the platform animation
// duration extracted from a keyboard notification
type KeyboardInfo struct {
	Frame    model.Frame
	Duration time.Duration
}

// Message is a single published environment signal with its payload.
// Keyboard is only meaningful for keyboard signals, Container only for
// container change signals.
type Message struct {
	Signal    Signal
	Keyboard  KeyboardInfo
	Container fyne.Size
}

// Handler processes a published message
type Handler func(Message)

// Subscription represents an active registration on the bus. Unsubscribe
// must be called when the owner is torn down; relying on garbage collection
// to sever a subscription is a defect.
type Subscription struct {
	bus    *Bus
	signal Signal
	id     int
}

// Unsubscribe removes the handler from the bus. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.remove(s.signal, s.id)
	s.bus = nil
}

// Bus is a synchronous in-process signal bus. All publishes and
// subscriptions must happen on the UI goroutine; the bus itself performs no
// locking by contract.
type Bus struct {
	handlers map[Signal]map[int]Handler
	nextID   int
	closed   bool
}

// NewBus creates an empty signal bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Signal]map[int]Handler),
	}
}

// Subscribe registers a handler for a signal and returns its subscription
// handle. Returns nil if the bus is already closed.
func (b *Bus) Subscribe(signal Signal, handler Handler) *Subscription {
	if b.closed || handler == nil {
		return nil
	}

	b.nextID++
	id := b.nextID

	if b.handlers[signal] == nil {
		b.handlers[signal] = make(map[int]Handler)
	}
	b.handlers[signal][id] = handler

	return &Subscription{bus: b, signal: signal, id: id}
}

// Publish delivers a message synchronously to every handler registered for
// its signal. Order of delivery between handlers is unspecified.
func (b *Bus) Publish(msg Message) {
	if b.closed {
		return
	}
	for _, handler := range b.handlers[msg.Signal] {
		handler(msg)
	}
}

// SubscriberCount returns the number of handlers registered for a signal
func (b *Bus) SubscriberCount(signal Signal) int {
	return len(b.handlers[signal])
}

// Close drops all subscriptions; subsequent publishes are no-ops
func (b *Bus) Close() {
	b.closed = true
	b.handlers = make(map[Signal]map[int]Handler)
}

// remove deletes a handler registration if it is still present
func (b *Bus) remove(signal Signal, id int) {
	if handlers, ok := b.handlers[signal]; ok {
		delete(handlers, id)
	}
}
