package ggbench

import (
	"errors"
	"sync"
)

// Message kinds on the host channel. The numeric values are part of the
// host protocol and must not change.
const (
	// KindTestDone is a zero-payload completion message, sent at most
	// once per harness run after the configured pass count is exceeded.
	KindTestDone MessageKind = 100

	// KindResultsReady carries one FPS value per registered workload,
	// index-aligned with the registry, sent after every full pass.
	KindResultsReady MessageKind = 101
)

// MessageKind discriminates host messages.
type MessageKind uint8

// String returns the protocol name of the kind.
func (k MessageKind) String() string {
	switch k {
	case KindTestDone:
		return "TEST_DONE"
	case KindResultsReady:
		return "RESULTS_READY"
	}
	return "UNKNOWN"
}

// Message is one outbound notification to the host.
type Message struct {
	Kind MessageKind

	// FPS is the results payload for KindResultsReady, nil otherwise.
	// Values are 32-bit to match the wire format.
	FPS []float32
}

// ErrHostUnavailable indicates the host stopped consuming messages. The
// harness has no retry policy; results would be stale by the time the
// host returned. Callers should treat this as fatal.
var ErrHostUnavailable = errors.New("ggbench: host unavailable")

// A Notifier delivers harness messages to the host. Notify must block
// until the host has acknowledged receipt; this is the harness's only
// backpressure mechanism and prevents results from being overwritten
// before the host reads them.
type Notifier interface {
	Notify(m Message) error
}

// nopNotifier discards all messages. Used when no notifier is configured.
type nopNotifier struct{}

func (nopNotifier) Notify(Message) error { return nil }

// ChannelNotifier delivers messages over an unbuffered channel. A send
// blocks the harness until the host receives from Messages, giving the
// acknowledged-send semantics the harness requires.
type ChannelNotifier struct {
	msgs chan Message
	done chan struct{}
	once sync.Once
}

// NewChannelNotifier creates a notifier with an unbuffered message
// channel.
func NewChannelNotifier() *ChannelNotifier {
	return &ChannelNotifier{
		msgs: make(chan Message),
		done: make(chan struct{}),
	}
}

// Messages returns the host side of the channel.
func (n *ChannelNotifier) Messages() <-chan Message { return n.msgs }

// Close marks the host as gone. Pending and future Notify calls return
// ErrHostUnavailable. Safe to call more than once.
func (n *ChannelNotifier) Close() {
	n.once.Do(func() { close(n.done) })
}

// Notify blocks until the host receives the message or has closed the
// notifier.
func (n *ChannelNotifier) Notify(m Message) error {
	select {
	case n.msgs <- m:
		return nil
	case <-n.done:
		return ErrHostUnavailable
	}
}
