package eventbus

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Event reprezentuje dowolne zdarzenie w systemie.
type Event interface {
	Name() string
}

// Listener - obsługa (słuchacz) zdarzeń.
type Listener func(ctx context.Context, event Event) error

// Bus - nasza szyna zdarzeń. Publikacja jest synchroniczna: wpisy audytu
// i powiadomienia muszą wylądować w tej samej kolejności, w jakiej nastąpiły
// przejścia statusów.
type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	logger    *zap.Logger
}

// New tworzy nową szynę zdarzeń.
func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]Listener),
		logger:    logger,
	}
}

// Subscribe zapisuje słuchacza na wskazane zdarzenie.
func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

// Publish publikuje zdarzenie. Wszyscy subskrybenci zostaną wywołani po kolei.
// Błąd słuchacza nie przerywa operacji domenowej - tylko go logujemy.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	listeners := b.listeners[event.Name()]
	b.mu.RUnlock()

	for _, l := range listeners {
		if err := l(ctx, event); err != nil {
			b.logger.Error("błąd w obsłudze zdarzenia",
				zap.String("event", event.Name()),
				zap.Error(err),
			)
		}
	}
}
