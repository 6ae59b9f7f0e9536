package preview

import (
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
)

// Bus is an in-process Keyboard. Rendering backends feed key presses in with
// Dispatch; listeners run in subscription order on the caller's goroutine.
type Bus struct {
	mu        sync.Mutex
	next      int
	listeners map[int]func(string)
}

var _ ports.Keyboard = (*Bus)(nil)

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[int]func(string))}
}

// Subscribe registers listener and returns its idempotent removal func.
func (b *Bus) Subscribe(listener func(key string)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.listeners == nil {
		b.listeners = make(map[int]func(string))
	}
	id := b.next
	b.next++
	b.listeners[id] = listener

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			b.mu.Unlock()
		})
	}
}

// Dispatch delivers key to every listener registered at the time of the call.
func (b *Bus) Dispatch(key string) {
	b.mu.Lock()
	ids := make([]int, 0, len(b.listeners))
	for id := range b.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(string), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, b.listeners[id])
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(key)
	}
}

// Len reports the number of registered listeners.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
