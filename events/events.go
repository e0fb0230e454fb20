// SPDX-License-Identifier: EPL-2.0

package events

import "sync"

// Handler reacts to a published event.
type Handler func()

// Hub dispatches named game events to subscribed handlers. The zero value
// is not usable; construct with NewHub.
type Hub struct {
	handlers map[string]map[int]Handler
	seq      int

	mtx *sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		handlers: make(map[string]map[int]Handler),
		mtx:      &sync.Mutex{},
	}
}

// Subscribe registers fn for event and returns the function that removes
// exactly that subscription. Unsubscribing twice is harmless.
func (h *Hub) Subscribe(event string, fn Handler) (unsubscribe func()) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	if h.handlers[event] == nil {
		h.handlers[event] = make(map[int]Handler)
	}
	id := h.seq
	h.seq++
	h.handlers[event][id] = fn

	return func() {
		h.mtx.Lock()
		defer h.mtx.Unlock()

		delete(h.handlers[event], id)
		if len(h.handlers[event]) == 0 {
			delete(h.handlers, event)
		}
	}
}

// Publish invokes every handler subscribed to event. Handlers run on the
// caller's goroutine without the hub lock held, so they may subscribe or
// unsubscribe freely.
func (h *Hub) Publish(event string) {
	h.mtx.Lock()
	fns := make([]Handler, 0, len(h.handlers[event]))
	for _, fn := range h.handlers[event] {
		fns = append(fns, fn)
	}
	h.mtx.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Subscribers reports how many handlers are registered for event.
func (h *Hub) Subscribers(event string) int {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	return len(h.handlers[event])
}

// Player is the part of sfxmix.System that event bindings trigger.
type Player interface {
	Play(name string) error
}

// BindSound subscribes p.Play(sound) to event. Playback errors are already
// non-fatal and logged by the system, so the binding discards them.
func BindSound(h *Hub, p Player, event, sound string) (unsubscribe func()) {
	return h.Subscribe(event, func() {
		_ = p.Play(sound)
	})
}
