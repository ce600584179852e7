// Package event provides a small synchronous observer list for one-shot
// notifications raised by interactive level objects.
package event

// Signal holds the handlers subscribed to one notification. Handlers run
// synchronously, in subscription order, on the caller's goroutine.
type Signal struct {
	next     int
	handlers []subscription
}

type subscription struct {
	id int
	fn func()
}

// Subscribe registers fn and returns a function that removes it again
func (s *Signal) Subscribe(fn func()) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	s.next++
	id := s.next
	s.handlers = append(s.handlers, subscription{id: id, fn: fn})
	return func() {
		for i, h := range s.handlers {
			if h.id == id {
				s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
				return
			}
		}
	}
}

// Fire calls every subscribed handler
func (s *Signal) Fire() {
	// copy so a handler may cancel itself
	handlers := make([]subscription, len(s.handlers))
	copy(handlers, s.handlers)
	for _, h := range handlers {
		h.fn()
	}
}

// Detach removes all handlers
func (s *Signal) Detach() {
	s.handlers = nil
}

// Len returns the number of subscribed handlers
func (s *Signal) Len() int {
	return len(s.handlers)
}
