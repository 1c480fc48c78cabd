package glimpse

type eventSource interface {
	ShouldClose() bool

	// PollEvents processes pending os events and returns the
	// events that were emitted since the last call.
	PollEvents() []Event
}

func runLoop(source eventSource, handler Handler) error {
	for !source.ShouldClose() {
		for _, event := range source.PollEvents() {
			if handler.WindowEvent(event) == Exit {
				return nil
			}
		}

		// all events are handled, we can now draw the next frame
		if err := handler.RedrawRequested(); err != nil {
			return err
		}
	}

	return nil
}

type eventQueue struct {
	events []Event
	spare  []Event
}

func (q *eventQueue) push(event Event) {
	q.events = append(q.events, event)
}

// drain returns all queued events. The returned slice is only valid
// until the next call to drain.
func (q *eventQueue) drain() []Event {
	events := q.events

	clear(q.spare)
	q.events = q.spare[:0]
	q.spare = events

	return events
}
