package events

import (
	"sync/atomic"

	"github.com/haoranliu666/Hell-Survivor/constants"
)

// EventQueue is a bounded lock-free ring of game events. Any number of
// producers claim slots with a CAS on the tail and mark them with a
// per-slot publish flag; a single consumer (the frame loop's drain)
// reads in FIFO order. When the ring fills, the oldest unread events
// are overwritten rather than blocking a producer.
type EventQueue struct {
	events    [constants.EventQueueSize]GameEvent
	published [constants.EventQueueSize]atomic.Bool // set when the slot is readable
	head      atomic.Uint64                         // next slot to consume
	tail      atomic.Uint64                         // next slot to claim
}

func NewEventQueue() *EventQueue {
	eq := &EventQueue{}
	eq.head.Store(0)
	eq.tail.Store(0)
	return eq
}

// Push enqueues an event without blocking. Safe to call from any
// goroutine; the slot only becomes visible to Consume once fully written.
func (eq *EventQueue) Push(event GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & constants.EventBufferMask

			eq.events[idx] = event
			eq.published[idx].Store(true) // publish only after the slot is written

			// Full ring: drag the head past the slot we just reused
			currentHead := eq.head.Load()
			if nextTail-currentHead > constants.EventQueueSize {
				eq.head.CompareAndSwap(currentHead, nextTail-constants.EventQueueSize)
			}
			return
		}
	}
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	pending := eq.tail.Load() - eq.head.Load()
	if pending > constants.EventQueueSize {
		pending = constants.EventQueueSize
	}
	return int(pending)
}

// Consume drains every published event in arrival order. Single
// consumer only; an unpublished slot ends the batch early.
func (eq *EventQueue) Consume() []GameEvent {
	for {
		currentHead := eq.head.Load()
		currentTail := eq.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > constants.EventQueueSize {
			maxAvailable = constants.EventQueueSize
			currentHead = currentTail - constants.EventQueueSize
		}

		result := make([]GameEvent, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & constants.EventBufferMask

			if !eq.published[idx].Load() {
				break // producer mid-write, pick it up next drain
			}

			result = append(result, eq.events[idx])
			eq.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if eq.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}
