package events

import (
	"sync"
	"testing"
	"time"
)

// TestEventQueueBasic tests basic push and consume operations
func TestEventQueueBasic(t *testing.T) {
	eq := NewEventQueue()

	event1 := GameEvent{Type: EventSwordSwing, Payload: "test1", Tick: 1, Timestamp: time.Now()}
	event2 := GameEvent{Type: EventExplosion, Payload: "test2", Tick: 2, Timestamp: time.Now()}
	event3 := GameEvent{Type: EventGameOver, Payload: "test3", Tick: 3, Timestamp: time.Now()}

	eq.Push(event1)
	eq.Push(event2)
	eq.Push(event3)

	events := eq.Consume()
	if len(events) != 3 {
		t.Errorf("Expected 3 events, got %d", len(events))
	}

	// Verify events are in FIFO order
	if events[0].Type != EventSwordSwing || events[0].Payload != "test1" {
		t.Errorf("Event 1 mismatch: got type=%v, payload=%v", events[0].Type, events[0].Payload)
	}
	if events[1].Type != EventExplosion || events[1].Payload != "test2" {
		t.Errorf("Event 2 mismatch: got type=%v, payload=%v", events[1].Type, events[1].Payload)
	}
	if events[2].Type != EventGameOver || events[2].Payload != "test3" {
		t.Errorf("Event 3 mismatch: got type=%v, payload=%v", events[2].Type, events[2].Payload)
	}

	// Second consume should return empty slice
	if events2 := eq.Consume(); len(events2) != 0 {
		t.Errorf("Expected 0 events on second consume, got %d", len(events2))
	}
}

// TestEventQueueConcurrent tests concurrent push operations from multiple goroutines
func TestEventQueueConcurrent(t *testing.T) {
	eq := NewEventQueue()
	numGoroutines := 10
	eventsPerGoroutine := 10
	totalEvents := numGoroutines * eventsPerGoroutine

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(goroutineID int) {
			defer wg.Done()
			for j := 0; j < eventsPerGoroutine; j++ {
				eq.Push(GameEvent{
					Type:      EventEnemyKilled,
					Payload:   goroutineID*100 + j,
					Tick:      int64(j),
					Timestamp: time.Now(),
				})
			}
		}(i)
	}

	wg.Wait()

	events := eq.Consume()
	if len(events) != totalEvents {
		t.Errorf("Expected %d events, got %d", totalEvents, len(events))
	}

	// Verify all payloads are unique
	seen := make(map[int]bool)
	for _, event := range events {
		payload := event.Payload.(int)
		if seen[payload] {
			t.Errorf("Duplicate payload found: %d", payload)
		}
		seen[payload] = true
	}

	if eq.Len() != 0 {
		t.Errorf("Expected queue to be empty, got length %d", eq.Len())
	}
}

// TestEventQueueOverflow tests behavior when pushing more events than buffer size
func TestEventQueueOverflow(t *testing.T) {
	eq := NewEventQueue()

	// Push 300 events to a 256-size buffer
	for i := 0; i < 300; i++ {
		eq.Push(GameEvent{
			Type:      EventEnemyKilled,
			Payload:   i,
			Tick:      int64(i),
			Timestamp: time.Now(),
		})
	}

	events := eq.Consume()
	if len(events) > 256 {
		t.Errorf("Expected at most 256 events, got %d", len(events))
	}

	// Oldest events were overwritten; last must be the newest
	if len(events) > 0 {
		lastPayload := events[len(events)-1].Payload.(int)
		if lastPayload != 299 {
			t.Errorf("Expected last payload to be 299, got %d", lastPayload)
		}
	}

	// Surviving events remain sequential across the wrap
	for i := 1; i < len(events); i++ {
		prev := events[i-1].Payload.(int)
		curr := events[i].Payload.(int)
		if curr != prev+1 {
			t.Errorf("Events not sequential: events[%d]=%d, events[%d]=%d", i-1, prev, i, curr)
		}
	}
}
