package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// ClockScheduler advances the simulation on a fixed tick from its own
// goroutine. Ticks run under the world update lock; the render loop
// signals frame readiness and receives an update-complete signal, so
// rendering and simulation stay loosely coupled without busy-waiting.
type ClockScheduler struct {
	world *World

	tickInterval     time.Duration
	nextTickDeadline time.Time

	tickCount atomic.Uint64
	mu        sync.RWMutex

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	frameReady <-chan struct{} // Receive signal that frame is ready
	updateDone chan<- struct{} // Send signal that update is complete
}

// NewClockScheduler creates a scheduler for the world. Receives the
// frameReady (receive) channel and returns the updateDone (send)
// channel for the render loop.
func NewClockScheduler(world *World, tickInterval time.Duration, frameReady <-chan struct{}) (*ClockScheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)

	cs := &ClockScheduler{
		world:        world,
		tickInterval: tickInterval,
		frameReady:   frameReady,
		updateDone:   updateDone,
		stopChan:     make(chan struct{}),
	}

	return cs, updateDone
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		go cs.schedulerLoop()
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		now := time.Now()

		cs.mu.RLock()
		deadline := cs.nextTickDeadline
		cs.mu.RUnlock()

		var sleepDuration time.Duration

		if !now.Before(deadline) {
			// Wait for the renderer, but never stall the simulation
			// longer than two ticks
			select {
			case <-cs.frameReady:
			case <-time.After(cs.tickInterval * 2):
			case <-cs.stopChan:
				return
			}

			cs.world.Update()

			cs.mu.Lock()
			cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)

			// Drop accumulated drift instead of tick-storming to catch up
			maxBehind := cs.tickInterval * 2
			if now.Sub(cs.nextTickDeadline) > maxBehind {
				cs.nextTickDeadline = now.Add(cs.tickInterval)
			}
			deadline = cs.nextTickDeadline
			cs.mu.Unlock()

			cs.tickCount.Add(1)

			select {
			case cs.updateDone <- struct{}{}:
			default:
			}

			sleepDuration = time.Until(deadline)
			if sleepDuration < 0 {
				sleepDuration = 0
			}
		} else {
			sleepDuration = deadline.Sub(now)
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.stopChan:
				return
			}
		}
	}
}
