package util

import (
	"fmt"
	"math"
	"time"
)

// Clock reports the current time in seconds. Only differences are meaningful.
type Clock interface {
	Seconds() float64
}

type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Seconds() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock only moves when told to. Used by fixed step loops and tests.
type ManualClock struct {
	now float64
}

func NewManualClock(start float64) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Seconds() float64 {
	return c.now
}

func (c *ManualClock) Advance(deltaTime float64) {
	c.now += deltaTime
}

func (c *ManualClock) Set(now float64) {
	c.now = now
}

type TimerState struct {
	name         string
	lastDuration float64

	totalDuration  float64
	executionCount int64

	minDuration float64
	maxDuration float64
}

func (t *TimerState) averageDuration() float64 {
	if t.executionCount == 0 {
		return 0
	}
	return t.totalDuration / float64(t.executionCount)
}

func (t *TimerState) ExecutionCount() int64 {
	return t.executionCount
}

func (t *TimerState) String() string {
	return fmt.Sprintf("%s last: %.3fms, avg: %.3fms, min: %.3fms, max: %.3fms", t.name, t.lastDuration, t.averageDuration(), t.minDuration, t.maxDuration)
}

// Timer profiles named sections of the frame loop.
type Timer struct {
	states     map[string]*TimerState
	timerNames []string
}

func NewTimer() *Timer {
	return &Timer{
		states: make(map[string]*TimerState),
	}
}

func (t *Timer) GetState(name string) *TimerState {
	return t.states[name]
}

func (t *Timer) String() string {
	var str string
	for _, name := range t.timerNames {
		str += t.states[name].String() + "\n"
	}
	return str
}

// Start begins measuring name. Call the returned func to stop, it reports
// the duration in milliseconds.
func (t *Timer) Start(name string) func() float64 {
	state, ok := t.states[name]
	if !ok {
		t.timerNames = append(t.timerNames, name)
		state = &TimerState{
			name:        name,
			minDuration: math.MaxFloat64,
		}
		t.states[name] = state
	}
	start := time.Now()
	return func() float64 {
		durationInMS := float64(time.Since(start).Microseconds()) / 1000.0
		state.lastDuration = durationInMS
		state.totalDuration += durationInMS
		state.executionCount++
		state.minDuration = math.Min(state.minDuration, durationInMS)
		state.maxDuration = math.Max(state.maxDuration, durationInMS)
		return durationInMS
	}
}
