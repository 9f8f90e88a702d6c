package reembed

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker_ReportsAtInterval(t *testing.T) {
	var out bytes.Buffer
	tracker := NewProgressTracker(&out, 10, 5)

	tracker.Start()
	tracker.Update(3)
	assert.Empty(t, out.String(), "below interval, nothing reported yet")

	tracker.Update(5)
	assert.Contains(t, out.String(), "5/10")
	assert.Contains(t, out.String(), "50.0%")
}

func TestProgressTracker_Increment(t *testing.T) {
	var out bytes.Buffer
	tracker := NewProgressTracker(&out, 4, 2)

	tracker.Start()
	tracker.Increment(1)
	tracker.Increment(1)
	assert.Contains(t, out.String(), "2/4")

	// Increment past total caps at total.
	tracker.Increment(10)
	assert.Contains(t, out.String(), "4/4")
}

func TestProgressTracker_Finish(t *testing.T) {
	var out bytes.Buffer
	tracker := NewProgressTracker(&out, 3, 100)

	tracker.Start()
	tracker.Update(1)
	tracker.Finish()

	assert.Contains(t, out.String(), "3/3")
	assert.Contains(t, out.String(), "100.0%")
}

func TestProgressTracker_IgnoresUpdatesBeforeStart(t *testing.T) {
	var out bytes.Buffer
	tracker := NewProgressTracker(&out, 10, 1)

	tracker.Update(5)
	tracker.Increment(5)
	tracker.Finish()
	assert.Empty(t, out.String())
	assert.Equal(t, time.Duration(0), tracker.Elapsed())
}

func TestProgressTracker_Elapsed(t *testing.T) {
	var out bytes.Buffer
	tracker := NewProgressTracker(&out, 10, 1)

	tracker.Start()
	time.Sleep(5 * time.Millisecond)
	assert.Greater(t, tracker.Elapsed(), time.Duration(0))
}
