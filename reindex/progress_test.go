package reindex

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker_ReportsAtInterval(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 100, 10)
	tracker.Start()

	tracker.Update(5)
	assert.Empty(t, buf.String(), "below interval, no report yet")

	tracker.Update(10)
	assert.Contains(t, buf.String(), "10/100")
}

func TestProgressTracker_Increment(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 20, 10)
	tracker.Start()

	tracker.Increment(7)
	tracker.Increment(7)
	assert.Contains(t, buf.String(), "14/20")
}

func TestProgressTracker_Finish(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 50, 100)
	tracker.Start()
	tracker.Update(25)
	tracker.Finish()

	out := buf.String()
	assert.Contains(t, out, "50/50")
	assert.Contains(t, out, "100.0%")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestProgressTracker_NoopBeforeStart(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10, 1)

	tracker.Update(5)
	tracker.Finish()
	assert.Empty(t, buf.String())
	assert.Zero(t, tracker.Elapsed())
}

func TestProgressTracker_CapsAtTotal(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10, 1)
	tracker.Start()

	tracker.Update(25)
	assert.Contains(t, buf.String(), "10/10")
}
