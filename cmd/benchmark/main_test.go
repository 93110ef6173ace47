package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00:00.12", formatDuration(120*time.Millisecond))
	assert.Equal(t, "00:01:01.12", formatDuration(61*time.Second+120*time.Millisecond))
	assert.Equal(t, "01:01:01.12", formatDuration(time.Hour+61*time.Second+120*time.Millisecond))
	assert.Equal(t, "00:00:00.00", formatDuration(0))
}
