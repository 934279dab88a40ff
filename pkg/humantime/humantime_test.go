package humantime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToHuman(t *testing.T) {
	tests := []struct {
		secs uint64
		want string
	}{
		{0, "0s"},
		{1, "1s"},
		{10, "10s"},
		{59, "59s"},
		{minuteSeconds, "1m 0s"},
		{hourSeconds - 1, "59m 59s"},
		{hourSeconds, "1h 0m"},
		{hourSeconds + 1, "1h 0m"},
		{hourSeconds + minuteSeconds + 1, "1h 1m"},
		{daySeconds - 1, "23h 59m"},
		{daySeconds, "1d 0h"},
		{daySeconds + 1, "1d 0h"},
		{45 * daySeconds, "45d 0h"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTime(tt.secs).ToHuman(2))
		})
	}
}

func TestToHumanPartLimits(t *testing.T) {
	h := HumanTime(daySeconds + hourSeconds + minuteSeconds + 1)

	assert.Equal(t, "", h.ToHuman(0))
	assert.Equal(t, "", h.ToHuman(-1))
	assert.Equal(t, "1d", h.ToHuman(1))
	assert.Equal(t, "1d 1h 1m 1s", h.ToHuman(4))
	assert.Equal(t, "1d 1h 1m 1s", h.String())
}

func TestFromDuration(t *testing.T) {
	assert.Equal(t, HumanTime(90), FromDuration(90*time.Second+500*time.Millisecond))
	assert.Equal(t, HumanTime(0), FromDuration(-time.Minute))
}

func TestSince(t *testing.T) {
	built := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	h, ok := Since(built, built.Add(2*time.Hour))
	assert.True(t, ok)
	assert.Equal(t, "2h 0m", h.ToHuman(2))

	_, ok = Since(built, built.Add(-time.Second))
	assert.False(t, ok)
}
