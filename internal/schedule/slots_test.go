package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendafacil/booking-service/pkg/types"
)

func mustRange(t *testing.T, startMin, endMin int) types.TimeRange {
	t.Helper()
	start, err := types.TimeOfDayFromMinutes(startMin)
	require.NoError(t, err)
	end, err := types.TimeOfDayFromMinutes(endMin)
	require.NoError(t, err)
	r, err := types.NewTimeRange(start, end)
	require.NoError(t, err)
	return r
}

func rangeStrings(ranges []types.TimeRange) []string {
	out := make([]string, len(ranges))
	for i, r := range ranges {
		out[i] = r.String()
	}
	return out
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name     string
		window   types.TimeRange
		duration int
		interval int
		want     []string
	}{
		{
			name:     "duration equals interval",
			window:   mustRange(t, 8*60, 10*60),
			duration: 60,
			interval: 60,
			want:     []string{"08:00-09:00", "09:00-10:00"},
		},
		{
			name:     "interval shorter than duration",
			window:   mustRange(t, 8*60, 10*60),
			duration: 60,
			interval: 30,
			want:     []string{"08:00-09:00", "08:30-09:30", "09:00-10:00"},
		},
		{
			name:     "last slot ends exactly at close",
			window:   mustRange(t, 9*60, 9*60+45),
			duration: 45,
			interval: 15,
			want:     []string{"09:00-09:45"},
		},
		{
			name:     "window shorter than duration",
			window:   mustRange(t, 9*60, 9*60+30),
			duration: 60,
			interval: 30,
			want:     []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Candidates(tt.window, tt.duration, tt.interval)
			assert.Equal(t, tt.want, rangeStrings(got))
		})
	}
}

func TestCandidatesInvalidParams(t *testing.T) {
	window := mustRange(t, 9*60, 18*60)

	assert.Nil(t, Candidates(window, 0, 30))
	assert.Nil(t, Candidates(window, 60, 0))
	assert.Nil(t, Candidates(window, -15, 30))
}

func TestCandidatesDeterministic(t *testing.T) {
	window := mustRange(t, 9*60, 18*60)

	first := Candidates(window, 60, 30)
	second := Candidates(window, 60, 30)
	assert.Equal(t, first, second)

	// Кандидаты строго возрастают по началу
	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].Start.Before(first[i].Start))
	}
}

func TestHasConflict(t *testing.T) {
	existing := []types.TimeRange{
		mustRange(t, 9*60, 9*60+30),
		mustRange(t, 14*60, 15*60),
	}

	assert.True(t, HasConflict(mustRange(t, 9*60, 10*60), existing))
	assert.True(t, HasConflict(mustRange(t, 14*60+30, 15*60+30), existing))
	// Касание границ - не конфликт
	assert.False(t, HasConflict(mustRange(t, 9*60+30, 10*60+30), existing))
	assert.False(t, HasConflict(mustRange(t, 13*60, 14*60), existing))
	// Пустой список занятых интервалов
	assert.False(t, HasConflict(mustRange(t, 9*60, 10*60), nil))

	assert.True(t, IsAvailable(mustRange(t, 10*60, 11*60), existing))
}

func TestBuildSlots(t *testing.T) {
	window := mustRange(t, 9*60, 12*60)
	existing := []types.TimeRange{mustRange(t, 10*60, 11*60)}

	slots := BuildSlots(window, 60, 0, 30, existing)
	require.Len(t, slots, 5)

	wantAvailable := map[string]bool{
		"09:00": true,  // заканчивается ровно в начале занятого интервала
		"09:30": false, // пересекается с 10:00-11:00
		"10:00": false,
		"10:30": false,
		"11:00": true, // начинается ровно в конце занятого интервала
	}

	for _, slot := range slots {
		assert.Equal(t, wantAvailable[slot.Start.String()], slot.Available,
			"slot %s", slot.Start)
	}
}

func TestBuildSlotsWithBuffer(t *testing.T) {
	window := mustRange(t, 9*60, 12*60)
	existing := []types.TimeRange{mustRange(t, 11*60, 11*60+30)}

	// Буфер расширяет проверяемый интервал, но не видимые границы слота
	slots := BuildSlots(window, 60, 30, 60, existing)
	require.Len(t, slots, 3)

	assert.Equal(t, "09:00-10:00", slots[0].Range().String())
	assert.True(t, slots[0].Available)

	// 10:00-11:00 с буфером занимает до 11:30 и конфликтует с 11:00-11:30
	assert.Equal(t, "10:00-11:00", slots[1].Range().String())
	assert.False(t, slots[1].Available)

	assert.Equal(t, "11:00-12:00", slots[2].Range().String())
	assert.False(t, slots[2].Available)
}

func TestBuildSlotsEmptyWindow(t *testing.T) {
	window := mustRange(t, 9*60, 9*60+30)

	slots := BuildSlots(window, 60, 0, 30, nil)
	assert.Empty(t, slots)
}
