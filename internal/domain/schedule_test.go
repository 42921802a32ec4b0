package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asavich/GymClub-BookingService/pkg/types"
)

func mustSchedule(t *testing.T, open, close string, step int, services []string) Schedule {
	t.Helper()
	s, err := NewSchedule(open, close, step, services)
	require.NoError(t, err)
	return s
}

func TestSchedule_Slots_BusinessDay(t *testing.T) {
	s := mustSchedule(t, "10:00", "20:00", 15, DefaultServices)

	slots := s.Slots()

	// 10 часов по 4 слота в час + закрытие включительно
	require.Len(t, slots, 41)
	assert.Equal(t, types.TimeString("10:00"), slots[0])
	assert.Equal(t, types.TimeString("20:00"), slots[len(slots)-1])
}

func TestSchedule_Slots_LengthFormula(t *testing.T) {
	tests := []struct {
		name  string
		open  string
		close string
		step  int
		want  int
	}{
		{name: "hour steps", open: "09:00", close: "18:00", step: 60, want: 10},
		{name: "single slot", open: "12:00", close: "12:00", step: 30, want: 1},
		{name: "half hour", open: "10:00", close: "11:00", step: 30, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSchedule(t, tt.open, tt.close, tt.step, DefaultServices)
			slots := s.Slots()

			// Длина равна (конец-начало)/шаг + 1, первый и последний слоты точны
			require.Len(t, slots, tt.want)
			assert.Equal(t, types.TimeString(tt.open), slots[0])
			assert.Equal(t, types.TimeString(tt.close), slots[len(slots)-1])
		})
	}
}

func TestSchedule_Slots_CloseNotOnStepBoundary(t *testing.T) {
	s := mustSchedule(t, "10:00", "10:50", 30, DefaultServices)

	slots := s.Slots()

	// Закрытие не попадает на границу шага и в список не входит
	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("10:00"), slots[0])
	assert.Equal(t, types.TimeString("10:30"), slots[1])
}

func TestSchedule_Slots_Deterministic(t *testing.T) {
	s := mustSchedule(t, "10:00", "20:00", 15, DefaultServices)

	assert.Equal(t, s.Slots(), s.Slots())
}

func TestSchedule_Slots_ZeroPadded(t *testing.T) {
	s := mustSchedule(t, "09:05", "10:05", 20, DefaultServices)

	slots := s.Slots()

	require.Len(t, slots, 4)
	assert.Equal(t, types.TimeString("09:05"), slots[0])
	assert.Equal(t, types.TimeString("09:25"), slots[1])
	assert.Equal(t, types.TimeString("09:45"), slots[2])
	assert.Equal(t, types.TimeString("10:05"), slots[3])
}

func TestSchedule_Slots_InvalidInputs(t *testing.T) {
	t.Run("open after close", func(t *testing.T) {
		s := mustSchedule(t, "20:00", "10:00", 15, DefaultServices)
		assert.Empty(t, s.Slots())
	})

	t.Run("zero step", func(t *testing.T) {
		s := Schedule{OpenTime: "10:00", CloseTime: "20:00", SlotStepMinutes: 0}
		assert.Empty(t, s.Slots())
	})

	t.Run("negative step", func(t *testing.T) {
		s := Schedule{OpenTime: "10:00", CloseTime: "20:00", SlotStepMinutes: -15}
		assert.Empty(t, s.Slots())
	})
}

func TestSchedule_HasSlot(t *testing.T) {
	s := mustSchedule(t, "10:00", "20:00", 15, DefaultServices)

	assert.True(t, s.HasSlot("10:00"))
	assert.True(t, s.HasSlot("19:45"))
	assert.True(t, s.HasSlot("20:00"))
	assert.False(t, s.HasSlot("09:45"))
	assert.False(t, s.HasSlot("10:07"))
	assert.False(t, s.HasSlot("20:15"))
}

func TestSchedule_HasService(t *testing.T) {
	s := mustSchedule(t, "10:00", "20:00", 15, []string{"Gym", "BJJ", "MMA", "Boxing"})

	assert.True(t, s.HasService("Gym"))
	assert.True(t, s.HasService("Boxing"))
	assert.False(t, s.HasService("Yoga"))
	assert.False(t, s.HasService("gym"))
}

func TestNewSchedule_InvalidTimes(t *testing.T) {
	_, err := NewSchedule("25:00", "20:00", 15, DefaultServices)
	assert.Error(t, err)

	_, err = NewSchedule("10:00", "garbage", 15, DefaultServices)
	assert.Error(t, err)
}
