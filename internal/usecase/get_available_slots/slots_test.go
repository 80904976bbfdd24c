package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
	"github.com/m04kA/Salon-AvailabilityService/pkg/ptr"
	"github.com/m04kA/Salon-AvailabilityService/pkg/types"
)

func TestHasOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		start1, end1, start2, end2 int
		want                       bool
	}{
		{"identical intervals", 540, 600, 540, 600, true},
		{"partial overlap", 540, 600, 570, 630, true},
		{"contained", 540, 660, 570, 600, true},
		{"touching end to start", 540, 600, 600, 660, false},
		{"touching start to end", 600, 660, 540, 600, false},
		{"disjoint", 540, 600, 700, 760, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasOverlap(tt.start1, tt.end1, tt.start2, tt.end2))
		})
	}
}

func TestGenerateCandidateSlots(t *testing.T) {
	t.Run("full day grid", func(t *testing.T) {
		// 09:00-17:00, услуга 60 минут, шаг 30 минут
		slots := generateCandidateSlots(540, 1020, nil, nil, 60, 30)

		require.Len(t, slots, 15)
		assert.Equal(t, candidateSlot{start: 540, end: 600}, slots[0])   // 09:00
		assert.Equal(t, candidateSlot{start: 570, end: 630}, slots[1])   // 09:30
		assert.Equal(t, candidateSlot{start: 960, end: 1020}, slots[14]) // 16:00 - последний, что влезает
	})

	t.Run("last slot must fit entirely", func(t *testing.T) {
		// 09:00-10:30, услуга 60 минут, шаг 30: 09:00 и 09:30, но не 10:00
		slots := generateCandidateSlots(540, 630, nil, nil, 60, 30)

		require.Len(t, slots, 2)
		assert.Equal(t, 540, slots[0].start)
		assert.Equal(t, 570, slots[1].start)
	})

	t.Run("break is skipped with jump to break end", func(t *testing.T) {
		// 09:00-14:00, перерыв 12:00-13:00, услуга 60, шаг 30
		breakStart, breakEnd := 720, 780
		slots := generateCandidateSlots(540, 840, &breakStart, &breakEnd, 60, 30)

		// 09:00, 09:30, 10:00, 10:30, 11:00 (заканчивается в 12:00 - впритык допустимо),
		// затем прыжок к 13:00
		starts := make([]int, 0, len(slots))
		for _, s := range slots {
			starts = append(starts, s.start)
		}
		assert.Equal(t, []int{540, 570, 600, 630, 660, 780}, starts)
	})

	t.Run("wide service never fits", func(t *testing.T) {
		slots := generateCandidateSlots(540, 600, nil, nil, 90, 30)
		assert.Empty(t, slots)
	})

	t.Run("invalid parameters yield no candidates", func(t *testing.T) {
		assert.Empty(t, generateCandidateSlots(540, 1020, nil, nil, 0, 30))
		assert.Empty(t, generateCandidateSlots(540, 1020, nil, nil, 60, 0))
	})
}

func TestIsSlotAvailable(t *testing.T) {
	// Запись 10:00, услуга 60 минут: с buffer 15 занято [10:00, 11:15)
	appointments := []*domain.Appointment{
		{
			StartTime:       "10:00",
			DurationMinutes: 60,
			Status:          domain.StatusConfirmed,
		},
	}

	tests := []struct {
		name string
		slot candidateSlot
		want bool
	}{
		{"before occupied interval", candidateSlot{start: 540, end: 600}, true},  // 09:00-10:00
		{"overlaps start", candidateSlot{start: 570, end: 630}, false},           // 09:30-10:30
		{"inside occupied", candidateSlot{start: 600, end: 660}, false},          // 10:00-11:00
		{"overlaps buffer tail", candidateSlot{start: 660, end: 720}, false},     // 11:00-12:00 (буфер до 11:15)
		{"starts right after buffer", candidateSlot{start: 690, end: 750}, true}, // 11:30-12:30
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isSlotAvailable(tt.slot, appointments, nil, nil, nil, 15)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSlotAvailable_BlockedSlots(t *testing.T) {
	blocked := []*domain.BlockedSlot{
		{StartTime: "12:00", EndTime: "13:00"},
	}

	// Блокировки применяются как есть, без buffer time
	assert.False(t, isSlotAvailable(candidateSlot{start: 690, end: 750}, nil, blocked, nil, nil, 15)) // 11:30-12:30
	assert.True(t, isSlotAvailable(candidateSlot{start: 660, end: 720}, nil, blocked, nil, nil, 15))  // 11:00-12:00 впритык
	assert.True(t, isSlotAvailable(candidateSlot{start: 780, end: 840}, nil, blocked, nil, nil, 15))  // 13:00-14:00 впритык
}

func TestIsSlotAvailable_Break(t *testing.T) {
	breakStart, breakEnd := 720, 780

	assert.False(t, isSlotAvailable(candidateSlot{start: 700, end: 760}, nil, nil, &breakStart, &breakEnd, 0))
	assert.True(t, isSlotAvailable(candidateSlot{start: 660, end: 720}, nil, nil, &breakStart, &breakEnd, 0))
}

func TestResolveEmployeeSlots(t *testing.T) {
	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC) // понедельник
	employee := &domain.Employee{ID: 7, TenantID: 1, Name: "Анна", IsActive: true}

	t.Run("no schedule means day off", func(t *testing.T) {
		day := &employeeDay{employee: employee}

		slots := resolveEmployeeSlots(day, date, 60, 15, 30)
		assert.Empty(t, slots)
	})

	t.Run("full open day", func(t *testing.T) {
		day := &employeeDay{
			employee: employee,
			schedule: &domain.WeeklySchedule{
				EmployeeID: employee.ID,
				DayOfWeek:  1,
				StartTime:  "09:00",
				EndTime:    "17:00",
				IsActive:   true,
			},
		}

		slots := resolveEmployeeSlots(day, date, 60, 15, 30)

		require.Len(t, slots, 15)
		assert.Equal(t, time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC), slots[0].Start)
		assert.Equal(t, time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC), slots[0].End)
		assert.Equal(t, time.Date(2025, 6, 16, 16, 0, 0, 0, time.UTC), slots[14].Start)
		assert.Equal(t, int64(7), slots[0].EmployeeID)
		assert.Equal(t, "Анна", slots[0].EmployeeName)
	})

	t.Run("appointment with buffer excludes conflicting starts", func(t *testing.T) {
		day := &employeeDay{
			employee: employee,
			schedule: &domain.WeeklySchedule{
				EmployeeID: employee.ID,
				DayOfWeek:  1,
				StartTime:  "09:00",
				EndTime:    "17:00",
				IsActive:   true,
			},
			appointments: []*domain.Appointment{
				{
					EmployeeID:      employee.ID,
					StartTime:       "10:00",
					DurationMinutes: 60,
					Status:          domain.StatusConfirmed,
				},
			},
		}

		slots := resolveEmployeeSlots(day, date, 60, 15, 30)

		starts := make([]string, 0, len(slots))
		for _, s := range slots {
			starts = append(starts, s.Start.Format("15:04"))
		}

		// Занято [10:00, 11:15): выпадают 09:30, 10:00, 10:30, 11:00
		assert.NotContains(t, starts, "09:30")
		assert.NotContains(t, starts, "10:00")
		assert.NotContains(t, starts, "10:30")
		assert.NotContains(t, starts, "11:00")
		assert.Contains(t, starts, "09:00")
		assert.Contains(t, starts, "11:30")
	})

	t.Run("tenant wide block applies", func(t *testing.T) {
		day := &employeeDay{
			employee: employee,
			schedule: &domain.WeeklySchedule{
				EmployeeID: employee.ID,
				DayOfWeek:  1,
				StartTime:  "09:00",
				EndTime:    "17:00",
				IsActive:   true,
			},
			blocked: []*domain.BlockedSlot{
				{TenantID: 1, EmployeeID: nil, StartTime: "12:00", EndTime: "13:00"},
			},
		}

		slots := resolveEmployeeSlots(day, date, 60, 15, 30)

		for _, s := range slots {
			assert.False(t, hasOverlap(
				s.Start.Hour()*60+s.Start.Minute(),
				s.End.Hour()*60+s.End.Minute(),
				720, 780,
			), "slot %s overlaps the block", s.Start.Format("15:04"))
		}
	})

	t.Run("break window excluded", func(t *testing.T) {
		day := &employeeDay{
			employee: employee,
			schedule: &domain.WeeklySchedule{
				EmployeeID: employee.ID,
				DayOfWeek:  1,
				StartTime:  "09:00",
				EndTime:    "14:00",
				BreakStart: ptr.Ptr(types.TimeString("12:00")),
				BreakEnd:   ptr.Ptr(types.TimeString("13:00")),
				IsActive:   true,
			},
		}

		slots := resolveEmployeeSlots(day, date, 60, 0, 30)

		starts := make([]string, 0, len(slots))
		for _, s := range slots {
			starts = append(starts, s.Start.Format("15:04"))
		}
		assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "13:00"}, starts)
	})
}
