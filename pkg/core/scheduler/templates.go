package scheduler

import (
	"fmt"
	"time"

	"github.com/mhaglund/storeshift/pkg/core/clock"
	"github.com/mhaglund/storeshift/pkg/core/model"
)

// Window offsets in minutes, all relative to the day's open/close times.
// No template starts before open-30m or ends after close+30m.
const (
	openingLeadMinutes   = 30  // Opening shift starts this long before open
	openingSpanMinutes   = 120 // Opening shift total length
	morningStartOffset   = 60  // Morning peak starts this long after open
	morningSpanMinutes   = 240
	eveningStartToClose  = 240 // Evening peak starts this long before close
	closingLeadMinutes   = 90  // Closing shift starts this long before close
	closingTrailMinutes  = 30  // Closing shift runs this long past close
	afternoonEndToClose  = 240 // Afternoon window ends this long before close
	afternoonStartOffset = 300 // Afternoon window starts this long after open
)

// DayHours describes one weekday's store hours
type DayHours struct {
	Open   string // Clock format HH:MM
	Close  string
	Closed bool
}

// WeekHours is the declarative store-hours table, one entry per weekday
type WeekHours map[time.Weekday]DayHours

// longDay reports whether the weekday gets an evening peak window
func longDay(day time.Weekday) bool {
	return day == time.Thursday || day == time.Friday ||
		day == time.Saturday || day == time.Sunday
}

func weekend(day time.Weekday) bool {
	return day == time.Saturday || day == time.Sunday
}

// busyDay reports whether closing gets an extra optional slot
func busyDay(day time.Weekday) bool {
	return day == time.Friday || day == time.Saturday
}

// TemplatesFor derives the ordered shift templates for one open weekday.
// Windows are anchored purely by fixed offsets from the day's open and
// close times; degenerate windows on short days are omitted.
func TemplatesFor(day time.Weekday, hours DayHours) ([]model.ShiftTemplate, error) {
	if hours.Closed {
		return nil, nil
	}

	open, err := clock.Minutes(hours.Open)
	if err != nil {
		return nil, fmt.Errorf("store hours for %s: %w", day, err)
	}
	closeAt, err := clock.Minutes(hours.Close)
	if err != nil {
		return nil, fmt.Errorf("store hours for %s: %w", day, err)
	}
	if closeAt <= open {
		return nil, fmt.Errorf("store hours for %s: close %s not after open %s", day, hours.Close, hours.Open)
	}

	var templates []model.ShiftTemplate

	add := func(start, end int, cat model.ShiftCategory, minW, maxW int, prio model.Priority) {
		if end <= start {
			return
		}
		templates = append(templates, model.ShiftTemplate{
			Weekday:    day,
			Start:      clock.FromMinutes(start),
			End:        clock.FromMinutes(end),
			Category:   cat,
			MinWorkers: minW,
			MaxWorkers: maxW,
			Priority:   prio,
		})
	}

	// Opening: one worker preparing the store before and through open
	add(open-openingLeadMinutes, open-openingLeadMinutes+openingSpanMinutes,
		model.CategoryOpening, 1, 1, model.PriorityHigh)

	// Morning peak: heavier minimums on weekends. Capped so it never runs
	// into the closing window on short days.
	morningStart := open + morningStartOffset
	morningEnd := min(open+morningStartOffset+morningSpanMinutes, closeAt-closingLeadMinutes)
	morningMin, morningPrio := 1, model.PriorityMedium
	if weekend(day) {
		morningMin, morningPrio = 2, model.PriorityHigh
	}
	add(morningStart, morningEnd, model.CategoryRegular, morningMin, 3, morningPrio)

	// Afternoon: only exists when the day is long enough to leave a
	// non-degenerate window between the morning and evening bands
	add(open+afternoonStartOffset, closeAt-afternoonEndToClose,
		model.CategoryRegular, 1, 2, model.PriorityMedium)

	// Evening peak on long days
	if longDay(day) {
		eveningMin := 1
		if weekend(day) {
			eveningMin = 2
		}
		add(closeAt-eveningStartToClose, closeAt-closingLeadMinutes,
			model.CategoryRegular, eveningMin, 2, model.PriorityHigh)
	}

	// Closing: always two workers, extra optional slot on busy days
	closingMax := 2
	if busyDay(day) {
		closingMax = 3
	}
	add(closeAt-closingLeadMinutes, closeAt+closingTrailMinutes,
		model.CategoryClosing, 2, closingMax, model.PriorityHigh)

	return templates, nil
}

// WeekTemplates derives templates for every open day of the week
func WeekTemplates(week WeekHours) (map[time.Weekday][]model.ShiftTemplate, error) {
	out := make(map[time.Weekday][]model.ShiftTemplate)
	for day, hours := range week {
		templates, err := TemplatesFor(day, hours)
		if err != nil {
			return nil, err
		}
		if len(templates) > 0 {
			out[day] = templates
		}
	}
	return out, nil
}
