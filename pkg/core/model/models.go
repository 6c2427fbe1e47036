package model

import "time"

type ShiftCategory string

const (
	CategoryOpening ShiftCategory = "opening"
	CategoryClosing ShiftCategory = "closing"
	CategoryRegular ShiftCategory = "regular"
)

func (c ShiftCategory) IsValid() bool {
	return c == CategoryOpening || c == CategoryClosing || c == CategoryRegular
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type HoursStatus string

const (
	StatusUnder  HoursStatus = "under"
	StatusTarget HoursStatus = "target"
	StatusOver   HoursStatus = "over"
)

// Worker represents a store worker
type Worker struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	WorkPercent   int // 0-100, percentage of the full-time weekly baseline
	AvailableDays []time.Weekday
	Holidays      []string // Date format, worker is never scheduled on these
	Active        bool
}

// CanWorkOn reports whether the weekday is in the worker's availability pattern
func (w Worker) CanWorkOn(day time.Weekday) bool {
	for _, d := range w.AvailableDays {
		if d == day {
			return true
		}
	}
	return false
}

// OnHoliday reports whether the date is in the worker's holiday set
func (w Worker) OnHoliday(date string) bool {
	for _, h := range w.Holidays {
		if h == date {
			return true
		}
	}
	return false
}

// ShiftTemplate is a slot blueprint derived from store hours.
// Templates are regenerated per run and never persisted.
type ShiftTemplate struct {
	Weekday    time.Weekday
	Start      string // Clock format HH:MM
	End        string
	Category   ShiftCategory
	MinWorkers int
	MaxWorkers int
	Priority   Priority
}

// Shift represents one slot of a generated schedule
type Shift struct {
	ID       string
	Date     string // Date format
	Start    string // Clock format HH:MM
	End      string
	Category ShiftCategory
	Required bool
	WorkerID string // Empty if unassigned
}

// Assigned reports whether a worker holds this shift
func (s Shift) Assigned() bool {
	return s.WorkerID != ""
}

// Schedule represents one generated week of shifts
type Schedule struct {
	ID        string
	WeekStart string // Date format, always a Monday
	Shifts    []Shift
	Generated bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShiftGap is a break between two of a worker's shifts on the same day
type ShiftGap struct {
	Start string
	End   string
	Hours float64
}

// ConsolidatedWorkerShift merges one worker's shifts on one date into a
// single continuous work block
type ConsolidatedWorkerShift struct {
	WorkerID   string
	WorkerName string
	Date       string
	Start      string
	End        string
	TotalHours float64 // Span of the block, not the sum of its parts
	Categories []ShiftCategory
	Gaps       []ShiftGap
}

// DaySummary is the worker-centric view of one day of a schedule
type DaySummary struct {
	Date               string
	Weekday            time.Weekday
	Blocks             []ConsolidatedWorkerShift
	UnassignedRequired int
	ThinPeakCoverage   bool
}

// WeeklyHoursEntry reports one worker's scheduled hours against target
type WeeklyHoursEntry struct {
	WorkerID       string
	ScheduledHours float64
	TargetHours    float64
	Status         HoursStatus
}

// ScheduleStats aggregates a schedule's shift list
type ScheduleStats struct {
	TotalShifts       int
	AssignedShifts    int
	UnassignedShifts  int
	TotalHours        float64
	WorkerCount       int
	AvgHoursPerWorker float64
}
