package domain

import (
	"slices"
	"time"
)

type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftNight     Shift = "night"
)

var Shifts = []Shift{ShiftMorning, ShiftAfternoon, ShiftNight}

func (s Shift) Valid() bool { return slices.Contains(Shifts, s) }

type Quality string

const (
	QualityA Quality = "A"
	QualityB Quality = "B"
	QualityC Quality = "C"
)

var Qualities = []Quality{QualityA, QualityB, QualityC}

func (q Quality) Valid() bool { return slices.Contains(Qualities, q) }

// DateLayout is the calendar-day format production dates are stored in.
const DateLayout = "2006-01-02"

type ProductionRecord struct {
	ID            string
	ProductTypeID string
	ColorID       string
	Quantity      int
	Date          time.Time // calendar day, UTC midnight
	Shift         Shift
	Operator      string
	Notes         string
	Quality       Quality
	CreatedBy     string // session subject
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Filled by list queries.
	ProductTypeName string
	ColorName       string
	ColorHex        string
}

// ProductionSummary aggregates the records for the dashboard.
type ProductionSummary struct {
	TodayTotal       int
	WeeklyTotal      int
	RecordCount      int
	ProductTypeCount int
	ByProductType    []NamedQuantity
	ByShift          map[Shift]int
	ByQuality        map[Quality]int
}

type NamedQuantity struct {
	Name     string
	Quantity int
}
