// Package tracker implements the user-facing flows: saving, editing and
// deleting shifts, the clock-in/clock-out timer, and the weekly view.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rgehrsitz/shiftpay/internal/calculation"
	"github.com/rgehrsitz/shiftpay/internal/config"
	"github.com/rgehrsitz/shiftpay/internal/domain"
	"github.com/rgehrsitz/shiftpay/internal/store"
	"github.com/rgehrsitz/shiftpay/pkg/dateutil"
)

var (
	ErrMissingFields = errors.New("date, start time and end time are required")
	ErrInvalidShift  = errors.New("shift date or times are not valid")
	ErrShiftOverlap  = errors.New("shift overlaps with an existing entry")
	ErrShiftNotFound = errors.New("shift not found")
	ErrClockRunning  = errors.New("a shift is already clocked in")
	ErrNoActiveClock = errors.New("no shift is clocked in")
)

// UserMessage returns the sentence shown to the user for a tracker error.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "Please fill in all required fields."
	case errors.Is(err, ErrShiftOverlap):
		return "This shift overlaps with an existing entry."
	}
	return err.Error()
}

// Service owns the persisted state and enforces the save rules.
type Service struct {
	repo   *store.Repository
	engine *calculation.CalculationEngine
	newID  func() string
	logger calculation.Logger
}

// NewService creates a service over repo using engine for stats.
func NewService(repo *store.Repository, engine *calculation.CalculationEngine) *Service {
	return &Service{
		repo:   repo,
		engine: engine,
		newID:  uuid.NewString,
		logger: calculation.NopLogger{},
	}
}

// SetLogger replaces the logger; nil restores the no-op logger. The engine
// shares it.
func (s *Service) SetLogger(l calculation.Logger) {
	if l == nil {
		l = calculation.NopLogger{}
	}
	s.logger = l
	s.engine.SetLogger(l)
}

// Engine exposes the calculation engine.
func (s *Service) Engine() *calculation.CalculationEngine {
	return s.engine
}

func normalizeShift(sh domain.Shift) (domain.Shift, error) {
	if !sh.HasRequiredFields() {
		return sh, ErrMissingFields
	}
	sh.StartTime = dateutil.NormalizeTimeOfDay(sh.StartTime)
	sh.EndTime = dateutil.NormalizeTimeOfDay(sh.EndTime)
	if !calculation.RangeOf(sh).Valid {
		return sh, fmt.Errorf("%w: %s %s-%s", ErrInvalidShift, sh.Date, sh.StartTime, sh.EndTime)
	}
	return sh, nil
}

func overlapError(hit domain.Shift) error {
	return fmt.Errorf("%w (%s %s-%s)", ErrShiftOverlap, hit.Date, hit.StartTime, hit.EndTime)
}

// AddShift validates and stores a new shift, assigning it an ID.
func (s *Service) AddShift(ctx context.Context, sh domain.Shift) (domain.Shift, error) {
	sh, err := normalizeShift(sh)
	if err != nil {
		return domain.Shift{}, err
	}
	shifts, err := s.repo.LoadShifts(ctx)
	if err != nil {
		return domain.Shift{}, err
	}
	if hit, ok := calculation.FindOverlap(shifts, sh, ""); ok {
		return domain.Shift{}, overlapError(hit)
	}
	sh.ID = s.newID()
	if err := s.repo.SaveShifts(ctx, append(shifts, sh)); err != nil {
		return domain.Shift{}, err
	}
	s.logger.Infof("added shift %s on %s", sh.ID, sh.Date)
	return sh, nil
}

// UpdateShift replaces the stored shift with the same ID. The shift being
// edited never conflicts with itself.
func (s *Service) UpdateShift(ctx context.Context, sh domain.Shift) (domain.Shift, error) {
	sh, err := normalizeShift(sh)
	if err != nil {
		return domain.Shift{}, err
	}
	shifts, err := s.repo.LoadShifts(ctx)
	if err != nil {
		return domain.Shift{}, err
	}
	idx := indexOf(shifts, sh.ID)
	if idx < 0 {
		return domain.Shift{}, fmt.Errorf("%w: %s", ErrShiftNotFound, sh.ID)
	}
	if hit, ok := calculation.FindOverlap(shifts, sh, sh.ID); ok {
		return domain.Shift{}, overlapError(hit)
	}
	shifts[idx] = sh
	if err := s.repo.SaveShifts(ctx, shifts); err != nil {
		return domain.Shift{}, err
	}
	return sh, nil
}

// DeleteShift removes the shift with the given ID.
func (s *Service) DeleteShift(ctx context.Context, id string) error {
	shifts, err := s.repo.LoadShifts(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(shifts, id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrShiftNotFound, id)
	}
	return s.repo.SaveShifts(ctx, append(shifts[:idx], shifts[idx+1:]...))
}

// GetShift returns the shift with the given ID.
func (s *Service) GetShift(ctx context.Context, id string) (domain.Shift, error) {
	shifts, err := s.repo.LoadShifts(ctx)
	if err != nil {
		return domain.Shift{}, err
	}
	idx := indexOf(shifts, id)
	if idx < 0 {
		return domain.Shift{}, fmt.Errorf("%w: %s", ErrShiftNotFound, id)
	}
	return shifts[idx], nil
}

// ListShifts returns every stored shift in storage order.
func (s *Service) ListShifts(ctx context.Context) ([]domain.Shift, error) {
	return s.repo.LoadShifts(ctx)
}

// ImportShifts appends parsed shifts with fresh IDs. Imports are not checked
// for overlap.
func (s *Service) ImportShifts(ctx context.Context, parsed []domain.Shift) ([]domain.Shift, error) {
	if len(parsed) == 0 {
		return nil, nil
	}
	shifts, err := s.repo.LoadShifts(ctx)
	if err != nil {
		return nil, err
	}
	added := make([]domain.Shift, 0, len(parsed))
	for _, sh := range parsed {
		sh.ID = s.newID()
		added = append(added, sh)
	}
	if err := s.repo.SaveShifts(ctx, append(shifts, added...)); err != nil {
		return nil, err
	}
	s.logger.Infof("imported %d shifts", len(added))
	return added, nil
}

func indexOf(shifts []domain.Shift, id string) int {
	for i, sh := range shifts {
		if sh.ID == id {
			return i
		}
	}
	return -1
}

// DayGroup is the shifts of one calendar date.
type DayGroup struct {
	Date   string
	Shifts []domain.Shift
}

// GroupByDate groups shifts by date, newest date first. Within a day the
// input order is kept.
func GroupByDate(shifts []domain.Shift) []DayGroup {
	index := map[string]int{}
	var groups []DayGroup
	for _, sh := range shifts {
		i, ok := index[sh.Date]
		if !ok {
			i = len(groups)
			index[sh.Date] = i
			groups = append(groups, DayGroup{Date: sh.Date})
		}
		groups[i].Shifts = append(groups[i].Shifts, sh)
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Date > groups[j].Date })
	return groups
}

// Settings returns the stored settings merged over defaults.
func (s *Service) Settings(ctx context.Context) (domain.Settings, error) {
	return s.repo.LoadSettings(ctx)
}

// UpdateSettings validates and stores settings.
func (s *Service) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	if err := config.ValidateStruct(&settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return s.repo.SaveSettings(ctx, settings)
}

// WeekOf returns the week containing t under the configured week start day.
func WeekOf(t time.Time, settings domain.Settings) (time.Time, time.Time) {
	return dateutil.WeekRange(t, time.Weekday(settings.WeekStartDay))
}
