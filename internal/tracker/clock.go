package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/rgehrsitz/shiftpay/internal/calculation"
	"github.com/rgehrsitz/shiftpay/internal/domain"
	"github.com/rgehrsitz/shiftpay/pkg/dateutil"
)

// ActiveClock returns the open clock, or nil.
func (s *Service) ActiveClock(ctx context.Context) (*domain.ActiveClock, error) {
	return s.repo.LoadClock(ctx)
}

// ClockIn starts the timer at now.
func (s *Service) ClockIn(ctx context.Context, now time.Time) (domain.ActiveClock, error) {
	current, err := s.repo.LoadClock(ctx)
	if err != nil {
		return domain.ActiveClock{}, err
	}
	if current != nil {
		return domain.ActiveClock{}, fmt.Errorf("%w since %s %s", ErrClockRunning, current.Date, current.Time)
	}
	clock := calculation.ClockIn(now)
	if err := s.repo.SaveClock(ctx, &clock); err != nil {
		return domain.ActiveClock{}, err
	}
	s.logger.Infof("clocked in at %s %s", clock.Date, clock.Time)
	return clock, nil
}

// ClockOut stops the timer and stores the resulting shift. The shift is
// saved before the clock is cleared, so a failure never loses the session.
func (s *Service) ClockOut(ctx context.Context, now time.Time) (domain.Shift, error) {
	clock, err := s.repo.LoadClock(ctx)
	if err != nil {
		return domain.Shift{}, err
	}
	if clock == nil {
		return domain.Shift{}, ErrNoActiveClock
	}
	shifts, err := s.repo.LoadShifts(ctx)
	if err != nil {
		return domain.Shift{}, err
	}
	sh := calculation.ClockOut(*clock, now, s.newID())
	if err := s.repo.SaveShifts(ctx, append(shifts, sh)); err != nil {
		return domain.Shift{}, err
	}
	if err := s.repo.SaveClock(ctx, nil); err != nil {
		return domain.Shift{}, err
	}
	s.logger.Infof("clocked out: %s %s-%s", sh.Date, sh.StartTime, sh.EndTime)
	return sh, nil
}

// EditClock moves the start of the open clock.
func (s *Service) EditClock(ctx context.Context, date, clockTime string) (domain.ActiveClock, error) {
	clock, err := s.repo.LoadClock(ctx)
	if err != nil {
		return domain.ActiveClock{}, err
	}
	if clock == nil {
		return domain.ActiveClock{}, ErrNoActiveClock
	}
	if date == "" || clockTime == "" {
		return domain.ActiveClock{}, ErrMissingFields
	}
	clockTime = dateutil.NormalizeTimeOfDay(clockTime)
	if _, err := dateutil.ParseDateTime(date, clockTime, time.UTC); err != nil {
		return domain.ActiveClock{}, fmt.Errorf("%w: %v", ErrInvalidShift, err)
	}
	clock.Date = date
	clock.Time = clockTime
	if err := s.repo.SaveClock(ctx, clock); err != nil {
		return domain.ActiveClock{}, err
	}
	return *clock, nil
}
