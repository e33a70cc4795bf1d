package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rgehrsitz/shiftpay/internal/domain"
)

// Keys of the three persisted values. They match the keys and JSON shape the
// browser version of the tracker used, so data moves between the two as-is.
const (
	KeyShifts      = "wt_shifts_v1"
	KeySettings    = "wt_settings_v1"
	KeyActiveClock = "wt_active_clock_v1"
)

// Repository reads and writes the tracker state on top of a Store.
type Repository struct {
	store Store
}

// NewRepository wraps a backend.
func NewRepository(s Store) *Repository {
	return &Repository{store: s}
}

// Close closes the underlying store.
func (r *Repository) Close() error {
	return r.store.Close()
}

// load decodes key into v, leaving v untouched when the key is missing.
func (r *Repository) load(ctx context.Context, key string, v any) error {
	data, err := r.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("corrupt value for %s: %w", key, err)
	}
	return nil
}

func (r *Repository) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return r.store.Put(ctx, key, data)
}

// LoadShifts returns all stored shifts; none stored yields an empty list.
func (r *Repository) LoadShifts(ctx context.Context) ([]domain.Shift, error) {
	var shifts []domain.Shift
	if err := r.load(ctx, KeyShifts, &shifts); err != nil {
		return nil, err
	}
	if shifts == nil {
		shifts = []domain.Shift{}
	}
	return shifts, nil
}

// SaveShifts replaces the stored shift list.
func (r *Repository) SaveShifts(ctx context.Context, shifts []domain.Shift) error {
	if shifts == nil {
		shifts = []domain.Shift{}
	}
	return r.save(ctx, KeyShifts, shifts)
}

// LoadSettings returns the stored settings merged over the defaults, so
// fields missing from an older document keep their default values.
func (r *Repository) LoadSettings(ctx context.Context) (domain.Settings, error) {
	settings := domain.DefaultSettings()
	if err := r.load(ctx, KeySettings, &settings); err != nil {
		return domain.DefaultSettings(), err
	}
	return settings, nil
}

// SaveSettings replaces the stored settings.
func (r *Repository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return r.save(ctx, KeySettings, settings)
}

// LoadClock returns the open clock, or nil when none is running.
func (r *Repository) LoadClock(ctx context.Context) (*domain.ActiveClock, error) {
	var clock *domain.ActiveClock
	if err := r.load(ctx, KeyActiveClock, &clock); err != nil {
		return nil, err
	}
	return clock, nil
}

// SaveClock stores the open clock; nil clears it (stored as JSON null).
func (r *Repository) SaveClock(ctx context.Context, clock *domain.ActiveClock) error {
	return r.save(ctx, KeyActiveClock, clock)
}
