// Package settings owns the application-wide timer durations and the terms
// acceptance flag. Values are read from storage once at startup and served
// from memory afterwards; updates are persisted before they become visible.
package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/julianstephens/pomolit/internal/constants"
	"github.com/julianstephens/pomolit/internal/errors"
	"github.com/julianstephens/pomolit/internal/logger"
	"github.com/julianstephens/pomolit/internal/models"
)

// Store is the persistence the provider needs.
type Store interface {
	GetSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, settings models.Settings) error
}

// Durations is a requested change of timer lengths in minutes. A zero field
// falls back to that field's default.
type Durations struct {
	Work      int `json:"work_duration"`
	Break     int `json:"break_duration"`
	LongBreak int `json:"long_break_duration"`
}

type Provider struct {
	store Store

	mu      sync.RWMutex
	current models.Settings
}

func New(store Store) *Provider {
	return &Provider{
		store:   store,
		current: models.DefaultSettings(),
	}
}

// Load reads the settings row set, creating it with defaults when absent.
func (p *Provider) Load(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, err := p.store.GetSettings(ctx)
	if err != nil {
		if !errors.IsNotFound(err) {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		s = models.DefaultSettings()
		if err := p.store.SaveSettings(ctx, s); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
		logger.Info("Created default settings")
	}

	clamped := Normalize(Durations{Work: s.WorkDuration, Break: s.BreakDuration, LongBreak: s.LongBreakDuration})
	s.WorkDuration, s.BreakDuration, s.LongBreakDuration = clamped.Work, clamped.Break, clamped.LongBreak

	p.current = s
	return nil
}

// Current returns a copy of the settings in effect right now.
func (p *Provider) Current() models.Settings {
	p.mu.RLock()
	defer p.mu.RUnlock()

	s := p.current
	if s.TermsAcceptedAt != nil {
		t := *s.TermsAcceptedAt
		s.TermsAcceptedAt = &t
	}
	return s
}

// Update clamps the requested durations, persists them and swaps them in.
func (p *Provider) Update(ctx context.Context, d Durations) (models.Settings, error) {
	d = Normalize(d)

	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.current
	next.WorkDuration = d.Work
	next.BreakDuration = d.Break
	next.LongBreakDuration = d.LongBreak

	if err := p.store.SaveSettings(ctx, next); err != nil {
		return models.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	p.current = next

	logger.Debug("Settings updated", "work", d.Work, "break", d.Break, "long_break", d.LongBreak)
	return next, nil
}

func (p *Provider) AcceptTerms(ctx context.Context, now time.Time) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.current
	at := now.UTC()
	next.TermsAccepted = true
	next.TermsAcceptedAt = &at

	if err := p.store.SaveSettings(ctx, next); err != nil {
		return fmt.Errorf("failed to save terms acceptance: %w", err)
	}
	p.current = next
	return nil
}

func (p *Provider) TermsAccepted() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current.TermsAccepted
}

// Normalize replaces zero fields with defaults and clamps every field into range.
func Normalize(d Durations) Durations {
	return Durations{
		Work:      normalize(d.Work, constants.DefaultWorkDuration, constants.MinWorkDuration, constants.MaxWorkDuration),
		Break:     normalize(d.Break, constants.DefaultBreakDuration, constants.MinBreakDuration, constants.MaxBreakDuration),
		LongBreak: normalize(d.LongBreak, constants.DefaultLongBreakDuration, constants.MinLongBreakDuration, constants.MaxLongBreakDuration),
	}
}

func normalize(value, fallback, lo, hi int) int {
	if value == 0 {
		value = fallback
	}
	return Clamp(value, lo, hi)
}

// Clamp limits value to [lo, hi].
func Clamp(value, lo, hi int) int {
	return max(lo, min(value, hi))
}

// ParseDuration parses a minutes value from user input, returning fallback
// when it is empty or not an integer. Range checks happen in Normalize.
func ParseDuration(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return n
}
