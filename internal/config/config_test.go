package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maenko-m/meeting-management-backend/internal/schedule"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://test")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 24, cfg.RecurrenceHorizonMonths)
	assert.Equal(t, schedule.DefaultMaxOccurrences, cfg.RecurrenceMaxInstances)
	assert.Equal(t, schedule.MustTimeOfDay("06:00"), cfg.TimelineWindowStart)
	assert.Equal(t, schedule.MustTimeOfDay("22:00"), cfg.TimelineWindowEnd)
	assert.Equal(t, 10.0, cfg.TimelineMargin)
	assert.False(t, cfg.IsProduction)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RECURRENCE_HORIZON_MONTHS", "6")
	t.Setenv("TIMELINE_WINDOW_START", "08:00")
	t.Setenv("TIMELINE_WINDOW_END", "20:00")
	t.Setenv("TIMELINE_MARGIN", "16")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.RecurrenceHorizonMonths)

	w := cfg.TimelineWindow()
	assert.Equal(t, schedule.MustTimeOfDay("08:00"), w.Start)
	assert.Equal(t, schedule.MustTimeOfDay("20:00"), w.End)
	assert.Equal(t, 16.0, w.Margin)
}

func TestLoadRejectsInvertedWindow(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TIMELINE_WINDOW_START", "22:00")
	t.Setenv("TIMELINE_WINDOW_END", "06:00")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load()
	require.Error(t, err)
}
