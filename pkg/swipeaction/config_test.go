package swipeaction

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometryConfigDefaults(t *testing.T) {
	cfg := NewGeometryConfig()

	assert.Equal(t, 8, cfg.Slop())
	assert.Equal(t, 800.0, cfg.MinFlingVelocity())
	assert.Equal(t, 8000.0, cfg.MaxFlingVelocity())
	assert.Equal(t, 200*time.Millisecond, cfg.AnimationDuration())
	assert.Equal(t, 0.25, cfg.NormalSwipeFraction())
	assert.Equal(t, 0.5, cfg.FarSwipeFraction())
	assert.False(t, cfg.FadeOut())
	assert.False(t, cfg.FixedBackgrounds())
	assert.False(t, cfg.DimBackgrounds())
}

func TestGeometryConfigFractions(t *testing.T) {
	cfg := NewGeometryConfig()

	for _, f := range []float64{-0.1, 1.01, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, cfg.SetFarSwipeFraction(f), ErrInvalidArgument, "far %v", f)
		assert.ErrorIs(t, cfg.SetNormalSwipeFraction(f), ErrInvalidArgument, "normal %v", f)
	}
	assert.Equal(t, 0.5, cfg.FarSwipeFraction(), "rejected values leave config unchanged")
	assert.Equal(t, 0.25, cfg.NormalSwipeFraction())

	require.NoError(t, cfg.SetFarSwipeFraction(1))
	require.NoError(t, cfg.SetNormalSwipeFraction(0))
	assert.Equal(t, 1.0, cfg.FarSwipeFraction())
	assert.Equal(t, 0.0, cfg.NormalSwipeFraction())
}

func TestGeometryConfigScaledFling(t *testing.T) {
	cfg := NewGeometryConfig()
	cfg.SetScaledMinFlingVelocity(100, 4)
	assert.Equal(t, 400.0, cfg.MinFlingVelocity())
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *Settings)
	}{
		{name: "negative slop", modify: func(s *Settings) { s.Slop = -1 }},
		{name: "zero scale", modify: func(s *Settings) { s.MinFlingVelocityScale = 0 }},
		{name: "min above max", modify: func(s *Settings) { s.MaxFlingVelocity = 10 }},
		{name: "zero duration", modify: func(s *Settings) { s.AnimationDuration = 0 }},
		{name: "normal fraction", modify: func(s *Settings) { s.NormalSwipeFraction = 2 }},
		{name: "far fraction", modify: func(s *Settings) { s.FarSwipeFraction = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidArgument)

			cfg := NewGeometryConfig()
			assert.Error(t, cfg.Apply(s))
			assert.Equal(t, 8, cfg.Slop(), "failed apply changes nothing")
		})
	}

	assert.NoError(t, DefaultSettings().Validate())
}

func TestGeometryConfigApply(t *testing.T) {
	s := DefaultSettings()
	s.Slop = 12
	s.PlatformMinFlingVelocity = 40
	s.MinFlingVelocityScale = 10
	s.AnimationDuration = Duration(300 * time.Millisecond)
	s.FadeOut = true
	s.DimBackgrounds = true
	s.NormalSwipeFraction = 0.3
	s.FarSwipeFraction = 0.6

	cfg := NewGeometryConfig()
	require.NoError(t, cfg.Apply(s))

	assert.Equal(t, 12, cfg.Slop())
	assert.Equal(t, 400.0, cfg.MinFlingVelocity())
	assert.Equal(t, 300*time.Millisecond, cfg.AnimationDuration())
	assert.True(t, cfg.FadeOut())
	assert.True(t, cfg.DimBackgrounds())
	assert.False(t, cfg.FixedBackgrounds())
	assert.Equal(t, 0.3, cfg.NormalSwipeFraction())
	assert.Equal(t, 0.6, cfg.FarSwipeFraction())
}

func writeSettings(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swipe.toml")
	writeSettings(t, path, `
slop = 16
animation_duration = "250ms"
fixed_backgrounds = true
far_swipe_fraction = 0.7
unknown_key = "ignored"
`)

	s, err := LoadSettingsFile(path)
	require.NoError(t, err)

	assert.Equal(t, 16, s.Slop)
	assert.Equal(t, Duration(250*time.Millisecond), s.AnimationDuration)
	assert.True(t, s.FixedBackgrounds)
	assert.Equal(t, 0.7, s.FarSwipeFraction)
	assert.Equal(t, DefaultSettings().NormalSwipeFraction, s.NormalSwipeFraction, "missing keys keep defaults")
}

func TestLoadSettingsFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSettingsFile(filepath.Join(dir, "missing.toml"))
	assert.True(t, IsInfrastructureError(err))

	bad := filepath.Join(dir, "bad.toml")
	writeSettings(t, bad, `slop = "wide"`)
	_, err = LoadSettingsFile(bad)
	assert.True(t, IsInfrastructureError(err))

	invalid := filepath.Join(dir, "invalid.toml")
	writeSettings(t, invalid, `normal_swipe_fraction = 1.5`)
	_, err = LoadSettingsFile(invalid)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestWatchSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swipe.toml")
	writeSettings(t, path, "slop = 10\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := NewGeometryConfig()
	errs := make(chan error, 4)
	require.NoError(t, WatchSettingsFile(ctx, path, cfg, func(err error) { errs <- err }))
	assert.Equal(t, 10, cfg.Slop())

	writeSettings(t, path, "slop = 20\nfade_out = true\n")
	require.Eventually(t, func() bool { return cfg.Slop() == 20 }, 5*time.Second, 20*time.Millisecond)
	assert.True(t, cfg.FadeOut())

	writeSettings(t, path, "slop = -5\n")
	select {
	case err := <-errs:
		assert.ErrorIs(t, err, ErrInvalidArgument)
	case <-time.After(5 * time.Second):
		t.Fatal("reload error was not reported")
	}
	assert.Equal(t, 20, cfg.Slop(), "bad reload keeps previous values")
}

func TestWatchSettingsFileMissing(t *testing.T) {
	err := WatchSettingsFile(context.Background(), filepath.Join(t.TempDir(), "nope.toml"), NewGeometryConfig(), nil)
	assert.True(t, IsInfrastructureError(err))
}
