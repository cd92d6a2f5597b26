package swipeaction

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/constants"
	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/internal"
	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
)

// Duration is a time.Duration that reads and writes as a string ("200ms") in settings files.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Settings is the file representation of a GeometryConfig.
//
//	slop = 8
//	platform_min_fling_velocity = 50.0
//	min_fling_velocity_scale = 16.0
//	max_fling_velocity = 8000.0
//	animation_duration = "200ms"
//	fade_out = false
//	fixed_backgrounds = false
//	dim_backgrounds = false
//	normal_swipe_fraction = 0.25
//	far_swipe_fraction = 0.5
type Settings struct {
	Slop                     int      `toml:"slop"`
	PlatformMinFlingVelocity float64  `toml:"platform_min_fling_velocity"`
	MinFlingVelocityScale    float64  `toml:"min_fling_velocity_scale"`
	MaxFlingVelocity         float64  `toml:"max_fling_velocity"`
	AnimationDuration        Duration `toml:"animation_duration"`
	FadeOut                  bool     `toml:"fade_out"`
	FixedBackgrounds         bool     `toml:"fixed_backgrounds"`
	DimBackgrounds           bool     `toml:"dim_backgrounds"`
	NormalSwipeFraction      float64  `toml:"normal_swipe_fraction"`
	FarSwipeFraction         float64  `toml:"far_swipe_fraction"`
}

// DefaultSettings returns the settings NewGeometryConfig starts from.
func DefaultSettings() Settings {
	return Settings{
		Slop:                     constants.DefaultSlop,
		PlatformMinFlingVelocity: constants.DefaultPlatformMinFling,
		MinFlingVelocityScale:    constants.DefaultMinFlingVelocityScale,
		MaxFlingVelocity:         constants.DefaultMaxFlingVelocity,
		AnimationDuration:        Duration(constants.DefaultAnimationDuration),
		NormalSwipeFraction:      constants.DefaultNormalSwipeFraction,
		FarSwipeFraction:         constants.DefaultFarSwipeFraction,
	}
}

// Validate checks every field without touching any config.
func (s Settings) Validate() error {
	if s.Slop < 0 {
		return invalidArgument("slop must not be negative, got %d", s.Slop)
	}
	if s.PlatformMinFlingVelocity < 0 || s.MinFlingVelocityScale <= 0 {
		return invalidArgument("fling velocity minimum %v x %v is not usable", s.PlatformMinFlingVelocity, s.MinFlingVelocityScale)
	}
	if minFling := s.PlatformMinFlingVelocity * s.MinFlingVelocityScale; minFling > s.MaxFlingVelocity {
		return invalidArgument("min fling velocity %v exceeds max %v", minFling, s.MaxFlingVelocity)
	}
	if s.AnimationDuration <= 0 {
		return invalidArgument("animation duration must be positive, got %s", time.Duration(s.AnimationDuration))
	}
	if err := checkFraction("normal swipe fraction", s.NormalSwipeFraction); err != nil {
		return err
	}
	if err := checkFraction("far swipe fraction", s.FarSwipeFraction); err != nil {
		return err
	}
	if s.FarSwipeFraction < s.NormalSwipeFraction {
		internal.GetInternalLogger().Warn("Far swipe fraction is below the normal fraction",
			"normal", s.NormalSwipeFraction, "far", s.FarSwipeFraction)
	}
	return nil
}

// Apply validates s and then stores every value. On error nothing is changed.
func (c *GeometryConfig) Apply(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	c.SetSlop(s.Slop)
	c.SetScaledMinFlingVelocity(s.PlatformMinFlingVelocity, s.MinFlingVelocityScale)
	c.SetMaxFlingVelocity(s.MaxFlingVelocity)
	c.SetAnimationDuration(time.Duration(s.AnimationDuration))
	c.SetFadeOut(s.FadeOut)
	c.SetFixedBackgrounds(s.FixedBackgrounds)
	c.SetDimBackgrounds(s.DimBackgrounds)
	c.normalSwipeFraction.Store(s.NormalSwipeFraction)
	c.farSwipeFraction.Store(s.FarSwipeFraction)
	return nil
}

// LoadSettingsFile decodes a TOML settings file on top of DefaultSettings.
// Keys that are not recognised are logged and ignored.
func LoadSettingsFile(path string) (Settings, error) {
	s := DefaultSettings()

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, NewInfrastructureError("load_settings", err)
	}

	for _, key := range md.Undecoded() {
		internal.GetInternalLogger().Warn("Unknown settings key", "path", path, "key", key.String())
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// WatchSettingsFile loads path into cfg and keeps applying it whenever the
// file is written, until ctx is cancelled. Reload failures are passed to
// onErr (if set) and leave the previous values in place.
func WatchSettingsFile(ctx context.Context, path string, cfg *GeometryConfig, onErr func(error)) error {
	s, err := LoadSettingsFile(path)
	if err != nil {
		return err
	}
	if err := cfg.Apply(s); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return NewInfrastructureError("watch_settings", err)
	}

	// Watch the directory so editors that replace the file are still seen
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return NewInfrastructureError("watch_settings", err)
	}

	report := func(err error) {
		internal.GetInternalLogger().Error("Settings reload failed", "path", path, "error", err)
		if onErr != nil {
			onErr(err)
		}
	}

	go func() {
		defer watcher.Close()

		var debounce *time.Timer
		for {
			select {
			case <-ctx.Done():
				if debounce != nil {
					debounce.Stop()
				}
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filepath.Base(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(constants.DefaultConfigDebounce, func() {
					s, err := LoadSettingsFile(path)
					if err == nil {
						err = cfg.Apply(s)
					}
					if err != nil {
						report(err)
						return
					}
					internal.GetInternalLogger().Debug("Settings reloaded", "path", path)
				})

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				report(NewInfrastructureError("watch_settings", err))
			}
		}
	}()

	return nil
}
