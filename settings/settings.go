package settings

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oomph-ac/robobattle/oerror"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Settings contains everything that can be configured for a battle. Settings are read once before a
// battle starts and never change while it runs.
type Settings struct {
	Arena struct {
		// Width and Height are the size of the arena.
		Width  float64 `toml:"Width" yaml:"Width"`
		Height float64 `toml:"Height" yaml:"Height"`
	} `toml:"Arena" yaml:"Arena"`
	Robot struct {
		// MaxSpeed is the speed, in units per second, that robot speeds are clamped to.
		MaxSpeed float64 `toml:"MaxSpeed" yaml:"MaxSpeed"`
	} `toml:"Robot" yaml:"Robot"`
	Combat struct {
		// AttackAngle is the full width, in radians, of the cone an attack hits targets in.
		AttackAngle float64 `toml:"AttackAngle" yaml:"AttackAngle"`
		// AttackDamage is the damage an attack deals at point blank range.
		AttackDamage float64 `toml:"AttackDamage" yaml:"AttackDamage"`
	} `toml:"Combat" yaml:"Combat"`
	Simulation struct {
		// MaxTurns is the amount of turns after which a battle ends in a stalemate.
		MaxTurns int `toml:"MaxTurns" yaml:"MaxTurns"`
		// TurnIntervalMS is the pause between turns in milliseconds. It only affects pacing.
		TurnIntervalMS int `toml:"TurnIntervalMS" yaml:"TurnIntervalMS"`
		// TimeStepMS is the simulated time that passes each turn, in milliseconds. When zero, the wall
		// clock is used instead.
		TimeStepMS int `toml:"TimeStepMS" yaml:"TimeStepMS"`
	} `toml:"Simulation" yaml:"Simulation"`
	Log struct {
		// Level is the logrus level name to log at, such as "info" or "debug".
		Level string `toml:"Level" yaml:"Level"`
	} `toml:"Log" yaml:"Log"`
	// Robots is the roster of controller names used when none are passed on the command line.
	Robots []string `toml:"Robots" yaml:"Robots"`
}

// DefaultSettings returns the default settings for a battle.
func DefaultSettings() Settings {
	s := Settings{}
	s.Arena.Width = 1000
	s.Arena.Height = 1000

	s.Robot.MaxSpeed = 50

	s.Combat.AttackAngle = math.Pi / 6
	s.Combat.AttackDamage = 2000

	s.Simulation.MaxTurns = 1000
	s.Simulation.TurnIntervalMS = 20
	s.Simulation.TimeStepMS = 100

	s.Log.Level = "info"
	s.Robots = []string{"bots.Hunter", "bots.Rammer", "bots.Spinner"}
	return s
}

// TurnInterval returns the pause between turns.
func (s Settings) TurnInterval() time.Duration {
	return time.Duration(s.Simulation.TurnIntervalMS) * time.Millisecond
}

// TimeStep returns the simulated time per turn, or zero if the wall clock should be used.
func (s Settings) TimeStep() time.Duration {
	return time.Duration(s.Simulation.TimeStepMS) * time.Millisecond
}

// Validate returns an error if any of the settings are out of range.
func (s Settings) Validate() error {
	switch {
	case !(s.Arena.Width > 0) || !(s.Arena.Height > 0) || math.IsInf(s.Arena.Width, 0) || math.IsInf(s.Arena.Height, 0):
		return oerror.New("arena size must be positive and finite, got %vx%v", s.Arena.Width, s.Arena.Height)
	case !(s.Robot.MaxSpeed >= 0) || math.IsInf(s.Robot.MaxSpeed, 0):
		return oerror.New("max speed must be non-negative and finite, got %v", s.Robot.MaxSpeed)
	case !(s.Combat.AttackAngle > 0) || s.Combat.AttackAngle > 2*math.Pi:
		return oerror.New("attack angle must be in (0, 2π], got %v", s.Combat.AttackAngle)
	case !(s.Combat.AttackDamage >= 0) || math.IsInf(s.Combat.AttackDamage, 0):
		return oerror.New("attack damage must be non-negative and finite, got %v", s.Combat.AttackDamage)
	case s.Simulation.MaxTurns <= 0:
		return oerror.New("max turns must be positive, got %d", s.Simulation.MaxTurns)
	case s.Simulation.TurnIntervalMS < 0:
		return oerror.New("turn interval must not be negative, got %d", s.Simulation.TurnIntervalMS)
	case s.Simulation.TimeStepMS < 0:
		return oerror.New("time step must not be negative, got %d", s.Simulation.TimeStepMS)
	}
	return nil
}

// format is a settings file encoding.
type format struct {
	marshal   func(v any) ([]byte, error)
	unmarshal func(data []byte, v any) error
}

var (
	tomlFormat = format{marshal: toml.Marshal, unmarshal: toml.Unmarshal}
	yamlFormat = format{marshal: yaml.Marshal, unmarshal: yaml.Unmarshal}
)

// formatOf picks the encoding of a settings file by its extension. Anything that isn't YAML is TOML.
func formatOf(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlFormat
	}
	return tomlFormat
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		return oerror.New("settings file already exists")
	}
	data, err := formatOf(path).marshal(DefaultSettings())
	if err != nil {
		return oerror.New("failed encoding default settings: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return oerror.New("failed creating settings file: %v", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist
// or holds invalid settings. Fields missing from the file keep their default values.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, oerror.New("error reading settings: %v", err)
	}

	s := DefaultSettings()
	if err = formatOf(path).unmarshal(data, &s); err != nil {
		return Settings{}, oerror.New("error decoding settings: %v", err)
	}
	if err = s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}
