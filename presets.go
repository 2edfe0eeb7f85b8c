package tweens

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// presetEntry is one [presets.<name>] table of a preset file.
type presetEntry struct {
	Formula   string `koanf:"formula"`    // registered formula name, default Linear
	Loops     int    `koanf:"loops"`      // 0 or 1 plays once, -1 loops forever
	LoopType  string `koanf:"loop_type"`  // "reset", "mirror" or "continue"
	Direction string `koanf:"direction"`  // "forward" or "backward"
	LoopReset string `koanf:"loop_reset"` // sequences only: "rewind" or "skip"
}

// Presets holds named playback configurations loaded from TOML files:
//
//	[presets.pulse]
//	formula = "InOutSine"
//	loops = -1
//	loop_type = "mirror"
type Presets struct {
	configs map[string]SequenceConfig
}

// LoadPresets reads the given TOML files in order; later files override
// earlier ones key by key. Missing files are skipped.
func LoadPresets(paths ...string) (*Presets, error) {
	k := koanf.New(".")
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("tweens: load presets %s: %w", path, err)
		}
	}

	var raw map[string]presetEntry
	if err := k.Unmarshal("presets", &raw); err != nil {
		return nil, fmt.Errorf("tweens: decode presets: %w", err)
	}

	ps := &Presets{configs: make(map[string]SequenceConfig, len(raw))}
	for name, e := range raw {
		cfg, err := e.config()
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		ps.configs[name] = cfg
	}
	return ps, nil
}

func (e presetEntry) config() (SequenceConfig, error) {
	var cfg SequenceConfig
	cfg.Formula = Linear
	if e.Formula != "" {
		f, ok := FormulaByName(e.Formula)
		if !ok {
			return cfg, invalidArgf("unknown formula %q", e.Formula)
		}
		cfg.Formula = f
	}
	cfg.Loops = e.Loops
	var err error
	if cfg.LoopType, err = ParseLoopType(e.LoopType); err != nil {
		return cfg, err
	}
	if cfg.Direction, err = ParseDirection(e.Direction); err != nil {
		return cfg, err
	}
	if cfg.LoopReset, err = ParseLoopResetBehaviour(e.LoopReset); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Names returns the preset names, sorted.
func (ps *Presets) Names() []string {
	names := make([]string, 0, len(ps.configs))
	for name := range ps.configs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Config returns the tween configuration of a preset.
func (ps *Presets) Config(name string) (Config, bool) {
	cfg, ok := ps.configs[name]
	return cfg.Config, ok
}

// SequenceConfig returns the sequence configuration of a preset.
func (ps *Presets) SequenceConfig(name string) (SequenceConfig, bool) {
	cfg, ok := ps.configs[name]
	return cfg, ok
}

// ParseLoopType parses "reset", "mirror" or "continue", case-insensitively.
// The empty string is LoopReset.
func ParseLoopType(s string) (LoopType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reset":
		return LoopReset, nil
	case "mirror":
		return LoopMirror, nil
	case "continue":
		return LoopContinue, nil
	}
	return LoopReset, invalidArgf("loop type %q", s)
}

// ParseDirection parses "forward" or "backward". The empty string is Forward.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "forward":
		return Forward, nil
	case "backward":
		return Backward, nil
	}
	return Forward, invalidArgf("direction %q", s)
}

// ParseLoopResetBehaviour parses "rewind" or "skip". The empty string is
// ResetRewindChildren.
func ParseLoopResetBehaviour(s string) (LoopResetBehaviour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rewind":
		return ResetRewindChildren, nil
	case "skip":
		return ResetSkipChildren, nil
	}
	return ResetRewindChildren, invalidArgf("loop reset behaviour %q", s)
}
