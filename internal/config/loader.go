package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadBounce loads bouncing balls configuration.
// Search order: customPath -> ~/.showcase/configs/bounce.yaml -> ./configs/bounce.yaml -> embedded default
func LoadBounce(customPath string) (BounceConfig, error) {
	return load("bounce.yaml", customPath, DefaultBounceConfig(), defaultBounceYAML, validateBounce)
}

// LoadRain loads glyph rain configuration.
// Search order: customPath -> ~/.showcase/configs/rain.yaml -> ./configs/rain.yaml -> embedded default
func LoadRain(customPath string) (RainConfig, error) {
	return load("rain.yaml", customPath, DefaultRainConfig(), defaultRainYAML, validateRain)
}

// LoadNetwork loads force network configuration.
// Search order: customPath -> ~/.showcase/configs/network.yaml -> ./configs/network.yaml -> embedded default
func LoadNetwork(customPath string) (NetworkConfig, error) {
	return load("network.yaml", customPath, DefaultNetworkConfig(), defaultNetworkYAML, validateNetwork)
}

// LoadMemory loads sequence memory configuration.
// Search order: customPath -> ~/.showcase/configs/memory.yaml -> ./configs/memory.yaml -> embedded default
func LoadMemory(customPath string) (MemoryConfig, error) {
	return load("memory.yaml", customPath, DefaultMemoryConfig(), defaultMemoryYAML, validateMemory)
}

// LoadMerge loads merge-tile configuration.
// Search order: customPath -> ~/.showcase/configs/merge.yaml -> ./configs/merge.yaml -> embedded default
func LoadMerge(customPath string) (MergeConfig, error) {
	return load("merge.yaml", customPath, DefaultMergeConfig(), defaultMergeYAML, validateMerge)
}

// load decodes the first config found over a copy of the defaults, so keys
// missing from a file keep their default values. Only a custom path that
// cannot be read or parsed is an error.
func load[T any](filename, customPath string, def T, embedded []byte, validate func(*T, T)) (T, error) {
	decode := func(data []byte) (T, error) {
		cfg := def
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return def, err
		}
		validate(&cfg, def)
		return cfg, nil
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return def, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return def, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(embedded)
	if err != nil {
		return def, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".showcase", "configs", filename)
}

func positive(v *float64, def float64) {
	if *v <= 0 {
		*v = def
	}
}

func positiveInt(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

func fraction(v *float64, def float64) {
	if *v < 0 || *v > 1 {
		*v = def
	}
}

func validateBounce(c *BounceConfig, d BounceConfig) {
	positiveInt(&c.Population, d.Population)
	if c.Physics.Gravity < 0 {
		c.Physics.Gravity = d.Physics.Gravity
	}
	// Friction scales velocity on every bounce; 1 would never settle.
	if c.Physics.Friction < 0 || c.Physics.Friction >= 1 {
		c.Physics.Friction = d.Physics.Friction
	}
	positive(&c.Spawn.MinRadius, d.Spawn.MinRadius)
	if c.Spawn.MaxRadius <= c.Spawn.MinRadius {
		c.Spawn.MaxRadius = c.Spawn.MinRadius + 1
	}
	positive(&c.Pointer.ImpulseRadius, d.Pointer.ImpulseRadius)
}

func validateRain(c *RainConfig, d RainConfig) {
	positiveInt(&c.Rate, d.Rate)
	positive(&c.GlyphSize, d.GlyphSize)
	if strings.TrimSpace(c.Alphabet) == "" {
		c.Alphabet = d.Alphabet
	}
	fraction(&c.Fade, d.Fade)
	fraction(&c.HeadChance, d.HeadChance)
	fraction(&c.ResetChance, d.ResetChance)
	positive(&c.RecycleDepth, d.RecycleDepth)
	if c.HighlightRadius < 0 {
		c.HighlightRadius = d.HighlightRadius
	}
}

func validateNetwork(c *NetworkConfig, d NetworkConfig) {
	positiveInt(&c.Population, d.Population)
	if c.MaxSpeed < 0 {
		c.MaxSpeed = d.MaxSpeed
	}
	positive(&c.MinRadius, d.MinRadius)
	if c.MaxRadius <= c.MinRadius {
		c.MaxRadius = c.MinRadius + 1
	}
	positive(&c.ConnectDist, d.ConnectDist)
	positive(&c.SpeedCap, d.SpeedCap)
	if c.Damping <= 0 || c.Damping >= 1 {
		c.Damping = d.Damping
	}
	switch strings.ToLower(c.Pointer.Mode) {
	case PointerAttract, PointerRepel:
		c.Pointer.Mode = strings.ToLower(c.Pointer.Mode)
	default:
		c.Pointer.Mode = d.Pointer.Mode
	}
	positive(&c.Pointer.Radius, d.Pointer.Radius)
	positive(&c.ClickRadius, d.ClickRadius)
}

func validateMemory(c *MemoryConfig, d MemoryConfig) {
	positiveInt(&c.StepInterval, d.StepInterval)
	positiveInt(&c.Highlight, d.Highlight)
	positiveInt(&c.Flash, d.Flash)
	if c.RoundPause < 0 {
		c.RoundPause = d.RoundPause
	}
	if c.Highlight > c.StepInterval {
		c.Highlight = c.StepInterval
	}
}

func validateMerge(c *MergeConfig, d MergeConfig) {
	if c.Size < MinMergeSize || c.Size > MaxMergeSize {
		c.Size = d.Size
	}
	if c.WinValue < 4 || c.WinValue&(c.WinValue-1) != 0 {
		c.WinValue = d.WinValue
	}
	fraction(&c.FourChance, d.FourChance)
	if c.StartingTiles < 1 || c.StartingTiles > c.Size*c.Size {
		c.StartingTiles = d.StartingTiles
	}
	if c.PopMillis < 0 {
		c.PopMillis = d.PopMillis
	}
}
