package config

import (
	_ "embed"
)

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

//go:embed defaults/rain.yaml
var defaultRainYAML []byte

//go:embed defaults/network.yaml
var defaultNetworkYAML []byte

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

//go:embed defaults/merge.yaml
var defaultMergeYAML []byte

// Katakana block, then digits, then Latin capitals.
const defaultAlphabet = "アァカサタナハマヤャラワガザダバパイィキシチニヒミリヰギジヂビピウゥクスツヌフムユュルグズブヅプエェケセテネヘメレヱゲゼデベペオォコソトノホモヨョロヲゴゾドボポヴッン" +
	"0123456789" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultBounceConfig returns the default bouncing balls configuration.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{
		Population: 15,
		Physics: BouncePhysics{
			Gravity:  0.5,
			Friction: 0.8,
		},
		Spawn: BounceSpawn{
			MinRadius: 10,
			MaxRadius: 30,
			MaxSpeedX: 4,
			MaxSpeedY: 5,
		},
		Pointer: BouncePointer{
			ImpulseRadius: 150,
			ImpulseForceX: 15,
			ImpulseKickY:  20,
			HoverMargin:   20,
			HoverForce:    1,
		},
	}
}

// DefaultRainConfig returns the default glyph rain configuration.
func DefaultRainConfig() RainConfig {
	return RainConfig{
		Rate:            30,
		GlyphSize:       16,
		Alphabet:        defaultAlphabet,
		Fade:            0.2,
		HeadChance:      0.05,
		ResetChance:     0.025,
		RecycleDepth:    100,
		HighlightRadius: 100,
	}
}

// DefaultNetworkConfig returns the default force network configuration.
func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		Population:  60,
		MaxSpeed:    0.25,
		MinRadius:   1,
		MaxRadius:   3,
		ConnectDist: 150,
		SpeedCap:    2,
		Damping:     0.9,
		Pointer: NetworkPointer{
			Mode:   PointerAttract,
			Radius: 200,
			Force:  0.5,
		},
		ClickRadius: 300,
		ClickForce:  10,
	}
}

// DefaultMemoryConfig returns the default sequence memory configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		StepInterval: 800,
		Highlight:    400,
		Flash:        200,
		RoundPause:   1000,
	}
}

// DefaultMergeConfig returns the default merge-tile configuration.
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		Size:          3,
		WinValue:      2048,
		FourChance:    0.1,
		StartingTiles: 2,
		PopMillis:     150,
	}
}

// GetDefaultYAML returns the embedded default YAML for a widget.
func GetDefaultYAML(id string) []byte {
	switch id {
	case "bounce":
		return defaultBounceYAML
	case "rain":
		return defaultRainYAML
	case "network":
		return defaultNetworkYAML
	case "memory":
		return defaultMemoryYAML
	case "merge":
		return defaultMergeYAML
	default:
		return nil
	}
}
