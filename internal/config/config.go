// Package config provides YAML-based widget configuration loading for the
// showcase platform.
package config

// BounceConfig contains all configuration for the bouncing balls widget.
type BounceConfig struct {
	Population int           `yaml:"population"`
	ScaleByDt  bool          `yaml:"scale_by_dt"` // Scale integration by dt/16.67 instead of a fixed step
	Physics    BouncePhysics `yaml:"physics"`
	Spawn      BounceSpawn   `yaml:"spawn"`
	Pointer    BouncePointer `yaml:"pointer"`
}

// BouncePhysics defines the integration constants.
type BouncePhysics struct {
	Gravity  float64 `yaml:"gravity"`
	Friction float64 `yaml:"friction"` // Velocity retained on each bounce
}

// BounceSpawn defines the random ranges used when seeding bodies.
type BounceSpawn struct {
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	MaxSpeedX float64 `yaml:"max_speed_x"` // vx uniform in (-max, max)
	MaxSpeedY float64 `yaml:"max_speed_y"` // vy uniform in [0, max)
}

// BouncePointer defines click impulse and hover nudge parameters.
type BouncePointer struct {
	ImpulseRadius float64 `yaml:"impulse_radius"`
	ImpulseForceX float64 `yaml:"impulse_force_x"`
	ImpulseKickY  float64 `yaml:"impulse_kick_y"`
	HoverMargin   float64 `yaml:"hover_margin"`
	HoverForce    float64 `yaml:"hover_force"`
}

// RainConfig contains all configuration for the glyph rain widget.
type RainConfig struct {
	Rate            int     `yaml:"rate"`       // Ticks per second
	GlyphSize       float64 `yaml:"glyph_size"` // Column pitch and row height in pixels
	Alphabet        string  `yaml:"alphabet"`
	Fade            float64 `yaml:"fade"`
	HeadChance      float64 `yaml:"head_chance"`
	ResetChance     float64 `yaml:"reset_chance"`
	RecycleDepth    float64 `yaml:"recycle_depth"` // Rows above the top a recycled cursor may restart at
	HighlightRadius float64 `yaml:"highlight_radius"`
}

// NetworkConfig contains all configuration for the force network widget.
type NetworkConfig struct {
	Population  int            `yaml:"population"`
	ScaleByDt   bool           `yaml:"scale_by_dt"`
	MaxSpeed    float64        `yaml:"max_speed"` // Initial velocity uniform in (-max, max)
	MinRadius   float64        `yaml:"min_radius"`
	MaxRadius   float64        `yaml:"max_radius"`
	ConnectDist float64        `yaml:"connect_distance"`
	SpeedCap    float64        `yaml:"speed_cap"`
	Damping     float64        `yaml:"damping"`
	Pointer     NetworkPointer `yaml:"pointer"`
	ClickRadius float64        `yaml:"click_radius"`
	ClickForce  float64        `yaml:"click_force"`
}

// NetworkPointer defines how the pointer bends the network.
type NetworkPointer struct {
	Mode   string  `yaml:"mode"` // "attract" or "repel"
	Radius float64 `yaml:"radius"`
	Force  float64 `yaml:"force"`
}

// MemoryConfig contains all configuration for the sequence memory game.
type MemoryConfig struct {
	StepInterval int `yaml:"step_interval_ms"`
	Highlight    int `yaml:"highlight_ms"`
	Flash        int `yaml:"flash_ms"`
	RoundPause   int `yaml:"round_pause_ms"`
}

// MergeConfig contains all configuration for the merge-tile game.
type MergeConfig struct {
	Size          int     `yaml:"size"`
	WinValue      int     `yaml:"win_value"`
	FourChance    float64 `yaml:"four_chance"`
	StartingTiles int     `yaml:"starting_tiles"`
	PopMillis     int     `yaml:"pop_ms"` // Spawned tile pop-in duration
}

// Board sizes the merge game accepts.
const (
	MinMergeSize = 2
	MaxMergeSize = 8
)

// WithSize returns c for an n by n board. n is clamped to the accepted
// sizes and StartingTiles is capped to fit the board.
func (c MergeConfig) WithSize(n int) MergeConfig {
	c.Size = min(max(n, MinMergeSize), MaxMergeSize)
	c.StartingTiles = min(c.StartingTiles, c.Size*c.Size)
	return c
}

// Pointer modes for the network widget.
const (
	PointerAttract = "attract"
	PointerRepel   = "repel"
)
