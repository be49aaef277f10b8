package slicer

// GapClosingConfig controls the slicer's Phase C gap-closing step. A
// constructor fills in recommended defaults, and the struct round-trips
// through YAML for the CLI harness's `config` verb.
type GapClosingConfig struct {
	// MaxGapMM is the maximum bridge length, in millimeters, Phase C will
	// span between two open chain endpoints.
	MaxGapMM float32 `yaml:"max_gap_mm"`
	// MaxAngleDeg is the maximum angular deflection, in degrees, a bridge
	// may introduce relative to the chain's approach direction.
	MaxAngleDeg float32 `yaml:"max_angle_deg"`
	// Enable toggles gap closing entirely; with Enable=false, chains that
	// fail to close in Phases A/B are discarded rather than bridged.
	Enable bool `yaml:"enable"`
}

// NewDefaultGapClosingConfig returns the recommended defaults:
// MaxGapMM=2.0, MaxAngleDeg=45.0, Enable=true.
func NewDefaultGapClosingConfig() GapClosingConfig {
	return GapClosingConfig{
		MaxGapMM:    DefaultMaxGapMM,
		MaxAngleDeg: DefaultMaxAngleDeg,
		Enable:      true,
	}
}

// MaxGapCoord returns MaxGapMM converted to coord units.
func (c GapClosingConfig) MaxGapCoord() coord {
	return mmToCoord(float64(c.MaxGapMM))
}

// LayerHeight is the f32-millimeter layer height external callers supply
// to Slice; it must be > 0.
type LayerHeight float32

// Validate returns KindInvalidInput if h is not strictly positive.
func (h LayerHeight) Validate() error {
	if h <= 0 {
		return Errorf(KindInvalidInput, "layer height must be > 0, got %v", float32(h))
	}
	return nil
}
