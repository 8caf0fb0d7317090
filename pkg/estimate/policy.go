package estimate

// Policy holds the buyback deduction constants. The defaults are the
// business's published grading policy; config may override any of them.
type Policy struct {
	ScreenRepairFallback  float64 `yaml:"screen_repair_fallback"`
	BackRepairFallback    float64 `yaml:"back_repair_fallback"`
	BatteryRepairFallback float64 `yaml:"battery_repair_fallback"`
	NotWorkingFactor      float64 `yaml:"not_working_factor"`
	FaceIDPenalty         float64 `yaml:"face_id_penalty"`
	ScreenScratchFactor   float64 `yaml:"screen_scratch_factor"`
	BodyScratchPenalty    float64 `yaml:"body_scratch_penalty"`
	BentExtraPenalty      float64 `yaml:"bent_extra_penalty"`
	PreferredCondition    string  `yaml:"preferred_condition"`
}

// DefaultPolicy returns the standard deduction constants.
func DefaultPolicy() Policy {
	return Policy{
		ScreenRepairFallback:  100,
		BackRepairFallback:    80,
		BatteryRepairFallback: 60,
		NotWorkingFactor:      0.5,
		FaceIDPenalty:         150,
		ScreenScratchFactor:   0.3,
		BodyScratchPenalty:    20,
		BentExtraPenalty:      40,
		PreferredCondition:    "perfect",
	}
}

// WithDefaults fills zero fields from DefaultPolicy.
func (p Policy) WithDefaults() Policy {
	d := DefaultPolicy()
	if p.ScreenRepairFallback == 0 {
		p.ScreenRepairFallback = d.ScreenRepairFallback
	}
	if p.BackRepairFallback == 0 {
		p.BackRepairFallback = d.BackRepairFallback
	}
	if p.BatteryRepairFallback == 0 {
		p.BatteryRepairFallback = d.BatteryRepairFallback
	}
	if p.NotWorkingFactor == 0 {
		p.NotWorkingFactor = d.NotWorkingFactor
	}
	if p.FaceIDPenalty == 0 {
		p.FaceIDPenalty = d.FaceIDPenalty
	}
	if p.ScreenScratchFactor == 0 {
		p.ScreenScratchFactor = d.ScreenScratchFactor
	}
	if p.BodyScratchPenalty == 0 {
		p.BodyScratchPenalty = d.BodyScratchPenalty
	}
	if p.BentExtraPenalty == 0 {
		p.BentExtraPenalty = d.BentExtraPenalty
	}
	if p.PreferredCondition == "" {
		p.PreferredCondition = d.PreferredCondition
	}
	return p
}
