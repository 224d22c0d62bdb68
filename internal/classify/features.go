package classify

import "strings"

// Feature flag keys surfaced on collection records and shelf badges.
const (
	FeaturePenCompatible = "세이펜"
)

// DetectPenCompatible reports whether the text advertises smart-pen support.
func (c *Classifier) DetectPenCompatible(text string) bool {
	return containsAny(strings.ToLower(text), c.rules.PenKeywords)
}

// DetectHardwareFeatures returns the hardware feature flags (sound modules,
// flaps, pop-ups and so on) advertised by the text. Only detected features
// appear as keys, every value is true.
func (c *Classifier) DetectHardwareFeatures(text string) map[string]bool {
	lowered := strings.ToLower(text)
	features := map[string]bool{}
	for feature, keywords := range c.rules.HardwareFeatures {
		if containsAny(lowered, keywords) {
			features[feature] = true
		}
	}
	if c.DetectPenCompatible(text) {
		features[FeaturePenCompatible] = true
	}
	return features
}

// TagCategory resolves a raw catalog category label to the closed shelf
// taxonomy, falling back to the integrated category for unknown labels.
func (c *Classifier) TagCategory(label string) Category {
	return c.rules.CategoryFromLabel(label)
}
