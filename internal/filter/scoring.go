package filter

const (
	// Scoring weights: mandatory keyword hits count triple.
	mandatoryWeight = 3.0
	optionalWeight  = 1.0

	// Experience bonus: up to 20% of the keyword score, with the
	// experience/requirement ratio capped at 1.2.
	expBonusWeight = 0.2
	expBonusCap    = 1.2
)

// score computes the weighted score for one analyzed resume. The experience
// bonus only applies when experience was extracted and meets the minimum.
func (f *Filter) score(a Analysis) float64 {
	var mandatoryScore, optionalScore float64
	for _, kw := range f.mandatory {
		mandatoryScore += float64(a.KeywordCounts[kw]) * mandatoryWeight
	}
	for _, kw := range f.optional {
		optionalScore += float64(a.KeywordCounts[kw]) * optionalWeight
	}
	base := mandatoryScore + optionalScore

	var bonus float64
	if a.Experience != nil && *a.Experience >= f.requirements.MinExperience {
		ratio := expBonusCap
		if f.requirements.MinExperience > 0 {
			ratio = *a.Experience / f.requirements.MinExperience
			if ratio > expBonusCap {
				ratio = expBonusCap
			}
		}
		bonus = ratio * base * expBonusWeight
	}
	return base + bonus
}
