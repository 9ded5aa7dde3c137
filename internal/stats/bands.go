package stats

// Band classifies a 0-100 score for presentation
type Band string

const (
	BandGood     Band = "good"
	BandWarning  Band = "warning"
	BandCritical Band = "critical"
	BandNeutral  Band = "neutral"
)

// ScoreBand maps a percentage to its severity band. A nil score (no data)
// maps to the neutral band.
func ScoreBand(percentage *int) Band {
	if percentage == nil {
		return BandNeutral
	}
	switch {
	case *percentage >= 75:
		return BandGood
	case *percentage >= 50:
		return BandWarning
	default:
		return BandCritical
	}
}
