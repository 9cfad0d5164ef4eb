package engine

// Ending is the outcome classification of a finished session, ranked
// from best to worst.
type Ending uint8

const (
	EndingNone Ending = iota
	EndingLegendary
	EndingHeroic
	EndingClutch
	EndingMiracle
	EndingFailure
)

// String returns the stable identifier used in storage and display.
func (e Ending) String() string {
	switch e {
	case EndingLegendary:
		return "legendary"
	case EndingHeroic:
		return "heroic"
	case EndingClutch:
		return "clutch"
	case EndingMiracle:
		return "miracle"
	case EndingFailure:
		return "failure"
	default:
		return "none"
	}
}

// Classify maps the in-world clock at completion to an ending. Minute
// values are minutes since 00:00; start is the session's opening
// minute and deadline is midnight. Reaching the deadline is a failure
// regardless of how much was collected.
func Classify(minute, start, deadline int) Ending {
	if minute >= deadline {
		return EndingFailure
	}
	switch delta := minute - start; {
	case delta <= 10:
		return EndingLegendary
	case delta <= 20:
		return EndingHeroic
	case delta <= 25:
		return EndingClutch
	default:
		return EndingMiracle
	}
}
