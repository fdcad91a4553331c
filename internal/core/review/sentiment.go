// Package review holds the sentiment domain model for the demo client:
// the closed label set, the fixed per-label display values, and the
// input-length severity bands.
package review

// Label is a sentiment classification returned by the backend.
type Label string

const (
	Positive Label = "Positive"
	Negative Label = "Negative"
	Neutral  Label = "Neutral"
)

// ParseLabel maps a raw sentiment string onto the closed label set.
// Anything outside the set falls through to Neutral.
func ParseLabel(s string) Label {
	switch Label(s) {
	case Positive, Negative:
		return Label(s)
	default:
		return Neutral
	}
}

// Display is the fixed render bundle for a label. Confidence is a canned
// demo value derived from the label, not from any model score.
type Display struct {
	Label      Label
	Icon       string
	Confidence int // percent, 0-100
}

// displays is keyed by label; ParseLabel guarantees lookups hit.
var displays = map[Label]Display{
	Positive: {Label: Positive, Icon: "✔", Confidence: 80},
	Negative: {Label: Negative, Icon: "✘", Confidence: 20},
	Neutral:  {Label: Neutral, Icon: "●", Confidence: 50},
}

// DisplayFor returns the render bundle for a raw sentiment value,
// defaulting to the Neutral bundle for unrecognized labels.
func DisplayFor(raw string) Display {
	return displays[ParseLabel(raw)]
}

// Band classifies an input length for the character counter.
type Band int

const (
	BandNormal Band = iota
	BandWarning
	BandCritical
)

// Counter thresholds. There is no hard cap; the bands only drive display.
const (
	warnThreshold     = 400
	criticalThreshold = 450
)

// CountBand returns the severity band for a character count.
func CountBand(count int) Band {
	switch {
	case count > criticalThreshold:
		return BandCritical
	case count > warnThreshold:
		return BandWarning
	default:
		return BandNormal
	}
}
