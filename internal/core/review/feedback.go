package review

import "github.com/rs/zerolog"

// Feedback is the user's verdict on a rendered prediction.
type Feedback string

const (
	FeedbackCorrect   Feedback = "correct"
	FeedbackIncorrect Feedback = "incorrect"
)

// Acknowledgement messages shown when feedback is recorded.
const (
	FeedbackCorrectToast   = "Thanks for confirming!"
	FeedbackIncorrectToast = "Thanks — we'll use this to improve"
)

// FeedbackRecorder records feedback on predictions for diagnostics.
// This is a stub by design: feedback is logged, never persisted or
// transmitted to the backend.
type FeedbackRecorder struct {
	logger zerolog.Logger
	last   Feedback
	count  int
}

func NewFeedbackRecorder(logger zerolog.Logger) *FeedbackRecorder {
	return &FeedbackRecorder{logger: logger}
}

// Record logs the feedback against the label it applies to and returns
// the acknowledgement toast message.
func (r *FeedbackRecorder) Record(fb Feedback, label Label) string {
	r.last = fb
	r.count++
	r.logger.Info().
		Str("feedback", string(fb)).
		Str("label", string(label)).
		Int("total", r.count).
		Msg("prediction feedback recorded")

	if fb == FeedbackCorrect {
		return FeedbackCorrectToast
	}
	return FeedbackIncorrectToast
}

// Last returns the most recently recorded feedback, or empty if none.
func (r *FeedbackRecorder) Last() Feedback { return r.last }

// Count returns how many feedback events were recorded this session.
func (r *FeedbackRecorder) Count() int { return r.count }
