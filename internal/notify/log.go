package notify

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// LogNotifier writes events to a zerolog logger.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Publish(_ context.Context, event Event) error {
	n.logger.Info().
		Str("action", string(event.Action)).
		Str("feedback_id", event.Feedback.ID.Hex()).
		Str("rating", stars(string(event.Feedback.Rating))).
		Msg("feedback event")
	return nil
}

func stars(rating string) string {
	if len(rating) != 1 || rating[0] < '1' || rating[0] > '5' {
		return rating
	}
	return strings.Repeat("*", int(rating[0]-'0'))
}
