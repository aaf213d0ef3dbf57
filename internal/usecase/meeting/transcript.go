package meeting

import (
	"fmt"
	"time"
)

// simulatedTranscript returns the canned transcript used in place of a
// real speech-to-text integration.
func simulatedTranscript(now time.Time) string {
	return fmt.Sprintf(
		"Speaker 1: Let's start the meeting.\n"+
			"Speaker 2: We need to discuss the project timeline.\n"+
			"Speaker 1: Agreed. The deadline is approaching.\n"+
			"Speaker 3: I'll update the Gantt chart by tomorrow.\n"+
			"[Transcribed at %s]",
		now.Format(time.RFC3339),
	)
}
