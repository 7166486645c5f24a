package service

import (
	"fmt"
	"strings"

	"medical-agent-webhook/internal/domain/entity"
)

// ComposeAvailabilityMessage turns the matched doctors into the single sentence
// spoken back to the user
func ComposeAvailabilityMessage(matches []entity.AvailabilityMatch, specialty, city string, date entity.CalendarDate) string {
	if len(matches) == 0 {
		return fmt.Sprintf(
			"I could not find any %s doctors in %s available on %s. Would you like to check a different date or location?",
			specialty, city, date.Human(),
		)
	}

	clauses := make([]string, len(matches))
	for i, m := range matches {
		clauses[i] = fmt.Sprintf("%s has availability at %s", m.DoctorName, strings.Join(m.Slots, ", "))
	}

	return fmt.Sprintf(
		"I found the following doctors: %s. Please let me know which doctor and time you would like to book.",
		strings.Join(clauses, " and "),
	)
}
