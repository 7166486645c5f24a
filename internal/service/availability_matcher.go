package service

import "medical-agent-webhook/internal/domain/entity"

// MatchAvailability keeps the doctors that list at least one slot on date,
// preserving the order in which they were given.
func MatchAvailability(doctors []entity.Doctor, date entity.CalendarDate) []entity.AvailabilityMatch {
	var matches []entity.AvailabilityMatch
	for i := range doctors {
		slots := doctors[i].SlotsOn(date)
		if len(slots) == 0 {
			continue
		}
		matches = append(matches, entity.AvailabilityMatch{
			DoctorName: doctors[i].Name,
			Slots:      slots,
		})
	}
	return matches
}
