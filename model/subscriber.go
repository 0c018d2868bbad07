package model

import "strings"

// PushSubscriber is a stored web-push endpoint with a team interest filter.
// An empty Teams slice means "all teams". The subscription mechanism that
// writes these rows is external; this system only reads them and deletes
// entries whose endpoints report themselves gone.
type PushSubscriber struct {
	Endpoint string
	P256dh   string
	Auth     string
	Teams    []string
}

// InterestedIn reports whether a match between the two teams should be
// pushed to this subscriber.
func (s *PushSubscriber) InterestedIn(teamA, teamB string) bool {
	if len(s.Teams) == 0 {
		return true
	}
	for _, t := range s.Teams {
		if strings.EqualFold(t, teamA) || strings.EqualFold(t, teamB) {
			return true
		}
	}
	return false
}
