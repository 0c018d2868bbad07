package model

import "strings"

type RoleKind string

const (
	ROLE_NONE    RoleKind = "none"
	ROLE_PLAYER  RoleKind = "player"
	ROLE_CAPTAIN RoleKind = "captain"
	ROLE_ADMIN   RoleKind = "admin"
)

// Role is resolved once per request from the workbook's roster and identity
// ranges and passed down. It is never cached across requests.
type Role struct {
	Kind     RoleKind
	PlayerID string   // NCX id, empty when the caller has no identity mapping
	Teams    []string // teams the caller captains, captain only
}

func (r Role) IsAdmin() bool {
	return r.Kind == ROLE_ADMIN
}

func (r Role) CaptainOf(team string) bool {
	for _, t := range r.Teams {
		if strings.EqualFold(t, team) {
			return true
		}
	}
	return false
}

// CanEditSide reports whether the caller may change a side's player
// identifier: admins always, captains only for their own team's side.
func (r Role) CanEditSide(team string) bool {
	if r.Kind == ROLE_ADMIN {
		return true
	}
	return r.Kind == ROLE_CAPTAIN && r.CaptainOf(team)
}
