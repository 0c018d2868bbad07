package controller

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/gregkash16/ncx-sub000/model"
	"github.com/gregkash16/ncx-sub000/workbook"
)

var identityDigits = regexp.MustCompile(`\D`)

// normalizeIdentity strips everything but digits from an external identity.
// Identities arrive as copied-around snowflake strings and pick up stray
// whitespace and mentions along the way.
func normalizeIdentity(s string) string {
	return identityDigits.ReplaceAllString(s, "")
}

// ResolveRole derives the caller's role from the current roster and
// identity ranges. Admin beats captain beats player; an identity that
// appears nowhere gets RoleNone without an error.
func (c *controller) ResolveRole(ctx context.Context, discordID string) (model.Role, error) {
	discordID = normalizeIdentity(discordID)
	if discordID == "" {
		return model.Role{Kind: model.ROLE_NONE}, nil
	}

	roster, err := c.workbook.GetRange(ctx, workbook.RosterRange)
	if err != nil {
		return model.Role{Kind: model.ROLE_NONE}, fmt.Errorf("error reading roster range: %w", err)
	}
	identities, err := c.workbook.GetRange(ctx, workbook.IdentityRange)
	if err != nil {
		return model.Role{Kind: model.ROLE_NONE}, fmt.Errorf("error reading identity range: %w", err)
	}

	role := model.Role{
		Teams:    captainedTeams(roster, discordID),
		PlayerID: playerIDFor(identities, discordID),
	}

	switch {
	case c.adminID != "" && discordID == c.adminID:
		role.Kind = model.ROLE_ADMIN
	case len(role.Teams) > 0:
		role.Kind = model.ROLE_CAPTAIN
	case role.PlayerID != "":
		role.Kind = model.ROLE_PLAYER
	default:
		role.Kind = model.ROLE_NONE
	}
	return role, nil
}

// captainedTeams scans roster rows of the form [team, captain identity].
func captainedTeams(roster [][]string, discordID string) []string {
	var teams []string
	for _, row := range roster {
		if len(row) < 2 {
			continue
		}
		if normalizeIdentity(row[1]) == discordID {
			team := strings.TrimSpace(row[0])
			if team != "" {
				teams = append(teams, team)
			}
		}
	}
	return teams
}

// playerIDFor scans identity rows of the form [identity, player id].
func playerIDFor(identities [][]string, discordID string) string {
	for _, row := range identities {
		if len(row) < 2 {
			continue
		}
		if normalizeIdentity(row[0]) == discordID {
			return strings.TrimSpace(row[1])
		}
	}
	return ""
}
