package controller

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/mock"

	"github.com/gregkash16/ncx-sub000/db/mockdb"
	"github.com/gregkash16/ncx-sub000/model"
	"github.com/gregkash16/ncx-sub000/workbook"
	"github.com/gregkash16/ncx-sub000/workbook/mockworkbook"
)

func TestResolveRole(t *testing.T) {
	roster := [][]string{
		{"Foxes", "111"},
		{"Wolfpack", "222"},
		{"Vipers", "111"},
		{"Reapers"}, // no captain assigned yet
	}
	identities := [][]string{
		{"111", "NCX101"},
		{"333", "NCX303"},
	}

	tests := map[string]struct {
		discordID  string
		adminID    string
		exKind     model.RoleKind
		exPlayerID string
		exTeams    []string
	}{
		"admin": {discordID: "999", adminID: "999", exKind: model.ROLE_ADMIN},
		"admin beats captain": {discordID: "111", adminID: "111", exKind: model.ROLE_ADMIN,
			exPlayerID: "NCX101", exTeams: []string{"Foxes", "Vipers"}},
		"captain of two teams": {discordID: "111", adminID: "999", exKind: model.ROLE_CAPTAIN,
			exPlayerID: "NCX101", exTeams: []string{"Foxes", "Vipers"}},
		"player":         {discordID: "333", adminID: "999", exKind: model.ROLE_PLAYER, exPlayerID: "NCX303"},
		"no role":        {discordID: "444", adminID: "999", exKind: model.ROLE_NONE},
		"empty identity": {discordID: "", adminID: "999", exKind: model.ROLE_NONE},
		"mention markup": {discordID: "<@333>", adminID: "999", exKind: model.ROLE_PLAYER, exPlayerID: "NCX303"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			wb := &mockworkbook.Workbook{}
			wb.On("GetRange", mock.Anything, workbook.RosterRange).Return(roster, nil)
			wb.On("GetRange", mock.Anything, workbook.IdentityRange).Return(identities, nil)

			ctrl, err := New(clock.New(), &mockdb.DB{}, wb, nil, nil, nil, tc.adminID)
			if err != nil {
				t.Fatalf("error creating new controller: %v", err)
			}

			role, err := ctrl.ResolveRole(context.Background(), tc.discordID)
			if err != nil {
				t.Fatalf("unexpected error resolving role: %v", err)
			}
			if role.Kind != tc.exKind {
				t.Errorf("expected kind %s, got %s", tc.exKind, role.Kind)
			}
			if role.PlayerID != tc.exPlayerID {
				t.Errorf("expected player id %q, got %q", tc.exPlayerID, role.PlayerID)
			}
			if !reflect.DeepEqual(role.Teams, tc.exTeams) {
				t.Errorf("expected teams %v, got %v", tc.exTeams, role.Teams)
			}
		})
	}
}

func TestResolveRole_rosterReadFails(t *testing.T) {
	wb := &mockworkbook.Workbook{}
	wb.On("GetRange", mock.Anything, workbook.RosterRange).Return(nil, errors.New("rate limited"))

	ctrl, err := New(clock.New(), &mockdb.DB{}, wb, nil, nil, nil, "999")
	if err != nil {
		t.Fatalf("error creating new controller: %v", err)
	}

	role, err := ctrl.ResolveRole(context.Background(), "111")
	if err == nil {
		t.Fatal("expected a retryable error, got nil")
	}
	if role.Kind != model.ROLE_NONE {
		t.Errorf("expected no role on read failure, got %s", role.Kind)
	}
}
