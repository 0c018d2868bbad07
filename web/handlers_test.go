package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/unrolled/render"

	"github.com/gregkash16/ncx-sub000/controller/mockcontroller"
	"github.com/gregkash16/ncx-sub000/model"
)

func newTestRouter(ctrl *mockcontroller.C) http.Handler {
	return getRouter(ctrl, render.New())
}

func intp(v int) *int { return &v }

func TestHealthHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("unexpected status code. Got: %d", w.Code)
	}
}

func TestReportQueryHandler(t *testing.T) {
	role := model.Role{Kind: model.ROLE_CAPTAIN, PlayerID: "NCX101", Teams: []string{"Foxes"}}
	rows := []model.LocatedRow{
		{
			MatchRow: model.MatchRow{
				Week: "WEEK 4",
				Game: 1,
				Away: model.MatchSide{PlayerID: "NCX101", Player: "Alice", Team: "Foxes"},
				Home: model.MatchSide{PlayerID: "NCX202", Player: "Bob", Team: "Wolfpack"},
			},
			RowIdx:      1,
			IsMyGame:    true,
			CanEditAway: true,
		},
	}

	ctrl := &mockcontroller.C{}
	ctrl.On("ResolveRole", mock.Anything, "111").Return(role, nil)
	ctrl.On("ManagedRows", mock.Anything, role, "").Return(rows, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	req.Header.Set(identityHeader, "111")
	w := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d, body: %s", w.Code, w.Body.String())
	}

	var body struct {
		Role struct {
			Kind     string   `json:"kind"`
			PlayerID string   `json:"playerId"`
			Teams    []string `json:"teams"`
		} `json:"role"`
		Rows []model.LocatedRow `json:"rows"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error parsing response: %v", err)
	}
	if body.Role.Kind != "captain" || body.Role.PlayerID != "NCX101" {
		t.Errorf("role not as expected: %+v", body.Role)
	}
	if len(body.Rows) != 1 || body.Rows[0].Game != 1 || !body.Rows[0].IsMyGame {
		t.Errorf("rows not as expected: %+v", body.Rows)
	}
}

func TestReportQueryHandler_identityRejections(t *testing.T) {
	tests := map[string]struct {
		identity string
		setNone  bool
		exStatus int
		exReason model.ReasonCode
	}{
		"missing header":     {setNone: true, exStatus: http.StatusUnauthorized, exReason: model.REASON_NOT_AUTH},
		"no digits in value": {identity: "not-an-id", exStatus: http.StatusUnauthorized, exReason: model.REASON_NO_IDENTITY},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := &mockcontroller.C{}
			req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
			if !tc.setNone {
				req.Header.Set(identityHeader, tc.identity)
			}
			w := httptest.NewRecorder()

			newTestRouter(ctrl).ServeHTTP(w, req)

			if w.Code != tc.exStatus {
				t.Errorf("unexpected status code. Got: %d", w.Code)
			}
			var res model.ReportResult
			if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
				t.Fatalf("error parsing response: %v", err)
			}
			if res.OK || res.Reason != tc.exReason {
				t.Errorf("expected reason %s, got %+v", tc.exReason, res)
			}
			ctrl.AssertNotCalled(t, "ResolveRole", mock.Anything, mock.Anything)
		})
	}
}

func TestReportSubmitHandler(t *testing.T) {
	role := model.Role{Kind: model.ROLE_PLAYER, PlayerID: "NCX101"}

	tests := map[string]struct {
		result   *model.ReportResult
		exStatus int
	}{
		"success":        {result: &model.ReportResult{OK: true}, exStatus: http.StatusOK},
		"already filled": {result: &model.ReportResult{Reason: model.REASON_ALREADY_FILLED, Current: &model.CurrentValues{AwayScore: intp(20), HomeScore: intp(14), Scenario: model.SCENARIO_ASSAULT}}, exStatus: http.StatusConflict},
		"bad scenario":   {result: model.Rejected(model.REASON_BAD_SCENARIO), exStatus: http.StatusBadRequest},
		"row not yours":  {result: model.Rejected(model.REASON_ROW_NOT_YOURS), exStatus: http.StatusForbidden},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := &mockcontroller.C{}
			ctrl.On("ResolveRole", mock.Anything, "111").Return(role, nil)
			ctrl.On("SubmitReport", mock.Anything, role, mock.MatchedBy(func(req *model.ReportRequest) bool {
				return req.Week == "WEEK 4" && req.Row == 1 && *req.AwayScore == 20
			})).Return(tc.result, nil)

			payload := `{"week":"WEEK 4","row":1,"awayScore":20,"homeScore":14,"scenario":"ASSAULT"}`
			req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(payload))
			req.Header.Set(identityHeader, "111")
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			newTestRouter(ctrl).ServeHTTP(w, req)

			if w.Code != tc.exStatus {
				t.Fatalf("unexpected status code. Got: %d, body: %s", w.Code, w.Body.String())
			}
			var res model.ReportResult
			if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
				t.Fatalf("error parsing response: %v", err)
			}
			if res.OK != tc.result.OK || res.Reason != tc.result.Reason {
				t.Errorf("response not as expected: %+v", res)
			}
			if tc.result.Current != nil && (res.Current == nil || *res.Current.AwayScore != 20) {
				t.Errorf("expected current values on the response: %+v", res)
			}
		})
	}
}

func TestReportSubmitHandler_badBody(t *testing.T) {
	ctrl := &mockcontroller.C{}
	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader("{not json"))
	req.Header.Set(identityHeader, "111")
	w := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("unexpected status code. Got: %d", w.Code)
	}
	ctrl.AssertNotCalled(t, "SubmitReport", mock.Anything, mock.Anything, mock.Anything)
}

func TestMatchesHandler_defaultsToCurrentWeek(t *testing.T) {
	matches := []model.MatchRow{{Week: "WEEK 4", Game: 1}}

	ctrl := &mockcontroller.C{}
	ctrl.On("CurrentWeek", mock.Anything).Return("WEEK 4", nil)
	ctrl.On("MatchesByWeek", mock.Anything, "WEEK 4").Return(matches, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/matches", nil)
	w := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", w.Code)
	}
	var body struct {
		Week    string           `json:"week"`
		Matches []model.MatchRow `json:"matches"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error parsing response: %v", err)
	}
	if body.Week != "WEEK 4" || len(body.Matches) != 1 {
		t.Errorf("response not as expected: %+v", body)
	}
}

func TestMatchesHandler_explicitWeek(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("MatchesByWeek", mock.Anything, "WEEK 2").Return([]model.MatchRow{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/matches?week=WEEK+2", nil)
	w := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", w.Code)
	}
	ctrl.AssertNotCalled(t, "CurrentWeek", mock.Anything)
}

func TestSyncHandler_adminOnly(t *testing.T) {
	tests := map[string]struct {
		role     model.Role
		exStatus int
		exSynced bool
	}{
		"admin can sync": {
			role:     model.Role{Kind: model.ROLE_ADMIN},
			exStatus: http.StatusOK,
			exSynced: true,
		},
		"captain cannot": {
			role:     model.Role{Kind: model.ROLE_CAPTAIN, PlayerID: "NCX101", Teams: []string{"Foxes"}},
			exStatus: http.StatusUnauthorized,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := &mockcontroller.C{}
			ctrl.On("ResolveRole", mock.Anything, "111").Return(tc.role, nil)
			ctrl.On("SyncAll", mock.Anything).Return(nil)
			ctrl.On("SyncLists", mock.Anything).Return(nil)

			req := httptest.NewRequest(http.MethodPost, "/api/sync", nil)
			req.Header.Set(identityHeader, "111")
			w := httptest.NewRecorder()

			newTestRouter(ctrl).ServeHTTP(w, req)

			if w.Code != tc.exStatus {
				t.Fatalf("unexpected status code. Got: %d, body: %s", w.Code, w.Body.String())
			}
			if tc.exSynced {
				ctrl.AssertCalled(t, "SyncAll", mock.Anything)
			} else {
				ctrl.AssertNotCalled(t, "SyncAll", mock.Anything)
			}
		})
	}
}

func TestStandingsHandler(t *testing.T) {
	rank := 1
	ctrl := &mockcontroller.C{}
	ctrl.On("Standings", mock.Anything).Return([]model.StandingsRow{{Rank: &rank, Team: "Foxes"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/standings", nil)
	w := httptest.NewRecorder()

	newTestRouter(ctrl).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code. Got: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Foxes") {
		t.Errorf("expected standings in the response: %s", w.Body.String())
	}
}
