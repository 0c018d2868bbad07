package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"unicode"

	"github.com/unrolled/render"

	"github.com/gregkash16/ncx-sub000/controller"
	"github.com/gregkash16/ncx-sub000/db"
	"github.com/gregkash16/ncx-sub000/model"
)

// identityHeader carries the caller's external identity. Session issuance
// happens upstream of this service; the header is all that arrives here.
const identityHeader = "X-Discord-Id"

func healthHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// callerIdentity validates the identity header. The second return is a
// rejection reason when the header is missing or carries no identity.
func callerIdentity(r *http.Request) (string, model.ReasonCode) {
	raw := r.Header.Get(identityHeader)
	if raw == "" {
		return "", model.REASON_NOT_AUTH
	}
	if !strings.ContainsFunc(raw, unicode.IsDigit) {
		return "", model.REASON_NO_IDENTITY
	}
	return raw, ""
}

func statusForReason(reason model.ReasonCode) int {
	switch reason {
	case model.REASON_NOT_AUTH, model.REASON_NO_IDENTITY:
		return http.StatusUnauthorized
	case model.REASON_NO_PLAYER_ID, model.REASON_ROW_NOT_YOURS:
		return http.StatusForbidden
	case model.REASON_ALREADY_FILLED:
		return http.StatusConflict
	case model.REASON_SERVER_ERROR:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func rejectWith(render *render.Render, w http.ResponseWriter, reason model.ReasonCode) {
	render.JSON(w, statusForReason(reason), model.Rejected(reason))
}

func reportQueryHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, reason := callerIdentity(r)
		if reason != "" {
			rejectWith(render, w, reason)
			return
		}

		role, err := ctrl.ResolveRole(r.Context(), identity)
		if err != nil {
			log.Printf("error resolving role: %v", err)
			rejectWith(render, w, model.REASON_SERVER_ERROR)
			return
		}

		week := r.URL.Query().Get("week")
		rows, err := ctrl.ManagedRows(r.Context(), role, week)
		if err != nil {
			log.Printf("error listing managed rows: %v", err)
			rejectWith(render, w, model.REASON_SERVER_ERROR)
			return
		}
		if rows == nil {
			rows = []model.LocatedRow{}
		}

		render.JSON(w, http.StatusOK, map[string]any{
			"role": map[string]any{
				"kind":     role.Kind,
				"playerId": role.PlayerID,
				"teams":    role.Teams,
			},
			"rows": rows,
		})
	}
}

func reportSubmitHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, reason := callerIdentity(r)
		if reason != "" {
			rejectWith(render, w, reason)
			return
		}

		var req model.ReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, model.Rejected(model.REASON_BAD_SCORES))
			return
		}

		role, err := ctrl.ResolveRole(r.Context(), identity)
		if err != nil {
			log.Printf("error resolving role: %v", err)
			rejectWith(render, w, model.REASON_SERVER_ERROR)
			return
		}

		res, err := ctrl.SubmitReport(r.Context(), role, &req)
		if err != nil {
			log.Printf("error submitting report: %v", err)
		}
		if res == nil {
			res = model.Rejected(model.REASON_SERVER_ERROR)
		}

		status := http.StatusOK
		if !res.OK {
			status = statusForReason(res.Reason)
		}
		render.JSON(w, status, res)
	}
}

func matchesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, ok := weekOrCurrent(ctrl, render, w, r)
		if !ok {
			return
		}

		matches, err := ctrl.MatchesByWeek(r.Context(), week)
		if err != nil {
			log.Printf("error reading matches for %s: %v", week, err)
			rejectWith(render, w, model.REASON_SERVER_ERROR)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"week": week, "matches": matches})
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := ctrl.Standings(r.Context())
		if err != nil {
			log.Printf("error reading standings: %v", err)
			rejectWith(render, w, model.REASON_SERVER_ERROR)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"standings": standings})
	}
}

func statsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := ctrl.PlayerStats(r.Context())
		if err != nil {
			log.Printf("error reading player stats: %v", err)
			rejectWith(render, w, model.REASON_SERVER_ERROR)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"stats": stats})
	}
}

func listsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, ok := weekOrCurrent(ctrl, render, w, r)
		if !ok {
			return
		}

		lists, err := ctrl.ListsByWeek(r.Context(), week)
		if err != nil {
			log.Printf("error reading lists for %s: %v", week, err)
			rejectWith(render, w, model.REASON_SERVER_ERROR)
			return
		}
		render.JSON(w, http.StatusOK, map[string]any{"week": week, "lists": lists})
	}
}

func syncHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, reason := callerIdentity(r)
		if reason != "" {
			rejectWith(render, w, reason)
			return
		}

		role, err := ctrl.ResolveRole(r.Context(), identity)
		if err != nil {
			log.Printf("error resolving role: %v", err)
			rejectWith(render, w, model.REASON_SERVER_ERROR)
			return
		}
		if !role.IsAdmin() {
			rejectWith(render, w, model.REASON_NOT_AUTH)
			return
		}

		if err := ctrl.SyncAll(r.Context()); err != nil {
			log.Printf("error running full sync: %v", err)
			rejectWith(render, w, model.REASON_SERVER_ERROR)
			return
		}
		if err := ctrl.SyncLists(r.Context()); err != nil {
			// Lists are best effort; the tables are already refreshed.
			log.Printf("error running list sync: %v", err)
		}
		render.JSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

// weekOrCurrent resolves the week query parameter, defaulting to the synced
// current week. A season with no current week set yet yields an empty week
// and empty results rather than an error.
func weekOrCurrent(ctrl controller.C, render *render.Render, w http.ResponseWriter, r *http.Request) (string, bool) {
	week := r.URL.Query().Get("week")
	if week != "" {
		return week, true
	}

	week, err := ctrl.CurrentWeek(r.Context())
	if err != nil {
		if errors.Is(err, db.ErrNoCurrentWeek) {
			render.JSON(w, http.StatusOK, map[string]any{"week": "", "matches": []model.MatchRow{}, "lists": []model.ListSubmission{}})
			return "", false
		}
		log.Printf("error reading current week: %v", err)
		rejectWith(render, w, model.REASON_SERVER_ERROR)
		return "", false
	}
	return week, true
}
