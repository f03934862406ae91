package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/questboard/internal/models"
	"github.com/DhavalSuthar-24/questboard/internal/testutil"
	"github.com/DhavalSuthar-24/questboard/pkg/revocation"
)

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func newAPI(t *testing.T) (*apiClient, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	r := SetupRoutes(db, testutil.Config(), revocation.NewGormStore(db), testutil.Logger())
	return &apiClient{t: t, router: r}, db
}

func (a *apiClient) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			a.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// login signs a user up and returns an access token and a refresh token.
func (a *apiClient) login(username string) (string, string) {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/signup/", "", map[string]string{"username": username, "password": "pw-" + username})
	expectStatus(a.t, rec, http.StatusCreated)

	rec = a.do(http.MethodPost, "/api/token/", "", map[string]string{"username": username, "password": "pw-" + username})
	expectStatus(a.t, rec, http.StatusOK)
	pair := decode[map[string]string](a.t, rec)
	return pair["access"], pair["refresh"]
}

func (a *apiClient) createEvent(token string, body map[string]any) map[string]any {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/add/", token, body)
	expectStatus(a.t, rec, http.StatusCreated)
	return decode[map[string]any](a.t, rec)
}

func idOf(v map[string]any) int {
	return int(v["id"].(float64))
}

func TestHealthz(t *testing.T) {
	api, _ := newAPI(t)
	rec := api.do(http.MethodGet, "/healthz", "", nil)
	expectStatus(t, rec, http.StatusOK)
}

func TestSignupAndTokens(t *testing.T) {
	api, _ := newAPI(t)

	rec := api.do(http.MethodPost, "/api/signup/", "", map[string]string{"username": "gm", "password": "secret"})
	expectStatus(t, rec, http.StatusCreated)
	if got := decode[map[string]string](t, rec)["message"]; got != "User created successfully" {
		t.Fatalf("message = %q", got)
	}

	rec = api.do(http.MethodPost, "/api/signup/", "", map[string]string{"username": "gm", "password": "other"})
	expectStatus(t, rec, http.StatusBadRequest)
	if got := decode[map[string]string](t, rec)["error"]; got != "Username already taken" {
		t.Fatalf("error = %q, want %q", got, "Username already taken")
	}

	rec = api.do(http.MethodPost, "/api/signup/", "", map[string]string{"username": "nopass"})
	expectStatus(t, rec, http.StatusBadRequest)

	rec = api.do(http.MethodPost, "/api/token/", "", map[string]string{"username": "gm", "password": "wrong"})
	expectStatus(t, rec, http.StatusUnauthorized)

	rec = api.do(http.MethodPost, "/api/token/", "", map[string]string{"username": "gm", "password": "secret"})
	expectStatus(t, rec, http.StatusOK)
	pair := decode[map[string]string](t, rec)
	if pair["access"] == "" || pair["refresh"] == "" {
		t.Fatalf("token pair = %v", pair)
	}

	// A refresh token is not an access token.
	rec = api.do(http.MethodPost, "/api/add/", pair["refresh"], map[string]any{"title": "x"})
	expectStatus(t, rec, http.StatusUnauthorized)

	rec = api.do(http.MethodPost, "/api/token/refresh/", "", map[string]string{"refresh": pair["refresh"]})
	expectStatus(t, rec, http.StatusOK)
	if decode[map[string]string](t, rec)["access"] == "" {
		t.Fatal("refresh returned no access token")
	}

	rec = api.do(http.MethodPost, "/api/token/blacklist/", "", map[string]string{"refresh": pair["refresh"]})
	expectStatus(t, rec, http.StatusOK)

	rec = api.do(http.MethodPost, "/api/token/refresh/", "", map[string]string{"refresh": pair["refresh"]})
	expectStatus(t, rec, http.StatusUnauthorized)
}

func TestAuthenticationRequired(t *testing.T) {
	api, _ := newAPI(t)
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/add/"},
		{http.MethodGet, "/api/1/"},
		{http.MethodPost, "/api/events/1/join/"},
		{http.MethodGet, "/api/events/1/requests/"},
		{http.MethodPatch, "/api/requests/1/"},
		{http.MethodGet, "/api/requests/"},
		{http.MethodPost, "/api/systems/"},
	}
	for _, tc := range tests {
		rec := api.do(tc.method, tc.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s status = %d, want 401", tc.method, tc.path, rec.Code)
		}
	}

	rec := api.do(http.MethodGet, "/api/", "", nil)
	expectStatus(t, rec, http.StatusOK)
	rec = api.do(http.MethodGet, "/api/systems/", "", nil)
	expectStatus(t, rec, http.StatusOK)
}

func TestEventLifecycle(t *testing.T) {
	api, db := newAPI(t)
	gm, _ := api.login("gm")
	player, _ := api.login("player")

	rec := api.do(http.MethodPost, "/api/systems/", gm, map[string]string{"name": "DnD5e"})
	expectStatus(t, rec, http.StatusCreated)

	created := api.createEvent(gm, map[string]any{
		"title":      "Lost Mine of Phandelver",
		"system":     "DnD5e",
		"date_start": "2026-11-01T18:00:00+01:00",
	})
	if created["organizer"] != "gm" {
		t.Fatalf("organizer = %v, want gm", created["organizer"])
	}
	if created["system"] != "DnD5e" {
		t.Fatalf("system = %v, want DnD5e", created["system"])
	}
	if created["online"] != true || created["location"] != models.DefaultLocation {
		t.Fatalf("defaults not applied: %v", created)
	}
	if created["max_players"] != float64(models.DefaultMaxPlayers) {
		t.Fatalf("max_players = %v, want %d", created["max_players"], models.DefaultMaxPlayers)
	}
	id := idOf(created)
	path := fmt.Sprintf("/api/%d/", id)

	rec = api.do(http.MethodPost, "/api/add/", gm, map[string]any{"system": "Unknown"})
	expectStatus(t, rec, http.StatusBadRequest)
	if _, ok := decode[map[string][]string](t, rec)["system"]; !ok {
		t.Fatalf("unknown system body = %s, want a system field error", rec.Body.String())
	}

	rec = api.do(http.MethodPost, "/api/add/", gm, map[string]any{"max_players": 101})
	expectStatus(t, rec, http.StatusBadRequest)
	if _, ok := decode[map[string][]string](t, rec)["max_players"]; !ok {
		t.Fatalf("max_players body = %s, want a max_players field error", rec.Body.String())
	}

	rec = api.do(http.MethodGet, path, player, nil)
	expectStatus(t, rec, http.StatusOK)

	rec = api.do(http.MethodPatch, path, player, map[string]any{"title": "hijacked"})
	expectStatus(t, rec, http.StatusForbidden)
	rec = api.do(http.MethodDelete, path, player, nil)
	expectStatus(t, rec, http.StatusForbidden)

	rec = api.do(http.MethodPatch, path, gm, map[string]any{"title": "Renamed", "max_players": nil})
	expectStatus(t, rec, http.StatusOK)
	patched := decode[map[string]any](t, rec)
	if patched["title"] != "Renamed" || patched["max_players"] != nil || patched["system"] != "DnD5e" {
		t.Fatalf("patched = %v", patched)
	}

	rec = api.do(http.MethodPut, path, gm, map[string]any{"title": "Replaced"})
	expectStatus(t, rec, http.StatusOK)
	replaced := decode[map[string]any](t, rec)
	if replaced["system"] != nil || replaced["max_players"] != float64(models.DefaultMaxPlayers) {
		t.Fatalf("replaced = %v", replaced)
	}

	rec = api.do(http.MethodPost, fmt.Sprintf("/api/events/%d/join/", id), player, nil)
	expectStatus(t, rec, http.StatusCreated)

	rec = api.do(http.MethodDelete, path, gm, nil)
	expectStatus(t, rec, http.StatusNoContent)
	rec = api.do(http.MethodGet, path, gm, nil)
	expectStatus(t, rec, http.StatusNotFound)

	var orphans int64
	if err := db.Model(&models.JoinRequest{}).Where("event_id = ?", id).Count(&orphans).Error; err != nil {
		t.Fatalf("count orphans: %v", err)
	}
	if orphans != 0 {
		t.Fatalf("orphaned join requests = %d", orphans)
	}
}

func TestJoinRequestWorkflow(t *testing.T) {
	api, _ := newAPI(t)
	gm, _ := api.login("gm")
	alice, _ := api.login("alice")
	bob, _ := api.login("bob")

	ev := api.createEvent(gm, map[string]any{"title": "One seat", "max_players": 1})
	id := idOf(ev)
	joinPath := fmt.Sprintf("/api/events/%d/join/", id)

	rec := api.do(http.MethodPost, joinPath, gm, nil)
	expectStatus(t, rec, http.StatusBadRequest)
	if got := decode[map[string]string](t, rec)["detail"]; got != "You are the organizer of this event." {
		t.Fatalf("organizer detail = %q", got)
	}

	rec = api.do(http.MethodPost, joinPath, alice, nil)
	expectStatus(t, rec, http.StatusCreated)
	aliceReq := decode[map[string]any](t, rec)
	if aliceReq["status"] != "pending" || aliceReq["user"] != "alice" || int(aliceReq["event"].(float64)) != id {
		t.Fatalf("alice request = %v", aliceReq)
	}

	rec = api.do(http.MethodPost, joinPath, alice, nil)
	expectStatus(t, rec, http.StatusBadRequest)
	dup := decode[map[string]string](t, rec)
	if dup["status"] != "pending" || dup["detail"] != "You have already requested to join this event." {
		t.Fatalf("duplicate body = %v", dup)
	}

	rec = api.do(http.MethodPost, joinPath, bob, nil)
	expectStatus(t, rec, http.StatusCreated)
	bobReq := decode[map[string]any](t, rec)

	rec = api.do(http.MethodGet, fmt.Sprintf("/api/events/%d/requests/", id), alice, nil)
	expectStatus(t, rec, http.StatusForbidden)

	rec = api.do(http.MethodGet, fmt.Sprintf("/api/events/%d/requests/", id), gm, nil)
	expectStatus(t, rec, http.StatusOK)
	if n := len(decode[[]map[string]any](t, rec)); n != 2 {
		t.Fatalf("requests = %d, want 2", n)
	}

	alicePath := fmt.Sprintf("/api/requests/%d/", idOf(aliceReq))
	bobPath := fmt.Sprintf("/api/requests/%d/", idOf(bobReq))

	rec = api.do(http.MethodPatch, alicePath, bob, map[string]string{"status": "approved"})
	expectStatus(t, rec, http.StatusForbidden)

	rec = api.do(http.MethodPatch, alicePath, gm, map[string]string{"status": "maybe"})
	expectStatus(t, rec, http.StatusBadRequest)
	if _, ok := decode[map[string][]string](t, rec)["status"]; !ok {
		t.Fatalf("invalid status body = %s", rec.Body.String())
	}

	for _, status := range []string{"approve", " APPROVED ", "Reject"} {
		rec = api.do(http.MethodPatch, alicePath, gm, map[string]string{"status": status})
		expectStatus(t, rec, http.StatusBadRequest)
		if _, ok := decode[map[string][]string](t, rec)["status"]; !ok {
			t.Fatalf("status %q body = %s, want a status field error", status, rec.Body.String())
		}
	}

	rec = api.do(http.MethodPatch, alicePath, gm, map[string]string{"status": "approved"})
	expectStatus(t, rec, http.StatusOK)

	rec = api.do(http.MethodPatch, bobPath, gm, map[string]string{"status": "approved"})
	expectStatus(t, rec, http.StatusBadRequest)
	if got := decode[map[string]string](t, rec)["detail"]; got != "Event is full." {
		t.Fatalf("full detail = %q", got)
	}

	rec = api.do(http.MethodGet, fmt.Sprintf("/api/%d/", id), gm, nil)
	expectStatus(t, rec, http.StatusOK)
	detail := decode[map[string]any](t, rec)
	if detail["slots_taken"] != float64(1) || detail["has_space"] != false {
		t.Fatalf("capacity fields = %v / %v", detail["slots_taken"], detail["has_space"])
	}
	players, _ := detail["players"].([]any)
	if len(players) != 1 || players[0] != "alice" {
		t.Fatalf("players = %v, want [alice]", players)
	}

	// Bob is still pending.
	rec = api.do(http.MethodPost, fmt.Sprintf("/api/events/%d/requests/%d/reject/", id, idOf(bobReq)), gm, nil)
	expectStatus(t, rec, http.StatusOK)
	if got := decode[map[string]any](t, rec)["status"]; got != "rejected" {
		t.Fatalf("bob status = %v, want rejected", got)
	}

	rec = api.do(http.MethodPost, fmt.Sprintf("/api/events/%d/requests/%d/promote/", id, idOf(bobReq)), gm, nil)
	expectStatus(t, rec, http.StatusBadRequest)

	rec = api.do(http.MethodGet, "/api/requests/", bob, nil)
	expectStatus(t, rec, http.StatusOK)
	mine := decode[[]map[string]any](t, rec)
	if len(mine) != 1 || mine[0]["status"] != "rejected" {
		t.Fatalf("bob's requests = %v", mine)
	}
}

func TestListEventsSystemFilter(t *testing.T) {
	api, _ := newAPI(t)
	gm, _ := api.login("gm")

	for _, name := range []string{"DnD5e", "Call of Cthulhu"} {
		rec := api.do(http.MethodPost, "/api/systems/", gm, map[string]string{"name": name})
		expectStatus(t, rec, http.StatusCreated)
	}
	rec := api.do(http.MethodPost, "/api/systems/", gm, map[string]string{"name": "DnD5e"})
	expectStatus(t, rec, http.StatusBadRequest)

	api.createEvent(gm, map[string]any{"title": "dragons", "system": "DnD5e"})
	api.createEvent(gm, map[string]any{"title": "tentacles", "system": "Call of Cthulhu"})
	api.createEvent(gm, map[string]any{"title": "freeform"})

	rec = api.do(http.MethodGet, "/api/?system=dnd5e", "", nil)
	expectStatus(t, rec, http.StatusOK)
	events := decode[[]map[string]any](t, rec)
	if len(events) != 1 || events[0]["title"] != "dragons" {
		t.Fatalf("filtered events = %v", events)
	}

	rec = api.do(http.MethodGet, "/api/", "", nil)
	expectStatus(t, rec, http.StatusOK)
	if n := len(decode[[]map[string]any](t, rec)); n != 3 {
		t.Fatalf("all events = %d, want 3", n)
	}
}

func TestRulesetEndpoints(t *testing.T) {
	api, _ := newAPI(t)
	gm, _ := api.login("gm")

	rec := api.do(http.MethodPost, "/api/systems/", gm, map[string]string{"name": "Pathfinder"})
	expectStatus(t, rec, http.StatusCreated)
	rs := decode[map[string]any](t, rec)
	path := fmt.Sprintf("/api/systems/%d/", idOf(rs))

	ev := api.createEvent(gm, map[string]any{"title": "goblins", "system": "Pathfinder"})

	rec = api.do(http.MethodPatch, path, gm, map[string]string{"name": "Pathfinder 2e"})
	expectStatus(t, rec, http.StatusOK)
	if got := decode[map[string]any](t, rec)["name"]; got != "Pathfinder 2e" {
		t.Fatalf("name = %v", got)
	}

	rec = api.do(http.MethodDelete, path, gm, nil)
	expectStatus(t, rec, http.StatusNoContent)
	rec = api.do(http.MethodGet, path, gm, nil)
	expectStatus(t, rec, http.StatusNotFound)

	rec = api.do(http.MethodGet, fmt.Sprintf("/api/%d/", idOf(ev)), gm, nil)
	expectStatus(t, rec, http.StatusOK)
	if got := decode[map[string]any](t, rec)["system"]; got != nil {
		t.Fatalf("system after ruleset delete = %v, want null", got)
	}
}

func TestEventCapCannotDropBelowApprovedPlayers(t *testing.T) {
	api, _ := newAPI(t)
	gm, _ := api.login("gm")

	ev := api.createEvent(gm, map[string]any{"title": "Full table", "max_players": 3})
	id := idOf(ev)
	for i := 0; i < 3; i++ {
		player, _ := api.login(fmt.Sprintf("p%d", i))
		rec := api.do(http.MethodPost, fmt.Sprintf("/api/events/%d/join/", id), player, nil)
		expectStatus(t, rec, http.StatusCreated)
		jr := decode[map[string]any](t, rec)
		rec = api.do(http.MethodPatch, fmt.Sprintf("/api/requests/%d/", idOf(jr)), gm, map[string]string{"status": "approved"})
		expectStatus(t, rec, http.StatusOK)
	}

	path := fmt.Sprintf("/api/%d/", id)
	rec := api.do(http.MethodPatch, path, gm, map[string]any{"max_players": 1})
	expectStatus(t, rec, http.StatusBadRequest)
	if _, ok := decode[map[string][]string](t, rec)["max_players"]; !ok {
		t.Fatalf("body = %s, want a max_players field error", rec.Body.String())
	}

	rec = api.do(http.MethodPut, path, gm, map[string]any{"title": "Full table", "max_players": 2})
	expectStatus(t, rec, http.StatusBadRequest)

	rec = api.do(http.MethodGet, path, gm, nil)
	expectStatus(t, rec, http.StatusOK)
	detail := decode[map[string]any](t, rec)
	if detail["max_players"] != float64(3) || detail["slots_taken"] != float64(3) {
		t.Fatalf("max_players = %v, slots_taken = %v; want 3 and 3", detail["max_players"], detail["slots_taken"])
	}

	rec = api.do(http.MethodPatch, path, gm, map[string]any{"max_players": nil})
	expectStatus(t, rec, http.StatusOK)
}
