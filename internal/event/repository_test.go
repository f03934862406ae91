package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/questboard/internal/models"
	"github.com/DhavalSuthar-24/questboard/internal/testutil"
)

func TestListFiltersBySystemCaseInsensitively(t *testing.T) {
	t.Parallel()

	db := testutil.NewDB(t)
	ctx := context.Background()
	org := testutil.CreateUser(t, db, "organizer")
	dnd := testutil.CreateRuleset(t, db, "DnD5e")
	coc := testutil.CreateRuleset(t, db, "Call of Cthulhu")

	testutil.CreateEvent(t, db, org, testutil.WithTitle("dragons"), testutil.WithRuleset(dnd))
	testutil.CreateEvent(t, db, org, testutil.WithTitle("tentacles"), testutil.WithRuleset(coc))
	testutil.CreateEvent(t, db, org, testutil.WithTitle("no system"))

	repo := NewRepository(db)
	events, err := repo.List(ctx, ListFilter{System: "dnd5e"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Title != "dragons" {
		t.Fatalf("title = %q, want %q", events[0].Title, "dragons")
	}
	if events[0].Ruleset == nil || events[0].Ruleset.Name != "DnD5e" {
		t.Fatalf("ruleset = %+v, want DnD5e", events[0].Ruleset)
	}

	all, err := repo.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d, want 3", len(all))
	}

	none, err := repo.List(ctx, ListFilter{System: "dnd"})
	if err != nil {
		t.Fatalf("list partial: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("partial name matched %d events, want 0", len(none))
	}
}

func TestListOrdersNewestStartFirstUndatedLast(t *testing.T) {
	t.Parallel()

	db := testutil.NewDB(t)
	org := testutil.CreateUser(t, db, "organizer")
	base := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

	testutil.CreateEvent(t, db, org, testutil.WithTitle("undated"))
	testutil.CreateEvent(t, db, org, testutil.WithTitle("early"), testutil.WithStart(base))
	testutil.CreateEvent(t, db, org, testutil.WithTitle("late"), testutil.WithStart(base.Add(48*time.Hour)))

	events, err := NewRepository(db).List(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"late", "early", "undated"}
	if len(events) != len(want) {
		t.Fatalf("len(events) = %d, want %d", len(events), len(want))
	}
	for i, title := range want {
		if events[i].Title != title {
			t.Fatalf("events[%d] = %q, want %q", i, events[i].Title, title)
		}
	}
}

func TestGetByIDLoadsApprovedPlayersOnly(t *testing.T) {
	t.Parallel()

	db := testutil.NewDB(t)
	org := testutil.CreateUser(t, db, "organizer")
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	ev := testutil.CreateEvent(t, db, org)
	testutil.CreateJoinRequest(t, db, ev, alice, models.StatusApproved)
	testutil.CreateJoinRequest(t, db, ev, bob, models.StatusPending)

	got, err := NewRepository(db).GetByID(context.Background(), ev.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp := NewResponse(got)
	if len(resp.Players) != 1 || resp.Players[0] != "alice" {
		t.Fatalf("players = %v, want [alice]", resp.Players)
	}
	if resp.SlotsTaken != 1 {
		t.Fatalf("slots_taken = %d, want 1", resp.SlotsTaken)
	}
	if !resp.HasSpace {
		t.Fatal("has_space = false, want true")
	}
	if resp.Organizer == nil || *resp.Organizer != "organizer" {
		t.Fatalf("organizer = %v, want organizer", resp.Organizer)
	}
}

func TestDeleteRemovesJoinRequests(t *testing.T) {
	t.Parallel()

	db := testutil.NewDB(t)
	ctx := context.Background()
	org := testutil.CreateUser(t, db, "organizer")
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	ev := testutil.CreateEvent(t, db, org)
	other := testutil.CreateEvent(t, db, org)
	testutil.CreateJoinRequest(t, db, ev, alice, models.StatusApproved)
	testutil.CreateJoinRequest(t, db, ev, bob, models.StatusPending)
	testutil.CreateJoinRequest(t, db, other, bob, models.StatusPending)

	repo := NewRepository(db)
	if err := repo.Delete(ctx, ev.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var orphans int64
	if err := db.Model(&models.JoinRequest{}).Where("event_id = ?", ev.ID).Count(&orphans).Error; err != nil {
		t.Fatalf("count orphans: %v", err)
	}
	if orphans != 0 {
		t.Fatalf("orphaned join requests = %d, want 0", orphans)
	}

	var remaining int64
	if err := db.Model(&models.JoinRequest{}).Where("event_id = ?", other.ID).Count(&remaining).Error; err != nil {
		t.Fatalf("count remaining: %v", err)
	}
	if remaining != 1 {
		t.Fatalf("other event's requests = %d, want 1", remaining)
	}

	if _, err := repo.GetByID(ctx, ev.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get deleted event error = %v, want %v", err, ErrNotFound)
	}
	if err := repo.Delete(ctx, ev.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete error = %v, want %v", err, ErrNotFound)
	}
}

func TestRemovingOrganizerKeepsEvent(t *testing.T) {
	t.Parallel()

	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewRepository(db)
	org := testutil.CreateUser(t, db, "organizer")
	player := testutil.CreateUser(t, db, "player")
	created := testutil.CreateEvent(t, db, org)
	testutil.CreateJoinRequest(t, db, created, player, models.StatusApproved)

	if err := db.Unscoped().Delete(&models.User{}, org.ID).Error; err != nil {
		t.Fatalf("delete organizer: %v", err)
	}

	ev, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get event after organizer removal: %v", err)
	}
	if ev.OrganizerID != nil || ev.Organizer != nil {
		t.Fatalf("organizer = %v, want none", ev.OrganizerID)
	}
	if n := len(ev.ApprovedPlayers()); n != 1 {
		t.Fatalf("approved players = %d, want 1", n)
	}
	if resp := NewResponse(ev); resp.Organizer != nil {
		t.Fatalf("response organizer = %q, want null", *resp.Organizer)
	}
}
