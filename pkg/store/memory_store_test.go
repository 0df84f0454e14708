package store

import (
	"testing"
	"time"

	"contentforge/pkg/domain"
)

func TestMemoryStoreUsersAndProfiles(t *testing.T) {
	s := NewMemoryStore()

	user := domain.User{ID: "u1", Email: "a@example.com", PasswordHash: "x", Status: domain.StatusActive}
	if err := s.SaveUser(user); err != nil {
		t.Fatalf("save user: %v", err)
	}
	has, err := s.HasUserEmail("a@example.com")
	if err != nil || !has {
		t.Fatalf("has email: has=%v err=%v", has, err)
	}
	got, ok, err := s.GetUserByEmail("a@example.com")
	if err != nil || !ok || got.ID != "u1" {
		t.Fatalf("get by email: ok=%v err=%v", ok, err)
	}
	if _, ok, _ := s.GetUserByID("missing"); ok {
		t.Fatalf("unexpected user for missing id")
	}

	profile := domain.Profile{UserID: "u1", Tier: domain.TierFree, FullName: "Ada"}
	if err := s.SaveProfile(profile); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	p, ok, err := s.GetProfile("u1")
	if err != nil || !ok || p.Tier != domain.TierFree {
		t.Fatalf("get profile: ok=%v err=%v", ok, err)
	}
}

func TestMemoryStoreGenerationsAssignIdentity(t *testing.T) {
	s := NewMemoryStore()

	stored, err := s.InsertGeneration(domain.Generation{
		OwnerID:  "u1",
		ToolType: domain.ToolRap,
		Input:    map[string]string{"topic": "coffee"},
		Output:   "verse",
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if stored.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if stored.CreatedAt.IsZero() || stored.CreatedAt.Location() != time.UTC {
		t.Fatalf("expected utc creation time, got %v", stored.CreatedAt)
	}

	got, ok, err := s.GetGeneration(stored.ID)
	if err != nil || !ok || got.Output != "verse" {
		t.Fatalf("get generation: ok=%v err=%v", ok, err)
	}
}

func TestMemoryStoreListNewestFirstAndDelete(t *testing.T) {
	s := NewMemoryStore()

	first, _ := s.InsertGeneration(domain.Generation{OwnerID: "u1", ToolType: domain.ToolRap, Output: "a"})
	second, _ := s.InsertGeneration(domain.Generation{OwnerID: "u1", ToolType: domain.ToolStory, Output: "b"})
	_, _ = s.InsertGeneration(domain.Generation{OwnerID: "other", ToolType: domain.ToolRap, Output: "c"})

	list, err := s.ListGenerationsByOwner("u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("list length = %d, want 2", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("expected newest first ordering")
	}

	if err := s.DeleteGeneration(first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.GetGeneration(first.ID); ok {
		t.Fatalf("record still present after delete")
	}
	list, _ = s.ListGenerationsByOwner("u1")
	if len(list) != 1 || list[0].ID != second.ID {
		t.Fatalf("unexpected list after delete")
	}
}

func TestMemoryStoreCountGenerationsSince(t *testing.T) {
	s := NewMemoryStore()
	for i := 0; i < 3; i++ {
		if _, err := s.InsertGeneration(domain.Generation{OwnerID: "u1", ToolType: domain.ToolContent, Output: "x"}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	_, _ = s.InsertGeneration(domain.Generation{OwnerID: "other", ToolType: domain.ToolContent, Output: "x"})

	count, err := s.CountGenerationsSince("u1", time.Now().UTC().Add(-time.Hour))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}

	count, err = s.CountGenerationsSince("u1", time.Now().UTC().Add(time.Hour))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("future cutoff count = %d, want 0", count)
	}
}
