package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"contentforge/pkg/domain"
	"contentforge/pkg/generator"
	"contentforge/pkg/quota"
	"contentforge/pkg/store"
)

const testPassword = "Str0ng#Password!"

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := New(Config{
		Store:     store.NewMemoryStore(),
		JWTSecret: "0123456789abcdef0123456789abcdef",
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return a
}

func signUpTestUser(t *testing.T, a *App, email string) (domain.User, string) {
	t.Helper()
	user, token, err := a.SignUp(email, testPassword, "Test User")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	return user, token
}

func TestSignUpLoginLogout(t *testing.T) {
	a := newTestApp(t)

	user, token := signUpTestUser(t, a, "ada@example.com")
	if user.ID == "" || token == "" {
		t.Fatalf("expected user and token")
	}

	got, ok := a.UserFromToken(token)
	if !ok || got.ID != user.ID {
		t.Fatalf("token did not resolve to user")
	}

	if _, _, err := a.SignUp("ada@example.com", testPassword, ""); !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected duplicate email error, got: %v", err)
	}

	if _, _, err := a.Login("ada@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got: %v", err)
	}
	_, loginToken, err := a.Login("Ada@Example.com", testPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := a.Logout(loginToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := a.UserFromToken(loginToken); ok {
		t.Fatalf("token still valid after logout")
	}
}

func TestSignUpStartsOnFreeTier(t *testing.T) {
	a := newTestApp(t)
	user, _ := signUpTestUser(t, a, "ada@example.com")

	profile, err := a.Profile(user.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.Tier != domain.TierFree {
		t.Fatalf("tier = %s, want free", profile.Tier)
	}
	if profile.FullName != "Test User" {
		t.Fatalf("full name = %q", profile.FullName)
	}
}

func TestSubmitPersistsAndCounts(t *testing.T) {
	a := newTestApp(t)
	user, _ := signUpTestUser(t, a, "ada@example.com")

	res, err := a.Submit(user.ID, domain.ToolRap, map[string]string{"topic": "coffee"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Persisted {
		t.Fatalf("expected record to persist")
	}
	if res.Generation.ID == "" || res.Generation.CreatedAt.IsZero() {
		t.Fatalf("expected store-assigned identity")
	}
	if res.Generation.OwnerID != user.ID {
		t.Fatalf("owner = %q", res.Generation.OwnerID)
	}

	usage, err := a.GetUsage(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if usage.UsedToday != 1 || usage.Remaining != quota.FreeDailyLimit-1 {
		t.Fatalf("usage = %+v", usage)
	}
	if !usage.ResetsAt.After(time.Now()) {
		t.Fatalf("reset time not in the future")
	}
}

func TestSubmitFreeTierDailyLimit(t *testing.T) {
	a := newTestApp(t)
	user, _ := signUpTestUser(t, a, "ada@example.com")

	for i := 0; i < quota.FreeDailyLimit; i++ {
		if _, err := a.Submit(user.ID, domain.ToolContent, map[string]string{"topic": "go"}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if _, err := a.Submit(user.ID, domain.ToolContent, map[string]string{"topic": "go"}); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected quota error, got: %v", err)
	}
}

func TestSubmitProTierUnlimited(t *testing.T) {
	a := newTestApp(t)
	user, _ := signUpTestUser(t, a, "pro@example.com")

	profile, _ := a.Profile(user.ID)
	profile.Tier = domain.TierPro
	if err := a.store.SaveProfile(profile); err != nil {
		t.Fatalf("upgrade profile: %v", err)
	}

	for i := 0; i < quota.FreeDailyLimit+3; i++ {
		if _, err := a.Submit(user.ID, domain.ToolContent, map[string]string{"topic": "go"}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
}

func TestSubmitErrorOrdering(t *testing.T) {
	a := newTestApp(t)
	user, _ := signUpTestUser(t, a, "ada@example.com")

	var vErr *generator.ValidationError
	if _, err := a.Submit(user.ID, domain.ToolContent, map[string]string{}); !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got: %v", err)
	}
	if _, err := a.Submit(user.ID, "bogus", map[string]string{"topic": "go"}); !errors.Is(err, generator.ErrUnknownTool) {
		t.Fatalf("expected unknown tool error, got: %v", err)
	}
	// Failed attempts never consume quota.
	usage, err := a.GetUsage(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if usage.UsedToday != 0 {
		t.Fatalf("failed submits consumed quota: %d", usage.UsedToday)
	}

	for i := 0; i < quota.FreeDailyLimit; i++ {
		if _, err := a.Submit(user.ID, domain.ToolContent, map[string]string{"topic": "go"}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	// With the quota exhausted, gating wins over input validation but
	// an unknown tool is still reported as such.
	if _, err := a.Submit(user.ID, domain.ToolContent, map[string]string{}); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected quota error, got: %v", err)
	}
	if _, err := a.Submit(user.ID, "bogus", map[string]string{"topic": "go"}); !errors.Is(err, generator.ErrUnknownTool) {
		t.Fatalf("expected unknown tool error, got: %v", err)
	}
}

func TestSubmitAnonymousSkipsQuotaAndPersistence(t *testing.T) {
	a := newTestApp(t)

	for i := 0; i < quota.FreeDailyLimit+2; i++ {
		res, err := a.Submit("", domain.ToolRap, map[string]string{"topic": "coffee"})
		if err != nil {
			t.Fatalf("anonymous submit %d: %v", i, err)
		}
		if res.Persisted || res.Generation.ID != "" {
			t.Fatalf("anonymous generation was persisted")
		}
		if res.Generation.Output == "" {
			t.Fatalf("expected rendered output")
		}
	}
}

type insertFailingStore struct {
	store.Store
}

func (s insertFailingStore) InsertGeneration(domain.Generation) (domain.Generation, error) {
	return domain.Generation{}, errors.New("db down")
}

func TestSubmitReturnsTextWhenPersistenceFails(t *testing.T) {
	a, err := New(Config{
		Store:     insertFailingStore{Store: store.NewMemoryStore()},
		JWTSecret: "0123456789abcdef0123456789abcdef",
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	user, _ := signUpTestUser(t, a, "ada@example.com")

	res, err := a.Submit(user.ID, domain.ToolRap, map[string]string{"topic": "coffee"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Persisted {
		t.Fatalf("expected persistence failure to be reported")
	}
	if res.Generation.Output == "" {
		t.Fatalf("expected rendered output despite storage failure")
	}
}

func TestHistoryGroupsOwnRecordsOnly(t *testing.T) {
	a := newTestApp(t)
	ada, _ := signUpTestUser(t, a, "ada@example.com")
	eve, _ := signUpTestUser(t, a, "eve@example.com")

	if _, err := a.Submit(ada.ID, domain.ToolRap, map[string]string{"topic": "coffee"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := a.Submit(ada.ID, domain.ToolStory, map[string]string{"protagonist": "Luna"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := a.Submit(eve.ID, domain.ToolRap, map[string]string{"topic": "tea"}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	res, err := a.History(ada.ID, "", "all")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if res.Total != 2 {
		t.Fatalf("total = %d, want 2", res.Total)
	}
	for _, g := range res.Groups {
		for _, r := range g.Records {
			if r.OwnerID != ada.ID {
				t.Fatalf("foreign record in history")
			}
		}
	}
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	a := newTestApp(t)
	ada, _ := signUpTestUser(t, a, "ada@example.com")
	eve, _ := signUpTestUser(t, a, "eve@example.com")

	res, err := a.Submit(ada.ID, domain.ToolRap, map[string]string{"topic": "coffee"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	id := res.Generation.ID

	if err := a.Delete(eve.ID, id); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden, got: %v", err)
	}
	if err := a.Delete(ada.ID, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got: %v", err)
	}
	if err := a.Delete(ada.ID, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := a.Delete(ada.ID, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found after delete, got: %v", err)
	}
}

func TestUpdateProfileName(t *testing.T) {
	a := newTestApp(t)
	user, _ := signUpTestUser(t, a, "ada@example.com")

	profile, err := a.UpdateProfileName(user.ID, "  Ada Lovelace  ")
	if err != nil {
		t.Fatalf("update name: %v", err)
	}
	if profile.FullName != "Ada Lovelace" {
		t.Fatalf("full name = %q", profile.FullName)
	}
	reloaded, _ := a.Profile(user.ID)
	if reloaded.FullName != "Ada Lovelace" {
		t.Fatalf("name not persisted")
	}
}

type stubObjectStore struct {
	puts map[string]string
}

func (s *stubObjectStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.puts[key] = string(data)
	return nil
}

func (s *stubObjectStore) PresignGet(_ context.Context, key, filename string, _ time.Duration) (string, error) {
	return fmt.Sprintf("https://objects.local/%s?filename=%s", key, filename), nil
}

func (s *stubObjectStore) Delete(_ context.Context, key string) error {
	delete(s.puts, key)
	return nil
}

func TestExportUploadsMarkdownAndPresigns(t *testing.T) {
	objects := &stubObjectStore{puts: make(map[string]string)}
	a, err := New(Config{
		Store:     store.NewMemoryStore(),
		JWTSecret: "0123456789abcdef0123456789abcdef",
		Objects:   objects,
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	ada, _ := signUpTestUser(t, a, "ada@example.com")
	eve, _ := signUpTestUser(t, a, "eve@example.com")

	res, err := a.Submit(ada.ID, domain.ToolRap, map[string]string{"topic": "coffee"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	url, err := a.Export(context.Background(), ada.ID, res.Generation.ID)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(url, res.Generation.ID) {
		t.Fatalf("url missing record id: %s", url)
	}
	stored, ok := objects.puts[fmt.Sprintf("exports/%s/%s.md", ada.ID, res.Generation.ID)]
	if !ok || stored != res.Generation.Output {
		t.Fatalf("export body not uploaded")
	}

	if _, err := a.Export(context.Background(), eve.ID, res.Generation.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden, got: %v", err)
	}
}

func TestExportWithoutObjectStorage(t *testing.T) {
	a := newTestApp(t)
	user, _ := signUpTestUser(t, a, "ada@example.com")
	res, err := a.Submit(user.ID, domain.ToolRap, map[string]string{"topic": "coffee"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := a.Export(context.Background(), user.ID, res.Generation.ID); !errors.Is(err, ErrExportUnavailable) {
		t.Fatalf("expected export unavailable, got: %v", err)
	}
}
