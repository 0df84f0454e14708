package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"contentforge/internal/util"
	"contentforge/pkg/auth"
	"contentforge/pkg/domain"
	"contentforge/pkg/generator"
	"contentforge/pkg/history"
	"contentforge/pkg/quota"
	"contentforge/pkg/storage"
	"contentforge/pkg/store"
)

const exportURLTTL = 15 * time.Minute

// Config holds runtime configuration for the core application.
type Config struct {
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	SessionTTL    time.Duration
	JWTSecret     string
	JWTIssuer     string
	JWTAudience   string
	JWTLeeway     time.Duration
	Store         store.Store
	Sessions      store.SessionStore
	Objects       storage.ObjectStore
}

// App is the core application service wiring together storage,
// generation, and session logic.
type App struct {
	store    store.Store
	sessions store.SessionStore
	objects  storage.ObjectStore
}

// New constructs the application. Without a database URL it falls back
// to in-process storage, which is only suitable for local development.
func New(cfg Config) (*App, error) {
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = 24 * time.Hour
	}

	dataStore := cfg.Store
	if dataStore == nil {
		if cfg.DatabaseURL == "" {
			slog.Warn("no database configured, using in-memory store")
			dataStore = store.NewMemoryStore()
		} else {
			var err error
			dataStore, err = store.NewGormStore(cfg.DatabaseURL)
			if err != nil {
				return nil, fmt.Errorf("init postgres store: %w", err)
			}
		}
	}

	sessionStore := cfg.Sessions
	if sessionStore == nil {
		var revoker store.TokenRevoker
		if strings.TrimSpace(cfg.RedisAddr) != "" {
			revoker = store.NewRedisTokenRevoker(cfg.RedisAddr, cfg.RedisPassword)
		} else {
			slog.Warn("no redis configured, session revocation is per-instance")
			revoker = store.NewMemoryTokenRevoker()
		}
		jwtStore, err := store.NewJWTSessionStoreWithOptions(cfg.JWTSecret, cfg.SessionTTL, revoker, store.JWTOptions{
			Issuer:   cfg.JWTIssuer,
			Audience: cfg.JWTAudience,
			Leeway:   cfg.JWTLeeway,
		})
		if err != nil {
			return nil, fmt.Errorf("init jwt session store: %w", err)
		}
		sessionStore = jwtStore
	}

	return &App{
		store:    dataStore,
		sessions: sessionStore,
		objects:  cfg.Objects,
	}, nil
}

// SignUp registers a new user on the free tier and issues a session
// token.
func (a *App) SignUp(email, password, fullName string) (domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return domain.User{}, "", ErrEmailAndPasswordRequired
	}
	if err := auth.ValidatePassword(password); err != nil {
		return domain.User{}, "", err
	}
	exists, err := a.store.HasUserEmail(email)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("check email: %w", err)
	}
	if exists {
		return domain.User{}, "", ErrEmailAlreadyExists
	}
	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}
	now := time.Now().UTC()
	user := domain.User{
		ID:           util.NewID(),
		Email:        email,
		PasswordHash: passwordHash,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := a.store.SaveUser(user); err != nil {
		return domain.User{}, "", fmt.Errorf("save user: %w", err)
	}
	profile := domain.Profile{
		UserID:    user.ID,
		Tier:      domain.TierFree,
		FullName:  strings.TrimSpace(fullName),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.store.SaveProfile(profile); err != nil {
		return domain.User{}, "", fmt.Errorf("save profile: %w", err)
	}
	token, err := a.sessions.NewSession(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("issue session: %w", err)
	}
	return user, token, nil
}

// Login validates credentials and issues a session token.
func (a *App) Login(email, password string) (domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, ok, err := a.store.GetUserByEmail(email)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("fetch user: %w", err)
	}
	if !ok {
		return domain.User{}, "", ErrInvalidCredentials
	}
	if user.Status == domain.StatusDisabled {
		return domain.User{}, "", ErrUserDisabled
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return domain.User{}, "", ErrInvalidCredentials
	}
	token, err := a.sessions.NewSession(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("issue session: %w", err)
	}
	return user, token, nil
}

// Logout invalidates a session token.
func (a *App) Logout(token string) error {
	return a.sessions.DeleteSession(token)
}

// UserFromToken resolves a user from a session token.
func (a *App) UserFromToken(token string) (domain.User, bool) {
	uid, ok, err := a.sessions.GetUserIDByToken(token)
	if err != nil || !ok {
		return domain.User{}, false
	}
	user, found, err := a.store.GetUserByID(uid)
	if err != nil || !found {
		return domain.User{}, false
	}
	if user.Status == domain.StatusDisabled {
		return domain.User{}, false
	}
	return user, true
}

// Profile returns the profile bound to a user, defaulting to the free
// tier when none was stored.
func (a *App) Profile(userID string) (domain.Profile, error) {
	profile, ok, err := a.store.GetProfile(userID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("fetch profile: %w", err)
	}
	if !ok {
		return domain.Profile{UserID: userID, Tier: domain.TierFree}, nil
	}
	return profile, nil
}

// UpdateProfileName changes the display name on a profile.
func (a *App) UpdateProfileName(userID, fullName string) (domain.Profile, error) {
	profile, err := a.Profile(userID)
	if err != nil {
		return domain.Profile{}, err
	}
	profile.FullName = strings.TrimSpace(fullName)
	profile.UpdatedAt = time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = profile.UpdatedAt
	}
	if err := a.store.SaveProfile(profile); err != nil {
		return domain.Profile{}, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

// SubmitResult is the outcome of a generation request. Persisted is
// false when the text was produced but could not be recorded.
type SubmitResult struct {
	Generation domain.Generation
	Persisted  bool
}

// Submit renders a generation for the owner. The tool is resolved
// first, then tier gating, then rendering and persistence. An empty
// ownerID marks an anonymous request: it is rendered without quota
// accounting and never persisted.
func (a *App) Submit(ownerID string, toolType domain.ToolType, input map[string]string) (SubmitResult, error) {
	if _, ok := generator.RequiredField(toolType); !ok {
		return SubmitResult{}, generator.ErrUnknownTool
	}

	if ownerID != "" {
		profile, err := a.Profile(ownerID)
		if err != nil {
			return SubmitResult{}, err
		}
		used, err := a.store.CountGenerationsSince(ownerID, quota.DayStart(time.Now()))
		if err != nil {
			return SubmitResult{}, fmt.Errorf("count generations: %w", err)
		}
		if !quota.Allow(profile.Tier, used) {
			return SubmitResult{}, ErrQuotaExceeded
		}
	}

	output, err := generator.Generate(toolType, input)
	if err != nil {
		return SubmitResult{}, err
	}

	if ownerID == "" {
		return SubmitResult{
			Generation: domain.Generation{
				ToolType:  toolType,
				Input:     input,
				Output:    output,
				CreatedAt: time.Now().UTC(),
			},
		}, nil
	}

	record := domain.Generation{
		OwnerID:  ownerID,
		ToolType: toolType,
		Input:    input,
		Output:   output,
	}
	stored, err := a.store.InsertGeneration(record)
	if err != nil {
		// The rendered text is still returned so the caller does not
		// lose work; the record can be regenerated later.
		slog.Warn("generation not persisted", "owner_id", ownerID, "tool_type", toolType, "err", err)
		record.CreatedAt = time.Now().UTC()
		return SubmitResult{Generation: record}, nil
	}
	return SubmitResult{Generation: stored, Persisted: true}, nil
}

// History returns the owner's records filtered by search term and tool
// type, grouped by tool type.
func (a *App) History(ownerID, searchTerm, toolFilter string) (history.Result, error) {
	records, err := a.store.ListGenerationsByOwner(ownerID)
	if err != nil {
		return history.Result{}, fmt.Errorf("list generations: %w", err)
	}
	return history.Query(records, searchTerm, toolFilter), nil
}

// Get returns one record, enforcing ownership.
func (a *App) Get(ownerID, id string) (domain.Generation, error) {
	record, ok, err := a.store.GetGeneration(id)
	if err != nil {
		return domain.Generation{}, fmt.Errorf("fetch generation: %w", err)
	}
	if !ok {
		return domain.Generation{}, ErrNotFound
	}
	if record.OwnerID != ownerID {
		return domain.Generation{}, ErrForbidden
	}
	return record, nil
}

// Delete removes one record, enforcing ownership.
func (a *App) Delete(ownerID, id string) error {
	if _, err := a.Get(ownerID, id); err != nil {
		return err
	}
	if err := a.store.DeleteGeneration(id); err != nil {
		return fmt.Errorf("delete generation: %w", err)
	}
	return nil
}

// Usage reports the account's quota standing for the current UTC day.
type Usage struct {
	Tier      domain.Tier
	UsedToday int
	Remaining int
	ResetsAt  time.Time
}

// GetUsage loads the profile and today's counter concurrently and
// returns the account's quota standing.
func (a *App) GetUsage(ctx context.Context, userID string) (Usage, error) {
	var (
		profile domain.Profile
		used    int
	)
	now := time.Now()
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = a.Profile(userID)
		return err
	})
	g.Go(func() error {
		var err error
		used, err = a.store.CountGenerationsSince(userID, quota.DayStart(now))
		if err != nil {
			return fmt.Errorf("count generations: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Usage{}, err
	}
	return Usage{
		Tier:      profile.Tier,
		UsedToday: used,
		Remaining: quota.Remaining(profile.Tier, used),
		ResetsAt:  quota.NextReset(now),
	}, nil
}

// Export writes the record's output to object storage as markdown and
// returns a time-limited download URL. Ownership is enforced.
func (a *App) Export(ctx context.Context, ownerID, id string) (string, error) {
	if a.objects == nil {
		return "", ErrExportUnavailable
	}
	record, err := a.Get(ownerID, id)
	if err != nil {
		return "", err
	}
	key := storage.ExportKey(ownerID, record.ID)
	body := strings.NewReader(record.Output)
	if err := a.objects.Put(ctx, key, body, int64(len(record.Output)), "text/markdown"); err != nil {
		return "", fmt.Errorf("store export: %w", err)
	}
	filename := fmt.Sprintf("%s-%s.md", record.ToolType, record.ID)
	url, err := a.objects.PresignGet(ctx, key, filename, exportURLTTL)
	if err != nil {
		return "", fmt.Errorf("presign export: %w", err)
	}
	return url, nil
}
