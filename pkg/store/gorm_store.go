package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"contentforge/pkg/domain"
)

const migrateLockID int64 = 48104810

// GormStore implements Store using GORM + Postgres.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the DB and runs auto-migrations.
func NewGormStore(dsn string) (*GormStore, error) {
	gormLog := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := withMigrationLock(db, func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(&UserModel{}, &ProfileModel{}, &GenerationModel{}); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		if err := tx.Exec(`
			DO $$
			BEGIN
				DELETE FROM profile_models p
				WHERE NOT EXISTS (SELECT 1 FROM user_models u WHERE u.id = p.user_id);
				IF NOT EXISTS (
					SELECT 1 FROM information_schema.table_constraints
					WHERE table_schema = 'public'
					AND table_name = 'profile_models'
					AND constraint_name = 'profile_models_user_id_fkey'
				) THEN
					ALTER TABLE profile_models
					ADD CONSTRAINT profile_models_user_id_fkey
					FOREIGN KEY (user_id) REFERENCES user_models(id) ON DELETE CASCADE;
				END IF;
			END $$;
		`).Error; err != nil {
			return fmt.Errorf("ensure profile foreign key: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func withMigrationLock(db *gorm.DB, fn func(*gorm.DB) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("open sql conn: %w", err)
	}
	defer conn.Close()
	if err := execAdvisory(ctx, conn, "SELECT pg_advisory_lock($1)", migrateLockID); err != nil {
		return fmt.Errorf("acquire migrate lock: %w", err)
	}
	defer func() {
		_ = execAdvisory(ctx, conn, "SELECT pg_advisory_unlock($1)", migrateLockID)
	}()
	return fn(db)
}

func execAdvisory(ctx context.Context, conn *sql.Conn, query string, lockID int64) error {
	_, err := conn.ExecContext(ctx, query, lockID)
	return err
}

// SaveUser registers or updates a user.
func (s *GormStore) SaveUser(u domain.User) error {
	model := userToModel(u)
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "password_hash", "status", "updated_at"}),
	}).Create(&model).Error
}

// HasUserEmail checks if email exists.
func (s *GormStore) HasUserEmail(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetUserByEmail looks up a user by email.
func (s *GormStore) GetUserByEmail(email string) (domain.User, bool, error) {
	var model UserModel
	if err := s.db.Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}
	return userFromModel(model), true, nil
}

// GetUserByID returns a user by ID.
func (s *GormStore) GetUserByID(id string) (domain.User, bool, error) {
	var model UserModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}
	return userFromModel(model), true, nil
}

// SaveProfile stores or updates a profile.
func (s *GormStore) SaveProfile(p domain.Profile) error {
	model := profileToModel(p)
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tier", "full_name", "updated_at"}),
	}).Create(&model).Error
}

// GetProfile returns the profile bound to a user.
func (s *GormStore) GetProfile(userID string) (domain.Profile, bool, error) {
	var model ProfileModel
	if err := s.db.First(&model, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Profile{}, false, nil
		}
		return domain.Profile{}, false, err
	}
	return profileFromModel(model), true, nil
}

// InsertGeneration persists a new record, assigning its ID and
// creation time. The stored record is returned.
func (s *GormStore) InsertGeneration(g domain.Generation) (domain.Generation, error) {
	g.ID = uuid.NewString()
	g.CreatedAt = time.Now().UTC()
	model, err := generationToModel(g)
	if err != nil {
		return domain.Generation{}, err
	}
	if err := s.db.Create(&model).Error; err != nil {
		return domain.Generation{}, err
	}
	return g, nil
}

// GetGeneration retrieves one record by ID.
func (s *GormStore) GetGeneration(id string) (domain.Generation, bool, error) {
	var model GenerationModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Generation{}, false, nil
		}
		return domain.Generation{}, false, err
	}
	return generationFromModel(model), true, nil
}

// ListGenerationsByOwner returns all records of an owner, newest first.
func (s *GormStore) ListGenerationsByOwner(ownerID string) ([]domain.Generation, error) {
	var models []GenerationModel
	if err := s.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Generation, 0, len(models))
	for _, m := range models {
		res = append(res, generationFromModel(m))
	}
	return res, nil
}

// DeleteGeneration removes one record.
func (s *GormStore) DeleteGeneration(id string) error {
	return s.db.Delete(&GenerationModel{}, "id = ?", id).Error
}

// CountGenerationsSince counts an owner's records created at or after
// the cutoff.
func (s *GormStore) CountGenerationsSince(ownerID string, since time.Time) (int, error) {
	var count int64
	if err := s.db.Model(&GenerationModel{}).
		Where("owner_id = ? AND created_at >= ?", ownerID, since.UTC()).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func userToModel(u domain.User) UserModel {
	return UserModel{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Status:       string(u.Status),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func userFromModel(m UserModel) domain.User {
	status := domain.UserStatus(m.Status)
	if status == "" {
		status = domain.StatusActive
	}
	return domain.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Status:       status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func profileToModel(p domain.Profile) ProfileModel {
	return ProfileModel{
		UserID:    p.UserID,
		Tier:      string(p.Tier),
		FullName:  p.FullName,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func profileFromModel(m ProfileModel) domain.Profile {
	tier := domain.Tier(m.Tier)
	if tier == "" {
		tier = domain.TierFree
	}
	return domain.Profile{
		UserID:    m.UserID,
		Tier:      tier,
		FullName:  m.FullName,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func generationToModel(g domain.Generation) (GenerationModel, error) {
	input, err := json.Marshal(g.Input)
	if err != nil {
		return GenerationModel{}, fmt.Errorf("marshal generation input: %w", err)
	}
	return GenerationModel{
		ID:        g.ID,
		OwnerID:   g.OwnerID,
		ToolType:  string(g.ToolType),
		Input:     input,
		Output:    g.Output,
		CreatedAt: g.CreatedAt,
	}, nil
}

func generationFromModel(m GenerationModel) domain.Generation {
	var input map[string]string
	if len(m.Input) > 0 {
		_ = json.Unmarshal(m.Input, &input)
	}
	return domain.Generation{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		ToolType:  domain.ToolType(m.ToolType),
		Input:     input,
		Output:    m.Output,
		CreatedAt: m.CreatedAt,
	}
}
