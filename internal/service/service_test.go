package service

import (
	"testing"
	"time"

	"blog-backend/internal/database"
	"blog-backend/internal/repository"
	"blog-backend/internal/revocation"
	"blog-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	testAccessTTL  = 30 * time.Minute
	testRefreshTTL = 7 * 24 * time.Hour
)

type testEnv struct {
	db          *gorm.DB
	clock       *time.Time
	codec       *utils.TokenCodec
	revocations *revocation.MemoryStore
	auth        *AuthService
	users       *UserService
	posts       *PostService
	categories  *CategoryService
	audit       *repository.AuditRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.OpenInMemory(uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	codec, err := utils.NewTokenCodec("test-secret", "HS256", testAccessTTL, testRefreshTTL)
	require.NoError(t, err)
	codec.SetClock(clock)

	revocations := revocation.NewMemoryStore()
	revocations.SetClock(clock)

	userRepo := repository.NewUserRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	return &testEnv{
		db:          db,
		clock:       &now,
		codec:       codec,
		revocations: revocations,
		auth:        NewAuthService(userRepo, codec, revocations, utils.NewBcryptHasher(bcrypt.MinCost)),
		users:       NewUserService(userRepo, auditRepo),
		posts:       NewPostService(repository.NewPostRepo(db), auditRepo),
		categories:  NewCategoryService(repository.NewCategoryRepo(db)),
		audit:       auditRepo,
	}
}

func (e *testEnv) advance(d time.Duration) {
	*e.clock = e.clock.Add(d)
}
