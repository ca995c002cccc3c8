package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"mall/internal/domain/entity"
	"mall/internal/domain/repository"
	"mall/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	containerOnce sync.Once
	sharedDSN     string
	containerErr  error
)

// setupTestDB starts a shared PostgreSQL container (once for the entire test
// run), migrates the schema, and returns a gorm handle connected to it. The
// container lives until the process exits.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	containerOnce.Do(func() {
		sharedDSN, containerErr = startContainer()
	})
	if containerErr != nil {
		t.Fatalf("failed to setup test DB: %v", containerErr)
	}

	db, err := gorm.Open(pgdriver.Open(sharedDSN), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open gorm connection: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to start postgres container")
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve container host")
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve mapped port")
	}

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	if err := migrate(dsn); err != nil {
		return "", err
	}

	return dsn, nil
}

func migrate(dsn string) error {
	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to open gorm connection for migration")
	}

	// The column defaults reference uuid_generate_v7, which the stock
	// postgres image lacks; gen_random_uuid stands in for it here.
	if err := db.Exec(
		`CREATE OR REPLACE FUNCTION uuid_generate_v7() RETURNS uuid LANGUAGE sql AS $$ SELECT gen_random_uuid() $$`,
	).Error; err != nil {
		return errors.Wrap(err, "failed to create uuid function")
	}

	if err := db.AutoMigrate(
		&model.AccountModel{},
		&model.ShopModel{},
		&model.NotificationModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	if sqlDB, dbErr := db.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}

	return nil
}

func seedPendingShop(t *testing.T, repo repository.ShopRepository, ownerID uuid.UUID) *entity.Shop {
	t.Helper()

	shop := &entity.Shop{
		OwnerID:  ownerID,
		Name:     "Thimble & Thread",
		Category: entity.CategoryFashion,
		Status:   entity.ShopStatusPending,
	}
	require.NoError(t, repo.Create(context.Background(), shop))
	require.NotEqual(t, uuid.Nil, shop.ID)

	return shop
}

func TestShopRepository_UpdateStatus_ConcurrentApproveSingleWinner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewShopRepository(db)
	ctx := context.Background()

	shop := seedPendingShop(t, repo, uuid.New())

	const contenders = 4

	results := make(chan error, contenders)
	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.UpdateStatus(ctx, shop.ID, entity.ShopStatusPending, entity.ShopStatusApproved, "")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var winners, conflicts int
	for err := range results {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, repository.ErrStatusConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error from contended transition: %v", err)
		}
	}

	assert.Equal(t, 1, winners)
	assert.Equal(t, contenders-1, conflicts)

	reloaded, err := repo.FindByID(ctx, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShopStatusApproved, reloaded.Status)
}

func TestShopRepository_Create_SecondActiveShopRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewShopRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	first := seedPendingShop(t, repo, ownerID)

	second := &entity.Shop{
		OwnerID:  ownerID,
		Name:     "Second Stall",
		Category: entity.CategoryFood,
	}
	err := repo.Create(ctx, second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrDuplicateActiveShop))

	// A raw insert bypasses the repository's pre-count, so only the partial
	// unique index on owner_id stands between a concurrent double submit and
	// two active rows.
	raw := fromShopDomain(second)
	raw.Status = entity.ShopStatusPending.String()
	insertErr := db.WithContext(ctx).Create(raw).Error
	require.Error(t, insertErr)
	assert.True(t, isUniqueConstraintViolation(insertErr))

	// Rejection frees the slot for a fresh registration.
	_, err = repo.UpdateStatus(ctx, first.ID, entity.ShopStatusPending, entity.ShopStatusRejected, "incomplete paperwork")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, second))
}

func TestNotificationRepository_MarkRead_IdempotentAcrossRetries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	recipientID := uuid.New()
	template := entity.NotificationTemplate{
		Type:     entity.NotificationShopApproved,
		Title:    "Your boutique is approved",
		Body:     "Trading may begin immediately.",
		Priority: entity.PriorityMedium,
	}

	result, err := repo.CreateEach(ctx, []*entity.Notification{template.Build(recipientID, entity.RoleVendor)})
	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	require.Empty(t, result.Failed)

	row := result.Created[0]

	first, err := repo.MarkRead(ctx, row.ID, recipientID)
	require.NoError(t, err)
	assert.True(t, first.Read)

	// A retried mark-read lands on an already-read row and must behave
	// exactly like the first call.
	second, err := repo.MarkRead(ctx, row.ID, recipientID)
	require.NoError(t, err)
	assert.True(t, second.Read)

	count, err := repo.CountUnread(ctx, recipientID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	_, err = repo.MarkRead(ctx, row.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrNotificationNotFound))
}
