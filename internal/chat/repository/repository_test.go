package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	models "hearth/internal/chat/model"
	"hearth/pkg/logger"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("hearth"),
		postgres.WithUsername("hearth"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := container.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connection string: %v", err)
		return
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	testDB = bun.NewDB(sql.OpenDB(connector), pgdialect.New())

	if err := testDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	if _, err := testDB.NewCreateTable().Model((*models.ChatRoom)(nil)).IfNotExists().Exec(ctx); err != nil {
		testDB.Close()
		log.Fatalf("failed to create table: %v", err)
	}

	code := m.Run()

	testDB.Close()
	os.Exit(code)
}

func cleanup(t *testing.T) {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE chat_rooms RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	})
}

func Test_CreateAndGetRoom(t *testing.T) {
	cleanup(t)
	repo := NewChatRoomRepository(testDB, logger.Logger{})

	room := &models.ChatRoom{
		PropertyID: uuid.New(),
		BuyerID:    uuid.New(),
		SellerID:   uuid.New(),
	}
	require.NoError(t, repo.CreateRoom(t.Context(), room))
	assert.NotEqual(t, uuid.Nil, room.ID)

	fetched, err := repo.GetRoomByID(t.Context(), room.ID)
	require.NoError(t, err)
	assert.Equal(t, room.PropertyID, fetched.PropertyID)
	assert.Equal(t, room.BuyerID, fetched.BuyerID)
	assert.Equal(t, room.SellerID, fetched.SellerID)

	_, err = repo.GetRoomByID(t.Context(), uuid.New())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func Test_GetRoomsByParticipant(t *testing.T) {
	cleanup(t)
	repo := NewChatRoomRepository(testDB, logger.Logger{})

	userID := uuid.New()

	asBuyer := &models.ChatRoom{PropertyID: uuid.New(), BuyerID: userID, SellerID: uuid.New()}
	asSeller := &models.ChatRoom{PropertyID: uuid.New(), BuyerID: uuid.New(), SellerID: userID}
	unrelated := &models.ChatRoom{PropertyID: uuid.New(), BuyerID: uuid.New(), SellerID: uuid.New()}
	for _, room := range []*models.ChatRoom{asBuyer, asSeller, unrelated} {
		require.NoError(t, repo.CreateRoom(t.Context(), room))
	}

	rooms, err := repo.GetRoomsByParticipant(t.Context(), userID)
	require.NoError(t, err)
	require.Len(t, rooms, 2)

	ids := []uuid.UUID{rooms[0].ID, rooms[1].ID}
	assert.ElementsMatch(t, []uuid.UUID{asBuyer.ID, asSeller.ID}, ids)
}

func Test_GetRoomsByProperty(t *testing.T) {
	cleanup(t)
	repo := NewChatRoomRepository(testDB, logger.Logger{})

	propertyID := uuid.New()
	sellerID := uuid.New()

	for i := 0; i < 3; i++ {
		room := &models.ChatRoom{PropertyID: propertyID, BuyerID: uuid.New(), SellerID: sellerID}
		require.NoError(t, repo.CreateRoom(t.Context(), room))
	}
	other := &models.ChatRoom{PropertyID: uuid.New(), BuyerID: uuid.New(), SellerID: sellerID}
	require.NoError(t, repo.CreateRoom(t.Context(), other))

	rooms, err := repo.GetRoomsByProperty(t.Context(), propertyID)
	require.NoError(t, err)
	assert.Len(t, rooms, 3)
}

func Test_DeleteRoomsByProperty(t *testing.T) {
	cleanup(t)
	repo := NewChatRoomRepository(testDB, logger.Logger{})

	propertyID := uuid.New()
	for i := 0; i < 2; i++ {
		room := &models.ChatRoom{PropertyID: propertyID, BuyerID: uuid.New(), SellerID: uuid.New()}
		require.NoError(t, repo.CreateRoom(t.Context(), room))
	}
	kept := &models.ChatRoom{PropertyID: uuid.New(), BuyerID: uuid.New(), SellerID: uuid.New()}
	require.NoError(t, repo.CreateRoom(t.Context(), kept))

	deleted, err := repo.DeleteRoomsByProperty(t.Context(), propertyID)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	// Idempotent: nothing left to delete.
	deleted, err = repo.DeleteRoomsByProperty(t.Context(), propertyID)
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)

	_, err = repo.GetRoomByID(t.Context(), kept.ID)
	assert.NoError(t, err)
}

func Test_DeleteRoom(t *testing.T) {
	cleanup(t)
	repo := NewChatRoomRepository(testDB, logger.Logger{})

	room := &models.ChatRoom{PropertyID: uuid.New(), BuyerID: uuid.New(), SellerID: uuid.New()}
	require.NoError(t, repo.CreateRoom(t.Context(), room))

	require.NoError(t, repo.DeleteRoom(t.Context(), room.ID))
	assert.ErrorIs(t, repo.DeleteRoom(t.Context(), room.ID), ErrRoomNotFound)
}
