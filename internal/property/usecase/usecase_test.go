package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatmocks "hearth/internal/chat/mocks"
	chatmodel "hearth/internal/chat/model"
	notifymocks "hearth/internal/notify/mocks"
	"hearth/internal/property"
	"hearth/internal/property/mocks"
	models "hearth/internal/property/model"
	"hearth/internal/property/repository"
	usermocks "hearth/internal/user/mocks"
	usermodels "hearth/internal/user/model"
	appErrors "hearth/pkg/errors"
)

type propertyFixture struct {
	uc    *PropertyUsecase
	repo  *mocks.MockPropertyRepository
	rooms *chatmocks.MockChatRoomRepository
	users *usermocks.MockUserRepository
	pub   *notifymocks.MockPublisher
}

func newPropertyFixture(t *testing.T) propertyFixture {
	ctrl := gomock.NewController(t)
	f := propertyFixture{
		repo:  mocks.NewMockPropertyRepository(ctrl),
		rooms: chatmocks.NewMockChatRoomRepository(ctrl),
		users: usermocks.NewMockUserRepository(ctrl),
		pub:   notifymocks.NewMockPublisher(ctrl),
	}
	f.uc = &PropertyUsecase{
		repo:      f.repo,
		rooms:     f.rooms,
		users:     f.users,
		publisher: f.pub,
		retention: defaultRetention,
	}
	return f
}

func TestPropertyUsecase_Transition(t *testing.T) {
	propertyID := uuid.New()
	ownerID := uuid.New()
	buyerID := uuid.New()
	strangerID := uuid.New()

	available := &models.Property{
		ID:       propertyID,
		OwnerID:  ownerID,
		Title:    "Two-room flat",
		Status:   models.StatusAvailable,
		Purchase: models.PurchaseForSale,
	}
	roomsWithBuyer := []chatmodel.ChatRoom{
		{ID: uuid.New(), PropertyID: propertyID, BuyerID: buyerID, SellerID: ownerID},
	}

	t.Run("happy path - sale to a chat counterparty", func(t *testing.T) {
		f := newPropertyFixture(t)

		g := f.repo.EXPECT()
		g.GetPropertyByID(gomock.Any(), propertyID).Return(available, nil)
		f.rooms.EXPECT().GetRoomsByProperty(gomock.Any(), propertyID).Return(roomsWithBuyer, nil)
		g.UpdateStatus(gomock.Any(), propertyID, models.StatusAvailable, gomock.Any()).Return(nil)
		f.pub.EXPECT().Publish(gomock.Any(), "user."+ownerID.String()+".property", gomock.Any()).Return(nil)
		f.pub.EXPECT().Publish(gomock.Any(), "user."+buyerID.String()+".property", gomock.Any()).Return(nil)

		p, err := f.uc.Transition(context.Background(), property.TransitionCommand{
			PropertyID: propertyID,
			Status:     models.StatusSold,
			BuyerID:    &buyerID,
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusSold, p.Status)
		require.NotNil(t, p.BuyerID)
		assert.Equal(t, buyerID, *p.BuyerID)
		require.NotNil(t, p.TransactionDate)
	})

	t.Run("sad path - sale without a buyer", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.repo.EXPECT().GetPropertyByID(gomock.Any(), propertyID).Return(available, nil)

		_, err := f.uc.Transition(context.Background(), property.TransitionCommand{
			PropertyID: propertyID,
			Status:     models.StatusSold,
		})
		assert.Equal(t, appErrors.ErrNoPotentialBuyer, err)
	})

	t.Run("sad path - buyer never contacted the seller", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.repo.EXPECT().GetPropertyByID(gomock.Any(), propertyID).Return(available, nil)
		f.rooms.EXPECT().GetRoomsByProperty(gomock.Any(), propertyID).Return(roomsWithBuyer, nil)

		_, err := f.uc.Transition(context.Background(), property.TransitionCommand{
			PropertyID: propertyID,
			Status:     models.StatusRented,
			BuyerID:    &strangerID,
		})
		assert.Equal(t, appErrors.ErrNoPotentialBuyer, err)
	})

	t.Run("cancellation ignores any supplied buyer", func(t *testing.T) {
		f := newPropertyFixture(t)

		g := f.repo.EXPECT()
		g.GetPropertyByID(gomock.Any(), propertyID).Return(available, nil)
		g.UpdateStatus(gomock.Any(), propertyID, models.StatusAvailable, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.Status, upd property.StatusUpdate) error {
				assert.Equal(t, models.StatusCancelled, upd.Status)
				assert.Nil(t, upd.BuyerID)
				assert.NotNil(t, upd.TransactionDate)
				return nil
			})
		f.pub.EXPECT().Publish(gomock.Any(), "user."+ownerID.String()+".property", gomock.Any()).Return(nil)

		p, err := f.uc.Transition(context.Background(), property.TransitionCommand{
			PropertyID: propertyID,
			Status:     models.StatusCancelled,
			BuyerID:    &buyerID,
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, p.Status)
		assert.Nil(t, p.BuyerID)
	})

	t.Run("reactivation clears buyer and transaction date", func(t *testing.T) {
		f := newPropertyFixture(t)

		when := time.Now().Add(-24 * time.Hour)
		cancelled := &models.Property{
			ID:              propertyID,
			OwnerID:         ownerID,
			Status:          models.StatusCancelled,
			BuyerID:         &buyerID,
			TransactionDate: &when,
		}

		g := f.repo.EXPECT()
		g.GetPropertyByID(gomock.Any(), propertyID).Return(cancelled, nil)
		g.UpdateStatus(gomock.Any(), propertyID, models.StatusCancelled, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.Status, upd property.StatusUpdate) error {
				assert.Equal(t, models.StatusAvailable, upd.Status)
				assert.Nil(t, upd.BuyerID)
				assert.Nil(t, upd.TransactionDate)
				return nil
			})
		f.pub.EXPECT().Publish(gomock.Any(), "user."+ownerID.String()+".property", gomock.Any()).Return(nil)

		p, err := f.uc.Transition(context.Background(), property.TransitionCommand{
			PropertyID: propertyID,
			Status:     models.StatusAvailable,
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusAvailable, p.Status)
		assert.Nil(t, p.BuyerID)
		assert.Nil(t, p.TransactionDate)
	})

	t.Run("sad path - terminal states cannot reactivate", func(t *testing.T) {
		f := newPropertyFixture(t)

		sold := &models.Property{ID: propertyID, OwnerID: ownerID, Status: models.StatusSold, BuyerID: &buyerID}
		f.repo.EXPECT().GetPropertyByID(gomock.Any(), propertyID).Return(sold, nil)

		_, err := f.uc.Transition(context.Background(), property.TransitionCommand{
			PropertyID: propertyID,
			Status:     models.StatusAvailable,
		})
		assert.Equal(t, appErrors.ErrInvalidTransition, err)
	})

	t.Run("sad path - unknown status", func(t *testing.T) {
		f := newPropertyFixture(t)

		_, err := f.uc.Transition(context.Background(), property.TransitionCommand{
			PropertyID: propertyID,
			Status:     models.Status("archived"),
		})
		assert.Equal(t, appErrors.ErrUnknownStatus, err)
	})

	t.Run("sad path - concurrent transition wins", func(t *testing.T) {
		f := newPropertyFixture(t)

		g := f.repo.EXPECT()
		g.GetPropertyByID(gomock.Any(), propertyID).Return(available, nil)
		f.rooms.EXPECT().GetRoomsByProperty(gomock.Any(), propertyID).Return(roomsWithBuyer, nil)
		g.UpdateStatus(gomock.Any(), propertyID, models.StatusAvailable, gomock.Any()).
			Return(repository.ErrStaleStatus)

		_, err := f.uc.Transition(context.Background(), property.TransitionCommand{
			PropertyID: propertyID,
			Status:     models.StatusSold,
			BuyerID:    &buyerID,
		})
		assert.Equal(t, appErrors.ErrPropertyConflict, err)
	})

	t.Run("sad path - property not found", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.repo.EXPECT().GetPropertyByID(gomock.Any(), propertyID).
			Return(nil, repository.ErrPropertyNotFound)

		_, err := f.uc.Transition(context.Background(), property.TransitionCommand{
			PropertyID: propertyID,
			Status:     models.StatusCancelled,
		})
		assert.Equal(t, appErrors.ErrPropertyNotFound, err)
	})

	t.Run("publish failure never fails the transition", func(t *testing.T) {
		f := newPropertyFixture(t)

		g := f.repo.EXPECT()
		g.GetPropertyByID(gomock.Any(), propertyID).Return(available, nil)
		f.rooms.EXPECT().GetRoomsByProperty(gomock.Any(), propertyID).Return(roomsWithBuyer, nil)
		g.UpdateStatus(gomock.Any(), propertyID, models.StatusAvailable, gomock.Any()).Return(nil)
		f.pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("broker down")).Times(2)

		p, err := f.uc.Transition(context.Background(), property.TransitionCommand{
			PropertyID: propertyID,
			Status:     models.StatusSold,
			BuyerID:    &buyerID,
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusSold, p.Status)
	})
}

func TestPropertyUsecase_PotentialBuyers(t *testing.T) {
	propertyID := uuid.New()
	ownerID := uuid.New()
	buyerA := uuid.New()
	buyerB := uuid.New()

	prop := &models.Property{ID: propertyID, OwnerID: ownerID, Status: models.StatusAvailable}

	t.Run("happy path - distinct counterparties resolved", func(t *testing.T) {
		f := newPropertyFixture(t)

		rooms := []chatmodel.ChatRoom{
			{ID: uuid.New(), PropertyID: propertyID, BuyerID: buyerA, SellerID: ownerID},
			{ID: uuid.New(), PropertyID: propertyID, BuyerID: buyerA, SellerID: ownerID},
			{ID: uuid.New(), PropertyID: propertyID, BuyerID: buyerB, SellerID: ownerID},
		}

		f.repo.EXPECT().GetPropertyByID(gomock.Any(), propertyID).Return(prop, nil)
		f.rooms.EXPECT().GetRoomsByProperty(gomock.Any(), propertyID).Return(rooms, nil)
		f.users.EXPECT().GetUsersByIDs(gomock.Any(), []uuid.UUID{buyerA, buyerB}).Return([]usermodels.User{
			{ID: buyerA, Name: "Alice", Email: "alice@example.com"},
			{ID: buyerB, Name: "Bob", Email: "bob@example.com"},
		}, nil)

		buyers, err := f.uc.PotentialBuyers(context.Background(), propertyID)
		require.NoError(t, err)
		require.Len(t, buyers, 2)
		assert.Equal(t, "Alice", buyers[0].Name)
		assert.Equal(t, "bob@example.com", buyers[1].Email)
	})

	t.Run("no rooms yields an empty list", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.repo.EXPECT().GetPropertyByID(gomock.Any(), propertyID).Return(prop, nil)
		f.rooms.EXPECT().GetRoomsByProperty(gomock.Any(), propertyID).Return(nil, nil)

		buyers, err := f.uc.PotentialBuyers(context.Background(), propertyID)
		require.NoError(t, err)
		assert.Empty(t, buyers)
	})

	t.Run("sad path - property not found", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.repo.EXPECT().GetPropertyByID(gomock.Any(), propertyID).
			Return(nil, repository.ErrPropertyNotFound)

		_, err := f.uc.PotentialBuyers(context.Background(), propertyID)
		assert.Equal(t, appErrors.ErrPropertyNotFound, err)
	})
}

func TestPropertyUsecase_Delete(t *testing.T) {
	propertyID := uuid.New()
	ownerID := uuid.New()
	prop := &models.Property{ID: propertyID, OwnerID: ownerID, Status: models.StatusAvailable}

	t.Run("happy path - cascades chat rooms first", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.repo.EXPECT().GetPropertyByID(gomock.Any(), propertyID).Return(prop, nil)
		f.rooms.EXPECT().DeleteRoomsByProperty(gomock.Any(), propertyID).Return(3, nil)
		f.repo.EXPECT().DeleteProperty(gomock.Any(), propertyID).Return(nil)

		err := f.uc.Delete(context.Background(), propertyID)
		require.NoError(t, err)
	})

	t.Run("concurrent delete finishing first still succeeds", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.repo.EXPECT().GetPropertyByID(gomock.Any(), propertyID).Return(prop, nil)
		f.rooms.EXPECT().DeleteRoomsByProperty(gomock.Any(), propertyID).Return(0, nil)
		f.repo.EXPECT().DeleteProperty(gomock.Any(), propertyID).Return(repository.ErrPropertyNotFound)

		err := f.uc.Delete(context.Background(), propertyID)
		require.NoError(t, err)
	})

	t.Run("sad path - cascade failure leaves the property", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.repo.EXPECT().GetPropertyByID(gomock.Any(), propertyID).Return(prop, nil)
		f.rooms.EXPECT().DeleteRoomsByProperty(gomock.Any(), propertyID).Return(0, errors.New("db down"))

		err := f.uc.Delete(context.Background(), propertyID)
		require.Error(t, err)
		assert.Equal(t, appErrors.Internal("failed to delete chat rooms"), err)
	})
}

func TestPropertyUsecase_ExpireSweep(t *testing.T) {
	now := time.Now()

	cutoff := now.Add(-defaultRetention)

	t.Run("removes expired properties with their rooms", func(t *testing.T) {
		f := newPropertyFixture(t)

		expired := []models.Property{
			{ID: uuid.New(), Status: models.StatusSold},
			{ID: uuid.New(), Status: models.StatusCancelled},
		}

		f.repo.EXPECT().ListExpired(gomock.Any(), cutoff).Return(expired, nil)
		for _, p := range expired {
			f.repo.EXPECT().DeleteExpired(gomock.Any(), p.ID, cutoff).Return(nil)
			f.rooms.EXPECT().DeleteRoomsByProperty(gomock.Any(), p.ID).Return(1, nil)
		}

		err := f.uc.ExpireSweep(context.Background(), now)
		require.NoError(t, err)
	})

	t.Run("reactivation racing the sweep keeps the listing and its rooms", func(t *testing.T) {
		f := newPropertyFixture(t)

		reactivated := models.Property{ID: uuid.New(), Status: models.StatusCancelled}
		stillExpired := models.Property{ID: uuid.New(), Status: models.StatusSold}

		f.repo.EXPECT().ListExpired(gomock.Any(), cutoff).
			Return([]models.Property{reactivated, stillExpired}, nil)
		// The owner relisted after the candidate read; the conditional delete
		// finds nothing to remove and the rooms must survive.
		f.repo.EXPECT().DeleteExpired(gomock.Any(), reactivated.ID, cutoff).
			Return(repository.ErrStaleStatus)
		f.repo.EXPECT().DeleteExpired(gomock.Any(), stillExpired.ID, cutoff).Return(nil)
		f.rooms.EXPECT().DeleteRoomsByProperty(gomock.Any(), stillExpired.ID).Return(1, nil)

		err := f.uc.ExpireSweep(context.Background(), now)
		require.NoError(t, err)
	})

	t.Run("per-property failure does not stop the batch", func(t *testing.T) {
		f := newPropertyFixture(t)

		broken := models.Property{ID: uuid.New(), Status: models.StatusRented}
		healthy := models.Property{ID: uuid.New(), Status: models.StatusSold}

		f.repo.EXPECT().ListExpired(gomock.Any(), gomock.Any()).
			Return([]models.Property{broken, healthy}, nil)
		f.repo.EXPECT().DeleteExpired(gomock.Any(), broken.ID, gomock.Any()).Return(errors.New("db timeout"))
		f.repo.EXPECT().DeleteExpired(gomock.Any(), healthy.ID, gomock.Any()).Return(nil)
		f.rooms.EXPECT().DeleteRoomsByProperty(gomock.Any(), healthy.ID).Return(0, nil)

		err := f.uc.ExpireSweep(context.Background(), now)
		require.NoError(t, err)
	})

	t.Run("sad path - candidate query fails the sweep", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.repo.EXPECT().ListExpired(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		err := f.uc.ExpireSweep(context.Background(), now)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
	})
}
