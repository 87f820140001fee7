package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-navigation/internal/logger"
	"github.com/sbilibin2017/gw-navigation/internal/models"
)

// ErrAddressNotFound is returned when the address does not exist or is
// owned by another user. The two cases are deliberately indistinguishable.
var ErrAddressNotFound = errors.New("address not found")

// AddressReader defines address history read operations.
type AddressReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.AddressDB, error)
}

// AddressWriter defines address history write operations.
type AddressWriter interface {
	Upsert(ctx context.Context, userID uuid.UUID, address string, lat, lng float64) (*models.AddressDB, bool, error)
	Delete(ctx context.Context, userID, addressID uuid.UUID) error
}

// AddressService manages a user's destination history.
type AddressService struct {
	reader AddressReader
	writer AddressWriter
}

// NewAddressService creates a new AddressService instance.
func NewAddressService(reader AddressReader, writer AddressWriter) *AddressService {
	return &AddressService{
		reader: reader,
		writer: writer,
	}
}

// List returns the user's saved addresses, most recently touched first.
func (svc *AddressService) List(ctx context.Context, userID uuid.UUID) ([]models.AddressDB, error) {
	addresses, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list addresses", "userID", userID, "err", err)
		return nil, err
	}
	return addresses, nil
}

// Save records a visit to a destination. Repeat visits to the exact same
// coordinates refresh the existing bookmark instead of creating a new one.
// The second return value reports whether a new bookmark was created.
func (svc *AddressService) Save(ctx context.Context, userID uuid.UUID, address string, lat, lng float64) (*models.AddressDB, bool, error) {
	saved, created, err := svc.writer.Upsert(ctx, userID, address, lat, lng)
	if err != nil {
		logger.Log.Errorw("failed to save address", "userID", userID, "err", err)
		return nil, false, err
	}
	return saved, created, nil
}

// Delete removes an address owned by the given user.
func (svc *AddressService) Delete(ctx context.Context, userID, addressID uuid.UUID) error {
	err := svc.writer.Delete(ctx, userID, addressID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAddressNotFound
		}
		logger.Log.Errorw("failed to delete address", "userID", userID, "addressID", addressID, "err", err)
		return err
	}
	return nil
}
