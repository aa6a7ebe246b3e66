package implementation

import (
	"context"
	"errors"

	"medequip-support-be/internal/model"
	"medequip-support-be/internal/repository/contract"
	"medequip-support-be/pkg/store"

	"gorm.io/gorm"
)

type ClientRepositoryImpl struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) contract.ClientRepository {
	return &ClientRepositoryImpl{db: db}
}

func (r *ClientRepositoryImpl) FindByCredentials(ctx context.Context, email, clientID string) (*store.Identity, error) {
	var m model.Client
	err := r.db.WithContext(ctx).
		Where("email = ? AND client_id = ?", email, clientID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &store.Identity{
		ClientID: m.ClientId,
		Name:     m.Name,
		Email:    m.Email,
	}, nil
}
