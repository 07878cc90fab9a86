package ports

import (
	"context"

	"github.com/quytai0402/KhachSan-sub000/internal/domain"
)

type RoomCatalog interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

type AccountDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}
