package memory

import (
	"context"

	"github.com/quytai0402/KhachSan-sub000/internal/domain"
)

// RoomCatalog is a read-only set of rooms fixed at construction.
type RoomCatalog struct {
	rooms map[string]domain.Room
}

func NewRoomCatalog(rooms ...domain.Room) *RoomCatalog {
	c := &RoomCatalog{rooms: make(map[string]domain.Room, len(rooms))}
	for _, r := range rooms {
		c.rooms[r.ID] = r
	}
	return c
}

func (c *RoomCatalog) GetByID(_ context.Context, id string) (*domain.Room, error) {
	r, ok := c.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return &r, nil
}

type AccountDirectory struct {
	accounts map[string]domain.Account
}

func NewAccountDirectory(accounts ...domain.Account) *AccountDirectory {
	d := &AccountDirectory{accounts: make(map[string]domain.Account, len(accounts))}
	for _, a := range accounts {
		d.accounts[a.ID] = a
	}
	return d
}

func (d *AccountDirectory) GetByID(_ context.Context, id string) (*domain.Account, error) {
	a, ok := d.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &a, nil
}
