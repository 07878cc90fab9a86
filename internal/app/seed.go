package app

import "github.com/quytai0402/KhachSan-sub000/internal/domain"

// demoRooms mirrors migrations/00002_seed.sql so the memory driver serves the same catalog.
func demoRooms() []domain.Room {
	single := domain.RoomType{ID: domain.RoomTypeSingle, Name: "Single"}
	double := domain.RoomType{ID: domain.RoomTypeDouble, Name: "Double"}
	family := domain.RoomType{ID: domain.RoomTypeFamily, Name: "Family"}
	suite := domain.RoomType{ID: domain.RoomTypeSuite, Name: "Suite"}

	return []domain.Room{
		{ID: "R101", Number: "101", Type: single, NightlyRate: 600_000, Capacity: 1, Floor: 1, Status: domain.RoomStatusAvailable},
		{ID: "R102", Number: "102", Type: double, NightlyRate: 900_000, Capacity: 2, Floor: 1, Status: domain.RoomStatusAvailable},
		{ID: "R201", Number: "201", Type: double, NightlyRate: 1_000_000, Capacity: 2, Floor: 2, Status: domain.RoomStatusAvailable},
		{ID: "R202", Number: "202", Type: family, NightlyRate: 1_500_000, Capacity: 4, Floor: 2, Status: domain.RoomStatusAvailable},
		{ID: "R301", Number: "301", Type: suite, NightlyRate: 2_500_000, Capacity: 3, Floor: 3, Status: domain.RoomStatusAvailable},
	}
}

func demoAccounts() []domain.Account {
	return []domain.Account{
		{ID: "11111111-1111-1111-1111-111111111111", Name: "Demo Customer", Email: "customer@example.com", Phone: "0900000001"},
	}
}
