package plantstore

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=mock.go -package=plantstore

// PlantRepository is the plant-records collaborator. Plants are read-only
// here except for the mark-watered side effect.
type PlantRepository interface {
	ListUsers(ctx context.Context) (*UsersResponse, error)
	ListPlants(ctx context.Context, userID string) (*PlantsResponse, error)
	GetPlant(ctx context.Context, plantID, userID string) (*PlantResponse, error)
	MarkWatered(ctx context.Context, plantID, userID string, streak int, wateredAt time.Time) error
}
