package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-intel/internal/dto"
	"restaurant-intel/internal/models"
	"restaurant-intel/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RestaurantStore interface {
	Create(ctx context.Context, rest *models.Restaurant) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Restaurant, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Restaurant, error)
	ListByFranchiseGroup(ctx context.Context, groupID uuid.UUID) ([]*models.Restaurant, error)
}

// Authorizer resolves a restaurant on behalf of its owner.
type Authorizer interface {
	Authorize(ctx context.Context, ownerID, restaurantID uuid.UUID) (*models.Restaurant, error)
}

type RestaurantService struct {
	repo   RestaurantStore
	logger *zap.Logger
}

func NewRestaurantService(repo RestaurantStore, logger *zap.Logger) *RestaurantService {
	return &RestaurantService{
		repo:   repo,
		logger: logger,
	}
}

func (s *RestaurantService) Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	rest := &models.Restaurant{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        sanitizeUTF8(strings.TrimSpace(req.Name)),
		CuisineType: sanitizeUTF8(req.CuisineType),
		Location:    sanitizeUTF8(req.Location),
		CreatedAt:   time.Now().UTC(),
	}
	if req.FranchiseGroupID != "" {
		groupID, err := uuid.Parse(req.FranchiseGroupID)
		if err != nil {
			return nil, fmt.Errorf("%w: franchiseGroupId", ErrInvalidInput)
		}
		rest.FranchiseGroupID = &groupID
	}

	if err := s.repo.Create(ctx, rest); err != nil {
		return nil, err
	}

	s.logger.Info("Restaurant created",
		zap.String("restaurant_id", rest.ID.String()),
		zap.String("owner_id", ownerID.String()),
	)
	resp := restaurantResponse(rest)
	return &resp, nil
}

func (s *RestaurantService) List(ctx context.Context, ownerID uuid.UUID) ([]dto.RestaurantResponse, error) {
	restaurants, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, restaurantResponse(r))
	}
	return out, nil
}

func (s *RestaurantService) Authorize(ctx context.Context, ownerID, restaurantID uuid.UUID) (*models.Restaurant, error) {
	rest, err := s.repo.GetByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	if rest.OwnerID != ownerID {
		s.logger.Warn("Restaurant access denied",
			zap.String("restaurant_id", restaurantID.String()),
			zap.String("user_id", ownerID.String()),
		)
		return nil, ErrForbidden
	}
	return rest, nil
}

// GroupMembers returns the locations of a franchise group, provided the owner
// runs at least one of them.
func (s *RestaurantService) GroupMembers(ctx context.Context, ownerID, groupID uuid.UUID) ([]*models.Restaurant, error) {
	members, err := s.repo.ListByFranchiseGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if m.OwnerID == ownerID {
			return members, nil
		}
	}
	return nil, ErrForbidden
}
