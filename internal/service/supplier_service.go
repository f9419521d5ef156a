package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-intel/internal/analytics"
	"restaurant-intel/internal/dto"
	"restaurant-intel/internal/models"
	"restaurant-intel/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PriceReportStore interface {
	Create(ctx context.Context, rep *models.SupplierPriceReport) error
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*models.SupplierPriceReport, error)
	ListByFranchiseGroup(ctx context.Context, groupID uuid.UUID) ([]*models.SupplierPriceReport, error)
}

type ApprovedSupplierStore interface {
	Create(ctx context.Context, sup *models.ApprovedSupplier) error
	ListByFranchiseGroup(ctx context.Context, groupID uuid.UUID) ([]*models.ApprovedSupplier, error)
	Delete(ctx context.Context, groupID, id uuid.UUID) error
}

// GroupResolver lists franchise members visible to an owner.
type GroupResolver interface {
	GroupMembers(ctx context.Context, ownerID, groupID uuid.UUID) ([]*models.Restaurant, error)
}

// SupplierService handles supplier price reports and franchise-wide analytics.
type SupplierService struct {
	access    Authorizer
	groups    GroupResolver
	reports   PriceReportStore
	approved  ApprovedSupplierStore
	financial FinancialStore
	logger    *zap.Logger
}

func NewSupplierService(access Authorizer, groups GroupResolver, reports PriceReportStore, approved ApprovedSupplierStore, financial FinancialStore, logger *zap.Logger) *SupplierService {
	return &SupplierService{
		access:    access,
		groups:    groups,
		reports:   reports,
		approved:  approved,
		financial: financial,
		logger:    logger,
	}
}

// memberOf authorizes the owner for the restaurant and checks that the
// restaurant belongs to groupID.
func (s *SupplierService) memberOf(ctx context.Context, ownerID, restaurantID, groupID uuid.UUID) error {
	rest, err := s.access.Authorize(ctx, ownerID, restaurantID)
	if err != nil {
		return err
	}
	if rest.FranchiseGroupID == nil || *rest.FranchiseGroupID != groupID {
		s.logger.Warn("Restaurant outside franchise group",
			zap.String("restaurant_id", restaurantID.String()),
			zap.String("group_id", groupID.String()),
		)
		return ErrForbidden
	}
	return nil
}

// SubmitReport records a price paid into the restaurant's own franchise group.
// A group named in the request must be that same group.
func (s *SupplierService) SubmitReport(ctx context.Context, ownerID, restaurantID uuid.UUID, req *dto.CreatePriceReportRequest) (*analytics.PriceReport, error) {
	rest, err := s.access.Authorize(ctx, ownerID, restaurantID)
	if err != nil {
		return nil, err
	}
	if rest.FranchiseGroupID == nil {
		return nil, ErrNoFranchiseGroup
	}
	groupID := *rest.FranchiseGroupID

	if req.FranchiseGroupID != "" {
		named, err := uuid.Parse(req.FranchiseGroupID)
		if err != nil {
			return nil, fmt.Errorf("%w: franchiseGroupId", ErrInvalidInput)
		}
		if named != groupID {
			return nil, ErrForbidden
		}
	}

	rep := &models.SupplierPriceReport{
		ID:               uuid.New(),
		RestaurantID:     restaurantID,
		FranchiseGroupID: groupID,
		IngredientName:   sanitizeUTF8(strings.TrimSpace(req.IngredientName)),
		SupplierName:     sanitizeUTF8(strings.TrimSpace(req.SupplierName)),
		UnitPrice:        req.UnitPrice,
		Unit:             req.Unit,
		Month:            req.Month,
		Year:             req.Year,
		ReportedAt:       time.Now().UTC(),
	}
	if err := s.reports.Create(ctx, rep); err != nil {
		return nil, err
	}

	s.logger.Info("Price report submitted",
		zap.String("restaurant_id", restaurantID.String()),
		zap.String("group_id", groupID.String()),
		zap.String("ingredient", rep.IngredientName),
	)
	out := priceReportFromModel(rep)
	return &out, nil
}

// Intelligence compares the restaurant's latest prices with the rest of its
// franchise group.
func (s *SupplierService) Intelligence(ctx context.Context, ownerID, restaurantID, groupID uuid.UUID) (*dto.SupplierIntelligenceResponse, error) {
	if err := s.memberOf(ctx, ownerID, restaurantID, groupID); err != nil {
		return nil, err
	}

	mine, err := s.reports.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	all, err := s.reports.ListByFranchiseGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	approved, err := s.approved.ListByFranchiseGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	myReports := priceReports(mine)
	rows := analytics.ComputeSupplierIntelligence(restaurantID, myReports, priceReports(all))
	s.logger.Debug("Supplier intelligence computed",
		zap.String("restaurant_id", restaurantID.String()),
		zap.Int("rows", len(rows)),
	)
	return &dto.SupplierIntelligenceResponse{
		Intelligence:      rows,
		ApprovedSuppliers: approvedSuppliers(approved),
		MyReports:         analytics.LatestReports(myReports),
	}, nil
}

// AddApprovedSupplier puts a supplier on the group's list. Any owner running a
// location in the group may curate it.
func (s *SupplierService) AddApprovedSupplier(ctx context.Context, ownerID, groupID uuid.UUID, req *dto.CreateApprovedSupplierRequest) (*analytics.ApprovedSupplier, error) {
	if _, err := s.groups.GroupMembers(ctx, ownerID, groupID); err != nil {
		return nil, err
	}

	sup := &models.ApprovedSupplier{
		ID:               uuid.New(),
		FranchiseGroupID: groupID,
		Name:             sanitizeUTF8(strings.TrimSpace(req.Name)),
		Category:         strings.ToLower(strings.TrimSpace(req.Category)),
		ContactInfo:      sanitizeUTF8(req.ContactInfo),
		IngredientName:   sanitizeUTF8(strings.TrimSpace(req.IngredientName)),
		ContractedPrice:  req.ContractedPrice,
		Unit:             req.Unit,
		IsRequired:       req.IsRequired,
		Notes:            sanitizeUTF8(req.Notes),
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.approved.Create(ctx, sup); err != nil {
		return nil, err
	}

	s.logger.Info("Approved supplier added",
		zap.String("group_id", groupID.String()),
		zap.String("supplier", sup.Name),
		zap.Bool("required", sup.IsRequired),
	)
	out := approvedSupplierFromModel(sup)
	return &out, nil
}

func (s *SupplierService) ListApprovedSuppliers(ctx context.Context, ownerID, groupID uuid.UUID) ([]analytics.ApprovedSupplier, error) {
	if _, err := s.groups.GroupMembers(ctx, ownerID, groupID); err != nil {
		return nil, err
	}
	records, err := s.approved.ListByFranchiseGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return approvedSuppliers(records), nil
}

func (s *SupplierService) RemoveApprovedSupplier(ctx context.Context, ownerID, groupID, supplierID uuid.UUID) error {
	if _, err := s.groups.GroupMembers(ctx, ownerID, groupID); err != nil {
		return err
	}
	if err := s.approved.Delete(ctx, groupID, supplierID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: approved supplier %s", ErrRecordNotFound, supplierID)
		}
		return err
	}
	s.logger.Info("Approved supplier removed",
		zap.String("group_id", groupID.String()),
		zap.String("supplier_id", supplierID.String()),
	)
	return nil
}

func (s *SupplierService) FranchiseAnalytics(ctx context.Context, ownerID, groupID uuid.UUID) (*analytics.NetworkSummary, error) {
	members, err := s.groups.GroupMembers(ctx, ownerID, groupID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	records, err := s.financial.ListMonthlyForRestaurants(ctx, ids)
	if err != nil {
		return nil, err
	}
	byRestaurant := make(map[uuid.UUID][]*models.MonthlyData, len(members))
	for _, r := range records {
		byRestaurant[r.RestaurantID] = append(byRestaurant[r.RestaurantID], r)
	}

	locations := make([]analytics.LocationPeriods, 0, len(members))
	for _, m := range members {
		locations = append(locations, analytics.LocationPeriods{
			RestaurantID: m.ID,
			Name:         m.Name,
			Periods:      monthlyPeriods(byRestaurant[m.ID]),
		})
	}

	reports, err := s.reports.ListByFranchiseGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	approved, err := s.approved.ListByFranchiseGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	summary := analytics.SummarizeNetwork(locations, priceReports(reports), approvedSuppliers(approved))
	return &summary, nil
}
