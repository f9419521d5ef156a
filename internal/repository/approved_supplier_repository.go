package repository

import (
	"context"
	"fmt"

	"restaurant-intel/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var approvedSupplierColumns = []string{
	"id", "franchise_group_id", "name", "category", "contact_info", "ingredient_name",
	"contracted_price", "unit", "is_required", "notes", "created_at",
}

// ApprovedSupplierRepository stores the supplier lists franchise groups endorse.
type ApprovedSupplierRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewApprovedSupplierRepository(db *pgxpool.Pool, logger *zap.Logger) *ApprovedSupplierRepository {
	return &ApprovedSupplierRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ApprovedSupplierRepository) Create(ctx context.Context, sup *models.ApprovedSupplier) error {
	query := squirrel.Insert("franchise_approved_suppliers").
		Columns(approvedSupplierColumns...).
		Values(sup.ID, sup.FranchiseGroupID, sup.Name, sup.Category, sup.ContactInfo, sup.IngredientName,
			sup.ContractedPrice, sup.Unit, sup.IsRequired, sup.Notes, sup.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert approved supplier: %w", err)
	}
	return nil
}

func (r *ApprovedSupplierRepository) ListByFranchiseGroup(ctx context.Context, groupID uuid.UUID) ([]*models.ApprovedSupplier, error) {
	query := squirrel.Select(approvedSupplierColumns...).
		From("franchise_approved_suppliers").
		Where(squirrel.Eq{"franchise_group_id": groupID}).
		OrderBy("is_required DESC", "name ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query approved suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []*models.ApprovedSupplier{}
	for rows.Next() {
		var sup models.ApprovedSupplier
		if err := rows.Scan(
			&sup.ID, &sup.FranchiseGroupID, &sup.Name, &sup.Category, &sup.ContactInfo, &sup.IngredientName,
			&sup.ContractedPrice, &sup.Unit, &sup.IsRequired, &sup.Notes, &sup.CreatedAt,
		); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, &sup)
	}

	return suppliers, rows.Err()
}

// Delete removes a supplier from the group's list. ErrNotFound means no row
// matched both the id and the group.
func (r *ApprovedSupplierRepository) Delete(ctx context.Context, groupID, id uuid.UUID) error {
	query := squirrel.Delete("franchise_approved_suppliers").
		Where(squirrel.Eq{"id": id, "franchise_group_id": groupID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete approved supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
