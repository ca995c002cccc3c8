package postgres

import (
	"context"

	"mall/internal/domain/entity"
	domainerrors "mall/internal/domain/errors"
	"mall/internal/domain/repository"
	"mall/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shopRepository implements the repository.ShopRepository interface using GORM.
// All lifecycle mutations are conditional updates keyed on the expected current
// state, so concurrent admins and vendors race on the database row, not on
// application-level locks.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{
		db: db,
	}
}

// Create persists a new shop in pending state. The one-active-shop-per-owner
// rule is checked here and additionally enforced by a partial unique index on
// (owner_id) WHERE status IN ('pending', 'approved'), so a concurrent double
// submit loses on the constraint rather than slipping through.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	var activeCount int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("owner_id = ? AND status IN ?", shop.OwnerID,
			[]string{entity.ShopStatusPending.String(), entity.ShopStatusApproved.String()}).
		Count(&activeCount).Error; err != nil {
		return errors.Wrap(err, "failed to count active shops for owner")
	}
	if activeCount > 0 {
		return repository.ErrDuplicateActiveShop
	}

	shopM := fromShopDomain(shop)
	shopM.Status = entity.ShopStatusPending.String()

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateActiveShop
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required shop information")
		}

		return domainerrors.NewStoreUnavailableError(err, "failed to create shop")
	}

	shop.ID = shopM.ID
	shop.Status = entity.ShopStatusPending
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// FindByID retrieves a shop by its unique ID.
func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}

	return toShopDomain(&shopM), nil
}

// FindByOwner retrieves all shops belonging to an owner, newest first.
func (repo *shopRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shops by owner")
	}

	return toShopDomainSlice(shopModels), nil
}

// ListByStatus retrieves shops in a given lifecycle state with pagination, newest first.
func (repo *shopRepository) ListByStatus(ctx context.Context, status entity.ShopStatus, limit, offset int) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel

	query := repo.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shops by status")
	}

	return toShopDomainSlice(shopModels), nil
}

// UpdateOwned applies a metadata patch iff the shop belongs to ownerID and its
// status is still vendor-editable. Ownership and editability are folded into
// the WHERE clause so a non-owner cannot distinguish a foreign shop from a
// missing one.
func (repo *shopRepository) UpdateOwned(ctx context.Context, shopID, ownerID uuid.UUID, patch repository.ShopPatch) (*entity.Shop, error) {
	updates := patchToColumns(patch)
	if len(updates) == 0 {
		return repo.findOwned(ctx, shopID, ownerID)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ? AND owner_id = ? AND status IN ?", shopID, ownerID,
			[]string{entity.ShopStatusPending.String(), entity.ShopStatusApproved.String()}).
		Updates(updates)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update shop")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrShopNotFound
	}

	return repo.findOwned(ctx, shopID, ownerID)
}

// DeleteOwnedPending removes a shop iff it belongs to ownerID and is still pending.
func (repo *shopRepository) DeleteOwnedPending(ctx context.Context, shopID, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ? AND status = ?", shopID, ownerID, entity.ShopStatusPending.String()).
		Delete(&model.ShopModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete pending shop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// UpdateStatus performs the guarded state transition as a single conditional
// update. A zero row count is disambiguated with a follow-up existence check:
// unknown id maps to ErrShopNotFound, a row in a different state maps to
// ErrStatusConflict.
func (repo *shopRepository) UpdateStatus(ctx context.Context, shopID uuid.UUID, from, to entity.ShopStatus, reason string) (*entity.Shop, error) {
	updates := map[string]interface{}{
		"status": to.String(),
	}
	// The rejection reason is recorded exactly once, on the transition into
	// the rejected state. Every other transition leaves the column untouched.
	if to == entity.ShopStatusRejected {
		updates["reject_reason"] = reason
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ? AND status = ?", shopID, from.String()).
		Updates(updates)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update shop status")
	}

	if result.RowsAffected == 0 {
		var exists int64
		if err := repo.db.WithContext(ctx).
			Model(&model.ShopModel{}).
			Where("id = ?", shopID).
			Count(&exists).Error; err != nil {
			return nil, errors.Wrap(err, "failed to check shop existence")
		}
		if exists == 0 {
			return nil, repository.ErrShopNotFound
		}

		return nil, repository.ErrStatusConflict
	}

	return repo.FindByID(ctx, shopID)
}

func (repo *shopRepository) findOwned(ctx context.Context, shopID, ownerID uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", shopID, ownerID).
		First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find owned shop")
	}

	return toShopDomain(&shopM), nil
}

// patchToColumns translates the nil-able patch into a GORM column map.
// Absent fields stay absent so the UPDATE only touches what changed.
func patchToColumns(patch repository.ShopPatch) map[string]interface{} {
	updates := map[string]interface{}{}

	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Category != nil {
		updates["category"] = patch.Category.String()
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Contact != nil {
		updates["contact_phone"] = patch.Contact.Phone
		updates["contact_email"] = patch.Contact.Email
		updates["contact_website"] = patch.Contact.Website
	}
	if patch.Hours != nil {
		updates["hours"] = map[string]string(*patch.Hours)
	}
	if patch.Location != nil {
		updates["floor"] = patch.Location.Floor
		updates["unit"] = patch.Location.Unit
	}

	return updates
}

// --- Mapper Functions ---

// toShopDomain converts a GORM ShopModel to a domain Shop entity.
func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Category:    entity.ShopCategory(data.Category),
		Description: data.Description,
		Contact: entity.ContactInfo{
			Phone:   data.ContactPhone,
			Email:   data.ContactEmail,
			Website: data.ContactWebsite,
		},
		Hours: entity.OpeningHours(data.Hours),
		Location: entity.Location{
			Floor: data.Floor,
			Unit:  data.Unit,
		},
		Status:       entity.ShopStatus(data.Status),
		RejectReason: data.RejectReason,
		Rating: entity.RatingAggregate{
			Average: data.RatingAverage,
			Count:   data.RatingCount,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toShopDomainSlice(models []*model.ShopModel) []*entity.Shop {
	shops := make([]*entity.Shop, 0, len(models))
	for _, shopM := range models {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops
}

// fromShopDomain converts a domain Shop entity to a GORM ShopModel for persistence.
func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		Name:           data.Name,
		Category:       data.Category.String(),
		Description:    data.Description,
		ContactPhone:   data.Contact.Phone,
		ContactEmail:   data.Contact.Email,
		ContactWebsite: data.Contact.Website,
		Hours:          map[string]string(data.Hours),
		Floor:          data.Location.Floor,
		Unit:           data.Location.Unit,
		Status:         data.Status.String(),
		RejectReason:   data.RejectReason,
		RatingAverage:  data.Rating.Average,
		RatingCount:    data.Rating.Count,
	}
}
