package userrepo

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/domain/services"
	"parcels/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translate(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column, so cleared fields such as the verification
// token become NULL.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&UserDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return errs.NewAlreadyExistsErrorWithCause("user", errors.New("user is still referenced by packages"))
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", id.String())
	}
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "user", id.String(), "id = ?", id.Bytes())
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	email = user.NormalizeEmail(email)
	return r.first(ctx, "email", email, "email = ?", email)
}

func (r *GormUserRepository) GetByVerificationToken(ctx context.Context, token string) (*user.User, error) {
	return r.first(ctx, "token", token, "verification_token = ? AND is_email_verified = false", token)
}

func (r *GormUserRepository) FindConflicts(
	ctx context.Context,
	email, documentNumber string,
) (emailTaken, documentTaken bool, err error) {
	var row struct {
		EmailTaken    bool
		DocumentTaken bool
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(bool_or(email = @email), false) AS email_taken,
			COALESCE(bool_or(document_number = @document), false) AS document_taken
		FROM users
		WHERE email = @email OR document_number = @document
	`, map[string]any{
		"email":    user.NormalizeEmail(email),
		"document": documentNumber,
	}).Scan(&row).Error
	if err != nil {
		return false, false, err
	}

	return row.EmailTaken, row.DocumentTaken, nil
}

// GetMessengerCandidates returns every messenger, verified or not, with the
// number of parcels it carries in transit or out for delivery.
func (r *GormUserRepository) GetMessengerCandidates(ctx context.Context) ([]services.MessengerCandidate, error) {
	db := r.db.WithContext(ctx)

	var dtos []UserDTO
	if err := db.Where("role = ?", user.Messenger.String()).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	var loads []struct {
		MessengerID string
		Load        int
	}
	err := db.Raw(`
		SELECT assigned_messenger_id::text AS messenger_id, COUNT(*) AS load
		FROM packages
		WHERE assigned_messenger_id IS NOT NULL AND status = ANY(?)
		GROUP BY assigned_messenger_id
	`, pq.Array([]string{parcel.InTransit.String(), parcel.OutForDelivery.String()})).Scan(&loads).Error
	if err != nil {
		return nil, err
	}

	loadByID := make(map[string]int, len(loads))
	for _, l := range loads {
		loadByID[l.MessengerID] = l.Load
	}

	candidates := make([]services.MessengerCandidate, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, services.MessengerCandidate{
			Messenger:  u,
			ActiveLoad: loadByID[u.ID().String()],
		})
	}

	return candidates, nil
}

func (r *GormUserRepository) first(ctx context.Context, param string, id any, cond string, args ...any) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Where(cond, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewAlreadyExistsErrorWithCause("user", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewAlreadyExistsErrorWithCause("user", err)
	default:
		return err
	}
}
