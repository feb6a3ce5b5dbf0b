// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"campusmarket/internal/domain/entity"
	domainerrors "campusmarket/internal/domain/errors"
	"campusmarket/internal/domain/repository"
	"campusmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// Create persists a pending payment record.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("payment reference already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	// Update the entity with generated values
	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// FindByReferenceForUser retrieves a payment by gateway reference, restricted to the initiating user.
func (repo *paymentRepository) FindByReferenceForUser(ctx context.Context, reference string, userID uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("reference = ? AND user_id = ?", reference, userID).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by reference")
	}

	return toPaymentDomain(&paymentM), nil
}

// UpdateStatus sets the payment status for a reference.
func (repo *paymentRepository) UpdateStatus(ctx context.Context, reference string, status entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("reference = ?", reference).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payment status")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPaymentNotFound
	}

	return nil
}

// HasSuccessfulPayment reports whether the order has at least one successful payment.
func (repo *paymentRepository) HasSuccessfulPayment(ctx context.Context, orderID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("order_id = ? AND status = ?", orderID, entity.PaymentSuccess.String()).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count successful payments")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:        data.ID,
		UserID:    data.UserID,
		OrderID:   data.OrderID,
		Amount:    data.Amount,
		Method:    entity.PaymentMethod(data.Method),
		Status:    entity.PaymentStatus(data.Status),
		Reference: data.Reference,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:        data.ID,
		UserID:    data.UserID,
		OrderID:   data.OrderID,
		Amount:    data.Amount,
		Method:    data.Method.String(),
		Status:    data.Status.String(),
		Reference: data.Reference,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
