package db

import (
	"time"

	"github.com/sorokindm/crewtally/internal/models"
	"gorm.io/gorm"
)

type PayoutRequestRepository struct {
	database *gorm.DB
}

func NewPayoutRequestRepository(database *gorm.DB) *PayoutRequestRepository {
	return &PayoutRequestRepository{database: database}
}

func (repo *PayoutRequestRepository) Create(request *models.PayoutChangeRequest) error {
	return repo.database.Create(request).Error
}

func (repo *PayoutRequestRepository) FindByID(requestID uint) (models.PayoutChangeRequest, error) {
	var request models.PayoutChangeRequest
	if err := repo.database.First(&request, requestID).Error; err != nil {
		return models.PayoutChangeRequest{}, err
	}
	return request, nil
}

func (repo *PayoutRequestRepository) HasPendingForEmployee(employeeID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.PayoutChangeRequest{}).
		Where("employee_id = ? AND status = ?", employeeID, models.PayoutRequestPending).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *PayoutRequestRepository) ListPending() ([]models.PayoutChangeRequest, error) {
	requests := make([]models.PayoutChangeRequest, 0)
	if err := repo.database.
		Where("status = ?", models.PayoutRequestPending).
		Order("id ASC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Approve resolves the request and copies the address onto the employee in
// one transaction.
func (repo *PayoutRequestRepository) Approve(request *models.PayoutChangeRequest, reviewerID uint, reviewedAt time.Time) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PayoutChangeRequest{}).
			Where("id = ?", request.ID).
			Updates(map[string]any{
				"status":      models.PayoutRequestApproved,
				"reviewer_id": reviewerID,
				"reviewed_at": reviewedAt,
			}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Employee{}).
			Where("id = ?", request.EmployeeID).
			Update("payout_address", request.Address).Error
	})
}

func (repo *PayoutRequestRepository) Reject(request *models.PayoutChangeRequest, reviewerID uint, reviewedAt time.Time) error {
	return repo.database.Model(&models.PayoutChangeRequest{}).
		Where("id = ?", request.ID).
		Updates(map[string]any{
			"status":      models.PayoutRequestRejected,
			"reviewer_id": reviewerID,
			"reviewed_at": reviewedAt,
		}).Error
}
