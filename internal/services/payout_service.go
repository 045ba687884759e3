package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/sorokindm/crewtally/internal/models"
	"gorm.io/gorm"
)

// Accepted payout address shapes: 0x-prefixed 40-hex or T-prefixed 33-char
// base58-style identifiers.
var payoutAddressPattern = regexp.MustCompile(`^(0x[0-9a-fA-F]{40}|T[1-9A-HJ-NP-Za-km-z]{33})$`)

type PayoutRequestStore interface {
	Create(request *models.PayoutChangeRequest) error
	FindByID(requestID uint) (models.PayoutChangeRequest, error)
	HasPendingForEmployee(employeeID uint) (bool, error)
	ListPending() ([]models.PayoutChangeRequest, error)
	Approve(request *models.PayoutChangeRequest, reviewerID uint, reviewedAt time.Time) error
	Reject(request *models.PayoutChangeRequest, reviewerID uint, reviewedAt time.Time) error
}

type PayoutService struct {
	requests PayoutRequestStore
	now      func() time.Time
}

func NewPayoutService(requests PayoutRequestStore) *PayoutService {
	return &PayoutService{
		requests: requests,
		now:      time.Now,
	}
}

func ValidPayoutAddress(address string) bool {
	return payoutAddressPattern.MatchString(strings.TrimSpace(address))
}

// SubmitChangeRequest files a pending address change. One pending request
// per employee; a second submission conflicts until a manager resolves the
// first.
func (service *PayoutService) SubmitChangeRequest(employeeID uint, address string) (models.PayoutChangeRequest, error) {
	trimmed := strings.TrimSpace(address)
	if !ValidPayoutAddress(trimmed) {
		return models.PayoutChangeRequest{}, ErrValidation
	}

	pending, err := service.requests.HasPendingForEmployee(employeeID)
	if err != nil {
		return models.PayoutChangeRequest{}, err
	}
	if pending {
		return models.PayoutChangeRequest{}, ErrConflict
	}

	request := models.PayoutChangeRequest{
		EmployeeID: employeeID,
		Address:    trimmed,
		Status:     models.PayoutRequestPending,
		CreatedAt:  service.now(),
	}
	if err := service.requests.Create(&request); err != nil {
		return models.PayoutChangeRequest{}, err
	}
	return request, nil
}

func (service *PayoutService) ListPending() ([]models.PayoutChangeRequest, error) {
	return service.requests.ListPending()
}

func (service *PayoutService) Approve(requestID uint, reviewerID uint) (models.PayoutChangeRequest, error) {
	request, err := service.pendingRequest(requestID)
	if err != nil {
		return models.PayoutChangeRequest{}, err
	}

	reviewedAt := service.now()
	if err := service.requests.Approve(&request, reviewerID, reviewedAt); err != nil {
		return models.PayoutChangeRequest{}, err
	}
	request.Status = models.PayoutRequestApproved
	request.ReviewerID = &reviewerID
	request.ReviewedAt = &reviewedAt
	return request, nil
}

func (service *PayoutService) Reject(requestID uint, reviewerID uint) (models.PayoutChangeRequest, error) {
	request, err := service.pendingRequest(requestID)
	if err != nil {
		return models.PayoutChangeRequest{}, err
	}

	reviewedAt := service.now()
	if err := service.requests.Reject(&request, reviewerID, reviewedAt); err != nil {
		return models.PayoutChangeRequest{}, err
	}
	request.Status = models.PayoutRequestRejected
	request.ReviewerID = &reviewerID
	request.ReviewedAt = &reviewedAt
	return request, nil
}

func (service *PayoutService) pendingRequest(requestID uint) (models.PayoutChangeRequest, error) {
	request, err := service.requests.FindByID(requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PayoutChangeRequest{}, ErrNotFound
	}
	if err != nil {
		return models.PayoutChangeRequest{}, err
	}
	if request.Status != models.PayoutRequestPending {
		return models.PayoutChangeRequest{}, ErrConflict
	}
	return request, nil
}
