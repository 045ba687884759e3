package db

import (
	"time"

	"github.com/sorokindm/crewtally/internal/models"
	"gorm.io/gorm"
)

type SessionRepository struct {
	database *gorm.DB
}

func NewSessionRepository(database *gorm.DB) *SessionRepository {
	return &SessionRepository{database: database}
}

func (repo *SessionRepository) Create(session *models.Session) error {
	return repo.database.Create(session).Error
}

func (repo *SessionRepository) FindByToken(token string) (models.Session, error) {
	var session models.Session
	if err := repo.database.Where("token = ?", token).First(&session).Error; err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (repo *SessionRepository) DeleteByToken(token string) error {
	return repo.database.Where("token = ?", token).Delete(&models.Session{}).Error
}

// DeleteByEmployee removes every session of the employee. Used by password
// reset and deactivation, which must revoke all logins at once.
func (repo *SessionRepository) DeleteByEmployee(employeeID uint) error {
	return repo.database.Where("employee_id = ?", employeeID).Delete(&models.Session{}).Error
}

func (repo *SessionRepository) DeleteExpired(now time.Time) (int64, error) {
	result := repo.database.Where("expires_at <= ?", now).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}

func (repo *SessionRepository) CountByEmployee(employeeID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Session{}).
		Where("employee_id = ?", employeeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
