package db

import (
	"errors"
	"time"

	"github.com/sorokindm/crewtally/internal/models"
	"gorm.io/gorm"
)

type SalaryRepository struct {
	database *gorm.DB
}

func NewSalaryRepository(database *gorm.DB) *SalaryRepository {
	return &SalaryRepository{database: database}
}

func (repo *SalaryRepository) FindByID(salaryID uint) (models.Salary, error) {
	var salary models.Salary
	if err := repo.database.First(&salary, salaryID).Error; err != nil {
		return models.Salary{}, err
	}
	return salary, nil
}

func (repo *SalaryRepository) FindByEmployeeMonth(employeeID uint, month string) (models.Salary, error) {
	var salary models.Salary
	if err := repo.database.
		Where("employee_id = ? AND month = ?", employeeID, month).
		First(&salary).Error; err != nil {
		return models.Salary{}, err
	}
	return salary, nil
}

func (repo *SalaryRepository) ListForMonth(month string) ([]models.Salary, error) {
	salaries := make([]models.Salary, 0)
	if err := repo.database.
		Where("month = ?", month).
		Order("id ASC").
		Find(&salaries).Error; err != nil {
		return nil, err
	}
	return salaries, nil
}

// Upsert writes the recomputed amounts for one employee and month, creating
// the row when absent. Rows already marked paid are left untouched.
func (repo *SalaryRepository) Upsert(salary *models.Salary) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var existing models.Salary
		err := tx.Where("employee_id = ? AND month = ?", salary.EmployeeID, salary.Month).
			First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(salary).Error
		}
		if err != nil {
			return err
		}
		if existing.Paid {
			*salary = existing
			return nil
		}
		if err := tx.Model(&models.Salary{}).
			Where("id = ?", existing.ID).
			Updates(map[string]any{
				"base":         salary.Base,
				"bonus":        salary.Bonus,
				"leader_bonus": salary.LeaderBonus,
				"total":        salary.Total,
			}).Error; err != nil {
			return err
		}
		salary.ID = existing.ID
		return nil
	})
}

// MarkPaid flips the paid flag exactly once; the affected-row count lets the
// service distinguish a repeat call from a successful transition.
func (repo *SalaryRepository) MarkPaid(salaryID uint, paymentHash string, paidAt time.Time) (bool, error) {
	result := repo.database.Model(&models.Salary{}).
		Where("id = ? AND paid = ?", salaryID, false).
		Updates(map[string]any{
			"paid":         true,
			"paid_at":      paidAt,
			"payment_hash": paymentHash,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
