package db

import (
	"github.com/sorokindm/crewtally/internal/models"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	database *gorm.DB
}

func NewEmployeeRepository(database *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{database: database}
}

func (repo *EmployeeRepository) FindByID(employeeID uint) (models.Employee, error) {
	var employee models.Employee
	if err := repo.database.First(&employee, employeeID).Error; err != nil {
		return models.Employee{}, err
	}
	return employee, nil
}

func (repo *EmployeeRepository) FindByHandle(handle string) (models.Employee, error) {
	var employee models.Employee
	if err := repo.database.Where("handle = ?", handle).First(&employee).Error; err != nil {
		return models.Employee{}, err
	}
	return employee, nil
}

func (repo *EmployeeRepository) ExistsByHandle(handle string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Employee{}).
		Where("handle = ?", handle).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *EmployeeRepository) Create(employee *models.Employee) error {
	return repo.database.Create(employee).Error
}

func (repo *EmployeeRepository) List() ([]models.Employee, error) {
	employees := make([]models.Employee, 0)
	if err := repo.database.Order("id ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (repo *EmployeeRepository) ListActive() ([]models.Employee, error) {
	employees := make([]models.Employee, 0)
	if err := repo.database.Where("is_active = ?", true).Order("id ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (repo *EmployeeRepository) UpdatePassword(employeeID uint, passwordHash string) error {
	return repo.database.Model(&models.Employee{}).
		Where("id = ?", employeeID).
		Update("password_hash", passwordHash).Error
}

func (repo *EmployeeRepository) UpdatePayoutAddress(employeeID uint, address string) error {
	return repo.database.Model(&models.Employee{}).
		Where("id = ?", employeeID).
		Update("payout_address", address).Error
}

// Deactivate clears the active flag and removes every session of the employee
// in one transaction so no stale session survives the state change.
func (repo *EmployeeRepository) Deactivate(employeeID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", employeeID).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Employee{}).
			Where("id = ?", employeeID).
			Update("is_active", false).Error
	})
}
