package services

import (
	"errors"
	"time"

	"github.com/sorokindm/crewtally/internal/models"
	"github.com/sorokindm/crewtally/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SessionTTL is the fixed lifetime of an issued session.
const SessionTTL = 7 * 24 * time.Hour

type AuthEmployeeRepository interface {
	FindByID(employeeID uint) (models.Employee, error)
	FindByHandle(handle string) (models.Employee, error)
	UpdatePassword(employeeID uint, passwordHash string) error
	Deactivate(employeeID uint) error
}

type AuthSessionRepository interface {
	Create(session *models.Session) error
	FindByToken(token string) (models.Session, error)
	DeleteByToken(token string) error
	DeleteByEmployee(employeeID uint) error
}

type AuthService struct {
	employees AuthEmployeeRepository
	sessions  AuthSessionRepository
	now       func() time.Time
}

func NewAuthService(employees AuthEmployeeRepository, sessions AuthSessionRepository) *AuthService {
	return &AuthService{
		employees: employees,
		sessions:  sessions,
		now:       time.Now,
	}
}

// Login verifies credentials and issues a fresh session. Concurrent logins
// are allowed; every successful call creates another valid session.
func (service *AuthService) Login(handle string, password string) (models.Session, models.Employee, error) {
	employee, err := service.lookupByHandle(handle)
	if err != nil {
		return models.Session{}, models.Employee{}, err
	}
	if !employee.HasCredential() {
		return models.Session{}, models.Employee{}, ErrNoCredential
	}
	if !employee.IsActive || IsTerminatedHandle(employee.Handle) {
		return models.Session{}, models.Employee{}, ErrDeactivated
	}
	if !VerifyPassword(password, employee.PasswordHash) {
		return models.Session{}, models.Employee{}, ErrBadCredential
	}

	session, err := service.issueSession(employee.ID)
	if err != nil {
		return models.Session{}, models.Employee{}, err
	}
	return session, employee, nil
}

// Register sets the first password of a provisioned account. Accounts that
// already hold a credential must go through the manager reset flow instead.
func (service *AuthService) Register(handle string, password string) (models.Employee, error) {
	employee, err := service.lookupByHandle(handle)
	if err != nil {
		return models.Employee{}, err
	}
	if employee.HasCredential() {
		return models.Employee{}, ErrConflict
	}
	if !employee.IsActive || IsTerminatedHandle(employee.Handle) {
		return models.Employee{}, ErrDeactivated
	}

	hash, err := HashPassword(password)
	if err != nil {
		return models.Employee{}, err
	}
	if err := service.employees.UpdatePassword(employee.ID, hash); err != nil {
		return models.Employee{}, err
	}
	employee.PasswordHash = hash
	return employee, nil
}

// Logout deletes the backing session record. Unknown tokens are not an
// error; logout is idempotent.
func (service *AuthService) Logout(token string) error {
	if token == "" {
		return nil
	}
	return service.sessions.DeleteByToken(token)
}

// ResolveSession returns the employee owning a valid session. Expired
// sessions and sessions of inactive employees are purged on read.
func (service *AuthService) ResolveSession(token string) (models.Employee, error) {
	if token == "" {
		return models.Employee{}, ErrUnauthorized
	}

	session, err := service.sessions.FindByToken(token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Employee{}, ErrUnauthorized
	}
	if err != nil {
		return models.Employee{}, err
	}

	if session.ExpiredAt(service.now()) {
		_ = service.sessions.DeleteByToken(token)
		return models.Employee{}, ErrUnauthorized
	}

	employee, err := service.employees.FindByID(session.EmployeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = service.sessions.DeleteByToken(token)
		return models.Employee{}, ErrUnauthorized
	}
	if err != nil {
		return models.Employee{}, err
	}
	if !employee.IsActive || IsTerminatedHandle(employee.Handle) {
		_ = service.sessions.DeleteByToken(token)
		return models.Employee{}, ErrUnauthorized
	}

	return employee, nil
}

// ResetPassword generates a fresh password for the employee and revokes all
// existing sessions. Sessions are deleted before the hash is overwritten so
// no previously issued token outlives the reset. The plaintext is returned
// exactly once and never stored.
func (service *AuthService) ResetPassword(handle string) (string, error) {
	employee, err := service.lookupByHandle(handle)
	if err != nil {
		return "", err
	}

	password, err := security.NewGeneratedPassword()
	if err != nil {
		return "", err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	if err := service.sessions.DeleteByEmployee(employee.ID); err != nil {
		return "", err
	}
	if err := service.employees.UpdatePassword(employee.ID, hash); err != nil {
		return "", err
	}
	return password, nil
}

// Deactivate retires an employee and revokes every session they hold.
func (service *AuthService) Deactivate(employeeID uint) error {
	if _, err := service.employees.FindByID(employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return service.employees.Deactivate(employeeID)
}

func (service *AuthService) lookupByHandle(handle string) (models.Employee, error) {
	normalized := NormalizeHandle(handle)
	if normalized == "" {
		return models.Employee{}, ErrValidation
	}

	employee, err := service.employees.FindByHandle(normalized)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Employee{}, ErrNotFound
	}
	if err != nil {
		return models.Employee{}, err
	}
	return employee, nil
}

func (service *AuthService) issueSession(employeeID uint) (models.Session, error) {
	token, err := security.NewSessionToken()
	if err != nil {
		return models.Session{}, err
	}

	now := service.now()
	session := models.Session{
		Token:      token,
		EmployeeID: employeeID,
		ExpiresAt:  now.Add(SessionTTL),
		CreatedAt:  now,
	}
	if err := service.sessions.Create(&session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(plain string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
