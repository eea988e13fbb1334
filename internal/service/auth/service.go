package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/salarydesk/salary-backend-go/internal/domain/auth"
	"github.com/salarydesk/salary-backend-go/internal/domain/employee"
	"github.com/salarydesk/salary-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	jwtService jwt.Service
	auth.UserAuthRepository
	employee.EmployeeRepository
}

// Login implements auth.AuthService. Lookup failures and PIN mismatches both
// come back as invalid credentials so the endpoint does not leak which part
// was wrong.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByFirstName(ctx, req.FirstName)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	ua, err := s.UserAuthRepository.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		if errors.Is(err, auth.ErrPINNotSet) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ua.PINHash), []byte(req.PIN)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateAccessToken(emp.ID, emp.FirstName, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return auth.LoginResponse{
		Token:      token,
		EmployeeID: emp.ID,
		FirstName:  emp.FirstName,
		LastName:   emp.LastName,
		Role:       string(emp.Role),
		Dashboard:  dashboardFor(emp.Role),
	}, nil
}

// SetPIN implements auth.AuthService.
func (s *AuthServiceImpl) SetPIN(ctx context.Context, req auth.SetPINRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}

	_, err = s.UserAuthRepository.Upsert(ctx, auth.UserAuth{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		PINHash:    string(hash),
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to store PIN: %w", err)
	}
	return nil
}

func dashboardFor(role employee.Role) string {
	switch role {
	case employee.RoleAdmin:
		return "/admin-dashboard"
	case employee.RoleManager:
		return "/manager-dashboard"
	case employee.RoleStaff:
		return "/staff-dashboard"
	}
	return "/login"
}

func NewAuthService(
	jwtService jwt.Service,
	userAuthRepo auth.UserAuthRepository,
	employeeRepo employee.EmployeeRepository,
) auth.AuthService {
	return &AuthServiceImpl{
		jwtService:         jwtService,
		UserAuthRepository: userAuthRepo,
		EmployeeRepository: employeeRepo,
	}
}
