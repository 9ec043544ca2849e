package users_services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"fieldtrack/internal/apperrors"
	"fieldtrack/internal/config"
	users_dto "fieldtrack/internal/features/users/dto"
	users_enums "fieldtrack/internal/features/users/enums"
	users_models "fieldtrack/internal/features/users/models"
	users_repositories "fieldtrack/internal/features/users/repositories"
	cache_utils "fieldtrack/internal/util/cache"
)

type UserService struct {
	userRepository *users_repositories.UserRepository

	userCacheUtil *cache_utils.CacheUtil[users_models.User]
	singleflight  singleflight.Group // collapses concurrent DB lookups per user id

	signInLimiters *signInLimiters
}

func (s *UserService) SignUp(request *users_dto.SignUpRequestDTO) error {
	existingUser, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return apperrors.Validation("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	hashedPasswordStr := string(hashedPassword)

	user := &users_models.User{
		ID:             uuid.New(),
		Email:          request.Email,
		HashedPassword: &hashedPasswordStr,
		Role:           users_enums.UserRoleMember,
		Status:         users_enums.UserStatusActive,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *UserService) SignIn(request *users_dto.SignInRequestDTO) (*users_dto.SignInResponseDTO, error) {
	if !s.signInLimiters.allow(request.Email) {
		return nil, errors.New("too many sign in attempts, try again later")
	}

	user, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil || user == nil {
		return nil, errors.New("user with this email does not exist")
	}

	if !user.IsActiveUser() {
		return nil, errors.New("user account is deactivated")
	}

	if user.HashedPassword == nil {
		return nil, errors.New("password is not set for this account")
	}

	err = bcrypt.CompareHashAndPassword([]byte(*user.HashedPassword), []byte(request.Password))
	if err != nil {
		return nil, errors.New("password is incorrect")
	}

	response, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	response.Email = user.Email

	return response, nil
}

func (s *UserService) GetUserFromToken(token string) (*users_models.User, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.GetEnv().JwtSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, errors.New("invalid token")
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("invalid token claims")
	}

	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if !user.IsActiveUser() {
		return nil, errors.New("user account is deactivated")
	}

	return user, nil
}

// GetUserByID reads through the user cache; concurrent misses for the
// same id share one DB query.
func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	if cached := s.userCacheUtil.Get(userID.String()); cached != nil {
		return cached, nil
	}

	result, err, _ := s.singleflight.Do(userID.String(), func() (any, error) {
		user, err := s.userRepository.GetUserByID(userID)
		if err != nil {
			return nil, err
		}

		s.userCacheUtil.Set(userID.String(), user)

		return user, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*users_models.User), nil
}

func (s *UserService) GetUserByEmail(email string) (*users_models.User, error) {
	return s.userRepository.GetUserByEmail(email)
}

func (s *UserService) GenerateAccessToken(user *users_models.User) (*users_dto.SignInResponseDTO, error) {
	expiration := time.Now().UTC().Add(time.Hour * 24 * 30)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID.String(),
		"exp":  expiration.Unix(),
		"iat":  time.Now().UTC().Unix(),
		"role": string(user.Role),
	})

	tokenString, err := token.SignedString([]byte(config.GetEnv().JwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &users_dto.SignInResponseDTO{
		UserID: user.ID,
		Role:   user.Role,
		Token:  tokenString,
	}, nil
}

// ChangeUserRole is admin-only; role assignment lives here, the
// workflow engine only ever reads the resulting role.
func (s *UserService) ChangeUserRole(
	targetUserID uuid.UUID,
	role users_enums.UserRole,
	changedBy *users_models.User,
) error {
	if changedBy.Role != users_enums.UserRoleAdmin {
		return apperrors.PermissionDenied("only administrators can change user roles")
	}

	if !role.IsValid() {
		return apperrors.Validation("role must be one of admin, manager, member")
	}

	if _, err := s.userRepository.GetUserByID(targetUserID); err != nil {
		return apperrors.NotFound("user not found")
	}

	if err := s.userRepository.UpdateUserRole(targetUserID, role); err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}

	s.userCacheUtil.Invalidate(targetUserID.String())

	return nil
}

func (s *UserService) AssignUserCompany(userID uuid.UUID, companyID uuid.UUID) error {
	if err := s.userRepository.UpdateUserCompany(userID, companyID); err != nil {
		return fmt.Errorf("failed to assign company: %w", err)
	}

	s.userCacheUtil.Invalidate(userID.String())

	return nil
}

func (s *UserService) CreateInitialAdmin() error {
	return s.userRepository.CreateInitialAdmin()
}

// signInLimiters keeps one token bucket per email so password guessing
// against a single account is throttled without affecting others.
type signInLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newSignInLimiters() *signInLimiters {
	return &signInLimiters{
		limiters: make(map[string]*rate.Limiter),
	}
}

func (l *signInLimiters) allow(email string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[email]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(time.Second), 10)
		l.limiters[email] = limiter
	}

	return limiter.Allow()
}
