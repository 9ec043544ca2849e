package users_services

import (
	"fieldtrack/internal/cache"
	users_models "fieldtrack/internal/features/users/models"
	users_repositories "fieldtrack/internal/features/users/repositories"
	cache_utils "fieldtrack/internal/util/cache"
)

var userRepository = &users_repositories.UserRepository{}

var userService = &UserService{
	userRepository: userRepository,
	userCacheUtil:  cache_utils.NewCacheUtil[users_models.User](cache.GetCache(), "ft_user:"),
	signInLimiters: newSignInLimiters(),
}

func GetUserService() *UserService {
	return userService
}
