package users_controllers

import (
	users_services "fieldtrack/internal/features/users/services"
)

var userController = &UserController{
	userService: users_services.GetUserService(),
}

func GetUserController() *UserController {
	return userController
}
