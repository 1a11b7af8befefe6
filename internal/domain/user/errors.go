package user

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")

	ErrAdminAccessRequired      = errors.New("admin access required")
	ErrSupervisorAccessRequired = errors.New("supervisor or admin access required")
)
