package auth_controller

import (
	"github.com/Velora-Commerce/velora-storefront-backend/services"
)

// Controller serves the mock authentication flow: login/register against the
// in-memory user registry, JWT session cookies. This is demo auth for the
// storefront, not a hardened identity system.
type Controller struct {
	users *services.UserRegistry
}

func NewController(users *services.UserRegistry) *Controller {
	return &Controller{users: users}
}
