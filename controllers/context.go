package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/littlelemon/restaurant-api/auth"
)

// currentUser reads the identity the auth middleware resolved for this
// request. The role defaults to Customer when the middleware did not run,
// which only happens on routes that never reach these handlers.
func currentUser(c *gin.Context) (uint, auth.Role) {
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")

	id, _ := userID.(uint)
	r, ok := role.(auth.Role)
	if !ok {
		r = auth.RoleCustomer
	}
	return id, r
}
