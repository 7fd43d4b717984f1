package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/littlelemon/restaurant-api/auth"
	"github.com/littlelemon/restaurant-api/models"
	"github.com/littlelemon/restaurant-api/services"
	"github.com/littlelemon/restaurant-api/utils"
)

// GroupController manages the manager and delivery-crew tiers. Membership is
// the user's role column: adding a user to a group promotes them, removing
// them demotes back to customer. All endpoints are Manager only.
type GroupController struct {
	DB *gorm.DB
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db}
}

func (gc *GroupController) requireManager(c *gin.Context) bool {
	_, role := currentUser(c)
	if !auth.Decide(role, auth.ActionManageGroups, false) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return false
	}
	return true
}

func (gc *GroupController) listGroup(c *gin.Context, role auth.Role, message string) {
	if !gc.requireManager(c) {
		return
	}
	var users []models.User
	if err := gc.DB.Where("role = ?", role.String()).Order("id asc").Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, message, users)
}

func (gc *GroupController) addToGroup(c *gin.Context, role auth.Role, message string) {
	if !gc.requireManager(c) {
		return
	}
	var body struct {
		UserID uint `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := gc.DB.First(&user, body.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, services.ErrUserNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user.Role = role.String()
	if err := gc.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, message, gin.H{"user_id": user.ID})
}

func (gc *GroupController) removeFromGroup(c *gin.Context, role auth.Role, message string) {
	if !gc.requireManager(c) {
		return
	}

	var user models.User
	if err := gc.DB.First(&user, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, services.ErrUserNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Removing a user who is not in the group is a no-op success.
	if auth.ParseRole(user.Role) == role {
		user.Role = auth.RoleCustomer.String()
		if err := gc.DB.Save(&user).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}
	utils.RespondJSON(c, http.StatusOK, message, gin.H{"user_id": user.ID})
}

func (gc *GroupController) ListManagers(c *gin.Context) {
	gc.listGroup(c, auth.RoleManager, "Manager group members")
}

func (gc *GroupController) AddManager(c *gin.Context) {
	gc.addToGroup(c, auth.RoleManager, "User added to manager group")
}

func (gc *GroupController) RemoveManager(c *gin.Context) {
	gc.removeFromGroup(c, auth.RoleManager, "User removed from manager group")
}

func (gc *GroupController) ListDeliveryCrew(c *gin.Context) {
	gc.listGroup(c, auth.RoleDeliveryCrew, "Delivery crew group members")
}

func (gc *GroupController) AddDeliveryCrew(c *gin.Context) {
	gc.addToGroup(c, auth.RoleDeliveryCrew, "User added to delivery crew group")
}

func (gc *GroupController) RemoveDeliveryCrew(c *gin.Context) {
	gc.removeFromGroup(c, auth.RoleDeliveryCrew, "User removed from delivery crew group")
}
