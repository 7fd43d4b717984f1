package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/littlelemon/restaurant-api/auth"
	"github.com/littlelemon/restaurant-api/controllers"
	"github.com/littlelemon/restaurant-api/middlewares"
	"github.com/littlelemon/restaurant-api/utils"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	if db == nil {
		db = utils.GetDB()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.CORSMiddlewares())

	// Registered before any route so every handler chain includes it; gin
	// snapshots the middleware stack at registration time.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	userCtrl := controllers.NewUserController(db)
	menuCtrl := controllers.NewMenuItemController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	groupCtrl := controllers.NewGroupController(db)
	cartCtrl := controllers.NewCartController(db)
	orderCtrl := controllers.NewOrderController(db)

	// Auth endpoints, throttled harder than the rest of the API.
	strict := middlewares.NewStrictRateLimiter()
	r.POST("/users", strict, userCtrl.Register)
	r.POST("/users/login", strict, userCtrl.Login)

	// Public read; the authed write below shares the same path shape.
	r.GET("/categories/", categoryCtrl.GetAllCategories)

	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.GET("/menu-items", menuCtrl.GetAllMenuItems)
		authed.POST("/menu-items", menuCtrl.CreateMenuItem)
		authed.GET("/menu-items/:id", menuCtrl.GetMenuItemByID)
		authed.PUT("/menu-items/:id", menuCtrl.UpdateMenuItem)
		authed.PATCH("/menu-items/:id", menuCtrl.UpdateMenuItem)
		authed.DELETE("/menu-items/:id", menuCtrl.DeleteMenuItem)

		authed.POST("/categories/", categoryCtrl.CreateCategory)

		authed.GET("/cart/menu-items", cartCtrl.GetCart)
		authed.POST("/cart/menu-items", cartCtrl.AddToCart)
		authed.DELETE("/cart/menu-items", cartCtrl.ClearCart)

		authed.GET("/orders", orderCtrl.ListOrders)
		authed.POST("/orders", orderCtrl.CreateOrder)
		authed.GET("/orders/:id", orderCtrl.GetOrderByID)
		authed.PUT("/orders/:id", orderCtrl.UpdateOrder)
		authed.PATCH("/orders/:id", orderCtrl.UpdateOrder)
		authed.DELETE("/orders/:id", orderCtrl.DeleteOrder)

		groups := authed.Group("/groups")
		groups.Use(middlewares.RequireRole(auth.RoleManager))
		{
			groups.GET("/manager/users", groupCtrl.ListManagers)
			groups.POST("/manager/users", groupCtrl.AddManager)
			groups.DELETE("/manager/users/:id", groupCtrl.RemoveManager)

			groups.GET("/delivery-crew/users", groupCtrl.ListDeliveryCrew)
			groups.POST("/delivery-crew/users", groupCtrl.AddDeliveryCrew)
			groups.DELETE("/delivery-crew/users/:id", groupCtrl.RemoveDeliveryCrew)
		}
	}

	return r
}
