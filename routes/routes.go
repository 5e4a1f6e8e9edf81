package routes

import (
	"food-express/handlers"
	"food-express/middleware"
	"food-express/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires every endpoint onto the engine. The store handle and
// token secret are injected here and flow into the services and middleware —
// nothing route-level reaches for globals.
func SetupRoutes(r *gin.Engine, db *gorm.DB, secret []byte) {
	users := services.NewUserService(db)
	restaurants := services.NewRestaurantService(db)
	menus := services.NewMenuService(db)

	authn := middleware.AuthRequired(secret)
	admin := middleware.AdminRequired()

	// ── Users ──────────────────────────────────────────────────────
	u := r.Group("/users")
	{
		u.POST("/register", handlers.Register(users))
		u.POST("/login", handlers.Login(users, secret))
	}
	ua := r.Group("/users")
	ua.Use(authn)
	{
		ua.GET("/me", handlers.Me())
		ua.PUT("/me", handlers.UpdateMe(users, secret))
		ua.DELETE("/me", handlers.DeleteMe(users))

		ua.GET("", admin, handlers.ListUsers(users))
		ua.DELETE("", admin, handlers.DeleteAllUsers(users))
		ua.PUT("/:id", middleware.SelfOrAdmin(), handlers.UpdateUser(users))
		ua.DELETE("/:id", middleware.SelfOrAdmin(), handlers.DeleteUser(users))
	}

	// ── Restaurants ────────────────────────────────────────────────
	r.GET("/restaurants", handlers.ListRestaurants(restaurants))

	ra := r.Group("/restaurants")
	ra.Use(authn, admin)
	{
		ra.GET("/all", handlers.AllRestaurants(restaurants))
		ra.GET("/:id", handlers.GetRestaurant(restaurants))
		ra.POST("/create", handlers.CreateRestaurant(restaurants))
		ra.PUT("/:id", handlers.UpdateRestaurant(restaurants))
		ra.DELETE("/:id", handlers.DeleteRestaurant(restaurants))
		ra.DELETE("", handlers.DeleteAllRestaurants(restaurants))
	}

	// ── Menus ──────────────────────────────────────────────────────
	r.GET("/menus", handlers.ListMenus(menus))
	r.GET("/menus/restaurant/:restaurant_id", handlers.MenusOfRestaurant(menus))

	ma := r.Group("/menus")
	ma.Use(authn, admin)
	{
		ma.GET("/all", handlers.AllMenus(menus))
		ma.GET("/:id", handlers.GetMenu(menus))
		ma.POST("/create", handlers.CreateMenu(menus))
		ma.PUT("/:id", handlers.UpdateMenu(menus))
		ma.DELETE("/:id", handlers.DeleteMenu(menus))
		ma.DELETE("", handlers.DeleteAllMenus(menus))
	}
}
