package handlers

import (
	"errors"
	"net/http"

	"food-express/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateMenuRequest struct {
	RestaurantID uint    `json:"restaurant_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Category     string  `json:"category"`
}

type UpdateMenuRequest struct {
	RestaurantID *uint    `json:"restaurant_id"`
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price" binding:"omitempty,gt=0"`
	Category     *string  `json:"category"`
}

// ListMenus returns one paginated public page: {total, limit, offset, data}
func ListMenus(menus *services.MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := menus.List(listOptions(c))
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// AllMenus returns the unpaged listing — admin only
func AllMenus(menus *services.MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := menus.All()
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(list), "menus": list})
	}
}

// MenusOfRestaurant returns the menus of one restaurant (public)
func MenusOfRestaurant(menus *services.MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID, ok := paramID(c, "restaurant_id")
		if !ok {
			return
		}
		list, err := menus.FindByRestaurant(restaurantID)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(list), "menus": list})
	}
}

// GetMenu returns a single menu by id
func GetMenu(menus *services.MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		menu, err := menus.FindByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
			return
		}
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"menu": menu})
	}
}

// CreateMenu adds a menu. A restaurant_id that matches no restaurant
// answers 409, not 201.
func CreateMenu(menus *services.MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateMenuRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		menu, err := menus.Create(req.RestaurantID, req.Name, req.Description, req.Price, req.Category)
		if err != nil {
			if errors.Is(err, services.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Constraint conflict (invalid restaurant_id?)"})
				return
			}
			storeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Menu created", "menu": menu})
	}
}

// UpdateMenu patches the supplied fields of one menu
func UpdateMenu(menus *services.MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var req UpdateMenuRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		changes, err := menus.Update(id, services.MenuUpdate{
			RestaurantID: req.RestaurantID,
			Name:         req.Name,
			Description:  req.Description,
			Price:        req.Price,
			Category:     req.Category,
		})
		if err != nil {
			if errors.Is(err, services.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Constraint conflict (invalid restaurant_id?)"})
				return
			}
			storeError(c, err)
			return
		}
		if changes == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found or no changes"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Menu updated"})
	}
}

// DeleteMenu removes a menu by id
func DeleteMenu(menus *services.MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		changes, err := menus.DeleteByID(id)
		if err != nil {
			storeError(c, err)
			return
		}
		if changes == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Menu deleted"})
	}
}

// DeleteAllMenus wipes the menus table — admin only
func DeleteAllMenus(menus *services.MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := menus.DeleteAll()
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "All menus deleted", "deleted": deleted})
	}
}
