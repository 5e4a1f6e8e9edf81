package handlers

import (
	"errors"
	"net/http"

	"food-express/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateRestaurantRequest struct {
	Name         string `json:"name" binding:"required"`
	Address      string `json:"address" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	OpeningHours string `json:"opening_hours"`
}

type UpdateRestaurantRequest struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	OpeningHours *string `json:"opening_hours"`
}

// ListRestaurants returns one paginated public page: {total, limit, offset, data}
func ListRestaurants(restaurants *services.RestaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := restaurants.List(listOptions(c))
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// AllRestaurants returns the unpaged listing — admin only
func AllRestaurants(restaurants *services.RestaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := restaurants.All()
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(list), "restaurants": list})
	}
}

// GetRestaurant returns a single restaurant by id
func GetRestaurant(restaurants *services.RestaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		restaurant, err := restaurants.FindByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
	}
}

// CreateRestaurant adds a restaurant. A duplicate address answers 409.
func CreateRestaurant(restaurants *services.RestaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRestaurantRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		restaurant, err := restaurants.Create(req.Name, req.Address, req.Phone, req.OpeningHours)
		if err != nil {
			if errors.Is(err, services.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Address already in use"})
				return
			}
			storeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created", "restaurant": restaurant})
	}
}

// UpdateRestaurant patches the supplied fields of one restaurant
func UpdateRestaurant(restaurants *services.RestaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var req UpdateRestaurantRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		changes, err := restaurants.Update(id, services.RestaurantUpdate{
			Name:         req.Name,
			Address:      req.Address,
			Phone:        req.Phone,
			OpeningHours: req.OpeningHours,
		})
		if err != nil {
			if errors.Is(err, services.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Address already in use"})
				return
			}
			storeError(c, err)
			return
		}
		if changes == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found or no changes"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated"})
	}
}

// DeleteRestaurant removes a restaurant and, through the cascade, its menus
func DeleteRestaurant(restaurants *services.RestaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		changes, err := restaurants.DeleteByID(id)
		if err != nil {
			storeError(c, err)
			return
		}
		if changes == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted"})
	}
}

// DeleteAllRestaurants wipes the restaurants table — admin only
func DeleteAllRestaurants(restaurants *services.RestaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := restaurants.DeleteAll()
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "All restaurants deleted", "deleted": deleted})
	}
}
