package handlers

import (
	"errors"
	"net/http"

	"food-express/middleware"
	"food-express/models"
	"food-express/services"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateMeRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password"`
}

type UpdateUserRequest struct {
	Name     *string          `json:"name"`
	Email    *string          `json:"email" binding:"omitempty,email"`
	Password *string          `json:"password"`
	Role     *models.UserRole `json:"role" binding:"omitempty,oneof=user admin"`
}

// Register creates a new user account. Accounts always start with the
// "user" role; a role field in the request body is ignored. Admins are made
// by an existing admin through PUT /users/:id.
func Register(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := users.Create(req.Name, req.Email, req.Password, models.RoleUser)
		if err != nil {
			if errors.Is(err, services.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
				return
			}
			storeError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "User created", "user": user})
	}
}

// Login verifies credentials and returns a signed bearer token
func Login(users *services.UserService, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := users.Verify(req.Email, req.Password)
		if err != nil {
			storeError(c, err)
			return
		}
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := middleware.GenerateToken(user, secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
	}
}

// Me returns the caller's profile straight from the verified token claims.
// No store read happens here, which is why a token issued before the account
// was deleted keeps answering until it expires.
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := middleware.GetClaims(c)
		c.JSON(http.StatusOK, gin.H{
			"message": "Your profile",
			"user": gin.H{
				"id":    claims.ID,
				"name":  claims.Name,
				"email": claims.Email,
				"role":  claims.Role,
			},
		})
	}
}

// UpdateMe patches the caller's own account and reissues a token carrying
// the updated name/email.
func UpdateMe(users *services.UserService, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := middleware.GetClaims(c)
		var req UpdateMeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		changes, err := users.Update(claims.ID, services.UserUpdate{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			if errors.Is(err, services.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
				return
			}
			storeError(c, err)
			return
		}
		if changes == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found or no changes"})
			return
		}

		updated := models.User{
			ID:    claims.ID,
			Name:  claims.Name,
			Email: claims.Email,
			Role:  claims.Role,
		}
		if req.Name != nil {
			updated.Name = *req.Name
		}
		if req.Email != nil {
			updated.Email = *req.Email
		}
		token, err := middleware.GenerateToken(&updated, secret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "newtoken": token})
	}
}

// DeleteMe removes the caller's own account
func DeleteMe(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := middleware.GetClaims(c)
		changes, err := users.DeleteByID(claims.ID)
		if err != nil {
			storeError(c, err)
			return
		}
		if changes == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Your account has been deleted"})
	}
}

// ListUsers returns all users — admin only
func ListUsers(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.All()
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(list), "users": list})
	}
}

// UpdateUser patches any account by id. The route is gated self-or-admin;
// the role field on top of that stays admin-only.
func UpdateUser(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var req UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Role != nil && middleware.GetClaims(c).Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can change roles"})
			return
		}

		changes, err := users.Update(id, services.UserUpdate{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Role:     req.Role,
		})
		if err != nil {
			if errors.Is(err, services.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
				return
			}
			storeError(c, err)
			return
		}
		if changes == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found or no changes"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User updated"})
	}
}

// DeleteUser removes any account by id
func DeleteUser(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		changes, err := users.DeleteByID(id)
		if err != nil {
			storeError(c, err)
			return
		}
		if changes == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}

// DeleteAllUsers wipes the users table — admin only
func DeleteAllUsers(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		deleted, err := users.DeleteAll()
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "All users deleted", "deleted": deleted})
	}
}
