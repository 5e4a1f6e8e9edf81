package handlers

import (
	"net/http"
	"strconv"

	"food-express/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// listOptions reads the public pagination query parameters. Bad numbers fall
// back to the defaults rather than erroring.
func listOptions(c *gin.Context) services.ListOptions {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(services.DefaultLimit)))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return services.ListOptions{
		Sort:   c.Query("sort"),
		Limit:  limit,
		Offset: offset,
	}
}

// paramID parses a numeric path parameter, answering 400 itself on garbage.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// storeError logs the unexpected failure server-side and answers a generic
// 500 — internal detail never reaches the caller.
func storeError(c *gin.Context, err error) {
	logrus.WithError(err).Error("unexpected store failure")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
}
