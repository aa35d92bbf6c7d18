package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoolhealth/monitor-api/schema"
)

// getLocations returns the campus building and room catalog used by the
// report form.
func (s *Server) getLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"buildings": schema.Buildings})
}
