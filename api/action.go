package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoolhealth/monitor-api/schema"
	"github.com/schoolhealth/monitor-api/store"
)

func (s *Server) listSuggestedActions(c *gin.Context) {
	actions, err := s.mongoStore.ListSuggestedActions()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

// createSuggestedAction is the API for an administrator to record an
// intervention
func (s *Server) createSuggestedAction(c *gin.Context) {
	var params schema.SuggestedAction

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	action, err := s.mongoStore.CreateSuggestedAction(params)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Code:    errorInvalidParameters.Code,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": action})
}

func (s *Server) updateSuggestedActionStatus(c *gin.Context) {
	var params struct {
		Status schema.ActionStatus `json:"status"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	err := s.mongoStore.UpdateSuggestedActionStatus(c.Param("actionID"), params.Status)
	switch err {
	case nil:
	case store.ErrActionNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorActionNotFound)
		return
	case store.ErrInvalidStatusTransition:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidStatusTransition)
		return
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
