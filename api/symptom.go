package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoolhealth/monitor-api/schema"
)

// getSymptoms lists the official catalog, localized by the Accept-Language
// header, followed by student-submitted symptoms.
func (s *Server) getSymptoms(c *gin.Context) {
	lang := c.GetHeader("Accept-Language")
	if lang == "" {
		lang = "en"
	}

	official, err := s.mongoStore.ListOfficialSymptoms(lang)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	customized, err := s.mongoStore.ListCustomizedSymptoms()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"symptoms":            official,
		"customized_symptoms": customized,
	})
}

func (s *Server) createSymptom(c *gin.Context) {
	var params schema.Symptom

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	id, err := s.mongoStore.CreateSymptom(params)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id": id,
	})
}
