package handlers

import (
	"log"
	"net/http"

	"travel-concierge/api/mongodb"

	"github.com/gin-gonic/gin"
)

// HandleGetItinerary returns the authenticated user's saved itinerary.
func HandleGetItinerary(c *gin.Context) {
	claims, ok := userClaims(c)
	if !ok {
		return
	}

	doc, err := mongodb.GetItinerary(c.Request.Context(), claims.Sub)
	if err != nil {
		log.Printf("Error fetching itinerary for user %s: %v", claims.Sub, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no itinerary found"})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// HandleSaveItinerary merges the posted itinerary into the user's saved one.
// The merge is top-level only: keys missing from the request are preserved.
func HandleSaveItinerary(c *gin.Context) {
	claims, ok := userClaims(c)
	if !ok {
		return
	}

	var itinerary map[string]any
	if err := c.ShouldBindJSON(&itinerary); err != nil {
		log.Printf("Error binding JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(itinerary) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itinerary must not be empty"})
		return
	}

	if err := mongodb.SaveItinerary(c.Request.Context(), claims.Sub, itinerary); err != nil {
		log.Printf("Error saving itinerary for user %s: %v", claims.Sub, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Itinerary saved"})
}

func HandleDeleteItinerary(c *gin.Context) {
	claims, ok := userClaims(c)
	if !ok {
		return
	}

	found, err := mongodb.DeleteItinerary(c.Request.Context(), claims.Sub)
	if err != nil {
		log.Printf("Error deleting itinerary for user %s: %v", claims.Sub, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no itinerary found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Itinerary deleted"})
}
