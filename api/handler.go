package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oddsfeed/marketmerge/database"
	"github.com/oddsfeed/marketmerge/models"
)

type QueryParams struct {
	League string `form:"league" binding:"required"`
}

// GetMarkets returns the stored markets for one league.
func GetMarkets(c *gin.Context) {
	var params QueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var rows []models.MarketRow
	err := database.DB.
		Where("league = ?", params.League).
		Order("name").
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetLeagueSummary returns per-league record counts, sorted by league.
func GetLeagueSummary(c *gin.Context) {
	var counts []models.LeagueCount

	err := database.DB.Raw(`
		SELECT league, COUNT(*) as count
		FROM markets
		GROUP BY league
		ORDER BY league
	`).Scan(&counts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, counts)
}

func SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/api/markets", GetMarkets)
	r.GET("/api/markets/summary", GetLeagueSummary)

	return r
}
