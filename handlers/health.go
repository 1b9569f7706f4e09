package handlers

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	db      *sql.DB
	dataDir string
}

// NewHealthHandler checks db when it is set, otherwise the data directory.
func NewHealthHandler(db *sql.DB, dataDir string) *HealthHandler {
	return &HealthHandler{db: db, dataDir: dataDir}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "error",
				"error":  "Database connection failed",
			})
			return
		}
	} else if info, err := os.Stat(h.dataDir); err != nil || !info.IsDir() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "Data directory unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}
