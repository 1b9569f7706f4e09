package handlers

import (
	"errors"
	"io/fs"
	"log"
	"net/http"

	"attendance_app/db"
	"attendance_app/models"
	"attendance_app/store"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	store *store.Store
}

func NewFileHandler(st *store.Store) *FileHandler {
	return &FileHandler{store: st}
}

func (h *FileHandler) SaveStudents(c *gin.Context) {
	if err := h.store.SaveStudents(); err != nil {
		log.Printf("Error saving students: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save students"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Students saved", "count": len(h.store.Students())})
}

func (h *FileHandler) LoadStudents(c *gin.Context) {
	n, err := h.store.LoadStudents()
	if errors.Is(err, fs.ErrNotExist) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No student data found"})
		return
	}
	if err != nil {
		log.Printf("Error loading students: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load students"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Students loaded", "count": n})
}

func (h *FileHandler) SaveSessions(c *gin.Context) {
	saved, err := h.store.SaveAllSessions()
	if saved == nil {
		saved = make([]string, 0)
	}
	if err != nil {
		log.Printf("Error saving sessions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "saved": saved})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All sessions saved", "saved": saved})
}

func (h *FileHandler) LoadSession(c *gin.Context) {
	var req models.LoadSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.store.LoadSessionFromFile(req.Filename)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, db.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session file not found"})
		return
	}
	if errors.Is(err, db.ErrUnsafeName) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("Error loading session %s: %v", req.Filename, err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"number":  len(h.store.Sessions()),
		"session": session,
	})
}

func (h *FileHandler) SeedDemo(c *gin.Context) {
	session, err := db.SeedData(h.store)
	if err != nil {
		log.Printf("Error seeding demo data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add demo data"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Demo data added", "session": session})
}
