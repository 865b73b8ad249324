package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	dbpkg "github.com/projecttracker/tracker/internal/infra/db"
	"github.com/projecttracker/tracker/internal/modules/serializer"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db     *gorm.DB
	dbName string
}

func NewHealthHandler(db *gorm.DB, dbName string) *HealthHandler {
	return &HealthHandler{db: db, dbName: dbName}
}

type DBHealth struct {
	Success     bool     `json:"success"`
	Message     string   `json:"message,omitempty"`
	Database    string   `json:"database,omitempty"`
	Collections []string `json:"collections,omitempty"`
	Error       string   `json:"error,omitempty"`
	Timestamp   string   `json:"timestamp"`
}

func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, serializer.Response{Msg: "ok"})
}

// Database pings the database and lists its tables. It sits outside /api
// and is left out of the API docs like Live.
func (h *HealthHandler) Database(c *gin.Context) {
	now := time.Now().UTC().Format(time.RFC3339)

	tables, err := dbpkg.Ping(c.Request.Context(), h.db)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, DBHealth{Success: false, Error: err.Error(), Timestamp: now})
		return
	}

	c.JSON(http.StatusOK, DBHealth{
		Success:     true,
		Message:     "database connection successful",
		Database:    h.dbName,
		Collections: tables,
		Timestamp:   now,
	})
}
