package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"school-platform/config"
	"school-platform/domain/content"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	StoreMode string           `json:"store_mode"`
	Checks    map[string]Check `json:"checks,omitempty"`
}

// Check represents an individual health check result
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Handler reports service health, including which storage backend is
// active.
type Handler struct {
	store content.Store
}

// NewHandler returns a health handler for the given store.
func NewHandler(store content.Store) *Handler {
	return &Handler{store: store}
}

// LivenessHandler handles GET /health/live. Returns 200 whenever the
// process is running.
func (h *Handler) LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		StoreMode: h.store.Mode(),
	})
}

// HealthHandler handles GET /health. In durable mode it pings MongoDB;
// the in-memory store has nothing to probe.
func (h *Handler) HealthHandler(c echo.Context) error {
	checks := make(map[string]Check)
	allHealthy := true

	if h.store.Mode() == content.ModeMongo {
		storeCheck := checkMongo()
		checks["mongodb"] = storeCheck
		if storeCheck.Status != "ok" {
			allHealthy = false
		}
	} else {
		checks["memory"] = Check{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !allHealthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		StoreMode: h.store.Mode(),
		Checks:    checks,
	})
}

// checkMongo checks if the durable store is responsive
func checkMongo() Check {
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	db, err := config.MongoDatabase()
	if err == nil {
		err = db.Client().Ping(ctx, nil)
	}
	latency := time.Since(start)

	if err != nil {
		return Check{
			Status:  "error",
			Message: "MongoDB connection failed",
			Latency: latency.String(),
		}
	}

	return Check{
		Status:  "ok",
		Latency: latency.String(),
	}
}
