package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/omnicalc/backend/internal/logging"
	"github.com/omnicalc/backend/internal/monitoring"
	"github.com/omnicalc/backend/internal/navigation"
	"github.com/omnicalc/backend/internal/settings"
	"github.com/omnicalc/backend/internal/ws"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	manifest *navigation.Manifest
	store    *settings.Store
	hub      *ws.Hub
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates a new handler set. hub and metrics may be nil.
func NewHandlers(
	manifest *navigation.Manifest,
	store *settings.Store,
	hub *ws.Hub,
	metrics *monitoring.Metrics,
	logger *logging.Logger,
) *Handlers {
	return &Handlers{
		manifest: manifest,
		store:    store,
		hub:      hub,
		metrics:  metrics,
		logger:   logger.WithComponent("http"),
	}
}

// Root handles the health banner.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "OmniCalc Navigation Service (Go)",
		"version": "1.0.0",
	})
}

// Health handles detailed health check.
func (h *Handlers) Health(c *gin.Context) {
	subscribers := 0
	if h.hub != nil {
		subscribers = h.hub.Count()
	}
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"modes":        h.manifest.Len(),
		"accelerators": len(h.manifest.AcceleratorKeys()),
		"subscribers":  subscribers,
	})
}

// Menu returns the assembled navigation menu: calculator group then
// converter group, each with its ordered categories.
func (h *Handlers) Menu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"groups": h.manifest.Menu()})
}

// ListModes returns every manifest record plus the accelerator table.
func (h *Handlers) ListModes(c *gin.Context) {
	keys := h.manifest.AcceleratorKeys()
	accelerators := make([]string, len(keys))
	for i, k := range keys {
		accelerators[i] = k.String()
	}

	c.JSON(http.StatusOK, gin.H{
		"modes":        h.manifest.Categories(),
		"accelerators": accelerators,
	})
}

// GetMode returns one mode looked up by friendly name, with its positional
// indexes resolved.
func (h *Handlers) GetMode(c *gin.Context) {
	name := c.Param("name")

	mode := h.manifest.ModeForFriendlyName(name)
	if mode == navigation.ModeNone {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown mode: " + name})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mode":             mode.String(),
		"friendly_name":    h.manifest.FriendlyName(mode),
		"name_resource":    h.manifest.NameResourceKey(mode),
		"group":            h.manifest.GroupType(mode).String(),
		"enabled":          h.manifest.IsEnabled(mode),
		"position":         h.manifest.Position(mode),
		"index":            h.manifest.Index(mode),
		"flat_index":       h.manifest.FlatIndex(mode),
		"index_in_group":   h.manifest.IndexInGroup(mode, h.manifest.GroupType(mode)),
		"serialization_id": h.manifest.Serialize(mode),
	})
}

// GetSelection returns the persisted mode selection, already mapped
// through the manifest so revoked or removed modes come back as none.
func (h *Handlers) GetSelection(c *gin.Context) {
	mode := h.manifest.Deserialize(h.store.Load())

	response := gin.H{"mode": mode.String(), "valid": mode != navigation.ModeNone}
	if mode != navigation.ModeNone {
		response["serialization_id"] = h.manifest.Serialize(mode)
	}
	c.JSON(http.StatusOK, response)
}

type selectionRequest struct {
	Mode string `json:"mode" binding:"required"`
}

// PutSelection persists a new mode selection and notifies subscribers.
func (h *Handlers) PutSelection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode is required"})
		return
	}

	mode := h.manifest.ModeForFriendlyName(req.Mode)
	if mode == navigation.ModeNone {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown mode: " + req.Mode})
		return
	}
	if !h.manifest.IsEnabled(mode) {
		c.JSON(http.StatusConflict, gin.H{"error": "mode is disabled by policy: " + req.Mode})
		return
	}

	if err := h.store.Save(h.manifest, mode); err != nil {
		h.logger.Error("failed to persist selection", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist selection"})
		return
	}

	if h.metrics != nil {
		h.metrics.RecordModeSelection(mode.String())
	}
	if h.hub != nil {
		h.hub.BroadcastSelection(mode, h.manifest.Serialize(mode))
	}

	c.JSON(http.StatusOK, gin.H{
		"mode":             mode.String(),
		"serialization_id": h.manifest.Serialize(mode),
	})
}

type acceleratorRequest struct {
	Key int `json:"key" binding:"required"`
}

// Accelerator routes a number-key press to its mode.
func (h *Handlers) Accelerator(c *gin.Context) {
	var req acceleratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}

	mode := h.manifest.ModeForVirtualKey(navigation.KeyForDigit(req.Key))
	if mode == navigation.ModeNone {
		c.JSON(http.StatusNotFound, gin.H{"error": "no mode bound to key"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mode":          mode.String(),
		"friendly_name": h.manifest.FriendlyName(mode),
		"enabled":       h.manifest.IsEnabled(mode),
	})
}
