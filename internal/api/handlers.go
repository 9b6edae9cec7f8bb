package api

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"rentdesk/server/config"
	"rentdesk/server/internal/accounts"
	"rentdesk/server/internal/auth"
	"rentdesk/server/internal/payments"
	"rentdesk/server/internal/storage"
	"rentdesk/server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	store      *store.Store
	logger     *logrus.Logger
	jwt        *auth.JWTService
	blacklist  *auth.Blacklist
	reconciler *accounts.Reconciler
	gateway    *payments.Gateway
	files      *storage.Store
}

func NewHandler(s *store.Store, cfg *config.Config, files *storage.Store, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		store:      s,
		logger:     logger,
		jwt:        auth.NewJWTService(cfg),
		blacklist:  auth.NewBlacklist(cfg, logger),
		reconciler: accounts.NewReconciler(s, logger),
		gateway:    payments.NewGateway(cfg, logger),
		files:      files,
	}
}

// respondError maps store sentinels onto status codes and logs the rest.
func (h *Handler) respondError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, store.ErrInvalidValue):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrPropertyHasTenants), errors.Is(err, store.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.WithError(err).Error(action)
		c.JSON(http.StatusInternalServerError, gin.H{"error": action})
	}
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// uintQuery parses an optional numeric query parameter. An absent
// parameter means "no filter"; a malformed one is rejected with a 400.
func uintQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}
