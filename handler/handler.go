package handler

import (
	"github.com/jellydator/ttlcache/v3"
	"github.com/vinaysurtani/Trivia-API/config"
	"github.com/vinaysurtani/Trivia-API/internal/jsonlog"
	"github.com/vinaysurtani/Trivia-API/service"
)

// Handler defines Handler layer.
type Handler struct {
	config  config.Config
	logger  *jsonlog.Logger
	cache   *ttlcache.Cache[string, map[string]string]
	service service.Service
}

// New creates a new instance of Handler.
func New(cfg config.Config, logger *jsonlog.Logger, cache *ttlcache.Cache[string, map[string]string], service service.Service) *Handler {
	return &Handler{
		config:  cfg,
		logger:  logger,
		cache:   cache,
		service: service,
	}
}
