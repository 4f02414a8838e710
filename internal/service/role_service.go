package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-admin-api/internal/rbac"
)

// roleKey is the fixed redis key holding the selected role label.
const roleKey = "campus:role"

// ErrUnknownRole indicates a role label outside the recognised set.
var ErrUnknownRole = errors.New("unknown role")

// RoleService persists the single selected role label. An unrecognised stored
// value is ignored in favor of the Viewer default.
type RoleService interface {
	Current(ctx context.Context) string
	Select(ctx context.Context, role string) (string, error)
}

type roleService struct {
	cache  *redis.Client
	logger zerolog.Logger

	mu       sync.RWMutex
	fallback string
}

// NewRoleService constructs the role service. The redis client may be nil, in
// which case the selection only lives in process memory.
func NewRoleService(cache *redis.Client, logger zerolog.Logger) RoleService {
	return &roleService{
		cache:    cache,
		logger:   logger.With().Str("component", "role_service").Logger(),
		fallback: rbac.RoleViewer,
	}
}

func (s *roleService) Current(ctx context.Context) string {
	if s.cache != nil {
		stored, err := s.cache.Get(ctx, roleKey).Result()
		if err == nil {
			if rbac.ValidRole(stored) {
				return stored
			}
			return rbac.RoleViewer
		}
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn().Err(err).Msg("failed to read persisted role")
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallback
}

func (s *roleService) Select(ctx context.Context, role string) (string, error) {
	role = strings.TrimSpace(role)
	if !rbac.ValidRole(role) {
		return "", ErrUnknownRole
	}

	s.mu.Lock()
	s.fallback = role
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.Set(ctx, roleKey, role, 0).Err(); err != nil {
			s.logger.Warn().Err(err).Msg("failed to persist role")
		}
	}

	s.logger.Info().Str("role", role).Msg("role selected")
	return role, nil
}
