//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"clinicbook/internal/pkg/config"
	"clinicbook/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the identity service would, using the
// shared secret from config.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret)
	token, err := service.GenerateToken(userID, role, 15*time.Minute)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret)
	token, err := service.GenerateToken(userID, role, -time.Minute)
	require.NoError(t, err)
	return token
}
