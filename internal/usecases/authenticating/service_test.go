package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3nh@Forte"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService(config.Auth{
		Secret:            "segredo-de-teste",
		AdminEmail:        "admin@example.com",
		AdminPasswordHash: string(hash),
		TokenTTL:          time.Hour,
	}).(*Service)
}

func TestService_Login(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
		wantCode string
	}{
		{name: "sucesso", email: "admin@example.com", password: "s3nh@Forte"},
		{name: "email normalizado", email: "  Admin@Example.com ", password: "s3nh@Forte"},
		{name: "senha incorreta", email: "admin@example.com", password: "errada", wantErr: ErrInvalidCredentials, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "email desconhecido", email: "outro@example.com", password: "s3nh@Forte", wantErr: ErrInvalidCredentials, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "campos vazios", email: "", password: "", wantErr: ErrMissingRequiredData, wantCode: apiErrors.ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := service.Login(tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantCode, CodeFor(err))
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)

			claims, err := service.ValidateToken(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, "admin@example.com", claims.Email)
			assert.Equal(t, domain.RoleAdmin, claims.Role)
			assert.Equal(t, resp.ExpiresAt, claims.ExpiresAt.Unix())
		})
	}
}

func TestService_Login_SemHashConfigurado(t *testing.T) {
	service := NewService(config.Auth{Secret: "x", AdminEmail: "admin@example.com"})

	_, err := service.Login("admin@example.com", "qualquer")
	assert.ErrorIs(t, err, ErrLoginDisabled)
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestService(t)

	resp, err := service.Login("admin@example.com", "s3nh@Forte")
	require.NoError(t, err)

	t.Run("token expirado", func(t *testing.T) {
		expired := *service
		expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		_, err := expired.ValidateToken(resp.Token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.Equal(t, apiErrors.ErrExpiredToken, CodeFor(err))
	})

	t.Run("assinatura diferente", func(t *testing.T) {
		other := *service
		other.cfg.Secret = "outro-segredo"

		_, err := other.ValidateToken(resp.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("nao-e-um-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Equal(t, apiErrors.ErrInvalidToken, CodeFor(err))
	})
}
