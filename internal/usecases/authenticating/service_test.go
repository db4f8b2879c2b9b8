package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/repairdesk/backoffice-analytics/internal/config"
	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, method jwt.SigningMethod, key any, expiresAt time.Time) string {
	t.Helper()

	claims := domain.Claims{
		UserID:     7,
		UserName:   "Gerente Centro",
		UserRoleID: 2,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestService_ValidateToken(t *testing.T) {
	service := NewService(&config.Config{Auth: config.Auth{Secret: testSecret}})

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name:  "token válido",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(time.Hour)),
		},
		{
			name:    "token expirado",
			token:   signToken(t, jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(-time.Hour)),
			wantErr: ErrExpiredToken,
		},
		{
			name:    "assinado com outro segredo",
			token:   signToken(t, jwt.SigningMethodHS256, []byte("outro"), time.Now().Add(time.Hour)),
			wantErr: ErrInvalidToken,
		},
		{
			name:    "token malformado",
			token:   "abc.def",
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 7, claims.UserID)
			assert.Equal(t, 2, claims.UserRoleID)
		})
	}
}
