package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Creditos-api/pkg/jwt"
)

const secret = "test-secret-key"

func TestGenerateYParse_IdaYVuelta(t *testing.T) {
	token, err := jwt.Generate(secret, "merchant-1", "ana@tienda.com", "creditos-api", 60)
	require.NoError(t, err)

	merchantID, email, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "merchant-1", merchantID)
	assert.Equal(t, "ana@tienda.com", email)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(secret, "merchant-1", "ana@tienda.com", "creditos-api", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secret", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(secret, "merchant-1", "ana@tienda.com", "creditos-api", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(secret, token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "merchant-1", "", "", 60)
	assert.Error(t, err)
}
