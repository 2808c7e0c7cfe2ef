package docs

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestReadDoc_JSONValidoConRutas(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	info := doc["info"].(map[string]any)
	assert.Equal(t, "Creditos API", info["title"])

	paths := doc["paths"].(map[string]any)
	assert.Contains(t, paths, "/api/reminders/send-single")
	assert.Contains(t, paths, "/api/credit-sales/{id}/statement")
}

func TestSwaggerJSON_MismasRutasQueElTemplate(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)
	file, err := os.ReadFile("swagger.json")
	require.NoError(t, err)

	var fromTemplate, fromFile map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &fromTemplate))
	require.NoError(t, json.Unmarshal(file, &fromFile))
	assert.Equal(t, fromFile["paths"], fromTemplate["paths"])
}
