package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// O middleware de swagger faz os.Stat do arquivo no boot e entra em pânico se
// ele não existir. O JSON precisa estar versionado no repositório e válido.
func TestSwaggerJSONVersionadoEValido(t *testing.T) {
	raw, err := os.ReadFile("../../docs/swagger.json")
	require.NoError(t, err, "docs/swagger.json precisa acompanhar o repositório")

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "2.0", doc["swagger"])

	info, ok := doc["info"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "AgroCampo API", info["title"])

	paths, ok := doc["paths"].(map[string]interface{})
	require.True(t, ok)
	for _, p := range []string{
		"/api/colheitas", "/api/compras", "/api/vendas",
		"/api/transferencias", "/api/ajustes", "/api/beneficiamentos",
		"/api/estoque/extrato", "/api/pedidos", "/api/financeiro",
	} {
		assert.Contains(t, paths, p)
	}
}
