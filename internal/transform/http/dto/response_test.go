package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/hashcipher/internal/transform/domain"
)

func TestMapOverviewResponse(t *testing.T) {
	fields := domain.Overview(&domain.Request{
		Input:           "hello",
		CipherAlgorithm: "aes-256-gcm",
		CipherKey:       "secret",
	})

	response := MapOverviewResponse(fields)

	require.Len(t, response.Fields, 3)
	assert.Equal(t, "Cipher Key", response.Fields[2].Label)
	assert.Equal(t, "***", response.Fields[2].Text)
}

func TestMapOverviewResponse_EmptySerializesAsArray(t *testing.T) {
	body, err := json.Marshal(MapOverviewResponse(nil))

	require.NoError(t, err)
	assert.JSONEq(t, `{"fields":[]}`, string(body))
}

func TestMapAlgorithmsResponse(t *testing.T) {
	response := MapAlgorithmsResponse(domain.DefaultCatalog(), []string{"sha1"}, []string{"aes-256-gcm"})

	body, err := json.Marshal(response)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Contains(t, decoded, "hash")
	assert.Contains(t, decoded, "cipher")
	assert.Contains(t, decoded, "output_format")
	assert.Equal(t, []interface{}{"sha1"}, decoded["supported_hash"])
	assert.Equal(t, []interface{}{"aes-256-gcm"}, decoded["supported_cipher"])
}
