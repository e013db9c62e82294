package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearerToken(t *testing.T) {
	storageEngine := &StorageEngine{civitaiAPIKey: "civitai-key"}

	// The API key goes to the gated registry and its subdomains only
	assert.Equal(t, "civitai-key",
		storageEngine.bearerToken("https://civitai.com/api/download/models/351306?type=Model&format=SafeTensor"))
	assert.Equal(t, "civitai-key",
		storageEngine.bearerToken("https://api.civitai.com/download/models/351306"))
	assert.Empty(t,
		storageEngine.bearerToken("https://huggingface.co/Comfy-Org/Wan_2.2_ComfyUI_Repackaged/resolve/main/split_files/vae/wan_2.1_vae.safetensors"))
	assert.Empty(t,
		storageEngine.bearerToken("https://notcivitai.com/api/download/models/351306"))
	assert.Empty(t, storageEngine.bearerToken("://not a url"))
}

func TestBearerTokenWithoutKey(t *testing.T) {
	storageEngine := &StorageEngine{}
	assert.Empty(t, storageEngine.bearerToken("https://civitai.com/api/download/models/351306"))
}
