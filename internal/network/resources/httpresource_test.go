package resources_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/ruminansiart-arch/Installer/internal/network/resources"
	"github.com/stretchr/testify/assert"
)

func TestHTTPDownload(t *testing.T) {
	var receivedAuthorization string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedAuthorization = request.Header.Get("Authorization")
		writer.Write([]byte("model content"))
	}))
	defer server.Close()

	handler := &resources.HTTPResource{
		URL:         server.URL,
		BearerToken: "civitai-key",
	}
	resource := resources.NewResource(handler, t.TempDir(), "model.safetensors")

	resource.Download()

	assert.Equal(t, resources.DOWNLOADED, resource.Status)
	assert.Equal(t, "Bearer civitai-key", receivedAuthorization)
	savedContent, err := os.ReadFile(resource.DestinationPath())
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "model content", string(savedContent))
}

func TestHTTPDownloadErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	handler := &resources.HTTPResource{URL: server.URL}
	resource := resources.NewResource(handler, t.TempDir(), "model.safetensors")

	resource.Download()

	assert.Equal(t, resources.ERROR, resource.Status)
	assert.Error(t, resource.Err)
}
