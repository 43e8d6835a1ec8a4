package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewClientConfigDefaults(t *testing.T) {
	c := NewClientConfig("http://localhost:8545")
	require.Equal(t, "http://localhost:8545", c.Endpoint)
	require.Equal(t, DefaultBlockTag, c.DefaultBlock)
	require.Equal(t, DefaultHost, c.ListenHost)
	require.Equal(t, DefaultHTTPPort, c.HTTPPort)
	require.Equal(t, DefaultWSPort, c.WSPort)
	require.Equal(t, DefaultAPIs, c.APIs)
	require.NoError(t, c.Validate())
}

func TestClientConfigFromJSON(t *testing.T) {
	c, err := ClientConfigFromJSON(`{
		"Endpoint": "ws://node.example.com:8546",
		"DefaultBlock": "pending",
		"HTTPPort": 9545
	}`)
	require.NoError(t, err)
	require.Equal(t, "ws://node.example.com:8546", c.Endpoint)
	require.Equal(t, "pending", c.DefaultBlock)
	require.Equal(t, 9545, c.HTTPPort)
	// Untouched fields keep their defaults.
	require.Equal(t, DefaultWSPort, c.WSPort)
	require.Equal(t, DefaultAPIs, c.APIs)
}

func TestClientConfigFromJSONInvalid(t *testing.T) {
	_, err := ClientConfigFromJSON(`{"Endpoint":`)
	require.Error(t, err)

	_, err = ClientConfigFromJSON(`{"HTTPPort": -1}`)
	require.Error(t, err)
}

func TestValidateRejectsScheme(t *testing.T) {
	c := NewClientConfig("ftp://localhost:21")
	require.Error(t, c.Validate())
}

func TestLoadClientConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Endpoint": "https://mainnet.example.com"}`), 0o600))

	c, err := LoadClientConfigFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "https://mainnet.example.com", c.Endpoint)

	_, err = LoadClientConfigFromFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestWebSocketEnabled(t *testing.T) {
	require.False(t, NewClientConfig("http://localhost:8545").WebSocketEnabled())
	require.False(t, NewClientConfig("https://localhost:8545").WebSocketEnabled())
	require.True(t, NewClientConfig("ws://localhost:8546").WebSocketEnabled())
	require.True(t, NewClientConfig("wss://localhost:8546").WebSocketEnabled())
}

func TestString(t *testing.T) {
	c := NewClientConfig(DefaultHTTPEndpoint())
	require.Contains(t, c.String(), `"Endpoint": "http://localhost:8545"`)
}
