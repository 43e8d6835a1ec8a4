package params

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	validator "gopkg.in/go-playground/validator.v9"
)

// Default values recognized by the client and by the admin_* wrappers that
// ask the remote node to open a server-side listener.
const (
	// DefaultBlockTag is substituted for an omitted block parameter.
	DefaultBlockTag = "latest"

	// DefaultHost is the network interface used for node-side listeners.
	DefaultHost = "localhost"

	// DefaultHTTPPort is the conventional HTTP JSON-RPC port.
	DefaultHTTPPort = 8545

	// DefaultWSPort is the conventional WebSocket JSON-RPC port.
	DefaultWSPort = 8546

	// DefaultCORS is the cross-origin header passed to admin_startRPC/WS.
	DefaultCORS = ""

	// DefaultAPIs is the module list passed to admin_startRPC/WS.
	DefaultAPIs = "eth,net,web3"
)

// DefaultHTTPEndpoint is where a locally run node is expected to listen.
func DefaultHTTPEndpoint() string {
	return fmt.Sprintf("http://%s:%d", DefaultHost, DefaultHTTPPort)
}

// DefaultWSEndpoint is the WebSocket equivalent of DefaultHTTPEndpoint.
func DefaultWSEndpoint() string {
	return fmt.Sprintf("ws://%s:%d", DefaultHost, DefaultWSPort)
}

// ----------
// ClientConfig
// ----------

// ClientConfig holds the configuration for a single RPC client instance.
// The zero value is not usable; construct via NewClientConfig or
// ClientConfigFromJSON so defaults are populated.
type ClientConfig struct {
	// Endpoint is the URL the client sends requests to. The scheme selects
	// the transport: http/https for POST delivery, ws/wss for a persistent
	// WebSocket connection.
	Endpoint string `json:"Endpoint" validate:"required,uri"`

	// DefaultBlock is the block tag substituted when a method's block
	// parameter is omitted. Valid tags are "earliest", "latest", "pending".
	DefaultBlock string `json:"DefaultBlock" validate:"required"`

	// CORS is the cross-origin resource sharing header handed to the
	// admin_startRPC/admin_startWS calls. It does not affect the client's
	// own transport.
	CORS string `json:"CORS"`

	// ListenHost is the interface requested when the client asks the node
	// to open an HTTP or WebSocket listener.
	ListenHost string `json:"ListenHost" validate:"required"`

	// HTTPPort is the port requested for admin_startRPC.
	HTTPPort int `json:"HTTPPort" validate:"gt=0,lte=65535"`

	// WSPort is the port requested for admin_startWS.
	WSPort int `json:"WSPort" validate:"gt=0,lte=65535"`

	// APIs is the comma-separated module list requested for node-side
	// listeners started via admin_startRPC/admin_startWS.
	APIs string `json:"APIs" validate:"required"`
}

// NewClientConfig returns a ClientConfig for the given endpoint with all
// remaining fields set to their defaults.
func NewClientConfig(endpoint string) *ClientConfig {
	return &ClientConfig{
		Endpoint:     endpoint,
		DefaultBlock: DefaultBlockTag,
		CORS:         DefaultCORS,
		ListenHost:   DefaultHost,
		HTTPPort:     DefaultHTTPPort,
		WSPort:       DefaultWSPort,
		APIs:         DefaultAPIs,
	}
}

// ClientConfigFromJSON parses a configuration document, overlaying it on the
// defaults, and validates the result.
func ClientConfigFromJSON(configJSON string) (*ClientConfig, error) {
	config := NewClientConfig(DefaultHTTPEndpoint())
	if err := json.Unmarshal([]byte(configJSON), config); err != nil {
		return nil, fmt.Errorf("parse client config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadClientConfigFromFile reads and parses a configuration file.
func LoadClientConfigFromFile(path string) (*ClientConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ClientConfigFromJSON(string(data))
}

// Validate checks field constraints and endpoint scheme.
func (c *ClientConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", c.Endpoint, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("unsupported endpoint scheme %q", u.Scheme)
	}
	return nil
}

// WebSocketEnabled reports whether the endpoint selects the WebSocket
// transport.
func (c *ClientConfig) WebSocketEnabled() bool {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "ws" || scheme == "wss"
}

// String dumps config object as nicely indented JSON
func (c *ClientConfig) String() string {
	data, _ := json.MarshalIndent(c, "", "    ")
	return string(data)
}
