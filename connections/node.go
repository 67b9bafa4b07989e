package connections

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/btsscan/platform/config"
	"github.com/btsscan/platform/logger"
)

const (
	databaseAPI     = 0
	writeWait       = 10 * time.Second
	dialTimeout     = 10 * time.Second
	maxDialAttempts = 5
	initialBackoff  = time.Second
	maxBackoff      = 30 * time.Second
)

// NodeClient is a JSON-RPC client for a Bitshares full node websocket
// endpoint. Calls are correlated by request id, so concurrent callers can
// share one connection.
type NodeClient struct {
	url         string
	fallbackURL string

	mu      sync.Mutex
	conn    *websocket.Conn
	nextID  uint64
	pending map[uint64]chan rpcResponse
}

type rpcRequest struct {
	ID     uint64        `json:"id"`
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

type rpcResponse struct {
	ID     uint64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("node rpc error %d: %s", e.Code, e.Message)
}

var Node *NodeClient

// NewNodeClient builds the process-wide node client from the environment.
func NewNodeClient() {
	Node = &NodeClient{
		url:         config.EnvNodeWebsocketURL(),
		fallbackURL: config.EnvNodeWebsocketFallbackURL(),
		pending:     make(map[uint64]chan rpcResponse),
	}
}

// EnsureConnection dials the node if no healthy connection exists. Dial
// attempts alternate between the primary and fallback endpoints with
// exponential backoff.
func (c *NodeClient) EnsureConnection(ctx context.Context) error {
	c.mu.Lock()
	if c.conn != nil {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()
	return c.reconnect(ctx)
}

func (c *NodeClient) reconnect(ctx context.Context) error {
	backoff := initialBackoff
	urls := []string{c.url}
	if c.fallbackURL != "" {
		urls = append(urls, c.fallbackURL)
	}

	for attempt := 1; attempt <= maxDialAttempts; attempt++ {
		url := urls[(attempt-1)%len(urls)]
		logger.Log.Info().Str("url", url).Int("attempt", attempt).Msg("Connecting to Bitshares node")

		dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
		conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, url, nil)
		cancel()
		if err == nil {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
			go c.readLoop(conn)
			logger.Log.Info().Str("url", url).Int("attempt", attempt).Msg("Connected to Bitshares node")
			return nil
		}

		logger.Log.Warn().Str("url", url).Int("attempt", attempt).Dur("retry_in", backoff).Err(err).Msg("Node connect failed; retrying")
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
		if backoff < maxBackoff {
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}
	}
	return fmt.Errorf("node unreachable after %d attempts", maxDialAttempts)
}

// readLoop dispatches responses to their waiting callers. It exits when the
// connection drops, failing every pending call.
func (c *NodeClient) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.dropConn(conn, err)
			return
		}
		var res rpcResponse
		if err := json.Unmarshal(data, &res); err != nil {
			logger.Log.Debug().Err(err).Msg("Discarding unparseable node message")
			continue
		}
		c.mu.Lock()
		ch, ok := c.pending[res.ID]
		if ok {
			delete(c.pending, res.ID)
		}
		c.mu.Unlock()
		if ok {
			ch <- res
		}
	}
}

func (c *NodeClient) dropConn(conn *websocket.Conn, cause error) {
	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	pending := c.pending
	c.pending = make(map[uint64]chan rpcResponse)
	c.mu.Unlock()

	conn.Close()
	for _, ch := range pending {
		ch <- rpcResponse{Error: &rpcError{Message: fmt.Sprintf("connection lost: %v", cause)}}
	}
	logger.Log.Warn().Err(cause).Msg("Node connection dropped")
}

// call issues one database API call and waits for its correlated response.
func (c *NodeClient) call(ctx context.Context, method string, args ...interface{}) (json.RawMessage, error) {
	c.mu.Lock()
	conn := c.conn
	if conn == nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("node not connected")
	}
	c.nextID++
	id := c.nextID
	ch := make(chan rpcResponse, 1)
	c.pending[id] = ch

	req := rpcRequest{ID: id, Method: "call", Params: []interface{}{databaseAPI, method, args}}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	err := conn.WriteJSON(req)
	c.mu.Unlock()
	if err != nil {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
		c.dropConn(conn, err)
		return nil, err
	}

	select {
	case res := <-ch:
		if res.Error != nil {
			return nil, res.Error
		}
		return res.Result, nil
	case <-ctx.Done():
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
		return nil, ctx.Err()
	}
}

// GetObjects fetches raw objects by id. Unknown ids come back as JSON null
// entries, mirroring the node's behavior.
func (c *NodeClient) GetObjects(ctx context.Context, ids []string) ([]json.RawMessage, error) {
	result, err := c.call(ctx, "get_objects", ids)
	if err != nil {
		return nil, err
	}
	var objects []json.RawMessage
	if err := json.Unmarshal(result, &objects); err != nil {
		return nil, fmt.Errorf("get_objects: %w", err)
	}
	return objects, nil
}

// LookupAssetSymbols fetches assets by symbol or id.
func (c *NodeClient) LookupAssetSymbols(ctx context.Context, ids []string) ([]json.RawMessage, error) {
	result, err := c.call(ctx, "lookup_asset_symbols", ids)
	if err != nil {
		return nil, err
	}
	var assets []json.RawMessage
	if err := json.Unmarshal(result, &assets); err != nil {
		return nil, fmt.Errorf("lookup_asset_symbols: %w", err)
	}
	return assets, nil
}

// GetAccountByName resolves a single account by name.
func (c *NodeClient) GetAccountByName(ctx context.Context, name string) (json.RawMessage, error) {
	return c.call(ctx, "get_account_by_name", name)
}

// Ping checks connection liveness with a cheap database call.
func (c *NodeClient) Ping(ctx context.Context) error {
	_, err := c.call(ctx, "get_chain_id")
	return err
}

// Close shuts the websocket down and fails pending calls.
func (c *NodeClient) Close() error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return nil
	}
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	c.dropConn(conn, fmt.Errorf("client closed"))
	return nil
}
