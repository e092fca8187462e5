// Package gateway is the websocket client for the external game-automation
// collaborator. It produces snapshots, carries commands out, and routes
// asynchronous results back; it owns nothing of the arbitration itself.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"craftmind.ai/internal/perception"
	"craftmind.ai/internal/protocol"
)

const (
	writeTimeout = 5 * time.Second
	readTimeout  = 60 * time.Second
)

type Client struct {
	log  *log.Logger
	conn *websocket.Conn

	agentID string
	caps    protocol.ServerCapabilities

	writeMu sync.Mutex

	mu     sync.Mutex
	latest *perception.Snapshot

	updates chan struct{}
	fatal   chan error

	onResult func(protocol.ResultMsg)

	closeOnce sync.Once
}

// Dial connects, performs the HELLO/WELCOME handshake, and returns a
// client ready for Run.
func Dial(ctx context.Context, url, agentName, token string, logger *log.Logger) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}

	hello := protocol.HelloMsg{
		Type:            protocol.TypeHello,
		ProtocolVersion: protocol.Version,
		AgentName:       agentName,
		Capabilities: protocol.HelloCapabilities{
			Retarget:    true,
			CancelAck:   true,
			MaxInFlight: 1,
		},
	}
	if token != "" {
		hello.Auth = &protocol.HelloAuth{Token: token}
	}
	if err := conn.WriteJSON(hello); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("send HELLO: %w", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	var welcome protocol.WelcomeMsg
	if err := conn.ReadJSON(&welcome); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("await WELCOME: %w", err)
	}
	if welcome.Type != protocol.TypeWelcome || welcome.AgentID == "" {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: unexpected handshake reply %q", protocol.ErrProtoBadRequest, welcome.Type)
	}
	logger.Printf("WELCOME agent_id=%s tick_rate=%d", welcome.AgentID, welcome.ServerParams.TickRateHz)

	return &Client{
		log:     logger,
		conn:    conn,
		agentID: welcome.AgentID,
		caps:    welcome.Capabilities,
		updates: make(chan struct{}, 1),
		fatal:   make(chan error, 1),
	}, nil
}

func (c *Client) AgentID() string { return c.agentID }

// OnResult registers the result callback. Must be set before Run.
func (c *Client) OnResult(fn func(protocol.ResultMsg)) { c.onResult = fn }

// Updates signals (coalesced) that a newer snapshot is available.
func (c *Client) Updates() <-chan struct{} { return c.updates }

// Fatal delivers the connection-level error that should stop the loop.
// Only the collaborator signals fatality; the core never infers it.
func (c *Client) Fatal() <-chan error { return c.fatal }

// Latest returns the most recent snapshot, if any has arrived.
func (c *Client) Latest() (perception.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.latest == nil {
		return perception.Snapshot{}, false
	}
	return *c.latest, true
}

func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.conn.Close()
	})
	return err
}

// Run is the read pump. It blocks until the connection dies and reports
// the terminal error on Fatal.
func (c *Client) Run() {
	for {
		_ = c.conn.SetReadDeadline(time.Now().Add(readTimeout))
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			c.reportFatal(fmt.Errorf("connection lost: %w", err))
			return
		}
		base, err := protocol.DecodeBase(msg)
		if err != nil {
			continue
		}
		switch base.Type {
		case protocol.TypeSnapshot:
			var sm protocol.SnapshotMsg
			if err := json.Unmarshal(msg, &sm); err != nil {
				c.log.Printf("%s: %v", protocol.ErrBadSnapshot, err)
				continue
			}
			s := perception.FromWire(&sm)
			c.mu.Lock()
			c.latest = &s
			c.mu.Unlock()
			select {
			case c.updates <- struct{}{}:
			default:
			}

		case protocol.TypeResult:
			var rm protocol.ResultMsg
			if err := json.Unmarshal(msg, &rm); err != nil {
				continue
			}
			if c.onResult != nil {
				c.onResult(rm)
			}

		case protocol.TypeGoodbye:
			var gm protocol.GoodbyeMsg
			_ = json.Unmarshal(msg, &gm)
			c.reportFatal(fmt.Errorf("server goodbye: %s %s", gm.Code, gm.Message))
			return
		}
	}
}

func (c *Client) reportFatal(err error) {
	select {
	case c.fatal <- err:
	default:
	}
}

func (c *Client) writeCommand(m protocol.CommandMsg) error {
	m.Type = protocol.TypeCommand
	m.ProtocolVersion = protocol.Version
	m.AgentID = c.agentID
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(m)
}
