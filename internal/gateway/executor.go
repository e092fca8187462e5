package gateway

import "craftmind.ai/internal/protocol"

// The client is the ActionManager's executor: each call only sends the
// request; the read pump delivers the outcome later.

func (c *Client) Dispatch(cmd protocol.CommandReq) error {
	return c.writeCommand(protocol.CommandMsg{Dispatch: []protocol.CommandReq{cmd}})
}

// Retarget re-aims an in-flight command. Returns false when the server
// did not advertise retarget support, telling the caller to
// cancel-then-restart instead.
func (c *Client) Retarget(cmd protocol.CommandReq) (bool, error) {
	if !c.caps.Retarget {
		return false, nil
	}
	if err := c.writeCommand(protocol.CommandMsg{Retarget: []protocol.CommandReq{cmd}}); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Client) Cancel(commandID string) error {
	return c.writeCommand(protocol.CommandMsg{Cancel: []string{commandID}})
}
