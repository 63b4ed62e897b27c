package sway

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net"

	"github.com/hashicorp/go-hclog"
)

// i3-ipc framing: the 6-byte magic, then payload length and message type
// as little-endian uint32s, then the payload.
const ipcMagic = "i3-ipc"

const ipcHeaderLen = len(ipcMagic) + 8

// Message types from the i3-ipc protocol. Only the ones the session tool
// uses are listed.
const (
	msgRunCommand    uint32 = 0
	msgGetWorkspaces uint32 = 1
	msgGetOutputs    uint32 = 3
	msgGetTree       uint32 = 4
)

func topicMessageType(topic Topic) (uint32, error) {
	switch topic {
	case TopicWorkspaces:
		return msgGetWorkspaces, nil
	case TopicOutputs:
		return msgGetOutputs, nil
	case TopicTree:
		return msgGetTree, nil
	}
	return 0, fmt.Errorf("unknown query topic %q", topic)
}

// ipcClient speaks the i3-ipc protocol over the compositor's unix
// socket.
type ipcClient struct {
	conn net.Conn
	log  hclog.Logger
}

func dialSocket(path string, log hclog.Logger) (*ipcClient, error) {
	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, fmt.Errorf("dial compositor socket %s: %w", path, err)
	}
	log.Debug("connected to compositor socket", "path", path)
	return &ipcClient{conn: conn, log: log}, nil
}

func (c *ipcClient) Query(topic Topic) (json.RawMessage, error) {
	msgType, err := topicMessageType(topic)
	if err != nil {
		return nil, err
	}
	c.log.Debug("ipc query", "topic", string(topic))
	return c.roundTrip(msgType, nil)
}

func (c *ipcClient) Command(cmd string) error {
	c.log.Debug("ipc command", "cmd", cmd)
	reply, err := c.roundTrip(msgRunCommand, []byte(cmd))
	if err != nil {
		return err
	}
	return checkCommandReply(cmd, reply)
}

func (c *ipcClient) Close() error {
	return c.conn.Close()
}

func (c *ipcClient) roundTrip(msgType uint32, payload []byte) (json.RawMessage, error) {
	if err := writeMessage(c.conn, msgType, payload); err != nil {
		return nil, err
	}
	replyType, reply, err := readMessage(c.conn)
	if err != nil {
		return nil, err
	}
	if replyType != msgType {
		return nil, fmt.Errorf("ipc reply type %d does not match request type %d", replyType, msgType)
	}
	return reply, nil
}

func writeMessage(w io.Writer, msgType uint32, payload []byte) error {
	buf := make([]byte, 0, ipcHeaderLen+len(payload))
	buf = append(buf, ipcMagic...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(payload)))
	buf = binary.LittleEndian.AppendUint32(buf, msgType)
	buf = append(buf, payload...)
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("ipc write: %w", err)
	}
	return nil
}

func readMessage(r io.Reader) (uint32, []byte, error) {
	header := make([]byte, ipcHeaderLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return 0, nil, fmt.Errorf("ipc read header: %w", err)
	}
	if string(header[:len(ipcMagic)]) != ipcMagic {
		return 0, nil, fmt.Errorf("ipc reply does not start with %q", ipcMagic)
	}
	length := binary.LittleEndian.Uint32(header[6:10])
	msgType := binary.LittleEndian.Uint32(header[10:14])
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, fmt.Errorf("ipc read payload: %w", err)
	}
	return msgType, payload, nil
}

// checkCommandReply inspects RUN_COMMAND's reply, a JSON array with one
// entry per submitted command, and surfaces the first failure.
func checkCommandReply(cmd string, reply json.RawMessage) error {
	var results []struct {
		Success bool    `json:"success"`
		Error   *string `json:"error"`
	}
	if err := json.Unmarshal(reply, &results); err != nil {
		return fmt.Errorf("ipc command reply: %w", err)
	}
	for _, res := range results {
		if res.Success {
			continue
		}
		if res.Error != nil && *res.Error != "" {
			return fmt.Errorf("command %q failed: %s", cmd, *res.Error)
		}
		return fmt.Errorf("command %q failed", cmd)
	}
	return nil
}
