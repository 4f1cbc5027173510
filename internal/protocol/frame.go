package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// IdleFrame is the keepalive a peer sends on a turn with no command. It lets
// the other side's scheduler resolve the turn and advance.
const IdleFrame = "D"

// Frame is one decoded wire message from a peer.
type Frame struct {
	Idle bool
	Turn int
	Text string
}

// EncodeFrame renders the "turn#command" wire form.
func EncodeFrame(turn int, text string) string {
	return fmt.Sprintf("%d#%s", turn, text)
}

// DecodeFrame parses a wire message. Frames are either the idle keepalive or
// "turn#command"; the command body is not interpreted here.
func DecodeFrame(line string) (Frame, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == IdleFrame {
		return Frame{Idle: true}, nil
	}
	ts, body, ok := strings.Cut(line, "#")
	if !ok {
		return Frame{}, fmt.Errorf("protocol: malformed frame %q", line)
	}
	turn, err := strconv.Atoi(ts)
	if err != nil || turn < 0 {
		return Frame{}, fmt.Errorf("protocol: bad turn in frame %q", line)
	}
	if body == "" {
		return Frame{}, fmt.Errorf("protocol: empty command in frame %q", line)
	}
	return Frame{Turn: turn, Text: body}, nil
}
