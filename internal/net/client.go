package net

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// ShareScheme prefixes the links hosts hand out.
const ShareScheme = "accidentsketch://"

// ErrBadLink is returned for links that are not host:port share links.
var ErrBadLink = errors.New("net: invalid share link")

// ShareLink builds the link a peer uses to join host.
func ShareLink(host string, port int) string {
	return ShareScheme + net.JoinHostPort(host, strconv.Itoa(port))
}

// ParseLink returns the host:port inside a share link.
func ParseLink(link string) (string, error) {
	if !strings.HasPrefix(link, ShareScheme) {
		return "", fmt.Errorf("%w: %q", ErrBadLink, link)
	}
	addr := strings.TrimSuffix(strings.TrimPrefix(link, ShareScheme), "/")
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadLink, err)
	}
	return addr, nil
}

// Join connects to the host behind link and calls onSketch for every sketch
// it hands over, until ctx is cancelled or the host goes away.
func Join(ctx context.Context, link string, onSketch func(Message), log zerolog.Logger) error {
	addr, err := ParseLink(link)
	if err != nil {
		return err
	}
	u := url.URL{Scheme: "ws", Host: addr, Path: SketchPath}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return fmt.Errorf("connect to host %s: %w", addr, err)
	}
	defer conn.Close()
	log.Info().Str("host", addr).Str("local", conn.LocalAddr().String()).Msg("connected to host")

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("disconnected from host: %w", err)
		}
		if msg.Type != MessageSketch {
			log.Debug().Str("type", msg.Type).Msg("ignoring message")
			continue
		}
		onSketch(msg)
	}
}
