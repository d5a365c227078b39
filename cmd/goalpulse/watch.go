package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
	"github.com/saulo-duarte/goal-pulse/internal/config"
	"github.com/saulo-duarte/goal-pulse/internal/realtime"
	"github.com/spf13/cobra"
)

func watchCmd() *cobra.Command {
	var (
		server string
		origin string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print live events from a running server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			u, err := url.Parse(server)
			if err != nil {
				return fmt.Errorf("parse server url: %w", err)
			}
			switch u.Scheme {
			case "http":
				u.Scheme = "ws"
			case "https":
				u.Scheme = "wss"
			}
			u.Path = "/ws"

			header := http.Header{}
			if origin != "" {
				header.Set("Origin", origin)
			}

			conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), header)
			if err != nil {
				return fmt.Errorf("dial %s: %w", u, err)
			}
			defer conn.Close()

			done := make(chan struct{})
			defer close(done)
			go func() {
				select {
				case <-done:
				case <-ctx.Done():
					_ = conn.WriteMessage(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
					conn.Close()
				}
			}()

			config.Logger.WithField("url", u.String()).Info("Watching events")
			out := cmd.OutOrStdout()
			for {
				_, msg, err := conn.ReadMessage()
				if err != nil {
					if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
						return nil
					}
					return fmt.Errorf("read event: %w", err)
				}

				var event struct {
					Type realtime.EventType `json:"type"`
					Data json.RawMessage    `json:"data"`
				}
				if err := json.Unmarshal(msg, &event); err != nil {
					config.Logger.WithError(err).Warn("Skipping malformed event")
					continue
				}
				fmt.Fprintf(out, "%s %s\n", event.Type, event.Data)
			}
		},
	}

	cmd.Flags().StringVar(&server, "server", "http://localhost:8000", "server base URL")
	cmd.Flags().StringVar(&origin, "origin", "", "Origin header to send")
	return cmd
}
