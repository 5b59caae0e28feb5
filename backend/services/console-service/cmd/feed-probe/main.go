package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
)

// feed-probe attaches to the console's live assessment stream and prints
// every frame. Handy for watching the forecaster without a dashboard.
func main() {
	url := flag.String("url", "ws://localhost:8090/feed/ws", "feed websocket url")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(ctx, *url, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dial %s: %v\n", *url, err)
		os.Exit(1)
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		var frame struct {
			Reading    float64 `json:"reading"`
			Assessment struct {
				Status        string  `json:"status"`
				Predicted     float64 `json:"predicted"`
				Current       float64 `json:"current"`
				CriticalAlert bool    `json:"critical_alert"`
			} `json:"assessment"`
			Timestamp time.Time `json:"timestamp"`
		}
		if err := conn.ReadJSON(&frame); err != nil {
			if ctx.Err() != nil {
				return
			}
			fmt.Fprintf(os.Stderr, "read: %v\n", err)
			os.Exit(1)
		}

		alert := ""
		if frame.Assessment.CriticalAlert {
			alert = "  !! CRITICAL ALERT"
		}
		fmt.Printf("%s  reading=%.2f  predicted=%.2f  %s%s\n",
			frame.Timestamp.Format(time.RFC3339),
			frame.Reading,
			frame.Assessment.Predicted,
			frame.Assessment.Status,
			alert)
	}
}
