package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golangid/orderpush/candihelper"
	"github.com/golangid/orderpush/logger"
	"github.com/golangid/orderpush/pkg/sdk/orderwatch"
)

func main() {
	var (
		wsURL    = flag.String("ws", "ws://localhost:3000/ws", "websocket endpoint of realtime core")
		apiURL   = flag.String("api", "http://localhost:3000", "base url of order service")
		shopID   = flag.String("shop", "", "shop id")
		orderNo  = flag.String("order", "", "order number to watch")
		interval = flag.Duration("interval", 30*time.Second, "reconciliation pull interval")
	)
	flag.Parse()

	if *shopID == "" || *orderNo == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	w := &orderwatch.Watcher{
		WSURL:    *wsURL,
		OrderNo:  *orderNo,
		Fetcher:  orderwatch.NewHTTPFetcher(*apiURL, *shopID),
		Interval: *interval,
		Applier: &orderwatch.Applier{
			OnChange: func(prev, next string) {
				fmt.Printf("%s order %s: %s\n", time.Now().Format(candihelper.TimeFormatLogger), *orderNo, next)
			},
			OnReady: func() {
				fmt.Println(candihelper.StringGreen(fmt.Sprintf("order %s is ready \a", *orderNo)))
			},
		},
	}

	if err := w.Watch(ctx); err != nil {
		logger.LogE(err.Error())
		os.Exit(1)
	}
}
