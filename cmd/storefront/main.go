// The storefront order console: lists the customer's orders, shows one
// order's detail and drives cancellation against the remote order service.
//
//	storefront                     list my orders
//	storefront -order <id>         show one order
//	storefront -order <id> -cancel cancel it (prompts unless -yes)
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/shopdeploy/storefront-orders/internal/coordinator"
	"github.com/shopdeploy/storefront-orders/internal/coordinator/cancellog"
	cancelsqlite "github.com/shopdeploy/storefront-orders/internal/coordinator/cancellog/sqlite"
	"github.com/shopdeploy/storefront-orders/internal/pkg/notify"
	"github.com/shopdeploy/storefront-orders/internal/pkg/telemetry"
	"github.com/shopdeploy/storefront-orders/internal/storefront/core/ports"
	"github.com/shopdeploy/storefront-orders/internal/storefront/core/store"
	"github.com/shopdeploy/storefront-orders/internal/storefront/infra/adapters/service"
	"github.com/shopdeploy/storefront-orders/internal/storefront/infra/views"
)

func main() {
	telemetry.InitLogger()

	orderID := flag.String("order", "", "show this order instead of the list")
	cancel := flag.Bool("cancel", false, "cancel the order given with -order")
	yes := flag.Bool("yes", false, "skip the cancellation confirmation prompt")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.SetupTracer(ctx, getEnv("OTEL_SERVICE_NAME", "storefront"))
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancelFn := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelFn()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	client := service.NewHTTPOrderService(
		getEnv("ORDER_API_URL", "http://localhost:8080"),
		os.Getenv("SESSION_TOKEN"),
	)
	st := store.New(client)

	var logs cancellog.Repository
	if path := os.Getenv("CANCEL_LOG_DB"); path != "" {
		repo, err := cancelsqlite.Open(path)
		if err != nil {
			slog.Error("failed to open cancel log", "path", path, "error", err)
			os.Exit(1)
		}
		defer repo.Close()
		logs = repo
	}

	coord := coordinator.New(st, client, logs)
	confirm := terminalConfirm(*yes)

	// When output is piped, notifications go to the structured log stream
	// instead of interleaving with the rendered view.
	var notifier ports.Notifier = notify.NewWriter(os.Stdout)
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		notifier = notify.NewSlog()
	}

	if *orderID == "" {
		list := views.NewListView(st, coord, notifier, confirm, os.Stdout)
		list.Mount(ctx)
		list.Render()
		return
	}

	detail := views.NewDetailView(st, coord, notifier, confirm, os.Stdout)
	detail.Show(ctx, *orderID)
	if *cancel {
		detail.Cancel(ctx)
	}
	detail.Render()
}

// terminalConfirm is the blocking yes/no confirmation collaborator. With
// -yes it approves everything, for scripted use.
func terminalConfirm(assumeYes bool) ports.ConfirmFunc {
	return func(prompt string) bool {
		if assumeYes {
			return true
		}
		fmt.Printf("%s [y/N] ", prompt)
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
