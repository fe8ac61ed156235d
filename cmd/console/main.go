// Command console is the terminal client of the ordering API.
//
//	console kitchen -restaurant <slug> -password <password>
//	console track   -order <id>
//	console order   -restaurant <slug> -table <n> -item "Masala Dosa=2" [-item ...] [-track]
//
// kitchen and track follow orders live, over the event stream by default or
// by polling with -poll. Log lines go to a file so they do not tear the
// screen.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"qrave/internal/client"
	"qrave/internal/core/domain/model/cart"
	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/pkg/logger"
	"qrave/internal/tui"
	"qrave/internal/viewer"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const usage = `usage: console <kitchen|track|order> [flags]

Run "console <command> -h" for the flags of a command.`

// common are the flags every command accepts.
type common struct {
	api      string
	logFile  string
	logLevel string
	poll     bool
	interval time.Duration
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.api, "api", envOr("QRAVE_API", "http://localhost:8080/api/v1"), "API base URL")
	fs.StringVar(&c.logFile, "log-file", "console.log", "file the client logs to")
	fs.StringVar(&c.logLevel, "log-level", "info", "log level")
	fs.BoolVar(&c.poll, "poll", false, "poll the API instead of following the event stream")
	fs.DurationVar(&c.interval, "interval", 0, "poll interval (defaults to 3s for an order, 5s for a list)")
}

func (c *common) setup() (*client.Client, viewer.Watcher, *zap.Logger) {
	log, err := logger.New(c.logLevel, c.logFile)
	if err != nil {
		die("create logger: %v", err)
	}
	api := client.New(c.api, log)
	if c.poll {
		var opts []viewer.PollOption
		if c.interval > 0 {
			opts = append(opts, viewer.WithOrderInterval(c.interval), viewer.WithListInterval(c.interval))
		}
		return api, viewer.NewPollWatcher(api, log, opts...), log
	}
	return api, viewer.NewPushWatcher(api, log), log
}

func main() {
	if len(os.Args) < 2 {
		die(usage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch os.Args[1] {
	case "kitchen":
		kitchen(ctx, os.Args[2:])
	case "track":
		track(ctx, os.Args[2:])
	case "order":
		placeOrder(ctx, os.Args[2:])
	default:
		die(usage)
	}
}

func kitchen(ctx context.Context, args []string) {
	var c common
	fs := flag.NewFlagSet("kitchen", flag.ExitOnError)
	c.register(fs)
	slug := fs.String("restaurant", "", "restaurant slug (required)")
	password := fs.String("password", os.Getenv("QRAVE_PASSWORD"), "restaurant password")
	_ = fs.Parse(args)
	if strings.TrimSpace(*slug) == "" {
		die("-restaurant is required")
	}

	api, watcher, log := c.setup()
	defer log.Sync()

	r, err := api.Login(ctx, *slug, *password)
	if err != nil {
		die("login: %v", err)
	}
	restaurantID, err := kernel.UUIDFrom(r.Id)
	if err != nil {
		die("login: %v", err)
	}
	log.Info("kitchen opened", zap.String("restaurant", r.Slug))

	run(tui.NewKitchen(ctx, restaurantID, watcher, api, tui.WithTitle(r.Name)))
}

func track(ctx context.Context, args []string) {
	var c common
	fs := flag.NewFlagSet("track", flag.ExitOnError)
	c.register(fs)
	id := fs.String("order", "", "order id (required)")
	_ = fs.Parse(args)

	orderID, err := kernel.UUIDFromString(*id)
	if err != nil {
		die("-order: %v", err)
	}
	_, watcher, log := c.setup()
	defer log.Sync()

	trackOrder(ctx, watcher, orderID)
}

func placeOrder(ctx context.Context, args []string) {
	var c common
	fs := flag.NewFlagSet("order", flag.ExitOnError)
	c.register(fs)
	slug := fs.String("restaurant", "", "restaurant slug (required)")
	table := fs.Int("table", 0, "table number (required)")
	note := fs.String("note", "", "note for the kitchen")
	follow := fs.Bool("track", false, "track the order after placing it")
	var items itemFlags
	fs.Var(&items, "item", `menu item and quantity, e.g. "Masala Dosa=2" (repeatable)`)
	_ = fs.Parse(args)
	if strings.TrimSpace(*slug) == "" || *table <= 0 || len(items) == 0 {
		die("-restaurant, -table and at least one -item are required")
	}

	api, watcher, log := c.setup()
	defer log.Sync()

	r, err := api.GetRestaurant(ctx, *slug)
	if err != nil {
		die("load menu: %v", err)
	}
	restaurantID, err := kernel.UUIDFrom(r.Id)
	if err != nil {
		die("load menu: %v", err)
	}

	basket := cart.New()
	for _, it := range items {
		m, err := client.FindMenuItem(r.Menu, it.name)
		if err != nil {
			die("%s: %v", it.name, err)
		}
		if err := client.AddToCart(basket, m, it.quantity); err != nil {
			die("%s: %v", it.name, err)
		}
	}
	body, err := client.NewOrder(restaurantID, *table, basket, *note)
	if err != nil {
		die("build order: %v", err)
	}

	placed, err := api.CreateOrder(ctx, body)
	if err != nil {
		die("place order: %v", err)
	}
	log.Info("order placed", zap.Stringer("orderId", placed.ID))
	fmt.Printf("Order %s placed at %s, table %d, total %s\n", placed.ID, r.Name, placed.TableNumber, placed.Total)

	if *follow {
		trackOrder(ctx, watcher, placed.ID)
	}
}

func trackOrder(ctx context.Context, watcher viewer.Watcher, orderID kernel.UUID) {
	run(tui.NewOrderTracker(ctx, watcher, orderID))
}

func run(model tea.Model) {
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		die("run: %v", err)
	}
}

type itemFlag struct {
	name     string
	quantity int
}

// itemFlags collects repeated -item name=quantity flags. The quantity
// defaults to 1.
type itemFlags []itemFlag

func (f *itemFlags) String() string {
	parts := make([]string, len(*f))
	for i, it := range *f {
		parts[i] = fmt.Sprintf("%s=%d", it.name, it.quantity)
	}
	return strings.Join(parts, ",")
}

func (f *itemFlags) Set(value string) error {
	name, qty, found := strings.Cut(value, "=")
	it := itemFlag{name: strings.TrimSpace(name), quantity: 1}
	if it.name == "" {
		return fmt.Errorf("item name is empty")
	}
	if found {
		n, err := strconv.Atoi(strings.TrimSpace(qty))
		if err != nil || n <= 0 {
			return fmt.Errorf("quantity of %q must be a positive number", it.name)
		}
		it.quantity = n
	}
	*f = append(*f, it)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
