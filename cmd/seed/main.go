// Command seed loads restaurants and their menus into the database. Without
// -file it loads the bundled demo restaurant. Re-running it skips
// restaurants whose slug already exists.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"qrave/cmd"
	"qrave/internal/adapters/out/postgres"
	"qrave/internal/core/application/usecases/commands"
	"qrave/internal/pkg/logger"
	"qrave/internal/seed"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	file := flag.String("file", "", "path to a YAML seed file (defaults to the demo restaurant)")
	timeout := flag.Duration("timeout", time.Minute, "overall time limit")
	flag.Parse()

	cfg, err := cmd.LoadConfig()
	if err != nil {
		die("load config: %v", err)
	}
	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		die("create logger: %v", err)
	}
	defer zapLogger.Sync()

	data, err := loadSeed(*file)
	if err != nil {
		die("read seed: %v", err)
	}

	db, err := postgres.Open(cfg.DB().DSN())
	if err != nil {
		die("%v", err)
	}
	if err := postgres.Migrate(db); err != nil {
		die("migrate: %v", err)
	}

	uowFactory := postgres.NewGormUnitOfWorkFactory(db)
	restaurants := commands.NewCreateRestaurantCommandHandler(
		cmd.FuncRestaurantUoWFactory(func() commands.RestaurantUoW { return uowFactory.Create() }),
		bcrypt.DefaultCost,
	)
	menuItems := commands.NewCreateMenuItemCommandHandler(
		cmd.FuncMenuUoWFactory(func() commands.MenuUoW { return uowFactory.Create() }),
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := seed.NewImporter(&restaurants, &menuItems, zapLogger).Import(ctx, data)
	if err != nil {
		zapLogger.Error("seed failed", zap.Error(err))
		die("import: %v", err)
	}
	fmt.Printf("Created %d restaurants with %d menu items", res.Restaurants, res.MenuItems)
	if len(res.Skipped) > 0 {
		fmt.Printf(", skipped existing: %v", res.Skipped)
	}
	fmt.Println()
}

func loadSeed(path string) (seed.File, error) {
	if path == "" {
		return seed.Demo(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return seed.File{}, err
	}
	defer f.Close()
	return seed.Parse(f)
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
