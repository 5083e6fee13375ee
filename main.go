package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jttkim/AntServer/agent"
	"github.com/jttkim/AntServer/config"
	"github.com/jttkim/AntServer/ipc"
	"github.com/jttkim/AntServer/record"
	"github.com/jttkim/AntServer/world"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	slog.Info("starting ant client", "team", cfg.Team.Name, "bot", cfg.Bot, "server", cfg.Server.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("game aborted", "error", err)
		os.Exit(1)
	}
	slog.Info("shutting down")
}

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(args []string) (config.Config, error) {
	fs := flag.NewFlagSet("antclient", flag.ContinueOnError)
	path := fs.String("config", "", "YAML config file")
	addr := fs.String("addr", "", "server address host:port")
	team := fs.String("team", "", "team name sent in the hello message")
	bot := fs.String("bot", "", "bot to play (jtk, donothing)")
	turns := fs.Int("turns", -1, "stop after this many turns, 0 for no limit")
	rec := fs.String("record", "", "write a zstd JSONL game log to this file")
	level := fs.String("log-level", "", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if *path != "" {
		var err error
		if cfg, err = config.Load(*path); err != nil {
			return cfg, err
		}
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *team != "" {
		cfg.Team.Name = *team
	}
	if *bot != "" {
		cfg.Bot = *bot
	}
	if *turns >= 0 {
		cfg.MaxTurns = *turns
	}
	if *rec != "" {
		cfg.Record = *rec
	}
	if *level != "" {
		cfg.LogLevel = *level
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg config.Config) error {
	decider, err := agent.NewDecider(cfg.Bot, cfg.Settings())
	if err != nil {
		return err
	}

	conn, err := ipc.Dial(ctx, cfg.Server.Addr, cfg.Server.DialTimeout)
	if err != nil {
		return err
	}
	defer conn.Close()

	// A blocked turn read only returns once the socket is closed.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	if err := conn.Hello(cfg.Team.Name); err != nil {
		return fmt.Errorf("hello: %w", err)
	}

	table := world.NewIdentityTable()
	table.HistoryLimit = cfg.Identity.HistoryLimit
	a := agent.New(conn, decider, table)

	if cfg.Record != "" {
		r, err := record.Create(cfg.Record)
		if err != nil {
			return fmt.Errorf("record: %w", err)
		}
		defer func() {
			if err := r.Close(); err != nil {
				slog.Warn("closing game log failed", "path", r.Path(), "error", err)
			}
		}()
		a.Recorder = r
		slog.Info("recording game", "path", r.Path())
	}

	err = a.Run(ctx, cfg.MaxTurns)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		slog.Info("interrupted", "turns", a.Turns())
	case errors.Is(err, io.EOF):
		slog.Info("server closed the game", "turns", a.Turns())
	default:
		return err
	}
	if v := a.View(); v != nil {
		slog.Info("final standing", "team", v.Team().String())
	}
	return nil
}
