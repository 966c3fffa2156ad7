package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nexa-store/internal/api"
	"nexa-store/internal/catalog"
	"nexa-store/internal/config"
	"nexa-store/internal/markup"
	"nexa-store/internal/model"
	"nexa-store/internal/session"
)

const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("backend", cfg.Backend.BaseURL).Msg("starting nexa-store chat client")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Backend client and catalogue (falls back to the built-in list when
	// the backend is down)
	client := api.NewClient(cfg.Backend, logger)
	store := catalog.Load(ctx, client, logger)
	if store.UsedFallback() {
		fmt.Println("(backend unreachable, browsing the offline catalogue)")
	}

	sess := session.New(store, client, logger)
	for _, msg := range sess.Transcript() {
		printMessage(msg)
	}

	// Close the session on interrupt so in-flight replies are dropped
	// instead of landing in a discarded transcript.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-shutdown
		sess.Close()
		cancel()
		fmt.Println("\nbye!")
		os.Exit(0)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}

		reply, err := sess.Send(ctx, scanner.Text())
		if err != nil {
			if errors.Is(err, model.ErrEmptyMessage) {
				continue
			}
			return fmt.Errorf("send failed: %w", err)
		}
		printMessage(reply)
	}

	sess.Close()
	return scanner.Err()
}

// printMessage renders one transcript entry, with **bold** spans in ANSI.
func printMessage(msg model.ChatMessage) {
	prefix := "bot> "
	if msg.Sender == model.SenderUser {
		prefix = "you> "
	}

	fmt.Print(prefix)
	for _, span := range markup.Parse(msg.Text) {
		if span.Bold {
			fmt.Print(ansiBold + span.Text + ansiReset)
		} else {
			fmt.Print(span.Text)
		}
	}
	fmt.Println()

	if msg.Image != "" {
		fmt.Printf("     [image] %s\n", msg.Image)
	}
	for _, image := range msg.Images {
		fmt.Printf("     [image] %s\n", image)
	}
	for _, p := range msg.Products {
		fmt.Printf("     [%d] %s - $%.2f\n", p.ID, p.Title, p.DiscountedPrice())
	}
	for i, option := range msg.Options {
		fmt.Printf("     %d. %s\n", i+1, option)
	}
}
