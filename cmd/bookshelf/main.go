package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aussiebroadwan/bookshelf/internal/bookshelf/app"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "promote" {
		promote(cfg, os.Args[2:])
		return
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}

func promote(cfg app.Config, args []string) {
	fs := flag.NewFlagSet("promote", flag.ExitOnError)
	email := fs.String("email", "", "email of the account to change")
	demote := fs.Bool("demote", false, "revoke admin instead of granting it")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: bookshelf promote -email <email> [-demote]")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Promote(ctx, cfg, *email, !*demote, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}
