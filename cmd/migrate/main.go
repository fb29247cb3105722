package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"

	"logistics/cmd"
	"logistics/internal/adapters/out/postgres/migrations"

	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
)

func main() {
	command := flag.String("cmd", "up", "migration command: up|down|status|redo|reset|version")
	flag.Parse()

	config, err := cmd.LoadDBConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := sql.Open("postgres", config.DSN())
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err = db.PingContext(ctx); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	if err = migrations.Run(ctx, db, *command, flag.Args()...); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("migrate %s: done\n", *command)
}
