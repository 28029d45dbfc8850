// README: Standalone migration runner.
package main

import (
	"context"
	"log"

	"github.com/Castanheira1/leopardo-api/internal/config"
	"github.com/Castanheira1/leopardo-api/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := db.MigrateUp(context.Background(), cfg.DB.DSN); err != nil {
		log.Fatal(err)
	}
	log.Println("migrations applied")
}
