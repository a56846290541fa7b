package main

import (
	"fmt"
	"log"

	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/config"
	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/database"
	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/server"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDSN)

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
