package main

import (
  "log"
  "net/http"

  "github.com/joho/godotenv"

  "personas-api/internal/config"
  dbpkg "personas-api/internal/db"
  httpx "personas-api/internal/http"
)

func main() {
  _ = godotenv.Load()
  cfg := config.Load()
  pool := dbpkg.MustConnect(cfg.DatabaseURL)
  srv := httpx.NewServer(pool)
  log.Println("listening on :" + cfg.Port)
  log.Fatal(http.ListenAndServe(":"+cfg.Port, srv.R))
}
