// Command historytool replays the append-only history log to stdout,
// most recent calculation first.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"trip-route-service/internal/adapters/history"
	"trip-route-service/internal/config"
	"trip-route-service/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	path := flag.String("path", config.Get("HISTORY_PATH", "data/history.csv"), "history CSV path")
	flag.Parse()

	store := history.NewCSVHistoryStore(*path)
	records, err := store.LoadAll()
	if err != nil {
		log.Fatal(err)
	}

	if len(records) == 0 {
		fmt.Println("No routes recorded yet.")
		os.Exit(0)
	}

	// File order is chronological; replay newest first.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	fmt.Print(services.PlainFormatter{}.HistoryTable(records))
}
