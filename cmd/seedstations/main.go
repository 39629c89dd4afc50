package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
)

type stationSeed struct {
	Station   string  `json:"station"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Loads subway station coordinates from a JSON file and posts each one to a
// running server. Run once per deployment, the station table is otherwise
// never written.
func main() {
	baseURL := flag.String("url", "http://localhost:80", "Base URL of the dining server")
	file := flag.String("file", "stations.json", "JSON file with station coordinates")
	flag.Parse()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Error reading stations file: %v", err)
	}

	var stations []stationSeed
	err = json.Unmarshal(data, &stations)
	if err != nil {
		log.Fatalf("Error parsing stations file: %v", err)
	}

	created := 0
	for _, station := range stations {
		body, err1 := json.Marshal(station)
		if err1 != nil {
			log.Fatalf("Error encoding station %q: %v", station.Station, err1)
		}

		response, err1 := http.Post(*baseURL+"/stations", "application/json", bytes.NewReader(body))
		if err1 != nil {
			log.Fatalf("Error posting station %q: %v", station.Station, err1)
		}
		err1 = response.Body.Close()
		if err1 != nil {
			log.Println("Error closing response body:", err1)
		}

		if response.StatusCode != http.StatusOK {
			log.Fatalf("Unexpected status %s posting station %q", response.Status, station.Station)
		}
		created++
	}

	fmt.Printf("Created %d stations\n", created)
}
