package main

import (
	"flag"
	"fmt"
	"log"

	"math/rand"

	"github.com/vilterp/gdlint/pkg"
	"github.com/vilterp/gdlint/pkg/games"
)

var url = flag.String("url", "ws://localhost:9000/ws", "url of gdlint server to connect to")
var gamesDir = flag.String("games", "pkg/games/testdata", "directory of rulesheets to send")
var requests = flag.Int("requests", 10000, "number of validation requests to send")

func main() {
	flag.Parse()

	client, err := gdlint.NewClient(*url)
	if err != nil {
		log.Fatal(err)
	}

	// Load rulesheets.
	repo := games.NewDirRepository(*gamesDir)
	keys, err := repo.GameKeys()
	if err != nil {
		log.Fatal(err)
	}
	if len(keys) == 0 {
		log.Fatalf("no games in %s", *gamesDir)
	}
	rulesheets := make([]string, len(keys))
	for i, key := range keys {
		game, err := repo.GetGame(key)
		if err != nil {
			log.Fatal(err)
		}
		rulesheets[i] = game.Rulesheet()
	}
	log.Printf("loaded %d rulesheets from %s", len(keys), *gamesDir)

	// Send validation requests.
	valid := 0
	invalid := 0
	for i := 0; i < *requests; i++ {
		rulesheet := rulesheets[rand.Intn(len(rulesheets))]
		switch rand.Intn(4) {
		case 0:
			// unique prefix, so the server can't answer from its cache
			rulesheet = fmt.Sprintf("; request %d\n%s", i, rulesheet)
		case 1:
			// exercise the failure path
			rulesheet = rulesheet + ")"
		}
		verdict, err := client.Validate(rulesheet)
		if err != nil {
			log.Fatal(err)
		}
		if verdict.Valid {
			valid++
		} else {
			invalid++
		}
		if i%500 == 0 {
			log.Println("request:", i)
		}
	}
	fmt.Printf("done: %d valid, %d invalid\n", valid, invalid)
}
