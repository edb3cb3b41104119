package main

import (
	"log"
	"net/http"
	"time"

	"github.com/aniladanir/backoff"
)

const maxAttempts = 10

func main() {
	bo := backoff.New(
		backoff.WithFactor(2),
		backoff.WithInterval(time.Millisecond*250),
		backoff.WithMax(time.Second*30),
	)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		resp, err := http.DefaultClient.Get("https://www.google.com")
		if err == nil {
			resp.Body.Close()
			log.Println("request is successful.")
			return
		}

		wait := bo.Duration(attempt)
		log.Printf("request has failed: %v. retrying in %s", err, wait)
		time.Sleep(wait)
	}

	log.Println("request failed.")
}
