package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL  = "http://localhost:8080/products"
	hotID    = 1
	maxKnown = 12
)

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	url := fmt.Sprintf("%s/%d", baseURL, hotID)
	switch rand.Intn(5) {
	case 0:
		// скорее всего несуществующий товар
		url = fmt.Sprintf("%s/%d", baseURL, maxKnown+rand.Intn(1000))
	case 1:
		url = fmt.Sprintf("%s?min_price=%d", baseURL, rand.Intn(500))
	}

	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}
