package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/store-service/internal/auth"
	"github.com/SergeyBogomolovv/store-service/internal/config"
	"github.com/SergeyBogomolovv/store-service/internal/entities"

	"github.com/joho/godotenv"
)

const (
	users    = 5
	products = 12
)

type Position struct {
	Product  int64 `json:"product"`
	Quantity int   `json:"quantity"`
}

type Order struct {
	Products []Position `json:"products"`
}

type Created struct {
	ID          int64  `json:"id"`
	User        int64  `json:"user"`
	TotalAmount string `json:"total_amount"`
}

func generateRandomOrder() Order {
	picked := rand.Perm(products)[:rand.Intn(3)+1]
	positions := make([]Position, 0, len(picked))
	for _, p := range picked {
		positions = append(positions, Position{
			Product:  int64(p + 1),
			Quantity: rand.Intn(5) + 1,
		})
	}
	return Order{Products: positions}
}

func main() {
	godotenv.Load()
	conf := config.New()
	tokens := auth.NewTokenManager(conf.Auth.JWTSecret, time.Hour)
	url := fmt.Sprintf("http://%s:%s/orders", conf.Http.Host, conf.Http.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			userID := int64(rand.Intn(users) + 1)
			token, err := tokens.Issue(entities.Identity{UserID: userID})
			if err != nil {
				log.Fatalln("failed to issue token:", err)
			}
			if err := postOrder(ctx, url, token, generateRandomOrder()); err != nil {
				log.Println("order rejected:", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

func postOrder(ctx context.Context, url, token string, order Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	var created Created
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return err
	}
	log.Println("order generated", created.ID, "user", created.User, "total", created.TotalAmount)
	return nil
}
