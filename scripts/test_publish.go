//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type ItineraryGenerateEvent struct {
	RequestID      uuid.UUID `json:"request_id"`
	City           string    `json:"city"`
	TripDays       int       `json:"trip_days"`
	ArrivalInfo    string    `json:"arrival_info"`
	PreferredTypes []string  `json:"preferred_types"`
	Group          string    `json:"group"`
	Pace           string    `json:"pace"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	city := flag.String("city", "Jaipur", "City to plan")
	days := flag.Int("days", 2, "Trip days")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := ItineraryGenerateEvent{
		RequestID:      uuid.New(),
		City:           *city,
		TripDays:       *days,
		ArrivalInfo:    "Morning train around 9am",
		PreferredTypes: []string{"Fort", "Palace", "Temple"},
		Group:          "Couple",
		Pace:           "Moderate",
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:itinerary:generate",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: stream:itinerary:generate\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("   City: %s, days: %d\n", event.City, event.TripDays)

	fmt.Printf("\nWaiting for response in stream:itinerary:done...\n")

	timeout := time.After(3 * time.Minute)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	lastID := "0"
	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for response")
			return
		case <-ticker.C:
			results, err := client.XRead(ctx, &redis.XReadArgs{
				Streams: []string{"stream:itinerary:done", lastID},
				Count:   10,
				Block:   0,
			}).Result()
			if err != nil && err != redis.Nil {
				continue
			}

			for _, stream := range results {
				for _, msg := range stream.Messages {
					lastID = msg.ID
					dataStr, ok := msg.Values["data"].(string)
					if !ok {
						continue
					}

					var done struct {
						RequestID uuid.UUID       `json:"request_id"`
						Itinerary json.RawMessage `json:"itinerary,omitempty"`
						RawOutput string          `json:"raw_output,omitempty"`
						Error     string          `json:"error,omitempty"`
					}
					if err := json.Unmarshal([]byte(dataStr), &done); err != nil {
						continue
					}
					if done.RequestID != event.RequestID {
						continue
					}

					if done.Error != "" {
						fmt.Printf("Generation failed: %s\n", done.Error)
						return
					}
					if len(done.Itinerary) > 0 {
						fmt.Printf("Itinerary received:\n%s\n", done.Itinerary)
					} else {
						fmt.Printf("Raw model output:\n%s\n", done.RawOutput)
					}
					return
				}
			}
		}
	}
}
