// +build ignore

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

type AddressResolveEvent struct {
	RequestID   uuid.UUID `json:"request_id"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	HouseNumber *string   `json:"house_number,omitempty"`
	Description *string   `json:"description,omitempty"`
}

func ptr[T any](v T) *T {
	return &v
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
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

	// Тестовое событие (точка в Чиланзарском районе Ташкента)
	event := AddressResolveEvent{
		RequestID:   uuid.New(),
		Latitude:    ptr(41.2846587),
		Longitude:   ptr(69.2034763),
		HouseNumber: ptr("12A"),
		Description: ptr("Test address publish"),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:address:resolve",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:address:resolve\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("   Coordinates: %.6f, %.6f\n", *event.Latitude, *event.Longitude)

	// Ожидание ответа
	fmt.Printf("\n⏳ Waiting for response in stream:address:done...\n")

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("❌ Timeout waiting for response")
			return
		case <-ticker.C:
			results, err := client.XRead(ctx, &redis.XReadArgs{
				Streams: []string{"stream:address:done", "0"},
				Count:   10,
				Block:   0,
			}).Result()

			if err != nil && err != redis.Nil {
				continue
			}

			for _, stream := range results {
				for _, msg := range stream.Messages {
					dataStr, ok := msg.Values["data"].(string)
					if !ok {
						continue
					}

					var response map[string]interface{}
					if err := json.Unmarshal([]byte(dataStr), &response); err != nil {
						continue
					}

					if reqID, ok := response["request_id"].(string); ok {
						if reqID == event.RequestID.String() {
							fmt.Printf("\n✅ Response received!\n")
							prettyJSON, _ := json.MarshalIndent(response, "", "  ")
							fmt.Printf("%s\n", prettyJSON)
							return
						}
					}
				}
			}
		}
	}
}
