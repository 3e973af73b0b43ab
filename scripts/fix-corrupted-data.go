package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
)

type corruptKey struct {
	key    string
	reason string
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted sheet slices...")

	iter := client.Scan(ctx, 0, "sheet:*", 0).Iterator()

	var corrupted []corruptKey
	var checkedCount int
	characters := make(map[string]struct{})

	for iter.Next(ctx) {
		key := iter.Val()

		charID, slice, ok := sheetrepo.ParseKey(key)
		if !ok {
			fmt.Printf("? Skipping unrecognised key %s\n", key)
			continue
		}
		checkedCount++
		characters[charID] = struct{}{}

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		// Load would silently fall back to the default for these
		if err := sheetrepo.ValidateSlice(slice, data); err != nil {
			fmt.Printf("✗ Bad %s slice in %s: %v\n", slice, key, err)
			corrupted = append(corrupted, corruptKey{key: key, reason: err.Error()})
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d slices of %d characters, found %d corrupted entries\n",
		checkedCount, len(characters), len(corrupted))

	if len(corrupted) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, c := range corrupted {
		fmt.Printf("  - %s (%s)\n", c.key, c.reason)
	}

	// Deleting a slice resets it to the default on the next read
	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response == "yes" {
		for _, c := range corrupted {
			if err := client.Del(ctx, c.key).Err(); err != nil {
				fmt.Printf("Failed to delete %s: %v\n", c.key, err)
			} else {
				fmt.Printf("Deleted %s\n", c.key)
			}
		}
		fmt.Println("\nCleanup complete!")
	} else {
		fmt.Println("Aborted - no changes made")
	}
}
