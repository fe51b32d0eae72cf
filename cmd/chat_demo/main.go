// README: Interactive terminal demo of the planning conversation.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"wayfarer/internal/ai"
	"wayfarer/internal/modules/conversation"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	var provider ai.Provider
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		gemini, err := ai.NewGeminiProvider(ctx, key)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		provider = gemini
	}

	svc := conversation.NewService(conversation.NewStore(), provider, nil)

	fmt.Println("Assistant:", conversation.Greeting)

	var sessionID string
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			return
		}
		res, err := svc.ProcessTurn(ctx, sessionID, scanner.Text())
		if err != nil {
			fmt.Println("Assistant: Sorry, I didn't catch that. Try again?")
			continue
		}
		sessionID = res.SessionID
		fmt.Println("Assistant:", res.Reply)

		if res.Finalized {
			for _, day := range res.Itinerary {
				fmt.Printf("\nDay %d\n", day.Day)
				for _, act := range day.Activities {
					fmt.Printf("  %-8s %s @ %s", act.Time, act.Title, act.Location)
					if act.Cost != "" {
						fmt.Printf(" (%s)", act.Cost)
					}
					fmt.Println()
				}
			}
			fmt.Println()
		}
	}
}
