package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"fitness-chatbot/cmd/internal/logger"
	"fitness-chatbot/config"
	"fitness-chatbot/llm"
	"fitness-chatbot/nutrition"
	"fitness-chatbot/services"
	"fitness-chatbot/speech"
	"fitness-chatbot/store"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	st, err := store.New(ctx, cfg.Store)
	if err != nil {
		log.Fatal("failed to initialize message store: ", err)
	}

	provider, err := llm.New(cfg.LLM)
	if err != nil {
		log.Fatal(err)
	}

	svc := services.NewChatService(st, provider, services.ChatOptions{})
	foods := nutrition.NewClient(cfg.NutritionBaseURL, config.NutritionixAppID(), config.NutritionixAPIKey())
	synth := speech.NewCommandSynthesizer(cfg.Speech.TTSCommand, cfg.Speech.AudioDir)
	transcriber := speech.NewCommandTranscriber(cfg.Speech.STTCommand)

	// One session per interactive run; never persisted on its own.
	sessionID := services.NewSessionID()
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Fitness Chatbot: Hi! Ask me about workouts, nutrition, or fitness goals. (Say 'quit' to exit)")

	for {
		fmt.Println("\n1. Type your query\n2. Speak your query")
		fmt.Print("Choose an option (1/2): ")
		choice := readLine(reader)

		var userInput string
		switch choice {
		case "1":
			fmt.Print("You: ")
			userInput = readLine(reader)
		case "2":
			fmt.Print("Audio file path: ")
			audioPath := readLine(reader)
			text, err := transcriber.Transcribe(ctx, audioPath)
			if err != nil {
				text = speech.SentinelUnintelligible
			}
			userInput = text
			fmt.Printf("You: %s\n", userInput)
		default:
			fmt.Println("Invalid choice. Try again.")
			continue
		}

		if strings.EqualFold(userInput, "quit") {
			fmt.Println("Fitness Chatbot: Goodbye! Stay healthy!")
			return
		}

		var reply string
		if food, ok := nutrition.ExtractQuery(userInput); ok {
			reply = lookupNutrition(ctx, foods, food)
			// Nutrition answers are part of the conversation history too.
			if _, err := svc.RecordExchange(ctx, sessionID, userInput, reply); err != nil {
				log.Fatal("failed to persist turn: ", err)
			}
		} else {
			result, err := svc.HandleTurn(ctx, sessionID, userInput)
			if err != nil {
				log.Fatal("failed to run turn: ", err)
			}
			if result.Failure != nil {
				fmt.Printf("Fitness Chatbot: I could not reach the model (%s). Please try again.\n", result.Failure.Detail)
				continue
			}
			reply = result.Reply
		}

		fmt.Printf("Fitness Chatbot: %s\n", reply)
		if err := synth.Speak(ctx, reply); err != nil {
			logger.ErrorWithFields("text-to-speech failed", logger.Fields{"error": err.Error()})
		}
	}
}

func lookupNutrition(ctx context.Context, client *nutrition.Client, food string) string {
	info, err := client.Lookup(ctx, food)
	if err != nil {
		if errors.Is(err, nutrition.ErrUnparseable) {
			return nutrition.ParseErrorMessage
		}
		return fmt.Sprintf("Error fetching food data: %v", err)
	}
	return nutrition.Format(info)
}

func readLine(r *bufio.Reader) string {
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}
