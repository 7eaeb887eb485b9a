package main

import (
	"context"
	"log"
	"net/http"

	"fitness-chatbot/api/router"
	"fitness-chatbot/cmd/internal/logger"
	"fitness-chatbot/config"
	"fitness-chatbot/db"
	"fitness-chatbot/llm"
	"fitness-chatbot/services"
	"fitness-chatbot/speech"
	"fitness-chatbot/store"
)

// @title           Fitness Chatbot API
// @version         1.0
// @description     Conversational fitness assistant API
// @BasePath        /api/v1
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

	var synth speech.Synthesizer
	if cfg.Speech.TTSCommand != "" {
		synth = speech.NewCommandSynthesizer(cfg.Speech.TTSCommand, cfg.Speech.AudioDir)
	}

	svc := services.NewChatService(st, provider, services.ChatOptions{
		Synthesizer:    synth,
		LinkifyReplies: true,
	})

	transcriber := speech.NewCommandTranscriber(cfg.Speech.STTCommand)

	var ping func(context.Context) error
	if cfg.Store.Type == "" || cfg.Store.Type == "mongo" {
		ping = db.Ping
	}

	logger.InfoWithFields("starting chat API", logger.Fields{
		"addr":  cfg.Server.Addr,
		"store": cfg.Store.Type,
		"llm":   cfg.LLM.Provider,
	})

	r := router.New(svc, transcriber, ping)

	addr := cfg.Server.Addr
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
