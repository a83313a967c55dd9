package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ucm-acm/tutorbot/internal/adapters/discord"
	"github.com/ucm-acm/tutorbot/internal/adapters/llm"
	firestorestore "github.com/ucm-acm/tutorbot/internal/adapters/storage/firestore"
	memstore "github.com/ucm-acm/tutorbot/internal/adapters/storage/memory"
	"github.com/ucm-acm/tutorbot/internal/app/tutor"
	"github.com/ucm-acm/tutorbot/internal/config"
	"github.com/ucm-acm/tutorbot/internal/domain"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	var completion domain.CompletionClient
	switch cfg.LLMBackend {
	case "mock":
		log.Println("[LLM] Using mock completion client")
		completion = llm.NewMockLLM()
	case "gemini":
		log.Println("[LLM] Using Gemini completion client")
		completion, err = llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.ModelName)
		if err != nil {
			log.Fatalf("error initializing Gemini client: %v", err)
		}
	default:
		log.Println("[LLM] Using OpenAI completion client")
		completion, err = llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.ModelName)
		if err != nil {
			log.Fatalf("error initializing OpenAI client: %v", err)
		}
	}

	var store domain.TurnStore
	switch cfg.StorageBackend {
	case "firestore":
		log.Printf("[STORE] Using Firestore storage (project=%s)", cfg.GCPProjectID)
		fsStore, err := firestorestore.NewStore(ctx, cfg.GCPProjectID)
		if err != nil {
			log.Fatalf("error initializing Firestore store: %v", err)
		}
		defer fsStore.Close()
		store = fsStore
	default:
		log.Println("[STORE] Using in-memory storage")
		store = memstore.NewTurnStore()
	}

	svc := tutor.NewService(store, completion, tutor.ServiceConfig{
		BotID:             cfg.DiscordAppID,
		BotName:           cfg.BotName,
		HistoryLimit:      cfg.HistoryLimit,
		CompletionTimeout: cfg.CompletionTimeout,
	})

	gw, err := discord.NewGateway(cfg.DiscordToken, svc)
	if err != nil {
		log.Fatalf("error creating discord gateway: %v", err)
	}
	if err := gw.Open(); err != nil {
		log.Fatalf("error opening discord gateway: %v", err)
	}
	defer gw.Close()

	log.Println("tutor bot is running, press Ctrl+C to exit")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("shutting down")
}
