package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"medequip-support-be/internal/config"
	"medequip-support-be/internal/repository/implementation"
	"medequip-support-be/pkg/chat/datasource"
	"medequip-support-be/pkg/chat/session"
	"medequip-support-be/pkg/database"
	"medequip-support-be/pkg/embedding"
	"medequip-support-be/pkg/rag/search"
)

// Interactive support console for local testing. Talks to the pipeline
// directly, no HTTP server required.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	clientRepo := implementation.NewClientRepository(gormDB)
	knowledgeRepo := implementation.NewKnowledgeRepository(gormDB)
	queryExecutor := implementation.NewQueryExecutor(gormDB)

	provider := embedding.NewOllamaProvider(cfg.Rag.OllamaBaseURL, cfg.Rag.OllamaModel)
	retriever := search.NewOrchestrator(provider, knowledgeRepo)
	router := datasource.NewRouter(queryExecutor, retriever, nil, cfg.Rag.Enabled, cfg.Rag.TopK)

	engine := session.NewEngine(uuid.NewString(), clientRepo, router, cfg.Chat.MaxHistoryTurns)

	banner := strings.Repeat("=", 60)
	heading := color.New(color.FgCyan, color.Bold)
	system := color.New(color.FgYellow)
	assistant := color.New(color.FgGreen)

	fmt.Println(banner)
	heading.Println("MedEquip Solutions Customer Support (Dev Demo)")
	fmt.Println("Type 'quit' to exit, 'auth' to authenticate, 'history' to view last turns")
	fmt.Println(banner)

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "quit", "exit":
			assistant.Println("Assistant: Goodbye!")
			return
		case "history":
			for _, turn := range engine.History() {
				fmt.Printf("You: %s\n", turn.User)
				assistant.Printf("Assistant: %s\n", turn.Assistant)
			}
			continue
		case "auth":
			email := prompt(scanner, "Email: ")
			clientID := prompt(scanner, "Client ID (ME-XXXXX): ")
			ok, err := engine.Authenticate(ctx, email, clientID)
			if err != nil {
				system.Printf("System: Authentication error: %v\n", err)
				continue
			}
			if ok {
				identity := engine.Identity()
				system.Printf("System: ✓ Authenticated as %s (%s)\n", identity.Name, identity.ClientID)
			} else {
				system.Println("System: Authentication failed. Please check your email and Client ID.")
			}
			continue
		}

		reply, err := engine.Handle(ctx, input)
		if err != nil {
			system.Printf("System: Error: %v\n", err)
			continue
		}
		assistant.Printf("Assistant: %s\n", reply)
	}
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}
