package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"census_insight/pkg/api/chat"
	apiconfig "census_insight/pkg/api/config"
	"census_insight/pkg/core/agent"
	"census_insight/pkg/core/narrative"
	"census_insight/pkg/core/pipeline"
	"census_insight/pkg/core/prompt"
	"census_insight/pkg/core/refsource"
	"census_insight/pkg/core/store"
)

func main() {
	godotenv.Load()
	ctx := context.Background()

	// Prompt overrides are optional; builtins cover every role.
	if err := prompt.LoadFromDirectory("resources"); err != nil {
		fmt.Printf("[WARNING] no prompt overrides loaded: %v\n", err)
	}

	// Provider configuration
	var agentCfg agent.Config
	configData, err := os.ReadFile("config/models.yaml")
	if err != nil {
		fmt.Printf("[WARNING] config/models.yaml not readable (%v), using gemini defaults\n", err)
		agentCfg.ActiveProvider = "gemini"
	} else if err := yaml.Unmarshal(configData, &agentCfg); err != nil {
		fmt.Printf("[WARNING] config/models.yaml invalid (%v), using gemini defaults\n", err)
		agentCfg.ActiveProvider = "gemini"
	}
	agentMgr := agent.NewManager(agentCfg)

	// Database
	if err := store.InitDB(ctx); err != nil {
		fmt.Printf("[FATAL] database init failed: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Narrative layer with optional dedicated policy agent
	narrator := narrative.NewGenerator(agentMgr)
	if pa, err := narrative.NewPolicyAgent(ctx); err != nil {
		fmt.Printf("[WARNING] policy agent disabled: %v\n", err)
	} else {
		defer pa.Close()
		narrator.SetPolicyAgent(pa)
	}

	// Optional grounding context from an official press release.
	if refURL := os.Getenv("REFERENCE_URL"); refURL != "" {
		if article, err := refsource.FetchArticle(ctx, refURL); err != nil {
			fmt.Printf("[WARNING] reference article unavailable: %v\n", err)
		} else {
			narrator.SetReference(article.Text())
			fmt.Printf("Loaded reference article: %s\n", article.Title)
		}
	}

	orchestrator := pipeline.NewOrchestrator(store.NewCensusRepo(), narrator)

	chatHandler := chat.NewHandler(orchestrator, store.NewChatRepo())
	http.HandleFunc("/api/chat", chatHandler.HandleChat)
	http.HandleFunc("/api/chat/history", chatHandler.HandleHistory)

	configHandler := apiconfig.NewHandler(agentMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - POST /api/chat")
	fmt.Println("  - GET  /api/chat/history")
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
