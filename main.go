package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/samy8144/ai-operations-coordinator/api"
	"github.com/samy8144/ai-operations-coordinator/chatbot"
	"github.com/samy8144/ai-operations-coordinator/httpapi"
	"github.com/samy8144/ai-operations-coordinator/sheets"
)

func main() {
	client := sheets.NewClient(sheets.DefaultBaseURL, config.SpreadsheetID, config.SheetsAPIKey)
	store := sheets.NewStore(client, config.DataDir)
	if store.Connected() {
		log.Println("Using Google Sheets with CSV fallback:", config.DataDir)
	} else {
		log.Println("No spreadsheet configured; using CSV files in:", config.DataDir)
	}

	svc := api.NewService(store)

	s := httpapi.NewMemorySessionStore(time.Minute * time.Duration(config.SessionExpiration))

	var chatCfg *httpapi.ChatConfig
	if config.AIEndpoint != "" {
		chatCfg = &httpapi.ChatConfig{
			AIEndpoint:    config.AIEndpoint,
			AIModel:       config.AIModel,
			AIKey:         config.AIKey,
			CacheMaxBytes: config.ChatCacheBytes,
		}
		if config.ConversationDB != "" {
			convStore, err := chatbot.NewSQLiteStore(config.ConversationDB)
			if err != nil {
				log.Fatalln("Could not open conversation database:", err)
			}
			chatCfg.Store = convStore
		}
	} else {
		log.Println("No AI endpoint configured; chat disabled")
	}

	r := httpapi.NewRouter(os.Stdout, s, svc, store, config.PasswordHash, chatCfg)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Session-Key"}),
	)

	chain := handlers.CompressHandler(cors(http.StripPrefix(config.Prefix, r)))

	log.Println("Listening on:", config.ListenAddr)
	log.Println(http.ListenAndServe(config.ListenAddr, chain))
}
