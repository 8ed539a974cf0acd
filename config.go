package main

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

//Config represents options given in the environment
type Config struct {
	SessionExpiration int //in minutes; default: 60

	SpreadsheetID string //Google Sheets spreadsheet id; empty runs CSV-only
	SheetsAPIKey  string //Google Sheets API key
	DataDir       string //directory of CSV fallback files; default: data

	AIEndpoint     string //OpenAI-compatible chat completions URL
	AIModel        string //model name sent with chat requests
	AIKey          string //API key for the AI endpoint
	ChatCacheBytes int    //max bytes of in-memory conversation cache; default: 10485760
	ConversationDB string //SQLite path for persistent conversations; empty uses the in-memory cache

	PasswordHash string //bcrypt hash of the operator password; required

	ListenAddr string //addr format used for net.Dial; required
	Prefix     string //url prefix to mount api to without trailing slash
}

var config = &Config{}

func checkEmpty(val, name string) {
	if val == "" {
		log.Fatalf("COORDINATOR_%s must be configured\n", name)
	}
}

func init() {
	err := envconfig.Process("COORDINATOR", config)
	if err != nil {
		log.Fatalln("Error reading configuration from environment:", err)
	}

	if config.SessionExpiration == 0 {
		config.SessionExpiration = 60
	}

	if config.DataDir == "" {
		config.DataDir = "data"
	}

	if config.ChatCacheBytes == 0 {
		config.ChatCacheBytes = 10 * 1024 * 1024
	}

	checkEmpty(config.PasswordHash, "PASSWORDHASH")
	checkEmpty(config.ListenAddr, "LISTENADDR")
}
