package llm

import (
	"log"
	"os"
	"time"
)

const (
	// EnvStudioMode is the environment variable name for mode selection.
	EnvStudioMode = "STUDIO_MODE"
	// ModeMock indicates the mock client should be used.
	ModeMock = "MOCK"
)

// NewLLMClient creates an LLM client based on the STUDIO_MODE
// environment variable. STUDIO_MODE=MOCK returns the mock client;
// anything else returns the real HTTP client.
func NewLLMClient(baseURL, apiKey string, timeout time.Duration) LLMClient {
	if os.Getenv(EnvStudioMode) == ModeMock {
		log.Println("STUDIO_MODE=MOCK detected, using mock LLM client")
		return NewMockClient()
	}
	return NewClient(baseURL, apiKey, timeout)
}
