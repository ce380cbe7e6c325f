// Package service implements the studio's business logic on top of the
// repository, the LLM adapter and the policy engine.
package service

import (
	"errors"


	"github.com/kamilio/song-builder-sub001/internal/adapter/llm"
	"github.com/kamilio/song-builder-sub001/internal/config"
	"github.com/kamilio/song-builder-sub001/internal/domain"
	"github.com/kamilio/song-builder-sub001/internal/repository"
	"github.com/kamilio/song-builder-sub001/policy"
)

// ErrNotFound marks a lookup that resolved to nothing; transports map it
// to 404.
var ErrNotFound = errors.New("not found")

// Notifier pushes studio events to connected clients. The websocket hub
// satisfies this; tests plug in a recording stub.
type Notifier interface {
	Publish(event domain.Event)
}

type Service struct {
	repo         *repository.Store
	llmClient    llm.LLMClient
	policyEngine *policy.Engine
	notifier     Notifier
	config       *config.Config
}

func New(repo *repository.Store, llmClient llm.LLMClient, policyEngine *policy.Engine, notifier Notifier, cfg *config.Config) *Service {
	return &Service{
		repo:         repo,
		llmClient:    llmClient,
		policyEngine: policyEngine,
		notifier:     notifier,
		config:       cfg,
	}
}
