package service

import (
	"notewell/internal/config"
	"notewell/internal/logger"
	"notewell/internal/store"
	"notewell/internal/utils"
	"notewell/internal/validators"
)

// Services bundles all business-logic services behind one constructor so the
// HTTP handler layer receives a single dependency.
type Services struct {
	AuthService AuthService
	NoteService NoteService
	AIService   AIService
}

// NewServices wires every service to the shared repositories and config.
func NewServices(repos *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, validators.NewCredentialsValidator(), cfg.Auth, logger),
		NoteService: NewNoteService(repos.NoteRepository, validators.NewNoteDraftValidator(), logger),
		AIService:   NewAIService(utils.NewHTTPClient(), repos.NoteRepository, cfg.AI, logger),
	}
}
