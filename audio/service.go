package audio

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/folio/config"
	"github.com/lixenwraith/folio/service"
)

// Service wraps CuePlayer as a service.Service
// Degrades to silence when no audio backend is available
type Service struct {
	player   *CuePlayer
	muted    bool
	disabled atomic.Bool
}

// NewService creates a new audio service
func NewService() *Service {
	return &Service{}
}

// Name implements Service
func (s *Service) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements Service
// Reads *config.Config from args, audio stays off unless the config enables it
func (s *Service) Init(args ...any) error {
	cfg, ok := service.Arg[*config.Config](args)
	if !ok || !cfg.AudioEnabled() {
		s.disabled.Store(true)
		return nil
	}
	s.player = NewCuePlayer()
	return nil
}

// Start implements Service
// Opens the speaker; sets disabled on failure (no error returned)
func (s *Service) Start() error {
	if s.disabled.Load() || s.player == nil {
		return nil
	}
	if err := s.player.Initialize(); err != nil {
		log.Printf("audio: disabled, speaker unavailable: %v", err)
		s.disabled.Store(true)
		s.player = nil
	}
	return nil
}

// Stop implements Service
func (s *Service) Stop() error {
	if s.player != nil {
		s.player.Cleanup()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

// Player returns the cue player, nil when disabled
func (s *Service) Player() *CuePlayer {
	if s.disabled.Load() {
		return nil
	}
	return s.player
}
