package audio

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-console/console"
)

// AudioService wraps SoundManager as a service
// Handles graceful degradation when no audio backend is available
type AudioService struct {
	volume   float64
	log      zerolog.Logger
	manager  *SoundManager
	disabled atomic.Bool
}

// NewService creates an audio service with volume in 0..1
func NewService(volume float64, log zerolog.Logger) *AudioService {
	return &AudioService{
		volume: volume,
		log:    log.With().Str("component", "audio").Logger(),
	}
}

// Name implements service.Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements service.Service
func (s *AudioService) Init() error {
	if s.manager == nil {
		s.manager = NewSoundManager(s.volume)
	}
	return nil
}

// Start implements service.Service
// Opens the speaker; sets disabled on failure (no error returned)
func (s *AudioService) Start() error {
	if s.manager == nil || s.disabled.Load() {
		return nil
	}
	if err := s.manager.Initialize(); err != nil {
		s.disabled.Store(true)
		s.log.Warn().Err(err).Msg("audio initialization failed, continuing without audio")
	}
	return nil
}

// Stop implements service.Service
func (s *AudioService) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}

// Sound returns the console sound sink, nil while audio is unavailable
func (s *AudioService) Sound() console.Sound {
	if s.manager == nil || s.disabled.Load() || !s.manager.Initialized() {
		return nil
	}
	return s.manager
}
