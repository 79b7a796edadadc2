package game

import (
	"log"

	"github.com/iamasit07/connect-four/internal/domain"
)

// Service is the entry point for starting games (facade)
type Service struct {
	Width  int
	Height int
	Tints  []domain.Tint
	Logger *log.Logger
}

func NewService(width, height int, tints []domain.Tint, logger *log.Logger) *Service {
	return &Service{
		Width:  width,
		Height: height,
		Tints:  tints,
		Logger: logger,
	}
}

func (s *Service) NewSession() (*Session, error) {
	return NewSession(s.Width, s.Height, s.Tints, s.Logger)
}
