package service

import (
	"context"
	"errors"
	"strings"

	"github.com/609harsh/realtor-app/internal/models"
	"github.com/609harsh/realtor-app/internal/repository"
)

var (
	ErrHomeNotFound = errors.New("home not found")
	// ErrNotOwner is returned when a realtor touches a home listed by someone
	// else.
	ErrNotOwner = errors.New("not the listing realtor")
)

type HomeService struct {
	homes    repository.HomeRepository
	messages repository.MessageRepository
}

func NewHomeService(homes repository.HomeRepository, messages repository.MessageRepository) *HomeService {
	return &HomeService{homes: homes, messages: messages}
}

func (s *HomeService) List(ctx context.Context, f repository.HomeFilter) ([]models.Home, error) {
	return s.homes.List(ctx, f)
}

func (s *HomeService) Get(ctx context.Context, id string) (*models.Home, error) {
	h, err := s.homes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrHomeNotFound
	}
	return h, nil
}

func (s *HomeService) Create(ctx context.Context, h *models.Home, realtorID string) (*models.Home, error) {
	h.RealtorID = realtorID
	return s.homes.Create(ctx, h)
}

// requireOwner resolves the listing realtor for a home and checks it against
// the caller.
func (s *HomeService) requireOwner(ctx context.Context, homeID, realtorID string) error {
	rid, err := s.homes.RealtorID(ctx, homeID)
	if err != nil {
		return err
	}
	if rid == "" {
		return ErrHomeNotFound
	}
	if rid != realtorID {
		return ErrNotOwner
	}
	return nil
}

func (s *HomeService) Update(ctx context.Context, id string, u models.HomeUpdate, realtorID string) (*models.Home, error) {
	if err := s.requireOwner(ctx, id, realtorID); err != nil {
		return nil, err
	}
	h, err := s.homes.Update(ctx, id, u)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrHomeNotFound
	}
	return h, nil
}

func (s *HomeService) Delete(ctx context.Context, id, realtorID string) error {
	if err := s.requireOwner(ctx, id, realtorID); err != nil {
		return err
	}
	return s.homes.Delete(ctx, id)
}

// Inquire records a buyer message against a home, addressed to its listing
// realtor.
func (s *HomeService) Inquire(ctx context.Context, homeID, buyerID, body string) (*models.Message, error) {
	body = strings.TrimSpace(body)
	rid, err := s.homes.RealtorID(ctx, homeID)
	if err != nil {
		return nil, err
	}
	if rid == "" {
		return nil, ErrHomeNotFound
	}
	return s.messages.Create(ctx, &models.Message{
		HomeID:    homeID,
		BuyerID:   buyerID,
		RealtorID: rid,
		Body:      body,
	})
}

// Messages lists a home's inquiries for its listing realtor only.
func (s *HomeService) Messages(ctx context.Context, homeID, realtorID string) ([]models.Message, error) {
	if err := s.requireOwner(ctx, homeID, realtorID); err != nil {
		return nil, err
	}
	return s.messages.ListByHome(ctx, homeID)
}
