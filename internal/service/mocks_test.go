package service

import (
	"context"
	"strconv"
	"time"

	"github.com/609harsh/realtor-app/internal/models"
	"github.com/609harsh/realtor-app/internal/repository"
)

type memUserRepo struct {
	byEmail map[string]*models.User
	hashes  map[string]string
	seq     int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*models.User{}, hashes: map[string]string{}}
}

func (m *memUserRepo) Create(_ context.Context, email, name, phone string, role models.Role, passwordHash string) (*models.User, error) {
	if _, ok := m.byEmail[email]; ok {
		return nil, repository.ErrDuplicateEmail
	}
	m.seq++
	u := &models.User{
		ID: "u" + strconv.Itoa(m.seq), Email: email, Name: name, Phone: phone,
		Role: role, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	m.byEmail[email] = u
	m.hashes[email] = passwordHash
	return u, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, string, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, "", nil
	}
	return u, m.hashes[email], nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type memHomeRepo struct {
	homes map[string]*models.Home
	seq   int
}

func newMemHomeRepo() *memHomeRepo { return &memHomeRepo{homes: map[string]*models.Home{}} }

func (m *memHomeRepo) List(_ context.Context, f repository.HomeFilter) ([]models.Home, error) {
	out := []models.Home{}
	for _, h := range m.homes {
		if f.City != "" && h.City != f.City {
			continue
		}
		if f.MinPrice != nil && h.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && h.Price > *f.MaxPrice {
			continue
		}
		if f.PropertyType != "" && h.PropertyType != f.PropertyType {
			continue
		}
		out = append(out, *h)
	}
	return out, nil
}

func (m *memHomeRepo) Get(_ context.Context, id string) (*models.Home, error) {
	h, ok := m.homes[id]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

func (m *memHomeRepo) Create(_ context.Context, h *models.Home) (*models.Home, error) {
	m.seq++
	cp := *h
	cp.ID = "h" + strconv.Itoa(m.seq)
	cp.ListedAt = time.Now()
	m.homes[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memHomeRepo) Update(_ context.Context, id string, u models.HomeUpdate) (*models.Home, error) {
	h, ok := m.homes[id]
	if !ok {
		return nil, nil
	}
	if u.Address != nil {
		h.Address = *u.Address
	}
	if u.City != nil {
		h.City = *u.City
	}
	if u.Price != nil {
		h.Price = *u.Price
	}
	if u.Bedrooms != nil {
		h.Bedrooms = *u.Bedrooms
	}
	if u.Bathrooms != nil {
		h.Bathrooms = *u.Bathrooms
	}
	if u.LandSize != nil {
		h.LandSize = *u.LandSize
	}
	if u.PropertyType != nil {
		h.PropertyType = *u.PropertyType
	}
	cp := *h
	return &cp, nil
}

func (m *memHomeRepo) Delete(_ context.Context, id string) error {
	delete(m.homes, id)
	return nil
}

func (m *memHomeRepo) RealtorID(_ context.Context, homeID string) (string, error) {
	h, ok := m.homes[homeID]
	if !ok {
		return "", nil
	}
	return h.RealtorID, nil
}

type memMessageRepo struct {
	byHome map[string][]models.Message
	seq    int
}

func newMemMessageRepo() *memMessageRepo { return &memMessageRepo{byHome: map[string][]models.Message{}} }

func (m *memMessageRepo) Create(_ context.Context, msg *models.Message) (*models.Message, error) {
	m.seq++
	cp := *msg
	cp.ID = "m" + strconv.Itoa(m.seq)
	cp.CreatedAt = time.Now()
	m.byHome[cp.HomeID] = append(m.byHome[cp.HomeID], cp)
	return &cp, nil
}

func (m *memMessageRepo) ListByHome(_ context.Context, homeID string) ([]models.Message, error) {
	return m.byHome[homeID], nil
}
