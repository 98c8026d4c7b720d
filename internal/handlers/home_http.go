package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/609harsh/realtor-app/internal/middleware"
	"github.com/609harsh/realtor-app/internal/models"
	"github.com/609harsh/realtor-app/internal/repository"
	"github.com/609harsh/realtor-app/internal/service"
	"github.com/609harsh/realtor-app/internal/utils"
)

type HomeHTTP struct {
	svc *service.HomeService
}

func NewHomeHTTP(s *service.HomeService) *HomeHTTP {
	return &HomeHTTP{svc: s}
}

func homeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrHomeNotFound):
		utils.Error(w, http.StatusNotFound, "home not found")
	case errors.Is(err, service.ErrNotOwner):
		utils.Error(w, http.StatusForbidden, "forbidden")
	default:
		utils.Error(w, http.StatusInternalServerError, err.Error())
	}
}

type createHomeRequest struct {
	Address      string  `json:"address"`
	City         string  `json:"city"`
	Price        float64 `json:"price"`
	Bedrooms     int     `json:"numberOfBedrooms"`
	Bathrooms    int     `json:"numberOfBathrooms"`
	LandSize     float64 `json:"landSize"`
	PropertyType string  `json:"propertyType"`
	Image        string  `json:"image"`
}

func (r createHomeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Address, validation.Required),
		validation.Field(&r.City, validation.Required),
		validation.Field(&r.Price, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&r.Bedrooms, validation.Required, validation.Min(1)),
		validation.Field(&r.Bathrooms, validation.Required, validation.Min(1)),
		validation.Field(&r.LandSize, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&r.PropertyType, validation.Required, validation.By(func(v any) error {
			_, err := models.ParsePropertyType(v.(string))
			return err
		})),
	)
}

// GET /api/homes
func (h *HomeHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qv := r.URL.Query()
		f := repository.HomeFilter{
			City:   qv.Get("city"),
			Limit:  utils.QueryInt(qv, "limit", 50),
			Offset: utils.QueryInt(qv, "offset", 0),
		}
		if v, ok := utils.QueryFloat(qv, "minPrice"); ok {
			f.MinPrice = &v
		}
		if v, ok := utils.QueryFloat(qv, "maxPrice"); ok {
			f.MaxPrice = &v
		}
		if pt := qv.Get("propertyType"); pt != "" {
			parsed, err := models.ParsePropertyType(pt)
			if err != nil {
				utils.Error(w, http.StatusBadRequest, err.Error())
				return
			}
			f.PropertyType = parsed
		}

		items, err := h.svc.List(r.Context(), f)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, items)
	}
}

// GET /api/homes/{id}
func (h *HomeHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		home, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			homeError(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, home)
	}
}

// POST /api/homes (REALTOR)
func (h *HomeHTTP) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in createHomeRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := in.Validate(); err != nil {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		uid, _ := utils.GetString(r.Context(), middleware.CtxUserID)
		pt, _ := models.ParsePropertyType(in.PropertyType)
		home, err := h.svc.Create(r.Context(), &models.Home{
			Address: in.Address, City: in.City, Price: in.Price,
			Bedrooms: in.Bedrooms, Bathrooms: in.Bathrooms,
			LandSize: in.LandSize, PropertyType: pt, Image: in.Image,
		}, uid)
		if err != nil {
			homeError(w, err)
			return
		}
		utils.JSON(w, http.StatusCreated, home)
	}
}

// PUT /api/homes/{id} (REALTOR, owner)
func (h *HomeHTTP) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.HomeUpdate
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if in.PropertyType != nil {
			if _, err := models.ParsePropertyType(string(*in.PropertyType)); err != nil {
				utils.Error(w, http.StatusBadRequest, err.Error())
				return
			}
		}

		uid, _ := utils.GetString(r.Context(), middleware.CtxUserID)
		home, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), in, uid)
		if err != nil {
			homeError(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, home)
	}
}

// DELETE /api/homes/{id} (REALTOR, owner)
func (h *HomeHTTP) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := utils.GetString(r.Context(), middleware.CtxUserID)
		if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"), uid); err != nil {
			homeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// POST /api/homes/{id}/inquire (BUYER)
func (h *HomeHTTP) Inquire() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := validation.Validate(in.Message, validation.Required); err != nil {
			utils.Error(w, http.StatusBadRequest, "message is required")
			return
		}

		uid, _ := utils.GetString(r.Context(), middleware.CtxUserID)
		m, err := h.svc.Inquire(r.Context(), chi.URLParam(r, "id"), uid, in.Message)
		if err != nil {
			homeError(w, err)
			return
		}
		utils.JSON(w, http.StatusCreated, m)
	}
}

// GET /api/homes/{id}/messages (REALTOR, owner)
func (h *HomeHTTP) Messages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := utils.GetString(r.Context(), middleware.CtxUserID)
		msgs, err := h.svc.Messages(r.Context(), chi.URLParam(r, "id"), uid)
		if err != nil {
			homeError(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, msgs)
	}
}
