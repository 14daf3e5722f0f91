package customorder

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/aman52kwah/kaynetartsphere/internal/cloudinary"
	"github.com/aman52kwah/kaynetartsphere/internal/pkg/apperror"
)

var ErrInvalidUrgency = apperror.New(apperror.CodeInvalidInput, "Unknown urgency option", http.StatusBadRequest)

//go:generate mockgen -source=customorder_service.go -destination=../mock/customorder/customorder_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, userID string) (DraftResponse, error)
	Update(ctx context.Context, userID string, req DraftRequest) (DraftResponse, error)
	Advance(ctx context.Context, userID string, req DraftRequest) (DraftResponse, error)
	Back(ctx context.Context, userID string) (DraftResponse, error)
	UploadReferenceImage(ctx context.Context, userID string, file multipart.File, filename string) (DraftResponse, error)
	Discard(ctx context.Context, userID string) error
}

type service struct {
	store      DraftStore
	cloudinary cloudinary.Service
}

func NewService(store DraftStore, cld cloudinary.Service) Service {
	return &service{store: store, cloudinary: cld}
}

func (s *service) load(ctx context.Context, userID string) (Draft, error) {
	d, ok, err := s.store.Load(ctx, userID)
	if err != nil {
		return Draft{}, err
	}
	if !ok {
		d = NewDraft()
	}
	return d, nil
}

func (s *service) Get(ctx context.Context, userID string) (DraftResponse, error) {
	d, err := s.load(ctx, userID)
	if err != nil {
		return DraftResponse{}, err
	}
	return toDraftResponse(d), nil
}

func (s *service) Update(ctx context.Context, userID string, req DraftRequest) (DraftResponse, error) {
	d, err := s.load(ctx, userID)
	if err != nil {
		return DraftResponse{}, err
	}

	if err := apply(&d, req); err != nil {
		return DraftResponse{}, err
	}
	if err := s.store.Save(ctx, userID, d); err != nil {
		return DraftResponse{}, err
	}
	return toDraftResponse(d), nil
}

// Advance merges the submitted fields and then runs the current step's
// validation. On failure the draft keeps the merged values but stays on
// the step, so nothing the user typed is dropped.
func (s *service) Advance(ctx context.Context, userID string, req DraftRequest) (DraftResponse, error) {
	d, err := s.load(ctx, userID)
	if err != nil {
		return DraftResponse{}, err
	}

	if err := apply(&d, req); err != nil {
		return DraftResponse{}, err
	}

	stepErr := d.Advance()

	if err := s.store.Save(ctx, userID, d); err != nil {
		return DraftResponse{}, err
	}
	if stepErr != nil {
		return DraftResponse{}, stepErr
	}
	return toDraftResponse(d), nil
}

func (s *service) Back(ctx context.Context, userID string) (DraftResponse, error) {
	d, err := s.load(ctx, userID)
	if err != nil {
		return DraftResponse{}, err
	}

	d.Back()

	if err := s.store.Save(ctx, userID, d); err != nil {
		return DraftResponse{}, err
	}
	return toDraftResponse(d), nil
}

// UploadReferenceImage attaches an optional inspiration photo. A nil
// file is accepted and leaves the draft unchanged.
func (s *service) UploadReferenceImage(ctx context.Context, userID string, file multipart.File, filename string) (DraftResponse, error) {
	d, err := s.load(ctx, userID)
	if err != nil {
		return DraftResponse{}, err
	}

	if file != nil {
		url, err := s.cloudinary.UploadImage(ctx, file, filename)
		if err != nil {
			return DraftResponse{}, apperror.New(apperror.CodeGateway, "Failed to upload reference image", http.StatusBadGateway).WithCause(err)
		}
		d.ReferenceImageURL = url
		if err := s.store.Save(ctx, userID, d); err != nil {
			return DraftResponse{}, err
		}
	}
	return toDraftResponse(d), nil
}

func (s *service) Discard(ctx context.Context, userID string) error {
	return s.store.Discard(ctx, userID)
}

func apply(d *Draft, req DraftRequest) error {
	setString(&d.FullName, req.FullName)
	setString(&d.Email, req.Email)
	setString(&d.Phone, req.Phone)
	setString(&d.GarmentType, req.GarmentType)
	setString(&d.StyleDescription, req.StyleDescription)
	setString(&d.Occasion, req.Occasion)
	setString(&d.FabricType, req.FabricType)
	setString(&d.FabricColor, req.FabricColor)
	setString(&d.DesignDetails, req.DesignDetails)
	setString(&d.SpecialRequests, req.SpecialRequests)

	if req.Measurements != nil {
		setString(&d.Measurements.Bust, req.Measurements.Bust)
		setString(&d.Measurements.Waist, req.Measurements.Waist)
		setString(&d.Measurements.Hips, req.Measurements.Hips)
		setString(&d.Measurements.Shoulder, req.Measurements.Shoulder)
		setString(&d.Measurements.Sleeves, req.Measurements.Sleeves)
		setString(&d.Measurements.Length, req.Measurements.Length)
	}

	if req.Urgency != nil {
		if _, ok := UrgencyCatalog[*req.Urgency]; !ok {
			return ErrInvalidUrgency
		}
		d.Urgency = *req.Urgency
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func toDraftResponse(d Draft) DraftResponse {
	total := Total(d.GarmentType, d.FabricType, d.Urgency)
	return DraftResponse{
		Step:              d.Step,
		Submitted:         d.Submitted(),
		FullName:          d.FullName,
		Email:             d.Email,
		Phone:             d.Phone,
		GarmentType:       d.GarmentType,
		StyleDescription:  d.StyleDescription,
		Occasion:          d.Occasion,
		Measurements:      d.Measurements,
		FabricType:        d.FabricType,
		FabricColor:       d.FabricColor,
		DesignDetails:     d.DesignDetails,
		ReferenceImageURL: d.ReferenceImageURL,
		Urgency:           d.Urgency,
		SpecialRequests:   d.SpecialRequests,
		Total:             total.InexactFloat64(),
		Deposit:           Deposit(total).InexactFloat64(),
	}
}
