package usecase

import (
	"context"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AddressUsecase struct {
	addressRepo repo.AddressRepository
}

// DI
func NewAddressUsecase(addressRepo repo.AddressRepository) *AddressUsecase {
	return &AddressUsecase{addressRepo: addressRepo}
}

type CreateAddressInput struct {
	Name        string
	Phone       string
	AddressLine string
	City        string
	State       string
	Pincode     string
	IsDefault   bool
	AddressType string
}

func (u *AddressUsecase) ListMyAddresses(ctx context.Context, userID int64) ([]model.Address, error) {
	addresses, err := u.addressRepo.ListByUserID(ctx, userID)
	if err != nil {
		return []model.Address{}, newInternalError()
	}
	return addresses, nil
}

func (u *AddressUsecase) CreateAddress(ctx context.Context, userID int64, in CreateAddressInput) (model.Address, error) {
	//必須チェック
	if strings.TrimSpace(in.Name) == "" {
		return model.Address{}, newValidationError("Name is required")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return model.Address{}, newValidationError("Phone is required")
	}
	if strings.TrimSpace(in.AddressLine) == "" {
		return model.Address{}, newValidationError("Address line is required")
	}
	if strings.TrimSpace(in.City) == "" {
		return model.Address{}, newValidationError("City is required")
	}
	if strings.TrimSpace(in.State) == "" {
		return model.Address{}, newValidationError("State is required")
	}
	if strings.TrimSpace(in.Pincode) == "" {
		return model.Address{}, newValidationError("Pincode is required")
	}

	addressType := strings.TrimSpace(in.AddressType)
	if addressType == "" {
		addressType = "HOME"
	}

	a, err := u.addressRepo.Create(ctx, model.Address{
		UserID:      userID,
		Name:        strings.TrimSpace(in.Name),
		Phone:       strings.TrimSpace(in.Phone),
		AddressLine: strings.TrimSpace(in.AddressLine),
		City:        strings.TrimSpace(in.City),
		State:       strings.TrimSpace(in.State),
		Pincode:     strings.TrimSpace(in.Pincode),
		IsDefault:   in.IsDefault,
		AddressType: addressType,
	})
	if err != nil {
		return model.Address{}, newInternalError()
	}
	return a, nil
}
