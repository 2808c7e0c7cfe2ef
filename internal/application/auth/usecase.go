package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Creditos-api/internal/application/dto"
	"github.com/jhoicas/Creditos-api/internal/domain"
	"github.com/jhoicas/Creditos-api/internal/domain/entity"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
	"github.com/jhoicas/Creditos-api/pkg/jwt"
)

const statusActive = "active"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// RegistrationTx ejecuta el alta del comercio y su configuración inicial en una sola transacción.
type RegistrationTx interface {
	RunRegistration(ctx context.Context, fn func(
		merchants repository.MerchantRepository,
		settings repository.SettingsRepository,
	) error) error
}

// AuthUseCase casos de uso de autenticación: registro, login y datos del comercio.
type AuthUseCase struct {
	merchantRepo repository.MerchantRepository
	tx           RegistrationTx
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(merchantRepo repository.MerchantRepository, tx RegistrationTx, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{merchantRepo: merchantRepo, tx: tx, jwtCfg: jwtCfg}
}

// Register crea el comercio (password con bcrypt) y su store_settings por defecto (USD / $).
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.MerchantResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.merchantRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("buscar comercio por email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	merchant := &entity.Merchant{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		StoreName:    strings.TrimSpace(in.StoreName),
		Status:       statusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.tx.RunRegistration(ctx, func(merchants repository.MerchantRepository, settings repository.SettingsRepository) error {
		if err := merchants.Create(merchant); err != nil {
			return err
		}
		return settings.Upsert(ctx, &entity.StoreSettings{
			MerchantID:     merchant.ID,
			Currency:       entity.DefaultCurrencyCode,
			CurrencySymbol: entity.DefaultCurrencySymbol,
		})
	})
	if err != nil {
		return nil, err
	}
	return toMerchantResponse(merchant), nil
}

// Login verifica email/password, genera JWT y retorna token + comercio.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	merchant, err := uc.merchantRepo.FindByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(merchant.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if merchant.Status != statusActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, merchant.ID, merchant.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Merchant: *toMerchantResponse(merchant),
	}, nil
}

// Me devuelve iniciales y nombre del comercio autenticado.
func (uc *AuthUseCase) Me(merchantID string) (*dto.MeResponse, error) {
	merchant, err := uc.merchantRepo.GetByID(merchantID)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.MeResponse{
		ID:        merchant.ID,
		Email:     merchant.Email,
		Initials:  merchant.Initials(),
		FirstName: merchant.FirstName,
		StoreName: merchant.StoreName,
	}, nil
}

func toMerchantResponse(m *entity.Merchant) *dto.MerchantResponse {
	if m == nil {
		return nil
	}
	return &dto.MerchantResponse{
		ID:        m.ID,
		Email:     m.Email,
		FirstName: m.FirstName,
		StoreName: m.StoreName,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
