package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/apperr"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/mailer"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/repository"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const msgInvalidCredentials = "Invalid credentials."

// AuthService จัดการ business logic ของการ signup/login/waitlist
type AuthService struct {
	userRepo     *repository.UserRepository
	waitlistRepo *repository.WaitlistRepository
	fx           effects

	jwtSecret  string
	jwtTTL     time.Duration
	adminEmail string // operator inbox for admin-notify mail
}

type AuthOptions struct {
	JWTSecret  string
	JWTTTL     time.Duration
	AdminEmail string
}

func NewAuthService(
	users *repository.UserRepository,
	waitlist *repository.WaitlistRepository,
	composer *mailer.Composer,
	notifier Notifier,
	events Publisher,
	opts AuthOptions,
) *AuthService {
	if opts.JWTTTL <= 0 {
		opts.JWTTTL = 24 * time.Hour
	}
	return &AuthService{
		userRepo:     users,
		waitlistRepo: waitlist,
		fx:           newEffects(composer, notifier, events),
		jwtSecret:    opts.JWTSecret,
		jwtTTL:       opts.JWTTTL,
		adminEmail:   opts.AdminEmail,
	}
}

type SignUpInput struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

// SignUp สร้าง user ใหม่ ถ้า email/phone ซ้ำจะได้ Conflict
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*entity.User, error) {
	fullName := strings.TrimSpace(in.FullName)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := strings.TrimSpace(in.PhoneNumber)
	if fullName == "" || email == "" || in.Password == "" || phone == "" {
		return nil, apperr.Validation("All fields are required")
	}

	role := entity.RoleUser
	if in.Role != "" {
		role = entity.Role(in.Role)
		if !role.Valid() {
			return nil, apperr.Validation("Role must be User or Admin")
		}
	}

	// ตรวจซ้ำ email/phone ใน query เดียว; email มาก่อน
	existing, err := s.userRepo.FindByEmailOrPhone(ctx, email, phone)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("lookup duplicates: %w", err))
	}
	if len(existing) > 0 {
		for _, u := range existing {
			if u.Email == email {
				return nil, apperr.Conflict("Email already exists")
			}
		}
		return nil, apperr.Conflict("Phone number already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("hash password: %w", err))
	}

	user := &entity.User{
		FullName:    fullName,
		Email:       email,
		PhoneNumber: phone,
		Password:    string(hashed),
		Role:        role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with another signup
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Email or phone number already exists")
		}
		return nil, apperr.Internal(fmt.Errorf("create user: %w", err))
	}

	m, err := s.fx.composer.Welcome(user.FullName, user.Email)
	s.fx.send("welcome", m, err)
	if role == entity.RoleAdmin && s.adminEmail != "" {
		m, err := s.fx.composer.AdminNotify(s.adminEmail, *user)
		s.fx.send("admin_notify", m, err)
	}
	s.fx.events.Publish(entity.Activity{
		Type:      entity.ActivityUser,
		Title:     "New user registered: " + user.FullName,
		Timestamp: user.CreatedAt,
	})

	return user, nil
}

// Login ตรวจสอบ user + สร้าง JWT
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, apperr.Validation("Email and password are required.")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.New(apperr.KindInvalidCredentials, msgInvalidCredentials)
		}
		return "", nil, apperr.Internal(fmt.Errorf("find user: %w", err))
	}

	// เทียบรหัสผ่าน
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.New(apperr.KindInvalidCredentials, msgInvalidCredentials)
	}

	// ออก token
	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Internal(fmt.Errorf("sign token: %w", err))
	}
	return token, user, nil
}

// Profile is the user behind a verified token.
func (s *AuthService) Profile(ctx context.Context, userID uint) (*entity.User, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err)
	}
	return u, nil
}

type WaitlistInput struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

func (s *AuthService) JoinWaitlist(ctx context.Context, in WaitlistInput) (*entity.WaitlistEntry, error) {
	entry := &entity.WaitlistEntry{
		FullName: strings.TrimSpace(in.FullName),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
	}
	if entry.FullName == "" || entry.Email == "" {
		return nil, apperr.Validation("Full name and email are required")
	}
	if p := strings.TrimSpace(in.PhoneNumber); p != "" {
		entry.PhoneNumber = &p
	}

	if err := s.waitlistRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("You are already on the waitlist")
		}
		return nil, apperr.Internal(fmt.Errorf("join waitlist: %w", err))
	}
	return entry, nil
}
