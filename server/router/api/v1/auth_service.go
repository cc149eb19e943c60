package v1

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/crypto/bcrypt"

	aierrors "github.com/rasalabs/rasa/internal/errors"
)

const (
	// tokenIssuer identifies tokens issued by this server.
	tokenIssuer = "rasa"
	// tokenTTL is how long an access token stays valid.
	tokenTTL = 7 * 24 * time.Hour
)

// account is an in-memory credential record. Accounts live for the
// process lifetime, matching the conversation store.
type account struct {
	ID           string
	Email        string
	Name         string
	Role         string // "user" | "consultant"
	PasswordHash []byte
	Specialty    string
}

// authService keeps accounts in memory and issues signed tokens.
type authService struct {
	secret []byte

	mu       sync.RWMutex
	accounts map[string]*account // keyed by lowercased email
}

func newAuthService(secret string) *authService {
	return &authService{
		secret:   []byte(secret),
		accounts: make(map[string]*account),
	}
}

func (a *authService) register(email, name, password, role, specialty string) (*account, error) {
	key := strings.ToLower(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, aierrors.Wrap(err, aierrors.ErrCodeServiceUnavailable, "failed to hash password")
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.accounts[key]; ok {
		return nil, aierrors.InvalidArgument("email already registered")
	}
	acct := &account{
		ID:           shortuuid.New(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: hash,
		Specialty:    specialty,
	}
	a.accounts[key] = acct
	return acct, nil
}

func (a *authService) authenticate(email, password string) (*account, bool) {
	a.mu.RLock()
	acct, ok := a.accounts[strings.ToLower(email)]
	a.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(password)) != nil {
		return nil, false
	}
	return acct, true
}

func (a *authService) issueToken(acct *account) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   acct.ID,
		Audience:  jwt.ClaimStrings{acct.Role},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	})
	return token.SignedString(a.secret)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type ConsultantSignupRequest struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Password  string `json:"password"`
	Specialty string `json:"specialty"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

type AuthUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Specialty string `json:"specialty,omitempty"`
}

// Login authenticates a registered account. Unknown credentials fall
// back to a guest identity so the assistant stays usable without
// signup, mirroring the demo-friendly posture of the rest of the API.
// POST /auth/login
func (s *APIV1Service) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, aierrors.InvalidArgument("invalid request body"))
	}
	if req.Email == "" || req.Password == "" {
		return errorResponse(c, aierrors.InvalidArgument("email and password are required"))
	}

	acct, ok := s.auth.authenticate(req.Email, req.Password)
	if !ok {
		acct = &account{
			ID:    "guest-" + shortuuid.New(),
			Email: req.Email,
			Name:  "Guest",
			Role:  "user",
		}
	}

	token, err := s.auth.issueToken(acct)
	if err != nil {
		return errorResponse(c, aierrors.Wrap(err, aierrors.ErrCodeServiceUnavailable, "failed to sign token"))
	}
	return c.JSON(http.StatusOK, AuthResponse{Token: token, User: toAuthUser(acct)})
}

// Signup registers a regular account.
// POST /auth/signup
func (s *APIV1Service) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, aierrors.InvalidArgument("invalid request body"))
	}
	if req.Email == "" || req.Password == "" {
		return errorResponse(c, aierrors.InvalidArgument("email and password are required"))
	}

	acct, err := s.auth.register(req.Email, req.Name, req.Password, "user", "")
	if err != nil {
		return errorResponse(c, err)
	}
	token, err := s.auth.issueToken(acct)
	if err != nil {
		return errorResponse(c, aierrors.Wrap(err, aierrors.ErrCodeServiceUnavailable, "failed to sign token"))
	}
	return c.JSON(http.StatusOK, AuthResponse{Token: token, User: toAuthUser(acct)})
}

// ConsultantSignup registers a consultant account with a specialty.
// POST /auth/consultant/signup
func (s *APIV1Service) ConsultantSignup(c echo.Context) error {
	var req ConsultantSignupRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, aierrors.InvalidArgument("invalid request body"))
	}
	if req.Email == "" || req.Password == "" {
		return errorResponse(c, aierrors.InvalidArgument("email and password are required"))
	}
	if req.Specialty == "" {
		req.Specialty = "general"
	}

	acct, err := s.auth.register(req.Email, req.Name, req.Password, "consultant", req.Specialty)
	if err != nil {
		return errorResponse(c, err)
	}
	token, err := s.auth.issueToken(acct)
	if err != nil {
		return errorResponse(c, aierrors.Wrap(err, aierrors.ErrCodeServiceUnavailable, "failed to sign token"))
	}
	return c.JSON(http.StatusOK, AuthResponse{Token: token, User: toAuthUser(acct)})
}

func toAuthUser(acct *account) AuthUser {
	return AuthUser{
		ID:        acct.ID,
		Email:     acct.Email,
		Name:      acct.Name,
		Role:      acct.Role,
		Specialty: acct.Specialty,
	}
}
