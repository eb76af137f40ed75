// Package stub is an in-process stand-in for the vending platform's partner
// API, used by the e2e suite and for local development. It mimics the
// production envelopes (success/data for auth endpoints, status/data with a
// pagination block for paged ones) over fixture data.
package stub

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"partner-dashboard/internal/models"
)

// Config controls the stub's fixture account.
type Config struct {
	Email     string
	Password  string
	JWTSecret string
	PageSize  int
	TokenTTL  time.Duration
}

// ResetCode is the fixed one-time code accepted by the password-reset flow.
const ResetCode = "123456"

// Server holds the stub's mutable state behind one mutex.
type Server struct {
	cfg    Config
	engine *gin.Engine

	mu            sync.Mutex
	passwordHash  []byte
	partner       models.Partner
	notifications []models.Notification
	walletTxs     []models.WalletTransaction
	consumerTxs   []models.ConsumerTransaction
	analytics     models.DashboardAnalytics
	apiKey        string
	sandboxKey    string
	resetIssued   bool
}

// New builds a stub server with generated fixture data.
func New(cfg Config) (*Server, error) {
	if cfg.Email == "" {
		cfg.Email = "partner@example.com"
	}
	if cfg.Password == "" {
		cfg.Password = "vendtokens1"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "stub-dev-secret"
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	s := &Server{
		cfg:           cfg,
		passwordHash:  hash,
		partner:       fixturePartner(now),
		notifications: fixtureNotifications(now),
		walletTxs:     fixtureWalletTransactions(now),
		consumerTxs:   fixtureConsumerTransactions(now),
		analytics:     fixtureAnalytics(now),
		apiKey:        newKey("live"),
		sandboxKey:    newKey("sandbox"),
	}
	s.partner.Email = cfg.Email
	s.routes()
	return s, nil
}

// Handler returns the stub's HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

func newKey(prefix string) string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("pk_%s_%s", prefix, hex.EncodeToString(buf))
}

func (s *Server) routes() {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "ngrok-skip-browser-warning"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "partner-api-stub"})
	})

	r.POST("/partners/auth/login", s.login)
	r.POST("/partners/auth/password-request", s.passwordRequest)
	r.PUT("/partners/auth/password-reset", s.passwordReset)

	auth := r.Group("/partners", s.requireAuth)
	auth.GET("/profile", s.profile)
	auth.GET("/dashboard", s.dashboard)
	auth.GET("/notifications", s.listNotifications)
	auth.PUT("/notifications/open", s.markNotificationsRead)
	auth.GET("/wallet-transactions", s.walletTransactions)
	auth.GET("/consumer-transactions", s.consumerTransactions)
	auth.GET("/settings/api-key", s.getAPIKey(false))
	auth.POST("/settings/api-key", s.rotateAPIKey(false))
	auth.GET("/settings/api-key/sandbox", s.getAPIKey(true))
	auth.POST("/settings/api-key/sandbox", s.rotateAPIKey(true))
	auth.POST("/settings/change-password", s.changePassword)

	s.engine = r
}

func (s *Server) issueToken() (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   s.cfg.Email,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.TokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}

func (s *Server) requireAuth(c *gin.Context) {
	const prefix = "Bearer "
	header := c.GetHeader("Authorization")
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization token missing"})
		return
	}
	_, err := jwt.ParseWithClaims(header[len(prefix):], &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
		return
	}
	c.Next()
}

func (s *Server) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if req.Email != s.cfg.Email || bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	token, err := s.issueToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not issue token"})
		return
	}
	partner := s.partner
	partner.Authorization = &models.Authorization{Token: token, ExpiresIn: int(s.cfg.TokenTTL.Seconds())}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful", "data": partner})
}

func (s *Server) profile(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	partner := s.partner
	partner.NotificationCount = s.unreadCountLocked()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile fetched", "data": partner})
}

func (s *Server) unreadCountLocked() int {
	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

func (s *Server) dashboard(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Analytics fetched", "data": s.analytics})
}

// paginate slices [lo, hi) out of a list of n items and builds the
// pagination envelope. Pages out of range yield an empty slice.
func paginate(n, page, pageSize int) (lo, hi int, p models.Pagination) {
	if page < 1 {
		page = 1
	}
	pageTotal := (n + pageSize - 1) / pageSize
	if pageTotal < 1 {
		pageTotal = 1
	}
	lo = (page - 1) * pageSize
	if lo > n {
		lo = n
	}
	hi = lo + pageSize
	if hi > n {
		hi = n
	}
	p = models.Pagination{CurrentPage: page, PageTotal: pageTotal, PageSize: pageSize}
	if page > 1 {
		prev := page - 1
		p.PrevPage = &prev
	}
	if page < pageTotal {
		next := page + 1
		p.NextPage = &next
	}
	return lo, hi, p
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (s *Server) listNotifications(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lo, hi, p := paginate(len(s.notifications), pageParam(c), s.cfg.PageSize)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Notifications fetched",
		"data": gin.H{
			"total":         len(s.notifications),
			"pagination":    p,
			"notifications": s.notifications[lo:hi],
		},
	})
}

func (s *Server) markNotificationsRead(c *gin.Context) {
	var req struct {
		NotificationIDs []int `json:"notificationIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range req.NotificationIDs {
		for i := range s.notifications {
			if s.notifications[i].ID == id {
				s.notifications[i].Read = true
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (s *Server) walletTransactions(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lo, hi, p := paginate(len(s.walletTxs), pageParam(c), s.cfg.PageSize)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Wallet transactions fetched",
		"data": gin.H{
			"total":        len(s.walletTxs),
			"pagination":   p,
			"transactions": s.walletTxs[lo:hi],
		},
	})
}

func (s *Server) consumerTransactions(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lo, hi, p := paginate(len(s.consumerTxs), pageParam(c), s.cfg.PageSize)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Consumer transactions fetched",
		"data": gin.H{
			"total":        len(s.consumerTxs),
			"pagination":   p,
			"transactions": s.consumerTxs[lo:hi],
		},
	})
}

func (s *Server) getAPIKey(sandbox bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		key := s.apiKey
		if sandbox {
			key = s.sandboxKey
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "API key fetched", "data": gin.H{"apiKey": key}})
	}
}

func (s *Server) rotateAPIKey(sandbox bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		var key string
		if sandbox {
			s.sandboxKey = newKey("sandbox")
			key = s.sandboxKey
		} else {
			s.apiKey = newKey("live")
			key = s.apiKey
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "API key generated", "data": gin.H{"apiKey": key}})
	}
}

func (s *Server) changePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if len(req.NewPassword) < 8 || req.NewPassword != req.ConfirmPassword {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Passwords do not match or are too short"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.CurrentPassword)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Current password is incorrect"})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update password"})
		return
	}
	s.passwordHash = hash
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed successfully"})
}

func (s *Server) passwordRequest(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if req.Email != s.cfg.Email {
		// Same response either way so the stub does not leak which
		// addresses exist, like the real backend.
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "A reset code has been sent if the account exists"})
		return
	}
	s.resetIssued = true
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "A reset code has been sent if the account exists"})
}

func (s *Server) passwordReset(c *gin.Context) {
	var req struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.resetIssued || req.Token != ResetCode {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired reset code"})
		return
	}
	if len(req.Password) < 8 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Password must be at least 8 characters"})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update password"})
		return
	}
	s.passwordHash = hash
	s.resetIssued = false
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successful", "data": gin.H{"email": s.cfg.Email}})
}
