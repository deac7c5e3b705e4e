package middleware

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akshayraj/perks-portal/api/config"
	logger "github.com/akshayraj/perks-portal/api/logging"
	"github.com/akshayraj/perks-portal/api/model"
	helper_util "github.com/akshayraj/perks-portal/api/util/helper"
)

type JSONWebKey struct {
	Kty string `json:"kty"`
	E   string `json:"e"`
	Use string `json:"use"`
	Kid string `json:"kid"`
	Alg string `json:"alg"`
	N   string `json:"n"`
}

type Jwks struct {
	Keys []JSONWebKey `json:"keys"`
}

// IdentityClaims are the claims the portal's auth provider puts in its tokens.
// Domains carries the user's verified work-email domains; the email domain is
// folded in as a fallback for providers that don't emit the claim.
type IdentityClaims struct {
	jwt.StandardClaims
	Email         string   `json:"email"`
	EmailVerified bool     `json:"email_verified"`
	Domains       []string `json:"domains"`
}

// GetAuthPublicKey fetches the RSA public key from the auth provider's JWKS endpoint
func GetAuthPublicKey(jwksURL string) (*rsa.PublicKey, error) {
	resp, err := http.Get(jwksURL)
	if err != nil {
		logger.Error("Failed to fetch JWKS", zap.Error(err), zap.String("url", jwksURL))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK HTTP status from JWKS endpoint: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var jwks Jwks
	if err := json.Unmarshal(body, &jwks); err != nil {
		return nil, err
	}
	if len(jwks.Keys) == 0 {
		return nil, fmt.Errorf("no keys found in JWKS")
	}

	key := jwks.Keys[0] // Assuming the first key is the one needed; consider more robust selection mechanisms
	nBytes, err := base64.RawURLEncoding.DecodeString(key.N)
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(key.E)
	if err != nil {
		return nil, err
	}

	n := new(big.Int).SetBytes(nBytes)
	e := new(big.Int).SetBytes(eBytes).Int64()

	return &rsa.PublicKey{N: n, E: int(e)}, nil
}

// IdentityMiddleware resolves the bearer token into a model.UserIdentity and
// stores it on the context. Connected domains are lowercased and stripped of
// personal-email providers before anything downstream sees them.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := parseIdentityToken(tokenString)
		if err != nil {
			logger.Error("Error parsing token", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		user := model.UserIdentity{
			ID:               claims.Subject,
			Email:            strings.ToLower(claims.Email),
			IsAdmin:          isAdminUser(claims),
			ConnectedDomains: connectedDomains(claims),
		}

		c.Set("userIdentity", user)
		c.Next()
	}
}

func parseIdentityToken(tokenString string) (*IdentityClaims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	key, err := GetAuthPublicKey(config.GetString("auth.jwksURL"))
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*IdentityClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token or wrong claims type")
}

// connectedDomains collects the user's verified work-email domains in the
// order the identity provider supplied them.
func connectedDomains(claims *IdentityClaims) []string {
	personal := config.GetStringSlice("personalEmail.domains")

	domains := []string{}
	seen := map[string]struct{}{}
	add := func(domain string) {
		domain = strings.ToLower(strings.TrimSpace(domain))
		if domain == "" {
			return
		}
		if helper_util.IsPersonalEmailDomain(domain, personal) {
			return
		}
		if _, ok := seen[domain]; ok {
			return
		}
		seen[domain] = struct{}{}
		domains = append(domains, domain)
	}

	for _, domain := range claims.Domains {
		add(domain)
	}
	if claims.EmailVerified {
		add(helper_util.ExtractEmailDomain(claims.Email))
	}
	return domains
}

// isAdminUser checks the configured admin allowlists. When neither an email
// nor a domain allowlist is configured, every authenticated user is treated
// as admin; that is a deliberate development-mode convenience, so production
// deployments must set at least one of the lists.
func isAdminUser(claims *IdentityClaims) bool {
	adminEmails := config.GetStringSlice("admin.emails")
	adminDomains := config.GetStringSlice("admin.domains")

	if len(adminEmails) == 0 && len(adminDomains) == 0 {
		return true
	}

	email := strings.ToLower(claims.Email)
	for _, allowed := range adminEmails {
		if email == strings.ToLower(allowed) {
			return true
		}
	}

	domain := helper_util.ExtractEmailDomain(email)
	for _, allowed := range adminDomains {
		if domain == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}
