package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campus-parking/registration-api/internal/api/handler/v1/response"
	"github.com/campus-parking/registration-api/internal/domain"
	"github.com/campus-parking/registration-api/internal/pkg/jwthelper"
)

// ContextKeySessionID holds the verified admin session id on the gin
// context.
const ContextKeySessionID = "admin_session_id"

var errMissingToken = errors.New("authorization token is missing or malformed")

type SessionVerifier interface {
	VerifySession(ctx context.Context, sessionID string) (domain.AdminSession, error)
}

type Authenticator struct {
	signingKey []byte
	sessions   SessionVerifier
}

func NewAuthenticator(signingKey string, sessions SessionVerifier) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
		sessions:   sessions,
	}
}

// VerifyAdminSession checks the bearer token and confirms the session
// record it names is still present and structurally valid in storage.
func (a *Authenticator) VerifyAdminSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(jwthelper.ErrInvalidToken))

			return
		}

		if _, err = a.sessions.VerifySession(ctx.Request.Context(), claims.SessionID); err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))

			return
		}

		ctx.Set(ContextKeySessionID, claims.SessionID)
		ctx.Next()
	}
}
