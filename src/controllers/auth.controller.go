package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"scrimhub/src/config"
	"scrimhub/src/lib"
	"scrimhub/src/storage"
	"scrimhub/src/types"
	"scrimhub/src/utils"

	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ProviderClaims is the profile payload inside an identity-provider ID token.
type ProviderClaims struct {
	Email           *string `json:"email,omitempty"`
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
	jwtv5.RegisteredClaims
}

// AuthLogin exchanges a verified provider ID token for a session token. The
// user row is upserted from the token's profile claims on every login, so the
// local record tracks the identity provider.
func AuthLogin(ctx *gin.Context) (token *string, status int, err error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	claims := &ProviderClaims{}
	parsed, err := jwtv5.ParseWithClaims(body.IDToken, claims, func(t *jwtv5.Token) (any, error) {
		return config.ProviderSecret(), nil
	})
	if err != nil {
		log.Printf("Failed to verify ID token: %s\n", err.Error())
		return nil, http.StatusUnauthorized, err
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, http.StatusUnauthorized, fmt.Errorf("invalid ID token")
	}

	user, err := storage.UpsertUser(&types.UpsertUserData{
		ID:              claims.Subject,
		Email:           claims.Email,
		FirstName:       claims.FirstName,
		LastName:        claims.LastName,
		ProfileImageURL: claims.ProfileImageURL,
	})
	if err != nil {
		log.Printf("Error upserting user [%s]: %s\n", claims.Subject, err.Error())
		return nil, http.StatusInternalServerError, err
	}

	sid := uuid.NewString()
	expire := time.Now().Add(config.SESSION_TTL)
	if err := storage.CreateSession(sid, types.JSONB{
		"user_id":   user.ID,
		"issued_at": time.Now().UnixMilli(),
	}, expire); err != nil {
		log.Printf("Error creating session for user [%s]: %s\n", user.ID, err.Error())
		return nil, http.StatusInternalServerError, err
	}

	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	jwt, err := utils.GenerateJWT(email, user.ID, sid)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	if rd := lib.GetRedisClient(); rd != nil {
		if err := rd.Set(context.Background(), fmt.Sprintf("%s:token", user.ID), jwt, config.SESSION_TTL).Err(); err != nil {
			log.Printf("[redis] Error caching session token: %s\n", err.Error())
		}
	}

	return &jwt, http.StatusOK, nil
}

// AuthLogout tears down the caller's session row and cache entry.
func AuthLogout(ctx *gin.Context) (status int, err error) {
	sid := ctx.GetString("sid")
	if sid == "" {
		return http.StatusBadRequest, fmt.Errorf("missing session id")
	}
	if err := storage.DeleteSession(sid); err != nil {
		log.Printf("Error deleting session [%s]: %s\n", sid, err.Error())
		return http.StatusInternalServerError, err
	}
	if rd := lib.GetRedisClient(); rd != nil {
		userID := ctx.GetString("id")
		if err := rd.Del(context.Background(), fmt.Sprintf("%s:token", userID)).Err(); err != nil {
			log.Printf("[redis] Error clearing session token: %s\n", err.Error())
		}
	}
	return http.StatusNoContent, nil
}
