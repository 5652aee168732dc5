package middlewares

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"scrimhub/src/config"
	"scrimhub/src/db"
	"scrimhub/src/models"
	"scrimhub/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

func AuthMiddleware(ctx *gin.Context) {
	bearerToken := ctx.Request.Header.Get("Authorization")
	if !strings.HasPrefix(bearerToken, "Bearer") {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	reqToken := strings.Split(bearerToken, " ")[1]
	if reqToken == "" {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(reqToken, claims, func(t *jwt.Token) (any, error) {
		return config.JWTSecret(), nil
	})
	if err != nil {
		log.Printf("token error: %s\n", err.Error())
		if errors.Is(err, jwt.ErrSignatureInvalid) || errors.Is(err, jwt.ErrTokenMalformed) {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		ctx.AbortWithError(http.StatusUnauthorized, err)
		return
	}
	if !tkn.Valid || claims.Subject == "" {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var user models.User
	if err := db.GetDb().
		Model(&models.User{}).
		Where(&models.User{ID: claims.Subject}).
		First(&user).
		Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error retrieving user [%s]: %s\n", claims.Subject, err.Error())
		}
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ctx.Set("id", user.ID)
	ctx.Set("email", claims.Email)
	ctx.Set("sid", claims.ID)
}
