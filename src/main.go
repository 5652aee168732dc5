package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path"
	"regexp"
	"strconv"
	"time"

	"scrimhub/src/boot"
	"scrimhub/src/config"
	"scrimhub/src/controllers"
	"scrimhub/src/db"
	"scrimhub/src/middlewares"
	"scrimhub/src/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

const (
	apiPrefix string = "/api"
)

// scrimDateValidatorFunc accepts only parseable timestamps that are still in
// the future; a scrim cannot be posted for a slot that already started.
var scrimDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	datetime, err := time.Parse(config.TIME_PARSE_FORMAT, date)
	if err != nil {
		return false
	}
	return time.Now().Before(datetime)
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		mm := os.Getenv("MAINTENANCE_MODE")
		atoi, err := strconv.ParseBool(mm)
		if err == nil && atoi {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, err.Error())
			return
		}
	})
	return g
}

func apiGroup(g *gin.Engine) *gin.RouterGroup {
	api := g.Group(apiPrefix)
	return api
}

func publicRoutes(g *gin.Engine) *gin.RouterGroup {
	api := apiGroup(g)
	publicTeamHandlers(api)
	publicScrimHandlers(api)
	return api
}

func guestAuthRoutes(g *gin.Engine) *gin.RouterGroup {
	api := apiGroup(g)
	guest := api.Group("/auth")
	guest.
		POST("/login", func(ctx *gin.Context) {
			token, status, err := controllers.AuthLogin(ctx)
			if err != nil {
				log.Printf("[AuthLogin] error: %s\n", err.Error())
				ctx.Status(status)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"token": token,
			})
		})
	return api
}

func authorizedRoutes(g *gin.Engine) *gin.RouterGroup {
	authorized := apiGroup(g)
	authorized.Use(middlewares.AuthMiddleware)
	authorized.
		GET("/auth/user", func(ctx *gin.Context) {
			userId := ctx.GetString("id")
			user, err := storage.GetUser(userId)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusUnauthorized)
					return
				}
				log.Printf("Error fetching user [%s]: %s\n", userId, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": user})
		}).
		POST("/auth/logout", func(ctx *gin.Context) {
			status, err := controllers.AuthLogout(ctx)
			if err != nil {
				log.Printf("[AuthLogout] error: %s\n", err.Error())
				ctx.Status(status)
				return
			}
			ctx.Status(status)
		})

	teamHandlers(authorized)
	scrimHandlers(authorized)
	reviewHandlers(authorized)
	return authorized
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}

	boot.InitDb()
	defer db.CloseDb()

	router := setupRouter()

	appHost := os.Getenv("APP_HOST")
	if apiEnv == "local" {
		router.Use(cors.Default())
	} else {
		cc := cors.DefaultConfig()
		cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "PUT", "DELETE", "HEAD")
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
		cc.AllowOriginFunc = func(origin string) bool {
			match, _ := regexp.MatchString(appHost, origin)
			return match
		}
		cc.AllowCredentials = true
		cc.AllowAllOrigins = false
		router.Use(cors.New(cc))
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("scrimdate", scrimDateValidatorFunc)
	}

	router = maintenanceModeMiddleware(router)

	publicRoutes(router)

	guestAuthRoutes(router)

	authorizedRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %s\n", err.Error())
	}
}
