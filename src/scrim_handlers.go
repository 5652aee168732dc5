package main

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"scrimhub/src/storage"
	"scrimhub/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func scrimHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/scrims", func(ctx *gin.Context) {
			var body types.CreateScrimRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetString("id")
			owns, err := userOwnsTeam(userId, body.TeamID)
			if err != nil {
				log.Printf("Error verifying team ownership for user [%s]: %s\n", userId, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify team"})
				return
			}
			if !owns {
				ctx.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to create scrims for this team"})
				return
			}
			scrim, err := storage.CreateScrim(body.TeamID, &body)
			if err != nil {
				log.Printf("Error creating scrim for team [%s]: %s\n", body.TeamID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create scrim"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": scrim})
		}).
		POST("/scrims/:id/book", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.BookScrimRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetString("id")
			owns, err := userOwnsTeam(userId, body.TeamID)
			if err != nil {
				log.Printf("Error verifying team ownership for user [%s]: %s\n", userId, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify team"})
				return
			}
			if !owns {
				ctx.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to book scrims for this team"})
				return
			}
			if err := storage.BookScrim(params.ID, body.TeamID); err != nil {
				switch {
				case errors.Is(err, gorm.ErrRecordNotFound):
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Scrim not found"})
				case errors.Is(err, storage.ErrBookingConflict):
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				case errors.Is(err, storage.ErrOwnScrim):
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				default:
					log.Printf("Error booking scrim [%s]: %s\n", params.ID, err.Error())
					ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book scrim"})
				}
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Scrim booked successfully"})
		}).
		PATCH("/scrims/:id/status", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateScrimStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			scrim, err := storage.GetScrim(params.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Scrim not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch scrim"})
				return
			}
			userId := ctx.GetString("id")
			owns, err := userOwnsTeam(userId, scrim.HostTeamID)
			if err == nil && !owns && scrim.OpponentTeamID != nil {
				owns, err = userOwnsTeam(userId, *scrim.OpponentTeamID)
			}
			if err != nil {
				log.Printf("Error verifying team ownership for user [%s]: %s\n", userId, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify team"})
				return
			}
			if !owns {
				ctx.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this scrim"})
				return
			}
			if err := storage.UpdateScrimStatus(params.ID, *body.NewStatus); err != nil {
				if errors.Is(err, storage.ErrInvalidTransition) {
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
					return
				}
				log.Printf("Error updating status for scrim [%s]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update scrim status"})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}

func publicScrimHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/scrims", func(ctx *gin.Context) {
			filters := types.ScrimQueryFilters{
				Date:   ctx.Query("date"),
				Time:   ctx.Query("time"),
				Format: ctx.Query("format"),
				Region: ctx.Query("region"),
			}
			if maps := ctx.Query("maps"); maps != "" {
				filters.Maps = strings.Split(maps, ",")
			}
			if servers := ctx.Query("servers"); servers != "" {
				filters.Servers = strings.Split(servers, ",")
			}
			scrims, err := storage.GetAvailableScrims(&filters)
			if err != nil {
				log.Printf("Error fetching scrims: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to fetch scrims"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": scrims, "count": len(scrims)})
		})
	return g
}
