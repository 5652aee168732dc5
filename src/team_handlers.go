package main

import (
	"errors"
	"log"
	"net/http"

	"scrimhub/src/storage"
	"scrimhub/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func userOwnsTeam(userID string, teamID string) (bool, error) {
	teams, err := storage.GetUserTeams(userID)
	if err != nil {
		return false, err
	}
	for _, team := range teams {
		if team.ID == teamID {
			return true, nil
		}
	}
	return false, nil
}

func teamHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/teams", func(ctx *gin.Context) {
			var body types.CreateTeamRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetString("id")
			team, err := storage.CreateTeam(userId, &body)
			if err != nil {
				log.Printf("Error creating team for user [%s]: %s\n", userId, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create team"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": team})
		}).
		GET("/teams/user", func(ctx *gin.Context) {
			userId := ctx.GetString("id")
			teams, err := storage.GetUserTeams(userId)
			if err != nil {
				log.Printf("Error retrieving teams for user [%s]: %s\n", userId, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch teams"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": teams, "count": len(teams)})
		}).
		PATCH("/teams/:id/stats", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateTeamStatsRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			team, err := storage.GetTeam(params.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team"})
				return
			}
			if team.OwnerID != ctx.GetString("id") {
				ctx.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update stats for this team"})
				return
			}
			if err := storage.UpdateTeamStats(params.ID, &body); err != nil {
				log.Printf("Error updating stats for team [%s]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update team stats"})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		POST("/teams/:id/rating/recompute", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			team, err := storage.GetTeam(params.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team"})
				return
			}
			if team.OwnerID != ctx.GetString("id") {
				ctx.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to recompute rating for this team"})
				return
			}
			rating, err := storage.RecomputeTeamRating(params.ID)
			if err != nil {
				log.Printf("Error recomputing rating for team [%s]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute rating"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"rating": rating})
		})
	return g
}

func publicTeamHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/teams/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			team, err := storage.GetTeam(params.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
					return
				}
				log.Printf("Error fetching team [%s]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": team})
		}).
		GET("/teams/:id/reviews", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			reviews, err := storage.GetTeamReviews(params.ID)
			if err != nil {
				log.Printf("Error fetching reviews for team [%s]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reviews, "count": len(reviews)})
		})
	return g
}
