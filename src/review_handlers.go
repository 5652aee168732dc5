package main

import (
	"log"
	"net/http"

	"scrimhub/src/storage"
	"scrimhub/src/types"

	"github.com/gin-gonic/gin"
)

func reviewHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/reviews", func(ctx *gin.Context) {
			var body types.CreateReviewRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetString("id")
			review, err := storage.CreateReview(userId, &body)
			if err != nil {
				log.Printf("Error creating review by user [%s]: %s\n", userId, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create review"})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": review})
		})
	return g
}
