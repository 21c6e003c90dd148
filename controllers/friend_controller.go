// File: /controllers/friend_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"friendlink-api/apperrors"
	"friendlink-api/services"
	"friendlink-api/utils"
)

type FriendController struct {
	friendService         *services.FriendService
	recommendationService *services.RecommendationService
}

func NewFriendController(friendService *services.FriendService, recommendationService *services.RecommendationService) *FriendController {
	return &FriendController{
		friendService:         friendService,
		recommendationService: recommendationService,
	}
}

type SendRequestBody struct {
	RecipientID string `json:"recipient_id" binding:"required"`
}

type SearchBody struct {
	Username string `json:"username"`
}

func (fc *FriendController) SendFriendRequest(c *gin.Context) {
	actorID := c.GetString("user_id")

	var body SendRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.SendError(c, http.StatusBadRequest, "recipient_id is required")
		return
	}

	request, err := fc.friendService.Send(actorID, body.RecipientID)
	if err != nil {
		utils.SendError(c, apperrors.HTTPStatus(err), err.Error())
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "Friend request sent successfully.", gin.H{
		"friendRequest": request,
	})
}

func (fc *FriendController) AcceptFriendRequest(c *gin.Context) {
	actorID := c.GetString("user_id")

	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	request, err := fc.friendService.Accept(actorID, requestID)
	if err != nil {
		utils.SendError(c, apperrors.HTTPStatus(err), err.Error())
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Friend request accepted", gin.H{
		"request": request,
	})
}

func (fc *FriendController) RejectFriendRequest(c *gin.Context) {
	actorID := c.GetString("user_id")

	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	request, err := fc.friendService.Reject(actorID, requestID)
	if err != nil {
		utils.SendError(c, apperrors.HTTPStatus(err), err.Error())
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Friend request rejected", gin.H{
		"request": request,
	})
}

func (fc *FriendController) CancelFriendRequest(c *gin.Context) {
	actorID := c.GetString("user_id")

	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	if err := fc.friendService.Cancel(actorID, requestID); err != nil {
		utils.SendError(c, apperrors.HTTPStatus(err), err.Error())
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Friend request cancelled", gin.H{
		"requestId": requestID,
	})
}

func (fc *FriendController) GetFriendRequests(c *gin.Context) {
	actorID := c.GetString("user_id")

	received, sent, err := fc.friendService.ListPending(actorID)
	if err != nil {
		utils.SendError(c, apperrors.HTTPStatus(err), err.Error())
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Pending friend requests retrieved successfully", gin.H{
		"receivedRequests": received,
		"sentRequests":     sent,
	})
}

func (fc *FriendController) GetFriendsList(c *gin.Context) {
	actorID := c.GetString("user_id")

	friends, err := fc.friendService.ListFriends(actorID)
	if err != nil {
		utils.SendError(c, apperrors.HTTPStatus(err), err.Error())
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Friends list retrieved successfully", gin.H{
		"friends": friends,
	})
}

func (fc *FriendController) GetRecommendations(c *gin.Context) {
	actorID := c.GetString("user_id")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", ""))
	if err != nil {
		limit = services.DefaultRecommendationLimit
	}

	recommendations, err := fc.recommendationService.Recommend(actorID, limit)
	if err != nil {
		utils.SendError(c, apperrors.HTTPStatus(err), err.Error())
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Friend recommendations retrieved successfully", gin.H{
		"recommendations": recommendations,
	})
}

func (fc *FriendController) SearchUsers(c *gin.Context) {
	actorID := c.GetString("user_id")

	var body SearchBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Search query is required")
		return
	}

	users, err := fc.friendService.SearchUsers(actorID, body.Username)
	if err != nil {
		utils.SendError(c, apperrors.HTTPStatus(err), err.Error())
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Users retrieved successfully", gin.H{
		"users": users,
	})
}

func parseRequestID(c *gin.Context) (uint, bool) {
	requestID, err := strconv.ParseUint(c.Param("requestId"), 10, 32)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request ID")
		return 0, false
	}
	return uint(requestID), true
}
