package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/hexrealm/internal/middleware"
	"github.com/wfunc/hexrealm/internal/repository"
	"github.com/wfunc/hexrealm/internal/service"
)

// PlayerHandler 玩家处理器
type PlayerHandler struct {
	playerService service.PlayerService
}

// NewPlayerHandler 创建玩家处理器
func NewPlayerHandler(playerService service.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// List 玩家列表
// @Summary 玩家列表
// @Tags Players
// @Produce json
// @Param game query int false "游戏ID"
// @Param user query int false "用户ID"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {array} models.Player
// @Router /api/v1/players [get]
func (h *PlayerHandler) List(c *gin.Context) {
	q := newQueryParser(c)
	filter := repository.PlayerFilter{
		GameID: q.uintParam("game"),
		UserID: q.uintParam("user"),
	}
	p := q.pagination()
	if !q.ok() {
		return
	}

	players, err := h.playerService.List(c.Request.Context(), filter, p)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, players, p)
}

// Join 以当前用户身份加入游戏
// @Summary 加入游戏
// @Tags Players
// @Security Bearer
// @Accept json
// @Produce json
// @Param request body service.JoinGameRequest true "玩家参数"
// @Success 201 {object} models.Player
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/players [post]
func (h *PlayerHandler) Join(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication credentials were not provided"})
		return
	}
	var req service.JoinGameRequest
	if !bindJSON(c, &req) {
		return
	}

	player, err := h.playerService.Join(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, player)
}

// Get 玩家详情
// @Summary 玩家详情
// @Tags Players
// @Produce json
// @Param id path int true "玩家ID"
// @Success 200 {object} models.Player
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{id} [get]
func (h *PlayerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	player, err := h.playerService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// Update 更新玩家
// @Summary 更新玩家
// @Tags Players
// @Accept json
// @Produce json
// @Param id path int true "玩家ID"
// @Param request body service.UpdatePlayerRequest true "更新字段"
// @Success 200 {object} models.Player
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{id} [patch]
func (h *PlayerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.UpdatePlayerRequest
	if !bindJSON(c, &req) {
		return
	}

	player, err := h.playerService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// Delete 删除玩家及其角色
// @Summary 删除玩家
// @Tags Players
// @Param id path int true "玩家ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{id} [delete]
func (h *PlayerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.playerService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
