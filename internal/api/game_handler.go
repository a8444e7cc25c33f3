package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/hexrealm/internal/repository"
	"github.com/wfunc/hexrealm/internal/rules"
	"github.com/wfunc/hexrealm/internal/service"
)

// GameHandler 游戏处理器
type GameHandler struct {
	gameService service.GameService
}

// NewGameHandler 创建游戏处理器
func NewGameHandler(gameService service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// List 游戏列表
// @Summary 游戏列表
// @Tags Games
// @Produce json
// @Param status query string false "状态过滤"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {array} models.Game
// @Router /api/v1/games [get]
func (h *GameHandler) List(c *gin.Context) {
	q := newQueryParser(c)
	p := q.pagination()
	if !q.ok() {
		return
	}

	games, err := h.gameService.List(c.Request.Context(), repository.GameFilter{Status: c.Query("status")}, p)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, games, p)
}

// Create 创建游戏
// @Summary 创建游戏
// @Tags Games
// @Accept json
// @Produce json
// @Param request body service.CreateGameRequest true "游戏参数"
// @Success 201 {object} models.Game
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/games [post]
func (h *GameHandler) Create(c *gin.Context) {
	var req service.CreateGameRequest
	if !bindJSON(c, &req) {
		return
	}

	game, err := h.gameService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, game)
}

// Get 游戏详情
// @Summary 游戏详情
// @Tags Games
// @Produce json
// @Param id path int true "游戏ID"
// @Success 200 {object} models.Game
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/games/{id} [get]
func (h *GameHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	game, err := h.gameService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// Update 更新游戏，PUT 与 PATCH 均为部分更新
// @Summary 更新游戏
// @Tags Games
// @Accept json
// @Produce json
// @Param id path int true "游戏ID"
// @Param request body service.UpdateGameRequest true "更新字段"
// @Success 200 {object} models.Game
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/games/{id} [patch]
func (h *GameHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.UpdateGameRequest
	if !bindJSON(c, &req) {
		return
	}

	game, err := h.gameService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// Delete 删除游戏及其全部数据
// @Summary 删除游戏
// @Tags Games
// @Param id path int true "游戏ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/games/{id} [delete]
func (h *GameHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.gameService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CurrentState 当前世界快照
// @Summary 当前世界快照
// @Tags Games
// @Produce json
// @Param id path int true "游戏ID"
// @Success 200 {object} models.WorldState
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/games/{id}/current_state [get]
func (h *GameHandler) CurrentState(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	state, err := h.gameService.CurrentState(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Start 开始游戏
// @Summary 开始游戏
// @Description 只能从 waiting 状态开始
// @Tags Games
// @Produce json
// @Param id path int true "游戏ID"
// @Success 200 {object} models.Game
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/games/{id}/start [post]
func (h *GameHandler) Start(c *gin.Context) {
	h.transition(c, rules.ActionStart)
}

// Pause 暂停游戏
// @Summary 暂停游戏
// @Tags Games
// @Produce json
// @Param id path int true "游戏ID"
// @Success 200 {object} models.Game
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/games/{id}/pause [post]
func (h *GameHandler) Pause(c *gin.Context) {
	h.transition(c, rules.ActionPause)
}

// Resume 恢复游戏
// @Summary 恢复游戏
// @Tags Games
// @Produce json
// @Param id path int true "游戏ID"
// @Success 200 {object} models.Game
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/games/{id}/resume [post]
func (h *GameHandler) Resume(c *gin.Context) {
	h.transition(c, rules.ActionResume)
}

// Finish 结束游戏
// @Summary 结束游戏
// @Tags Games
// @Produce json
// @Param id path int true "游戏ID"
// @Success 200 {object} models.Game
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/games/{id}/finish [post]
func (h *GameHandler) Finish(c *gin.Context) {
	h.transition(c, rules.ActionFinish)
}

func (h *GameHandler) transition(c *gin.Context, action string) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	game, err := h.gameService.Transition(c.Request.Context(), id, action)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// AdvanceTick 推进回合
// @Summary 推进回合
// @Description 回合数加一并保存新回合的世界快照，游戏必须处于 active 状态
// @Tags Games
// @Produce json
// @Param id path int true "游戏ID"
// @Success 200 {object} service.TickResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/games/{id}/advance_tick [post]
func (h *GameHandler) AdvanceTick(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	result, err := h.gameService.AdvanceTick(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CaptureState 保存当前回合的世界快照
// @Summary 保存世界快照
// @Tags Games
// @Produce json
// @Param id path int true "游戏ID"
// @Success 201 {object} models.WorldState
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/games/{id}/capture_state [post]
func (h *GameHandler) CaptureState(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	state, err := h.gameService.CaptureState(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}
