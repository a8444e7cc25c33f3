package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/hexrealm/internal/repository"
	"github.com/wfunc/hexrealm/internal/service"
)

// WorldStateHandler 世界快照处理器（只读）
type WorldStateHandler struct {
	stateService service.WorldStateService
}

// NewWorldStateHandler 创建世界快照处理器
func NewWorldStateHandler(stateService service.WorldStateService) *WorldStateHandler {
	return &WorldStateHandler{stateService: stateService}
}

// List 世界快照列表
// @Summary 世界快照列表
// @Tags World States
// @Produce json
// @Param game query int false "游戏ID"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {array} models.WorldState
// @Router /api/v1/world-states [get]
func (h *WorldStateHandler) List(c *gin.Context) {
	q := newQueryParser(c)
	filter := repository.WorldStateFilter{GameID: q.uintParam("game")}
	p := q.pagination()
	if !q.ok() {
		return
	}

	states, err := h.stateService.List(c.Request.Context(), filter, p)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, states, p)
}

// Get 世界快照详情，包含解压后的快照内容
// @Summary 世界快照详情
// @Tags World States
// @Produce json
// @Param id path int true "快照ID"
// @Success 200 {object} models.WorldState
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/world-states/{id} [get]
func (h *WorldStateHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	state, err := h.stateService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
