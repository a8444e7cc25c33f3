package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/hexrealm/internal/repository"
	"github.com/wfunc/hexrealm/internal/service"
)

// InteractableHandler 交互对象处理器
type InteractableHandler struct {
	interactableService service.InteractableService
}

// NewInteractableHandler 创建交互对象处理器
func NewInteractableHandler(interactableService service.InteractableService) *InteractableHandler {
	return &InteractableHandler{interactableService: interactableService}
}

// List 交互对象列表
// @Summary 交互对象列表
// @Tags Interactables
// @Produce json
// @Param game query int false "游戏ID"
// @Param is_active query bool false "是否启用"
// @Param q query int false "q 坐标"
// @Param r query int false "r 坐标"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {array} models.Interactable
// @Router /api/v1/interactables [get]
func (h *InteractableHandler) List(c *gin.Context) {
	q := newQueryParser(c)
	filter := repository.InteractableFilter{
		GameID: q.uintParam("game"),
		Active: q.boolPtr("is_active"),
		CoordFilter: repository.CoordFilter{
			Q: q.intPtr("q"),
			R: q.intPtr("r"),
		},
	}
	p := q.pagination()
	if !q.ok() {
		return
	}

	list, err := h.interactableService.List(c.Request.Context(), filter, p)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, list, p)
}

// Create 创建交互对象
// @Summary 创建交互对象
// @Tags Interactables
// @Accept json
// @Produce json
// @Param request body service.CreateInteractableRequest true "交互对象参数"
// @Success 201 {object} models.Interactable
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/interactables [post]
func (h *InteractableHandler) Create(c *gin.Context) {
	var req service.CreateInteractableRequest
	if !bindJSON(c, &req) {
		return
	}

	it, err := h.interactableService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

// Get 交互对象详情
// @Summary 交互对象详情
// @Tags Interactables
// @Produce json
// @Param id path int true "交互对象ID"
// @Success 200 {object} models.Interactable
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/interactables/{id} [get]
func (h *InteractableHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	it, err := h.interactableService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// Update 更新交互对象
// @Summary 更新交互对象
// @Tags Interactables
// @Accept json
// @Produce json
// @Param id path int true "交互对象ID"
// @Param request body service.UpdateInteractableRequest true "更新字段"
// @Success 200 {object} models.Interactable
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/interactables/{id} [patch]
func (h *InteractableHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.UpdateInteractableRequest
	if !bindJSON(c, &req) {
		return
	}

	it, err := h.interactableService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// Delete 删除交互对象
// @Summary 删除交互对象
// @Tags Interactables
// @Param id path int true "交互对象ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/interactables/{id} [delete]
func (h *InteractableHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.interactableService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Interact 角色与交互对象交互
// @Summary 交互
// @Description 角色必须与交互对象处于同一地块，受使用次数与冷却限制
// @Tags Interactables
// @Accept json
// @Produce json
// @Param id path int true "交互对象ID"
// @Param request body service.InteractRequest true "角色ID"
// @Success 200 {object} models.Interactable
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/interactables/{id}/interact [post]
func (h *InteractableHandler) Interact(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.InteractRequest
	if !bindJSON(c, &req) {
		return
	}

	it, err := h.interactableService.Interact(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}
