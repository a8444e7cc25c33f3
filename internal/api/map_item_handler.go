package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/hexrealm/internal/repository"
	"github.com/wfunc/hexrealm/internal/service"
)

// MapItemHandler 地图物品处理器
type MapItemHandler struct {
	mapItemService service.MapItemService
}

// NewMapItemHandler 创建地图物品处理器
func NewMapItemHandler(mapItemService service.MapItemService) *MapItemHandler {
	return &MapItemHandler{mapItemService: mapItemService}
}

// List 地图物品列表
// @Summary 地图物品列表
// @Tags Map Items
// @Produce json
// @Param game query int false "游戏ID"
// @Param is_available query bool false "是否可拾取"
// @Param q query int false "q 坐标"
// @Param r query int false "r 坐标"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {array} models.MapItem
// @Router /api/v1/map-items [get]
func (h *MapItemHandler) List(c *gin.Context) {
	q := newQueryParser(c)
	filter := repository.MapItemFilter{
		GameID:    q.uintParam("game"),
		Available: q.boolPtr("is_available"),
		CoordFilter: repository.CoordFilter{
			Q: q.intPtr("q"),
			R: q.intPtr("r"),
		},
	}
	p := q.pagination()
	if !q.ok() {
		return
	}

	items, err := h.mapItemService.List(c.Request.Context(), filter, p)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, p)
}

// Create 放置地图物品
// @Summary 放置地图物品
// @Tags Map Items
// @Accept json
// @Produce json
// @Param request body service.CreateMapItemRequest true "物品参数"
// @Success 201 {object} models.MapItem
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/map-items [post]
func (h *MapItemHandler) Create(c *gin.Context) {
	var req service.CreateMapItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.mapItemService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Get 地图物品详情
// @Summary 地图物品详情
// @Tags Map Items
// @Produce json
// @Param id path int true "地图物品ID"
// @Success 200 {object} models.MapItem
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/map-items/{id} [get]
func (h *MapItemHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.mapItemService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Update 更新地图物品
// @Summary 更新地图物品
// @Tags Map Items
// @Accept json
// @Produce json
// @Param id path int true "地图物品ID"
// @Param request body service.UpdateMapItemRequest true "更新字段"
// @Success 200 {object} models.MapItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/map-items/{id} [patch]
func (h *MapItemHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.UpdateMapItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.mapItemService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete 删除地图物品
// @Summary 删除地图物品
// @Tags Map Items
// @Param id path int true "地图物品ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/map-items/{id} [delete]
func (h *MapItemHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.mapItemService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
