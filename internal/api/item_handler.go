package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/hexrealm/internal/repository"
	"github.com/wfunc/hexrealm/internal/service"
)

// ItemHandler 物品目录处理器
type ItemHandler struct {
	itemService service.ItemService
}

// NewItemHandler 创建物品目录处理器
func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// itemFilter 解析物品过滤参数
func itemFilter(c *gin.Context, q *queryParser) repository.ItemFilter {
	return repository.ItemFilter{
		Type:        c.Query("type"),
		Rarity:      c.Query("rarity"),
		Category:    c.Query("category"),
		SubCategory: c.Query("sub_category"),
		IsActive:    q.boolPtr("is_active"),
		Search:      c.Query("search"),
	}
}

// List 物品列表，按名称排序
// @Summary 物品列表
// @Tags Items
// @Produce json
// @Param type query string false "类型"
// @Param rarity query string false "稀有度"
// @Param category query string false "分类"
// @Param sub_category query string false "子分类"
// @Param is_active query bool false "是否启用"
// @Param search query string false "名称搜索（不区分大小写）"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {array} models.Item
// @Router /api/v1/items [get]
func (h *ItemHandler) List(c *gin.Context) {
	q := newQueryParser(c)
	filter := itemFilter(c, q)
	p := q.pagination()
	if !q.ok() {
		return
	}

	items, err := h.itemService.List(c.Request.Context(), filter, p)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, p)
}

// Create 创建物品
// @Summary 创建物品
// @Tags Items
// @Accept json
// @Produce json
// @Param request body service.ItemRequest true "物品参数"
// @Success 201 {object} models.Item
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	var req service.ItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Get 物品详情
// @Summary 物品详情
// @Tags Items
// @Produce json
// @Param id path int true "物品ID"
// @Success 200 {object} models.Item
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.itemService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Update 更新物品
// @Summary 更新物品
// @Tags Items
// @Accept json
// @Produce json
// @Param id path int true "物品ID"
// @Param request body service.ItemRequest true "更新字段"
// @Success 200 {object} models.Item
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.ItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete 删除物品
// @Summary 删除物品
// @Tags Items
// @Param id path int true "物品ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.itemService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Activate 启用物品
// @Summary 启用物品
// @Tags Items
// @Produce json
// @Param id path int true "物品ID"
// @Success 200 {object} models.Item
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id}/activate [post]
func (h *ItemHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

// Deactivate 停用物品
// @Summary 停用物品
// @Tags Items
// @Produce json
// @Param id path int true "物品ID"
// @Success 200 {object} models.Item
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id}/deactivate [post]
func (h *ItemHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *ItemHandler) setActive(c *gin.Context, active bool) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.itemService.SetActive(c.Request.Context(), id, active)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ByRarity 按稀有度查询
// @Summary 按稀有度查询
// @Tags Items
// @Produce json
// @Param rarity query string true "稀有度"
// @Success 200 {array} models.Item
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/items/by_rarity [get]
func (h *ItemHandler) ByRarity(c *gin.Context) {
	q := newQueryParser(c)
	filter := itemFilter(c, q)
	if !q.ok() {
		return
	}
	items, err := h.itemService.ByRarity(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ByType 按类型查询
// @Summary 按类型查询
// @Tags Items
// @Produce json
// @Param type query string true "类型"
// @Success 200 {array} models.Item
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/items/by_type [get]
func (h *ItemHandler) ByType(c *gin.Context) {
	q := newQueryParser(c)
	filter := itemFilter(c, q)
	if !q.ok() {
		return
	}
	items, err := h.itemService.ByType(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
