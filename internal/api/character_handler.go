package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/hexrealm/internal/repository"
	"github.com/wfunc/hexrealm/internal/service"
)

// CharacterHandler 角色处理器
type CharacterHandler struct {
	characterService service.CharacterService
}

// NewCharacterHandler 创建角色处理器
func NewCharacterHandler(characterService service.CharacterService) *CharacterHandler {
	return &CharacterHandler{characterService: characterService}
}

// List 角色列表，默认不含已死亡角色
// @Summary 角色列表
// @Tags Characters
// @Produce json
// @Param game query int false "游戏ID"
// @Param owner query int false "玩家ID"
// @Param include_dead query bool false "包含已死亡角色"
// @Param q query int false "q 坐标"
// @Param r query int false "r 坐标"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {array} models.Character
// @Router /api/v1/characters [get]
func (h *CharacterHandler) List(c *gin.Context) {
	q := newQueryParser(c)
	filter := repository.CharacterFilter{
		GameID:  q.uintParam("game"),
		OwnerID: q.uintParam("owner"),
		CoordFilter: repository.CoordFilter{
			Q: q.intPtr("q"),
			R: q.intPtr("r"),
		},
	}
	if dead := q.boolPtr("include_dead"); dead != nil {
		filter.IncludeDead = *dead
	}
	p := q.pagination()
	if !q.ok() {
		return
	}

	characters, err := h.characterService.List(c.Request.Context(), filter, p)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, characters, p)
}

// Create 创建角色
// @Summary 创建角色
// @Tags Characters
// @Accept json
// @Produce json
// @Param request body service.CreateCharacterRequest true "角色参数"
// @Success 201 {object} models.Character
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/characters [post]
func (h *CharacterHandler) Create(c *gin.Context) {
	var req service.CreateCharacterRequest
	if !bindJSON(c, &req) {
		return
	}

	character, err := h.characterService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, character)
}

// Get 角色详情
// @Summary 角色详情
// @Tags Characters
// @Produce json
// @Param id path int true "角色ID"
// @Success 200 {object} models.Character
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id} [get]
func (h *CharacterHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	character, err := h.characterService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, character)
}

// Update 更新角色
// @Summary 更新角色
// @Description 位置只能通过 move 修改；死亡后状态不可再变
// @Tags Characters
// @Accept json
// @Produce json
// @Param id path int true "角色ID"
// @Param request body service.UpdateCharacterRequest true "更新字段"
// @Success 200 {object} models.Character
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id} [patch]
func (h *CharacterHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.UpdateCharacterRequest
	if !bindJSON(c, &req) {
		return
	}

	character, err := h.characterService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, character)
}

// Delete 删除角色
// @Summary 删除角色
// @Tags Characters
// @Param id path int true "角色ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id} [delete]
func (h *CharacterHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.characterService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Move 移动角色
// @Summary 移动角色
// @Tags Characters
// @Accept json
// @Produce json
// @Param id path int true "角色ID"
// @Param request body service.MoveRequest true "目标坐标"
// @Success 200 {object} models.Character
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id}/move [post]
func (h *CharacterHandler) Move(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.MoveRequest
	if !bindJSON(c, &req) {
		return
	}

	character, err := h.characterService.Move(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, character)
}

// Loot 拾取脚下的地图物品
// @Summary 拾取物品
// @Tags Characters
// @Accept json
// @Produce json
// @Param id path int true "角色ID"
// @Param request body service.LootRequest true "地图物品ID"
// @Success 200 {object} models.Character
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/characters/{id}/loot [post]
func (h *CharacterHandler) Loot(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.LootRequest
	if !bindJSON(c, &req) {
		return
	}

	character, err := h.characterService.Loot(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, character)
}
