package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/hexrealm/internal/repository"
	"github.com/wfunc/hexrealm/internal/service"
)

// MapHandler 地块处理器
type MapHandler struct {
	mapService service.MapService
}

// NewMapHandler 创建地块处理器
func NewMapHandler(mapService service.MapService) *MapHandler {
	return &MapHandler{mapService: mapService}
}

// List 地块列表
// @Summary 地块列表
// @Tags Hex Tiles
// @Produce json
// @Param game query int false "游戏ID"
// @Param terrain_type query string false "地形"
// @Param q query int false "q 坐标（需与 r 同时提供）"
// @Param r query int false "r 坐标（需与 q 同时提供）"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {array} models.HexTile
// @Router /api/v1/hex-tiles [get]
func (h *MapHandler) List(c *gin.Context) {
	q := newQueryParser(c)
	filter := repository.HexTileFilter{
		GameID:  q.uintParam("game"),
		Terrain: c.Query("terrain_type"),
		CoordFilter: repository.CoordFilter{
			Q: q.intPtr("q"),
			R: q.intPtr("r"),
		},
	}
	p := q.pagination()
	if !q.ok() {
		return
	}

	tiles, err := h.mapService.ListTiles(c.Request.Context(), filter, p)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, tiles, p)
}

// Create 创建地块
// @Summary 创建地块
// @Tags Hex Tiles
// @Accept json
// @Produce json
// @Param request body service.CreateTileRequest true "地块参数"
// @Success 201 {object} models.HexTile
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/hex-tiles [post]
func (h *MapHandler) Create(c *gin.Context) {
	var req service.CreateTileRequest
	if !bindJSON(c, &req) {
		return
	}

	tile, err := h.mapService.CreateTile(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tile)
}

// Get 地块详情
// @Summary 地块详情
// @Tags Hex Tiles
// @Produce json
// @Param id path int true "地块ID"
// @Success 200 {object} models.HexTile
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/hex-tiles/{id} [get]
func (h *MapHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	tile, err := h.mapService.GetTile(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tile)
}

// Update 更新地块
// @Summary 更新地块
// @Tags Hex Tiles
// @Accept json
// @Produce json
// @Param id path int true "地块ID"
// @Param request body service.UpdateTileRequest true "更新字段"
// @Success 200 {object} models.HexTile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/hex-tiles/{id} [patch]
func (h *MapHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req service.UpdateTileRequest
	if !bindJSON(c, &req) {
		return
	}

	tile, err := h.mapService.UpdateTile(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tile)
}

// Delete 删除地块
// @Summary 删除地块
// @Tags Hex Tiles
// @Param id path int true "地块ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/hex-tiles/{id} [delete]
func (h *MapHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.mapService.DeleteTile(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Nearby 附近地块
// @Summary 附近地块
// @Description 默认按包围盒 |Δq|<=radius && |Δr|<=radius 筛选，配置为 hex 时按六边形距离
// @Tags Hex Tiles
// @Produce json
// @Param game query int true "游戏ID"
// @Param q query int true "中心 q"
// @Param r query int true "中心 r"
// @Param radius query int false "半径，默认 1"
// @Success 200 {array} models.HexTile
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/hex-tiles/nearby [get]
func (h *MapHandler) Nearby(c *gin.Context) {
	q := newQueryParser(c)
	query := service.NearbyQuery{
		Game:   q.uintPtr("game"),
		Q:      q.intPtr("q"),
		R:      q.intPtr("r"),
		Radius: q.intPtr("radius"),
	}
	if !q.ok() {
		return
	}

	tiles, err := h.mapService.Nearby(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tiles)
}
