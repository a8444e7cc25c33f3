package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/hexrealm/internal/database"
	"github.com/wfunc/hexrealm/internal/middleware"
	"github.com/wfunc/hexrealm/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Router API路由器
type Router struct {
	engine         *gin.Engine
	db             *gorm.DB
	authMiddleware *middleware.AuthMiddleware
	log            *zap.Logger

	auth          *AuthHandler
	games         *GameHandler
	worldStates   *WorldStateHandler
	players       *PlayerHandler
	tiles         *MapHandler
	characters    *CharacterHandler
	mapItems      *MapItemHandler
	interactables *InteractableHandler
	items         *ItemHandler
}

// NewRouter 创建路由器
func NewRouter(db *gorm.DB, services *service.Services, log *zap.Logger) *Router {
	// 创建Gin引擎
	engine := gin.New()

	// 全局中间件
	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger())

	router := &Router{
		engine:         engine,
		db:             db,
		authMiddleware: middleware.NewAuthMiddleware(services.Auth),
		log:            log,
		auth:           NewAuthHandler(services.Auth),
		games:          NewGameHandler(services.Game),
		worldStates:    NewWorldStateHandler(services.WorldState),
		players:        NewPlayerHandler(services.Player),
		tiles:          NewMapHandler(services.Map),
		characters:     NewCharacterHandler(services.Character),
		mapItems:       NewMapItemHandler(services.MapItem),
		interactables:  NewInteractableHandler(services.Interactable),
		items:          NewItemHandler(services.Item),
	}

	router.setupRoutes()
	return router
}

// setupRoutes 设置路由
func (r *Router) setupRoutes() {
	// 健康检查
	r.engine.GET("/health", r.healthCheck)

	// 文档
	registerOpenAPIRoutes(r.engine)
	registerSwaggerRoutes(r.engine)

	requireAuth := r.authMiddleware.RequireAuth()

	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.auth.Register)
			auth.POST("/login", r.auth.Login)
			auth.POST("/refresh", r.auth.Refresh)
			auth.POST("/logout", requireAuth, r.auth.Logout)
			auth.POST("/logout_all", requireAuth, r.auth.LogoutAll)
			auth.POST("/password", requireAuth, r.auth.ChangePassword)
			auth.GET("/profile", requireAuth, r.auth.Profile)
		}

		games := v1.Group("/games")
		{
			games.GET("", r.games.List)
			games.POST("", r.games.Create)
			games.GET("/:id", r.games.Get)
			games.PUT("/:id", r.games.Update)
			games.PATCH("/:id", r.games.Update)
			games.DELETE("/:id", r.games.Delete)
			games.GET("/:id/current_state", r.games.CurrentState)
			games.POST("/:id/start", r.games.Start)
			games.POST("/:id/pause", r.games.Pause)
			games.POST("/:id/resume", r.games.Resume)
			games.POST("/:id/finish", r.games.Finish)
			games.POST("/:id/advance_tick", r.games.AdvanceTick)
			games.POST("/:id/capture_state", r.games.CaptureState)
		}

		states := v1.Group("/world-states")
		{
			states.GET("", r.worldStates.List)
			states.GET("/:id", r.worldStates.Get)
		}

		players := v1.Group("/players")
		{
			players.GET("", r.players.List)
			players.POST("", requireAuth, r.players.Join)
			players.GET("/:id", r.players.Get)
			players.PUT("/:id", r.players.Update)
			players.PATCH("/:id", r.players.Update)
			players.DELETE("/:id", r.players.Delete)
		}

		tiles := v1.Group("/hex-tiles")
		{
			tiles.GET("", r.tiles.List)
			tiles.POST("", r.tiles.Create)
			tiles.GET("/nearby", r.tiles.Nearby)
			tiles.GET("/:id", r.tiles.Get)
			tiles.PUT("/:id", r.tiles.Update)
			tiles.PATCH("/:id", r.tiles.Update)
			tiles.DELETE("/:id", r.tiles.Delete)
		}

		characters := v1.Group("/characters")
		{
			characters.GET("", r.characters.List)
			characters.POST("", r.characters.Create)
			characters.GET("/:id", r.characters.Get)
			characters.PUT("/:id", r.characters.Update)
			characters.PATCH("/:id", r.characters.Update)
			characters.DELETE("/:id", r.characters.Delete)
			characters.POST("/:id/move", r.characters.Move)
			characters.POST("/:id/loot", r.characters.Loot)
		}

		mapItems := v1.Group("/map-items")
		{
			mapItems.GET("", r.mapItems.List)
			mapItems.POST("", r.mapItems.Create)
			mapItems.GET("/:id", r.mapItems.Get)
			mapItems.PUT("/:id", r.mapItems.Update)
			mapItems.PATCH("/:id", r.mapItems.Update)
			mapItems.DELETE("/:id", r.mapItems.Delete)
		}

		interactables := v1.Group("/interactables")
		{
			interactables.GET("", r.interactables.List)
			interactables.POST("", r.interactables.Create)
			interactables.GET("/:id", r.interactables.Get)
			interactables.PUT("/:id", r.interactables.Update)
			interactables.PATCH("/:id", r.interactables.Update)
			interactables.DELETE("/:id", r.interactables.Delete)
			interactables.POST("/:id/interact", r.interactables.Interact)
		}

		items := v1.Group("/items")
		{
			items.GET("", r.items.List)
			items.POST("", r.items.Create)
			items.GET("/by_rarity", r.items.ByRarity)
			items.GET("/by_type", r.items.ByType)
			items.GET("/:id", r.items.Get)
			items.PUT("/:id", r.items.Update)
			items.PATCH("/:id", r.items.Update)
			items.DELETE("/:id", r.items.Delete)
			items.POST("/:id/activate", r.items.Activate)
			items.POST("/:id/deactivate", r.items.Deactivate)
		}
	}

	// 404处理
	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	})
}

// healthCheck 健康检查
func (r *Router) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, r.db); err != nil {
		r.log.Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "ok",
	})
}

// Handler 返回 http.Handler
func (r *Router) Handler() http.Handler {
	return r.engine
}

// GetEngine 获取Gin引擎（用于测试）
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
