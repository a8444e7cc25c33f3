package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/hexrealm/internal/api"
	"github.com/wfunc/hexrealm/internal/catalog"
	"github.com/wfunc/hexrealm/internal/config"
	"github.com/wfunc/hexrealm/internal/database"
	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/logger"
	"github.com/wfunc/hexrealm/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// 版本信息
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Server 服务器实例
type Server struct {
	cfg        *config.Config
	logger     *zap.Logger
	services   *service.Services
	httpServer *http.Server
}

func main() {
	// 命令行参数
	var (
		configPath  = flag.String("config", "", "配置文件路径")
		showVersion = flag.Bool("version", false, "显示版本信息")
		showHelp    = flag.Bool("help", false, "显示帮助信息")
	)

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	// 加载配置
	if err := config.Init(*configPath); err != nil {
		fmt.Printf("加载配置失败: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Get()

	// 初始化日志系统
	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Printf("初始化日志失败: %v\n", err)
		os.Exit(1)
	}

	setupSystem(&cfg.System)
	printStartInfo(cfg)

	server := NewServer(cfg)
	if err := server.Init(); err != nil {
		logger.Fatal("服务器初始化失败", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := server.Run(ctx); err != nil {
		logger.Error("服务器异常退出", zap.Error(err))
		server.Close()
		os.Exit(1)
	}

	server.Close()
	logger.Info("服务器已安全关闭")
}

// NewServer 创建服务器实例
func NewServer(cfg *config.Config) *Server {
	return &Server{
		cfg:    cfg,
		logger: logger.GetLogger(),
	}
}

// Init 初始化数据库、服务层与 HTTP 服务
func (s *Server) Init() error {
	s.logger.Info("正在启动 Hexrealm 服务器...",
		zap.String("version", Version),
		zap.String("mode", s.cfg.Server.Mode),
	)

	if err := s.initDatabase(); err != nil {
		return err
	}

	services, err := service.NewServices(database.GetDB(), service.ConfigFrom(s.cfg), logger.GetLogger())
	if err != nil {
		return errors.Wrap(err, errors.ErrUnknown, "初始化服务层失败")
	}
	s.services = services

	if s.cfg.Catalog.SeedOnStart {
		if err := s.seedCatalog(); err != nil {
			return err
		}
	}

	gin.SetMode(ginMode(s.cfg.Server.Mode))
	router := api.NewRouter(database.GetDB(), s.services, s.logger)
	s.httpServer = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      router.Handler(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	// 监听配置变化
	config.Watch(func(newCfg *config.Config) {
		s.logger.Info("配置已更新，正在重新加载...")
		s.reloadConfig(newCfg)
	})

	return nil
}

// initDatabase 初始化数据库
func (s *Server) initDatabase() error {
	s.logger.Info("初始化数据库...", zap.String("driver", s.cfg.Database.Driver))

	if err := database.Init(&s.cfg.Database); err != nil {
		return errors.Wrap(err, errors.ErrDatabaseConnect, "初始化数据库连接失败")
	}

	if s.cfg.Database.AutoMigrate {
		s.logger.Info("执行数据库自动迁移...")
		if err := database.AutoMigrate(); err != nil {
			return errors.Wrap(err, errors.ErrDatabaseConnect, "数据库迁移失败")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Ping(ctx, database.GetDB()); err != nil {
		return errors.Wrap(err, errors.ErrDatabaseConnect, "数据库连接检查失败")
	}

	s.logger.Info("数据库初始化完成")
	return nil
}

// seedCatalog 启动时导入物品目录
func (s *Server) seedCatalog() error {
	file, err := catalog.LoadFile(s.cfg.Catalog.SeedFile)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "读取物品目录失败")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := s.services.Item.Import(ctx, file)
	if err != nil {
		return errors.Wrap(err, errors.ErrUnknown, "导入物品目录失败")
	}
	s.logger.Info("物品目录已导入",
		zap.String("file", s.cfg.Catalog.SeedFile),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
	)
	return nil
}

// Run 启动 HTTP 服务，ctx 取消后优雅关闭
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("HTTP 服务已启动", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("正在优雅关闭服务器...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("关闭超时，强制退出", zap.Error(err))
			return errors.Wrap(err, errors.ErrTimeout, "关闭超时")
		}
		return nil
	})

	return g.Wait()
}

// Close 关闭组件
func (s *Server) Close() {
	if s.services != nil {
		s.services.Close()
	}

	if err := database.Close(); err != nil {
		s.logger.Error("关闭数据库失败", zap.Error(err))
	}

	if err := logger.Sync(); err != nil {
		fmt.Printf("同步日志失败: %v\n", err)
	}
}

// reloadConfig 重新加载配置，只有游戏规则与日志级别支持热更新
func (s *Server) reloadConfig(newCfg *config.Config) {
	s.cfg = newCfg
	s.services.ApplyGameConfig(newCfg.Game)
	logger.SetLevel(newCfg.Log.Level)
	s.logger.Info("配置重新加载完成",
		zap.String("nearby_mode", newCfg.Game.NearbyMode),
		zap.String("log_level", newCfg.Log.Level),
	)
}

// ginMode 配置中的运行模式映射到 gin 模式
func ginMode(mode string) string {
	switch mode {
	case "production", gin.ReleaseMode:
		return gin.ReleaseMode
	case gin.TestMode:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// setupSystem 设置系统参数
func setupSystem(cfg *config.SystemConfig) {
	// 设置时区
	if cfg.Timezone != "" {
		if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
			time.Local = loc
		}
	}

	// 设置最大处理器数
	if cfg.MaxProcs > 0 {
		runtime.GOMAXPROCS(cfg.MaxProcs)
	}
}

// printVersion 打印版本信息
func printVersion() {
	fmt.Printf("Hexrealm 游戏服务器\n")
	fmt.Printf("版本: %s\n", Version)
	fmt.Printf("构建时间: %s\n", BuildTime)
	fmt.Printf("Git提交: %s\n", GitCommit)
	fmt.Printf("Go版本: %s\n", runtime.Version())
	fmt.Printf("操作系统: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// printHelp 打印帮助信息
func printHelp() {
	fmt.Println("Hexrealm 游戏服务器")
	fmt.Println()
	fmt.Println("用法:")
	fmt.Println("  hexrealm-server [选项]")
	fmt.Println()
	fmt.Println("选项:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("环境变量:")
	fmt.Println("  HEXREALM_DATABASE_DRIVER   数据库驱动 (sqlite/mysql/postgres)")
	fmt.Println("  HEXREALM_DATABASE_DSN      数据库连接串")
	fmt.Println("  HEXREALM_SECURITY_JWT_SECRET  JWT 签名密钥")
	fmt.Println()
	fmt.Println("示例:")
	fmt.Println("  hexrealm-server -config=/path/to/config.yaml")
	fmt.Println("  hexrealm-server -version")
}

// printStartInfo 打印启动信息
func printStartInfo(cfg *config.Config) {
	banner := `
╔═══════════════════════════════════════════════════════╗
║                                                       ║
║     _   _                          _                  ║
║    | | | | _____  ___ __ ___  __ _| |_ __ ___         ║
║    | |_| |/ _ \ \/ / '__/ _ \/ _` + "`" + ` | | '_ ` + "`" + ` _ \        ║
║    |  _  |  __/>  <| | |  __/ (_| | | | | | | |       ║
║    |_| |_|\___/_/\_\_|  \___|\__,_|_|_| |_| |_|       ║
║                                                       ║
║               六边形地图多人游戏服务器                ║
║                                                       ║
╚═══════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
	fmt.Printf("版本: %s | 模式: %s | PID: %d\n", Version, cfg.Server.Mode, os.Getpid())
	fmt.Printf("配置文件: %s\n", config.ConfigFile())
	fmt.Println("═══════════════════════════════════════════════════════")
}
