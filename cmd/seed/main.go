package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wfunc/hexrealm/internal/catalog"
	"github.com/wfunc/hexrealm/internal/config"
	"github.com/wfunc/hexrealm/internal/database"
	"github.com/wfunc/hexrealm/internal/logger"
	"github.com/wfunc/hexrealm/internal/service"
	"go.uber.org/zap"
)

func main() {
	// 命令行参数
	var (
		configPath = flag.String("config", "", "配置文件路径")
		seedFile   = flag.String("file", "", "物品目录种子文件，默认使用 catalog.seed_file")
		dryRun     = flag.Bool("dry-run", false, "只解析种子文件，不写入数据库")
	)
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Printf("加载配置失败: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()

	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Printf("初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	log := logger.GetLogger()
	defer logger.Sync()

	path := *seedFile
	if path == "" {
		path = cfg.Catalog.SeedFile
	}

	file, err := catalog.LoadFile(path)
	if err != nil {
		log.Fatal("读取种子文件失败", zap.String("file", path), zap.Error(err))
	}
	fmt.Printf("种子文件: %s (%d 个物品)\n", path, len(file.Items))

	if *dryRun {
		for _, entry := range file.Items {
			fmt.Printf("  - %-24s %-12s %s\n", entry.Name, entry.Type, entry.Rarity)
		}
		return
	}

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatal("连接数据库失败", zap.Error(err))
	}
	defer database.Close()

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(); err != nil {
			log.Fatal("数据库迁移失败", zap.Error(err))
		}
	}

	services, err := service.NewServices(database.GetDB(), service.ConfigFrom(cfg), log)
	if err != nil {
		log.Fatal("初始化服务层失败", zap.Error(err))
	}
	defer services.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	result, err := services.Item.Import(ctx, file)
	if err != nil {
		log.Error("导入失败，已回滚", zap.Error(err))
		fmt.Printf("导入失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("导入完成: 新增 %d, 更新 %d\n", result.Created, result.Updated)
}
