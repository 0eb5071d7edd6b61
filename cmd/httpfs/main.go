package main

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/caiflower/httpfs/global"
	"github.com/caiflower/httpfs/global/env"
	"github.com/caiflower/httpfs/pkg/logger"
	"github.com/caiflower/httpfs/pkg/tools"
	"github.com/caiflower/httpfs/web/handler"
	"github.com/caiflower/httpfs/web/server"
	"github.com/caiflower/httpfs/web/server/config"
)

type Config struct {
	Logger logger.Config  `yaml:"logger"`
	Server config.Options `yaml:"server"`
}

// httpfs [rootDir]
// 默认服务当前目录，监听127.0.0.1:5500
func main() {
	rootDir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	if len(os.Args) > 1 {
		rootDir = os.Args[1]
	}

	var cfg Config
	configFile := filepath.Join(env.ConfigPath, "httpfs.yaml")
	if _, statErr := os.Stat(configFile); statErr == nil {
		if err = tools.LoadConfig(configFile, &cfg); err != nil {
			panic(fmt.Sprintf("load config %s failed: %s", configFile, err))
		}
	} else {
		_ = tools.DoTagFunc(&cfg, nil, []func(reflect.StructField, reflect.Value, interface{}) error{tools.SetDefaultValueIfNil})
	}

	logger.InitLogger(&cfg.Logger)

	if len(os.Args) <= 1 && cfg.Server.RootDir != "" {
		rootDir = cfg.Server.RootDir
	}
	cfg.Server.RootDir = rootDir

	h := handler.New(handler.Config{
		RootDir:      rootDir,
		FileCacheTTL: cfg.Server.FileCacheTTL,
	}, logger.DefaultLogger())

	srv := server.New(h, &cfg.Server)
	global.DefaultResourceManger.AddDaemon(srv)
	global.DefaultResourceManger.Signal()

	logger.DefaultLogger().Close()
}
