// @title           天气插件服务 API
// @version         1.0
// @description     聊天机器人天气插件的 HTTP 服务，封装天气查询与 HTML 转图片渲染

// @contact.name   BB0813

// @license.name  MIT

// @BasePath  /api
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/app/routes"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/infrastructure/config"
	Logger "github.com/BB0813/astrbot-plugin-weather-Amap/pkg/logger"
)

func main() {
	// 初始化日志配置
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		Logger.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		Logger.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()
	Logger.Info("天气提供方: %s, 默认城市: %s", cfg.WeatherProvider, cfg.DefaultCity)

	// 初始化路由
	r := routes.SetupRouter(cfg)

	// 启动服务器
	port := cfg.ServerPort
	Logger.Info("服务器启动在: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}
