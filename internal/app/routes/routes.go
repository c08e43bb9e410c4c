package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/BB0813/astrbot-plugin-weather-Amap/docs"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/app/controllers"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/domain/services/container"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/infrastructure/config"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(cfg)

	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")

	// 健康检查
	healthController := controllers.NewHealthCheckController()
	api.GET("/ping", healthController.Ping)

	// 天气命令路由，与聊天子命令一一对应
	api.GET("/weather/current", controllers.HandleWeatherFunc(container, "getCurrent"))
	api.GET("/weather/forecast", controllers.HandleWeatherFunc(container, "getForecast"))
	api.GET("/weather/alerts", controllers.HandleWeatherFunc(container, "getAlerts"))
	api.GET("/weather/help", controllers.HandleWeatherFunc(container, "getHelp"))

	// LLM 工具路由
	api.GET("/tools", controllers.HandleToolFunc(container, "listTools"))
	api.POST("/tools/execute", controllers.HandleToolFunc(container, "executeTool"))
}
