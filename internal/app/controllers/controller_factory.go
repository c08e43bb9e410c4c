package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/app/plugin"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/domain/services/container"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/infrastructure/config"
)

// BaseController 是所有控制器的基础接口
type BaseController interface {
	// 获取服务容器
	GetContainer() *container.ServiceContainer
	// 获取Gin上下文
	GetContext() *gin.Context
}

// BaseControllerImpl 是控制器的基础实现
type BaseControllerImpl struct {
	Container *container.ServiceContainer
	Context   *gin.Context
}

// GetContainer 实现 BaseController 接口
func (c *BaseControllerImpl) GetContainer() *container.ServiceContainer {
	return c.Container
}

// GetContext 实现 BaseController 接口
func (c *BaseControllerImpl) GetContext() *gin.Context {
	return c.Context
}

// ControllerFactory 用于创建控制器的工厂
type ControllerFactory struct {
	Container *container.ServiceContainer
}

// NewControllerFactory 创建一个新的控制器工厂
func NewControllerFactory(container *container.ServiceContainer) *ControllerFactory {
	return &ControllerFactory{
		Container: container,
	}
}

// activeHandler 根据配置选择当前启用的天气提供方命令处理器
func (f *ControllerFactory) activeHandler() plugin.CommandHandler {
	cfg := f.Container.GetConfig()
	if cfg.WeatherProvider == config.ProviderSeniverse {
		return plugin.NewSeniversePlugin(cfg, f.Container.GetSeniverseService(), f.Container.GetRenderService())
	}
	return plugin.NewOpenWeatherPlugin(cfg, f.Container.GetOpenWeatherService(), f.Container.GetRenderService())
}
