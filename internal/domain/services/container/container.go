package container

import (
	"sync"

	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/domain/services"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/infrastructure/config"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	config *config.Config

	// 天气数据服务
	openWeatherService *services.OpenWeatherService
	seniverseService   *services.SeniverseService

	// 渲染服务
	renderService *services.RenderService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(cfg *config.Config) *ServiceContainer {
	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.openWeatherService = services.NewOpenWeatherService(c.config)
	c.seniverseService = services.NewSeniverseService(c.config)
	c.renderService = services.NewRenderService(c.config)
}

// GetConfig 获取配置
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// GetOpenWeatherService 获取 OpenWeatherMap 天气服务
func (c *ServiceContainer) GetOpenWeatherService() *services.OpenWeatherService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.openWeatherService
}

// GetSeniverseService 获取心知天气服务
func (c *ServiceContainer) GetSeniverseService() *services.SeniverseService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.seniverseService
}

// GetRenderService 获取渲染服务
func (c *ServiceContainer) GetRenderService() *services.RenderService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.renderService
}
