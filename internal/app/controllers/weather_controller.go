package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/app/plugin"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/domain/services/container"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/error/code"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/error/response"
)

// WeatherController 将聊天子命令暴露为 HTTP 接口，宿主框架通过它转发用户命令
type WeatherController struct {
	BaseControllerImpl
	Handler plugin.CommandHandler
}

// NewWeatherController 创建一个新的天气控制器
func (f *ControllerFactory) NewWeatherController(ctx *gin.Context) *WeatherController {
	return &WeatherController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
		Handler: f.activeHandler(),
	}
}

// GetCurrent 查询当前天气
// @Summary      查询当前天气
// @Description  查询指定城市的当前天气，返回渲染图片地址或失败文案
// @Tags         weather
// @Produce      json
// @Param        city query string false "城市名称，缺省使用默认城市"
// @Success      200 {object} response.Response
// @Router       /weather/current [get]
func (c *WeatherController) GetCurrent() {
	city := c.Context.Query("city")
	reply := c.Handler.Current(city)
	response.Success(c.Context, reply)
}

// GetForecast 查询多日预报
// @Summary      查询未来 3 天预报
// @Description  查询指定城市的多日预报，返回渲染图片地址或失败文案
// @Tags         weather
// @Produce      json
// @Param        city query string false "城市名称，缺省使用默认城市"
// @Success      200 {object} response.Response
// @Router       /weather/forecast [get]
func (c *WeatherController) GetForecast() {
	city := c.Context.Query("city")
	reply := c.Handler.Forecast(city)
	response.Success(c.Context, reply)
}

// GetAlerts 查询天气预警
// @Summary      查询天气预警
// @Description  当前接入的 API 版本不提供预警数据，固定返回暂不支持文案
// @Tags         weather
// @Produce      json
// @Param        city query string false "城市名称"
// @Success      200 {object} response.Response
// @Router       /weather/alerts [get]
func (c *WeatherController) GetAlerts() {
	city := c.Context.Query("city")
	reply := c.Handler.Alerts(city)
	response.Success(c.Context, reply)
}

// GetHelp 查询命令用法
// @Summary      查询命令用法说明
// @Tags         weather
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /weather/help [get]
func (c *WeatherController) GetHelp() {
	reply := c.Handler.Help()
	response.Success(c.Context, reply)
}

// HandleWeatherFunc 返回一个处理天气请求的Gin处理函数
func HandleWeatherFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewWeatherController(ctx)

		switch method {
		case "getCurrent":
			controller.GetCurrent()
		case "getForecast":
			controller.GetForecast()
		case "getAlerts":
			controller.GetAlerts()
		case "getHelp":
			controller.GetHelp()
		default:
			response.Fail(ctx, code.ErrValidation, nil)
		}
	}
}
