package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/app/plugin"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/domain/services/container"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/error/code"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/error/response"
	"github.com/BB0813/astrbot-plugin-weather-Amap/pkg/logger"
)

// ToolController 暴露 LLM 工具调用接口，宿主框架代理大模型的 function-calling 请求
type ToolController struct {
	BaseControllerImpl
	Registry *plugin.ToolRegistry
}

// NewToolController 创建一个新的工具控制器
func (f *ControllerFactory) NewToolController(ctx *gin.Context) *ToolController {
	return &ToolController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
		Registry: plugin.NewToolRegistry(f.activeHandler()),
	}
}

// executeToolRequest 是工具调用的请求体
type executeToolRequest struct {
	Name      string `json:"name" binding:"required"`
	Arguments string `json:"arguments"`
}

// ListTools 列出全部工具定义
// @Summary      列出 LLM 工具定义
// @Tags         tools
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /tools [get]
func (c *ToolController) ListTools() {
	response.Success(c.Context, c.Registry.Definitions())
}

// ExecuteTool 执行指定工具
// @Summary      执行 LLM 工具
// @Description  name 为工具名称，arguments 为 JSON 字符串形式的参数
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        request body executeToolRequest true "工具调用请求"
// @Success      200 {object} response.Response
// @Router       /tools/execute [post]
func (c *ToolController) ExecuteTool() {
	var req executeToolRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Context, code.ErrBind, nil)
		return
	}

	reply, err := c.Registry.Execute(req.Name, req.Arguments)
	if err != nil {
		logger.Warning("工具调用失败: %v", err)
		response.FailWithMessage(c.Context, code.ErrToolNotFound, err.Error(), nil)
		return
	}

	response.Success(c.Context, reply)
}

// HandleToolFunc 返回一个处理工具请求的Gin处理函数
func HandleToolFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewToolController(ctx)

		switch method {
		case "listTools":
			controller.ListTools()
		case "executeTool":
			controller.ExecuteTool()
		default:
			response.Fail(ctx, code.ErrValidation, nil)
		}
	}
}
