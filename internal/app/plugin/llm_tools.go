package plugin

import (
	"encoding/json"
	"fmt"

	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/domain/models"
	"github.com/BB0813/astrbot-plugin-weather-Amap/pkg/logger"
)

// LLM 工具名称
const (
	ToolGetCurrentWeather  = "get_current_weather"
	ToolGetForecastWeather = "get_forecast_weather"
)

// JSONSchema 描述工具参数的 JSON Schema
type JSONSchema struct {
	Type        string                 `json:"type"`
	Description string                 `json:"description,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty"`
	Required    []string               `json:"required,omitempty"`
}

// Tool 描述一个可供 LLM 调用的工具
type Tool struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  JSONSchema `json:"parameters"`
}

// ToolRegistry 将 LLM 工具调用分发到命令处理器，语义与对应聊天命令一致
type ToolRegistry struct {
	handler CommandHandler
}

// NewToolRegistry 创建工具注册表
func NewToolRegistry(handler CommandHandler) *ToolRegistry {
	return &ToolRegistry{handler: handler}
}

// cityParamSchema 两个工具共用的参数描述
func cityParamSchema() JSONSchema {
	return JSONSchema{
		Type: "object",
		Properties: map[string]*JSONSchema{
			"city": {
				Type:        "string",
				Description: "城市名称，如 上海",
			},
		},
		Required: []string{"city"},
	}
}

// Definitions 返回全部工具的定义
func (r *ToolRegistry) Definitions() []Tool {
	return []Tool{
		{
			Name:        ToolGetCurrentWeather,
			Description: "获取指定城市的当前天气并返回图片",
			Parameters:  cityParamSchema(),
		},
		{
			Name:        ToolGetForecastWeather,
			Description: "获取指定城市未来 3 天的天气预报并返回图片",
			Parameters:  cityParamSchema(),
		},
	}
}

// toolArguments 是 LLM 传入的参数结构
type toolArguments struct {
	City string `json:"city"`
}

// Execute 执行指定名称的工具，未知名称返回错误
func (r *ToolRegistry) Execute(name string, arguments string) (models.Reply, error) {
	var args toolArguments
	if arguments != "" {
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return models.Reply{}, fmt.Errorf("工具参数解析失败: %w", err)
		}
	}

	logger.Debug("LLM 调用工具 %s, 城市: %s", name, args.City)

	switch name {
	case ToolGetCurrentWeather:
		return r.handler.Current(args.City), nil
	case ToolGetForecastWeather:
		return r.handler.Forecast(args.City), nil
	default:
		return models.Reply{}, fmt.Errorf("未知的工具名称: %s", name)
	}
}
