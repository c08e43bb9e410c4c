package plugin

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/domain/models"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/domain/services"
	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/infrastructure/config"
)

// newOpenWeatherEnv 搭建完整的模拟环境：地理编码、天气、渲染三个上游
// upstreamCalls 统计天气侧上游被调用的次数
func newOpenWeatherEnv(t *testing.T, upstreamCalls *int) *config.Config {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/geo/1.0/direct", func(w http.ResponseWriter, r *http.Request) {
		if upstreamCalls != nil {
			*upstreamCalls++
		}
		fmt.Fprint(w, `[{"name":"Shanghai","lat":31.2304,"lon":121.4737}]`)
	})
	mux.HandleFunc("/data/2.5/weather", func(w http.ResponseWriter, r *http.Request) {
		if upstreamCalls != nil {
			*upstreamCalls++
		}
		fmt.Fprint(w, `{"main":{"temp":22,"feels_like":21,"humidity":60},"weather":[{"description":"clear"}],"wind":{"speed":3}}`)
	})
	mux.HandleFunc("/data/2.5/forecast/daily", func(w http.ResponseWriter, r *http.Request) {
		if upstreamCalls != nil {
			*upstreamCalls++
		}
		fmt.Fprint(w, `{"list":[
			{"dt":1736899200,"weather":[{"description":"今天"}],"temp":{"day":5,"night":1,"min":0,"max":6},"humidity":70,"speed":2},
			{"dt":1736985600,"weather":[{"description":"多云"}],"temp":{"day":7,"night":2,"min":1,"max":8},"humidity":65,"speed":3},
			{"dt":1737072000,"weather":[{"description":"晴"}],"temp":{"day":9,"night":3,"min":2,"max":10},"humidity":60,"speed":4},
			{"dt":1737158400,"weather":[{"description":"阴"}],"temp":{"day":11,"night":4,"min":3,"max":12},"humidity":55,"speed":5}
		]}`)
	})
	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	render := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"url": "http://img.example.com/out.png"})
	}))
	t.Cleanup(render.Close)

	return &config.Config{
		OpenWeatherAPIKey:  "test-key",
		OpenWeatherBaseURL: upstream.URL,
		GeocodingBaseURL:   upstream.URL,
		RenderAPIURL:       render.URL,
		DefaultCity:        "北京",
		HTTPTimeoutSeconds: 2,
	}
}

func newOpenWeatherPlugin(cfg *config.Config) *OpenWeatherPlugin {
	return NewOpenWeatherPlugin(cfg, services.NewOpenWeatherService(cfg), services.NewRenderService(cfg))
}

func TestOpenWeatherCurrentSuccess(t *testing.T) {
	cfg := newOpenWeatherEnv(t, nil)
	p := newOpenWeatherPlugin(cfg)

	reply := p.Current("上海")
	if reply.Type != models.ReplyTypeImage {
		t.Fatalf("应返回图片回复, 实际: %+v", reply)
	}
	if reply.ImageURL != "http://img.example.com/out.png" {
		t.Errorf("图片地址不匹配: %s", reply.ImageURL)
	}
}

func TestOpenWeatherForecastSuccess(t *testing.T) {
	cfg := newOpenWeatherEnv(t, nil)
	p := newOpenWeatherPlugin(cfg)

	reply := p.Forecast("")
	if reply.Type != models.ReplyTypeImage {
		t.Fatalf("应返回图片回复, 实际: %+v", reply)
	}
}

func TestOpenWeatherMissingAPIKey(t *testing.T) {
	calls := 0
	cfg := newOpenWeatherEnv(t, &calls)
	cfg.OpenWeatherAPIKey = ""
	p := newOpenWeatherPlugin(cfg)

	for _, reply := range []models.Reply{p.Current("上海"), p.Forecast("上海")} {
		if reply.Type != models.ReplyTypePlain {
			t.Fatalf("应返回文本回复, 实际: %+v", reply)
		}
		if reply.Text != openWeatherMissingKeyMsg {
			t.Errorf("配置错误文案不匹配: %s", reply.Text)
		}
	}

	if calls != 0 {
		t.Errorf("未配置 API Key 时不应发起上游请求, 实际 %d 次", calls)
	}
}

func TestOpenWeatherLookupFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(upstream.Close)

	cfg := &config.Config{
		OpenWeatherAPIKey:  "test-key",
		OpenWeatherBaseURL: upstream.URL,
		GeocodingBaseURL:   upstream.URL,
		DefaultCity:        "北京",
		HTTPTimeoutSeconds: 2,
	}
	p := newOpenWeatherPlugin(cfg)

	reply := p.Current("上海")
	if reply.Type != models.ReplyTypePlain {
		t.Fatalf("应返回文本回复, 实际: %+v", reply)
	}
	if !strings.Contains(reply.Text, "[上海]") || !strings.Contains(reply.Text, "失败") {
		t.Errorf("失败文案应包含城市名: %s", reply.Text)
	}
}

func TestOpenWeatherDefaultCity(t *testing.T) {
	cfg := newOpenWeatherEnv(t, nil)
	cfg.OpenWeatherAPIKey = ""
	p := newOpenWeatherPlugin(cfg)

	// 城市缺省时回落到默认城市，此处借配置错误路径验证不会崩溃
	reply := p.Current("")
	if reply.Type != models.ReplyTypePlain {
		t.Fatalf("应返回文本回复, 实际: %+v", reply)
	}
}

func TestOpenWeatherAlertsFixedMessage(t *testing.T) {
	cfg := newOpenWeatherEnv(t, nil)
	p := newOpenWeatherPlugin(cfg)

	for _, city := range []string{"", "上海", "不存在的城市"} {
		reply := p.Alerts(city)
		if reply.Type != models.ReplyTypePlain || reply.Text != openWeatherAlertsMsg {
			t.Errorf("alerts 命令应固定返回暂不支持文案, 实际: %+v", reply)
		}
	}
}

func TestOpenWeatherHelp(t *testing.T) {
	cfg := newOpenWeatherEnv(t, nil)
	p := newOpenWeatherPlugin(cfg)

	reply := p.Help()
	if reply.Type != models.ReplyTypePlain {
		t.Fatalf("应返回文本回复, 实际: %+v", reply)
	}
	for _, want := range []string{"current", "forecast", "alerts", "help"} {
		if !strings.Contains(reply.Text, want) {
			t.Errorf("帮助文案缺少子命令 %s", want)
		}
	}
}

func TestToolRegistry(t *testing.T) {
	calls := 0
	cfg := newOpenWeatherEnv(t, &calls)
	p := newOpenWeatherPlugin(cfg)
	registry := NewToolRegistry(p)

	defs := registry.Definitions()
	if len(defs) != 2 {
		t.Fatalf("应注册 2 个工具, 实际 %d 个", len(defs))
	}
	if defs[0].Name != ToolGetCurrentWeather || defs[1].Name != ToolGetForecastWeather {
		t.Errorf("工具名称不匹配: %+v", defs)
	}
	if defs[0].Parameters.Properties["city"] == nil {
		t.Error("工具参数应包含 city 字段")
	}

	reply, err := registry.Execute(ToolGetCurrentWeather, `{"city":"上海"}`)
	if err != nil {
		t.Fatalf("工具执行返回错误: %v", err)
	}
	if reply.Type != models.ReplyTypeImage {
		t.Errorf("工具执行应返回图片回复: %+v", reply)
	}

	if _, err := registry.Execute("no_such_tool", `{}`); err == nil {
		t.Fatal("未知工具应返回错误")
	}
	if _, err := registry.Execute(ToolGetCurrentWeather, `not-json`); err == nil {
		t.Fatal("非法参数应返回错误")
	}
}

func TestToolRegistryMissingAPIKey(t *testing.T) {
	calls := 0
	cfg := newOpenWeatherEnv(t, &calls)
	cfg.OpenWeatherAPIKey = ""
	registry := NewToolRegistry(newOpenWeatherPlugin(cfg))

	for _, name := range []string{ToolGetCurrentWeather, ToolGetForecastWeather} {
		reply, err := registry.Execute(name, `{"city":"上海"}`)
		if err != nil {
			t.Fatalf("工具执行返回错误: %v", err)
		}
		if reply.Type != models.ReplyTypePlain || reply.Text != openWeatherMissingKeyMsg {
			t.Errorf("未配置凭证时工具应返回配置错误文案: %+v", reply)
		}
	}

	if calls != 0 {
		t.Errorf("未配置 API Key 时不应发起上游请求, 实际 %d 次", calls)
	}
}
