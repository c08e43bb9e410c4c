package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BB0813/astrbot-plugin-weather-Amap/internal/infrastructure/config"
)

// 地理编码接口的固定响应
const geoShanghaiBody = `[{"name":"Shanghai","lat":31.2304,"lon":121.4737}]`

func newOpenWeatherTestConfig(baseURL string) *config.Config {
	return &config.Config{
		OpenWeatherAPIKey:  "test-key",
		OpenWeatherBaseURL: baseURL,
		GeocodingBaseURL:   baseURL,
		HTTPTimeoutSeconds: 2,
	}
}

// newUpstream 启动一个按路径分发的模拟上游
func newUpstream(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for path, handler := range handlers {
		mux.HandleFunc(path, handler)
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestGetCurrentWeather(t *testing.T) {
	server := newUpstream(t, map[string]http.HandlerFunc{
		"/geo/1.0/direct": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, geoShanghaiBody)
		},
		"/data/2.5/weather": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"main":{"temp":22,"feels_like":21,"humidity":60},"weather":[{"description":"clear"}],"wind":{"speed":3}}`)
		},
	})

	svc := NewOpenWeatherService(newOpenWeatherTestConfig(server.URL))
	data, err := svc.GetCurrentWeather("Shanghai")
	if err != nil {
		t.Fatalf("GetCurrentWeather 返回错误: %v", err)
	}

	if data.City != "Shanghai" {
		t.Errorf("城市不匹配: %s", data.City)
	}
	if data.Desc != "clear" {
		t.Errorf("天气描述不匹配: %s", data.Desc)
	}
	if data.Temp != 22 || data.FeelsLike != 21 || data.Humidity != 60 || data.WindSpeed != 3 {
		t.Errorf("数值字段未原样透传: %+v", data)
	}
}

func TestGetCurrentWeatherMissingDescription(t *testing.T) {
	server := newUpstream(t, map[string]http.HandlerFunc{
		"/geo/1.0/direct": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, geoShanghaiBody)
		},
		"/data/2.5/weather": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"main":{"temp":10,"feels_like":8,"humidity":50},"weather":[],"wind":{}}`)
		},
	})

	svc := NewOpenWeatherService(newOpenWeatherTestConfig(server.URL))
	data, err := svc.GetCurrentWeather("上海")
	if err != nil {
		t.Fatalf("GetCurrentWeather 返回错误: %v", err)
	}

	if data.Desc != "暂无描述" {
		t.Errorf("缺失描述未使用占位文案: %s", data.Desc)
	}
	if data.WindSpeed != 0 {
		t.Errorf("缺失风速应为 0: %f", data.WindSpeed)
	}
}

func TestGetCurrentWeatherUpstreamStatuses(t *testing.T) {
	for _, status := range []int{401, 404, 500} {
		status := status
		t.Run(fmt.Sprintf("status_%d", status), func(t *testing.T) {
			server := newUpstream(t, map[string]http.HandlerFunc{
				"/geo/1.0/direct": func(w http.ResponseWriter, r *http.Request) {
					fmt.Fprint(w, geoShanghaiBody)
				},
				"/data/2.5/weather": func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(status)
				},
			})

			svc := NewOpenWeatherService(newOpenWeatherTestConfig(server.URL))
			if _, err := svc.GetCurrentWeather("上海"); err == nil {
				t.Fatalf("状态码 %d 应返回错误", status)
			}
		})
	}
}

func TestGetCurrentWeatherUpstreamTimeout(t *testing.T) {
	// 上游悬挂超过客户端超时时间，客户端取消后随请求上下文退出
	server := newUpstream(t, map[string]http.HandlerFunc{
		"/geo/1.0/direct": func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(3 * time.Second):
			case <-r.Context().Done():
			}
		},
	})

	cfg := newOpenWeatherTestConfig(server.URL)
	cfg.HTTPTimeoutSeconds = 1
	svc := NewOpenWeatherService(cfg)

	start := time.Now()
	if _, err := svc.GetCurrentWeather("上海"); err == nil {
		t.Fatal("上游超时应返回错误")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("应在超时限制内返回, 实际耗时 %v", elapsed)
	}
}

func TestGetCurrentWeatherNetworkFailure(t *testing.T) {
	// 已关闭的服务模拟网络故障
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	svc := NewOpenWeatherService(newOpenWeatherTestConfig(url))
	if _, err := svc.GetCurrentWeather("上海"); err == nil {
		t.Fatal("网络故障应返回错误")
	}
}

func TestGetCityCoordsNotFound(t *testing.T) {
	weatherCalls := 0
	server := newUpstream(t, map[string]http.HandlerFunc{
		"/geo/1.0/direct": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[]`)
		},
		"/data/2.5/weather": func(w http.ResponseWriter, r *http.Request) {
			weatherCalls++
		},
	})

	svc := NewOpenWeatherService(newOpenWeatherTestConfig(server.URL))
	if _, err := svc.GetCityCoords("不存在的城市"); err == nil {
		t.Fatal("空结果应返回错误")
	}

	// 坐标获取失败必须短路，不再调用天气接口
	if _, err := svc.GetCurrentWeather("不存在的城市"); err == nil {
		t.Fatal("坐标缺失时 GetCurrentWeather 应返回错误")
	}
	if weatherCalls != 0 {
		t.Errorf("坐标缺失时不应调用天气接口, 实际调用 %d 次", weatherCalls)
	}
}

func TestGetForecastWeatherDropsToday(t *testing.T) {
	var gotCnt string
	server := newUpstream(t, map[string]http.HandlerFunc{
		"/geo/1.0/direct": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, geoShanghaiBody)
		},
		"/data/2.5/forecast/daily": func(w http.ResponseWriter, r *http.Request) {
			gotCnt = r.URL.Query().Get("cnt")
			// 1736899200 = 2025-01-15 (周三), 此后每天 +86400
			fmt.Fprint(w, `{"list":[
				{"dt":1736899200,"weather":[{"description":"今天"}],"temp":{"day":5,"night":1,"min":0,"max":6},"humidity":70,"speed":2},
				{"dt":1736985600,"weather":[{"description":"多云"}],"temp":{"day":7,"night":2,"min":1,"max":8},"humidity":65,"speed":3},
				{"dt":1737072000,"weather":[{"description":"晴"}],"temp":{"day":9,"night":3,"min":2,"max":10},"humidity":60,"speed":4},
				{"dt":1737158400,"weather":[],"temp":{"day":11,"night":4,"min":3,"max":12},"humidity":55,"speed":5}
			]}`)
		},
	})

	svc := NewOpenWeatherService(newOpenWeatherTestConfig(server.URL))
	days, err := svc.GetForecastWeather("上海")
	if err != nil {
		t.Fatalf("GetForecastWeather 返回错误: %v", err)
	}

	if gotCnt != "4" {
		t.Errorf("cnt 参数应为 4, 实际为 %s", gotCnt)
	}
	if len(days) != 3 {
		t.Fatalf("应返回 3 天, 实际 %d 天", len(days))
	}
	// 第 0 项（当天）被丢弃
	if days[0].Desc != "多云" {
		t.Errorf("第一项应为次日数据, 实际描述: %s", days[0].Desc)
	}
	if days[0].DateStr != "2025-01-16" || days[0].WeekdayStr != "周四" {
		t.Errorf("日期格式化错误: %s %s", days[0].DateStr, days[0].WeekdayStr)
	}
	// 最后一项缺失描述使用占位文案
	if days[2].Desc != "暂无描述" {
		t.Errorf("缺失描述未使用占位文案: %s", days[2].Desc)
	}
}

func TestGetForecastWeatherInsufficientData(t *testing.T) {
	server := newUpstream(t, map[string]http.HandlerFunc{
		"/geo/1.0/direct": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, geoShanghaiBody)
		},
		"/data/2.5/forecast/daily": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"list":[{"dt":1736899200,"weather":[{"description":"今天"}],"temp":{},"humidity":70,"speed":2}]}`)
		},
	})

	svc := NewOpenWeatherService(newOpenWeatherTestConfig(server.URL))
	if _, err := svc.GetForecastWeather("上海"); err == nil {
		t.Fatal("仅 1 天数据应返回错误")
	}
}

func TestGetForecastWeatherMalformedJSON(t *testing.T) {
	server := newUpstream(t, map[string]http.HandlerFunc{
		"/geo/1.0/direct": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, geoShanghaiBody)
		},
		"/data/2.5/forecast/daily": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"list": not-json`)
		},
	})

	svc := NewOpenWeatherService(newOpenWeatherTestConfig(server.URL))
	if _, err := svc.GetForecastWeather("上海"); err == nil {
		t.Fatal("响应体非法应返回错误")
	}
}
