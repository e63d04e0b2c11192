package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tf267183/ecamp3/config"
	"github.com/tf267183/ecamp3/internal/api/handler"
	"github.com/tf267183/ecamp3/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 为 nil 时导出接口不限流
func Setup(cfg *config.Config, h *handler.Handler, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 营地模块
		camps := v1.Group("/camps")
		{
			camps.POST("", h.Camp.CreateCamp)
			camps.GET("/:id", h.Camp.GetCamp)
			camps.POST("/:id/categories", h.Camp.CreateCategory)
			camps.POST("/:id/activities", h.Camp.CreateActivity)
		}

		// 阶段模块
		periods := v1.Group("/periods")
		{
			periods.POST("", h.Period.CreatePeriod)
			periods.GET("/:id", h.Period.GetPeriod)
			periods.PUT("/:id", h.Period.UpdatePeriod)
			periods.GET("/:id/picasso", h.Picasso.GetPicasso)
			periods.GET("/:id/schedule-entries", h.ScheduleEntry.ListByPeriod)
		}

		// 日程条目模块
		entries := v1.Group("/schedule-entries")
		{
			entries.POST("", h.ScheduleEntry.CreateScheduleEntry)
			entries.GET("/:id", h.ScheduleEntry.GetScheduleEntry)
			entries.PUT("/:id", h.ScheduleEntry.UpdateScheduleEntry)
			entries.DELETE("/:id", h.ScheduleEntry.DeleteScheduleEntry)
		}

		// 导出模块（按 IP 限流）
		export := v1.Group("/export")
		export.Use(middleware.RateLimit(limiter, cfg.RateLimit.ExportPerMinute, time.Minute, logger))
		{
			export.GET("/periods/:id/picasso.xlsx", h.Export.ExportPicasso)
			export.GET("/periods/:id/schedule.ics", h.Export.ExportCalendar)
		}
	}

	return r
}
