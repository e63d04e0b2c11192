package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tf267183/ecamp3/internal/service"
	pkgerrors "github.com/tf267183/ecamp3/pkg/errors"
	"github.com/tf267183/ecamp3/pkg/response"
)

// handleServiceError 业务错误 → HTTP 状态码 + 业务错误码
//
//	10001 参数错误   10006 乐观锁冲突
//	11xxx 营地/类别/活动   12xxx 阶段   13xxx 日程条目   16xxx 导出
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCampNotFound):
		response.NotFound(c, 11001, "营地不存在")
	case errors.Is(err, service.ErrCategoryNotFound):
		response.NotFound(c, 11002, "活动类别不存在")
	case errors.Is(err, service.ErrActivityNotFound):
		response.NotFound(c, 11003, "活动不存在")

	case errors.Is(err, service.ErrPeriodNotFound):
		response.NotFound(c, 12001, "阶段不存在")
	case errors.Is(err, service.ErrPeriodDateInvalid):
		response.BadRequest(c, 12002, "阶段日期无效：结束日期早于开始日期或超过 366 天")
	case errors.Is(err, service.ErrPeriodOverlap):
		response.Conflict(c, 12003, "阶段日期与同营地已有阶段重叠")

	case errors.Is(err, service.ErrScheduleEntryNotFound):
		response.NotFound(c, 13001, "日程条目不存在")
	case errors.Is(err, service.ErrScheduleEntryTimeInvalid):
		response.BadRequest(c, 13002, "日程条目结束时间必须晚于开始时间")
	case errors.Is(err, service.ErrScheduleEntryOutOfPeriod):
		response.UnprocessableEntity(c, 13003, "日程条目超出阶段范围")

	case errors.Is(err, service.ErrExportNoEntries):
		response.NotFound(c, 16101, "该阶段暂无日程条目")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)

	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 10006, pkgerrors.ErrOptimisticLock.Error())
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
