package errors

import "errors"

var (
	// ErrOptimisticLock 乐观锁冲突：记录已被其他操作修改
	ErrOptimisticLock = errors.New("数据已被其他操作修改，请刷新后重试")
	// ErrRateLimited 请求频率超出限制
	ErrRateLimited = errors.New("请求过于频繁，请稍后再试")
)
