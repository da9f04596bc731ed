package consts

const (
	TokenBlacklistKey = "auth:blacklist:"
	CourseListKey     = "course:list"
)

const (
	ProfileWriteLock = "profile:write:lock:"
	JobExpireLock    = "job:expire:lock"
)
