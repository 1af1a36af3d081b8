package emit

import (
	"errors"
	"io/fs"
	"syscall"
)

var ErrTemplate = errors.New("template error")

// ErrorCode returns a short code, such as EEXIST, describing the file system
// error err.
func ErrorCode(err error) string {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		if code := errnoCode(errno); code != "" {
			return code
		}
	}
	switch {
	case errors.Is(err, fs.ErrExist):
		return "EEXIST"
	case errors.Is(err, fs.ErrNotExist):
		return "ENOENT"
	case errors.Is(err, fs.ErrPermission):
		return "EACCES"
	}
	if err == nil {
		return ""
	}
	return "EUNKNOWN"
}

func errnoCode(errno syscall.Errno) string {
	switch errno {
	case syscall.EEXIST:
		return "EEXIST"
	case syscall.ENOENT:
		return "ENOENT"
	case syscall.EACCES:
		return "EACCES"
	case syscall.EPERM:
		return "EPERM"
	case syscall.ENOTDIR:
		return "ENOTDIR"
	case syscall.EISDIR:
		return "EISDIR"
	case syscall.ENOSPC:
		return "ENOSPC"
	case syscall.EROFS:
		return "EROFS"
	}
	return ""
}
