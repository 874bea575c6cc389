package response

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime"

	"crisis-alert-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

func Unauthorized(c *gin.Context) {
	c.JSON(parseError(errors.NewUnauthorizedHTTPError()))
}

func Forbidden(c *gin.Context) {
	c.JSON(parseError(errors.NewForbiddenHTTPError()))
}

func parseError(err error) (int, Resp) {
	switch parsedErr := err.(type) {
	case *errors.ValidationError:
		return http.StatusBadRequest, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Error(),
		}
	case *errors.ValidationErrorCollector:
		return http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   ValidationErrorMsg,
			Errors:    parsedErr.Errors(),
		}
	case *errors.HTTPError:
		statusCode := parsedErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, Resp{
			ErrorCode: parsedErr.Code,
			Message:   parsedErr.Message,
		}
	default:
		return http.StatusInternalServerError, Resp{
			ErrorCode: InternalServerErrorCode,
			Message:   DefaultErrorMessage,
		}
	}
}

// Error sends the status and body derived from err. Unknown errors become a generic 500.
func Error(c *gin.Context, err error) {
	c.JSON(parseError(err))
}

// HttpError sends response for *errors.HTTPError.
func HttpError(c *gin.Context, err *errors.HTTPError) {
	c.JSON(parseError(err))
}

// ErrorWithMap sends the HTTPError mapped to err (matched with errors.Is), else Error.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping) {
	for target, httpErr := range eMap {
		if stderrors.Is(err, target) {
			Error(c, httpErr)
			return
		}
	}
	Error(c, err)
}

// PanicError sends a 500 for a recovered panic value.
func PanicError(c *gin.Context, _ any) {
	c.JSON(parseError(nil))
}

// StackTrace returns up to DefaultStackTraceDepth frames, skipping skip callers.
func StackTrace(skip int) []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	var stackTrace []string
	for {
		f, more := frames.Next()
		stackTrace = append(stackTrace, fmt.Sprintf("%s:%d %s", f.File, f.Line, f.Function))
		if !more {
			break
		}
	}
	return stackTrace
}
