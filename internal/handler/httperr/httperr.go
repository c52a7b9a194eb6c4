package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		// Code carries a stable machine-readable identifier for outcomes
		// callers are expected to branch on, e.g. E_OVERLAP.
		Code string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, msg, "", detail)
}

func AbortWithCode(c *gin.Context, status int, err error, msg string, code string) {
	abort(c, status, err, msg, code, nil)
}

func abort(c *gin.Context, status int, err error, msg string, code string, detail any) {
	if err == nil {
		panic("httperr: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
