package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/logger"
	"github.com/wfunc/hexrealm/internal/middleware"
	"github.com/wfunc/hexrealm/internal/repository"
	"go.uber.org/zap"
)

// ErrorResponse 错误响应
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListResponse 分页列表响应，未指定 page 时直接返回数组
type ListResponse struct {
	Count    int64       `json:"count"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Results  interface{} `json:"results"`
}

// respondError 按错误码返回状态码与 {"error": "..."}
func respondError(c *gin.Context, err error) {
	appErr, ok := errors.As(err)
	if !ok {
		appErr = errors.Wrap(err, errors.ErrUnknown)
	}

	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		logger.LogError(err, "request failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.FullPath()),
			zap.Int("code", int(appErr.Code)),
		)
		c.JSON(status, ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: appErr.PublicMessage()})
}

// respondList 输出列表，分页时附带总数
func respondList(c *gin.Context, results interface{}, p *repository.Pagination) {
	if p == nil {
		c.JSON(http.StatusOK, results)
		return
	}
	c.JSON(http.StatusOK, ListResponse{
		Count:    p.Total,
		Page:     p.Page,
		PageSize: p.PageSize,
		Results:  results,
	})
}

// bindJSON 解析请求体，失败时已写入 400
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return false
	}
	return true
}

// pathID 解析路径中的 :id
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return 0, false
	}
	return uint(id), true
}

// queryParser 查询参数解析，记录第一个格式错误
type queryParser struct {
	c   *gin.Context
	err error
}

func newQueryParser(c *gin.Context) *queryParser {
	return &queryParser{c: c}
}

func (q *queryParser) fail(name, kind string) {
	if q.err == nil {
		q.err = errors.Validation(name + " must be " + kind)
	}
}

// uintParam 可选的正整数参数
func (q *queryParser) uintParam(name string) uint {
	raw := q.c.Query(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		q.fail(name, "a positive integer")
		return 0
	}
	return uint(v)
}

// uintPtr 同 uintParam，但区分未提供
func (q *queryParser) uintPtr(name string) *uint {
	if q.c.Query(name) == "" {
		return nil
	}
	v := q.uintParam(name)
	return &v
}

// intPtr 可选整数参数
func (q *queryParser) intPtr(name string) *int {
	raw := q.c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		q.fail(name, "an integer")
		return nil
	}
	return &v
}

// boolPtr 可选布尔参数，接受 true/false/1/0
func (q *queryParser) boolPtr(name string) *bool {
	raw := strings.ToLower(q.c.Query(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		q.fail(name, "a boolean")
		return nil
	}
	return &v
}

// pagination page/page_size
func (q *queryParser) pagination() *repository.Pagination {
	page := q.intPtr("page")
	size := q.intPtr("page_size")
	if page == nil {
		return nil
	}
	pageSize := 0
	if size != nil {
		pageSize = *size
	}
	return repository.NewPagination(*page, pageSize)
}

// ok 没有格式错误时返回 true，否则写入 400
func (q *queryParser) ok() bool {
	if q.err != nil {
		respondError(q.c, q.err)
		return false
	}
	return true
}
