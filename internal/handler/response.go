package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cliniccare/clinic-api/internal/repository"
	"github.com/cliniccare/clinic-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondOK writes a success envelope.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, NewSuccessResponse(data))
}

// RespondCreated writes a success envelope with 201.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, NewSuccessResponse(data))
}

// RespondError maps an error to its HTTP status and writes an error
// envelope. repository.ErrNotFound maps to 404.
func RespondError(c *gin.Context, err error) {
	if stderrors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, NewErrorResponse("not found"))
		return
	}
	c.JSON(errors.HTTPStatus(err), NewErrorResponse(err.Error()))
}
