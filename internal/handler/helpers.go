package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/apierror"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// idParam parses the :id path segment. Writes the 400 response itself when
// the segment is not a positive integer.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Unknown errors become an opaque 500 — the middleware logs the detail.
func respondServiceError(c *gin.Context, err error) {
	var (
		valErr   *service.ValidationError
		refErr   *service.ReferenceError
		saldoErr *service.InsufficientBalanceError
	)
	switch {
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, apierror.New(valErr.Error()))
	case errors.As(err, &refErr):
		c.JSON(http.StatusNotFound, apierror.New(refErr.Error()))
	case errors.As(err, &saldoErr):
		c.JSON(http.StatusConflict, apierror.New(saldoErr.Error()))
	default:
		// ErrorHandler logs the detail and writes the single 500 envelope.
		_ = c.Error(err)
		c.Abort()
	}
}
