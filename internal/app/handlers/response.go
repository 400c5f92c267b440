package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/apperrors"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/log_messages"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// jsonFieldName makes validation errors report the wire name of a field.
func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// respondError maps err onto the error body. Errors outside the taxonomy are
// logged and replaced by a generic 500.
func respondError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	appErr, ok := apperrors.As(err)
	if !ok || appErr.Kind == apperrors.KindInternal {
		logger.CtxError(ctx, log_messages.UnexpectedError, err, slog.String("route", c.FullPath()))
		_ = c.Error(err)
		appErr = apperrors.Internal(log_messages.UnexpectedError, nil)
	} else if appErr.StatusCode() >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	c.AbortWithStatusJSON(appErr.StatusCode(), appErr.Response())
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, bindingError(err))
		return false
	}
	return true
}

func bindingError(err error) *apperrors.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]apperrors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, apperrors.FieldError{
				Field:   fe.Field(),
				Tag:     fe.Tag(),
				Message: fieldMessage(fe),
			})
		}
		return apperrors.Validation(log_messages.InvalidInputData, details...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperrors.Validation(log_messages.InvalidInputData, apperrors.FieldError{
			Field:   typeErr.Field,
			Tag:     "type",
			Message: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type),
		})
	}

	return apperrors.Validation(log_messages.InvalidInputData, apperrors.FieldError{
		Field:   "body",
		Tag:     "json",
		Message: "request body must be valid JSON: " + err.Error(),
	})
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s check", field, fe.Tag())
	}
}

func invalidParam(field, tag, message string) *apperrors.AppError {
	return apperrors.Validation(log_messages.InvalidInputData, apperrors.FieldError{
		Field:   field,
		Tag:     tag,
		Message: message,
	})
}

// pageParams reads skip and limit. A missing limit is left at 0 for the
// repository to default; oversized limits are clamped there too.
func pageParams(c *gin.Context) (skip, limit int64, err error) {
	if skip, err = queryInt(c, "skip"); err != nil {
		return 0, 0, err
	}
	if limit, err = queryInt(c, "limit"); err != nil {
		return 0, 0, err
	}
	if skip < 0 {
		return 0, 0, invalidParam("skip", "gte", "skip must be greater than or equal to 0")
	}
	if limit < 0 {
		return 0, 0, invalidParam("limit", "gte", "limit must be greater than or equal to 0")
	}
	return skip, limit, nil
}

func queryInt(c *gin.Context, key string) (int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, invalidParam(key, "int", key+" must be an integer")
	}
	return v, nil
}

func queryBool(c *gin.Context, key string, def bool) (bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, invalidParam(key, "bool", key+" must be a boolean")
	}
	return v, nil
}
