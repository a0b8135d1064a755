package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Elias-Manica/push-notifications-poc/internal/dto"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(
		func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		},
	)
	return v
}

func RegisterTokenRequest(req *dto.RegisterTokenRequest) error {
	return check(req)
}

func SendNotificationRequest(req *dto.SendNotificationRequest) error {
	return check(req)
}

func check(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	res := make(Errors, 0, len(ves))
	for _, fe := range ves {
		res = append(res, message(fe))
	}
	return res
}

func message(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed on the %s rule", field, fe.Tag())
	}
}
