package server

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"roomplanner/models"
)

// ValidateRoom applies the RoomSpec binding rules outside of a request.
func ValidateRoom(room models.RoomSpec) []string {
	return validationMessages(binding.Validator.ValidateStruct(room))
}

// validationMessages turns validator errors into sentences for people.
func validationMessages(err error) []string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	label := fe.Field()
	unit := " meters"
	prefix := ""
	if label == "Budget" {
		unit = ""
		prefix = "$"
	}
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "gte":
		return fmt.Sprintf("%s must be at least %s%s%s", label, prefix, fe.Param(), unit)
	case "lte":
		return fmt.Sprintf("%s must be at most %s%s%s", label, prefix, fe.Param(), unit)
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, fe.Tag())
	}
}
