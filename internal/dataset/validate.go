package dataset

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/elektrokombinacija/campaign-globe/internal/core"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

type activityCheck struct {
	ID           string  `validate:"required"`
	Title        string  `validate:"required"`
	Lon          float64 `validate:"longitude"`
	Lat          float64 `validate:"latitude"`
	Day          int     `validate:"gte=0"`
	Pledges      int     `validate:"gte=0"`
	EventDate    string  `validate:"omitempty,datetime=2006-01-02"`
	EventEndDate string  `validate:"omitempty,datetime=2006-01-02"`
	Status       string  `validate:"omitempty,oneof=pending approved rejected"`
	LinkURL      string  `validate:"omitempty,url"`
}

// ErrInvalidActivity wraps every activity validation failure.
var ErrInvalidActivity = errors.New("invalid activity")

// ValidateActivity checks an activity record before it reaches the map.
func ValidateActivity(a core.Activity) error {
	err := getValidator().Struct(activityCheck{
		ID:           a.ID,
		Title:        a.Title,
		Lon:          a.Coordinates.Lon(),
		Lat:          a.Coordinates.Lat(),
		Day:          a.Day,
		Pledges:      a.PledgesCount,
		EventDate:    a.EventDate,
		EventEndDate: a.EventEndDate,
		Status:       string(a.Status),
		LinkURL:      a.LinkURL,
	})
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidActivity, err)
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fieldMessage(fe)
	}
	return fmt.Errorf("%w %q: %s", ErrInvalidActivity, a.ID, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "latitude":
		return "latitude must be within [-90, 90]"
	case "longitude":
		return "longitude must be within [-180, 180]"
	case "datetime":
		return fe.Field() + " must be YYYY-MM-DD"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
