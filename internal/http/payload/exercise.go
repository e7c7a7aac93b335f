package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"exercisetracker/internal/core"
	"net/url"
	"strconv"
	"strings"

	"github.com/jellydator/validation"
)

// Minutes holds a duration sent either as a JSON number or as a numeric string.
type Minutes string

func (m *Minutes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = Minutes(s)
		return nil
	}

	*m = Minutes(data)
	return nil
}

// Int returns the parsed value, or 0 if it is not a base-10 integer.
func (m Minutes) Int() int {
	n, err := strconv.Atoi(strings.TrimSpace(string(m)))
	if err != nil {
		return 0
	}
	return n
}

// DateText holds a date as sent by the client. Non-string JSON values decode to empty.
type DateText string

func (d *DateText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = ""
		return nil
	}
	*d = DateText(s)
	return nil
}

type AddExerciseRequest struct {
	Description string   `json:"description"`
	Duration    Minutes  `json:"duration"`
	Date        DateText `json:"date,omitempty"`
}

func (a *AddExerciseRequest) BindForm(values url.Values) {
	a.Description = values.Get("description")
	a.Duration = Minutes(values.Get("duration"))
	a.Date = DateText(values.Get("date"))
}

func (a AddExerciseRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Description, validation.Required, validation.By(notBlank)),
		validation.Field(&a.Duration, validation.Required, validation.By(positiveInteger)),
	)
}

// ToMessage converts the request. A date that does not parse is dropped so the service uses today.
func (a AddExerciseRequest) ToMessage() core.ExerciseMessage {
	msg := core.ExerciseMessage{
		Description: strings.TrimSpace(a.Description),
		Duration:    a.Duration.Int(),
	}

	if d, ok := core.ParseDate(string(a.Date)); ok {
		msg.Date = &d
	}

	return msg
}

func notBlank(value any) error {
	s, _ := value.(string)
	if s != "" && strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

func positiveInteger(value any) error {
	m, _ := value.(Minutes)
	if m == "" {
		return nil
	}
	if m.Int() <= 0 {
		return errors.New("must be a positive integer")
	}
	return nil
}
