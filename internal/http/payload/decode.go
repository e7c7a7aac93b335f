package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/jellydator/validation"
)

// MaxPayloadBytes caps every request body read by Decoder.
const MaxPayloadBytes = 1 << 20

var ErrUnsupportedForm = errors.New("payload cannot be bound from a form")

// FormBinder is implemented by payloads that can be filled from form values.
type FormBinder interface {
	BindForm(values url.Values)
}

// Decoder reads JSON, urlencoded or multipart request bodies and validates the result.
type Decoder struct{}

func (d Decoder) DecodePayload(r *http.Request, object any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	r.Body = http.MaxBytesReader(nil, r.Body, MaxPayloadBytes)

	var err error
	switch mediaType {
	case "application/x-www-form-urlencoded":
		err = decodeForm(r, object)
	case "multipart/form-data":
		err = decodeMultipartForm(r, object)
	default:
		err = decodeJSON(r, object)
	}
	if err != nil {
		return err
	}

	return validatePayload(object)
}

func decodeJSON(r *http.Request, object any) (err error) {
	decoder := json.NewDecoder(r.Body)
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}

func decodeForm(r *http.Request, object any) error {
	binder, ok := object.(FormBinder)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedForm, object)
	}

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("decoding form payload: %w", err)
	}

	binder.BindForm(r.PostForm)
	return nil
}

func decodeMultipartForm(r *http.Request, object any) error {
	binder, ok := object.(FormBinder)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedForm, object)
	}

	if err := r.ParseMultipartForm(MaxPayloadBytes); err != nil {
		return fmt.Errorf("decoding multipart payload: %w", err)
	}
	defer r.MultipartForm.RemoveAll()

	binder.BindForm(r.PostForm)
	return nil
}

func validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
