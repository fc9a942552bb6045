package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 8 << 20

type envelope map[string]any

type errorBody struct {
	Code    string `json:"code"`
	Message any    `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)

	return err
}

// readJSON decodes exactly one JSON value from the body into dst.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var (
			syntaxError           *json.SyntaxError
			unmarshalTypeError    *json.UnmarshalTypeError
			maxBytesError         *http.MaxBytesError
			invalidUnmarshalError *json.InvalidUnmarshalError
		)
		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	if err = dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func (api *API) logError(r *http.Request, err error) {
	api.log.Error("request failed",
		zap.String("method", r.Method),
		zap.String("uri", r.URL.RequestURI()),
		zap.Error(err))
}

func (api *API) errorResponse(w http.ResponseWriter, r *http.Request, status int, message any) {
	env := envelope{"error": errorBody{Code: http.StatusText(status), Message: message}}
	if err := writeJSON(w, status, env, nil); err != nil {
		api.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// ServerErrorResponse logs err and answers 500 with a generic message.
func (api *API) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.logError(r, err)
	api.errorResponse(w, r, http.StatusInternalServerError, messageInternalServerError)
}

// BadRequestResponse answers 400 with err's message.
func (api *API) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (api *API) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	api.errorResponse(w, r, http.StatusNotFound, "the requested resource could not be found")
}

func (api *API) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	api.errorResponse(w, r, http.StatusMethodNotAllowed, fmt.Sprintf("the %s method is not supported for this resource", r.Method))
}

// getStatusCode maps an *Error code to a status; anything else is a 500.
func (api *API) getStatusCode(w http.ResponseWriter, r *http.Request, err error) {
	var ierr *Error
	if !errors.As(err, &ierr) {
		api.ServerErrorResponse(w, r, err)
		return
	}

	switch ierr.Code() {
	case ErrBadParamInput:
		api.BadRequestResponse(w, r, ierr)
	case ErrTooManyRequests:
		api.errorResponse(w, r, http.StatusTooManyRequests, ierr.Error())
	case ErrUnavailable:
		api.errorResponse(w, r, http.StatusServiceUnavailable, ierr.Error())
	default:
		api.ServerErrorResponse(w, r, ierr)
	}
}

// translateError turns validator failures into readable English messages.
func translateError(err error, trans ut.Translator) []error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []error{err}
	}

	out := make([]error, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, errors.New(e.Translate(trans)))
	}

	return out
}
