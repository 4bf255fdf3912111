package validation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"

	"github.com/ritikbusiness/career-academy-backend-sub003/helpers/handlers"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

const (
	MaxBodyBytes           = 1 << 20
	validationFailedError  = "Validation failed"
	internalValidationText = "Internal server error"
)

type inputKey Source

type Gate struct {
	schemas *Schemas
	logger  lager.Logger
}

func NewGate(schemas *Schemas, logger lager.Logger) *Gate {
	return &Gate{
		schemas: schemas,
		logger:  logger.Session("validation"),
	}
}

// Body validates the JSON request body against the named schema.
func (g *Gate) Body(schemaName string) mux.MiddlewareFunc {
	return g.middleware(schemaName, SourceBody)
}

// Query validates the URL query parameters against the named schema.
func (g *Gate) Query(schemaName string) mux.MiddlewareFunc {
	return g.middleware(schemaName, SourceQuery)
}

// Path validates the route variables against the named schema.
func (g *Gate) Path(schemaName string) mux.MiddlewareFunc {
	return g.middleware(schemaName, SourcePath)
}

func (g *Gate) middleware(schemaName string, source Source) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := g.logger.Session("validate", lager.Data{"schema": schemaName, "source": source})

			schema, err := g.schemas.Get(schemaName)
			if err != nil {
				logger.Error("failed-to-get-schema", err)
				handlers.WriteErrorResponse(w, http.StatusInternalServerError, internalValidationText)
				return
			}

			raw, fieldErr := readInput(w, r, source)
			if fieldErr != nil {
				writeValidationFailed(w, []models.FieldError{*fieldErr})
				return
			}

			data, details, err := schema.Validate(raw, source)
			if err != nil {
				logger.Error("failed-to-validate", err)
				handlers.WriteErrorResponse(w, http.StatusInternalServerError, internalValidationText)
				return
			}
			if len(details) > 0 {
				logger.Debug("validation-failed", lager.Data{"details": details})
				writeValidationFailed(w, details)
				return
			}

			ctx := context.WithValue(r.Context(), inputKey(source), data)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func readInput(w http.ResponseWriter, r *http.Request, source Source) (any, *models.FieldError) {
	switch source {
	case SourceQuery:
		raw := map[string]any{}
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				raw[key] = values[0]
			}
		}
		return raw, nil
	case SourcePath:
		raw := map[string]any{}
		for key, value := range mux.Vars(r) {
			raw[key] = value
		}
		return raw, nil
	}

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	decoder.UseNumber()
	var raw any
	err := decoder.Decode(&raw)
	switch {
	case errors.Is(err, io.EOF):
		return map[string]any{}, nil
	case err != nil:
		return nil, &models.FieldError{Field: string(SourceBody), Message: "Malformed JSON: " + err.Error()}
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, &models.FieldError{Field: string(SourceBody), Message: "Malformed JSON: unexpected data after the top-level value"}
	}
	return raw, nil
}

func writeValidationFailed(w http.ResponseWriter, details []models.FieldError) {
	handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ValidationErrorResponse{
		Error:   validationFailedError,
		Details: details,
	})
}

// Input returns the normalized input stored by the gate for source.
func Input(ctx context.Context, source Source) (map[string]any, bool) {
	data, ok := ctx.Value(inputKey(source)).(map[string]any)
	return data, ok
}

// Bind decodes the normalized input for source into dst.
func Bind(r *http.Request, source Source, dst any) error {
	data, ok := Input(r.Context(), source)
	if !ok {
		return fmt.Errorf("%w: no validated %s input on request", ErrInternal, source)
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return nil
}
