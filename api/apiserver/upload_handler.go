package apiserver

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"github.com/google/uuid"

	"github.com/ritikbusiness/career-academy-backend-sub003/api/config"
	"github.com/ritikbusiness/career-academy-backend-sub003/helpers/handlers"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
	"github.com/ritikbusiness/career-academy-backend-sub003/validation"
)

const (
	uploadFormField = "file"
	sniffLen        = 512
	// room for the multipart envelope around the file itself
	multipartOverhead = 64 << 10
)

var safeExtension = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

type UploadHandler struct {
	logger lager.Logger
	conf   config.UploadsConfig
}

func NewUploadHandler(logger lager.Logger, conf config.UploadsConfig) *UploadHandler {
	return &UploadHandler{
		logger: logger.Session("upload-handler"),
		conf:   conf,
	}
}

// Upload stores a single multipart file under a generated name. The
// content type is sniffed from the data, not taken from the client.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("upload", lager.Data{"request_id": RequestIDFromContext(r.Context())})
	user, ok := currentUser(w, r, logger)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.conf.MaxBytes+multipartOverhead)
	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			handlers.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "File is too large")
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ValidationErrorResponse{
				Error:   "Validation failed",
				Details: []models.FieldError{{Field: uploadFormField, Message: "A multipart file field named file is required"}},
			})
		default:
			logger.Info("failed-to-read-form", lager.Data{"error": err.Error()})
			handlers.WriteErrorResponse(w, http.StatusBadRequest, "Malformed multipart body")
		}
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > h.conf.MaxBytes {
		handlers.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "File is too large")
		return
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		writeInternalError(w, logger, "failed-to-read-upload", err)
		return
	}
	head = head[:n]
	contentType, _, _ := strings.Cut(http.DetectContentType(head), ";")
	if !slices.Contains(h.conf.AllowedContentTypes, contentType) {
		handlers.WriteErrorResponse(w, http.StatusUnsupportedMediaType, "Unsupported file type "+contentType)
		return
	}

	id := uuid.NewString()
	storedName := id
	if ext := strings.ToLower(filepath.Ext(header.Filename)); safeExtension.MatchString(ext) {
		storedName += ext
	}
	size, err := h.store(storedName, head, file)
	if err != nil {
		writeInternalError(w, logger, "failed-to-store-upload", err)
		return
	}

	logger.Info("uploaded", lager.Data{"userId": user.Id, "id": id, "size": size, "contentType": contentType})
	handlers.WriteJSONResponse(w, http.StatusCreated, models.UploadResponse{
		Id:          id,
		FileName:    validation.StripHTML(filepath.Base(header.Filename)),
		ContentType: contentType,
		Size:        size,
	})
}

func (h *UploadHandler) store(name string, head []byte, rest io.Reader) (int64, error) {
	if err := os.MkdirAll(h.conf.Dir, 0750); err != nil {
		return 0, err
	}
	path := filepath.Join(h.conf.Dir, name)
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0640)
	if err != nil {
		return 0, err
	}
	size, err := io.Copy(out, io.MultiReader(bytes.NewReader(head), rest))
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, err
	}
	return size, nil
}
