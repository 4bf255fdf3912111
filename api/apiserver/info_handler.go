package apiserver

import (
	"net/http"

	"github.com/ritikbusiness/career-academy-backend-sub003/helpers/handlers"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

type InfoHandler struct {
	info models.Info
}

func NewInfoHandler(info models.Info) *InfoHandler {
	return &InfoHandler{info: info}
}

func (h *InfoHandler) GetInfo(w http.ResponseWriter, _ *http.Request) {
	handlers.WriteJSONResponse(w, http.StatusOK, h.info)
}
