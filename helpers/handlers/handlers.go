package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ritikbusiness/career-academy-backend-sub003/helpers"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"

	"code.cloudfoundry.org/lager/v3"
)

var handlersLogger = helpers.InitLoggerFromConfig(&helpers.LoggingConfig{Level: "error"}, "helpers.handlers")

func WriteJSONResponse(w http.ResponseWriter, statusCode int, jsonObj interface{}) {
	jsonBytes, err := json.Marshal(jsonObj)
	if err != nil {
		handlersLogger.Error("marshall-json-response", err, lager.Data{"statusCode": statusCode})
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(jsonBytes)))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, err = w.Write(jsonBytes)
	if err != nil {
		handlersLogger.Error("write-json-response", err, lager.Data{"statusCode": statusCode})
	}
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	WriteJSONResponse(w, statusCode, models.ErrorResponse{Error: message})
}
