package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
)

type TimeLogFormat struct {
	lager.LogFormat
	LogTime string `json:"log_time"`
}

func NewTimeLogFormat(log lager.LogFormat) TimeLogFormat {
	floatTime, err := strconv.ParseFloat(log.Timestamp, 64)
	if err != nil {
		floatTime = 0.0
	}
	tm := time.Unix(int64(floatTime), 0).UTC()
	return TimeLogFormat{
		LogTime:   tm.Format(time.RFC3339),
		LogFormat: log,
	}
}

func (tlf TimeLogFormat) ToJSON() []byte {
	content, err := json.Marshal(tlf)
	var unSupportedErr *json.UnsupportedTypeError
	var marshalErr *json.MarshalerError
	if err != nil {
		if errors.As(err, &unSupportedErr) || errors.As(err, &marshalErr) {
			tlf.Data = map[string]interface{}{"lager serialisation error": err.Error(), "data_dump": fmt.Sprintf("%#v", tlf.Data)}
			content, err = json.Marshal(tlf)
		}
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%s", err.Error())
			content = []byte("{}")
		}
	}
	return content
}

type redactingWriterSink struct {
	writer      io.Writer
	minLogLevel lager.LogLevel
	writeL      sync.Mutex
	redacter    *JSONRedacter
}

func NewRedactingWriterSink(writer io.Writer, minLogLevel lager.LogLevel, keyPatterns []string, valuePatterns []string) (lager.Sink, error) {
	redacter, err := NewJSONRedacter(keyPatterns, valuePatterns)
	if err != nil {
		return nil, err
	}
	return &redactingWriterSink{
		writer:      writer,
		minLogLevel: minLogLevel,
		redacter:    redacter,
	}, nil
}

func (sink *redactingWriterSink) Log(log lager.LogFormat) {
	if log.LogLevel < sink.minLogLevel {
		return
	}
	v := NewTimeLogFormat(log).ToJSON()
	rv := sink.redacter.Redact(v)

	sink.writeL.Lock()
	defer sink.writeL.Unlock()
	_, _ = sink.writer.Write(rv)
	_, _ = sink.writer.Write([]byte("\n"))
}
