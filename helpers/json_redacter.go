package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"

	"code.cloudfoundry.org/lager/v3"
)

const (
	postgresDbURLPattern = `^(postgres|postgresql):\/\/(.+):(.+)@([\da-zA-Z\.-]+)(:[\d]{4,5})?\/(.+)`
	mysqlDSNPattern      = `^([^:@\/]+):([^@]+)@(tcp|unix)\((.+)\)\/(.*)`
	bearerPattern        = `(?i)^bearer\s+.+`
)

// JSONRedacter redacts values whose key matches one of the key patterns, credentials
// embedded in database connection strings and bearer tokens.
type JSONRedacter struct {
	jsonRedacter  *lager.JSONRedacter
	postgresURL   *regexp.Regexp
	mysqlDSN      *regexp.Regexp
	bearerMatcher *regexp.Regexp
}

func NewJSONRedacter(keyPatterns []string, valuePatterns []string) (*JSONRedacter, error) {
	jsonRedacter, err := lager.NewJSONRedacter(keyPatterns, valuePatterns)
	if err != nil {
		return nil, err
	}
	return &JSONRedacter{
		jsonRedacter:  jsonRedacter,
		postgresURL:   regexp.MustCompile(postgresDbURLPattern),
		mysqlDSN:      regexp.MustCompile(mysqlDSNPattern),
		bearerMatcher: regexp.MustCompile(bearerPattern),
	}, nil
}

func (r JSONRedacter) Redact(data []byte) []byte {
	var jsonBlob interface{}
	if len(data) == 0 {
		return data
	}
	err := json.Unmarshal(data, &jsonBlob)
	if err != nil {
		return errorToBytes(err)
	}
	jsonBlob = r.redactValue(jsonBlob)

	data, err = json.Marshal(jsonBlob)
	if err != nil {
		return errorToBytes(err)
	}

	return r.jsonRedacter.Redact(data)
}

func (r JSONRedacter) redactValue(data interface{}) interface{} {
	switch v := data.(type) {
	case []interface{}:
		for i := range v {
			v[i] = r.redactValue(v[i])
		}
		return v
	case map[string]interface{}:
		for k, val := range v {
			v[k] = r.redactValue(val)
		}
		return v
	case string:
		return r.redactString(v)
	default:
		return data
	}
}

func (r JSONRedacter) redactString(s string) string {
	switch {
	case r.postgresURL.MatchString(s):
		return r.postgresURL.ReplaceAllString(s, `$1://$2:*REDACTED*@$4$5/$6`)
	case r.mysqlDSN.MatchString(s):
		return r.mysqlDSN.ReplaceAllString(s, `$1:*REDACTED*@$3($4)/$5`)
	case r.bearerMatcher.MatchString(s):
		return "Bearer *REDACTED*"
	}
	return s
}

func errorToBytes(err error) []byte {
	var content []byte
	var errType *json.UnsupportedTypeError
	if errors.As(err, &errType) {
		data := map[string]interface{}{"lager serialisation error": errType.Error()}
		content, err = json.Marshal(data)
	}
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s", err.Error())
		return content
	}
	return content
}
