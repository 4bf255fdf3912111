package helpers_test

import (
	"bytes"
	"encoding/json"

	"code.cloudfoundry.org/lager/v3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ritikbusiness/career-academy-backend-sub003/helpers"
)

var _ = Describe("NewLogger", func() {
	var buffer *bytes.Buffer

	BeforeEach(func() {
		buffer = &bytes.Buffer{}
	})

	It("rejects unknown levels", func() {
		_, err := helpers.NewLogger(&helpers.LoggingConfig{Level: "verbose"}, "test", buffer)
		Expect(err).To(MatchError(ContainSubstring("unsupported log level: verbose")))
	})

	It("accepts upper case levels", func() {
		_, err := helpers.NewLogger(&helpers.LoggingConfig{Level: "INFO"}, "test", buffer)
		Expect(err).NotTo(HaveOccurred())
	})

	Context("with the default sink", func() {
		It("writes redacted json above the minimum level", func() {
			logger, err := helpers.NewLogger(&helpers.LoggingConfig{Level: "info"}, "test", buffer)
			Expect(err).NotTo(HaveOccurred())

			logger.Debug("hidden")
			logger.Info("login", lager.Data{"username": "ada", "session_token": "abc123", "api_key": "sk-1"})

			var line map[string]any
			Expect(json.Unmarshal(buffer.Bytes(), &line)).To(Succeed())
			Expect(line["message"]).To(Equal("test.login"))
			Expect(line["data"]).To(HaveKeyWithValue("username", "ada"))
			Expect(line["data"]).To(HaveKeyWithValue("session_token", "*REDACTED*"))
			Expect(line["data"]).To(HaveKeyWithValue("api_key", "*REDACTED*"))
			Expect(buffer.String()).NotTo(ContainSubstring("hidden"))
		})
	})

	Context("with the plaintext sink", func() {
		It("writes text lines", func() {
			logger, err := helpers.NewLogger(&helpers.LoggingConfig{Level: "debug", PlainTextSink: true}, "test", buffer)
			Expect(err).NotTo(HaveOccurred())

			logger.Info("started", lager.Data{"port": 8080})

			Expect(buffer.String()).To(ContainSubstring("msg=test.started"))
			Expect(buffer.String()).To(ContainSubstring("8080"))
		})
	})
})
