package startup_test

import (
	"errors"
	"os"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tedsuo/ifrit"

	"github.com/ritikbusiness/career-academy-backend-sub003/helpers"
	"github.com/ritikbusiness/career-academy-backend-sub003/startup"
)

type testConfig struct {
	Logging     helpers.LoggingConfig
	validateErr error
}

func (c *testConfig) Validate() error {
	return c.validateErr
}

func (c *testConfig) GetLogging() *helpers.LoggingConfig {
	return &c.Logging
}

var _ = Describe("Startup", func() {
	Describe("LoadAndValidateConfig", func() {
		var (
			loaded   *testConfig
			loadErr  error
			loadPath string
		)

		loader := func(path string) (*testConfig, error) {
			loadPath = path
			return loaded, loadErr
		}

		BeforeEach(func() {
			loaded = &testConfig{Logging: helpers.LoggingConfig{Level: "debug"}}
			loadErr = nil
		})

		It("returns the loaded config when it is valid", func() {
			conf, err := startup.LoadAndValidateConfig("api.yml", loader)
			Expect(err).NotTo(HaveOccurred())
			Expect(conf).To(Equal(loaded))
			Expect(loadPath).To(Equal("api.yml"))
		})

		It("fails when the loader fails", func() {
			loadErr = errors.New("no such file")
			conf, err := startup.LoadAndValidateConfig("missing.yml", loader)
			Expect(err).To(MatchError("no such file"))
			Expect(conf).To(BeNil())
		})

		It("fails when the config is invalid", func() {
			loaded.validateErr = errors.New("environment is required")
			conf, err := startup.LoadAndValidateConfig("api.yml", loader)
			Expect(err).To(MatchError("environment is required"))
			Expect(conf).To(BeNil())
		})
	})

	Describe("CreateMembers", func() {
		It("keeps the order and names of the builders", func() {
			runner := ifrit.RunFunc(func(signals <-chan os.Signal, ready chan<- struct{}) error {
				close(ready)
				<-signals
				return nil
			})
			members := startup.CreateMembers([]startup.MemberBuilder{
				startup.RunnerMember("first", runner),
				startup.Member("second", func() (ifrit.Runner, error) { return runner, nil }),
			}, lagertest.NewTestLogger("startup"))

			Expect(members).To(HaveLen(2))
			Expect(members[0].Name).To(Equal("first"))
			Expect(members[1].Name).To(Equal("second"))
		})
	})
})
