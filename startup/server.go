package startup

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
)

// MemberBuilder names a runner that is created lazily.
type MemberBuilder struct {
	Name       string
	CreateFunc func() (ifrit.Runner, error)
}

// CreateMembers builds the runners in order, exiting on the first failure.
func CreateMembers(builders []MemberBuilder, logger lager.Logger) grouper.Members {
	var members grouper.Members
	for _, builder := range builders {
		runner, err := builder.CreateFunc()
		ExitOnError(err, logger, fmt.Sprintf("failed to create %s", builder.Name))
		members = append(members, grouper.Member{Name: builder.Name, Runner: runner})
	}
	return members
}

func Member(name string, createFunc func() (ifrit.Runner, error)) MemberBuilder {
	return MemberBuilder{
		Name:       name,
		CreateFunc: createFunc,
	}
}

// RunnerMember wraps a runner that needs no construction step.
func RunnerMember(name string, runner ifrit.Runner) MemberBuilder {
	return Member(name, func() (ifrit.Runner, error) { return runner, nil })
}

// StartService creates the members and runs them until a signal arrives.
func StartService(logger lager.Logger, members ...MemberBuilder) {
	err := StartServices(logger, CreateMembers(members, logger))
	ExitOnError(err, logger, "service startup failed")
}
