package opts

import (
	"github.com/vitormf/swiftfix/pkg/config"
	"github.com/vitormf/swiftfix/pkg/operation"
	"github.com/vitormf/swiftfix/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	StatusMgr  *status.Manager
	UserLogger *status.UserLogger
	Runner     *operation.Runner
}
