package doctor

import (
	"github.com/rileyhilliard/cb/internal/clipboard"
	cbexec "github.com/rileyhilliard/cb/internal/exec"
)

// Inputs are the pieces of the running system the checks inspect.
type Inputs struct {
	ConfigPath      string
	Env             *clipboard.Environment
	Runner          cbexec.Runner
	Primary         clipboard.Primary
	Session         clipboard.SessionFactory
	FallbackEnabled bool
}

// Collect returns every check in display order.
func Collect(in Inputs) []Check {
	return []Check{
		&ConfigFileCheck{Explicit: in.ConfigPath},
		&SessionKindCheck{Env: in.Env},
		&DisplayCheck{Env: in.Env},
		&HelperToolsCheck{Env: in.Env, Runner: in.Runner},
		&PrimaryReadCheck{Primary: in.Primary, Remote: in.Env.IsRemote()},
		&SessionBackendCheck{Factory: in.Session, Disabled: !in.FallbackEnabled},
	}
}
