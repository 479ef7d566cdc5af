package nets

import (
	"github.com/reusee/dscope"
)

// Module provides a proxy aware HTTP client for fetching remote programs.
// It needs a configs.Loader, a logs.Logger and a modes.Mode from the scope.
type Module struct {
	dscope.Module
}
