package debugs

import (
	"errors"
	"fmt"

	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

var ErrUnsupportedGlobal = errors.New("unsupported tap global")

// toStarlarkValue converts the values TapeGlobals produces.
func toStarlarkValue(name string, v any) (starlark.Value, error) {
	switch v := v.(type) {
	case nil:
		return starlark.None, nil
	case bool:
		return starlark.Bool(v), nil
	case int:
		return starlark.MakeInt(v), nil
	case byte:
		return starlark.MakeInt(int(v)), nil
	case string:
		return starlark.String(v), nil
	case []byte:
		// indexing yields ints, so cells[i] reads like cell(first+i)
		return starlark.Bytes(v), nil
	case func(int) int:
		return starlarkutil.MakeFunc(name, v), nil
	}
	return nil, fmt.Errorf("%w: %s is %T", ErrUnsupportedGlobal, name, v)
}

func toStringDict(globals map[string]any) (starlark.StringDict, error) {
	mappings := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		v, err := toStarlarkValue(name, value)
		if err != nil {
			return nil, err
		}
		mappings[name] = v
	}
	return mappings, nil
}
