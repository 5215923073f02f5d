package commands

import (
	"strings"

	"github.com/spf13/pflag"
	"go.trai.ch/rivebuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// splitArgs sets every flag of fs found in args and returns the remaining
// tokens in their original order. Unknown flags keep their values next to
// them because nothing is consumed on their behalf. After a literal "--"
// everything is returned as is and the "--" itself is dropped.
func splitArgs(fs *pflag.FlagSet, args []string) ([]string, error) {
	var rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			return append(rest, args[i+1:]...), nil
		case strings.HasPrefix(arg, "--"):
			name, value, hasValue := strings.Cut(arg[2:], "=")
			flag := fs.Lookup(name)
			if flag == nil {
				rest = append(rest, arg)
				continue
			}
			consumed, err := setFlag(fs, flag, arg, value, hasValue, args[i+1:])
			if err != nil {
				return nil, err
			}
			i += consumed
		case len(arg) > 1 && arg[0] == '-':
			group, ok := shorthandGroup(fs, arg[1:])
			if !ok {
				rest = append(rest, arg)
				continue
			}
			for _, flag := range group.bools {
				if _, err := setFlag(fs, flag, arg, "", false, nil); err != nil {
					return nil, err
				}
			}
			consumed, err := setFlag(fs, group.last, arg, group.value, group.hasValue, args[i+1:])
			if err != nil {
				return nil, err
			}
			i += consumed
		default:
			rest = append(rest, arg)
		}
	}
	return rest, nil
}

type shorthands struct {
	bools    []*pflag.Flag
	last     *pflag.Flag
	value    string
	hasValue bool
}

// shorthandGroup splits a token such as "-ct" or "-cprelease" into leading
// bool shorthands and the flag that takes the rest of the token as its value.
// It reports false when a character before that flag is not a declared
// shorthand, in which case the whole token belongs to the build tool.
func shorthandGroup(fs *pflag.FlagSet, body string) (shorthands, bool) {
	var group shorthands
	for j := 0; j < len(body); j++ {
		flag := fs.ShorthandLookup(body[j : j+1])
		if flag == nil {
			return shorthands{}, false
		}
		rest := body[j+1:]
		if isBool(flag) && rest != "" && rest[0] != '=' {
			group.bools = append(group.bools, flag)
			continue
		}
		value, hasValue := strings.CutPrefix(rest, "=")
		group.last = flag
		group.value = value
		group.hasValue = hasValue || value != ""
		return group, true
	}
	return shorthands{}, false
}

// setFlag assigns flag and reports how many of the following tokens it used.
func setFlag(fs *pflag.FlagSet, flag *pflag.Flag, arg, value string, hasValue bool, next []string) (int, error) {
	consumed := 0
	if !hasValue {
		switch {
		case isBool(flag):
			value = "true"
		case len(next) > 0:
			value = next[0]
			consumed = 1
		default:
			return 0, zerr.With(zerr.Wrap(domain.ErrMissingFlagValue, arg+" needs a value"), "flag", arg)
		}
	}

	if value == "" && !isBool(flag) {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidFlagValue, arg+" needs a non-empty value"), "flag", arg)
	}
	if err := fs.Set(flag.Name, value); err != nil {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidFlagValue, err.Error()), "flag", arg)
	}
	return consumed, nil
}

func isBool(flag *pflag.Flag) bool {
	return flag.Value.Type() == "bool"
}
