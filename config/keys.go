package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iw2rmb/markcmd/command"
)

// ActionImage is the key action that prompts for an image URL. It is not a
// toolbar command, so it has no command.Command value.
const ActionImage = "image"

var defaultKeys = map[string][]string{
	command.Heading1.String():   {"alt+1"},
	command.Heading2.String():   {"alt+2"},
	command.Heading3.String():   {"alt+3"},
	command.Heading4.String():   {"alt+4"},
	command.Bold.String():       {"ctrl+b"},
	command.Italic.String():     {"alt+i"},
	command.Strike.String():     {"alt+s"},
	command.Blockquote.String(): {"alt+q"},
	command.Link.String():       {"ctrl+k"},
	command.Codeblock.String():  {"alt+c"},
	ActionImage:                 {"alt+g"},
}

// DefaultKeys returns a fresh copy of the built-in bindings.
func DefaultKeys() map[string][]string {
	out := make(map[string][]string, len(defaultKeys))
	for action, keys := range defaultKeys {
		out[action] = append([]string(nil), keys...)
	}
	return out
}

// mergeKeys lays overrides over the defaults. An empty list unbinds the
// action; a key may belong to one action only.
func mergeKeys(overrides map[string][]string) (map[string][]string, error) {
	out := DefaultKeys()
	for action, keys := range overrides {
		name := strings.ToLower(strings.TrimSpace(action))
		if _, ok := defaultKeys[name]; !ok {
			return nil, fmt.Errorf("unknown key action %q", action)
		}
		norm := make([]string, 0, len(keys))
		for _, k := range keys {
			k = strings.ToLower(strings.TrimSpace(k))
			if k == "" {
				return nil, fmt.Errorf("empty key for action %q", name)
			}
			norm = append(norm, k)
		}
		out[name] = norm
	}

	owner := make(map[string]string)
	actions := make([]string, 0, len(out))
	for action := range out {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	for _, action := range actions {
		for _, k := range out[action] {
			if prev, dup := owner[k]; dup {
				return nil, fmt.Errorf("key %q bound to both %q and %q", k, prev, action)
			}
			owner[k] = action
		}
	}
	return out, nil
}
