package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brandhill/scaloid/descriptor"
)

// ExtractListeners expands listener registration methods (set<X>Listener,
// add<X>Listener) into one model per callback the listener interface
// declares. Accessor-shaped interface methods (get*) are not callbacks.
//
// An interface whose callbacks cannot be told apart by their argument types
// is ambiguous: a standalone single-callback overload could not dispatch
// safely, so the whole expansion is dropped rather than guessed at.
func ExtractListeners(c *descriptor.Class, anc AncestorInfo, provider descriptor.Provider) ([]ListenerModel, error) {
	var out []ListenerModel
	for _, m := range c.AllMethods() {
		if m.Static || len(m.Params) != 1 || !isRegistrationName(m.Name) {
			continue
		}
		if anc.MethodSignatures[methodSignature(m)] {
			continue
		}
		param := m.Params[0]
		if param.Kind != descriptor.KindClass {
			continue
		}
		iface, ok := provider.Class(param.Name)
		if !ok || !iface.IsInterface {
			continue
		}

		models, err := expandInterface(m.Name, iface)
		if err != nil {
			return nil, fmt.Errorf("listener %s.%s: %w", c.Name, m.Name, err)
		}
		out = append(out, models...)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func isRegistrationName(name string) bool {
	if !strings.HasSuffix(name, "Listener") {
		return false
	}
	if !strings.HasPrefix(name, "set") && !strings.HasPrefix(name, "add") {
		return false
	}
	return len(name) > len("set")+len("Listener")
}

func expandInterface(registration string, iface *descriptor.Class) ([]ListenerModel, error) {
	var callbacks []descriptor.Method
	for _, m := range iface.AllMethods() {
		if m.Static || strings.HasPrefix(m.Name, "get") {
			continue
		}
		callbacks = append(callbacks, m)
	}
	sort.SliceStable(callbacks, func(i, j int) bool { return callbacks[i].Name < callbacks[j].Name })

	if len(callbacks) == 0 || ambiguous(callbacks) {
		return nil, nil
	}

	resolved := make([]ListenerCallbackModel, len(callbacks))
	for i, cb := range callbacks {
		model, err := methodModel(cb)
		if err != nil {
			return nil, err
		}
		resolved[i] = ListenerCallbackModel{
			Name:   model.Name,
			Return: model.Return,
			Args:   model.Args,
		}
	}

	ifaceName := strings.ReplaceAll(iface.Name, "$", ".")
	models := make([]ListenerModel, len(resolved))
	for i, cb := range resolved {
		all := make([]ListenerCallbackModel, len(resolved))
		copy(all, resolved)
		all[i].Target = true
		models[i] = ListenerModel{
			Name:               cb.Name,
			Return:             cb.Return,
			Args:               cb.Args,
			HasArgs:            len(cb.Args) > 0,
			RegistrationMethod: registration,
			Interface:          ifaceName,
			Callbacks:          all,
		}
	}
	return models, nil
}

// ambiguous reports whether two callbacks share an argument type list.
func ambiguous(callbacks []descriptor.Method) bool {
	seen := make(map[string]bool, len(callbacks))
	for _, cb := range callbacks {
		sig := paramSignature(cb.Params)
		if seen[sig] {
			return true
		}
		seen[sig] = true
	}
	return false
}

func paramSignature(params []*descriptor.Type) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = typeName(p)
	}
	return strings.Join(names, ",")
}
