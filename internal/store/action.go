package store

import (
	"errors"
	"fmt"
)

// ActionType tags an Action.
type ActionType string

const (
	ActionAddPackage    ActionType = "ADD_PACKAGE"
	ActionAddModule     ActionType = "ADD_MODULE"
	ActionRemovePackage ActionType = "REMOVE_PACKAGE"
	ActionRemoveModule  ActionType = "REMOVE_MODULE"
	ActionInitProject   ActionType = "INIT_PROJECT"
)

// ErrMalformedAction is returned by Dispatch when an action payload is missing
// a field its type requires.
var ErrMalformedAction = errors.New("malformed action")

// Action is the only way to change a Store's state.
type Action struct {
	Type        ActionType
	PackageName string
	ModuleName  string

	// INIT_PROJECT payload
	AppName        string
	ReactExtension string
	PackageManager string
}

// AddPackage creates an ADD_PACKAGE action.
func AddPackage(packageName string) Action {
	return Action{Type: ActionAddPackage, PackageName: packageName}
}

// AddModule creates an ADD_MODULE action.
func AddModule(packageName, moduleName string) Action {
	return Action{Type: ActionAddModule, PackageName: packageName, ModuleName: moduleName}
}

// RemovePackage creates a REMOVE_PACKAGE action.
func RemovePackage(packageName string) Action {
	return Action{Type: ActionRemovePackage, PackageName: packageName}
}

// RemoveModule creates a REMOVE_MODULE action.
func RemoveModule(packageName, moduleName string) Action {
	return Action{Type: ActionRemoveModule, PackageName: packageName, ModuleName: moduleName}
}

// InitProject creates an INIT_PROJECT action.
func InitProject(appName, reactExtension, packageManager string) Action {
	return Action{
		Type:           ActionInitProject,
		AppName:        appName,
		ReactExtension: reactExtension,
		PackageManager: packageManager,
	}
}

// Validate checks that the payload carries what the action type needs.
// Unknown types are valid; the reducer ignores them.
func (a Action) Validate() error {
	switch a.Type {
	case "":
		return fmt.Errorf("%w: missing type", ErrMalformedAction)
	case ActionAddPackage, ActionRemovePackage:
		if a.PackageName == "" {
			return fmt.Errorf("%w: %s requires a package name", ErrMalformedAction, a.Type)
		}
	case ActionAddModule, ActionRemoveModule:
		if a.PackageName == "" || a.ModuleName == "" {
			return fmt.Errorf("%w: %s requires a package and a module name", ErrMalformedAction, a.Type)
		}
	case ActionInitProject:
		if a.AppName == "" {
			return fmt.Errorf("%w: %s requires an app name", ErrMalformedAction, a.Type)
		}
	}
	return nil
}
