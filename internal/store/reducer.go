package store

import "github.com/jakoblorz/go-vulcan/internal/models"

// Reduce returns the state that results from applying action to state.
// It never mutates its input and has no side effects.
func Reduce(state models.ProjectState, action Action) models.ProjectState {
	switch action.Type {
	case ActionAddPackage:
		if _, exists := state.Packages[action.PackageName]; exists {
			return state
		}
		next := state.Clone()
		next.Packages[action.PackageName] = models.NewPackage(action.PackageName)
		return next

	case ActionAddModule:
		if _, exists := state.Packages[action.PackageName]; !exists {
			return state
		}
		next := state.Clone()
		next.Packages[action.PackageName].Modules[action.ModuleName] = &models.Module{Name: action.ModuleName}
		return next

	case ActionRemovePackage:
		if _, exists := state.Packages[action.PackageName]; !exists {
			return state
		}
		next := state.Clone()
		delete(next.Packages, action.PackageName)
		return next

	case ActionRemoveModule:
		pkg, exists := state.Packages[action.PackageName]
		if !exists {
			return state
		}
		if _, exists := pkg.Modules[action.ModuleName]; !exists {
			return state
		}
		next := state.Clone()
		delete(next.Packages[action.PackageName].Modules, action.ModuleName)
		return next

	case ActionInitProject:
		next := state.Clone()
		next.IsRecognizedProject = true
		next.AppName = action.AppName
		next.ReactExtension = action.ReactExtension
		next.PackageManager = action.PackageManager
		return next

	default:
		return state
	}
}
