// Package guard implements the precondition checks generators run against the
// project store. A failing check does not stop execution: it records a named
// error in a Registry so every problem can be reported at the end of a command.
package guard

// Error keys, one per guard.
const (
	KeyNotRecognizedProject = "notVulcan"
	KeyRecognizedProject    = "isVulcan"
	KeyPackageMissing       = "notPackageExists"
	KeyPackageExists        = "isPackageExists"
	KeyModuleMissing        = "notModuleExists"
	KeyModuleExists         = "isModuleExists"
	KeyZeroPackages         = "isZeroPackages"
	KeyZeroModules          = "isZeroModules"
)

// Error is a registered validation failure.
type Error struct {
	Key     string
	Message string
}

func (e Error) Error() string {
	return e.Message
}

// Registry accumulates validation errors keyed by guard name. Registering the
// same key twice replaces the message but keeps the original position.
type Registry struct {
	order  []string
	errors map[string]Error
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		errors: make(map[string]Error),
	}
}

// Register records an error under key.
func (r *Registry) Register(key, message string) {
	if _, exists := r.errors[key]; !exists {
		r.order = append(r.order, key)
	}
	r.errors[key] = Error{Key: key, Message: message}
}

// Has reports whether an error is registered under key.
func (r *Registry) Has(key string) bool {
	_, exists := r.errors[key]
	return exists
}

// HasNoErrors reports whether nothing has been registered.
func (r *Registry) HasNoErrors() bool {
	return len(r.order) == 0
}

// Len returns the number of registered errors.
func (r *Registry) Len() int {
	return len(r.order)
}

// Errors returns the registered errors in registration order.
func (r *Registry) Errors() []Error {
	out := make([]Error, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.errors[key])
	}
	return out
}

// Messages returns the registered messages in registration order.
func (r *Registry) Messages() []string {
	out := make([]string, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.errors[key].Message)
	}
	return out
}
