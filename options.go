package virtlist

// Option configures an Engine at construction time.
type Option func(*options)

// options holds engine configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for engine options.
//
// Example:
//
//	var OptCustomThing = virtlist.NewOptKey("customThing", defaultValue)
//
//	eng := virtlist.New(items, virtlist.WithOpt(OptCustomThing, value))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// TotalItemsValue holds the optional total dataset size.
// Set distinguishes "zero items" from "not supplied": presence selects
// the proportional strategy, absence the walk strategy.
type TotalItemsValue struct {
	Count int
	Set   bool
}

// --- Built-in option keys ---

var (
	OptDefaultItemSize = NewOptKey[float32]("defaultItemSize", 40)
	OptOverscan        = NewOptKey("overscan", 3)
	OptTotalItems      = NewOptKey("totalItems", TotalItemsValue{})
	OptAxis            = NewOptKey("axis", AxisVertical)
	OptScheduler       = NewOptKey[Scheduler]("scheduler", SyncScheduler{})
)

// optKeyFuncName is the raw extensions key for the item key function.
// It bypasses the OptKey system because option keys cannot be generic
// over the engine's item type.
const optKeyFuncName = "keyFunc"

// WithDefaultItemSize sets the assumed size for unmeasured items, in pixels.
func WithDefaultItemSize(size float32) Option { return WithOpt(OptDefaultItemSize, size) }

// WithOverscan sets how many extra items are included beyond the strict
// visible viewport to reduce pop-in during fast scroll.
func WithOverscan(n int) Option { return WithOpt(OptOverscan, n) }

// WithTotalItems declares the full logical dataset size, which may
// exceed the loaded items (streaming/pagination). Supplying it selects
// the proportional windowing strategy.
func WithTotalItems(n int) Option {
	return WithOpt(OptTotalItems, TotalItemsValue{Count: n, Set: true})
}

// WithAxis selects which physical scroll/size properties are read from
// the viewport. The windowing arithmetic is the same for both axes.
func WithAxis(axis Axis) Option { return WithOpt(OptAxis, axis) }

// WithScheduler injects the scheduler that coalesces recalculation
// triggers. Defaults to SyncScheduler.
func WithScheduler(s Scheduler) Option { return WithOpt(OptScheduler, s) }

// WithKeyFunc sets the function deriving a logical key per item.
// Keys index the size cache, so a reordered item keeps its measured
// size. Defaults to the item's index.
func WithKeyFunc[T any](fn KeyFunc[T]) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[optKeyFuncName] = fn
	}
}

// keyFuncOpt retrieves the typed key function, or nil if unset.
func keyFuncOpt[T any](o options) KeyFunc[T] {
	if o.extensions == nil {
		return nil
	}
	if fn, ok := o.extensions[optKeyFuncName].(KeyFunc[T]); ok {
		return fn
	}
	return nil
}
