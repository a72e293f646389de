package domain

type viewKind int

const (
	viewLoading viewKind = iota
	viewLoaded
	viewFailed
)

// ViewState es el resultado de una vista que carga datos: Loading, Loaded
// con datos o Failed con un único mensaje. Los campos son privados para que
// no se puedan combinar datos y error.
type ViewState[T any] struct {
	kind    viewKind
	data    T
	message string
}

// Loading es el estado inicial
func Loading[T any]() ViewState[T] {
	return ViewState[T]{kind: viewLoading}
}

// Loaded envuelve datos cargados
func Loaded[T any](data T) ViewState[T] {
	return ViewState[T]{kind: viewLoaded, data: data}
}

// Failed envuelve el mensaje genérico que ve el usuario
func Failed[T any](message string) ViewState[T] {
	return ViewState[T]{kind: viewFailed, message: message}
}

func (v ViewState[T]) IsLoading() bool { return v.kind == viewLoading }
func (v ViewState[T]) IsLoaded() bool  { return v.kind == viewLoaded }
func (v ViewState[T]) IsFailed() bool  { return v.kind == viewFailed }

// Data devuelve los datos solo si el estado es Loaded
func (v ViewState[T]) Data() (T, bool) {
	return v.data, v.kind == viewLoaded
}

// Message devuelve el mensaje de error; vacío salvo en Failed
func (v ViewState[T]) Message() string {
	return v.message
}

// Value devuelve los datos, o el valor cero si no hay datos cargados
func (v ViewState[T]) Value() T {
	if v.kind != viewLoaded {
		var zero T
		return zero
	}
	return v.data
}
