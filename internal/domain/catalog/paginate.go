package catalog

import "math"

// Page ventana de resultados con los indicadores de navegación.
type Page[T any] struct {
	Items       []T
	Count       int // total de elementos en todas las páginas
	Number      int
	Size        int
	HasNext     bool
	HasPrevious bool
}

// Paginate recorta seq (ya ordenada) a la página number de tamaño size.
// Una página posterior a la última devuelve Items vacío, no error.
func Paginate[T any](seq []T, number, size int) Page[T] {
	number, size = clampPage(number, size)
	start := PageOffset(number, size)
	if start > len(seq) {
		start = len(seq)
	}
	end := len(seq)
	if end-start > size {
		end = start + size
	}
	items := make([]T, end-start)
	copy(items, seq[start:end])
	return NewPage(items, len(seq), number, size)
}

// NewPage arma una Page a partir de items ya recortados por el almacenamiento y el total.
func NewPage[T any](items []T, total, number, size int) Page[T] {
	number, size = clampPage(number, size)
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		Count:       total,
		Number:      number,
		Size:        size,
		HasNext:     number < pageCount(total, size),
		HasPrevious: number > 1,
	}
}

// PageOffset elementos a saltar para llegar a la página number. Satura en math.MaxInt
// en lugar de desbordar con números de página enormes.
func PageOffset(number, size int) int {
	number, size = clampPage(number, size)
	if number-1 > math.MaxInt/size {
		return math.MaxInt
	}
	return (number - 1) * size
}

func pageCount(total, size int) int {
	if total <= 0 {
		return 0
	}
	return (total-1)/size + 1
}

func clampPage(number, size int) (int, int) {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	return number, size
}
