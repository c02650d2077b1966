package entities

// Optional отмечает поле частичного обновления как переданное или отсутствующее.
// Нулевое значение означает "поле не передано".
type Optional[T any] struct {
	value   T
	present bool
}

// Some возвращает переданное значение.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None возвращает отсутствующее значение.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr превращает nil в None, остальное в Some.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get возвращает значение и признак его наличия.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent сообщает, было ли поле передано.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Apply записывает значение в dst, если оно передано.
func (o Optional[T]) Apply(dst *T) {
	if o.present {
		*dst = o.value
	}
}
