package list

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidArgument is returned when a value or anchor is nil.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAnchorNotFound is returned by AddAfter and AddBefore when no element equals the anchor.
	ErrAnchorNotFound = errors.New("anchor not found")
)

type element[T any] struct {
	next  *element[T]
	prev  *element[T]
	value T
}

// List is a doubly linked list of non-nil values, created by [New] or [NewFunc].
//
// it is not thread safe, concurrent calls must be serialized by the caller,
// use [SyncList] when the list is shared between goroutines.
type List[T any] struct {
	head  *element[T]
	tail  *element[T]
	equal func(a, b T) bool
	len   int
}

// New returns a list comparing values with ==.
func New[T comparable]() *List[T] {
	return NewFunc(func(a, b T) bool { return a == b })
}

// NewFunc returns a list comparing values with equal,
// a nil equal compares with reflect.DeepEqual.
func NewFunc[T any](equal func(a, b T) bool) *List[T] {
	if equal == nil {
		equal = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	return &List[T]{equal: equal}
}

func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}

	return false
}

func checkNil[T any](name string, v T) error {
	if isNil(v) {
		return fmt.Errorf("%w: %s can not be nil", ErrInvalidArgument, name)
	}
	return nil
}

func (l *List[T]) find(v T) *element[T] {
	for e := l.head; e != nil; e = e.next {
		if l.equal(e.value, v) {
			return e
		}
	}
	return nil
}

func (l *List[T]) pushFront(v T) {
	e := &element[T]{value: v, next: l.head}
	if l.head == nil {
		l.tail = e
	} else {
		l.head.prev = e
	}
	l.head = e
	l.len++
}

func (l *List[T]) pushBack(v T) {
	e := &element[T]{value: v, prev: l.tail}
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.len++
}

// AddFirst makes v the new head.
func (l *List[T]) AddFirst(v T) error {
	if err := checkNil("value", v); err != nil {
		return err
	}
	l.pushFront(v)
	return nil
}

// AddLast makes v the new tail.
func (l *List[T]) AddLast(v T) error {
	if err := checkNil("value", v); err != nil {
		return err
	}
	l.pushBack(v)
	return nil
}

// AddAfter inserts v right after the first element equal to anchor.
func (l *List[T]) AddAfter(v, anchor T) error {
	if err := checkNil("value", v); err != nil {
		return err
	}
	if err := checkNil("anchor", anchor); err != nil {
		return err
	}

	at := l.find(anchor)
	if at == nil {
		return ErrAnchorNotFound
	}

	if at == l.tail {
		l.pushBack(v)
		return nil
	}

	e := &element[T]{value: v, prev: at, next: at.next}
	at.next.prev = e
	at.next = e
	l.len++
	return nil
}

// AddBefore inserts v right before the first element equal to anchor.
func (l *List[T]) AddBefore(v, anchor T) error {
	if err := checkNil("value", v); err != nil {
		return err
	}
	if err := checkNil("anchor", anchor); err != nil {
		return err
	}

	at := l.find(anchor)
	if at == nil {
		return ErrAnchorNotFound
	}

	if at == l.head {
		l.pushFront(v)
		return nil
	}

	e := &element[T]{value: v, prev: at.prev, next: at}
	at.prev.next = e
	at.prev = e
	l.len++
	return nil
}

// Contains reports whether any element equals v.
func (l *List[T]) Contains(v T) (bool, error) {
	if err := checkNil("value", v); err != nil {
		return false, err
	}
	return l.find(v) != nil, nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.len }

// Front returns the head value, ok is false when the list is empty.
func (l *List[T]) Front() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	return l.head.value, true
}

// Back returns the tail value, ok is false when the list is empty.
func (l *List[T]) Back() (v T, ok bool) {
	if l.tail == nil {
		return v, false
	}
	return l.tail.value, true
}

// IsBefore reports whether the first element equal to y directly follows
// the first element equal to x.
func (l *List[T]) IsBefore(x, y T) (bool, error) {
	xe, ye, err := l.findPair(x, y)
	if err != nil || xe == nil || ye == nil {
		return false, err
	}
	return xe.next == ye, nil
}

// IsAfter reports whether the first element equal to y directly precedes
// the first element equal to x.
func (l *List[T]) IsAfter(x, y T) (bool, error) {
	xe, ye, err := l.findPair(x, y)
	if err != nil || xe == nil || ye == nil {
		return false, err
	}
	return xe.prev == ye, nil
}

func (l *List[T]) findPair(x, y T) (*element[T], *element[T], error) {
	if err := checkNil("x", x); err != nil {
		return nil, nil, err
	}
	if err := checkNil("y", y); err != nil {
		return nil, nil, err
	}
	return l.find(x), l.find(y), nil
}

// Remove unlinks the first element equal to v and returns its value,
// ok is false when no element equals v.
func (l *List[T]) Remove(v T) (T, bool, error) {
	var zero T
	if err := checkNil("value", v); err != nil {
		return zero, false, err
	}

	e := l.find(v)
	if e == nil {
		return zero, false, nil
	}

	switch e {
	case l.head:
		value, _ := l.RemoveFirst()
		return value, true, nil
	case l.tail:
		value, _ := l.RemoveLast()
		return value, true, nil
	}

	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
	l.len--
	return e.value, true, nil
}

// RemoveFirst unlinks the head, ok is false when the list is empty.
func (l *List[T]) RemoveFirst() (v T, ok bool) {
	e := l.head
	if e == nil {
		return v, false
	}

	if e == l.tail {
		l.head = nil
		l.tail = nil
	} else {
		l.head = e.next
		l.head.prev = nil
		e.next = nil
	}

	l.len--
	return e.value, true
}

// RemoveLast unlinks the tail, ok is false when the list is empty.
func (l *List[T]) RemoveLast() (v T, ok bool) {
	e := l.tail
	if e == nil {
		return v, false
	}

	if e == l.head {
		l.head = nil
		l.tail = nil
	} else {
		l.tail = e.prev
		l.tail.next = nil
		e.prev = nil
	}

	l.len--
	return e.value, true
}

// Clear drops every element.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}
