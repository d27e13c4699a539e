package sortedlist

import (
	"fmt"
	"iter"
	"log/slog"
)

// node is one link in the chain. Only its predecessor, or List.head for the
// first node, refers to it.
type node struct {
	value Value
	next  *node
}

// List is a singly linked list kept in non-decreasing order. All elements
// share one Kind, fixed either at construction or by the first insertion and
// never changed afterwards.
//
// A List is not safe for concurrent use. Mutating it while ranging over Seq
// or All is unsupported; take a snapshot with Entries first.
type List struct {
	head      *node
	size      int
	kind      Kind
	textOrder TextOrder
	logger    *slog.Logger
	metrics   *Metrics
	name      string
}

// New creates an empty list.
//
// Example:
//
//	list, err := sortedlist.New(sortedlist.WithKind(sortedlist.KindText))
//	if err != nil {
//	    return err
//	}
//	_ = list.Insert(sortedlist.Text("banana"))
func New(opts ...Option) (*List, error) {
	cfg := &options{
		textOrder: TextOrderLexical,
		logger:    slog.New(slog.DiscardHandler),
		name:      defaultName,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &List{
		kind:      cfg.kind,
		textOrder: cfg.textOrder,
		logger:    cfg.logger.With("list", cfg.name),
		metrics:   cfg.metrics,
		name:      cfg.name,
	}, nil
}

// NewIntegral returns an empty list fixed to integral kind. It panics if
// opts carry an invalid configuration.
func NewIntegral(opts ...Option) *List {
	return mustNew(append(opts, WithKind(KindIntegral))...)
}

// NewText returns an empty list fixed to text kind. It panics if opts carry
// an invalid configuration.
func NewText(opts ...Option) *List {
	return mustNew(append(opts, WithKind(KindText))...)
}

func mustNew(opts ...Option) *List {
	list, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return list
}

// Kind returns the established element kind, or KindUnset.
func (l *List) Kind() Kind {
	return l.kind
}

// Size returns the number of elements. O(1).
func (l *List) Size() int {
	return l.size
}

// IsEmpty reports whether the list holds no elements.
func (l *List) IsEmpty() bool {
	return l.size == 0
}

func (l *List) less(a, b Value) bool {
	return a.lessThan(b, l.textOrder)
}

// checkKind validates v against the list kind, adopting v's kind if none is
// set yet. It must be the last fallible step before linking.
func (l *List) checkKind(v Value) error {
	if l.kind == KindUnset {
		if !v.kind.Valid() {
			return fmt.Errorf("%w: only integral or text values are supported", ErrUnsupportedKind)
		}

		l.kind = v.kind

		return nil
	}

	if v.kind != l.kind {
		return fmt.Errorf("%w: cannot add %s to a list of %s values", ErrTypeMismatch, v.kind, l.kind)
	}

	return nil
}

// Insert places v after every element less than or equal to it, so equal
// elements keep their arrival order. It fails with ErrUnsupportedKind or
// ErrTypeMismatch and leaves the list untouched when v does not fit.
// O(n).
func (l *List) Insert(v Value) error {
	if err := l.checkKind(v); err != nil {
		l.reject(v, err)

		return err
	}

	fresh := &node{value: v}

	if l.head == nil || l.less(v, l.head.value) {
		fresh.next = l.head
		l.head = fresh
	} else {
		current := l.head
		for current.next != nil && !l.less(v, current.next.value) {
			current = current.next
		}

		fresh.next = current.next
		current.next = fresh
	}

	l.size++
	l.metrics.inserted(l.name, l.size)
	l.assertInvariants()

	return nil
}

// InsertAny converts v with ValueOf and inserts it. A value that cannot be
// converted is a type mismatch once the list has a kind.
func (l *List) InsertAny(v any) error {
	value, err := ValueOf(v)
	if err != nil {
		if l.kind != KindUnset {
			err = fmt.Errorf("%w: cannot add %T to a list of %s values", ErrTypeMismatch, v, l.kind)
		}

		l.reject(v, err)

		return err
	}

	return l.Insert(value)
}

func (l *List) reject(v any, err error) {
	l.logger.Debug("rejected insert", "value", v, "kind", l.kind.String(), "error", err)
	l.metrics.rejected(l.name, err)
}

// Remove unlinks the first element equal to v and reports whether one was
// found. Values of another kind never match.
func (l *List) Remove(v Value) bool {
	if l.head == nil {
		return false
	}

	if l.head.value.Equals(v) {
		l.head = l.head.next
		l.removed()

		return true
	}

	for current := l.head; current.next != nil; current = current.next {
		if current.next.value.Equals(v) {
			current.next = current.next.next
			l.removed()

			return true
		}
	}

	return false
}

func (l *List) removed() {
	l.size--
	l.metrics.removed(l.name, l.size)
	l.assertInvariants()
}

// Contains reports whether v is in the list. The scan stops at the first
// element greater than v.
func (l *List) Contains(v Value) bool {
	for current := l.head; current != nil; current = current.next {
		if current.value.Equals(v) {
			return true
		}

		if l.less(v, current.value) {
			return false
		}
	}

	return false
}

// ContainsAny is Contains for untyped input. Unsupported values are never
// contained.
func (l *List) ContainsAny(v any) bool {
	value, err := ValueOf(v)
	if err != nil {
		return false
	}

	return l.Contains(value)
}

// Clear drops every element. The established kind is kept.
func (l *List) Clear() {
	l.head = nil
	l.size = 0
	l.metrics.cleared(l.name)
}

// At returns the element at position index in list order. O(index).
func (l *List) At(index int) (Value, error) {
	if index < 0 || index >= l.size {
		return Value{}, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, l.size)
	}

	current := l.head
	for range index {
		current = current.next
	}

	return current.value, nil
}

// Seq iterates over the elements in order. Each call starts a fresh pass.
func (l *List) Seq() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for current := l.head; current != nil; current = current.next {
			if !yield(current.value) {
				return
			}
		}
	}
}

// All iterates over positions and elements in order.
func (l *List) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		i := 0

		for current := l.head; current != nil; current = current.next {
			if !yield(i, current.value) {
				return
			}

			i++
		}
	}
}

// Entries returns a new slice holding the elements in order. It does not
// alias the list.
func (l *List) Entries() []Value {
	items := make([]Value, 0, l.size)
	for v := range l.Seq() {
		items = append(items, v)
	}

	return items
}

// Ints returns the integral elements in order. It is empty for a text list.
func (l *List) Ints() []int64 {
	if l.kind != KindIntegral {
		return []int64{}
	}

	items := make([]int64, 0, l.size)
	for v := range l.Seq() {
		items = append(items, v.num)
	}

	return items
}

// Strings returns the text elements in order. It is empty for an integral list.
func (l *List) Strings() []string {
	if l.kind != KindText {
		return []string{}
	}

	items := make([]string, 0, l.size)
	for v := range l.Seq() {
		items = append(items, v.str)
	}

	return items
}
