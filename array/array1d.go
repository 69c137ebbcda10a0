// SPDX-License-Identifier: MIT

package array

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/katalvlaran/lvarray/scalar"
	"github.com/katalvlaran/lvarray/store"
)

// Array1D is a zero-copy strided view: logical index k addresses store slot
// first + k*step for 0 <= k < Count().
type Array1D[N any] struct {
	store store.Store[N]
	first int
	limit int
	step  int
	count int
}

// New1D returns a view over the whole store.
func New1D[N any](s store.Store[N]) (*Array1D[N], error) {
	if s == nil {
		return nil, fmt.Errorf("New1D: %w", ErrNilStore)
	}

	return newArray1D(s, 0, s.Len(), 1), nil
}

// View1D returns the (first, limit, step) view over s. It requires
// 0 <= first <= limit <= s.Len() and step >= 1.
func View1D[N any](s store.Store[N], first, limit, step int) (*Array1D[N], error) {
	if s == nil {
		return nil, fmt.Errorf("View1D: %w", ErrNilStore)
	}
	if first < 0 || limit < first || limit > s.Len() || step < 1 {
		return nil, viewErrorf("View1D", []int{first, limit, step}, ErrInvalidRange)
	}

	return newArray1D(s, first, limit, step), nil
}

func newArray1D[N any](s store.Store[N], first, limit, step int) *Array1D[N] {
	return &Array1D[N]{
		store: s,
		first: first,
		limit: limit,
		step:  step,
		count: store.Count(first, limit, step),
	}
}

// Store returns the backing store shared with every view over it.
func (a *Array1D[N]) Store() store.Store[N] { return a.store }

// Domain returns the arithmetic of the elements.
func (a *Array1D[N]) Domain() scalar.Domain[N] { return a.store.Domain() }

// Count returns the number of logical elements.
func (a *Array1D[N]) Count() int { return a.count }

// First, Limit and Step expose the addressing triple against Store().
func (a *Array1D[N]) First() int { return a.first }
func (a *Array1D[N]) Limit() int { return a.limit }
func (a *Array1D[N]) Step() int  { return a.step }

// contiguous reports whether the view covers the whole store with step 1.
func (a *Array1D[N]) contiguous() bool {
	return a.first == 0 && a.step == 1 && a.count == a.store.Len()
}

// index maps a logical index to its store slot, panicking when out of range.
func (a *Array1D[N]) index(method string, k int) int {
	if k < 0 || k >= a.count {
		panic(viewErrorf("Array1D."+method, []int{k}, ErrIndexOutOfRange))
	}

	return a.first + k*a.step
}

// span validates the logical range [from, to) and returns its store triple.
func (a *Array1D[N]) span(method string, from, to int) (int, int) {
	if from < 0 || to < from || to > a.count {
		panic(viewErrorf("Array1D."+method, []int{from, to}, ErrInvalidRange))
	}
	first := a.first + from*a.step

	return first, limitFor(first, a.step, to-from)
}

// matching panics with ErrLengthMismatch unless src has exactly Count() elements.
func (a *Array1D[N]) matching(method string, src store.Source[N]) {
	if src.Count() != a.count {
		panic(viewErrorf("Array1D."+method, []int{a.count, src.Count()}, ErrLengthMismatch))
	}
}

func (a *Array1D[N]) Get(k int) N               { return a.store.Get(a.index("Get", k)) }
func (a *Array1D[N]) Set(k int, v N)            { a.store.Set(a.index("Set", k), v) }
func (a *Array1D[N]) DoubleValue(k int) float64 { return a.store.DoubleValue(a.index("DoubleValue", k)) }

// ToScalar wraps element k as a typed scalar.
func (a *Array1D[N]) ToScalar(k int) scalar.Scalar[N] { return a.store.ToScalar(a.index("ToScalar", k)) }

func (a *Array1D[N]) IsZero(k int) bool     { return a.store.IsZero(a.index("IsZero", k)) }
func (a *Array1D[N]) IsAbsolute(k int) bool { return a.store.IsAbsolute(a.index("IsAbsolute", k)) }
func (a *Array1D[N]) IsPositive(k int) bool { return a.store.IsPositive(a.index("IsPositive", k)) }
func (a *Array1D[N]) IsReal(k int) bool     { return a.store.IsReal(a.index("IsReal", k)) }

// IsAllZeros reports whether every element is zero. An empty view is all zeros.
func (a *Array1D[N]) IsAllZeros() bool {
	return a.store.IsZeros(a.first, a.limit, a.step)
}

// FillAll assigns v to every element.
func (a *Array1D[N]) FillAll(v N) {
	a.store.Fill(a.first, a.limit, a.step, v)
}

// FillRange assigns v to logical elements [from, to).
func (a *Array1D[N]) FillRange(from, to int, v N) {
	first, limit := a.span("FillRange", from, to)
	a.store.Fill(first, limit, a.step, v)
}

// FillAllFunc assigns successive supplier results in logical order.
func (a *Array1D[N]) FillAllFunc(supplier func() N) {
	a.store.FillFunc(a.first, a.limit, a.step, supplier)
}

// FillMatching assigns fn(left[k], right[k]) to element k. Both operands
// must have exactly Count() elements.
func (a *Array1D[N]) FillMatching(left store.Source[N], fn func(l, r N) N, right store.Source[N]) {
	a.matching("FillMatching", left)
	a.matching("FillMatching", right)
	a.store.FillMatching(a.first, a.limit, a.step, left, fn, right)
}

// ModifyOne replaces element k with fn(element k).
func (a *Array1D[N]) ModifyOne(k int, fn func(v N) N) {
	i := a.index("ModifyOne", k)
	a.store.Set(i, fn(a.store.Get(i)))
}

// ModifyAll replaces every element v with fn(v).
func (a *Array1D[N]) ModifyAll(fn func(v N) N) {
	a.store.Modify(a.first, a.limit, a.step, fn)
}

// ModifyRange replaces logical elements [from, to) with fn(v).
func (a *Array1D[N]) ModifyRange(from, to int, fn func(v N) N) {
	first, limit := a.span("ModifyRange", from, to)
	a.store.Modify(first, limit, a.step, fn)
}

// ModifyAllLeft replaces every element v with fn(left, v).
func (a *Array1D[N]) ModifyAllLeft(left N, fn func(l, v N) N) {
	a.store.ModifyLeft(a.first, a.limit, a.step, left, fn)
}

// ModifyAllRight replaces every element v with fn(v, right).
func (a *Array1D[N]) ModifyAllRight(fn func(v, r N) N, right N) {
	a.store.ModifyRight(a.first, a.limit, a.step, fn, right)
}

// ModifyAllParameter replaces every element v with fn(v, param), e.g. an
// integer power or a rounding scale.
func (a *Array1D[N]) ModifyAllParameter(fn func(v N, param int) N, param int) {
	a.store.Modify(a.first, a.limit, a.step, func(v N) N { return fn(v, param) })
}

// ModifyMatchingLeft replaces element k with fn(left[k], element k).
func (a *Array1D[N]) ModifyMatchingLeft(left store.Source[N], fn func(l, v N) N) {
	a.matching("ModifyMatchingLeft", left)
	if dst, src, ok := a.flatPair(left); ok {
		for k := range a.count {
			dst[k*a.step] = fn(src.at(k), dst[k*a.step])
		}
		return
	}
	a.store.ModifyMatchingLeft(a.first, a.limit, a.step, left, fn)
}

// ModifyMatchingRight replaces element k with fn(element k, right[k]).
func (a *Array1D[N]) ModifyMatchingRight(fn func(v, r N) N, right store.Source[N]) {
	a.matching("ModifyMatchingRight", right)
	if dst, src, ok := a.flatPair(right); ok {
		for k := range a.count {
			dst[k*a.step] = fn(dst[k*a.step], src.at(k))
		}
		return
	}
	a.store.ModifyMatchingRight(a.first, a.limit, a.step, fn, right)
}

// flatView is a raw-slice window of another Dense-backed view.
type flatView[N any] struct {
	data []N
	step int
}

func (f flatView[N]) at(k int) N { return f.data[k*f.step] }

// flatPair returns raw windows of the receiver and operand when both are
// backed by Dense stores, so zip loops avoid interface dispatch.
func (a *Array1D[N]) flatPair(operand store.Source[N]) ([]N, flatView[N], bool) {
	other, ok := operand.(*Array1D[N])
	if !ok || a.count == 0 {
		return nil, flatView[N]{}, false
	}
	dst, ok := flat(a.store)
	if !ok {
		return nil, flatView[N]{}, false
	}
	src, ok := flat(other.store)
	if !ok {
		return nil, flatView[N]{}, false
	}

	return dst[a.first:a.limit], flatView[N]{data: src[other.first:other.limit], step: other.step}, true
}

// VisitAll passes every element to visitor in logical order.
func (a *Array1D[N]) VisitAll(visitor func(v N)) {
	a.store.Visit(a.first, a.limit, a.step, visitor)
}

// VisitRange passes logical elements [from, to) to visitor.
func (a *Array1D[N]) VisitRange(from, to int, visitor func(v N)) {
	first, limit := a.span("VisitRange", from, to)
	a.store.Visit(first, limit, a.step, visitor)
}

// VisitOne passes element k to visitor.
func (a *Array1D[N]) VisitOne(k int, visitor func(v N)) {
	visitor(a.store.Get(a.index("VisitOne", k)))
}

// Exchange swaps logical elements k1 and k2.
func (a *Array1D[N]) Exchange(k1, k2 int) {
	i, j := a.index("Exchange", k1), a.index("Exchange", k2)
	vi := a.store.Get(i)
	a.store.Set(i, a.store.Get(j))
	a.store.Set(j, vi)
}

// IndexOfLargest returns the logical index of the element with the greatest
// magnitude; the first occurrence wins ties. An empty view yields 0.
func (a *Array1D[N]) IndexOfLargest() int {
	return a.store.IndexOfLargest(a.first, a.limit, a.step)
}

// IndexOfLargestInRange is IndexOfLargest restricted to [from, to); the
// result is a logical index of the whole view.
func (a *Array1D[N]) IndexOfLargestInRange(from, to int) int {
	first, limit := a.span("IndexOfLargestInRange", from, to)

	return from + a.store.IndexOfLargest(first, limit, a.step)
}

// IndexOf returns the logical index of the first element equal to v, or -1.
func (a *Array1D[N]) IndexOf(v N) int {
	d := a.store.Domain()
	for k := range a.count {
		if d.Equal(a.store.Get(a.first+k*a.step), v) {
			return k
		}
	}

	return -1
}

// Contains reports whether some element equals v.
func (a *Array1D[N]) Contains(v N) bool { return a.IndexOf(v) >= 0 }

// SortAscending sorts the viewed elements in place. A view covering the
// whole store sorts the store directly; any other view sorts a copy and
// writes it back through the view.
func (a *Array1D[N]) SortAscending() {
	if a.contiguous() {
		a.store.SortAscending()
		return
	}
	values := a.values()
	d := a.store.Domain()
	slices.SortFunc(values, d.Compare)
	a.assign(values)
}

// SortDescending sorts the viewed elements in place, largest first.
func (a *Array1D[N]) SortDescending() {
	a.SortAscending()
	for i, j := 0, a.count-1; i < j; i, j = i+1, j-1 {
		a.Exchange(i, j)
	}
}

// SearchAscending binary-searches an ascending view for key. A hit returns
// its logical index; a miss returns -(insertionPoint) - 1. On unsorted data
// the result is undefined.
func (a *Array1D[N]) SearchAscending(key N) int {
	if a.contiguous() {
		return a.store.SearchAscending(key)
	}
	d := a.store.Domain()
	pos := sort.Search(a.count, func(k int) bool {
		return d.Compare(a.store.Get(a.first+k*a.step), key) >= 0
	})
	if pos < a.count && d.Compare(a.store.Get(a.first+pos*a.step), key) == 0 {
		return pos
	}

	return -pos - 1
}

// SearchDescending binary-searches a descending view for key with the same
// hit/miss encoding as SearchAscending.
func (a *Array1D[N]) SearchDescending(key N) int {
	values := a.values()
	slices.Reverse(values)
	r := store.WrapDense(a.store.Domain(), values).SearchAscending(key)
	if r >= 0 {
		return a.count - 1 - r
	}

	return -(a.count - (-r - 1)) - 1
}

// SubList returns the zero-copy view of logical elements [from, to). The
// result addresses the original store directly with the same step.
func (a *Array1D[N]) SubList(from, to int) *Array1D[N] {
	first, limit := a.span("SubList", from, to)

	return newArray1D(a.store, first, limit, a.step)
}

// Copy returns an independent contiguous view holding the same values in a
// newly allocated store of the same kind.
func (a *Array1D[N]) Copy() *Array1D[N] {
	if data, ok := flat(a.store); ok && a.step == 1 {
		return newArray1D[N](store.WrapDense(a.store.Domain(), slices.Clone(data[a.first:a.limit])), 0, a.count, 1)
	}
	s := newLike(a.store, a.count)
	for k := range a.count {
		s.Set(k, a.store.Get(a.first+k*a.step))
	}

	return newArray1D(s, 0, a.count, 1)
}

// ToRawCopy returns the elements converted to float64.
func (a *Array1D[N]) ToRawCopy() []float64 {
	raw := make([]float64, a.count)
	for k := range raw {
		raw[k] = a.store.DoubleValue(a.first + k*a.step)
	}

	return raw
}

// Equals reports whether other has the same count and element-wise equal
// values. Views over different stores or with different strides may be equal.
func (a *Array1D[N]) Equals(other Access1D[N]) bool {
	if other == nil || other.Count() != a.count {
		return false
	}
	d := a.store.Domain()
	for k := range a.count {
		if !d.Equal(a.store.Get(a.first+k*a.step), other.Get(k)) {
			return false
		}
	}

	return true
}

// Hash returns a content hash consistent with Equals.
func (a *Array1D[N]) Hash() uint64 {
	h := newHasher(a.store.Domain())
	h.ints(a.count)
	a.VisitAll(h.value)

	return h.sum()
}

// String renders the elements as "[v0, v1, ...]".
func (a *Array1D[N]) String() string {
	var sb strings.Builder
	d := a.store.Domain()
	sb.WriteByte('[')
	for k := range a.count {
		if k > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(d.Format(a.store.Get(a.first + k*a.step)))
	}
	sb.WriteByte(']')

	return sb.String()
}

// values copies the viewed elements into a fresh slice.
func (a *Array1D[N]) values() []N {
	out := make([]N, a.count)
	for k := range out {
		out[k] = a.store.Get(a.first + k*a.step)
	}

	return out
}

// assign writes values back through the view; len(values) == Count().
func (a *Array1D[N]) assign(values []N) {
	for k, v := range values {
		a.store.Set(a.first+k*a.step, v)
	}
}
