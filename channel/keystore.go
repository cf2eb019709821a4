package channel

import (
	"github.com/g3n/panima/store"
	"github.com/g3n/panima/valuekind"
)

// keyStore owns the Channel's two parallel Store arrays (times, values)
// and keeps them in lockstep, per spec §4.3. It's the only place in the
// package allowed to touch the raw arrays directly; every other file
// goes through its methods so the "refresh after every mutation"
// invariant (§5, §9) can't be forgotten in one call site but not another.
type keyStore struct {
	times  store.Array
	values store.Array
}

func newKeyStore(factory store.Factory, kind valuekind.Kind) *keyStore {

	ks := &keyStore{
		times:  factory.MakeArray(valuekind.Float),
		values: factory.MakeArray(kind),
	}
	ks.refresh()
	return ks
}

// refresh re-pins the arrays to their uncompressed form. With the only
// shipped Store implementation (a plain slice) this has nothing to do
// beyond recording the request, but it's still called after every
// mutation so a Store that *does* relocate on compress/decompress stays
// correct (spec §5, §9).
func (ks *keyStore) refresh() {

	ks.times.SetUncompressedPersistent(true)
	ks.values.SetUncompressedPersistent(true)
}

func (ks *keyStore) Len() int { return ks.times.Len() }

func (ks *keyStore) IsEmpty() bool { return ks.times.IsEmpty() }

func (ks *keyStore) Kind() valuekind.Kind { return ks.values.Kind() }

func (ks *keyStore) Resize(n int) {

	ks.times.Resize(n)
	ks.values.Resize(n)
	ks.refresh()
}

func (ks *keyStore) GetTime(i int) float32 { return ks.times.Get(i).(float32) }

func (ks *keyStore) SetTime(i int, t float32) { ks.times.Set(i, t) }

func (ks *keyStore) GetValue(i int) any { return ks.values.Get(i) }

func (ks *keyStore) SetValue(i int, v any) { ks.values.Set(i, v) }

func (ks *keyStore) InsertAt(i int, t float32, v any) {

	ks.times.Insert(i, t)
	ks.values.Insert(i, v)
	ks.refresh()
}

func (ks *keyStore) RemoveAt(i int) {

	ks.times.Remove(i)
	ks.values.Remove(i)
	ks.refresh()
}

func (ks *keyStore) RemoveRange(i, n int) {

	ks.times.RemoveRange(i, n)
	ks.values.RemoveRange(i, n)
	ks.refresh()
}

func (ks *keyStore) AddRange(i, n int) {

	ks.times.AddRange(i, n)
	ks.values.AddRange(i, n)
	ks.refresh()
}

// clone deep-copies both arrays into a fresh keyStore over the same
// factory-compatible representation (a plain in-memory copy; spec §3's
// "copying a Channel deep-copies arrays").
func (ks *keyStore) clone(factory store.Factory) *keyStore {

	out := newKeyStore(factory, ks.Kind())
	n := ks.Len()
	out.Resize(n)
	for i := 0; i < n; i++ {
		out.SetTime(i, ks.GetTime(i))
		out.SetValue(i, ks.GetValue(i))
	}
	return out
}
