package stackstr

// Swap exchanges the contents of a and b, which may have different
// capacities. Bytes are exchanged position by position up to the smaller
// MaxSize, and each side then keeps as much of the other's old content as
// its own capacity allows.
func Swap[A, B Storage](a A, b B) {
	la, lb := a.Len(), b.Len()
	da, db := a.Data(), b.Data()
	n := min(a.MaxSize(), b.MaxSize())
	for i := 0; i < n; i++ {
		da[i], db[i] = db[i], da[i]
	}
	a.setLen(min(lb, a.Capacity()))
	b.setLen(min(la, b.Capacity()))
}
