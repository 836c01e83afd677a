package markov

// window is a fixed-capacity ordered buffer of runes. Pushing into a full
// window evicts the oldest rune. It backs both the sliding window used while
// training and the current context used while generating.
type window struct {
	buf   []rune
	start int
	size  int
}

func newWindow(capacity int) *window {
	return &window{buf: make([]rune, capacity)}
}

// full reports whether the window holds exactly its capacity. A zero-capacity
// window is always full.
func (w *window) full() bool {
	return w.size == len(w.buf)
}

// push appends r, evicting the oldest rune when the window is full.
func (w *window) push(r rune) {
	if len(w.buf) == 0 {
		return
	}
	if w.size < len(w.buf) {
		w.buf[(w.start+w.size)%len(w.buf)] = r
		w.size++
		return
	}
	w.buf[w.start] = r
	w.start = (w.start + 1) % len(w.buf)
}

// reset replaces the contents with the last len(buf) runes of s.
func (w *window) reset(s string) {
	w.start, w.size = 0, 0
	for _, r := range s {
		w.push(r)
	}
}

// String joins the window from oldest to newest.
func (w *window) String() string {
	out := make([]rune, w.size)
	for i := 0; i < w.size; i++ {
		out[i] = w.buf[(w.start+i)%len(w.buf)]
	}
	return string(out)
}
